package scholarships

import (
	"context"
	"errors"
	"testing"

	"estudios-app-go/internal/domain/finances"
	"estudios-app-go/internal/domain/studies"
	"github.com/shopspring/decimal"
)

type fakeScholarshipsRepo struct {
	byStudy  map[string]*Scholarship
	students map[string]bool
}

func newFakeScholarshipsRepo() *fakeScholarshipsRepo {
	return &fakeScholarshipsRepo{
		byStudy:  make(map[string]*Scholarship),
		students: make(map[string]bool),
	}
}

func (r *fakeScholarshipsRepo) CreateScholarship(ctx context.Context, scholarship *Scholarship) error {
	r.byStudy[scholarship.StudyID] = scholarship
	return nil
}

func (r *fakeScholarshipsRepo) GetScholarshipByStudy(ctx context.Context, studyID string) (*Scholarship, error) {
	scholarship, ok := r.byStudy[studyID]
	if !ok {
		return nil, ErrScholarshipNotFound
	}
	return scholarship, nil
}

func (r *fakeScholarshipsRepo) StudentExists(ctx context.Context, memberID string) (bool, error) {
	return r.students[memberID], nil
}

type fakeStudyDirectory struct {
	studies map[string]*studies.Study
}

func (f *fakeStudyDirectory) Get(ctx context.Context, studyID string) (*studies.Study, error) {
	study, ok := f.studies[studyID]
	if !ok {
		return nil, studies.ErrStudyNotFound
	}
	return study, nil
}

func (f *fakeStudyDirectory) IsApproved(ctx context.Context, studyID string) (bool, error) {
	study, err := f.Get(ctx, studyID)
	if err != nil {
		return false, err
	}
	return study.Status == studies.StatusApproved, nil
}

type fakeTotals struct {
	net decimal.Decimal
}

func (f *fakeTotals) FamilyTotals(ctx context.Context, familyID string) (finances.Totals, error) {
	return finances.Totals{Net: f.net}, nil
}

func newTestService(repo *fakeScholarshipsRepo, directory *fakeStudyDirectory, net string) *Service {
	return NewService(repo, directory, &fakeTotals{net: decimal.RequireFromString(net)})
}

func approvedDirectory() *fakeStudyDirectory {
	return &fakeStudyDirectory{studies: map[string]*studies.Study{
		"study-1": {ID: "study-1", FamilyID: "fam-1", Status: studies.StatusApproved},
	}}
}

func TestAssignSuccess(t *testing.T) {
	repo := newFakeScholarshipsRepo()
	repo.students["stu-1"] = true
	svc := newTestService(repo, approvedDirectory(), "1000")

	scholarship, err := svc.Assign(context.Background(), AssignInput{
		StudyID:    "study-1",
		StudentID:  "stu-1",
		Percentage: 40,
		AssignedBy: "usr-1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if scholarship.Percentage != 40 {
		t.Fatalf("expected percentage 40, got %d", scholarship.Percentage)
	}
	if repo.byStudy["study-1"] == nil {
		t.Fatalf("scholarship not stored")
	}
}

func TestAssignInvalidPercentage(t *testing.T) {
	svc := newTestService(newFakeScholarshipsRepo(), approvedDirectory(), "1000")

	for _, percentage := range []int{0, -5, 101} {
		_, err := svc.Assign(context.Background(), AssignInput{StudyID: "study-1", StudentID: "stu-1", Percentage: percentage})
		if !errors.Is(err, ErrInvalidPercentage) {
			t.Fatalf("percentage %d: expected ErrInvalidPercentage, got %v", percentage, err)
		}
	}
}

// A study that is not approved surfaces as not found, the same as a study
// that does not exist.
func TestAssignUnapprovedStudy(t *testing.T) {
	repo := newFakeScholarshipsRepo()
	repo.students["stu-1"] = true
	directory := &fakeStudyDirectory{studies: map[string]*studies.Study{
		"study-1": {ID: "study-1", FamilyID: "fam-1", Status: studies.StatusDraft},
	}}
	svc := newTestService(repo, directory, "1000")

	_, err := svc.Assign(context.Background(), AssignInput{StudyID: "study-1", StudentID: "stu-1", Percentage: 50})
	if !errors.Is(err, studies.ErrStudyNotFound) {
		t.Fatalf("expected studies.ErrStudyNotFound, got %v", err)
	}
}

func TestAssignUnknownStudent(t *testing.T) {
	svc := newTestService(newFakeScholarshipsRepo(), approvedDirectory(), "1000")

	_, err := svc.Assign(context.Background(), AssignInput{StudyID: "study-1", StudentID: "stu-404", Percentage: 50})
	if !errors.Is(err, studies.ErrStudyNotFound) {
		t.Fatalf("expected studies.ErrStudyNotFound, got %v", err)
	}
}

func TestAssignTwice(t *testing.T) {
	repo := newFakeScholarshipsRepo()
	repo.students["stu-1"] = true
	svc := newTestService(repo, approvedDirectory(), "1000")

	if _, err := svc.Assign(context.Background(), AssignInput{StudyID: "study-1", StudentID: "stu-1", Percentage: 40}); err != nil {
		t.Fatalf("first assign: %v", err)
	}

	_, err := svc.Assign(context.Background(), AssignInput{StudyID: "study-1", StudentID: "stu-1", Percentage: 60})
	if !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
	}
}

func TestLetterFigures(t *testing.T) {
	repo := newFakeScholarshipsRepo()
	repo.students["stu-1"] = true
	svc := newTestService(repo, approvedDirectory(), "1000")

	if _, err := svc.Assign(context.Background(), AssignInput{StudyID: "study-1", StudentID: "stu-1", Percentage: 40}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	letter, err := svc.LetterFigures(context.Background(), "study-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if letter.Percentage != 40 {
		t.Fatalf("expected percentage 40, got %d", letter.Percentage)
	}
	if letter.NetTotal != "$1000.00 mensuales" {
		t.Fatalf("unexpected net total %q", letter.NetTotal)
	}
	// 60% of 1000 stays with the family.
	if letter.MonthlyContribution != "$600.00 mensuales" {
		t.Fatalf("unexpected contribution %q", letter.MonthlyContribution)
	}
}

func TestLetterFiguresWithoutScholarship(t *testing.T) {
	svc := newTestService(newFakeScholarshipsRepo(), approvedDirectory(), "1000")

	_, err := svc.LetterFigures(context.Background(), "study-1")
	if !errors.Is(err, ErrScholarshipNotFound) {
		t.Fatalf("expected ErrScholarshipNotFound, got %v", err)
	}
}
