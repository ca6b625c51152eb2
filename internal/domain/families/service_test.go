package families

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type fakeFamiliesRepo struct {
	families map[string]*Family
	members  map[string]*Member
	students map[string]*Student
	tutors   map[string]*Tutor
	comments []Comment
}

func newFakeFamiliesRepo() *fakeFamiliesRepo {
	return &fakeFamiliesRepo{
		families: make(map[string]*Family),
		members:  make(map[string]*Member),
		students: make(map[string]*Student),
		tutors:   make(map[string]*Tutor),
	}
}

func (r *fakeFamiliesRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeFamiliesRepo) CreateFamily(ctx context.Context, family *Family) error {
	r.families[family.ID] = family
	return nil
}

func (r *fakeFamiliesRepo) GetFamilyByID(ctx context.Context, familyID string) (*Family, error) {
	family, ok := r.families[familyID]
	if !ok {
		return nil, ErrFamilyNotFound
	}
	return family, nil
}

func (r *fakeFamiliesRepo) UpdateFamily(ctx context.Context, family *Family) error {
	if _, ok := r.families[family.ID]; !ok {
		return ErrFamilyNotFound
	}
	r.families[family.ID] = family
	return nil
}

func (r *fakeFamiliesRepo) ListFamilies(ctx context.Context) ([]Family, error) {
	items := make([]Family, 0, len(r.families))
	for _, family := range r.families {
		items = append(items, *family)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *fakeFamiliesRepo) CreateMember(ctx context.Context, member *Member) error {
	r.members[member.ID] = member
	return nil
}

func (r *fakeFamiliesRepo) GetMemberByID(ctx context.Context, familyID, memberID string) (*Member, error) {
	member, ok := r.members[memberID]
	if !ok || member.FamilyID != familyID {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (r *fakeFamiliesRepo) ListMembersByFamily(ctx context.Context, familyID string) ([]Member, error) {
	items := make([]Member, 0)
	for _, member := range r.members {
		if member.FamilyID == familyID {
			items = append(items, *member)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeFamiliesRepo) GetStudentsByMemberIDs(ctx context.Context, memberIDs []string) (map[string]Student, error) {
	result := make(map[string]Student)
	for _, id := range memberIDs {
		if student, ok := r.students[id]; ok {
			result[id] = *student
		}
	}
	return result, nil
}

func (r *fakeFamiliesRepo) GetTutorsByMemberIDs(ctx context.Context, memberIDs []string) (map[string]Tutor, error) {
	result := make(map[string]Tutor)
	for _, id := range memberIDs {
		if tutor, ok := r.tutors[id]; ok {
			result[id] = *tutor
		}
	}
	return result, nil
}

func (r *fakeFamiliesRepo) CreateStudent(ctx context.Context, student *Student) error {
	r.students[student.MemberID] = student
	return nil
}

func (r *fakeFamiliesRepo) CreateTutor(ctx context.Context, tutor *Tutor) error {
	r.tutors[tutor.MemberID] = tutor
	return nil
}

func (r *fakeFamiliesRepo) DeactivateMembersByFamily(ctx context.Context, familyID string) error {
	for _, member := range r.members {
		if member.FamilyID == familyID {
			member.Active = false
		}
	}
	return nil
}

func (r *fakeFamiliesRepo) DeactivateStudentsByFamily(ctx context.Context, familyID string) error {
	for _, member := range r.members {
		if member.FamilyID != familyID {
			continue
		}
		if student, ok := r.students[member.ID]; ok {
			student.Active = false
		}
	}
	return nil
}

func (r *fakeFamiliesRepo) CreateComment(ctx context.Context, comment *Comment) error {
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeFamiliesRepo) ListCommentsByFamily(ctx context.Context, familyID string) ([]Comment, error) {
	items := make([]Comment, 0)
	for _, comment := range r.comments {
		if comment.FamilyID == familyID {
			items = append(items, comment)
		}
	}
	return items, nil
}

func seedFamily(t *testing.T, repo *fakeFamiliesRepo) *Family {
	t.Helper()
	family := &Family{ID: "fam-1", Name: "Familia García", CivilStatus: CivilStatusMarried, Locality: LocalityUrban}
	repo.families[family.ID] = family
	return family
}

func TestCreateFamilyValidation(t *testing.T) {
	svc := NewService(newFakeFamiliesRepo())

	if _, err := svc.CreateFamily(context.Background(), CreateFamilyInput{Name: " ", CivilStatus: CivilStatusSingle, Locality: LocalityUrban}); err == nil {
		t.Fatalf("expected an error for an empty name")
	}

	_, err := svc.CreateFamily(context.Background(), CreateFamilyInput{Name: "García", CivilStatus: "divorced", Locality: LocalityUrban})
	if !errors.Is(err, ErrInvalidCivilStatus) {
		t.Fatalf("expected ErrInvalidCivilStatus, got %v", err)
	}

	_, err = svc.CreateFamily(context.Background(), CreateFamilyInput{Name: "García", CivilStatus: CivilStatusSingle, Locality: "coastal"})
	if !errors.Is(err, ErrInvalidLocality) {
		t.Fatalf("expected ErrInvalidLocality, got %v", err)
	}
}

func TestCreateFamilySuccess(t *testing.T) {
	repo := newFakeFamiliesRepo()
	svc := NewService(repo)

	family, err := svc.CreateFamily(context.Background(), CreateFamilyInput{
		Name:        "  Familia García  ",
		CivilStatus: CivilStatusFreeUnion,
		Locality:    LocalityRural,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if family.Name != "Familia García" {
		t.Fatalf("expected trimmed name, got %q", family.Name)
	}
	if repo.families[family.ID] == nil {
		t.Fatalf("family not stored")
	}
}

func TestAddMemberWithStudentProfile(t *testing.T) {
	repo := newFakeFamiliesRepo()
	seedFamily(t, repo)
	svc := NewService(repo)

	member, err := svc.AddMember(context.Background(), AddMemberInput{
		FamilyID:  "fam-1",
		FullName:  "Ana García",
		BirthDate: time.Date(2012, 9, 1, 0, 0, 0, 0, time.UTC),
		Student:   &Student{Grade: "3A"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	student := repo.students[member.ID]
	if student == nil {
		t.Fatalf("student profile not stored")
	}
	if !student.Active || student.Grade != "3A" {
		t.Fatalf("unexpected student profile %+v", student)
	}
}

func TestAddMemberFamilyNotFound(t *testing.T) {
	svc := NewService(newFakeFamiliesRepo())

	_, err := svc.AddMember(context.Background(), AddMemberInput{FamilyID: "fam-404", FullName: "Ana"})
	if !errors.Is(err, ErrFamilyNotFound) {
		t.Fatalf("expected ErrFamilyNotFound, got %v", err)
	}
}

func TestListMembersMergesProfiles(t *testing.T) {
	repo := newFakeFamiliesRepo()
	seedFamily(t, repo)
	repo.members["m-1"] = &Member{ID: "m-1", FamilyID: "fam-1", FullName: "Ana", Active: true}
	repo.members["m-2"] = &Member{ID: "m-2", FamilyID: "fam-1", FullName: "Luis", Active: true}
	repo.students["m-1"] = &Student{MemberID: "m-1", Grade: "3A", Active: true}
	repo.tutors["m-2"] = &Tutor{MemberID: "m-2", Occupation: "Carpintero"}

	svc := NewService(repo)
	items, err := svc.ListMembers(context.Background(), "fam-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 members, got %d", len(items))
	}
	if items[0].Student == nil || items[0].Student.Grade != "3A" {
		t.Fatalf("expected student profile on first member")
	}
	if items[1].Tutor == nil || items[1].Tutor.Occupation != "Carpintero" {
		t.Fatalf("expected tutor profile on second member")
	}
}

func TestDeactivateHousehold(t *testing.T) {
	repo := newFakeFamiliesRepo()
	seedFamily(t, repo)
	repo.members["m-1"] = &Member{ID: "m-1", FamilyID: "fam-1", Active: true}
	repo.members["m-2"] = &Member{ID: "m-2", FamilyID: "fam-1", Active: true}
	repo.members["m-3"] = &Member{ID: "m-3", FamilyID: "fam-2", Active: true}
	repo.students["m-1"] = &Student{MemberID: "m-1", Active: true}

	svc := NewService(repo)
	if err := svc.DeactivateHousehold(context.Background(), "fam-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.members["m-1"].Active || repo.members["m-2"].Active {
		t.Fatalf("expected fam-1 members deactivated")
	}
	if !repo.members["m-3"].Active {
		t.Fatalf("expected other families untouched")
	}
	if repo.students["m-1"].Active {
		t.Fatalf("expected student profile deactivated with its member")
	}
}

func TestDeactivateHouseholdFamilyNotFound(t *testing.T) {
	svc := NewService(newFakeFamiliesRepo())

	err := svc.DeactivateHousehold(context.Background(), "fam-404")
	if !errors.Is(err, ErrFamilyNotFound) {
		t.Fatalf("expected ErrFamilyNotFound, got %v", err)
	}
}

func TestComments(t *testing.T) {
	repo := newFakeFamiliesRepo()
	seedFamily(t, repo)
	svc := NewService(repo)

	if _, err := svc.AddComment(context.Background(), "fam-1", "usr-1", "  "); err == nil {
		t.Fatalf("expected an error for empty comment text")
	}

	comment, err := svc.AddComment(context.Background(), "fam-1", "usr-1", " Visita domiciliaria realizada ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if comment.Text != "Visita domiciliaria realizada" {
		t.Fatalf("expected trimmed text, got %q", comment.Text)
	}

	items, err := svc.ListComments(context.Background(), "fam-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(items))
	}
}
