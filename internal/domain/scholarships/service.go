package scholarships

import (
	"context"
	"errors"

	"estudios-app-go/internal/domain/finances"
	"estudios-app-go/internal/domain/studies"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StudyDirectory is the slice of the studies domain this workflow consumes:
// lookup plus the approval predicate the assignment gates on.
type StudyDirectory interface {
	Get(ctx context.Context, studyID string) (*studies.Study, error)
	IsApproved(ctx context.Context, studyID string) (bool, error)
}

type TotalsProvider interface {
	FamilyTotals(ctx context.Context, familyID string) (finances.Totals, error)
}

type Service struct {
	repo    Repository
	studies StudyDirectory
	totals  TotalsProvider
}

func NewService(repo Repository, directory StudyDirectory, totals TotalsProvider) *Service {
	return &Service{
		repo:    repo,
		studies: directory,
		totals:  totals,
	}
}

// Assign awards a scholarship against an approved study. A study in any other
// status surfaces the studies not-found error rather than a validation error,
// so unauthorized flows learn nothing about the study's state.
func (s *Service) Assign(ctx context.Context, input AssignInput) (*Scholarship, error) {
	if input.Percentage < 1 || input.Percentage > 100 {
		return nil, ErrInvalidPercentage
	}

	approved, err := s.studies.IsApproved(ctx, input.StudyID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, studies.ErrStudyNotFound
	}

	exists, err := s.repo.StudentExists(ctx, input.StudentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, studies.ErrStudyNotFound
	}

	existing, err := s.repo.GetScholarshipByStudy(ctx, input.StudyID)
	if err != nil && !errors.Is(err, ErrScholarshipNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyAssigned
	}

	scholarship := Scholarship{
		ID:         uuid.NewString(),
		StudyID:    input.StudyID,
		StudentID:  input.StudentID,
		Percentage: input.Percentage,
		AssignedBy: input.AssignedBy,
	}

	if err := s.repo.CreateScholarship(ctx, &scholarship); err != nil {
		return nil, err
	}

	return &scholarship, nil
}

func (s *Service) GetByStudy(ctx context.Context, studyID string) (*Scholarship, error) {
	return s.repo.GetScholarshipByStudy(ctx, studyID)
}

// LetterFigures computes the award-letter amounts for a study's scholarship:
// the family's net monthly total and the share the family still contributes
// after the percentage discount, both formatted the way the letter prints
// them.
func (s *Service) LetterFigures(ctx context.Context, studyID string) (*Letter, error) {
	study, err := s.studies.Get(ctx, studyID)
	if err != nil {
		return nil, err
	}

	scholarship, err := s.repo.GetScholarshipByStudy(ctx, studyID)
	if err != nil {
		return nil, err
	}

	totals, err := s.totals.FamilyTotals(ctx, study.FamilyID)
	if err != nil {
		return nil, err
	}

	remainder := decimal.NewFromInt(int64(100 - scholarship.Percentage))
	contribution := totals.Net.Mul(remainder).Div(decimal.NewFromInt(100))

	return &Letter{
		Percentage:          scholarship.Percentage,
		NetTotal:            finances.FormatAmount(totals.Net),
		MonthlyContribution: finances.FormatAmount(contribution),
	}, nil
}
