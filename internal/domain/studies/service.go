package studies

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"estudios-app-go/internal/catalog"
	"github.com/google/uuid"
)

// HouseholdDeactivator is the family-records cascade consumed by the soft
// delete: it flips every member of the family and every student profile among
// those members to inactive as one atomic batch.
type HouseholdDeactivator interface {
	DeactivateHousehold(ctx context.Context, familyID string) error
}

// EventPublisher receives study lifecycle notifications. Publishing is
// advisory: implementations log their own failures and the workflow never
// blocks on them.
type EventPublisher interface {
	PublishStudyEvent(ctx context.Context, event, studyID, familyID, status string) error
}

const (
	EventCreated   = "study.created"
	EventSubmitted = "study.submitted"
	EventApproved  = "study.approved"
	EventRejected  = "study.rejected"
	EventResubmit  = "study.resubmitted"
	EventDeleted   = "study.deleted"
	EventRecovered = "study.recovered"
)

type Service struct {
	repo       Repository
	catalog    *catalog.Catalog
	households HouseholdDeactivator
	events     EventPublisher
}

func NewService(repo Repository, cat *catalog.Catalog, households HouseholdDeactivator, events EventPublisher) *Service {
	return &Service{
		repo:       repo,
		catalog:    cat,
		households: households,
		events:     events,
	}
}

// Create opens a study for a family and seeds exactly one empty answer per
// catalog question, atomically with the study row. The seeded rows are what
// the capture workflow binds submissions to.
func (s *Service) Create(ctx context.Context, familyID, capturistaID string) (*Study, error) {
	if capturistaID == "" {
		return nil, fmt.Errorf("capturista id is required")
	}

	study := Study{
		ID:           uuid.NewString(),
		FamilyID:     familyID,
		CapturistaID: capturistaID,
		Status:       StatusDraft,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.FamilyExists(ctx, familyID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrFamilyNotFound
		}

		existing, err := tx.GetStudyByFamily(ctx, familyID)
		if err != nil && !errors.Is(err, ErrStudyNotFound) {
			return err
		}
		if existing != nil {
			return ErrFamilyHasStudy
		}

		if err := tx.CreateStudy(ctx, &study); err != nil {
			return err
		}

		questionIDs := s.catalog.QuestionIDs()
		answers := make([]Answer, 0, len(questionIDs))
		for _, questionID := range questionIDs {
			answers = append(answers, Answer{
				ID:         uuid.NewString(),
				StudyID:    study.ID,
				QuestionID: questionID,
			})
		}

		return tx.CreateAnswers(ctx, answers)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventCreated, &study)
	return &study, nil
}

func (s *Service) Get(ctx context.Context, studyID string) (*Study, error) {
	return s.repo.GetStudyByID(ctx, studyID)
}

func (s *Service) GetByFamily(ctx context.Context, familyID string) (*Study, error) {
	return s.repo.GetStudyByFamily(ctx, familyID)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Study, error) {
	return s.repo.ListStudies(ctx, filter)
}

// Submit hands a draft over for review.
func (s *Service) Submit(ctx context.Context, studyID string) (*Study, error) {
	study, err := s.transition(ctx, studyID, StatusUnderReview, StatusDraft)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, EventSubmitted, study)
	return study, nil
}

func (s *Service) Approve(ctx context.Context, studyID string) (*Study, error) {
	study, err := s.transition(ctx, studyID, StatusApproved, StatusUnderReview)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, EventApproved, study)
	return study, nil
}

// SubmitFeedback records a comment and drives the review ping-pong: feedback
// on a study under review rejects it, feedback on a rejected study sends it
// back for review. Any other status is not reviewable.
func (s *Service) SubmitFeedback(ctx context.Context, studyID, authorID, text string) (*Study, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}

	var updated Study
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		study, err := tx.GetStudyByID(ctx, studyID)
		if err != nil {
			return err
		}

		var next string
		switch study.Status {
		case StatusUnderReview:
			next = StatusRejected
		case StatusRejected:
			next = StatusUnderReview
		default:
			return ErrStudyNotReviewable
		}

		feedback := Feedback{
			ID:       uuid.NewString(),
			StudyID:  studyID,
			AuthorID: authorID,
			Text:     text,
		}
		if err := tx.CreateFeedback(ctx, &feedback); err != nil {
			return err
		}

		if err := tx.UpdateStudyStatus(ctx, studyID, next); err != nil {
			return err
		}

		study.Status = next
		updated = *study
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status == StatusRejected {
		s.publish(ctx, EventRejected, &updated)
	} else {
		s.publish(ctx, EventResubmit, &updated)
	}
	return &updated, nil
}

func (s *Service) ListFeedback(ctx context.Context, studyID string) ([]Feedback, error) {
	if _, err := s.repo.GetStudyByID(ctx, studyID); err != nil {
		return nil, err
	}
	return s.repo.ListFeedbackByStudy(ctx, studyID)
}

// SoftDelete marks the study deleted and deactivates the family household.
// Deleting an already-deleted study is a no-op. The member/student cascade is
// one atomic batch inside the family-records collaborator; the status flip is
// an idempotent single-row write on top of it.
func (s *Service) SoftDelete(ctx context.Context, studyID string) error {
	study, err := s.repo.GetStudyByID(ctx, studyID)
	if err != nil {
		return err
	}
	if study.Status == StatusDeleted {
		return nil
	}

	if err := s.households.DeactivateHousehold(ctx, study.FamilyID); err != nil {
		return err
	}

	if err := s.repo.UpdateStudyStatus(ctx, studyID, StatusDeleted); err != nil {
		return err
	}

	study.Status = StatusDeleted
	s.publish(ctx, EventDeleted, study)
	return nil
}

// Recover is the only edge out of deleted; the study returns to draft.
func (s *Service) Recover(ctx context.Context, studyID string) (*Study, error) {
	study, err := s.transition(ctx, studyID, StatusDraft, StatusDeleted)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, EventRecovered, study)
	return study, nil
}

// IsApproved is the predicate the scholarship-assignment collaborator gates
// on.
func (s *Service) IsApproved(ctx context.Context, studyID string) (bool, error) {
	study, err := s.repo.GetStudyByID(ctx, studyID)
	if err != nil {
		return false, err
	}
	return study.Status == StatusApproved, nil
}

func (s *Service) transition(ctx context.Context, studyID, to string, from string) (*Study, error) {
	var updated Study
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		study, err := tx.GetStudyByID(ctx, studyID)
		if err != nil {
			return err
		}
		if study.Status != from {
			return ErrInvalidTransition
		}
		if err := tx.UpdateStudyStatus(ctx, studyID, to); err != nil {
			return err
		}
		study.Status = to
		updated = *study
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) publish(ctx context.Context, event string, study *Study) {
	if s.events == nil {
		return
	}
	// Advisory only; the publisher logs its own failures.
	_ = s.events.PublishStudyEvent(ctx, event, study.ID, study.FamilyID, study.Status)
}
