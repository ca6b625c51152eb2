package families

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateFamily(ctx context.Context, input CreateFamilyInput) (*Family, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !validCivilStatus(input.CivilStatus) {
		return nil, ErrInvalidCivilStatus
	}
	if !validLocality(input.Locality) {
		return nil, ErrInvalidLocality
	}

	family := Family{
		ID:          uuid.NewString(),
		Name:        name,
		CivilStatus: input.CivilStatus,
		Locality:    input.Locality,
	}

	if err := s.repo.CreateFamily(ctx, &family); err != nil {
		return nil, err
	}

	return &family, nil
}

func (s *Service) GetFamily(ctx context.Context, familyID string) (*Family, error) {
	return s.repo.GetFamilyByID(ctx, familyID)
}

func (s *Service) ListFamilies(ctx context.Context) ([]Family, error) {
	return s.repo.ListFamilies(ctx)
}

func (s *Service) UpdateFamily(ctx context.Context, input UpdateFamilyInput) (*Family, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !validCivilStatus(input.CivilStatus) {
		return nil, ErrInvalidCivilStatus
	}
	if !validLocality(input.Locality) {
		return nil, ErrInvalidLocality
	}

	family, err := s.repo.GetFamilyByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	family.Name = name
	family.CivilStatus = input.CivilStatus
	family.Locality = input.Locality

	if err := s.repo.UpdateFamily(ctx, family); err != nil {
		return nil, err
	}

	return family, nil
}

func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (*Member, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	member := Member{
		ID:        uuid.NewString(),
		FamilyID:  input.FamilyID,
		FullName:  fullName,
		BirthDate: input.BirthDate,
		Active:    true,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetFamilyByID(ctx, input.FamilyID); err != nil {
			return err
		}

		if err := tx.CreateMember(ctx, &member); err != nil {
			return err
		}

		if input.Student != nil {
			student := *input.Student
			student.MemberID = member.ID
			student.Active = true
			if err := tx.CreateStudent(ctx, &student); err != nil {
				return err
			}
		}

		if input.Tutor != nil {
			tutor := *input.Tutor
			tutor.MemberID = member.ID
			if err := tx.CreateTutor(ctx, &tutor); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &member, nil
}

func (s *Service) ListMembers(ctx context.Context, familyID string) ([]MemberWithProfiles, error) {
	if _, err := s.repo.GetFamilyByID(ctx, familyID); err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembersByFamily(ctx, familyID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []MemberWithProfiles{}, nil
	}

	memberIDs := make([]string, 0, len(members))
	for _, member := range members {
		memberIDs = append(memberIDs, member.ID)
	}

	students, err := s.repo.GetStudentsByMemberIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	tutors, err := s.repo.GetTutorsByMemberIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	items := make([]MemberWithProfiles, 0, len(members))
	for _, member := range members {
		item := MemberWithProfiles{Member: member}
		if student, ok := students[member.ID]; ok {
			item.Student = &student
		}
		if tutor, ok := tutors[member.ID]; ok {
			item.Tutor = &tutor
		}
		items = append(items, item)
	}

	return items, nil
}

// DeactivateHousehold flips every member of the family and every student
// profile among those members to inactive, as one atomic batch. The studies
// domain runs this as part of the study soft delete.
func (s *Service) DeactivateHousehold(ctx context.Context, familyID string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetFamilyByID(ctx, familyID); err != nil {
			return err
		}
		if err := tx.DeactivateStudentsByFamily(ctx, familyID); err != nil {
			return err
		}
		return tx.DeactivateMembersByFamily(ctx, familyID)
	})
}

func (s *Service) AddComment(ctx context.Context, familyID, authorID, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}

	if _, err := s.repo.GetFamilyByID(ctx, familyID); err != nil {
		return nil, err
	}

	comment := Comment{
		ID:       uuid.NewString(),
		FamilyID: familyID,
		AuthorID: authorID,
		Text:     text,
	}

	if err := s.repo.CreateComment(ctx, &comment); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (s *Service) ListComments(ctx context.Context, familyID string) ([]Comment, error) {
	if _, err := s.repo.GetFamilyByID(ctx, familyID); err != nil {
		return nil, err
	}
	return s.repo.ListCommentsByFamily(ctx, familyID)
}

func validCivilStatus(value string) bool {
	switch value {
	case CivilStatusSingle, CivilStatusMarried, CivilStatusFreeUnion, CivilStatusSeparated, CivilStatusWidowed:
		return true
	}
	return false
}

func validLocality(value string) bool {
	switch value {
	case LocalityUrban, LocalitySuburban, LocalityRural, LocalityIndigenous:
		return true
	}
	return false
}
