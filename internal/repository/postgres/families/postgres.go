package families

import (
	"context"
	"errors"

	familiesdomain "estudios-app-go/internal/domain/families"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(familiesdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateFamily(ctx context.Context, family *familiesdomain.Family) error {
	return r.db.WithContext(ctx).Create(family).Error
}

func (r *PostgresRepository) GetFamilyByID(ctx context.Context, familyID string) (*familiesdomain.Family, error) {
	var family familiesdomain.Family
	if err := r.db.WithContext(ctx).Where("id = ?", familyID).First(&family).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familiesdomain.ErrFamilyNotFound
		}
		return nil, err
	}
	return &family, nil
}

func (r *PostgresRepository) UpdateFamily(ctx context.Context, family *familiesdomain.Family) error {
	return r.db.WithContext(ctx).Save(family).Error
}

func (r *PostgresRepository) ListFamilies(ctx context.Context) ([]familiesdomain.Family, error) {
	var families []familiesdomain.Family
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

func (r *PostgresRepository) CreateMember(ctx context.Context, member *familiesdomain.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) GetMemberByID(ctx context.Context, familyID, memberID string) (*familiesdomain.Member, error) {
	var member familiesdomain.Member
	err := r.db.WithContext(ctx).
		Where("id = ? AND family_id = ?", memberID, familyID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familiesdomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) ListMembersByFamily(ctx context.Context, familyID string) ([]familiesdomain.Member, error) {
	var members []familiesdomain.Member
	err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("created_at asc").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) GetStudentsByMemberIDs(ctx context.Context, memberIDs []string) (map[string]familiesdomain.Student, error) {
	if len(memberIDs) == 0 {
		return map[string]familiesdomain.Student{}, nil
	}

	var students []familiesdomain.Student
	if err := r.db.WithContext(ctx).Where("member_id IN ?", memberIDs).Find(&students).Error; err != nil {
		return nil, err
	}

	result := make(map[string]familiesdomain.Student, len(students))
	for _, student := range students {
		result[student.MemberID] = student
	}
	return result, nil
}

func (r *PostgresRepository) GetTutorsByMemberIDs(ctx context.Context, memberIDs []string) (map[string]familiesdomain.Tutor, error) {
	if len(memberIDs) == 0 {
		return map[string]familiesdomain.Tutor{}, nil
	}

	var tutors []familiesdomain.Tutor
	if err := r.db.WithContext(ctx).Where("member_id IN ?", memberIDs).Find(&tutors).Error; err != nil {
		return nil, err
	}

	result := make(map[string]familiesdomain.Tutor, len(tutors))
	for _, tutor := range tutors {
		result[tutor.MemberID] = tutor
	}
	return result, nil
}

func (r *PostgresRepository) CreateStudent(ctx context.Context, student *familiesdomain.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *PostgresRepository) CreateTutor(ctx context.Context, tutor *familiesdomain.Tutor) error {
	return r.db.WithContext(ctx).Create(tutor).Error
}

func (r *PostgresRepository) DeactivateMembersByFamily(ctx context.Context, familyID string) error {
	return r.db.WithContext(ctx).Model(&familiesdomain.Member{}).
		Where("family_id = ?", familyID).
		Update("active", false).Error
}

func (r *PostgresRepository) DeactivateStudentsByFamily(ctx context.Context, familyID string) error {
	return r.db.WithContext(ctx).Model(&familiesdomain.Student{}).
		Where("member_id IN (?)", r.db.Model(&familiesdomain.Member{}).
			Select("id").
			Where("family_id = ?", familyID)).
		Update("active", false).Error
}

func (r *PostgresRepository) CreateComment(ctx context.Context, comment *familiesdomain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *PostgresRepository) ListCommentsByFamily(ctx context.Context, familyID string) ([]familiesdomain.Comment, error) {
	var comments []familiesdomain.Comment
	err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
