package scholarships

import (
	"context"
	"errors"

	scholarshipsdomain "estudios-app-go/internal/domain/scholarships"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateScholarship(ctx context.Context, scholarship *scholarshipsdomain.Scholarship) error {
	return r.db.WithContext(ctx).Create(scholarship).Error
}

func (r *PostgresRepository) GetScholarshipByStudy(ctx context.Context, studyID string) (*scholarshipsdomain.Scholarship, error) {
	var scholarship scholarshipsdomain.Scholarship
	if err := r.db.WithContext(ctx).Where("study_id = ?", studyID).First(&scholarship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scholarshipsdomain.ErrScholarshipNotFound
		}
		return nil, err
	}
	return &scholarship, nil
}

func (r *PostgresRepository) StudentExists(ctx context.Context, memberID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("students").
		Where("member_id = ? AND active = true", memberID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
