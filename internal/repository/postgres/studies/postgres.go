package studies

import (
	"context"
	"errors"

	studiesdomain "estudios-app-go/internal/domain/studies"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(studiesdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) FamilyExists(ctx context.Context, familyID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("families").
		Where("id = ?", familyID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CreateStudy(ctx context.Context, study *studiesdomain.Study) error {
	return r.db.WithContext(ctx).Create(study).Error
}

func (r *PostgresRepository) GetStudyByID(ctx context.Context, studyID string) (*studiesdomain.Study, error) {
	var study studiesdomain.Study
	if err := r.db.WithContext(ctx).Where("id = ?", studyID).First(&study).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, studiesdomain.ErrStudyNotFound
		}
		return nil, err
	}
	return &study, nil
}

func (r *PostgresRepository) GetStudyByFamily(ctx context.Context, familyID string) (*studiesdomain.Study, error) {
	var study studiesdomain.Study
	if err := r.db.WithContext(ctx).Where("family_id = ?", familyID).First(&study).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, studiesdomain.ErrStudyNotFound
		}
		return nil, err
	}
	return &study, nil
}

func (r *PostgresRepository) ListStudies(ctx context.Context, filter studiesdomain.ListFilter) ([]studiesdomain.Study, error) {
	query := r.db.WithContext(ctx).Model(&studiesdomain.Study{})
	if filter.CapturistaID != "" {
		query = query.Where("capturista_id = ?", filter.CapturistaID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var studies []studiesdomain.Study
	if err := query.Order("created_at asc").Find(&studies).Error; err != nil {
		return nil, err
	}
	return studies, nil
}

func (r *PostgresRepository) UpdateStudyStatus(ctx context.Context, studyID, status string) error {
	return r.db.WithContext(ctx).Model(&studiesdomain.Study{}).
		Where("id = ?", studyID).
		Update("status", status).Error
}

func (r *PostgresRepository) CreateAnswers(ctx context.Context, answers []studiesdomain.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&answers).Error
}

func (r *PostgresRepository) GetAnswerByID(ctx context.Context, answerID string) (*studiesdomain.Answer, error) {
	var answer studiesdomain.Answer
	if err := r.db.WithContext(ctx).Where("id = ?", answerID).First(&answer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, studiesdomain.ErrAnswerNotFound
		}
		return nil, err
	}
	return &answer, nil
}

func (r *PostgresRepository) ListAnswersByStudy(ctx context.Context, studyID string) ([]studiesdomain.Answer, error) {
	var answers []studiesdomain.Answer
	err := r.db.WithContext(ctx).
		Where("study_id = ?", studyID).
		Order("created_at asc").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *PostgresRepository) UpdateAnswer(ctx context.Context, answer *studiesdomain.Answer) error {
	return r.db.WithContext(ctx).Save(answer).Error
}

func (r *PostgresRepository) DeleteAnswer(ctx context.Context, answerID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&studiesdomain.Answer{}, "id = ?", answerID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) CountAnswersByStudy(ctx context.Context, studyID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&studiesdomain.Answer{}).
		Where("study_id = ?", studyID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) CreateFeedback(ctx context.Context, feedback *studiesdomain.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *PostgresRepository) ListFeedbackByStudy(ctx context.Context, studyID string) ([]studiesdomain.Feedback, error) {
	var feedback []studiesdomain.Feedback
	err := r.db.WithContext(ctx).
		Where("study_id = ?", studyID).
		Order("created_at asc").
		Find(&feedback).Error
	if err != nil {
		return nil, err
	}
	return feedback, nil
}
