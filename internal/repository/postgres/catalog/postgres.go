package catalog

import (
	"context"

	catalogdomain "estudios-app-go/internal/catalog"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(catalogdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CountSections(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalogdomain.Section{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) ListSections(ctx context.Context) ([]catalogdomain.Section, error) {
	var sections []catalogdomain.Section
	err := r.db.WithContext(ctx).
		Preload("Subsections", func(db *gorm.DB) *gorm.DB {
			return db.Order("subsections.numero asc")
		}).
		Preload("Subsections.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.orden asc")
		}).
		Preload("Subsections.Questions.Options").
		Order("numero asc").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *PostgresRepository) CreateSections(ctx context.Context, sections []catalogdomain.Section) error {
	return r.db.WithContext(ctx).Create(&sections).Error
}
