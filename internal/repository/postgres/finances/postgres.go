package finances

import (
	"context"
	"errors"

	financesdomain "estudios-app-go/internal/domain/finances"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(financesdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreatePeriod(ctx context.Context, period *financesdomain.Period) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *PostgresRepository) ListPeriods(ctx context.Context) ([]financesdomain.Period, error) {
	var periods []financesdomain.Period
	if err := r.db.WithContext(ctx).Order("name asc").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *PostgresRepository) GetPeriodByID(ctx context.Context, periodID string) (*financesdomain.Period, error) {
	var period financesdomain.Period
	if err := r.db.WithContext(ctx).Where("id = ?", periodID).First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, financesdomain.ErrPeriodNotFound
		}
		return nil, err
	}
	return &period, nil
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

func (r *PostgresRepository) CreateTransaction(ctx context.Context, transaction *financesdomain.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *PostgresRepository) GetTransactionByID(ctx context.Context, familyID, transactionID string) (*financesdomain.Transaction, error) {
	var transaction financesdomain.Transaction
	err := r.db.WithContext(ctx).
		Where("id = ? AND family_id = ?", transactionID, familyID).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, financesdomain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *PostgresRepository) UpdateTransaction(ctx context.Context, transaction *financesdomain.Transaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}

func (r *PostgresRepository) SetTransactionActive(ctx context.Context, familyID, transactionID string, active bool) (bool, error) {
	result := r.db.WithContext(ctx).Model(&financesdomain.Transaction{}).
		Where("id = ? AND family_id = ?", transactionID, familyID).
		Update("active", active)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) ListTransactionsByFamily(ctx context.Context, familyID string) ([]financesdomain.Transaction, error) {
	var transactions []financesdomain.Transaction
	err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("created_at asc").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *PostgresRepository) GetPeriodsByIDs(ctx context.Context, periodIDs []string) (map[string]financesdomain.Period, error) {
	if len(periodIDs) == 0 {
		return map[string]financesdomain.Period{}, nil
	}

	var periods []financesdomain.Period
	if err := r.db.WithContext(ctx).Where("id IN ?", periodIDs).Find(&periods).Error; err != nil {
		return nil, err
	}

	result := make(map[string]financesdomain.Period, len(periods))
	for _, period := range periods {
		result[period.ID] = period
	}
	return result, nil
}

func (r *PostgresRepository) CreateIncome(ctx context.Context, income *financesdomain.Income) error {
	return r.db.WithContext(ctx).Create(income).Error
}

func (r *PostgresRepository) GetIncomeByTransaction(ctx context.Context, transactionID string) (*financesdomain.Income, error) {
	var income financesdomain.Income
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, financesdomain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &income, nil
}
