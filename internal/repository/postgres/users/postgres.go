package users

import (
	"context"
	"errors"

	usersdomain "estudios-app-go/internal/domain/users"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(usersdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *usersdomain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, userID string) (*usersdomain.User, error) {
	var user usersdomain.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usersdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*usersdomain.User, error) {
	var user usersdomain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usersdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetUserByToken(ctx context.Context, token string) (*usersdomain.User, error) {
	var user usersdomain.User
	err := r.db.WithContext(ctx).
		Table("users").
		Joins("join api_tokens on api_tokens.user_id = users.id").
		Where("api_tokens.token = ? AND users.active = true", token).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usersdomain.ErrTokenNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]usersdomain.User, error) {
	var users []usersdomain.User
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *PostgresRepository) CreateToken(ctx context.Context, token *usersdomain.APIToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *PostgresRepository) GetTokenByUser(ctx context.Context, userID string) (*usersdomain.APIToken, error) {
	var token usersdomain.APIToken
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usersdomain.ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}
