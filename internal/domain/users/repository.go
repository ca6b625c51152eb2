package users

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByToken(ctx context.Context, token string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	CreateToken(ctx context.Context, token *APIToken) error
	GetTokenByUser(ctx context.Context, userID string) (*APIToken, error)
}
