package users

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const tokenBytes = 24

// PostCreateHook runs inside the provisioning transaction after the user row
// exists. Keeping side effects as explicit hooks (instead of implicit save
// signals) keeps the dependency visible at the call site.
type PostCreateHook func(ctx context.Context, tx Repository, user *User) error

type Service struct {
	repo  Repository
	hooks []PostCreateHook
}

func NewService(repo Repository) *Service {
	s := &Service{repo: repo}
	s.hooks = []PostCreateHook{issueAPIToken}
	return s
}

// Provision creates a user and runs the post-creation hooks; today that means
// issuing the API token the user authenticates with.
func (s *Service) Provision(ctx context.Context, input ProvisionInput) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if !validRole(input.Role) {
		return nil, ErrInvalidRole
	}

	user := User{
		ID:       uuid.NewString(),
		Email:    email,
		FullName: fullName,
		Role:     input.Role,
		Active:   true,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.GetUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}

		if err := tx.CreateUser(ctx, &user); err != nil {
			return err
		}

		for _, hook := range s.hooks {
			if err := hook(ctx, tx, &user); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Service) Get(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}

// Authenticate resolves an opaque API token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenNotFound
	}
	return s.repo.GetUserByToken(ctx, token)
}

func (s *Service) TokenFor(ctx context.Context, userID string) (*APIToken, error) {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.GetTokenByUser(ctx, userID)
}

func issueAPIToken(ctx context.Context, tx Repository, user *User) error {
	value, err := randomToken(tokenBytes)
	if err != nil {
		return err
	}
	return tx.CreateToken(ctx, &APIToken{
		Token:  value,
		UserID: user.ID,
	})
}

func randomToken(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func validRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCapturista, RoleDirector, RoleServiciosEscolares:
		return true
	}
	return false
}
