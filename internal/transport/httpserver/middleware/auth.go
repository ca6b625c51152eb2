package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	usersdomain "estudios-app-go/internal/domain/users"
	"estudios-app-go/pkg/logger"
)

type contextKey int

const userKey contextKey = iota

// User is the authenticated principal attached to the request context.
type User struct {
	ID       string
	Email    string
	FullName string
	Role     string
}

type TokenAuth struct {
	users *usersdomain.Service
	log   logger.Logger
}

func NewTokenAuth(users *usersdomain.Service, log logger.Logger) *TokenAuth {
	return &TokenAuth{users: users, log: log}
}

func (a *TokenAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		user, err := a.users.Authenticate(r.Context(), token)
		if err != nil {
			if !errors.Is(err, usersdomain.ErrTokenNotFound) {
				a.log.InternalError("auth: token lookup failed", err)
			}
			unauthorized(w)
			return
		}

		ctx := WithUser(r.Context(), User{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles guards a route group to the given roles; anything else gets a
// generic not-found so the caller learns nothing about the resource.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if _, ok := allowed[user.Role]; !ok {
				writeError(w, http.StatusNotFound, "not_found", "resource not found")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]map[string]string{
		"error": {"code": code, "message": message},
	})
}
