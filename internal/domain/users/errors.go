package users

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrTokenNotFound = errors.New("token not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrInvalidRole   = errors.New("invalid role")
)
