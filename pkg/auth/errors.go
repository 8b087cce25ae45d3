package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidBcryptCost  = errors.New("invalid bcrypt cost")
	// ErrUnavailable marks failures of the identity backend itself. Callers
	// must not report it as a credentials problem.
	ErrUnavailable = errors.New("authentication service unavailable")
)
