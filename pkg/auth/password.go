package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/acmeconsole/pkg/logger"
	"github.com/dmitrymomot/acmeconsole/pkg/sanitizer"
	"github.com/dmitrymomot/acmeconsole/pkg/validator"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Verifier checks an email and password pair.
// It returns ErrInvalidCredentials when the pair does not identify a user and
// an error wrapping ErrUnavailable when the check itself could not run.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (*User, error)
}

// Registrar creates password accounts.
type Registrar interface {
	Register(ctx context.Context, email, password string) (*User, error)
}

// UserGetter loads users by id.
type UserGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
}

// PasswordStorage is the persistence required by PasswordService.
// Lookups report a missing user with ErrUserNotFound; CreateUser reports a
// taken address with ErrEmailAlreadyExists and stores the user and hash atomically.
type PasswordStorage interface {
	CreateUser(ctx context.Context, user *User, passwordHash []byte) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetPasswordHash(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// PasswordService authenticates and registers users with bcrypt-hashed passwords.
type PasswordService struct {
	storage          PasswordStorage
	bcryptCost       int
	logger           *slog.Logger
	passwordStrength validator.PasswordStrengthConfig

	// compared against when the email is unknown so both paths cost one bcrypt run
	dummyHash []byte
}

var (
	_ Verifier   = (*PasswordService)(nil)
	_ Registrar  = (*PasswordService)(nil)
	_ UserGetter = (*PasswordService)(nil)
)

type PasswordOption func(*PasswordService)

func WithPasswordLogger(l *slog.Logger) PasswordOption {
	return func(s *PasswordService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBcryptCost sets the hashing cost. It panics when cost is outside
// bcrypt's accepted range; use ValidateBcryptCost to check config values first.
func WithBcryptCost(cost int) PasswordOption {
	if err := ValidateBcryptCost(cost); err != nil {
		panic("WithBcryptCost: " + err.Error())
	}
	return func(s *PasswordService) {
		s.bcryptCost = cost
	}
}

func WithPasswordStrength(config validator.PasswordStrengthConfig) PasswordOption {
	return func(s *PasswordService) {
		s.passwordStrength = config
	}
}

// NewPasswordService creates a new password authentication service
func NewPasswordService(storage PasswordStorage, opts ...PasswordOption) *PasswordService {
	s := &PasswordService{
		storage:          storage,
		bcryptCost:       bcrypt.DefaultCost,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		passwordStrength: validator.DefaultPasswordStrength(),
	}

	for _, opt := range opts {
		opt(s)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("acme-dummy-password"), s.bcryptCost)
	if err != nil {
		panic(fmt.Sprintf("NewPasswordService: %v", err))
	}
	s.dummyHash = hash

	return s
}

// Verify implements Verifier.
func (s *PasswordService) Verify(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)

	user, err := s.storage.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Join(ErrUnavailable, fmt.Errorf("get user by email: %w", err))
	}

	hash, err := s.storage.GetPasswordHash(ctx, user.ID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Join(ErrUnavailable, fmt.Errorf("get password hash: %w", err))
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Join(ErrUnavailable, fmt.Errorf("compare password: %w", err))
	}

	s.logger.InfoContext(ctx, "password verified",
		logger.Subject(user.ID),
		logger.Component("password"),
		logger.Event("login"),
	)

	return user, nil
}

// Register creates an account. A password failing the strength policy yields
// validator.ValidationErrors on the "password" field.
func (s *PasswordService) Register(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)

	if err := validator.Apply(
		validator.ValidEmail("email", email),
		validator.MaxBytes("password", password, MaxPasswordBytes),
		validator.StrongPassword("password", password, s.passwordStrength),
	); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      displayName(email),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.CreateUser(ctx, user, hash); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, errors.Join(ErrUnavailable, fmt.Errorf("create user: %w", err))
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.Subject(user.ID),
		logger.Component("password"),
		logger.Event("register"),
	)

	return user, nil
}

// GetUser implements UserGetter.
func (s *PasswordService) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, errors.Join(ErrUnavailable, err)
	}
	return user, err
}

// displayName turns "sofia.davis@acme.com" into "Sofia Davis".
func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	fields := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	caser := cases.Title(language.Und)
	for i, f := range fields {
		fields[i] = caser.String(f)
	}
	if len(fields) == 0 {
		return email
	}
	return strings.Join(fields, " ")
}

// ValidateBcryptCost reports ErrInvalidBcryptCost for costs bcrypt would reject.
func ValidateBcryptCost(cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidBcryptCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
