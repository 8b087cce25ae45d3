package userstore

import (
	"context"
	"embed"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/acmeconsole/pkg/auth"
	"github.com/dmitrymomot/acmeconsole/pkg/pg"
)

//go:embed migrations/*.sql
var migrations embed.FS

// DB is the subset of *pgxpool.Pool the store runs queries on.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store keeps users and their password hashes in Postgres.
type Store struct {
	db DB
}

var _ auth.PasswordStorage = (*Store)(nil)

func New(db DB) *Store {
	return &Store{db: db}
}

// Migrate creates or upgrades the users table.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg pg.Config, log *slog.Logger) error {
	return pg.Migrate(ctx, pool, migrations, "migrations", cfg, log)
}

const (
	insertUser = `INSERT INTO users (id, email, name, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`

	selectUserByID    = `SELECT id, email, name, created_at FROM users WHERE id = $1`
	selectUserByEmail = `SELECT id, email, name, created_at FROM users WHERE email = $1`
	selectHash        = `SELECT password_hash FROM users WHERE id = $1`
)

func (s *Store) CreateUser(ctx context.Context, user *auth.User, passwordHash []byte) error {
	_, err := s.db.Exec(ctx, insertUser, user.ID, user.Email, user.Name, passwordHash, user.CreatedAt)
	if pg.IsDuplicateKeyError(err) {
		return auth.ErrEmailAlreadyExists
	}
	if err != nil {
		return errors.Join(ErrQuery, err)
	}
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return s.scanUser(s.db.QueryRow(ctx, selectUserByID, id))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	return s.scanUser(s.db.QueryRow(ctx, selectUserByEmail, email))
}

func (s *Store) GetPasswordHash(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	var hash []byte
	if err := s.db.QueryRow(ctx, selectHash, userID).Scan(&hash); err != nil {
		return nil, notFound(err)
	}
	return hash, nil
}

func (s *Store) scanUser(row pgx.Row) (*auth.User, error) {
	var u auth.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func notFound(err error) error {
	if pg.IsNotFoundError(err) {
		return auth.ErrUserNotFound
	}
	return errors.Join(ErrQuery, err)
}
