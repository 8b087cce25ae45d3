package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/acmeconsole/pkg/auth"
	"github.com/dmitrymomot/acmeconsole/pkg/httpserver"
	"github.com/dmitrymomot/acmeconsole/pkg/pg"
	"github.com/dmitrymomot/acmeconsole/pkg/redis"
	"github.com/dmitrymomot/acmeconsole/pkg/session"
	"github.com/dmitrymomot/acmeconsole/svc/userstore"
)

// Backend is an opened store with its readiness check and cleanup.
// Check is nil for in-process stores.
type Backend[T any] struct {
	Store T
	Check *httpserver.Check
	Close func()
}

// OpenSessionStore returns the session store selected by kind.
func OpenSessionStore(ctx context.Context, kind string, sessCfg session.Config, redisCfg redis.Config) (Backend[session.Store], error) {
	switch kind {
	case "", StoreMemory:
		store := session.NewMemoryStore(sessCfg.CleanupInterval)
		return Backend[session.Store]{Store: store, Close: func() { _ = store.Close() }}, nil

	case StoreRedis:
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return Backend[session.Store]{}, fmt.Errorf("session store: %w", err)
		}
		return Backend[session.Store]{
			Store: session.NewRedisStore(client, redisCfg.KeyPrefix),
			Check: &httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)},
			Close: func() { _ = client.Close() },
		}, nil
	}
	return Backend[session.Store]{}, fmt.Errorf("%w: SESSION_STORE=%q", ErrUnknownStore, kind)
}

// OpenUserStorage returns the account storage selected by kind. Postgres is
// migrated before it is returned.
func OpenUserStorage(ctx context.Context, kind string, pgCfg pg.Config, log *slog.Logger) (Backend[auth.PasswordStorage], error) {
	switch kind {
	case "", StoreMemory:
		return Backend[auth.PasswordStorage]{Store: auth.NewMemoryStorage(), Close: func() {}}, nil

	case StorePostgres:
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return Backend[auth.PasswordStorage]{}, fmt.Errorf("user store: %w", err)
		}
		if err := userstore.Migrate(ctx, pool, pgCfg, log); err != nil {
			pool.Close()
			return Backend[auth.PasswordStorage]{}, fmt.Errorf("user store: %w", err)
		}
		return Backend[auth.PasswordStorage]{
			Store: userstore.New(pool),
			Check: &httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)},
			Close: pool.Close,
		}, nil
	}
	return Backend[auth.PasswordStorage]{}, fmt.Errorf("%w: USER_STORE=%q", ErrUnknownStore, kind)
}

// Seed registers the configured account unless it already exists. Nothing
// happens when email or password is empty.
func Seed(ctx context.Context, users auth.Registrar, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if _, err := users.Register(ctx, email, password); err != nil && !errors.Is(err, auth.ErrEmailAlreadyExists) {
		return fmt.Errorf("seed user: %w", err)
	}
	return nil
}
