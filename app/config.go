package app

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/acmeconsole/pkg/auth"
)

// Config is the top-level application configuration.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"` // development, staging or production
	Name string `env:"APP_NAME" envDefault:"acme-console"`

	SessionStore string `env:"SESSION_STORE" envDefault:"memory"` // memory or redis
	UserStore    string `env:"USER_STORE" envDefault:"memory"`    // memory or postgres

	// SeedUserEmail and SeedUserPassword create a sign-in account at startup
	// when both are set. An existing account is left alone.
	SeedUserEmail    string `env:"SEED_USER_EMAIL"`
	SeedUserPassword string `env:"SEED_USER_PASSWORD"`

	// TrustProxyHeaders is set when a reverse proxy in front of the console
	// overwrites X-Forwarded-For and friends.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	BcryptCost       int           `env:"AUTH_BCRYPT_COST" envDefault:"10"`
	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"2s"`
}

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Validate rejects settings that would only fail on first use.
func (c Config) Validate() error {
	if err := auth.ValidateBcryptCost(c.BcryptCost); err != nil {
		return fmt.Errorf("AUTH_BCRYPT_COST: %w", err)
	}
	switch c.SessionStore {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("%w: SESSION_STORE=%q", ErrUnknownStore, c.SessionStore)
	}
	switch c.UserStore {
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("%w: USER_STORE=%q", ErrUnknownStore, c.UserStore)
	}
	return nil
}
