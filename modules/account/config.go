package account

import "time"

// Config holds account module settings.
type Config struct {
	// VerifyTimeout bounds each credential check and registration; running
	// out of time is reported as the service being unavailable.
	VerifyTimeout time.Duration `env:"AUTH_VERIFY_TIMEOUT" envDefault:"5s"`
}

// DefaultConfig returns the defaults used when no environment is loaded.
func DefaultConfig() Config {
	return Config{VerifyTimeout: 5 * time.Second}
}
