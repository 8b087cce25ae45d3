package app_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/dmitrymomot/acmeconsole/pkg/redis"
)

func miniredisAddr(t *testing.T) string {
	t.Helper()
	return miniredis.RunT(t).Addr()
}

func redisConfig(url string) redis.Config {
	return redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: time.Second,
		KeyPrefix:      "test:session:",
	}
}
