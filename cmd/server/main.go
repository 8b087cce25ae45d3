package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/acmeconsole/app"
	"github.com/dmitrymomot/acmeconsole/modules/account"
	"github.com/dmitrymomot/acmeconsole/pkg/auth"
	"github.com/dmitrymomot/acmeconsole/pkg/clientip"
	"github.com/dmitrymomot/acmeconsole/pkg/config"
	"github.com/dmitrymomot/acmeconsole/pkg/cookie"
	"github.com/dmitrymomot/acmeconsole/pkg/environment"
	"github.com/dmitrymomot/acmeconsole/pkg/httpserver"
	"github.com/dmitrymomot/acmeconsole/pkg/logger"
	"github.com/dmitrymomot/acmeconsole/pkg/pg"
	"github.com/dmitrymomot/acmeconsole/pkg/redis"
	"github.com/dmitrymomot/acmeconsole/pkg/requestid"
	"github.com/dmitrymomot/acmeconsole/pkg/session"
	"github.com/dmitrymomot/acmeconsole/svc/dashboard"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg     app.Config
		accountCfg account.Config
		httpCfg    httpserver.Config
		sessCfg    session.Config
		cookieCfg  cookie.Config
		redisCfg   redis.Config
		pgCfg      pg.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&accountCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&sessCfg) },
		func() error { return config.Load(&cookieCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&pgCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	if err := appCfg.Validate(); err != nil {
		return err
	}

	env := environment.Parse(appCfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if cookieCfg.Secrets == "" {
		if env != environment.Development {
			return app.ErrMissingSecret
		}
		secret, err := devSecret()
		if err != nil {
			return err
		}
		cookieCfg.Secrets = secret
		log.WarnContext(ctx, "COOKIE_SECRETS not set, using a random secret; sessions end on restart",
			logger.Component("main"),
		)
	}
	cookies, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return fmt.Errorf("cookie manager: %w", err)
	}

	sessionStore, err := app.OpenSessionStore(ctx, appCfg.SessionStore, sessCfg, redisCfg)
	if err != nil {
		return err
	}
	defer sessionStore.Close()

	userStore, err := app.OpenUserStorage(ctx, appCfg.UserStore, pgCfg, log)
	if err != nil {
		return err
	}
	defer userStore.Close()

	sessions := session.New(
		session.WithCookieManager(cookies),
		session.WithStore(sessionStore.Store),
		session.WithConfig(sessCfg),
		session.WithLogger(log),
	)
	defer sessions.Close()

	users := auth.NewPasswordService(userStore.Store,
		auth.WithPasswordLogger(log),
		auth.WithBcryptCost(appCfg.BcryptCost),
	)
	if err := app.Seed(ctx, users, appCfg.SeedUserEmail, appCfg.SeedUserPassword); err != nil {
		return err
	}

	data, err := dashboard.New()
	if err != nil {
		return err
	}

	var checks []httpserver.Check
	for _, c := range []*httpserver.Check{sessionStore.Check, userStore.Check} {
		if c != nil {
			checks = append(checks, *c)
		}
	}

	router := app.New(app.Deps{
		Log:              log,
		Env:              env,
		Sessions:         sessions,
		Users:            users,
		Flash:            cookies,
		Dashboard:        data,
		Account:          accountCfg,
		Checks:           checks,
		TrustProxy:       appCfg.TrustProxyHeaders,
		ReadinessTimeout: appCfg.ReadinessTimeout,
	})

	log.InfoContext(ctx, "starting console",
		slog.String("session_store", appCfg.SessionStore),
		slog.String("user_store", appCfg.UserStore),
		logger.Component("main"),
	)

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, router)
}

func devSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate cookie secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
