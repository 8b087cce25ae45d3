// Package pg connects to PostgreSQL with pgx/v5 and applies goose migrations
// shipped as embedded files.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrations, "migrations", cfg, log); err != nil {
//		return err
//	}
//
// Healthcheck adapts the pool to a readiness probe. IsNotFoundError and
// IsDuplicateKeyError classify driver errors for the stores built on top.
package pg
