// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver: connection pooling, goose migrations, and health checks,
// so that applications can bootstrap a resilient database layer with a few
// lines of code.
//
// The three cooperating building blocks are:
//
//   - Config: a declarative struct populated from environment variables via
//     github.com/caarlos0/env. It controls connection pool limits,
//     health-check cadence, and migration paths.
//
//   - Connect: opens a *pgxpool.Pool based on Config, retrying until the
//     database becomes available.
//
//   - Migrate: runs goose migrations against the same connection pool,
//     guaranteeing the schema is up to date before the service starts
//     serving traffic.
//
// # Usage
//
//	var cfg pg.Config
//	if err := env.Parse(&cfg); err != nil {
//	    panic(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    panic(err)
//	}
//
//	health := pg.Healthcheck(pool)
package pg
