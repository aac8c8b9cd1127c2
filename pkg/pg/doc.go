// Package pg provides the PostgreSQL backend for the subscription store using
// the pgx/v5 driver.
//
//   - Config is populated from the environment via github.com/caarlos0/env.
//   - Connect opens a *pgxpool.Pool, retrying with a linearly growing pause.
//   - Migrate applies the embedded goose migrations that create the kv_hash table.
//   - HashStorage maps hash-table operations onto kv_hash rows.
//   - Healthcheck returns a readiness probe closure.
//
// # Usage
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//
//	store := pg.NewHashStorage(pool)
package pg
