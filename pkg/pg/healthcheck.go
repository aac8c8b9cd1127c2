package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const probeTimeout = 2 * time.Second

// Healthcheck returns a readiness probe that pings the pool and checks that
// the subscription table exists.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, probeTimeout)
		defer cancel()

		if err := pool.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		var exists bool
		if err := pool.QueryRow(ctx, `SELECT to_regclass('kv_hash') IS NOT NULL`).Scan(&exists); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		if !exists {
			return errors.Join(ErrHealthcheckFailed, ErrSchemaMissing)
		}
		return nil
	}
}
