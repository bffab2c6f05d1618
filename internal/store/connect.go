package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/ogmi/internal/retry"
	"github.com/vvka-141/ogmi/pkg/ogmi"
)

// Pool settings for a short-lived CLI process.
const (
	DefaultMaxConns        = 4
	DefaultMinConns        = 0
	DefaultMaxConnIdleTime = 5 * time.Minute
)

// Open connects to PostgreSQL, retrying transient failures according to
// cfg.Retry, and returns a Store that owns the pool.
func Open(ctx context.Context, cfg ogmi.StoreConfig, opts ...Option) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w: %w", ogmi.ErrInvalidConfig, err)
	}
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns
	poolConfig.MaxConnIdleTime = DefaultMaxConnIdleTime

	s := New(nil, opts...)
	executor := retry.NewExecutor(retry.NewPostgreSQLErrorClassifier(), retry.NewBackoffFromConfig(cfg.Retry)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			s.logger.Verbose("Database connection attempt %d failed, retrying in %s: %v", attempt+1, delay, err)
		})

	pool, err := retry.Do(ctx, executor, func(ctx context.Context) (*pgxpool.Pool, error) {
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return pool, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s:%d/%s: %w: %w",
			poolConfig.ConnConfig.Host, poolConfig.ConnConfig.Port, poolConfig.ConnConfig.Database, ogmi.ErrStoreFailed, err)
	}

	s.db = pool
	s.close = pool.Close
	return s, nil
}
