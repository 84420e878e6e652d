package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/repository"
)

var (
	newPool      = repository.NewPool
	ensureSchema = repository.EnsureSchema
)

// dbConnectFunc opens the Postgres pool used by both containers.
type dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

func connectDbWithRetry(
	ctx context.Context,
	logger logx.Logger,
	dsn string,
	retries int,
	delay time.Duration,
) (*pgxpool.Pool, error) {
	var lastErr error
	const attemptTimeout = 3 * time.Second
	for i := 1; i <= retries; i++ {
		retriesCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		pool, err := newPool(retriesCtx, dsn)
		cancel()
		if err == nil {
			logger.Info("db connected", logx.Int("attempt", i))
			return pool, nil
		}
		lastErr = err
		logger.Warn("db connect failed",
			logx.Int("attempt", i),
			logx.Int("retries", retries),
			logx.Err(err),
		)
		if i < retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}

// connectAndMigrate connects with retries and creates the schema if missing.
func connectAndMigrate(
	ctx context.Context,
	logger logx.Logger,
	dsn string,
	retries int,
	delay time.Duration,
) (*pgxpool.Pool, error) {
	pool, err := connectDbWithRetry(ctx, logger, dsn, retries, delay)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return pool, nil
}
