package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates and pings a new pgx connection pool.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// schema holds the tables read and written by this package. Statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS restaurants (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	address    TEXT NOT NULL,
	latitude   DOUBLE PRECISION NOT NULL,
	longitude  DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS menus (
	id               BIGSERIAL PRIMARY KEY,
	restaurant_id    BIGINT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
	name             TEXT NOT NULL,
	price            NUMERIC(10, 2) NOT NULL,
	preparation_time INTEGER NOT NULL DEFAULT 15 CHECK (preparation_time >= 0),
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS menus_restaurant_id_idx ON menus (restaurant_id);

CREATE TABLE IF NOT EXISTS delivery_estimates (
	id                    UUID PRIMARY KEY,
	order_id              TEXT NOT NULL UNIQUE,
	restaurant_id         BIGINT NOT NULL,
	restaurant_name       TEXT NOT NULL,
	restaurant_address    TEXT NOT NULL,
	delivery_address      TEXT NOT NULL,
	distance_km           DOUBLE PRECISION NOT NULL,
	preparation_minutes   INTEGER NOT NULL,
	cycling_minutes       DOUBLE PRECISION NOT NULL,
	total_minutes         DOUBLE PRECISION NOT NULL,
	estimated_delivery_at TIMESTAMPTZ NOT NULL,
	total_price           NUMERIC(12, 2) NOT NULL,
	created_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at            TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the tables used by the repositories if they do not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
