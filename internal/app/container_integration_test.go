//go:build integration

package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"service-food-delivery/internal/app"
	"service-food-delivery/internal/config"
)

func startPostgres(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("food_delivery_app"),
		postgres.WithUsername("app_user"),
		postgres.WithPassword("app_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	t.Setenv("POSTGRES_HOST", host)
	t.Setenv("POSTGRES_PORT", port.Port())
	t.Setenv("POSTGRES_USER", "app_user")
	t.Setenv("POSTGRES_PASSWORD", "app_pass")
	t.Setenv("POSTGRES_DB", "food_delivery_app")
}

func TestMustBuildContainer_Integration(t *testing.T) {
	startPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := app.MustBuildContainer(ctx)
	require.NotNil(t, c)

	err := c.Invoke(func(cfg *config.Config, pool *pgxpool.Pool, srv *http.Server) {
		require.NotNil(t, cfg)
		require.NotNil(t, pool)

		var n int
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT count(*) FROM information_schema.tables
			 WHERE table_name IN ('restaurants', 'menus', 'delivery_estimates')`).Scan(&n))
		require.Equal(t, 3, n)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/delivery-estimates/missing-order", nil)
		srv.Handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusNotFound, rr.Code)

		pool.Close()
	})
	require.NoError(t, err)
}
