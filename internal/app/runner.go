package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"service-food-delivery/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP service
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP server using the provided DI container and blocks until shutdown
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })
	return logger
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(ctx context.Context, logger logx.Logger, pool *pgxpool.Pool, server *http.Server) error {
	serveErr := startServer(server, logger)

	var err error
	select {
	case <-ctx.Done():
		logger.Info("shutting down service-food-delivery")
		err = ctx.Err()
	case err = <-serveErr:
		logger.Error("listen error", logx.Err(err))
	}

	gracefulShutdown(server, logger, shutdownTimeout)
	closeResources(pool, server, logger)
	return err
}

func startServer(server *http.Server, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("service-food-delivery listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
}
