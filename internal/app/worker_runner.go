package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/transport/kafka"
)

// WorkerRunner runs the order-placed worker
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes order events until the container context is canceled
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: set KAFKA_BROKERS, KAFKA_GROUP_ID and KAFKA_ORDERS_TOPIC")
	}
	defer closeWorker(pool, logger, consumer)

	logger.Info("service-food-delivery-worker started")
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer) {
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
