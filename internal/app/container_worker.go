package app

import (
	"go.uber.org/dig"

	"service-food-delivery/internal/config"
	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/repository"
	"service-food-delivery/internal/service/estimate"
	"service-food-delivery/internal/service/orders"
	"service-food-delivery/internal/transport/kafka"
)

func newOrdersProcessor(svc *estimate.Service, repo *repository.EstimateRepo, logger logx.Logger) *orders.Processor {
	return orders.NewProcessor(svc, repo, logger)
}

func newOrdersConsumer(cfg *config.Config, logger logx.Logger, p *orders.Processor) (*kafka.Consumer, error) {
	k := cfg.Kafka
	return kafka.NewConsumer(logger, k.Brokers, k.GroupID, k.OrdersTopic, makeOrdersKafka(p))
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		newOrdersProcessor,
		newOrdersConsumer,
	)
}
