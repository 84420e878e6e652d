package handlers

import (
	"context"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/repository"
	"service-food-delivery/internal/service/estimate"
)

type estimateUsecase interface {
	Estimate(ctx context.Context, req domain.EstimateRequest) (domain.Estimate, error)
}

// NewEstimateUsecase wires an estimate.Service into an estimateUsecase.
func NewEstimateUsecase(svc *estimate.Service) estimateUsecase {
	return svc
}

type snapshotReader interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.EstimateSnapshot, error)
}

// NewSnapshotReader wires an EstimateRepo into a snapshotReader.
func NewSnapshotReader(repo *repository.EstimateRepo) snapshotReader {
	return repo
}
