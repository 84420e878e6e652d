//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"service-food-delivery/internal/domain"
)

// Estimator computes a delivery estimate for a prospective order.
type Estimator interface {
	Estimate(ctx context.Context, req domain.EstimateRequest) (domain.Estimate, error)
}

// SnapshotStore persists the estimate computed for a placed order.
type SnapshotStore interface {
	Save(ctx context.Context, s *domain.EstimateSnapshot) error
}
