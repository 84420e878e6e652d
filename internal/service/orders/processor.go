package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/logx"
)

// Processor estimates placed orders and stores the result.
type Processor struct {
	estimator Estimator
	store     SnapshotStore
	logger    logx.Logger
	newID     func() string
}

// NewProcessor creates a new orders.Processor.
func NewProcessor(estimator Estimator, store SnapshotStore, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{
		estimator: estimator,
		store:     store,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// Handle processes a single orders.Event. Errors keep the apperr kind of their cause.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	orderID := strings.TrimSpace(e.OrderID)
	if orderID == "" {
		return fmt.Errorf("%w: empty order_id", apperr.ErrInvalid)
	}

	est, err := p.estimator.Estimate(ctx, e.request())
	if err != nil {
		return fmt.Errorf("estimate order %s: %w", orderID, err)
	}

	snap := &domain.EstimateSnapshot{
		ID:           p.newID(),
		OrderID:      orderID,
		RestaurantID: e.RestaurantID,
		Estimate:     est,
	}
	if err := p.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("store estimate for order %s: %w", orderID, err)
	}

	p.logger.Info("order estimate stored",
		logx.String("event", "order_estimate_stored"),
		logx.String("order_id", orderID),
		logx.String("estimate_id", snap.ID),
		logx.Time("estimated_delivery_at", est.EstimatedDeliveryAt),
	)
	return nil
}
