package app

import (
	"context"
	"errors"
	"time"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/service/orders"
	"service-food-delivery/internal/transport/kafka"
)

// eventTimeout bounds the handling of one order-placed event.
const eventTimeout = 30 * time.Second

type ordersHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

// makeOrdersKafka adapts the processor to the consumer. Rejected orders are
// permanent so the consumer commits them; everything else is redelivered.
func makeOrdersKafka(h ordersHandler) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		ctx, cancel := context.WithTimeout(ctx, eventTimeout)
		defer cancel()

		err := h.Handle(ctx, event)
		if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrNotFound) {
			return kafka.Permanent(err)
		}
		return err
	}
}
