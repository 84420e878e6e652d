package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/IBM/sarama"

	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/service/orders"
)

// HandleFunc processes a single orders.Event from Kafka.
// Returning a PermanentError drops the message; any other error leaves it uncommitted.
type HandleFunc func(context.Context, orders.Event) error

var newConsumerGroup = sarama.NewConsumerGroup

const defaultRetryDelay = time.Second

// Consumer wraps a Sarama consumer group and dispatches events to a handler.
type Consumer struct {
	group      sarama.ConsumerGroup
	topic      string
	handler    HandleFunc
	logger     logx.Logger
	// retryDelay is the pause after a failed consume round.
	retryDelay time.Duration
}

// NewConsumer creates a new Kafka consumer.
// It returns nil, nil when brokers, group or topic are not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = false

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:      group,
		topic:      topic,
		handler:    h,
		logger:     logger,
		retryDelay: defaultRetryDelay,
	}, nil
}

// Run consumes until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}
	delay := c.retryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	c.logger.Info("kafka consumer started", logx.String("topic", c.topic))

	for {
		err := c.group.Consume(ctx, []string{c.topic}, h)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// sarama reports ConsumeClaim errors on its error channel and returns nil here.
		handlerFailed := h.failed.Swap(false)
		switch {
		case err != nil:
			c.logger.Error("kafka consume error", logx.Err(err))
		case handlerFailed:
			c.logger.Warn("kafka handler failed, backing off", logx.Duration("delay", delay))
		default:
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// Close leaves the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct {
	c *Consumer
	// failed is set when a message was left for redelivery in the last round.
	failed atomic.Bool
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	logger := h.c.logger
	for {
		select {
		case <-sess.Context().Done():
			return nil
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.handle(sess.Context(), msg); err != nil {
				logger.Warn("kafka handle failed, will retry",
					logx.String("topic", msg.Topic),
					logx.Int64("offset", msg.Offset),
					logx.Err(err),
				)
				h.failed.Store(true)
				return err
			}
			sess.MarkMessage(msg, "")
		}
	}
}

// handle returns an error only when the message must be redelivered.
func (h *groupHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	logger := h.c.logger.With(logx.Int64("offset", msg.Offset))

	var dto OrderPlacedDTO
	if err := json.Unmarshal(msg.Value, &dto); err != nil {
		logger.Warn("kafka bad json", logx.Err(err))
		return nil
	}
	ev, err := ToDomain(dto)
	if err != nil {
		logger.Warn("kafka invalid event", logx.Err(err))
		return nil
	}
	if ev.OrderID == "" {
		logger.Warn("kafka empty order_id")
		return nil
	}

	err = h.c.handler(ctx, ev)
	var perm PermanentError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &perm):
		logger.Warn("kafka handle failed, skipping message",
			logx.String("order_id", ev.OrderID),
			logx.Err(err),
		)
		return nil
	default:
		return err
	}
}
