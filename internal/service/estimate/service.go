package estimate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/metrics"
)

// Service computes pre-order delivery estimates.
// It keeps no per-call state, so one instance serves concurrent requests.
type Service struct {
	restaurants   RestaurantLookup
	menu          MenuLookup
	router        RoutePlanner
	overheads     Overheads
	lookupTimeout time.Duration
	logger        logx.Logger
	clock         Clock
	outcomes      *prometheus.CounterVec
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the wall clock used to stamp the delivery time.
func WithClock(c Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithOutcomes counts every estimate by outcome label.
func WithOutcomes(c *prometheus.CounterVec) Option {
	return func(s *Service) { s.outcomes = c }
}

// NewService creates a Service. lookupTimeout bounds the restaurant and menu lookups;
// the routing call is bounded by the planner itself.
func NewService(
	restaurants RestaurantLookup,
	menu MenuLookup,
	router RoutePlanner,
	overheads Overheads,
	lookupTimeout time.Duration,
	logger logx.Logger,
	opts ...Option,
) *Service {
	if lookupTimeout <= 0 {
		lookupTimeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	s := &Service{
		restaurants:   restaurants,
		menu:          menu,
		router:        router,
		overheads:     overheads,
		lookupTimeout: lookupTimeout,
		logger:        logger,
		clock:         SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.lookupTimeout)
}

// Estimate resolves the requested lines, aggregates preparation time, fetches the
// bicycle route and composes the result. It never returns a partial Estimate.
func (s *Service) Estimate(ctx context.Context, req domain.EstimateRequest) (domain.Estimate, error) {
	est, err := s.estimate(ctx, req)
	s.observe(err)
	if err != nil {
		s.logger.Warn("delivery estimate failed",
			logx.String("event", "estimate_failed"),
			logx.Int64("restaurant_id", req.RestaurantID),
			logx.Err(err),
		)
		return domain.Estimate{}, err
	}

	s.logger.Info("delivery estimate computed",
		logx.String("event", "estimate_computed"),
		logx.Int64("restaurant_id", req.RestaurantID),
		logx.Int("preparation_minutes", est.PreparationMinutes),
		logx.Float64("total_minutes", est.TotalMinutes),
		logx.Float64("distance_km", est.DistanceKM),
	)
	return est, nil
}

func (s *Service) estimate(ctx context.Context, req domain.EstimateRequest) (domain.Estimate, error) {
	delivery := req.Delivery
	if err := delivery.Validate(); err != nil {
		return domain.Estimate{}, fmt.Errorf("%w: delivery location: %v", apperr.ErrInvalid, err)
	}

	order, err := s.resolve(ctx, req.RestaurantID, req.Items)
	if err != nil {
		return domain.Estimate{}, err
	}
	prep := PreparationMinutes(order.lines)
	if err := checkTotal(float64(prep)); err != nil {
		return domain.Estimate{}, err
	}

	route, err := s.router.Route(ctx, order.restaurant.Coordinates, delivery.Coordinates)
	if err != nil {
		return domain.Estimate{}, classifyRouteError(err)
	}

	return s.compose(order, prep, route, delivery)
}

// classifyRouteError keeps the planner's error kind and treats anything unclassified
// as the routing service being unavailable.
func classifyRouteError(err error) error {
	if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: routing: %v", apperr.ErrUnavailable, err)
}

func (s *Service) observe(err error) {
	if s.outcomes == nil {
		return
	}
	s.outcomes.WithLabelValues(Outcome(err)).Inc()
}

// Outcome maps an estimate error to its metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, apperr.ErrInvalid):
		return metrics.OutcomeInvalid
	case errors.Is(err, apperr.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, apperr.ErrUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}
