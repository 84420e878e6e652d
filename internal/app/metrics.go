package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-food-delivery/internal/http/middleware"
	"service-food-delivery/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter     `name:"rate_limit_exceeded_total"`
	RoutingRequestsTotal   *prometheus.CounterVec `name:"routing_requests_total"`
	RoutingRequestDuration prometheus.Histogram   `name:"routing_request_duration_seconds"`
	EstimatesTotal         *prometheus.CounterVec `name:"delivery_estimates_total"`
	HTTP                   *middleware.HTTPMetrics
}

// provideMetrics registers collectors on the default registerer.
// Collectors that are already registered are reused.
func provideMetrics() (metricsOut, error) {
	reg := prometheus.DefaultRegisterer
	var (
		out metricsOut
		err error
	)

	if out.RateLimitExceededTotal, err = register(reg, "rate_limit_exceeded_total",
		metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.RoutingRequestsTotal, err = register(reg, "routing_requests_total",
		metrics.NewRoutingRequestsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.RoutingRequestDuration, err = register(reg, "routing_request_duration_seconds",
		metrics.NewRoutingRequestDuration()); err != nil {
		return metricsOut{}, err
	}
	if out.EstimatesTotal, err = register(reg, "delivery_estimates_total",
		metrics.NewEstimatesTotal()); err != nil {
		return metricsOut{}, err
	}

	httpMetrics := middleware.NewHTTPMetrics()
	if httpMetrics.Requests, err = register(reg, "http_requests_total", httpMetrics.Requests); err != nil {
		return metricsOut{}, err
	}
	if httpMetrics.Duration, err = register(reg, "http_request_duration_seconds", httpMetrics.Duration); err != nil {
		return metricsOut{}, err
	}
	out.HTTP = httpMetrics

	return out, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, name string, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
