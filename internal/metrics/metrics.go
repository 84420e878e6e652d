package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels shared by the routing and estimate metrics.
const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// NewRateLimitExceededTotal returns a counter of HTTP requests rejected by the rate limiter.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewRoutingRequestsTotal returns a counter of routing service calls by outcome.
func NewRoutingRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routing_requests_total",
		Help: "Total number of routing service calls by outcome",
	}, []string{"outcome"})
}

// NewRoutingRequestDuration returns a histogram of routing service call latency.
func NewRoutingRequestDuration() prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "routing_request_duration_seconds",
		Help:    "Duration of routing service calls.",
		Buckets: prometheus.DefBuckets,
	})
}

// NewEstimatesTotal returns a counter of delivery estimates by outcome.
func NewEstimatesTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_estimates_total",
		Help: "Total number of delivery estimates by outcome",
	}, []string{"outcome"})
}
