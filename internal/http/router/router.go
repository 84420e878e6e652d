package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"service-food-delivery/internal/http/handlers"
)

const defaultRequestTimeout = 15 * time.Second

type options struct {
	middlewares    []func(http.Handler) http.Handler
	metrics        http.Handler
	requestTimeout time.Duration
}

// Option customizes the router.
type Option func(*options)

// WithMiddleware appends middleware after the base stack (request ID, recoverer).
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(o *options) { o.middlewares = append(o.middlewares, mw...) }
}

// WithMetrics serves h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(o *options) { o.metrics = h }
}

// WithRequestTimeout bounds every request. It must exceed the routing service timeout.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.requestTimeout = d
		}
	}
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h *handlers.Handlers, est *handlers.EstimateHandler, opts ...Option) http.Handler {
	o := options{requestTimeout: defaultRequestTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	for _, mw := range o.middlewares {
		r.Use(mw)
	}

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	if o.metrics != nil {
		r.Method(http.MethodGet, "/metrics", o.metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(o.requestTimeout))
		r.Post("/delivery-estimate", est.Create)
		r.Get("/delivery-estimates/{order_id}", est.GetByOrderID)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
