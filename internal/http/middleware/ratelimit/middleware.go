package ratelimit

import (
	"io"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"service-food-delivery/internal/logx"
)

// Middleware rejects clients that exceed their request budget with 429.
type Middleware struct {
	logger     logx.Logger
	counter    prometheus.Counter
	limiter    Limiter
	trustProxy bool
}

// Option customizes a Middleware.
type Option func(*Middleware)

// WithTrustedProxy keys clients by the first X-Forwarded-For entry when present.
func WithTrustedProxy(trust bool) Option {
	return func(m *Middleware) { m.trustProxy = trust }
}

// New creates a Middleware. A nil limiter admits everything; counter may be nil.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter, opts ...Option) *Middleware {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	m := &Middleware{
		logger:  logger,
		counter: counter,
		limiter: limiter,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := m.clientKey(r)

			ok, wait := m.limiter.Allow(key)
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			if m.counter != nil {
				m.counter.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("client", key),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", retryAfter(wait))
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				m.logger.Debug("rate limit response write failed",
					logx.String("client", key),
					logx.Err(err),
				)
			}
		})
	}
}

// retryAfter renders wait in whole seconds, never less than one.
func retryAfter(wait time.Duration) string {
	secs := int(math.Ceil(wait.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

func (m *Middleware) clientKey(r *http.Request) string {
	if m.trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	return clientIP(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
