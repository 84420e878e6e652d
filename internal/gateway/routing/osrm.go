// Package routing talks to an OSRM-compatible routing service.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/metrics"
)

const codeOK = "Ok"

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// OSRMGateway fetches a single route between two points. It does not retry.
// It is safe for concurrent use.
type OSRMGateway struct {
	session  *http.Client
	baseURL  string
	profile  string
	timeout  time.Duration
	logger   logx.Logger
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewOSRMGateway creates a gateway for baseURL using the given routing profile.
// requests and duration may be nil.
func NewOSRMGateway(
	baseURL string,
	profile string,
	timeout time.Duration,
	logger logx.Logger,
	requests *prometheus.CounterVec,
	duration prometheus.Histogram,
) *OSRMGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &OSRMGateway{
		session:  &http.Client{Timeout: timeout},
		baseURL:  strings.TrimRight(baseURL, "/"),
		profile:  profile,
		timeout:  timeout,
		logger:   logger,
		requests: requests,
		duration: duration,
	}
}

func (g *OSRMGateway) endpoint(from, to domain.Coordinates) string {
	coords := formatCoord(from) + ";" + formatCoord(to)
	q := url.Values{}
	q.Set("overview", "false")
	q.Set("alternatives", "false")
	q.Set("annotations", "false")
	return fmt.Sprintf("%s/route/v1/%s/%s?%s", g.baseURL, g.profile, coords, q.Encode())
}

// formatCoord renders a point in OSRM's lon,lat order.
func formatCoord(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Longitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Latitude, 'f', -1, 64)
}

// Route returns the first route from one point to the other.
// Failures wrap apperr.ErrUnavailable when the service cannot be reached or misbehaves,
// and apperr.ErrInvalid when it answers that no route exists.
func (g *OSRMGateway) Route(ctx context.Context, from, to domain.Coordinates) (_ domain.Route, err error) {
	start := time.Now()
	defer func() { g.observe(start, err) }()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := g.newRequest(ctx, g.endpoint(from, to))
	if err != nil {
		return domain.Route{}, fmt.Errorf("%w: routing: %v", apperr.ErrUnavailable, err)
	}

	resp, err := g.do(req)
	if err != nil {
		return domain.Route{}, g.classify(err)
	}
	defer resp.Body.Close()

	var rr routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return domain.Route{}, fmt.Errorf("%w: routing: decode response: %v", apperr.ErrUnavailable, err)
	}
	if rr.Code != codeOK || len(rr.Routes) == 0 {
		g.logger.Debug("routing service returned no route",
			logx.String("code", rr.Code),
			logx.String("message", rr.Message),
		)
		return domain.Route{}, fmt.Errorf("%w: could not calculate route", apperr.ErrInvalid)
	}

	first := rr.Routes[0]
	return domain.Route{DistanceMeters: first.Distance, DurationSeconds: first.Duration}, nil
}

func (g *OSRMGateway) classify(err error) error {
	var he *httpStatusError
	if errors.As(err, &he) {
		if he.Code == http.StatusTooManyRequests || he.Code >= 500 {
			g.logger.Warn("routing service error",
				logx.Int("status", he.Code),
				logx.String("body", he.Body),
			)
			return fmt.Errorf("%w: routing: %v", apperr.ErrUnavailable, he)
		}
		return fmt.Errorf("%w: could not calculate route: %v", apperr.ErrInvalid, he)
	}

	g.logger.Warn("routing service unreachable", logx.Err(err))
	return fmt.Errorf("%w: routing service unreachable: %v", apperr.ErrUnavailable, err)
}

func (g *OSRMGateway) observe(start time.Time, err error) {
	if g.duration != nil {
		g.duration.Observe(time.Since(start).Seconds())
	}
	if g.requests == nil {
		return
	}
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrInvalid):
		outcome = metrics.OutcomeInvalid
	case errors.Is(err, apperr.ErrUnavailable):
		outcome = metrics.OutcomeUnavailable
	default:
		outcome = metrics.OutcomeError
	}
	g.requests.WithLabelValues(outcome).Inc()
}
