package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"service-food-delivery/internal/config"
	"service-food-delivery/internal/gateway/routing"
	"service-food-delivery/internal/http/handlers"
	"service-food-delivery/internal/http/middleware"
	"service-food-delivery/internal/http/middleware/ratelimit"
	"service-food-delivery/internal/http/router"
	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/repository"
	"service-food-delivery/internal/service/estimate"
)

const (
	dbConnectRetries = 10
	dbConnectDelay   = time.Second
	lookupTimeout    = 3 * time.Second
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectAndMigrate,
		logFatalf: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
			os.Exit(1)
		},
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the function called when the container cannot be built
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP service container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the order-placed worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container, err := b.buildBase(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container, err := b.buildBase(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildBase(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func newLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, cfg.LogLevel)
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		newLogger,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		return dbConnect(ctx, logger, cfg.DB.DSN(), dbConnectRetries, dbConnectDelay)
	}
	return provideAll(container, providerDB)
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}

type routingIn struct {
	dig.In

	Config   *config.Config
	Logger   logx.Logger
	Requests *prometheus.CounterVec `name:"routing_requests_total"`
	Duration prometheus.Histogram   `name:"routing_request_duration_seconds"`
}

func newRoutingGateway(in routingIn) *routing.OSRMGateway {
	r := in.Config.Routing
	return routing.NewOSRMGateway(r.BaseURL, r.Profile, r.Timeout, in.Logger, in.Requests, in.Duration)
}

type estimateIn struct {
	dig.In

	Config      *config.Config
	Logger      logx.Logger
	Restaurants *repository.RestaurantRepo
	Menu        *repository.MenuRepo
	Router      *routing.OSRMGateway
	Outcomes    *prometheus.CounterVec `name:"delivery_estimates_total"`
}

func newEstimateService(in estimateIn) *estimate.Service {
	overheads := estimate.Overheads{
		PickupMinutes:  in.Config.Estimate.PickupMinutes,
		DropoffMinutes: in.Config.Estimate.DropoffMinutes,
	}
	return estimate.NewService(
		in.Restaurants,
		in.Menu,
		in.Router,
		overheads,
		lookupTimeout,
		in.Logger,
		estimate.WithOutcomes(in.Outcomes),
	)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewRestaurantRepo,
		repository.NewMenuRepo,
		repository.NewEstimateRepo,
		newRoutingGateway,
		newEstimateService,
	)
}

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucket(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

type rateLimitIn struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter,
		ratelimit.WithTrustedProxy(in.Config.RateLimit.TrustProxy))
}

type routerIn struct {
	dig.In

	Config    *config.Config
	Logger    logx.Logger
	Base      *handlers.Handlers
	Estimate  *handlers.EstimateHandler
	RateLimit *ratelimit.Middleware
	Metrics   *middleware.HTTPMetrics
}

// requestTimeout leaves room for the lookups on top of a full routing timeout.
func requestTimeout(cfg *config.Config) time.Duration {
	return cfg.Routing.Timeout + 2*lookupTimeout
}

func newRouter(in routerIn) http.Handler {
	return router.New(in.Base, in.Estimate,
		router.WithMiddleware(
			middleware.Observability(in.Logger, in.Metrics),
			in.RateLimit.Handler(),
		),
		router.WithMetrics(promhttp.Handler()),
		router.WithRequestTimeout(requestTimeout(in.Config)),
	)
}

func newServer(cfg *config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      requestTimeout(cfg) + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		handlers.NewEstimateUsecase,
		handlers.NewSnapshotReader,
		handlers.NewEstimateHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		newServer,
	)
}
