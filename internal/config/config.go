package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port      int
	LogLevel  string
	DB        DB
	Routing   Routing
	Estimate  Estimate
	Kafka     Kafka
	RateLimit RateLimit
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns a postgres:// connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Routing stores settings of the OSRM routing service.
type Routing struct {
	BaseURL string
	Profile string
	Timeout time.Duration
}

// Estimate stores the fixed handoff overheads added to every estimate.
type Estimate struct {
	PickupMinutes  float64
	DropoffMinutes float64
}

// Kafka stores consumer settings of the order-placed worker.
type Kafka struct {
	Brokers     []string
	GroupID     string
	OrdersTopic string
}

// RateLimit stores per-client HTTP rate limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
	// TrustProxy keys clients by X-Forwarded-For instead of the peer address.
	TrustProxy bool
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		LogLevel:  envString("LOG_LEVEL", "info"),
		DB:        DefaultDB(),
		Routing:   DefaultRouting(),
		Estimate:  DefaultEstimate(),
		Kafka:     DefaultKafka(),
		RateLimit: DefaultRateLimit(),
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}

	if err := loadDB(&cfg.DB); err != nil {
		return nil, err
	}
	if err := loadRouting(&cfg.Routing); err != nil {
		return nil, err
	}
	if err := loadEstimate(&cfg.Estimate); err != nil {
		return nil, err
	}
	loadKafka(&cfg.Kafka)
	if err := loadRateLimit(&cfg.RateLimit); err != nil {
		return nil, err
	}

	fs := pflag.CommandLine
	if fs.Lookup("port") == nil {
		fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if f := fs.Lookup("port"); f != nil && f.Changed {
		p, err := strconv.Atoi(f.Value.String())
		if err != nil {
			return nil, fmt.Errorf("parse flags: %w", err)
		}
		cfg.Port = p
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	return cfg, nil
}

func loadDB(db *DB) error {
	db.Host = envString("POSTGRES_HOST", db.Host)
	db.Port = envString("POSTGRES_PORT", db.Port)
	db.User = envString("POSTGRES_USER", db.User)
	db.Pass = envString("POSTGRES_PASSWORD", db.Pass)
	db.Name = envString("POSTGRES_DB", db.Name)

	if p, err := strconv.Atoi(db.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid POSTGRES_PORT: %q", db.Port)
	}
	return nil
}

func loadRouting(r *Routing) error {
	r.BaseURL = strings.TrimRight(envString("ROUTING_BASE_URL", r.BaseURL), "/")
	r.Profile = envString("ROUTING_PROFILE", r.Profile)

	if _, err := url.ParseRequestURI(r.BaseURL); err != nil {
		return fmt.Errorf("invalid ROUTING_BASE_URL: %w", err)
	}
	timeout, err := envDuration("ROUTING_TIMEOUT", r.Timeout)
	if err != nil {
		return err
	}
	if timeout <= 0 {
		return fmt.Errorf("invalid ROUTING_TIMEOUT: %s", timeout)
	}
	r.Timeout = timeout
	return nil
}

func loadEstimate(e *Estimate) error {
	pickup, err := envFloat("ESTIMATE_PICKUP_MINUTES", e.PickupMinutes)
	if err != nil {
		return err
	}
	dropoff, err := envFloat("ESTIMATE_DROPOFF_MINUTES", e.DropoffMinutes)
	if err != nil {
		return err
	}
	if pickup < 0 || dropoff < 0 {
		return fmt.Errorf("estimate overheads must not be negative")
	}
	e.PickupMinutes, e.DropoffMinutes = pickup, dropoff
	return nil
}

func loadKafka(k *Kafka) {
	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		brokers := make([]string, 0)
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
		k.Brokers = brokers
	}
	k.GroupID = envString("KAFKA_GROUP_ID", k.GroupID)
	k.OrdersTopic = envString("KAFKA_ORDERS_TOPIC", k.OrdersTopic)
}

func loadRateLimit(rl *RateLimit) error {
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_ENABLED: %w", err)
		}
		rl.Enabled = enabled
	}
	rate, err := envFloat("RATE_LIMIT_RATE", rl.Rate)
	if err != nil {
		return err
	}
	rl.Rate = rate
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
		}
		rl.Burst = burst
	}
	ttl, err := envDuration("RATE_LIMIT_TTL", rl.TTL)
	if err != nil {
		return err
	}
	rl.TTL = ttl
	if v := os.Getenv("RATE_LIMIT_TRUST_PROXY"); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_TRUST_PROXY: %w", err)
		}
		rl.TrustProxy = trust
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
