package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "delivery",
	Pass: "delivery",
	Name: "food_delivery",
}

var defaultRouting = Routing{
	BaseURL: "http://router.project-osrm.org",
	Profile: "bike",
	Timeout: 10 * time.Second,
}

var defaultEstimate = Estimate{
	PickupMinutes:  5,
	DropoffMinutes: 5,
}

var defaultKafka = Kafka{
	GroupID:     "delivery-estimator",
	OrdersTopic: "orders.placed",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       5,
	Burst:      10,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultRouting returns the default routing service settings.
func DefaultRouting() Routing {
	return defaultRouting
}

// DefaultEstimate returns the default pickup and dropoff overheads.
func DefaultEstimate() Estimate {
	return defaultEstimate
}

// DefaultKafka returns the default worker consumer settings; brokers are empty.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
