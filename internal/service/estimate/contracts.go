//go:generate mockgen -source=contracts.go -destination=estimate_mocks_test.go -package=estimate_test

package estimate

import (
	"context"
	"time"

	"service-food-delivery/internal/domain"
)

// RestaurantLookup resolves a restaurant by ID; a nil result means it does not exist.
type RestaurantLookup interface {
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// MenuLookup resolves a menu item by ID; a nil result means it does not exist.
type MenuLookup interface {
	Get(ctx context.Context, id int64) (*domain.MenuItem, error)
}

// RoutePlanner fetches a bicycle route between two points.
// Implementations report apperr.ErrUnavailable when the service cannot be reached
// and apperr.ErrInvalid when no route exists.
type RoutePlanner interface {
	Route(ctx context.Context, from, to domain.Coordinates) (domain.Route, error)
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }
