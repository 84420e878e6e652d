package domain

import "time"

// RequestedLine is one (menu item, quantity) pair of a prospective order.
type RequestedLine struct {
	MenuItemID int64
	Quantity   int
}

// ResolvedLine is a RequestedLine joined with its menu item.
type ResolvedLine struct {
	Item     MenuItem
	Quantity int
}

// Route is the routing service answer for one origin/destination pair.
type Route struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// EstimateRequest carries everything the calculator needs from the caller.
type EstimateRequest struct {
	RestaurantID int64
	Delivery     Location
	// Items maps menu item ID to the requested quantity.
	Items map[int64]int
}

// Estimate is the computed delivery estimate. Fractional values are rounded to 2 decimals.
type Estimate struct {
	RestaurantName      string
	RestaurantAddress   string
	DeliveryAddress     string
	DistanceKM          float64
	PreparationMinutes  int
	CyclingMinutes      float64
	TotalMinutes        float64
	EstimatedDeliveryAt time.Time
	TotalPrice          float64
}

// EstimateSnapshot is an Estimate stored for a placed order.
type EstimateSnapshot struct {
	ID           string
	OrderID      string
	RestaurantID int64
	Estimate     Estimate
	CreatedAt    time.Time
}
