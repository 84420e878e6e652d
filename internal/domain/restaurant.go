package domain

import "github.com/shopspring/decimal"

// Restaurant is the read model of a restaurant used when estimating deliveries.
type Restaurant struct {
	ID      int64
	Name    string
	Address string
	Coordinates
}

// MenuItem is a snapshot of a menu entry read at estimate time.
type MenuItem struct {
	ID           int64
	RestaurantID int64
	Name         string
	Price        decimal.Decimal
	// PreparationMinutes is the kitchen time for a single unit.
	PreparationMinutes int
}
