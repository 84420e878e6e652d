package handlers

import "time"

type deliveryLocationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type estimateRequest struct {
	RestaurantID     int64               `json:"restaurant_id"`
	DeliveryLocation deliveryLocationDTO `json:"delivery_location"`
	// MenuItems maps menu item ID (as a JSON object key) to quantity.
	MenuItems map[string]int `json:"menu_items"`
}

type estimateResponse struct {
	RestaurantName            string    `json:"restaurant_name"`
	RestaurantAddress         string    `json:"restaurant_address"`
	DeliveryAddress           string    `json:"delivery_address"`
	DistanceKM                float64   `json:"distance_km"`
	PreparationTimeMinutes    int       `json:"preparation_time_minutes"`
	EstimatedDeliveryDuration float64   `json:"estimated_delivery_duration_minutes"`
	TotalEstimatedTimeMinutes float64   `json:"total_estimated_time_minutes"`
	EstimatedDeliveryTime     time.Time `json:"estimated_delivery_time"`
	TotalOrderPrice           float64   `json:"total_order_price"`
}

type snapshotResponse struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	RestaurantID int64     `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
	estimateResponse
}
