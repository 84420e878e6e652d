package kafka

import (
	"fmt"
	"strings"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/service/orders"
)

// OrderPlacedDTO is the wire form of an order placed event.
type OrderPlacedDTO struct {
	OrderID          string         `json:"order_id"`
	RestaurantID     int64          `json:"restaurant_id"`
	Items            []OrderItemDTO `json:"items"`
	DeliveryLocation LocationDTO    `json:"delivery_location"`
}

// OrderItemDTO is one ordered menu item.
type OrderItemDTO struct {
	MenuID   int64 `json:"menu_id"`
	Quantity int   `json:"quantity"`
}

// LocationDTO is the delivery destination.
type LocationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// ToDomain converts OrderPlacedDTO to orders.Event.
// A menu item listed twice is rejected.
func ToDomain(dto OrderPlacedDTO) (orders.Event, error) {
	items := make(map[int64]int, len(dto.Items))
	for _, it := range dto.Items {
		if _, dup := items[it.MenuID]; dup {
			return orders.Event{}, fmt.Errorf("%w: menu item %d listed more than once", apperr.ErrInvalid, it.MenuID)
		}
		items[it.MenuID] = it.Quantity
	}

	return orders.Event{
		OrderID:      strings.TrimSpace(dto.OrderID),
		RestaurantID: dto.RestaurantID,
		Items:        items,
		Delivery: domain.Location{
			Coordinates: domain.Coordinates{
				Latitude:  dto.DeliveryLocation.Latitude,
				Longitude: dto.DeliveryLocation.Longitude,
			},
			Address: strings.TrimSpace(dto.DeliveryLocation.Address),
		},
	}, nil
}
