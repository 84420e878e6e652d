package orders

import "service-food-delivery/internal/domain"

// Event is a placed order as received from the orders stream.
type Event struct {
	OrderID      string
	RestaurantID int64
	// Items maps menu item ID to the ordered quantity.
	Items    map[int64]int
	Delivery domain.Location
}

func (e Event) request() domain.EstimateRequest {
	return domain.EstimateRequest{
		RestaurantID: e.RestaurantID,
		Delivery:     e.Delivery,
		Items:        e.Items,
	}
}
