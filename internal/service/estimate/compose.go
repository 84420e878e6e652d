package estimate

import (
	"fmt"
	"math"
	"time"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

// maxTotalMinutes bounds an estimate to 30 days so the projected time stays representable.
const maxTotalMinutes = 30 * 24 * 60

// Overheads are the fixed handoff times added around the ride.
type Overheads struct {
	PickupMinutes  float64
	DropoffMinutes float64
}

// DefaultOverheads returns 5 minutes for pickup and 5 for dropoff.
func DefaultOverheads() Overheads {
	return Overheads{PickupMinutes: 5, DropoffMinutes: 5}
}

// checkTotal rejects totals that are negative, not a number or beyond maxTotalMinutes.
func checkTotal(minutes float64) error {
	if math.IsNaN(minutes) || minutes < 0 || minutes > maxTotalMinutes {
		return fmt.Errorf("%w: estimated time of %.0f minutes is out of range", apperr.ErrInvalid, minutes)
	}
	return nil
}

// compose merges the resolved order, its preparation time and the route into an Estimate.
// Values stay unrounded until the result is built.
func (s *Service) compose(
	order resolvedOrder,
	prepMinutes int,
	route domain.Route,
	delivery domain.Location,
) (domain.Estimate, error) {
	distanceKM := route.DistanceMeters / 1000
	cyclingMinutes := route.DurationSeconds / 60
	totalMinutes := float64(prepMinutes) + s.overheads.PickupMinutes + cyclingMinutes + s.overheads.DropoffMinutes
	if err := checkTotal(totalMinutes); err != nil {
		return domain.Estimate{}, err
	}

	deliveryAt := s.clock.Now().Add(time.Duration(totalMinutes * float64(time.Minute)))
	price, _ := order.total.Round(2).Float64()

	return domain.Estimate{
		RestaurantName:      order.restaurant.Name,
		RestaurantAddress:   order.restaurant.Address,
		DeliveryAddress:     delivery.Address,
		DistanceKM:          round2(distanceKM),
		PreparationMinutes:  prepMinutes,
		CyclingMinutes:      round2(cyclingMinutes),
		TotalMinutes:        round2(totalMinutes),
		EstimatedDeliveryAt: deliveryAt,
		TotalPrice:          price,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
