package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

func (r estimateRequest) toModel() (domain.EstimateRequest, error) {
	if r.RestaurantID <= 0 {
		return domain.EstimateRequest{}, fmt.Errorf("%w: restaurant_id must be positive", apperr.ErrInvalid)
	}

	items := make(map[int64]int, len(r.MenuItems))
	for key, qty := range r.MenuItems {
		id, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil || id <= 0 {
			return domain.EstimateRequest{}, fmt.Errorf("%w: invalid menu item id %q", apperr.ErrInvalid, key)
		}
		if _, dup := items[id]; dup {
			return domain.EstimateRequest{}, fmt.Errorf("%w: menu item %d listed more than once", apperr.ErrInvalid, id)
		}
		items[id] = qty
	}

	return domain.EstimateRequest{
		RestaurantID: r.RestaurantID,
		Delivery: domain.Location{
			Coordinates: domain.Coordinates{
				Latitude:  r.DeliveryLocation.Latitude,
				Longitude: r.DeliveryLocation.Longitude,
			},
			Address: r.DeliveryLocation.Address,
		},
		Items: items,
	}, nil
}

func estimateToResponse(e domain.Estimate) estimateResponse {
	return estimateResponse{
		RestaurantName:            e.RestaurantName,
		RestaurantAddress:         e.RestaurantAddress,
		DeliveryAddress:           e.DeliveryAddress,
		DistanceKM:                e.DistanceKM,
		PreparationTimeMinutes:    e.PreparationMinutes,
		EstimatedDeliveryDuration: e.CyclingMinutes,
		TotalEstimatedTimeMinutes: e.TotalMinutes,
		EstimatedDeliveryTime:     e.EstimatedDeliveryAt,
		TotalOrderPrice:           e.TotalPrice,
	}
}

func snapshotToResponse(s domain.EstimateSnapshot) snapshotResponse {
	return snapshotResponse{
		ID:               s.ID,
		OrderID:          s.OrderID,
		RestaurantID:     s.RestaurantID,
		CreatedAt:        s.CreatedAt,
		estimateResponse: estimateToResponse(s.Estimate),
	}
}
