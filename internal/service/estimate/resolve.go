package estimate

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

// MaxQuantity is the largest quantity accepted for a single menu item.
const MaxQuantity = 1000

// resolvedOrder is the output of order resolution; it lives for one estimate only.
type resolvedOrder struct {
	restaurant domain.Restaurant
	lines      []domain.ResolvedLine
	total      decimal.Decimal
}

// requestedLines validates the quantity map and returns the lines sorted by menu item ID.
func requestedLines(items map[int64]int) ([]domain.RequestedLine, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: must include at least one menu item", apperr.ErrInvalid)
	}

	lines := make([]domain.RequestedLine, 0, len(items))
	for id, qty := range items {
		if qty <= 0 {
			return nil, fmt.Errorf("%w: quantity of menu item %d must be positive", apperr.ErrInvalid, id)
		}
		if qty > MaxQuantity {
			return nil, fmt.Errorf("%w: quantity of menu item %d exceeds %d", apperr.ErrInvalid, id, MaxQuantity)
		}
		lines = append(lines, domain.RequestedLine{MenuItemID: id, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].MenuItemID < lines[j].MenuItemID })
	return lines, nil
}

// resolve loads the restaurant and every requested menu item, stopping at the first failure.
func (s *Service) resolve(ctx context.Context, restaurantID int64, items map[int64]int) (resolvedOrder, error) {
	requested, err := requestedLines(items)
	if err != nil {
		return resolvedOrder{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	restaurant, err := s.restaurants.Get(ctx, restaurantID)
	if err != nil {
		return resolvedOrder{}, fmt.Errorf("get restaurant %d: %w", restaurantID, err)
	}
	if restaurant == nil {
		return resolvedOrder{}, fmt.Errorf("%w: restaurant %d", apperr.ErrNotFound, restaurantID)
	}

	order := resolvedOrder{
		restaurant: *restaurant,
		lines:      make([]domain.ResolvedLine, 0, len(requested)),
		total:      decimal.Zero,
	}
	for _, line := range requested {
		item, err := s.menu.Get(ctx, line.MenuItemID)
		if err != nil {
			return resolvedOrder{}, fmt.Errorf("get menu item %d: %w", line.MenuItemID, err)
		}
		if item == nil {
			return resolvedOrder{}, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, line.MenuItemID)
		}
		if item.RestaurantID != restaurant.ID {
			return resolvedOrder{}, fmt.Errorf("%w: menu item %d does not belong to restaurant %d",
				apperr.ErrInvalid, item.ID, restaurant.ID)
		}

		order.lines = append(order.lines, domain.ResolvedLine{Item: *item, Quantity: line.Quantity})
		order.total = order.total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return order, nil
}
