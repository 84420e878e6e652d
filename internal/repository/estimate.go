package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"service-food-delivery/internal/domain"
)

// EstimateRepo stores delivery estimates computed for placed orders.
type EstimateRepo struct{ db *pgxpool.Pool }

// NewEstimateRepo creates a new EstimateRepo.
func NewEstimateRepo(db *pgxpool.Pool) *EstimateRepo { return &EstimateRepo{db: db} }

// Save inserts the snapshot, or replaces the estimate already stored for its order.
// On return s holds the stored ID and creation time; a replaced row keeps its original ones.
func (r *EstimateRepo) Save(ctx context.Context, s *domain.EstimateSnapshot) error {
	e := s.Estimate
	err := r.db.QueryRow(ctx, `
		INSERT INTO delivery_estimates (
			id, order_id, restaurant_id, restaurant_name, restaurant_address, delivery_address,
			distance_km, preparation_minutes, cycling_minutes, total_minutes,
			estimated_delivery_at, total_price
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (order_id) DO UPDATE SET
			restaurant_id         = EXCLUDED.restaurant_id,
			restaurant_name       = EXCLUDED.restaurant_name,
			restaurant_address    = EXCLUDED.restaurant_address,
			delivery_address      = EXCLUDED.delivery_address,
			distance_km           = EXCLUDED.distance_km,
			preparation_minutes   = EXCLUDED.preparation_minutes,
			cycling_minutes       = EXCLUDED.cycling_minutes,
			total_minutes         = EXCLUDED.total_minutes,
			estimated_delivery_at = EXCLUDED.estimated_delivery_at,
			total_price           = EXCLUDED.total_price,
			updated_at            = now()
		RETURNING id::text, created_at
	`,
		s.ID, s.OrderID, s.RestaurantID, e.RestaurantName, e.RestaurantAddress, e.DeliveryAddress,
		e.DistanceKM, e.PreparationMinutes, e.CyclingMinutes, e.TotalMinutes,
		e.EstimatedDeliveryAt.UTC(), decimal.NewFromFloat(e.TotalPrice),
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("save estimate for order %s: %w", s.OrderID, err)
	}
	return nil
}

// GetByOrderID returns the estimate stored for the order, or nil if there is none.
func (r *EstimateRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.EstimateSnapshot, error) {
	var (
		s     domain.EstimateSnapshot
		price decimal.Decimal
	)
	e := &s.Estimate
	err := r.db.QueryRow(ctx, `
		SELECT id::text, order_id, restaurant_id, restaurant_name, restaurant_address, delivery_address,
			distance_km, preparation_minutes, cycling_minutes, total_minutes,
			estimated_delivery_at, total_price, created_at
		FROM delivery_estimates
		WHERE order_id=$1
	`, orderID).Scan(
		&s.ID, &s.OrderID, &s.RestaurantID, &e.RestaurantName, &e.RestaurantAddress, &e.DeliveryAddress,
		&e.DistanceKM, &e.PreparationMinutes, &e.CyclingMinutes, &e.TotalMinutes,
		&e.EstimatedDeliveryAt, &price, &s.CreatedAt,
	)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estimate for order %s: %w", orderID, err)
	}
	e.TotalPrice = price.InexactFloat64()
	e.EstimatedDeliveryAt = e.EstimatedDeliveryAt.UTC()
	s.CreatedAt = s.CreatedAt.UTC()
	return &s, nil
}
