package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-food-delivery/internal/domain"
)

// RestaurantRepo reads restaurants.
type RestaurantRepo struct{ db *pgxpool.Pool }

// NewRestaurantRepo creates a new RestaurantRepo.
func NewRestaurantRepo(db *pgxpool.Pool) *RestaurantRepo { return &RestaurantRepo{db: db} }

// Get returns the restaurant by its ID, or nil if there is none.
func (r *RestaurantRepo) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var res domain.Restaurant
	err := r.db.QueryRow(ctx,
		`SELECT id, name, address, latitude, longitude FROM restaurants WHERE id=$1`, id,
	).Scan(&res.ID, &res.Name, &res.Address, &res.Latitude, &res.Longitude)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return &res, nil
}
