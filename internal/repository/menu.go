package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-food-delivery/internal/domain"
)

// MenuRepo reads menu items.
type MenuRepo struct{ db *pgxpool.Pool }

// NewMenuRepo creates a new MenuRepo.
func NewMenuRepo(db *pgxpool.Pool) *MenuRepo { return &MenuRepo{db: db} }

// Get returns the menu item by its ID, or nil if there is none.
func (r *MenuRepo) Get(ctx context.Context, id int64) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.db.QueryRow(ctx,
		`SELECT id, restaurant_id, name, price, preparation_time FROM menus WHERE id=$1`, id,
	).Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.PreparationMinutes)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item %d: %w", id, err)
	}
	return &item, nil
}
