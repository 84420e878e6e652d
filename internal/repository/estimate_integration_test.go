//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/repository"
)

type EstimateRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.EstimateRepo
}

func (s *EstimateRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewEstimateRepo(tcPool)
}

func (s *EstimateRepositorySuite) SetupTest() {
	s.Require().NoError(truncate(context.Background(), s.pool))
}

func snapshot(orderID string, total float64) *domain.EstimateSnapshot {
	return &domain.EstimateSnapshot{
		ID:           uuid.NewString(),
		OrderID:      orderID,
		RestaurantID: 7,
		Estimate: domain.Estimate{
			RestaurantName:      "Chez Nous",
			RestaurantAddress:   "1 Place du Marché",
			DeliveryAddress:     "42 Avenue Victor Hugo",
			DistanceKM:          3.21,
			PreparationMinutes:  22,
			CyclingMinutes:      10.5,
			TotalMinutes:        total,
			EstimatedDeliveryAt: time.Date(2025, 4, 25, 12, 42, 30, 0, time.UTC),
			TotalPrice:          29.2,
		},
	}
}

func (s *EstimateRepositorySuite) TestSaveAndGet() {
	ctx := context.Background()
	in := snapshot("order-1", 42.5)
	wantID := in.ID

	s.Require().NoError(s.repo.Save(ctx, in))
	s.Equal(wantID, in.ID)
	s.False(in.CreatedAt.IsZero())

	got, err := s.repo.GetByOrderID(ctx, "order-1")
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal(wantID, got.ID)
	s.Equal("order-1", got.OrderID)
	s.Equal(int64(7), got.RestaurantID)
	s.Equal(in.Estimate, got.Estimate)
}

func (s *EstimateRepositorySuite) TestSave_UpsertKeepsIdentity() {
	ctx := context.Background()
	first := snapshot("order-2", 40)
	s.Require().NoError(s.repo.Save(ctx, first))

	second := snapshot("order-2", 55.25)
	s.Require().NoError(s.repo.Save(ctx, second))
	s.Equal(first.ID, second.ID, "replaced row keeps its ID")

	got, err := s.repo.GetByOrderID(ctx, "order-2")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(55.25, got.Estimate.TotalMinutes)

	var n int
	s.Require().NoError(s.pool.QueryRow(ctx, `SELECT count(*) FROM delivery_estimates`).Scan(&n))
	s.Equal(1, n)
}

func (s *EstimateRepositorySuite) TestGetByOrderID_NotFound() {
	got, err := s.repo.GetByOrderID(context.Background(), "missing")
	s.Require().NoError(err)
	s.Nil(got)
}

func TestEstimateRepositorySuite(t *testing.T) {
	suite.Run(t, new(EstimateRepositorySuite))
}
