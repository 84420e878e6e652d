package kafka_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/service/orders"
	"service-food-delivery/internal/transport/kafka"
)

func TestToDomain_TrimsAndCopiesFields(t *testing.T) {
	t.Parallel()

	dto := kafka.OrderPlacedDTO{
		OrderID:      "  order-1  ",
		RestaurantID: 4,
		Items: []kafka.OrderItemDTO{
			{MenuID: 10, Quantity: 2},
			{MenuID: 11, Quantity: 1},
		},
		DeliveryLocation: kafka.LocationDTO{Latitude: 48.85, Longitude: 2.35, Address: "  10 Rue de Rivoli "},
	}

	got, err := kafka.ToDomain(dto)
	require.NoError(t, err)

	require.Equal(t, orders.Event{
		OrderID:      "order-1",
		RestaurantID: 4,
		Items:        map[int64]int{10: 2, 11: 1},
		Delivery: domain.Location{
			Coordinates: domain.Coordinates{Latitude: 48.85, Longitude: 2.35},
			Address:     "10 Rue de Rivoli",
		},
	}, got)
}

func TestToDomain_KeepsNonPositiveQuantities(t *testing.T) {
	t.Parallel()

	got, err := kafka.ToDomain(kafka.OrderPlacedDTO{
		OrderID: "o1",
		Items:   []kafka.OrderItemDTO{{MenuID: 1, Quantity: 0}},
	})
	require.NoError(t, err)
	require.Equal(t, map[int64]int{1: 0}, got.Items, "quantity rules belong to the estimator")
}

func TestToDomain_RejectsDuplicateMenuItem(t *testing.T) {
	t.Parallel()

	_, err := kafka.ToDomain(kafka.OrderPlacedDTO{
		OrderID: "o1",
		Items:   []kafka.OrderItemDTO{{MenuID: 1, Quantity: 1}, {MenuID: 1, Quantity: 3}},
	})
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestPermanent(t *testing.T) {
	t.Parallel()

	require.NoError(t, kafka.Permanent(nil))

	err := kafka.Permanent(errBoom)
	var perm kafka.PermanentError
	require.ErrorAs(t, err, &perm)
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, "boom", err.Error())
}

var errBoom = errors.New("boom")
