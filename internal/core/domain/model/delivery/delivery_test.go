package delivery_test

import (
	"fmt"
	"testing"
	"time"

	"retailops/internal/core/domain/model/delivery"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(t *testing.T) (kernel.Name, kernel.Name) {
	t.Helper()
	customer, err := kernel.NewName("customer", "Cafe Uno")
	require.NoError(t, err)
	driver, err := kernel.NewName("driver", "Ramon")
	require.NoError(t, err)
	return customer, driver
}

func TestNewDelivery(t *testing.T) {
	customer, driver := names(t)

	t.Run("should create a scheduled delivery and record it", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), customer, kernel.MustItemName("Bagel"), driver)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Scheduled, d.Status())
		assert.Equal(t, "Cafe Uno", d.Customer().String())
		assert.Equal(t, "Ramon", d.Driver().String())
		events := d.Events()
		require.Len(t, events, 1)
		assert.Equal(t, "Order Scheduled: Bagel for Cafe Uno", events[0].Message())
	})

	t.Run("should name each missing field", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.Name{}, kernel.ItemName{}, kernel.Name{})

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "customer")
		assert.Contains(t, err.Error(), "item")
		assert.Contains(t, err.Error(), "driver")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d delivery.Delivery
		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, d.Validate())
	})
}

func TestDelivery_SetStatus(t *testing.T) {
	customer, driver := names(t)
	all := []delivery.Status{delivery.Scheduled, delivery.InTransit, delivery.Delivered}

	for _, from := range all {
		for _, to := range all {
			t.Run(fmt.Sprintf("%s -> %s is accepted", from, to), func(t *testing.T) {
				id := kernel.NewUUID()
				d, err := delivery.RestoreDelivery(id, customer, kernel.MustItemName("Milk"), driver, from, time.Now())
				require.NoError(t, err)

				previous, err := d.SetStatus(to)

				require.NoError(t, err)
				assert.Equal(t, from, previous)
				assert.Equal(t, to, d.Status())
				events := d.Events()
				require.Len(t, events, 1)
				assert.Equal(t, fmt.Sprintf("Delivery %s status -> %s", id, to), events[0].Message())
				assert.Equal(t, to < from, from.IsRegression(to))
			})
		}
	}

	t.Run("should reject an unknown status", func(t *testing.T) {
		d, _ := delivery.NewDelivery(kernel.NewUUID(), customer, kernel.MustItemName("Milk"), driver)
		d.DrainEvents()

		_, err := d.SetStatus(delivery.Status(9))

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, delivery.Scheduled, d.Status())
		assert.Empty(t, d.Events())
	})
}

func TestParseStatus(t *testing.T) {
	testCases := map[string]delivery.Status{
		"Scheduled":  delivery.Scheduled,
		"In Transit": delivery.InTransit,
		"in transit": delivery.InTransit,
		"InTransit":  delivery.InTransit,
		"in_transit": delivery.InTransit,
		"DELIVERED":  delivery.Delivered,
	}
	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			got, err := delivery.ParseStatus(input)
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := delivery.ParseStatus("Lost")
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, "In Transit", delivery.InTransit.String())
	})
}
