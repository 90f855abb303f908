package purchase_test

import (
	"testing"
	"time"

	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, item string, quantity int) *purchase.Order {
	t.Helper()
	supplier, err := kernel.NewName("supplier", "Local Roaster")
	require.NoError(t, err)
	o, err := purchase.NewOrder(kernel.NewUUID(), kernel.MustItemName(item), quantity, supplier)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	supplier, _ := kernel.NewName("supplier", "Local Roaster")

	t.Run("should create a pending order and record it", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := purchase.NewOrder(id, kernel.MustItemName("Coffee Beans"), 20, supplier)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "Coffee Beans", o.Item().String())
		assert.Equal(t, 20, o.Quantity())
		assert.Equal(t, "Local Roaster", o.Supplier().String())
		assert.Equal(t, purchase.Pending, o.Status())
		assert.False(t, o.CreatedAt().IsZero())

		events := o.Events()
		require.Len(t, events, 1)
		assert.Equal(t, "Order Created: Coffee Beans (+20)", events[0].Message())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -5} {
			o, err := purchase.NewOrder(kernel.NewUUID(), kernel.MustItemName("Milk"), qty, supplier)
			require.ErrorIs(t, err, errs.ErrValidation)
			assert.Nil(t, o)
		}
	})

	t.Run("should join every validation error", func(t *testing.T) {
		o, err := purchase.NewOrder(kernel.UUID{}, kernel.ItemName{}, 0, kernel.Name{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "item")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "supplier")
	})

	t.Run("restore records no events", func(t *testing.T) {
		at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		o, err := purchase.RestoreOrder(kernel.NewUUID(), kernel.MustItemName("Milk"), 20, supplier, purchase.Approved, at)

		require.NoError(t, err)
		assert.Equal(t, purchase.Approved, o.Status())
		assert.Equal(t, at, o.CreatedAt())
		assert.Empty(t, o.Events())
	})

	t.Run("restore rejects unknown status", func(t *testing.T) {
		_, err := purchase.RestoreOrder(kernel.NewUUID(), kernel.MustItemName("Milk"), 20, supplier, purchase.Unknown, time.Now())
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *purchase.Order
	assert.Equal(t, purchase.ErrOrderIsNotConstructed, nilOrder.Validate())

	var zero purchase.Order
	assert.Equal(t, purchase.ErrOrderIsNotConstructed, zero.Validate())
}

func TestOrder_Approve(t *testing.T) {
	t.Run("should approve a pending order", func(t *testing.T) {
		o := newPendingOrder(t, "Coffee Beans", 20)
		o.DrainEvents()

		require.NoError(t, o.Approve())

		assert.Equal(t, purchase.Approved, o.Status())
		events := o.DrainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "Approved: Coffee Beans. Stock increased.", events[0].Message())
	})

	t.Run("second approval fails and records nothing", func(t *testing.T) {
		o := newPendingOrder(t, "Coffee Beans", 20)
		require.NoError(t, o.Approve())
		o.DrainEvents()

		err := o.Approve()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, purchase.Approved, o.Status())
		assert.Empty(t, o.Events())
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("rejected order cannot be approved", func(t *testing.T) {
		o := newPendingOrder(t, "Milk", 10)
		require.NoError(t, o.Reject())
		o.DrainEvents()

		err := o.Approve()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, "invalid status transition: purchase order cannot move from Rejected to Approved", err.Error())
		assert.Equal(t, purchase.Rejected, o.Status())
		assert.Empty(t, o.Events())
	})

	t.Run("records rejection", func(t *testing.T) {
		o := newPendingOrder(t, "Milk", 10)
		o.DrainEvents()

		require.NoError(t, o.Reject())

		assert.Equal(t, "Rejected: Milk", o.Events()[0].Message())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a pending order", func(t *testing.T) {
		o := newPendingOrder(t, "Sugar", 3)
		o.DrainEvents()

		require.NoError(t, o.Cancel())

		assert.Equal(t, purchase.Cancelled, o.Status())
		assert.Equal(t, "Cancelled: Sugar", o.Events()[0].Message())
	})

	t.Run("approved order cannot be cancelled", func(t *testing.T) {
		o := newPendingOrder(t, "Sugar", 3)
		require.NoError(t, o.Approve())

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, purchase.Approved, o.Status())
	})

	t.Run("cancelled order cannot be cancelled again", func(t *testing.T) {
		o := newPendingOrder(t, "Sugar", 3)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
	})
}
