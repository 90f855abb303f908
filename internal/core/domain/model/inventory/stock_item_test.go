package inventory_test

import (
	"testing"

	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockItem(t *testing.T) {
	t.Run("should start at zero", func(t *testing.T) {
		s, err := inventory.NewStockItem(kernel.MustItemName("Bagel"))

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "Bagel", s.Item().String())
		assert.Equal(t, 0, s.Quantity())
		assert.Empty(t, s.Events())
	})

	t.Run("should reject zero item", func(t *testing.T) {
		_, err := inventory.NewStockItem(kernel.ItemName{})
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject negative restored quantity", func(t *testing.T) {
		_, err := inventory.RestoreStockItem(kernel.MustItemName("Milk"), -1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative restored version", func(t *testing.T) {
		_, err := inventory.RestoreStockItem(kernel.MustItemName("Milk"), 3, -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var s inventory.StockItem
		assert.Equal(t, inventory.ErrStockItemIsNotConstructed, s.Validate())
	})
}

func TestStockItem_Adjust(t *testing.T) {
	testCases := []struct {
		name     string
		start    int
		delta    int
		expected int
		message  string
	}{
		{"positive delta", 40, 5, 45, "Manual Stock Edit: Sugar (+5)"},
		{"negative delta", 40, -3, 37, "Manual Stock Edit: Sugar (-3)"},
		{"over-withdrawal clamps at zero", 25, -30, 0, "Manual Stock Edit: Sugar (-30)"},
		{"exact withdrawal", 10, -10, 0, "Manual Stock Edit: Sugar (-10)"},
		{"zero delta", 7, 0, 7, "Manual Stock Edit: Sugar (0)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := inventory.RestoreStockItem(kernel.MustItemName("Sugar"), tc.start, 0)
			require.NoError(t, err)

			got := s.Adjust(tc.delta)

			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.expected, s.Quantity())
			events := s.DrainEvents()
			require.Len(t, events, 1)
			assert.Equal(t, tc.message, events[0].Message())
		})
	}

	t.Run("sequential edits never go below zero", func(t *testing.T) {
		s, _ := inventory.RestoreStockItem(kernel.MustItemName("Milk"), 25, 0)

		s.Adjust(-30)
		s.Adjust(-1)
		s.Adjust(4)

		assert.Equal(t, 4, s.Quantity())
		assert.Len(t, s.Events(), 3)
	})
}

func TestStockItem_Version(t *testing.T) {
	t.Run("every change bumps the version once", func(t *testing.T) {
		s, err := inventory.RestoreStockItem(kernel.MustItemName("Sugar"), 40, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), s.Version())

		s.Adjust(5)
		assert.Equal(t, int64(8), s.Version())

		require.NoError(t, s.Receive(2))
		assert.Equal(t, int64(9), s.Version())
	})

	t.Run("a clamped withdrawal still counts as a change", func(t *testing.T) {
		s, _ := inventory.RestoreStockItem(kernel.MustItemName("Sugar"), 0, 3)

		s.Adjust(-5)

		assert.Equal(t, 0, s.Quantity())
		assert.Equal(t, int64(4), s.Version())
	})

	t.Run("a rejected receipt leaves the version alone", func(t *testing.T) {
		s, _ := inventory.NewStockItem(kernel.MustItemName("Sugar"))

		require.Error(t, s.Receive(0))

		assert.Equal(t, int64(0), s.Version())
	})
}

func TestStockItem_Receive(t *testing.T) {
	t.Run("should add quantity without an event", func(t *testing.T) {
		s, _ := inventory.RestoreStockItem(kernel.MustItemName("Coffee Beans"), 30, 0)

		err := s.Receive(20)

		require.NoError(t, err)
		assert.Equal(t, 50, s.Quantity())
		assert.Empty(t, s.Events())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		s, _ := inventory.NewStockItem(kernel.MustItemName("Coffee Beans"))

		require.ErrorIs(t, s.Receive(0), errs.ErrValidation)
		require.ErrorIs(t, s.Receive(-4), errs.ErrValidation)
		assert.Equal(t, 0, s.Quantity())
	})
}

func TestLowStock(t *testing.T) {
	build := func(name string, qty int) *inventory.StockItem {
		s, err := inventory.RestoreStockItem(kernel.MustItemName(name), qty, 0)
		require.NoError(t, err)
		return s
	}
	items := []*inventory.StockItem{
		build("Bagel", 8),
		build("Cheesecake", 5),
		build("Croissant", 10),
		build("Matcha Powder", 15),
		build("Sugar", 40),
	}

	low := inventory.LowStock(items, inventory.DefaultLowStockThreshold)

	require.Len(t, low, 3)
	assert.Equal(t, "Bagel", low[0].Item().String())
	assert.Equal(t, "Cheesecake", low[1].Item().String())
	assert.Equal(t, "Croissant", low[2].Item().String())
	assert.Empty(t, inventory.LowStock(items, 4))
}
