package inventory

import (
	"errors"
	"fmt"
	"strconv"

	"retailops/internal/core/domain/model/audit"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/errs"
)

var (
	// ErrStockItemIsNotConstructed is returned when a StockItem bypassed its constructors.
	ErrStockItemIsNotConstructed = errors.New("StockItem must be created via NewStockItem constructor")
)

// DefaultLowStockThreshold is the quantity at or below which an item counts as low.
const DefaultLowStockThreshold = 10

// StockItem is the ledger row for one item.
type StockItem struct {
	audit.Trail

	item          kernel.ItemName
	quantity      int
	version       int64
	isConstructed bool
}

// NewStockItem creates an item that has never been stocked.
func NewStockItem(item kernel.ItemName) (*StockItem, error) {
	return RestoreStockItem(item, 0, 0)
}

// RestoreStockItem rebuilds a persisted row at the given version.
func RestoreStockItem(item kernel.ItemName, quantity int, version int64) (*StockItem, error) {
	s := &StockItem{isConstructed: true}
	if err := errors.Join(
		s.setItem(item),
		s.setQuantity(quantity),
		s.setVersion(version),
	); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *StockItem) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockItemIsNotConstructed
	}
	return nil
}

func (s *StockItem) Item() kernel.ItemName {
	return s.item
}

func (s *StockItem) Quantity() int {
	return s.quantity
}

// Version increases by one with every change to the row. Caches use it to
// tell a newer quantity from an older one.
func (s *StockItem) Version() int64 {
	return s.version
}

// IsLow reports whether the quantity is at or below threshold.
func (s *StockItem) IsLow(threshold int) bool {
	return s.quantity <= threshold
}

// Adjust applies a signed manual edit, clamping the result at zero, and
// records "Manual Stock Edit: {item} ({delta})" with a leading + for
// positive deltas. It returns the new quantity.
func (s *StockItem) Adjust(delta int) int {
	s.apply(delta)
	s.Record(fmt.Sprintf("Manual Stock Edit: %s (%s)", s.item, signed(delta)))
	return s.quantity
}

// Receive adds goods from an approved purchase. It records no event.
func (s *StockItem) Receive(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	s.apply(quantity)
	return nil
}

func (s *StockItem) apply(delta int) {
	s.quantity = max(0, s.quantity+delta)
	s.version++
}

func (s *StockItem) setItem(item kernel.ItemName) error {
	if err := item.Validate(); err != nil {
		return err
	}
	s.item = item
	return nil
}

func (s *StockItem) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	s.quantity = quantity
	return nil
}

func (s *StockItem) setVersion(version int64) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", version))
	}
	s.version = version
	return nil
}

func signed(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	}
	return strconv.Itoa(delta)
}

// LowStock filters items at or below threshold, keeping input order.
func LowStock(items []*StockItem, threshold int) []*StockItem {
	out := make([]*StockItem, 0, len(items))
	for _, item := range items {
		if item.IsLow(threshold) {
			out = append(out, item)
		}
	}
	return out
}
