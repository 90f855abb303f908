package services

import (
	"errors"
	"fmt"

	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/pkg/errs"
)

// ErrItemMismatch is returned when the stock row does not belong to the order's item.
var ErrItemMismatch = errors.New("stock item does not match order item")

// StockReceiver approves a purchase order and receives its quantity into stock.
//
// Both aggregates must be loaded for update in the same unit of work, order
// first and stock second. The receiver validates everything before mutating,
// so on error neither aggregate has changed.
//
//	receiver := services.NewStockReceiver()
//	if err := receiver.Receive(order, stock); err != nil {
//	    return err // uow rolls back
//	}
type StockReceiver struct{}

func NewStockReceiver() StockReceiver {
	return StockReceiver{}
}

// Receive moves order to Approved and adds its quantity to stock. The approval
// event is recorded on the order; the stock row records nothing.
func (StockReceiver) Receive(order *purchase.Order, stock *inventory.StockItem) error {
	if err := errors.Join(order.Validate(), stock.Validate()); err != nil {
		return err
	}

	if !order.Item().IsEqual(stock.Item()) {
		return errs.NewValueIsInvalidErrorWithCause("item",
			fmt.Errorf("%w: %s != %s", ErrItemMismatch, order.Item(), stock.Item()))
	}

	if _, err := order.Status().Approve(); err != nil {
		return err
	}

	if err := stock.Receive(order.Quantity()); err != nil {
		return err
	}

	return order.Approve()
}
