package purchase

import (
	"errors"
	"fmt"
	"time"

	"retailops/internal/core/domain/model/audit"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order bypassed NewOrder and RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a request to buy a quantity of one item from a supplier.
//
// Invariants:
//   - quantity is positive and never changes
//   - status changes only through Approve, Reject and Cancel
//   - every state change records exactly one audit event
type Order struct {
	audit.Trail

	id            kernel.UUID
	item          kernel.ItemName
	quantity      int
	supplier      kernel.Name
	status        Status
	createdAt     time.Time
	isConstructed bool
}

// NewOrder creates a Pending order and records "Order Created: {item} (+{quantity})".
func NewOrder(id kernel.UUID, item kernel.ItemName, quantity int, supplier kernel.Name) (*Order, error) {
	o, err := RestoreOrder(id, item, quantity, supplier, Pending, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	o.Record(fmt.Sprintf("Order Created: %s (+%d)", item, quantity))
	return o, nil
}

// RestoreOrder rebuilds a persisted order without recording events.
func RestoreOrder(
	id kernel.UUID,
	item kernel.ItemName,
	quantity int,
	supplier kernel.Name,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{createdAt: createdAt.UTC(), isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setItem(item),
		o.setQuantity(quantity),
		o.setSupplier(supplier),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Item() kernel.ItemName {
	return o.item
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) Supplier() kernel.Name {
	return o.supplier
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Approve marks the order Approved and records "Approved: {item}. Stock increased.".
// Callers must receive the goods into stock in the same unit of work; see
// services.StockReceiver.
func (o *Order) Approve() error {
	next, err := o.status.Approve()
	if err != nil {
		return err
	}
	o.status = next
	o.Record(fmt.Sprintf("Approved: %s. Stock increased.", o.item))
	return nil
}

// Reject marks the order Rejected.
func (o *Order) Reject() error {
	next, err := o.status.Reject()
	if err != nil {
		return err
	}
	o.status = next
	o.Record(fmt.Sprintf("Rejected: %s", o.item))
	return nil
}

// Cancel marks the order Cancelled.
func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	o.Record(fmt.Sprintf("Cancelled: %s", o.item))
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItem(item kernel.ItemName) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.item = item
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setSupplier(supplier kernel.Name) error {
	if err := supplier.Validate(); err != nil {
		return errs.NewValueIsRequiredError("supplier")
	}
	o.supplier = supplier
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
