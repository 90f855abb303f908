package delivery

import (
	"errors"
	"fmt"
	"time"

	"retailops/internal/core/domain/model/audit"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery bypassed its constructors.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is one item going to one customer with one driver.
type Delivery struct {
	audit.Trail

	id            kernel.UUID
	customer      kernel.Name
	item          kernel.ItemName
	driver        kernel.Name
	status        Status
	createdAt     time.Time
	isConstructed bool
}

// NewDelivery creates a Scheduled delivery and records
// "Order Scheduled: {item} for {customer}".
func NewDelivery(id kernel.UUID, customer kernel.Name, item kernel.ItemName, driver kernel.Name) (*Delivery, error) {
	d, err := RestoreDelivery(id, customer, item, driver, Scheduled, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	d.Record(fmt.Sprintf("Order Scheduled: %s for %s", item, customer))
	return d, nil
}

// RestoreDelivery rebuilds a persisted delivery without recording events.
func RestoreDelivery(
	id kernel.UUID,
	customer kernel.Name,
	item kernel.ItemName,
	driver kernel.Name,
	status Status,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{createdAt: createdAt.UTC(), isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setCustomer(customer),
		d.setItem(item),
		d.setDriver(driver),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) Customer() kernel.Name {
	return d.customer
}

func (d *Delivery) Item() kernel.ItemName {
	return d.item
}

func (d *Delivery) Driver() kernel.Name {
	return d.driver
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// SetStatus applies any valid status, including the current one, and records
// "Delivery {id} status -> {status}". It returns the status it replaced.
func (d *Delivery) SetStatus(status Status) (Status, error) {
	if err := status.Validate(); err != nil {
		return Unknown, err
	}
	previous := d.status
	d.status = status
	d.Record(fmt.Sprintf("Delivery %s status -> %s", d.id, status))
	return previous, nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setCustomer(customer kernel.Name) error {
	if customer.Validate() != nil {
		return errs.NewValueIsRequiredError("customer")
	}
	d.customer = customer
	return nil
}

func (d *Delivery) setItem(item kernel.ItemName) error {
	if err := item.Validate(); err != nil {
		return err
	}
	d.item = item
	return nil
}

func (d *Delivery) setDriver(driver kernel.Name) error {
	if driver.Validate() != nil {
		return errs.NewValueIsRequiredError("driver")
	}
	d.driver = driver
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
