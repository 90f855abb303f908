package commands

import (
	"errors"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand schedules a delivery. It never touches stock.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor      access.Actor
	deliveryID kernel.UUID
	customer   kernel.Name
	item       kernel.ItemName
	driver     kernel.Name

	guard guard.ConstructorGuard
}

func NewCreateDeliveryCommand(
	actor access.Actor,
	deliveryID kernel.UUID,
	customer, item, driver string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCustomer(customer),
		cmd.setItem(item),
		cmd.setDriver(driver),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) Actor() access.Actor {
	return c.actor
}

func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CreateDeliveryCommand) Customer() kernel.Name {
	return c.customer
}

func (c CreateDeliveryCommand) Item() kernel.ItemName {
	return c.item
}

func (c CreateDeliveryCommand) Driver() kernel.Name {
	return c.driver
}

func (c *CreateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *CreateDeliveryCommand) setCustomer(customer string) (err error) {
	c.customer, err = kernel.NewName("customer", customer)
	return err
}

func (c *CreateDeliveryCommand) setItem(item string) (err error) {
	c.item, err = kernel.NewItemName(item)
	return err
}

func (c *CreateDeliveryCommand) setDriver(driver string) (err error) {
	c.driver, err = kernel.NewName("driver", driver)
	return err
}
