package commands

import (
	"errors"
	"fmt"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/errs"
	"retailops/internal/pkg/guard"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand requests a new Pending purchase order.
//
//	cmd, err := NewCreatePurchaseOrderCommand(actor, kernel.NewUUID(), "Coffee Beans", 20, "Local Roaster")
//	if err != nil {
//	    return err // validation error, nothing stored
//	}
//	err = handler.Handle(ctx, cmd)
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	actor    access.Actor
	orderID  kernel.UUID
	item     kernel.ItemName
	quantity int
	supplier kernel.Name

	guard guard.ConstructorGuard
}

func NewCreatePurchaseOrderCommand(
	actor access.Actor,
	orderID kernel.UUID,
	item string,
	quantity int,
	supplier string,
) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItem(item),
		cmd.setQuantity(quantity),
		cmd.setSupplier(supplier),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

func (c CreatePurchaseOrderCommand) Actor() access.Actor {
	return c.actor
}

func (c CreatePurchaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreatePurchaseOrderCommand) Item() kernel.ItemName {
	return c.item
}

func (c CreatePurchaseOrderCommand) Quantity() int {
	return c.quantity
}

func (c CreatePurchaseOrderCommand) Supplier() kernel.Name {
	return c.supplier
}

func (c *CreatePurchaseOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreatePurchaseOrderCommand) setItem(item string) error {
	name, err := kernel.NewItemName(item)
	if err != nil {
		return err
	}
	c.item = name
	return nil
}

func (c *CreatePurchaseOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *CreatePurchaseOrderCommand) setSupplier(supplier string) error {
	name, err := kernel.NewName("supplier", supplier)
	if err != nil {
		return err
	}
	c.supplier = name
	return nil
}
