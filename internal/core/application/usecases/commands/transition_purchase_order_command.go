package commands

import (
	"errors"
	"fmt"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/pkg/errs"
	"retailops/internal/pkg/guard"
)

var ErrTransitionPurchaseOrderCommandIsNotConstructed = errors.New(
	"TransitionPurchaseOrderCommand must be created via NewTransitionPurchaseOrderCommand constructor",
)

// TransitionPurchaseOrderCommand moves a purchase order to Approved, Rejected
// or Cancelled. Pending is not a target.
type TransitionPurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	actor   access.Actor
	orderID kernel.UUID
	target  purchase.Status

	guard guard.ConstructorGuard
}

func NewTransitionPurchaseOrderCommand(
	actor access.Actor,
	orderID kernel.UUID,
	target purchase.Status,
) (TransitionPurchaseOrderCommand, error) {
	cmd := TransitionPurchaseOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionPurchaseOrderCommand{}, err
	}

	return cmd, nil
}

func (c TransitionPurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionPurchaseOrderCommandIsNotConstructed)
}

func (c TransitionPurchaseOrderCommand) Actor() access.Actor {
	return c.actor
}

func (c TransitionPurchaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionPurchaseOrderCommand) Target() purchase.Status {
	return c.target
}

func (c *TransitionPurchaseOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *TransitionPurchaseOrderCommand) setTarget(target purchase.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == purchase.Pending {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not a transition target", target))
	}
	c.target = target
	return nil
}
