package commands

import (
	"errors"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/delivery"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/guard"
)

var ErrSetDeliveryStatusCommandIsNotConstructed = errors.New(
	"SetDeliveryStatusCommand must be created via NewSetDeliveryStatusCommand constructor",
)

// SetDeliveryStatusCommand relabels a delivery with any valid status.
type SetDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	actor      access.Actor
	deliveryID kernel.UUID
	status     delivery.Status

	guard guard.ConstructorGuard
}

func NewSetDeliveryStatusCommand(
	actor access.Actor,
	deliveryID kernel.UUID,
	status delivery.Status,
) (SetDeliveryStatusCommand, error) {
	if err := errors.Join(deliveryID.Validate(), status.Validate()); err != nil {
		return SetDeliveryStatusCommand{}, err
	}

	return SetDeliveryStatusCommand{
		actor:      actor,
		deliveryID: deliveryID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SetDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryStatusCommandIsNotConstructed)
}

func (c SetDeliveryStatusCommand) Actor() access.Actor {
	return c.actor
}

func (c SetDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c SetDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}
