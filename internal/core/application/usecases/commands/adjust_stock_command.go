package commands

import (
	"errors"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/guard"
)

var ErrAdjustStockCommandIsNotConstructed = errors.New(
	"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
)

// AdjustStockCommand is a manual, signed inventory edit. Withdrawals beyond the
// current quantity clamp at zero.
type AdjustStockCommand struct {
	actor access.Actor
	item  kernel.ItemName
	delta int

	guard guard.ConstructorGuard
}

func NewAdjustStockCommand(actor access.Actor, item string, delta int) (AdjustStockCommand, error) {
	name, err := kernel.NewItemName(item)
	if err != nil {
		return AdjustStockCommand{}, err
	}

	return AdjustStockCommand{
		actor: actor,
		item:  name,
		delta: delta,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

func (c AdjustStockCommand) Actor() access.Actor {
	return c.actor
}

func (c AdjustStockCommand) Item() kernel.ItemName {
	return c.item
}

func (c AdjustStockCommand) Delta() int {
	return c.delta
}
