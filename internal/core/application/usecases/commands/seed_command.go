package commands

import (
	"errors"

	"retailops/internal/pkg/guard"
)

var ErrSeedCommandIsNotConstructed = errors.New(
	"SeedCommand must be created via NewSeedCommand constructor",
)

// SeedCommand loads the demo accounts, stock levels and purchase history.
// Without force it does nothing once any account exists.
type SeedCommand struct {
	force bool
	guard guard.ConstructorGuard
}

func NewSeedCommand(force bool) SeedCommand {
	return SeedCommand{force: force, guard: guard.NewConstructorGuard()}
}

func (c SeedCommand) Validate() error {
	return c.guard.Validate(ErrSeedCommandIsNotConstructed)
}

func (c SeedCommand) Force() bool {
	return c.force
}
