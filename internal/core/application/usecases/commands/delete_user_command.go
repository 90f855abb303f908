package commands

import (
	"errors"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/user"
	"retailops/internal/pkg/errs"
	"retailops/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

type DeleteUserCommand struct {
	actor    access.Actor
	username string

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(actor access.Actor, username string) (DeleteUserCommand, error) {
	normalized := user.NormalizeUsername(username)
	if normalized == "" {
		return DeleteUserCommand{}, errs.NewValueIsRequiredError("username")
	}

	return DeleteUserCommand{
		actor:    actor,
		username: normalized,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) Actor() access.Actor {
	return c.actor
}

func (c DeleteUserCommand) Username() string {
	return c.username
}
