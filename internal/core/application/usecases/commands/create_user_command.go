package commands

import (
	"errors"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/user"
	"retailops/internal/pkg/errs"
	"retailops/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers an operator account.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	actor    access.Actor
	username string
	password string
	role     access.Role

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(actor access.Actor, username, password, role string) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Actor() access.Actor {
	return c.actor
}

func (c CreateUserCommand) Username() string {
	return c.username
}

func (c CreateUserCommand) Password() string {
	return c.password
}

func (c CreateUserCommand) Role() access.Role {
	return c.role
}

func (c *CreateUserCommand) setUsername(username string) error {
	normalized := user.NormalizeUsername(username)
	if normalized == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = normalized
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *CreateUserCommand) setRole(role string) (err error) {
	c.role, err = access.ParseRole(role)
	return err
}
