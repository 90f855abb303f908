package commands

import (
	"errors"

	"retailops/internal/core/domain/model/user"
	"retailops/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand or NewLoginCommand constructor",
)

// AuthenticateCommand checks credentials and resolves the caller's actor.
// A login additionally appends "User logged in: {name}"; per-request
// authentication does not.
type AuthenticateCommand struct {
	username    string
	password    string
	recordLogin bool

	guard guard.ConstructorGuard
}

// NewAuthenticateCommand checks credentials without writing to the audit log.
func NewAuthenticateCommand(username, password string) AuthenticateCommand {
	return AuthenticateCommand{
		username: user.NormalizeUsername(username),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}
}

// NewLoginCommand checks credentials and records the login.
func NewLoginCommand(username, password string) AuthenticateCommand {
	cmd := NewAuthenticateCommand(username, password)
	cmd.recordLogin = true
	return cmd
}

func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

func (c AuthenticateCommand) Username() string {
	return c.username
}

func (c AuthenticateCommand) Password() string {
	return c.password
}

func (c AuthenticateCommand) RecordLogin() bool {
	return c.recordLogin
}
