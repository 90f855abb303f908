// Package user models operator accounts. Usernames are unique and stored
// lower-cased; passwords are kept only as opaque hashes produced by a
// ports.PasswordHasher.
package user

import (
	"errors"
	"fmt"
	"strings"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/audit"
	"retailops/internal/pkg/errs"
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrUsernameTaken is the cause repositories attach to a duplicate username.
	ErrUsernameTaken = errors.New("username already exists")
)

// User is an operator account.
type User struct {
	audit.Trail

	username      string
	passwordHash  string
	role          access.Role
	isConstructed bool
}

// NormalizeUsername trims and lower-cases a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NewUser registers an account and records "Admin added new user: {name} ({role})".
func NewUser(username, passwordHash string, role access.Role) (*User, error) {
	u, err := RestoreUser(username, passwordHash, role)
	if err != nil {
		return nil, err
	}
	u.Record(fmt.Sprintf("Admin added new user: %s (%s)", u.username, u.role))
	return u, nil
}

// RestoreUser rebuilds a persisted account without recording events.
func RestoreUser(username, passwordHash string, role access.Role) (*User, error) {
	u := &User{isConstructed: true}
	if err := errors.Join(
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() access.Role {
	return u.role
}

// Actor is the identity this account acts as.
func (u *User) Actor() access.Actor {
	return access.Actor{Username: u.username, Role: u.role}
}

// RecordLogin records "User logged in: {name}".
func (u *User) RecordLogin() {
	u.Record("User logged in: " + u.username)
}

// Remove checks that by may delete this account and records
// "Admin deleted user: {name}". Nobody may delete their own account.
func (u *User) Remove(by access.Actor) error {
	if NormalizeUsername(by.Username) == u.username {
		return errs.NewValueIsInvalidErrorWithCause("username", errors.New("cannot delete yourself"))
	}
	u.Record("Admin deleted user: " + u.username)
	return nil
}

func (u *User) setUsername(username string) error {
	normalized := NormalizeUsername(username)
	if normalized == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = normalized
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
