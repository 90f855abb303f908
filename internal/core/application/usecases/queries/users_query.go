package queries

import (
	"errors"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery lists accounts. Only actors allowed to manage users may run it.
type GetUsersQuery struct {
	actor access.Actor
	guard guard.ConstructorGuard
}

func NewGetUsersQuery(actor access.Actor) GetUsersQuery {
	return GetUsersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

func (q GetUsersQuery) Actor() access.Actor {
	return q.actor
}

// UserResponse never carries the password hash.
type UserResponse struct {
	Username string
	Role     access.Role
}
