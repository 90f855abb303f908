package access

import (
	"retailops/internal/pkg/errs"
)

// Operation is a gated mutating action.
type Operation string

const (
	CreatePurchase     Operation = "create purchase"
	TransitionPurchase Operation = "transition purchase"
	CreateDelivery     Operation = "create delivery"
	TransitionDelivery Operation = "transition delivery"
	AdjustInventory    Operation = "adjust inventory"
	ManageUsers        Operation = "manage users"
)

func (o Operation) String() string {
	return string(o)
}

// permissions is the whole policy. Admin is listed explicitly rather than
// short-circuited so the table reads the same as the documentation.
var permissions = map[Role]map[Operation]bool{
	Admin: {
		CreatePurchase:     true,
		TransitionPurchase: true,
		CreateDelivery:     true,
		TransitionDelivery: true,
		AdjustInventory:    true,
		ManageUsers:        true,
	},
	Purchasing: {
		CreatePurchase:     true,
		TransitionPurchase: true,
	},
	Delivery: {
		CreateDelivery:     true,
		TransitionDelivery: true,
	},
	Inventory: {
		AdjustInventory: true,
	},
}

// Authorize returns an *errs.AuthorizationError unless role may perform op.
// Unknown roles are denied everything.
func Authorize(role Role, op Operation) error {
	if permissions[role][op] {
		return nil
	}
	return errs.NewAuthorizationError(string(role), string(op))
}

// Actor is the authenticated caller of a command.
type Actor struct {
	Username string
	Role     Role
}

// NewActor builds an actor for a known role.
func NewActor(username string, role Role) (Actor, error) {
	if username == "" {
		return Actor{}, errs.NewValueIsRequiredError("username")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{Username: username, Role: role}, nil
}

// Can is Authorize for this actor.
func (a Actor) Can(op Operation) error {
	return Authorize(a.Role, op)
}
