package access

import (
	"fmt"
	"strings"

	"retailops/internal/pkg/errs"
)

// Role is the authority level attached to a user account.
type Role string

const (
	Admin      Role = "admin"
	Purchasing Role = "purchasing"
	Delivery   Role = "delivery"
	Inventory  Role = "inventory"
)

// Roles lists every known role in display order.
func Roles() []Role {
	return []Role{Admin, Purchasing, Delivery, Inventory}
}

// ParseRole accepts a role name in any case.
func ParseRole(value string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

func (r Role) Validate() error {
	for _, known := range Roles() {
		if r == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
}

func (r Role) String() string {
	return string(r)
}
