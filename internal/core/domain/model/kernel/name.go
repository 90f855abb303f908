package kernel

import (
	"strings"

	"retailops/internal/pkg/errs"
)

// ItemName keys the inventory ledger. Two names are the same item when their
// trimmed forms are byte-equal; case is preserved ("Syrup (Caramel)").
type ItemName struct {
	value string
}

// NewItemName trims surrounding whitespace and rejects empty names.
func NewItemName(value string) (ItemName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ItemName{}, errs.NewValueIsRequiredError("item")
	}
	return ItemName{value: trimmed}, nil
}

// MustItemName is NewItemName for compile-time constants such as seed data.
func MustItemName(value string) ItemName {
	item, err := NewItemName(value)
	if err != nil {
		panic(err)
	}
	return item
}

func (n ItemName) String() string {
	return n.value
}

func (n ItemName) IsEqual(other ItemName) bool {
	return n.value == other.value
}

// Validate rejects the zero value.
func (n ItemName) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("item")
	}
	return nil
}

// Name is a required free-text field such as a supplier, customer or driver.
type Name struct {
	field string
	value string
}

// NewName trims value and reports field as the offending parameter when empty.
func NewName(field, value string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Name{}, errs.NewValueIsRequiredError(field)
	}
	return Name{field: field, value: trimmed}, nil
}

func (n Name) String() string {
	return n.value
}

// Validate rejects the zero value.
func (n Name) Validate() error {
	if n.value == "" {
		field := n.field
		if field == "" {
			field = "name"
		}
		return errs.NewValueIsRequiredError(field)
	}
	return nil
}
