package purchase

import (
	"fmt"
	"strings"

	"retailops/internal/pkg/errs"
)

// Status is the lifecycle state of a purchase order.
//
//	Pending ──┬──> Approved
//	          ├──> Rejected
//	          └──> Cancelled
//
// Every state other than Pending is terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Approved
	Rejected
	Cancelled
)

const entityName = "purchase order"

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Approved:  "Approved",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
	}
}

// ParseStatus maps a display name back to a Status. Matching ignores case.
func ParseStatus(value string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(value)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a purchase status", value))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Rejected || s == Cancelled
}

// Approve moves Pending to Approved.
func (s Status) Approve() (Status, error) {
	return s.moveTo(Approved)
}

// Reject moves Pending to Rejected.
func (s Status) Reject() (Status, error) {
	return s.moveTo(Rejected)
}

// Cancel moves Pending to Cancelled. An approved order has already put goods
// in stock and cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	return s.moveTo(Cancelled)
}

func (s Status) moveTo(target Status) (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError(entityName, s.String(), target.String())
	}
	return target, nil
}
