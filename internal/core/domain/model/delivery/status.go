package delivery

import (
	"fmt"
	"strings"

	"retailops/internal/pkg/errs"
)

// Status is where a delivery is in its route.
type Status int

const (
	Unknown Status = iota
	Scheduled
	InTransit
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Scheduled: "Scheduled",
		InTransit: "In Transit",
		Delivered: "Delivered",
	}
}

// ParseStatus accepts the display name in any case; "InTransit" and
// "in_transit" are read as "In Transit".
func ParseStatus(value string) (Status, error) {
	normalized := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.TrimSpace(value))
	for status, name := range getStatusStrings() {
		if status == Unknown {
			continue
		}
		if strings.EqualFold(strings.ReplaceAll(name, " ", ""), normalized) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", value))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Delivered {
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

// IsRegression reports whether next is earlier in the route than s.
func (s Status) IsRegression(next Status) bool {
	return next < s
}
