package relocation

import (
	"fmt"

	"relocation/internal/pkg/errs"
)

// Status is the planning state of a move.
//
//	Planning ──> Booked ──> InProgress ──> Completed
//	    └──────────┴───────────┴──────> Cancelled
//
// Only the Planning -> Booked step is driven by the system (booking
// confirmation); the rest are set by the owner or an operator.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Planning
	Booked
	InProgress
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Planning:   "planning",
		Booked:     "booked",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planning:   "planning",
		Booked:     "booked",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// ParseStatus maps the wire and storage name of a status to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid relocation status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
