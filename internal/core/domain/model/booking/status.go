package booking

import (
	"fmt"

	"relocation/internal/pkg/errs"
)

// Status is the lifecycle state of a booking.
//
// State transitions:
//
//	Pending ──> Confirmed ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Confirm and Cancel are validated here. InProgress and Completed are set by
// an operator through Advance and are only checked against the state set.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota

	// Pending is the initial status of every booking.
	Pending

	// Confirmed bookings have been accepted; the relocation is booked.
	Confirmed

	// InProgress means the move is under way.
	InProgress

	// Completed is final.
	Completed

	// Cancelled is final.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid booking status", s))
}

// Validate checks the status belongs to the state set.
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

// Confirm transitions Pending to Confirmed.
//
// Returns:
//   - (Confirmed, nil) from Pending
//   - (Unknown, InvalidTransitionError) from any other status
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("booking", s.String(), Confirmed.String())
	}
	return Confirmed, nil
}

// Cancel transitions Pending or Confirmed to Cancelled. A second cancel is
// rejected rather than repeated.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Confirmed {
		return Unknown, errs.NewInvalidTransitionError("booking", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// Advance moves the booking to InProgress or Completed on an operator's
// request. Only the target is validated, and only against the operator
// states; confirmation and cancellation have their own transitions.
func (s Status) Advance(target Status) (Status, error) {
	if target != InProgress && target != Completed {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot be set by an operator", target.String()),
		)
	}
	return target, nil
}
