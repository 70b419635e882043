package shipment

import (
	"fmt"
	"strings"

	"relocation/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	trackingNumberPrefix    = "TRK-"
	generatedSuffixLength   = 12
	maxTrackingNumberLength = 100
)

// TrackingNumber is the public code a customer uses to follow a shipment.
// It is unique across all shipments.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber accepts a caller-supplied code.
func NewTrackingNumber(value string) (TrackingNumber, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("tracking_number")
	}
	if len(value) > maxTrackingNumberLength {
		return TrackingNumber{}, errs.NewValueIsOutOfRangeError(
			"tracking_number length", len(value), 1, maxTrackingNumberLength)
	}
	return TrackingNumber{value: value}, nil
}

// GenerateTrackingNumber returns "TRK-" followed by 12 upper-case hex digits
// taken from a random UUID.
func GenerateTrackingNumber() TrackingNumber {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return TrackingNumber{value: fmt.Sprintf("%s%s", trackingNumberPrefix, strings.ToUpper(hex[:generatedSuffixLength]))}
}

func (t TrackingNumber) String() string {
	return t.value
}

func (t TrackingNumber) IsZero() bool {
	return t.value == ""
}
