package booking

import (
	"time"

	"relocation/internal/core/domain/model/kernel"
)

const (
	EventConfirmed     = "booking.confirmed"
	EventCancelled     = "booking.cancelled"
	EventStatusChanged = "booking.status_changed"
)

// StatusChanged is raised whenever a booking changes status.
type StatusChanged struct {
	Name         string      `json:"event"`
	BookingID    kernel.UUID `json:"booking_id"`
	RelocationID kernel.UUID `json:"relocation_id"`
	ProviderID   kernel.UUID `json:"provider_id"`
	From         string      `json:"from"`
	To           string      `json:"to"`
	At           time.Time   `json:"occurred_at"`
}

func (e StatusChanged) EventName() string {
	return e.Name
}

func (e StatusChanged) AggregateID() kernel.UUID {
	return e.BookingID
}

func (e StatusChanged) OccurredAt() time.Time {
	return e.At
}
