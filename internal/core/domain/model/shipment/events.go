package shipment

import (
	"time"

	"relocation/internal/core/domain/model/kernel"
)

const EventStatusChanged = "shipment.status_changed"

// StatusChanged is raised by UpdateStatus.
type StatusChanged struct {
	ShipmentID      kernel.UUID `json:"shipment_id"`
	BookingID       kernel.UUID `json:"booking_id"`
	TrackingNumber  string      `json:"tracking_number"`
	From            string      `json:"from"`
	To              string      `json:"to"`
	CurrentLocation string      `json:"current_location,omitempty"`
	At              time.Time   `json:"occurred_at"`
}

func (e StatusChanged) EventName() string {
	return EventStatusChanged
}

func (e StatusChanged) AggregateID() kernel.UUID {
	return e.ShipmentID
}

func (e StatusChanged) OccurredAt() time.Time {
	return e.At
}
