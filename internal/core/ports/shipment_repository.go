package ports

import (
	"context"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipments.
type ShipmentRepository interface {
	// Add persists a new shipment. A duplicate tracking number or a second
	// shipment for the same booking returns a Conflict error.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	Update(ctx context.Context, aggregate *shipment.Shipment) error
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment and locks its row for the rest of
	// the transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber returns the unique shipment with the given code or
	// an ObjectNotFound error.
	GetByTrackingNumber(ctx context.Context, tracking shipment.TrackingNumber) (*shipment.Shipment, error)
}
