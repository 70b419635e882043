// Package shipmentrepo persists shipment aggregates.
package shipmentrepo

import (
	"time"

	"relocation/internal/adapters/out/postgres/bookingrepo"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is the row of the shipments table. Both the booking and the
// tracking number are unique.
type ShipmentDTO struct {
	ID                uuid.UUID               `gorm:"type:uuid;primaryKey"`
	BookingID         uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex"`
	Booking           *bookingrepo.BookingDTO `gorm:"constraint:OnDelete:CASCADE"`
	TrackingNumber    string                  `gorm:"size:100;not null;uniqueIndex"`
	Status            int                     `gorm:"not null;index"`
	CurrentLocation   string                  `gorm:"size:255"`
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Notes             string
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	schedule := s.Schedule()
	return ShipmentDTO{
		ID:                s.ID().Bytes(),
		BookingID:         s.BookingID().Bytes(),
		TrackingNumber:    s.TrackingNumber().String(),
		Status:            int(s.Status()),
		CurrentLocation:   s.CurrentLocation(),
		EstimatedDelivery: schedule.EstimatedDelivery,
		ActualDelivery:    schedule.ActualDelivery,
		Notes:             schedule.Notes,
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	tracking, err := shipment.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		bookingID,
		tracking,
		shipment.Status(dto.Status),
		dto.CurrentLocation,
		shipment.Schedule{
			EstimatedDelivery: dto.EstimatedDelivery,
			ActualDelivery:    dto.ActualDelivery,
			Notes:             dto.Notes,
		},
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
