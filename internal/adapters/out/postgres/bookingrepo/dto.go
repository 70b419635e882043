// Package bookingrepo persists booking aggregates.
package bookingrepo

import (
	"time"

	"relocation/internal/adapters/out/postgres/accountrepo"
	"relocation/internal/adapters/out/postgres/providerrepo"
	"relocation/internal/adapters/out/postgres/relocationrepo"
	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingDTO struct {
	ID           uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	AccountID    uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Account      *accountrepo.AccountDTO       `gorm:"constraint:OnDelete:CASCADE"`
	ProviderID   uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Provider     *providerrepo.ProfileDTO      `gorm:"constraint:OnDelete:CASCADE"`
	RelocationID uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Relocation   *relocationrepo.RelocationDTO `gorm:"constraint:OnDelete:CASCADE"`
	ServiceType  string                        `gorm:"size:100;not null"`
	BookingDate  time.Time                     `gorm:"not null"`
	Status       int                           `gorm:"not null;index"`
	TotalAmount  decimal.Decimal               `gorm:"type:numeric(10,2);not null"`
	Notes        string
	CreatedAt    time.Time `gorm:"not null"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

func fromDomain(b *booking.Booking) BookingDTO {
	terms := b.Terms()
	return BookingDTO{
		ID:           b.ID().Bytes(),
		AccountID:    b.AccountID().Bytes(),
		ProviderID:   b.ProviderID().Bytes(),
		RelocationID: b.RelocationID().Bytes(),
		ServiceType:  terms.ServiceType,
		BookingDate:  terms.BookingDate,
		Status:       int(b.Status()),
		TotalAmount:  terms.TotalAmount.Amount(),
		Notes:        terms.Notes,
		CreatedAt:    b.CreatedAt(),
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	var ids [4]kernel.UUID
	for i, raw := range []uuid.UUID{dto.ID, dto.AccountID, dto.ProviderID, dto.RelocationID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	amount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		ids[0],
		ids[1],
		ids[2],
		ids[3],
		booking.Terms{
			ServiceType: dto.ServiceType,
			BookingDate: dto.BookingDate,
			TotalAmount: amount,
			Notes:       dto.Notes,
		},
		booking.Status(dto.Status),
		dto.CreatedAt,
	)
}
