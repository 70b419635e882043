// Package paymentrepo persists payment records.
package paymentrepo

import (
	"time"

	"relocation/internal/adapters/out/postgres/bookingrepo"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentDTO struct {
	ID            uuid.UUID               `gorm:"type:uuid;primaryKey"`
	BookingID     uuid.UUID               `gorm:"type:uuid;not null;index"`
	Booking       *bookingrepo.BookingDTO `gorm:"constraint:OnDelete:CASCADE"`
	Amount        decimal.Decimal         `gorm:"type:numeric(10,2);not null"`
	Method        string                  `gorm:"size:50;not null"`
	Status        string                  `gorm:"size:20;not null"`
	TransactionID string                  `gorm:"size:100;not null;uniqueIndex"`
	Notes         string
	PaidAt        time.Time `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Bytes(),
		BookingID:     p.BookingID().Bytes(),
		Amount:        p.Amount().Amount(),
		Method:        p.Method(),
		Status:        string(p.Status()),
		TransactionID: p.TransactionID(),
		Notes:         p.Notes(),
		PaidAt:        p.PaidAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := payment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		bookingID,
		amount,
		dto.Method,
		status,
		dto.TransactionID,
		dto.Notes,
		dto.PaidAt,
	), nil
}
