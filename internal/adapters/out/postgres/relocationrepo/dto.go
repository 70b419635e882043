// Package relocationrepo persists relocation aggregates.
package relocationrepo

import (
	"time"

	"relocation/internal/adapters/out/postgres/accountrepo"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RelocationDTO struct {
	ID            uuid.UUID               `gorm:"type:uuid;primaryKey"`
	AccountID     uuid.UUID               `gorm:"type:uuid;not null;index"`
	Account       *accountrepo.AccountDTO `gorm:"constraint:OnDelete:CASCADE"`
	Origin        string                  `gorm:"size:255;not null"`
	Destination   string                  `gorm:"size:255;not null"`
	MovingDate    time.Time               `gorm:"type:date;not null"`
	Inventory     string
	Status        int                 `gorm:"not null;index"`
	EstimatedCost decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	CreatedAt     time.Time           `gorm:"not null"`
}

func (RelocationDTO) TableName() string {
	return "relocations"
}

func fromDomain(r *relocation.Relocation) RelocationDTO {
	plan := r.Plan()

	var cost decimal.NullDecimal
	if c := r.EstimatedCost(); c != nil {
		cost = decimal.NewNullDecimal(c.Amount())
	}

	return RelocationDTO{
		ID:            r.ID().Bytes(),
		AccountID:     r.AccountID().Bytes(),
		Origin:        plan.Origin,
		Destination:   plan.Destination,
		MovingDate:    plan.MovingDate,
		Inventory:     plan.Inventory,
		Status:        int(r.Status()),
		EstimatedCost: cost,
		CreatedAt:     r.CreatedAt(),
	}
}

func toDomain(dto RelocationDTO) (*relocation.Relocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	var cost *kernel.Money
	if dto.EstimatedCost.Valid {
		m, moneyErr := kernel.NewMoney(dto.EstimatedCost.Decimal)
		if moneyErr != nil {
			return nil, moneyErr
		}
		cost = &m
	}

	return relocation.RestoreRelocation(
		id,
		accountID,
		relocation.Plan{
			Origin:      dto.Origin,
			Destination: dto.Destination,
			MovingDate:  dto.MovingDate,
			Inventory:   dto.Inventory,
		},
		relocation.Status(dto.Status),
		cost,
		dto.CreatedAt,
	)
}
