// Package providerrepo persists provider profiles.
package providerrepo

import (
	"relocation/internal/adapters/out/postgres/accountrepo"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/provider"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ProfileDTO is the row of the provider_profiles table. There is at most one
// profile per account.
type ProfileDTO struct {
	ID              uuid.UUID               `gorm:"type:uuid;primaryKey"`
	AccountID       uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex"`
	Account         *accountrepo.AccountDTO `gorm:"constraint:OnDelete:CASCADE"`
	CompanyName     string                  `gorm:"size:255;not null"`
	ContactPerson   string                  `gorm:"size:100;not null"`
	ServicesOffered pq.StringArray          `gorm:"type:text[]"`
	PricingInfo     string
	Available       bool            `gorm:"not null;index"`
	Rating          decimal.Decimal `gorm:"type:numeric(3,2);not null"`
	TotalReviews    int             `gorm:"not null"`
}

func (ProfileDTO) TableName() string {
	return "provider_profiles"
}

func fromDomain(p *provider.Profile) ProfileDTO {
	info := p.Info()
	return ProfileDTO{
		ID:              p.ID().Bytes(),
		AccountID:       p.AccountID().Bytes(),
		CompanyName:     info.CompanyName,
		ContactPerson:   info.ContactPerson,
		ServicesOffered: pq.StringArray(info.ServicesOffered),
		PricingInfo:     info.PricingInfo,
		Available:       p.IsAvailable(),
		Rating:          p.Rating(),
		TotalReviews:    p.TotalReviews(),
	}
}

func toDomain(dto ProfileDTO) (*provider.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	services := make([]string, len(dto.ServicesOffered))
	copy(services, dto.ServicesOffered)

	return provider.RestoreProfile(
		id,
		accountID,
		provider.Info{
			CompanyName:     dto.CompanyName,
			ContactPerson:   dto.ContactPerson,
			ServicesOffered: services,
			PricingInfo:     dto.PricingInfo,
		},
		dto.Available,
		dto.Rating,
		dto.TotalReviews,
	), nil
}
