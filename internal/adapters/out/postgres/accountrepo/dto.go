// Package accountrepo persists account aggregates.
package accountrepo

import (
	"time"

	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO is the row of the accounts table. Usernames are unique.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"size:150;not null;uniqueIndex"`
	Email        string    `gorm:"size:254"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"size:16;not null;index"`
	FirstName    string    `gorm:"size:150"`
	LastName     string    `gorm:"size:150"`
	Contact      string    `gorm:"size:50"`
	Address      string
	Verified     bool      `gorm:"not null"`
	JoinedAt     time.Time `gorm:"not null"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	details := a.Details()
	return AccountDTO{
		ID:           a.ID().Bytes(),
		Username:     a.Username(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
		FirstName:    details.FirstName,
		LastName:     details.LastName,
		Contact:      details.Contact,
		Address:      details.Address,
		Verified:     a.IsVerified(),
		JoinedAt:     a.JoinedAt(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Username,
		dto.Email,
		dto.PasswordHash,
		role,
		account.Details{
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			Contact:   dto.Contact,
			Address:   dto.Address,
		},
		dto.Verified,
		dto.JoinedAt,
	), nil
}
