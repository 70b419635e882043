// Package documentrepo persists document metadata. File contents live in
// ports.FileStorage under the stored key.
package documentrepo

import (
	"time"

	"relocation/internal/adapters/out/postgres/accountrepo"
	"relocation/internal/adapters/out/postgres/relocationrepo"
	"relocation/internal/core/domain/model/document"
	"relocation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DocumentDTO struct {
	ID           uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	AccountID    uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Account      *accountrepo.AccountDTO       `gorm:"constraint:OnDelete:CASCADE"`
	RelocationID *uuid.UUID                    `gorm:"type:uuid;index"`
	Relocation   *relocationrepo.RelocationDTO `gorm:"constraint:OnDelete:SET NULL"`
	Name         string                        `gorm:"size:255;not null"`
	Type         string                        `gorm:"size:20;not null"`
	StorageKey   string                        `gorm:"size:500;not null"`
	Description  string
	UploadedAt   time.Time `gorm:"not null"`
}

func (DocumentDTO) TableName() string {
	return "documents"
}

func fromDomain(d *document.Document) DocumentDTO {
	return DocumentDTO{
		ID:           d.ID().Bytes(),
		AccountID:    d.AccountID().Bytes(),
		RelocationID: kernel.BytesPtr(d.RelocationID()),
		Name:         d.Name(),
		Type:         string(d.Type()),
		StorageKey:   d.StorageKey(),
		Description:  d.Description(),
		UploadedAt:   d.UploadedAt(),
	}
}

func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	relocationID, err := kernel.UUIDPtrFromBytes(dto.RelocationID)
	if err != nil {
		return nil, err
	}

	docType, err := document.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	return document.RestoreDocument(
		id,
		accountID,
		relocationID,
		dto.Name,
		docType,
		dto.StorageKey,
		dto.Description,
		dto.UploadedAt,
	), nil
}
