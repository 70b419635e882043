package ports

import (
	"context"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"
)

type RelocationRepository interface {
	Add(ctx context.Context, aggregate *relocation.Relocation) error
	Update(ctx context.Context, aggregate *relocation.Relocation) error
	Get(ctx context.Context, id kernel.UUID) (*relocation.Relocation, error)

	// GetForUpdate retrieves a relocation and locks its row for the rest of
	// the transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*relocation.Relocation, error)
}
