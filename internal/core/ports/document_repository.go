package ports

import (
	"context"

	"relocation/internal/core/domain/model/document"
	"relocation/internal/core/domain/model/kernel"
)

type DocumentRepository interface {
	Add(ctx context.Context, aggregate *document.Document) error
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
