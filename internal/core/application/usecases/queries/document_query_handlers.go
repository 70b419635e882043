package queries

import (
	"context"
	"time"

	"relocation/internal/core/domain/model/document"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var documentScope = scopeColumns{account: "documents.account_id"}

type documentRow struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	RelocationID *uuid.UUID
	Name         string
	Type         string
	StorageKey   string
	Description  string
	UploadedAt   time.Time
}

func (r documentRow) toResponse() (DocumentResponse, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return DocumentResponse{}, err
	}
	accountID, err := toUUID(r.AccountID)
	if err != nil {
		return DocumentResponse{}, err
	}
	relocationID, err := kernel.UUIDPtrFromBytes(r.RelocationID)
	if err != nil {
		return DocumentResponse{}, err
	}
	docType, err := document.ParseType(r.Type)
	if err != nil {
		return DocumentResponse{}, err
	}

	return DocumentResponse{
		ID:           id,
		AccountID:    accountID,
		RelocationID: relocationID,
		Name:         r.Name,
		Type:         docType,
		Description:  r.Description,
		UploadedAt:   r.UploadedAt,
	}, nil
}

func selectDocuments(db *gorm.DB) *gorm.DB {
	return db.Table("documents").
		Select(`documents.id, documents.account_id, documents.relocation_id, documents.name,
			documents.type, documents.storage_key, documents.description, documents.uploaded_at`)
}

type ListDocumentsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListDocumentsQueryHandler(db *gorm.DB) ListDocumentsQueryHandler {
	return ListDocumentsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListDocumentsQueryHandler) Handle(ctx context.Context, query ListDocumentsQuery) ([]DocumentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := h.policy.VisibleSet(query.Actor(), services.KindDocument)

	var rows []documentRow
	err := applyScope(selectDocuments(h.db.WithContext(ctx)), scope, documentScope).
		Order("documents.uploaded_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return mapRows(rows, documentRow.toResponse)
}

type GetDocumentQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetDocumentQueryHandler(db *gorm.DB) GetDocumentQueryHandler {
	return GetDocumentQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetDocumentQueryHandler) Handle(ctx context.Context, query GetDocumentQuery) (DocumentResponse, error) {
	if err := query.Validate(); err != nil {
		return DocumentResponse{}, err
	}

	row, err := h.load(ctx, query)
	if err != nil {
		return DocumentResponse{}, err
	}
	return row.toResponse()
}

func (h GetDocumentQueryHandler) load(ctx context.Context, query GetDocumentQuery) (documentRow, error) {
	row, err := findOne[documentRow](
		selectDocuments(h.db.WithContext(ctx)).Where("documents.id = ?", query.DocumentID().Bytes()),
		"document", query.DocumentID(),
	)
	if err != nil {
		return documentRow{}, err
	}

	accountID, err := toUUID(row.AccountID)
	if err != nil {
		return documentRow{}, err
	}
	ownership := services.Ownership{AccountID: accountID}
	if err = h.policy.AuthorizeRead(query.Actor(), services.KindDocument, query.DocumentID(), ownership); err != nil {
		return documentRow{}, err
	}
	return row, nil
}

// GetDocumentFileQueryHandler opens the stored content of a visible
// document.
type GetDocumentFileQueryHandler struct {
	documents GetDocumentQueryHandler
	storage   ports.FileStorage
}

func NewGetDocumentFileQueryHandler(db *gorm.DB, storage ports.FileStorage) GetDocumentFileQueryHandler {
	return GetDocumentFileQueryHandler{
		documents: NewGetDocumentQueryHandler(db),
		storage:   storage,
	}
}

func (h GetDocumentFileQueryHandler) Handle(ctx context.Context, query GetDocumentQuery) (DocumentFile, error) {
	if err := query.Validate(); err != nil {
		return DocumentFile{}, err
	}

	row, err := h.documents.load(ctx, query)
	if err != nil {
		return DocumentFile{}, err
	}

	content, err := h.storage.Open(ctx, row.StorageKey)
	if err != nil {
		return DocumentFile{}, err
	}
	return DocumentFile{Name: row.Name, Content: content}, nil
}
