package queries

import (
	"errors"
	"io"
	"time"

	"relocation/internal/core/domain/model/document"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var (
	ErrListDocumentsQueryIsNotConstructed = errors.New(
		"ListDocumentsQuery must be created via NewListDocumentsQuery constructor",
	)
	ErrGetDocumentQueryIsNotConstructed = errors.New(
		"GetDocumentQuery must be created via NewGetDocumentQuery constructor",
	)
)

type ListDocumentsQuery struct {
	actor services.Actor
	guard guard.ConstructorGuard
}

func NewListDocumentsQuery(actor services.Actor) ListDocumentsQuery {
	return ListDocumentsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrListDocumentsQueryIsNotConstructed)
}

func (q ListDocumentsQuery) Actor() services.Actor {
	return q.actor
}

// GetDocumentQuery reads one document's metadata or, through
// GetDocumentFileQueryHandler, its content.
type GetDocumentQuery struct {
	actor      services.Actor
	documentID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetDocumentQuery(actor services.Actor, documentID kernel.UUID) (GetDocumentQuery, error) {
	if err := documentID.Validate(); err != nil {
		return GetDocumentQuery{}, err
	}
	return GetDocumentQuery{
		actor:      actor,
		documentID: documentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentQueryIsNotConstructed)
}

func (q GetDocumentQuery) Actor() services.Actor {
	return q.actor
}

func (q GetDocumentQuery) DocumentID() kernel.UUID {
	return q.documentID
}

type DocumentResponse struct {
	ID           kernel.UUID
	AccountID    kernel.UUID
	RelocationID *kernel.UUID
	Name         string
	Type         document.Type
	Description  string
	UploadedAt   time.Time
}

// DocumentFile is an open document body. The caller closes Content.
type DocumentFile struct {
	Name    string
	Content io.ReadCloser
}
