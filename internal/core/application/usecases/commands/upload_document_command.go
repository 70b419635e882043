package commands

import (
	"errors"
	"io"

	"relocation/internal/core/domain/model/document"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

var ErrUploadDocumentCommandIsNotConstructed = errors.New(
	"UploadDocumentCommand must be created via NewUploadDocumentCommand constructor",
)

// DocumentMeta describes an uploaded file.
type DocumentMeta struct {
	RelocationID *kernel.UUID
	Name         string
	Type         document.Type
	Description  string
}

// UploadDocumentCommand stores a file and its metadata for the actor.
type UploadDocumentCommand struct {
	actor      services.Actor
	documentID kernel.UUID
	meta       DocumentMeta
	content    io.Reader

	guard guard.ConstructorGuard
}

func NewUploadDocumentCommand(
	actor services.Actor,
	documentID kernel.UUID,
	meta DocumentMeta,
	content io.Reader,
) (UploadDocumentCommand, error) {
	var contentErr error
	if content == nil {
		contentErr = errs.NewValueIsRequiredError("file")
	}
	_, typeErr := document.ParseType(string(meta.Type))
	var relocationErr error
	if meta.RelocationID != nil {
		relocationErr = meta.RelocationID.Validate()
	}

	if err := errors.Join(
		validateActor(actor),
		documentID.Validate(),
		typeErr,
		relocationErr,
		contentErr,
	); err != nil {
		return UploadDocumentCommand{}, err
	}

	return UploadDocumentCommand{
		actor:      actor,
		documentID: documentID,
		meta:       meta,
		content:    content,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UploadDocumentCommand) Validate() error {
	return c.guard.Validate(ErrUploadDocumentCommandIsNotConstructed)
}

func (c UploadDocumentCommand) Actor() services.Actor {
	return c.actor
}

func (c UploadDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

func (c UploadDocumentCommand) Meta() DocumentMeta {
	return c.meta
}

func (c UploadDocumentCommand) Content() io.Reader {
	return c.content
}
