package commands

import (
	"context"
	"fmt"

	"relocation/internal/core/domain/model/document"
	"relocation/internal/core/ports"
	"relocation/internal/pkg/errs"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var ErrRelocationBelongsToAnotherAccount = errs.NewValueIsInvalidErrorWithCause(
	"relocation", errors.New("relocation must belong to the uploading account"),
)

// UploadDocumentCommandHandler writes the file first and the row second.
// When the row cannot be stored the file is removed again.
type UploadDocumentCommandHandler struct {
	uowFactory UoWFactory
	storage    ports.FileStorage
}

func NewUploadDocumentCommandHandler(uowFactory UoWFactory, storage ports.FileStorage) UploadDocumentCommandHandler {
	return UploadDocumentCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
	}
}

// StorageKey is the blob key of a document.
func StorageKey(cmd UploadDocumentCommand) string {
	return fmt.Sprintf("documents/%s/%s", cmd.Actor().AccountID(), cmd.DocumentID())
}

func (h *UploadDocumentCommandHandler) Handle(ctx context.Context, cmd UploadDocumentCommand) (err error) {
	if err = cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountID := cmd.Actor().AccountID()
	meta := cmd.Meta()
	if meta.RelocationID != nil {
		r, getErr := uow.RelocationRepository().Get(ctx, *meta.RelocationID)
		if getErr != nil {
			return getErr
		}
		if !r.IsOwnedBy(accountID) {
			return ErrRelocationBelongsToAnotherAccount
		}
	}

	key := StorageKey(cmd)
	d, err := document.NewDocument(cmd.DocumentID(), accountID, meta.RelocationID, meta.Name, meta.Type, key, meta.Description)
	if err != nil {
		return err
	}

	if _, err = h.storage.Save(ctx, key, cmd.Content()); err != nil {
		return errors.Wrap(err, "store document file")
	}

	defer func() {
		if err == nil {
			return
		}
		if delErr := h.storage.Delete(ctx, key); delErr != nil {
			zerolog.Ctx(ctx).Warn().Err(delErr).Str("key", key).Msg("failed to remove orphaned document file")
		}
	}()

	if err = uow.DocumentRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
