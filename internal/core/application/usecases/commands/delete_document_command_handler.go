package commands

import (
	"context"

	"relocation/internal/core/domain/services"
	"relocation/internal/core/ports"

	"github.com/rs/zerolog"
)

// DeleteDocumentCommandHandler removes the row, then the file.
type DeleteDocumentCommandHandler struct {
	uowFactory UoWFactory
	storage    ports.FileStorage
	policy     services.AccessPolicy
}

func NewDeleteDocumentCommandHandler(uowFactory UoWFactory, storage ports.FileStorage) DeleteDocumentCommandHandler {
	return DeleteDocumentCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *DeleteDocumentCommandHandler) Handle(ctx context.Context, cmd DeleteDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DocumentRepository()
	d, err := repo.Get(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeMutation(cmd.Actor(), services.KindDocument, d.ID(),
		services.Ownership{AccountID: d.AccountID()}); err != nil {
		return err
	}

	if err = repo.Delete(ctx, d.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.storage.Delete(ctx, d.StorageKey()); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", d.StorageKey()).Msg("failed to remove document file")
	}
	return nil
}
