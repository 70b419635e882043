package commands

import (
	"context"

	"relocation/internal/core/domain/model/relocation"
)

type CreateRelocationCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateRelocationCommandHandler(uowFactory UoWFactory) CreateRelocationCommandHandler {
	return CreateRelocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores a relocation in planning status for the actor's account.
func (h *CreateRelocationCommandHandler) Handle(ctx context.Context, cmd CreateRelocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := relocation.NewRelocation(cmd.RelocationID(), cmd.Actor().AccountID(), cmd.Plan())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RelocationRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
