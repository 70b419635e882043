package commands

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrDeleteDocumentCommandIsNotConstructed = errors.New(
	"DeleteDocumentCommand must be created via NewDeleteDocumentCommand constructor",
)

type DeleteDocumentCommand struct {
	actor      services.Actor
	documentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDocumentCommand(actor services.Actor, documentID kernel.UUID) (DeleteDocumentCommand, error) {
	if err := errors.Join(validateActor(actor), documentID.Validate()); err != nil {
		return DeleteDocumentCommand{}, err
	}

	return DeleteDocumentCommand{
		actor:      actor,
		documentID: documentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteDocumentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDocumentCommandIsNotConstructed)
}

func (c DeleteDocumentCommand) Actor() services.Actor {
	return c.actor
}

func (c DeleteDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}
