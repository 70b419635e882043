package commands

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrCreateRelocationCommandIsNotConstructed = errors.New(
	"CreateRelocationCommand must be created via NewCreateRelocationCommand constructor",
)

// CreateRelocationCommand plans a new move owned by the actor.
//
// Example:
//
//	cmd, err := NewCreateRelocationCommand(actor, kernel.NewUUID(), relocation.Plan{
//	    Origin: "Berlin", Destination: "Lisbon", MovingDate: movingDate,
//	    Inventory: "sofa, bed, 12 boxes",
//	})
type CreateRelocationCommand struct { //nolint:recvcheck //using for validation
	actor        services.Actor
	relocationID kernel.UUID
	plan         relocation.Plan

	guard guard.ConstructorGuard
}

func NewCreateRelocationCommand(
	actor services.Actor,
	relocationID kernel.UUID,
	plan relocation.Plan,
) (CreateRelocationCommand, error) {
	if err := errors.Join(validateActor(actor), relocationID.Validate()); err != nil {
		return CreateRelocationCommand{}, err
	}

	return CreateRelocationCommand{
		actor:        actor,
		relocationID: relocationID,
		plan:         plan,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRelocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateRelocationCommandIsNotConstructed)
}

func (c CreateRelocationCommand) Actor() services.Actor {
	return c.actor
}

func (c CreateRelocationCommand) RelocationID() kernel.UUID {
	return c.relocationID
}

func (c CreateRelocationCommand) Plan() relocation.Plan {
	return c.plan
}
