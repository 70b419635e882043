package commands

import (
	"errors"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrUpdateRelocationCommandIsNotConstructed = errors.New(
	"UpdateRelocationCommand must be created via NewUpdateRelocationCommand constructor",
)

// RelocationPatch lists the relocation fields to change. Nil fields are left
// as they are.
type RelocationPatch struct {
	Origin      *string
	Destination *string
	MovingDate  *time.Time
	Inventory   *string
	Status      *relocation.Status
}

func (p RelocationPatch) apply(plan relocation.Plan) relocation.Plan {
	if p.Origin != nil {
		plan.Origin = *p.Origin
	}
	if p.Destination != nil {
		plan.Destination = *p.Destination
	}
	if p.MovingDate != nil {
		plan.MovingDate = *p.MovingDate
	}
	if p.Inventory != nil {
		plan.Inventory = *p.Inventory
	}
	return plan
}

type UpdateRelocationCommand struct { //nolint:recvcheck //using for validation
	actor        services.Actor
	relocationID kernel.UUID
	patch        RelocationPatch

	guard guard.ConstructorGuard
}

func NewUpdateRelocationCommand(
	actor services.Actor,
	relocationID kernel.UUID,
	patch RelocationPatch,
) (UpdateRelocationCommand, error) {
	var statusErr error
	if patch.Status != nil {
		statusErr = patch.Status.Validate()
	}
	if err := errors.Join(validateActor(actor), relocationID.Validate(), statusErr); err != nil {
		return UpdateRelocationCommand{}, err
	}

	return UpdateRelocationCommand{
		actor:        actor,
		relocationID: relocationID,
		patch:        patch,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRelocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRelocationCommandIsNotConstructed)
}

func (c UpdateRelocationCommand) Actor() services.Actor {
	return c.actor
}

func (c UpdateRelocationCommand) RelocationID() kernel.UUID {
	return c.relocationID
}

func (c UpdateRelocationCommand) Patch() RelocationPatch {
	return c.patch
}
