package queries

import (
	"errors"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var (
	ErrListRelocationsQueryIsNotConstructed = errors.New(
		"ListRelocationsQuery must be created via NewListRelocationsQuery constructor",
	)
	ErrGetRelocationQueryIsNotConstructed = errors.New(
		"GetRelocationQuery must be created via NewGetRelocationQuery constructor",
	)
)

type ListRelocationsQuery struct {
	actor services.Actor
	guard guard.ConstructorGuard
}

func NewListRelocationsQuery(actor services.Actor) ListRelocationsQuery {
	return ListRelocationsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListRelocationsQuery) Validate() error {
	return q.guard.Validate(ErrListRelocationsQueryIsNotConstructed)
}

func (q ListRelocationsQuery) Actor() services.Actor {
	return q.actor
}

type GetRelocationQuery struct {
	actor        services.Actor
	relocationID kernel.UUID
	guard        guard.ConstructorGuard
}

func NewGetRelocationQuery(actor services.Actor, relocationID kernel.UUID) (GetRelocationQuery, error) {
	if err := relocationID.Validate(); err != nil {
		return GetRelocationQuery{}, err
	}
	return GetRelocationQuery{
		actor:        actor,
		relocationID: relocationID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetRelocationQuery) Validate() error {
	return q.guard.Validate(ErrGetRelocationQueryIsNotConstructed)
}

func (q GetRelocationQuery) Actor() services.Actor {
	return q.actor
}

func (q GetRelocationQuery) RelocationID() kernel.UUID {
	return q.relocationID
}

// RelocationResponse is a planned move. EstimatedCost is nil until quoted.
type RelocationResponse struct {
	ID            kernel.UUID
	AccountID     kernel.UUID
	Plan          relocation.Plan
	Status        relocation.Status
	EstimatedCost *kernel.Money
	CreatedAt     time.Time
}
