package queries

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/provider"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListProvidersQueryIsNotConstructed = errors.New(
		"ListProvidersQuery must be created via NewListProvidersQuery constructor",
	)
	ErrGetProviderQueryIsNotConstructed = errors.New(
		"GetProviderQuery must be created via NewGetProviderQuery constructor",
	)
)

// ListProvidersQuery lists the provider directory. Anyone, including
// anonymous callers, sees available providers; an owner also sees their own
// profile and an administrator sees all of them.
type ListProvidersQuery struct {
	actor services.Actor
	guard guard.ConstructorGuard
}

func NewListProvidersQuery(actor services.Actor) ListProvidersQuery {
	return ListProvidersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListProvidersQuery) Validate() error {
	return q.guard.Validate(ErrListProvidersQueryIsNotConstructed)
}

func (q ListProvidersQuery) Actor() services.Actor {
	return q.actor
}

type GetProviderQuery struct {
	actor      services.Actor
	providerID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetProviderQuery(actor services.Actor, providerID kernel.UUID) (GetProviderQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetProviderQuery{}, err
	}
	return GetProviderQuery{
		actor:      actor,
		providerID: providerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetProviderQuery) Validate() error {
	return q.guard.Validate(ErrGetProviderQueryIsNotConstructed)
}

func (q GetProviderQuery) Actor() services.Actor {
	return q.actor
}

func (q GetProviderQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// ProviderResponse is a provider profile with its aggregate rating.
type ProviderResponse struct {
	ID           kernel.UUID
	AccountID    kernel.UUID
	Info         provider.Info
	Available    bool
	Rating       decimal.Decimal
	TotalReviews int
}
