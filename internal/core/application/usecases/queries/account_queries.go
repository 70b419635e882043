package queries

import (
	"errors"
	"time"

	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var (
	ErrGetMeQueryIsNotConstructed = errors.New(
		"GetMeQuery must be created via NewGetMeQuery constructor",
	)
	ErrListAccountsQueryIsNotConstructed = errors.New(
		"ListAccountsQuery must be created via NewListAccountsQuery constructor",
	)
)

// GetMeQuery returns the caller's own account.
type GetMeQuery struct {
	actor services.Actor
	guard guard.ConstructorGuard
}

func NewGetMeQuery(actor services.Actor) GetMeQuery {
	return GetMeQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetMeQuery) Validate() error {
	return q.guard.Validate(ErrGetMeQueryIsNotConstructed)
}

func (q GetMeQuery) Actor() services.Actor {
	return q.actor
}

// ListAccountsQuery lists every account. Only administrators see anything.
type ListAccountsQuery struct {
	actor services.Actor
	guard guard.ConstructorGuard
}

func NewListAccountsQuery(actor services.Actor) ListAccountsQuery {
	return ListAccountsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListAccountsQuery) Validate() error {
	return q.guard.Validate(ErrListAccountsQueryIsNotConstructed)
}

func (q ListAccountsQuery) Actor() services.Actor {
	return q.actor
}

// AccountResponse is the public view of an account. The password hash never
// leaves the write side. ProviderID is set for accounts with a provider
// profile.
type AccountResponse struct {
	ID         kernel.UUID
	Username   string
	Email      string
	Role       account.Role
	Details    account.Details
	Verified   bool
	JoinedAt   time.Time
	ProviderID *kernel.UUID
}
