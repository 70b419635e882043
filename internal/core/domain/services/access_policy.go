package services

import (
	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"
)

// ResourceKind names a record type subject to access scoping.
type ResourceKind int

const (
	KindAccount ResourceKind = iota + 1
	KindProvider
	KindRelocation
	KindBooking
	KindShipment
	KindPayment
	KindReview
	KindDocument
)

func (k ResourceKind) String() string {
	switch k {
	case KindAccount:
		return "account"
	case KindProvider:
		return "provider"
	case KindRelocation:
		return "relocation"
	case KindBooking:
		return "booking"
	case KindShipment:
		return "shipment"
	case KindPayment:
		return "payment"
	case KindReview:
		return "review"
	case KindDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Actor is the caller of an operation, as resolved by the auth collaborator.
type Actor struct {
	accountID     kernel.UUID
	role          account.Role
	providerID    *kernel.UUID
	authenticated bool
}

// NewActor describes an authenticated caller. providerID is the caller's
// provider profile, if any.
func NewActor(accountID kernel.UUID, role account.Role, providerID *kernel.UUID) Actor {
	return Actor{
		accountID:     accountID,
		role:          role,
		providerID:    providerID,
		authenticated: true,
	}
}

// AnonymousActor is a caller without credentials.
func AnonymousActor() Actor {
	return Actor{}
}

func (a Actor) AccountID() kernel.UUID {
	return a.accountID
}

func (a Actor) Role() account.Role {
	return a.role
}

func (a Actor) ProviderID() *kernel.UUID {
	return a.providerID
}

func (a Actor) IsAnonymous() bool {
	return !a.authenticated
}

func (a Actor) IsAdmin() bool {
	return a.authenticated && a.role == account.RoleAdmin
}

// Ownership describes who a single record belongs to. ProviderID is the
// provider profile the record is served by (for bookings and everything
// hanging off them) or the profile itself.
type Ownership struct {
	AccountID  kernel.UUID
	ProviderID *kernel.UUID
	Public     bool
}

// Scope is the predicate returned by the policy. A record is in scope when
// any of the enabled conditions holds.
type Scope struct {
	unrestricted bool
	public       bool
	accountID    *kernel.UUID
	providerID   *kernel.UUID
}

func (s Scope) Unrestricted() bool {
	return s.unrestricted
}

// IncludesPublic reports whether publicly readable records are in scope.
func (s Scope) IncludesPublic() bool {
	return s.public
}

func (s Scope) AccountID() (kernel.UUID, bool) {
	if s.accountID == nil {
		return kernel.UUID{}, false
	}
	return *s.accountID, true
}

func (s Scope) ProviderID() (kernel.UUID, bool) {
	if s.providerID == nil {
		return kernel.UUID{}, false
	}
	return *s.providerID, true
}

// IsEmpty reports a scope that matches nothing.
func (s Scope) IsEmpty() bool {
	return !s.unrestricted && !s.public && s.accountID == nil && s.providerID == nil
}

func (s Scope) Allows(o Ownership) bool {
	switch {
	case s.unrestricted:
		return true
	case s.public && o.Public:
		return true
	case s.accountID != nil && s.accountID.IsEqual(o.AccountID):
		return true
	case s.providerID != nil && o.ProviderID != nil && s.providerID.IsEqual(*o.ProviderID):
		return true
	default:
		return false
	}
}

// AccessPolicy is the single place that decides which records an actor may
// read or change.
//
// Rules:
//   - admin: everything
//   - provider: bookings, shipments and payments served by the actor's own
//     profile; nothing if the actor has no profile
//   - customer: records owned by the actor, directly or through the booking
//     they hang off
//   - reviews and available provider profiles are readable by anyone,
//     including anonymous callers
//
// Mutations use the same rules without the public widening.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// VisibleSet returns the read scope of actor for kind.
func (p AccessPolicy) VisibleSet(actor Actor, kind ResourceKind) Scope {
	scope := p.MutableSet(actor, kind)
	if kind == KindReview || kind == KindProvider {
		scope.public = true
	}
	return scope
}

// MutableSet returns the write scope of actor for kind.
func (AccessPolicy) MutableSet(actor Actor, kind ResourceKind) Scope {
	if actor.IsAdmin() {
		return Scope{unrestricted: true}
	}
	if actor.IsAnonymous() {
		return Scope{}
	}

	self := actor.accountID
	switch kind {
	case KindProvider:
		return Scope{providerID: actor.providerID}
	case KindBooking, KindShipment, KindPayment:
		if actor.role == account.RoleProvider {
			return Scope{providerID: actor.providerID}
		}
		return Scope{accountID: &self}
	case KindAccount, KindRelocation, KindReview, KindDocument:
		return Scope{accountID: &self}
	default:
		return Scope{}
	}
}

// AuthorizeRead returns a Forbidden error when the record is not visible.
func (p AccessPolicy) AuthorizeRead(actor Actor, kind ResourceKind, id kernel.UUID, o Ownership) error {
	if p.VisibleSet(actor, kind).Allows(o) {
		return nil
	}
	return errs.NewForbiddenError(kind.String(), id.String())
}

// AuthorizeMutation returns a Forbidden error when the record may not be changed.
func (p AccessPolicy) AuthorizeMutation(actor Actor, kind ResourceKind, id kernel.UUID, o Ownership) error {
	if p.MutableSet(actor, kind).Allows(o) {
		return nil
	}
	return errs.NewForbiddenError(kind.String(), id.String())
}
