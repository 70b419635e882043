package commands

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/provider"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrUpdateProviderProfileCommandIsNotConstructed = errors.New(
	"UpdateProviderProfileCommand must be created via NewUpdateProviderProfileCommand constructor",
)

// ProfilePatch lists the profile fields to change. Nil fields are left as
// they are. Rating and review count are not patchable.
type ProfilePatch struct {
	CompanyName     *string
	ContactPerson   *string
	ServicesOffered []string
	PricingInfo     *string
	Available       *bool
}

func (p ProfilePatch) apply(current provider.Info) provider.Info {
	if p.CompanyName != nil {
		current.CompanyName = *p.CompanyName
	}
	if p.ContactPerson != nil {
		current.ContactPerson = *p.ContactPerson
	}
	if p.ServicesOffered != nil {
		current.ServicesOffered = p.ServicesOffered
	}
	if p.PricingInfo != nil {
		current.PricingInfo = *p.PricingInfo
	}
	return current
}

type UpdateProviderProfileCommand struct { //nolint:recvcheck //using for validation
	actor     services.Actor
	profileID kernel.UUID
	patch     ProfilePatch

	guard guard.ConstructorGuard
}

func NewUpdateProviderProfileCommand(
	actor services.Actor,
	profileID kernel.UUID,
	patch ProfilePatch,
) (UpdateProviderProfileCommand, error) {
	if err := errors.Join(validateActor(actor), profileID.Validate()); err != nil {
		return UpdateProviderProfileCommand{}, err
	}

	return UpdateProviderProfileCommand{
		actor:     actor,
		profileID: profileID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProviderProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProviderProfileCommandIsNotConstructed)
}

func (c UpdateProviderProfileCommand) Actor() services.Actor {
	return c.actor
}

func (c UpdateProviderProfileCommand) ProfileID() kernel.UUID {
	return c.profileID
}

func (c UpdateProviderProfileCommand) Patch() ProfilePatch {
	return c.patch
}
