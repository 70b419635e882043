package commands

import (
	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/errs"
)

var ErrAuthenticationRequired = errs.NewUnauthenticatedError("authentication required")

func validateActor(actor services.Actor) error {
	if actor.IsAnonymous() {
		return ErrAuthenticationRequired
	}
	return nil
}

// bookingOwnership is the ownership of a booking and of every record that
// hangs off it.
func bookingOwnership(b *booking.Booking) services.Ownership {
	providerID := b.ProviderID()
	return services.Ownership{
		AccountID:  b.AccountID(),
		ProviderID: &providerID,
	}
}
