package commands_test

import (
	"testing"
	"time"

	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/provider"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func customerActor() services.Actor {
	return services.NewActor(kernel.NewUUID(), account.RoleCustomer, nil)
}

func providerActor(profileID kernel.UUID) services.Actor {
	return services.NewActor(kernel.NewUUID(), account.RoleProvider, &profileID)
}

func adminActor() services.Actor {
	return services.NewActor(kernel.NewUUID(), account.RoleAdmin, nil)
}

func newProfile(t *testing.T, accountID kernel.UUID) *provider.Profile {
	t.Helper()
	p, err := provider.NewProfile(kernel.NewUUID(), accountID, provider.Info{
		CompanyName:   "Acme Movers",
		ContactPerson: "Jo Smith",
	})
	require.NoError(t, err)
	return p
}

func newRelocation(t *testing.T, accountID kernel.UUID) *relocation.Relocation {
	t.Helper()
	r, err := relocation.NewRelocation(kernel.NewUUID(), accountID, relocation.Plan{
		Origin:      "Berlin",
		Destination: "Lisbon",
		MovingDate:  time.Now().Add(30 * 24 * time.Hour),
		Inventory:   "sofa, bed",
	})
	require.NoError(t, err)
	return r
}

func newBooking(t *testing.T, r *relocation.Relocation, providerID kernel.UUID) *booking.Booking {
	t.Helper()
	amount, err := kernel.MoneyFromString("1200")
	require.NoError(t, err)

	b, err := booking.NewBooking(kernel.NewUUID(), r.AccountID(), providerID, r.ID(), booking.Terms{
		ServiceType: "full_service",
		BookingDate: time.Now(),
		TotalAmount: amount,
	})
	require.NoError(t, err)
	return b
}

func newShipment(t *testing.T, b *booking.Booking) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), b.ID(), shipment.TrackingNumber{}, shipment.Schedule{})
	require.NoError(t, err)
	return s
}
