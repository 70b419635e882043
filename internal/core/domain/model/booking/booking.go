package booking

import (
	"errors"
	"strings"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

var (
	ErrServiceTypeIsRequired   = errs.NewValueIsRequiredError("service_type")
	ErrBookingDateIsRequired   = errs.NewValueIsRequiredError("booking_date")
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
)

// Terms are the negotiated, editable parts of a booking.
type Terms struct {
	ServiceType string
	BookingDate time.Time
	TotalAmount kernel.Money
	Notes       string
}

// Booking links a customer's relocation to a chosen provider.
//
// Invariants:
//   - references exactly one account, provider profile and relocation
//   - the relocation belongs to the booking's account (checked by the
//     application layer, which can see both aggregates)
//   - starts Pending; status changes go through Confirm, Cancel and Advance
type Booking struct {
	kernel.Events

	id           kernel.UUID
	accountID    kernel.UUID
	providerID   kernel.UUID
	relocationID kernel.UUID
	terms        Terms
	status       Status
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewBooking creates a Pending booking.
//
// Example:
//
//	amount, _ := kernel.MoneyFromString("1200")
//	b, err := booking.NewBooking(kernel.NewUUID(), customerID, profileID, relocationID,
//	    booking.Terms{ServiceType: "full_service", BookingDate: time.Now(), TotalAmount: amount})
func NewBooking(
	id kernel.UUID,
	accountID kernel.UUID,
	providerID kernel.UUID,
	relocationID kernel.UUID,
	terms Terms,
) (*Booking, error) {
	b := &Booking{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setReference("account", &b.accountID, accountID),
		b.setReference("provider", &b.providerID, providerID),
		b.setReference("relocation", &b.relocationID, relocationID),
		b.setTerms(terms),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking rebuilds a booking from storage.
func RestoreBooking(
	id kernel.UUID,
	accountID kernel.UUID,
	providerID kernel.UUID,
	relocationID kernel.UUID,
	terms Terms,
	status Status,
	createdAt time.Time,
) (*Booking, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return &Booking{
		id:           id,
		accountID:    accountID,
		providerID:   providerID,
		relocationID: relocationID,
		terms:        terms,
		status:       status,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

func (b *Booking) ID() kernel.UUID {
	return b.id
}

func (b *Booking) AccountID() kernel.UUID {
	return b.accountID
}

func (b *Booking) ProviderID() kernel.UUID {
	return b.providerID
}

func (b *Booking) RelocationID() kernel.UUID {
	return b.relocationID
}

func (b *Booking) Terms() Terms {
	return b.terms
}

func (b *Booking) Status() Status {
	return b.status
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

// Confirm moves a Pending booking to Confirmed. On error the status is unchanged.
func (b *Booking) Confirm() error {
	next, err := b.status.Confirm()
	if err != nil {
		return err
	}
	b.transition(next, EventConfirmed)
	return nil
}

// Cancel moves a Pending or Confirmed booking to Cancelled.
func (b *Booking) Cancel() error {
	next, err := b.status.Cancel()
	if err != nil {
		return err
	}
	b.transition(next, EventCancelled)
	return nil
}

// Advance applies an operator status (InProgress or Completed).
func (b *Booking) Advance(target Status) error {
	next, err := b.status.Advance(target)
	if err != nil {
		return err
	}
	b.transition(next, EventStatusChanged)
	return nil
}

// UpdateTerms replaces the negotiated fields; status is untouched.
func (b *Booking) UpdateTerms(terms Terms) error {
	return b.setTerms(terms)
}

func (b *Booking) transition(next Status, eventName string) {
	prev := b.status
	b.status = next
	b.Raise(StatusChanged{
		Name:         eventName,
		BookingID:    b.id,
		RelocationID: b.relocationID,
		ProviderID:   b.providerID,
		From:         prev.String(),
		To:           next.String(),
		At:           time.Now().UTC(),
	})
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setReference(name string, dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}

func (b *Booking) setTerms(terms Terms) error {
	terms.ServiceType = strings.TrimSpace(terms.ServiceType)

	var err error
	if terms.ServiceType == "" {
		err = errors.Join(err, ErrServiceTypeIsRequired)
	}
	if terms.BookingDate.IsZero() {
		err = errors.Join(err, ErrBookingDateIsRequired)
	}
	if amountErr := terms.TotalAmount.Validate(); amountErr != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("total_amount", amountErr))
	}
	if err != nil {
		return err
	}

	b.terms = terms
	return nil
}
