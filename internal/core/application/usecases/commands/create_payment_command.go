package commands

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// PaymentDetails is the client-supplied part of a payment.
type PaymentDetails struct {
	Amount        kernel.Money
	Method        string
	TransactionID string
	Notes         string
}

// CreatePaymentCommand records a payment for a booking. The gateway is
// mocked: every payment is stored as completed.
type CreatePaymentCommand struct {
	actor     services.Actor
	paymentID kernel.UUID
	bookingID kernel.UUID
	details   PaymentDetails

	guard guard.ConstructorGuard
}

func NewCreatePaymentCommand(
	actor services.Actor,
	paymentID kernel.UUID,
	bookingID kernel.UUID,
	details PaymentDetails,
) (CreatePaymentCommand, error) {
	if err := errors.Join(validateActor(actor), paymentID.Validate(), bookingID.Validate()); err != nil {
		return CreatePaymentCommand{}, err
	}

	return CreatePaymentCommand{
		actor:     actor,
		paymentID: paymentID,
		bookingID: bookingID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) Actor() services.Actor {
	return c.actor
}

func (c CreatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c CreatePaymentCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c CreatePaymentCommand) Details() PaymentDetails {
	return c.details
}
