package queries

import (
	"errors"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/payment"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var (
	ErrListPaymentsQueryIsNotConstructed = errors.New(
		"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
	)
	ErrGetPaymentQueryIsNotConstructed = errors.New(
		"GetPaymentQuery must be created via NewGetPaymentQuery constructor",
	)
)

type ListPaymentsQuery struct {
	actor services.Actor
	guard guard.ConstructorGuard
}

func NewListPaymentsQuery(actor services.Actor) ListPaymentsQuery {
	return ListPaymentsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

func (q ListPaymentsQuery) Actor() services.Actor {
	return q.actor
}

type GetPaymentQuery struct {
	actor     services.Actor
	paymentID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetPaymentQuery(actor services.Actor, paymentID kernel.UUID) (GetPaymentQuery, error) {
	if err := paymentID.Validate(); err != nil {
		return GetPaymentQuery{}, err
	}
	return GetPaymentQuery{
		actor:     actor,
		paymentID: paymentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

func (q GetPaymentQuery) Actor() services.Actor {
	return q.actor
}

func (q GetPaymentQuery) PaymentID() kernel.UUID {
	return q.paymentID
}

type PaymentResponse struct {
	ID            kernel.UUID
	BookingID     kernel.UUID
	Amount        kernel.Money
	Method        string
	Status        payment.Status
	TransactionID string
	Notes         string
	PaidAt        time.Time
}
