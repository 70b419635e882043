package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"

	"github.com/google/uuid"
)

// Status of a payment. The gateway is mocked, so new payments settle
// immediately.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

var (
	ErrMethodIsRequired        = errs.NewValueIsRequiredError("payment_method")
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return st, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid payment status", s))
	}
}

// Payment records money received for a booking.
type Payment struct {
	id            kernel.UUID
	bookingID     kernel.UUID
	amount        kernel.Money
	method        string
	status        Status
	transactionID string
	notes         string
	paidAt        time.Time
	guard         guard.ConstructorGuard
}

// NewPayment records a completed payment. An empty transaction id is
// replaced with a generated "TXN-" id.
func NewPayment(
	id kernel.UUID,
	bookingID kernel.UUID,
	amount kernel.Money,
	method string,
	transactionID string,
	notes string,
) (*Payment, error) {
	p := &Payment{
		status: StatusCompleted,
		notes:  strings.TrimSpace(notes),
		paidAt: time.Now().UTC(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setBookingID(bookingID),
		p.setAmount(amount),
		p.setMethod(method),
	); err != nil {
		return nil, err
	}

	p.transactionID = strings.TrimSpace(transactionID)
	if p.transactionID == "" {
		p.transactionID = "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}

	return p, nil
}

// RestorePayment rebuilds a payment from storage.
func RestorePayment(
	id kernel.UUID,
	bookingID kernel.UUID,
	amount kernel.Money,
	method string,
	status Status,
	transactionID string,
	notes string,
	paidAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		bookingID:     bookingID,
		amount:        amount,
		method:        method,
		status:        status,
		transactionID: transactionID,
		notes:         notes,
		paidAt:        paidAt,
		guard:         guard.NewConstructorGuard(),
	}
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) BookingID() kernel.UUID {
	return p.bookingID
}

func (p *Payment) Amount() kernel.Money {
	return p.amount
}

func (p *Payment) Method() string {
	return p.method
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) TransactionID() string {
	return p.transactionID
}

func (p *Payment) Notes() string {
	return p.notes
}

func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("booking", err)
	}
	p.bookingID = bookingID
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("amount", err)
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method string) error {
	method = strings.TrimSpace(method)
	if method == "" {
		return ErrMethodIsRequired
	}
	p.method = method
	return nil
}
