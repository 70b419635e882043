package relocation

import (
	"errors"
	"strings"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrOriginIsRequired           = errs.NewValueIsRequiredError("origin")
	ErrDestinationIsRequired      = errs.NewValueIsRequiredError("destination")
	ErrMovingDateIsRequired       = errs.NewValueIsRequiredError("moving_date")
	ErrRelocationIsNotConstructed = errors.New("Relocation must be created via NewRelocation constructor")

	// QuoteBaseFee and QuotePerItemFee make up the mock estimate.
	QuoteBaseFee    = decimal.NewFromInt(500)
	QuotePerItemFee = decimal.NewFromInt(50)
)

// Plan is the owner-editable description of a move.
type Plan struct {
	Origin      string
	Destination string
	MovingDate  time.Time
	Inventory   string
}

// Relocation is a customer's planned move. It is independent of any
// provider until a booking for it is confirmed.
type Relocation struct {
	id            kernel.UUID
	accountID     kernel.UUID
	plan          Plan
	status        Status
	estimatedCost *kernel.Money
	createdAt     time.Time
	guard         guard.ConstructorGuard
}

// NewRelocation creates a relocation in Planning status.
func NewRelocation(id kernel.UUID, accountID kernel.UUID, plan Plan) (*Relocation, error) {
	r := &Relocation{
		status:    Planning,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setAccountID(accountID),
		r.setPlan(plan),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRelocation rebuilds a relocation from storage.
func RestoreRelocation(
	id kernel.UUID,
	accountID kernel.UUID,
	plan Plan,
	status Status,
	estimatedCost *kernel.Money,
	createdAt time.Time,
) (*Relocation, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return &Relocation{
		id:            id,
		accountID:     accountID,
		plan:          plan,
		status:        status,
		estimatedCost: estimatedCost,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (r *Relocation) Validate() error {
	if r == nil {
		return ErrRelocationIsNotConstructed
	}
	return r.guard.Validate(ErrRelocationIsNotConstructed)
}

func (r *Relocation) ID() kernel.UUID {
	return r.id
}

func (r *Relocation) AccountID() kernel.UUID {
	return r.accountID
}

func (r *Relocation) Plan() Plan {
	return r.plan
}

func (r *Relocation) Status() Status {
	return r.status
}

// EstimatedCost is nil until the relocation has been quoted.
func (r *Relocation) EstimatedCost() *kernel.Money {
	return r.estimatedCost
}

func (r *Relocation) CreatedAt() time.Time {
	return r.createdAt
}

// IsOwnedBy reports whether accountID owns the relocation.
func (r *Relocation) IsOwnedBy(accountID kernel.UUID) bool {
	return r.accountID.IsEqual(accountID)
}

// UpdatePlan replaces the plan fields.
func (r *Relocation) UpdatePlan(plan Plan) error {
	return r.setPlan(plan)
}

// ChangeStatus sets any valid status. It is the owner/operator path; the
// confirmation cascade uses MarkBooked.
func (r *Relocation) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

// MarkBooked is applied when a booking for this relocation is confirmed.
func (r *Relocation) MarkBooked() {
	r.status = Booked
}

// Quote computes and stores the mock estimate: a base fee plus a surcharge
// per inventory item, where items are comma separated. The stored estimate
// is left untouched when the fees produce an invalid amount.
//
// Example:
//
//	r.UpdatePlan(relocation.Plan{..., Inventory: "sofa, bed, 12 boxes"})
//	cost, err := r.Quote() // 650.00
func (r *Relocation) Quote() (kernel.Money, error) {
	items := int64(len(strings.Split(r.plan.Inventory, ",")))
	amount := QuoteBaseFee.Add(QuotePerItemFee.Mul(decimal.NewFromInt(items)))

	cost, err := kernel.NewMoney(amount)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("estimated cost", err)
	}
	r.estimatedCost = &cost
	return cost, nil
}

func (r *Relocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Relocation) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("account", err)
	}
	r.accountID = accountID
	return nil
}

func (r *Relocation) setPlan(plan Plan) error {
	plan.Origin = strings.TrimSpace(plan.Origin)
	plan.Destination = strings.TrimSpace(plan.Destination)

	var err error
	if plan.Origin == "" {
		err = errors.Join(err, ErrOriginIsRequired)
	}
	if plan.Destination == "" {
		err = errors.Join(err, ErrDestinationIsRequired)
	}
	if plan.MovingDate.IsZero() {
		err = errors.Join(err, ErrMovingDateIsRequired)
	}
	if err != nil {
		return err
	}

	r.plan = plan
	return nil
}
