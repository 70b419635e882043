package queries

import (
	"context"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/payment"
	"relocation/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type paymentRow struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	Amount        decimal.Decimal
	Method        string
	Status        string
	TransactionID string
	Notes         string
	PaidAt        time.Time
	AccountID     uuid.UUID
	ProviderID    uuid.UUID
}

func (r paymentRow) toResponse() (PaymentResponse, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return PaymentResponse{}, err
	}
	bookingID, err := toUUID(r.BookingID)
	if err != nil {
		return PaymentResponse{}, err
	}
	amount, err := kernel.NewMoney(r.Amount)
	if err != nil {
		return PaymentResponse{}, err
	}
	status, err := payment.ParseStatus(r.Status)
	if err != nil {
		return PaymentResponse{}, err
	}

	return PaymentResponse{
		ID:            id,
		BookingID:     bookingID,
		Amount:        amount,
		Method:        r.Method,
		Status:        status,
		TransactionID: r.TransactionID,
		Notes:         r.Notes,
		PaidAt:        r.PaidAt,
	}, nil
}

func (r paymentRow) ownership() (services.Ownership, error) {
	accountID, err := toUUID(r.AccountID)
	if err != nil {
		return services.Ownership{}, err
	}
	providerID, err := toUUID(r.ProviderID)
	if err != nil {
		return services.Ownership{}, err
	}
	return services.Ownership{AccountID: accountID, ProviderID: &providerID}, nil
}

func selectPayments(db *gorm.DB) *gorm.DB {
	return db.Table("payments").
		Select(`payments.id, payments.booking_id, payments.amount, payments.method, payments.status,
			payments.transaction_id, payments.notes, payments.paid_at,
			bookings.account_id, bookings.provider_id`).
		Joins("JOIN bookings ON bookings.id = payments.booking_id")
}

type ListPaymentsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := h.policy.VisibleSet(query.Actor(), services.KindPayment)

	var rows []paymentRow
	err := applyScope(selectPayments(h.db.WithContext(ctx)), scope, bookingScope).
		Order("payments.paid_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return mapRows(rows, paymentRow.toResponse)
}

type GetPaymentQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	row, err := findOne[paymentRow](
		selectPayments(h.db.WithContext(ctx)).Where("payments.id = ?", query.PaymentID().Bytes()),
		"payment", query.PaymentID(),
	)
	if err != nil {
		return PaymentResponse{}, err
	}

	ownership, err := row.ownership()
	if err != nil {
		return PaymentResponse{}, err
	}
	if err = h.policy.AuthorizeRead(query.Actor(), services.KindPayment, query.PaymentID(), ownership); err != nil {
		return PaymentResponse{}, err
	}

	return row.toResponse()
}
