package queries

import (
	"context"
	"time"

	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// bookingScope also serves every read model joined to bookings.
var bookingScope = scopeColumns{
	account:  "bookings.account_id",
	provider: "bookings.provider_id",
}

type bookingRow struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	ProviderID   uuid.UUID
	RelocationID uuid.UUID
	ServiceType  string
	BookingDate  time.Time
	Status       int
	TotalAmount  decimal.Decimal
	Notes        string
	CreatedAt    time.Time
}

func (r bookingRow) toResponse() (BookingResponse, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{r.ID, r.AccountID, r.ProviderID, r.RelocationID} {
		id, err := toUUID(raw)
		if err != nil {
			return BookingResponse{}, err
		}
		ids = append(ids, id)
	}

	amount, err := kernel.NewMoney(r.TotalAmount)
	if err != nil {
		return BookingResponse{}, err
	}

	return BookingResponse{
		ID:           ids[0],
		AccountID:    ids[1],
		ProviderID:   ids[2],
		RelocationID: ids[3],
		Terms: booking.Terms{
			ServiceType: r.ServiceType,
			BookingDate: r.BookingDate,
			TotalAmount: amount,
			Notes:       r.Notes,
		},
		Status:    booking.Status(r.Status),
		CreatedAt: r.CreatedAt,
	}, nil
}

func (r BookingResponse) ownership() services.Ownership {
	providerID := r.ProviderID
	return services.Ownership{AccountID: r.AccountID, ProviderID: &providerID}
}

func selectBookings(db *gorm.DB) *gorm.DB {
	return db.Table("bookings").
		Select(`bookings.id, bookings.account_id, bookings.provider_id, bookings.relocation_id,
			bookings.service_type, bookings.booking_date, bookings.status,
			bookings.total_amount, bookings.notes, bookings.created_at`)
}

type ListBookingsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListBookingsQueryHandler(db *gorm.DB) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the visible bookings, newest first.
func (h ListBookingsQueryHandler) Handle(ctx context.Context, query ListBookingsQuery) ([]BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := h.policy.VisibleSet(query.Actor(), services.KindBooking)

	var rows []bookingRow
	err := applyScope(selectBookings(h.db.WithContext(ctx)), scope, bookingScope).
		Order("bookings.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return mapRows(rows, bookingRow.toResponse)
}

type GetBookingQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetBookingQueryHandler(db *gorm.DB) GetBookingQueryHandler {
	return GetBookingQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetBookingQueryHandler) Handle(ctx context.Context, query GetBookingQuery) (BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return BookingResponse{}, err
	}

	row, err := findOne[bookingRow](
		selectBookings(h.db.WithContext(ctx)).Where("bookings.id = ?", query.BookingID().Bytes()),
		"booking", query.BookingID(),
	)
	if err != nil {
		return BookingResponse{}, err
	}

	resp, err := row.toResponse()
	if err != nil {
		return BookingResponse{}, err
	}

	if err = h.policy.AuthorizeRead(query.Actor(), services.KindBooking, resp.ID, resp.ownership()); err != nil {
		return BookingResponse{}, err
	}
	return resp, nil
}
