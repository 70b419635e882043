package queries

import (
	"context"
	"encoding/json"
	"time"

	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/domain/services"
	"relocation/internal/core/ports"
	"relocation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type shipmentRow struct {
	ID                uuid.UUID
	BookingID         uuid.UUID
	TrackingNumber    string
	Status            int
	CurrentLocation   string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	AccountID         uuid.UUID
	ProviderID        uuid.UUID
}

func (r shipmentRow) toResponse() (ShipmentResponse, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return ShipmentResponse{}, err
	}
	bookingID, err := toUUID(r.BookingID)
	if err != nil {
		return ShipmentResponse{}, err
	}

	return ShipmentResponse{
		ID:              id,
		BookingID:       bookingID,
		TrackingNumber:  r.TrackingNumber,
		Status:          shipment.Status(r.Status),
		CurrentLocation: r.CurrentLocation,
		Schedule: shipment.Schedule{
			EstimatedDelivery: r.EstimatedDelivery,
			ActualDelivery:    r.ActualDelivery,
			Notes:             r.Notes,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func (r shipmentRow) ownership() (services.Ownership, error) {
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

func selectShipments(db *gorm.DB) *gorm.DB {
	return db.Table("shipments").
		Select(`shipments.id, shipments.booking_id, shipments.tracking_number, shipments.status,
			shipments.current_location, shipments.estimated_delivery, shipments.actual_delivery,
			shipments.notes, shipments.created_at, shipments.updated_at,
			bookings.account_id, bookings.provider_id`).
		Joins("JOIN bookings ON bookings.id = shipments.booking_id")
}

type ListShipmentsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the shipments of visible bookings, most recently updated
// first.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := h.policy.VisibleSet(query.Actor(), services.KindShipment)

	var rows []shipmentRow
	err := applyScope(selectShipments(h.db.WithContext(ctx)), scope, bookingScope).
		Order("shipments.updated_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return mapRows(rows, shipmentRow.toResponse)
}

type GetShipmentQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	row, err := findOne[shipmentRow](
		selectShipments(h.db.WithContext(ctx)).Where("shipments.id = ?", query.ShipmentID().Bytes()),
		"shipment", query.ShipmentID(),
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	ownership, err := row.ownership()
	if err != nil {
		return ShipmentResponse{}, err
	}
	if err = h.policy.AuthorizeRead(query.Actor(), services.KindShipment, query.ShipmentID(), ownership); err != nil {
		return ShipmentResponse{}, err
	}

	return row.toResponse()
}

// TrackShipmentQueryHandler serves tracking lookups through the cache. The
// write side evicts an entry whenever the shipment's status changes.
type TrackShipmentQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
	ttl   time.Duration
}

func NewTrackShipmentQueryHandler(db *gorm.DB, cache ports.Cache, ttl time.Duration) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db, cache: cache, ttl: ttl}
}

// Handle answers from the cache when it can. Cache failures fall back to
// the database and never fail the lookup; an unknown code is NotFound and
// is not cached.
func (h TrackShipmentQueryHandler) Handle(ctx context.Context, query TrackShipmentQuery) (TrackingResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackingResponse{}, err
	}
	if query.Actor().IsAnonymous() {
		return TrackingResponse{}, errs.NewUnauthenticatedError("authentication required")
	}

	key := ports.TrackingCacheKey(query.Code())
	cached, ok, err := h.cache.Get(ctx, key)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("tracking_number", query.Code()).Msg("tracking cache read failed")
	}
	if err == nil && ok {
		var resp TrackingResponse
		if json.Unmarshal(cached, &resp) == nil {
			return resp, nil
		}
	}

	var rows []shipmentRow
	err = selectShipments(h.db.WithContext(ctx)).
		Where("shipments.tracking_number = ?", query.Code()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return TrackingResponse{}, err
	}
	if len(rows) == 0 {
		return TrackingResponse{}, errs.NewObjectNotFoundError("shipment", "tracking "+query.Code())
	}

	row := rows[0]
	resp := TrackingResponse{
		TrackingNumber:    row.TrackingNumber,
		Status:            shipment.Status(row.Status),
		CurrentLocation:   row.CurrentLocation,
		EstimatedDelivery: row.EstimatedDelivery,
		ActualDelivery:    row.ActualDelivery,
		UpdatedAt:         row.UpdatedAt,
	}

	if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
		if setErr := h.cache.Set(ctx, key, payload, h.ttl); setErr != nil {
			zerolog.Ctx(ctx).Warn().Err(setErr).Str("tracking_number", query.Code()).Msg("tracking cache write failed")
		}
	}
	return resp, nil
}
