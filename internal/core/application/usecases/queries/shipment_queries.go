package queries

import (
	"errors"
	"strings"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
	ErrTrackShipmentQueryIsNotConstructed = errors.New(
		"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
	)
)

type ListShipmentsQuery struct {
	actor services.Actor
	guard guard.ConstructorGuard
}

func NewListShipmentsQuery(actor services.Actor) ListShipmentsQuery {
	return ListShipmentsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) Actor() services.Actor {
	return q.actor
}

type GetShipmentQuery struct {
	actor      services.Actor
	shipmentID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetShipmentQuery(actor services.Actor, shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{
		actor:      actor,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

func (q GetShipmentQuery) Actor() services.Actor {
	return q.actor
}

func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// TrackShipmentQuery looks a shipment up by its tracking code. Knowing the
// code is enough; any authenticated caller may track.
type TrackShipmentQuery struct {
	actor services.Actor
	code  string
	guard guard.ConstructorGuard
}

func NewTrackShipmentQuery(actor services.Actor, code string) (TrackShipmentQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return TrackShipmentQuery{}, errs.NewValueIsRequiredError("code")
	}
	return TrackShipmentQuery{
		actor: actor,
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

func (q TrackShipmentQuery) Actor() services.Actor {
	return q.actor
}

func (q TrackShipmentQuery) Code() string {
	return q.code
}

type ShipmentResponse struct {
	ID              kernel.UUID
	BookingID       kernel.UUID
	TrackingNumber  string
	Status          shipment.Status
	CurrentLocation string
	Schedule        shipment.Schedule
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TrackingResponse is the reduced view returned to tracking lookups. It is
// also the cached form, hence the tags.
type TrackingResponse struct {
	TrackingNumber    string          `json:"tracking_number"`
	Status            shipment.Status `json:"status"`
	CurrentLocation   string          `json:"current_location"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actual_delivery,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
