package shipment

import (
	"errors"
	"strings"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Schedule holds the delivery estimates and free-form notes of a shipment.
type Schedule struct {
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Notes             string
}

// Shipment tracks the physical transit of a booking's goods. There is at
// most one shipment per booking.
type Shipment struct {
	kernel.Events

	id              kernel.UUID
	bookingID       kernel.UUID
	trackingNumber  TrackingNumber
	status          Status
	currentLocation string
	schedule        Schedule
	createdAt       time.Time
	updatedAt       time.Time
	guard           guard.ConstructorGuard
}

// NewShipment creates a shipment in Preparing status. A zero tracking
// number is replaced with a generated one.
//
// Example:
//
//	s, err := shipment.NewShipment(kernel.NewUUID(), bookingID, shipment.TrackingNumber{}, shipment.Schedule{})
//	fmt.Println(s.TrackingNumber()) // TRK-3F2A9C01B7DE
func NewShipment(id kernel.UUID, bookingID kernel.UUID, tracking TrackingNumber, schedule Schedule) (*Shipment, error) {
	if tracking.IsZero() {
		tracking = GenerateTrackingNumber()
	}

	now := time.Now().UTC()
	s := &Shipment{
		trackingNumber: tracking,
		status:         Preparing,
		schedule:       schedule,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setBookingID(bookingID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a shipment from storage.
func RestoreShipment(
	id kernel.UUID,
	bookingID kernel.UUID,
	tracking TrackingNumber,
	status Status,
	currentLocation string,
	schedule Schedule,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return &Shipment{
		id:              id,
		bookingID:       bookingID,
		trackingNumber:  tracking,
		status:          status,
		currentLocation: currentLocation,
		schedule:        schedule,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) BookingID() kernel.UUID {
	return s.bookingID
}

func (s *Shipment) TrackingNumber() TrackingNumber {
	return s.trackingNumber
}

func (s *Shipment) Status() Status {
	return s.status
}

// CurrentLocation is empty until a status update supplies one.
func (s *Shipment) CurrentLocation() string {
	return s.currentLocation
}

func (s *Shipment) Schedule() Schedule {
	return s.schedule
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// UpdateStatus sets any valid status. The current location is replaced only
// when location is non-blank.
func (s *Shipment) UpdateStatus(status Status, location string) error {
	if err := status.Validate(); err != nil {
		return err
	}

	prev := s.status
	s.status = status
	if loc := strings.TrimSpace(location); loc != "" {
		s.currentLocation = loc
	}
	s.updatedAt = time.Now().UTC()

	s.Raise(StatusChanged{
		ShipmentID:      s.id,
		BookingID:       s.bookingID,
		TrackingNumber:  s.trackingNumber.String(),
		From:            prev.String(),
		To:              status.String(),
		CurrentLocation: s.currentLocation,
		At:              s.updatedAt,
	})
	return nil
}

// Reschedule replaces the delivery estimates and notes.
func (s *Shipment) Reschedule(schedule Schedule) {
	s.schedule = schedule
	s.updatedAt = time.Now().UTC()
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("booking", err)
	}
	s.bookingID = bookingID
	return nil
}
