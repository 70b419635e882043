package commands

import (
	"errors"
	"strings"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand starts tracking the goods of a booking. An empty
// tracking number is replaced with a generated one.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      services.Actor
	shipmentID kernel.UUID
	bookingID  kernel.UUID
	tracking   shipment.TrackingNumber
	schedule   shipment.Schedule

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(
	actor services.Actor,
	shipmentID kernel.UUID,
	bookingID kernel.UUID,
	trackingNumber string,
	schedule shipment.Schedule,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		actor:    actor,
		schedule: schedule,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateActor(actor),
		shipmentID.Validate(),
		bookingID.Validate(),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return CreateShipmentCommand{}, err
	}
	cmd.shipmentID = shipmentID
	cmd.bookingID = bookingID

	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Actor() services.Actor {
	return c.actor
}

func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c CreateShipmentCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// TrackingNumber is zero when the caller did not supply one.
func (c CreateShipmentCommand) TrackingNumber() shipment.TrackingNumber {
	return c.tracking
}

func (c CreateShipmentCommand) Schedule() shipment.Schedule {
	return c.schedule
}

func (c *CreateShipmentCommand) setTrackingNumber(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	tracking, err := shipment.NewTrackingNumber(raw)
	if err != nil {
		return err
	}
	c.tracking = tracking
	return nil
}
