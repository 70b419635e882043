package commands

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand sets a shipment's status and, optionally, its
// current location. Any status of the defined set is accepted, in any order.
//
// Example:
//
//	cmd, err := NewUpdateShipmentStatusCommand(actor, shipmentID, "in_transit", "Lyon hub")
//	if errors.Is(err, errs.ErrValueIsInvalid) {
//	    // unknown status
//	}
type UpdateShipmentStatusCommand struct {
	actor      services.Actor
	shipmentID kernel.UUID
	status     shipment.Status
	location   string

	guard guard.ConstructorGuard
}

func NewUpdateShipmentStatusCommand(
	actor services.Actor,
	shipmentID kernel.UUID,
	status string,
	location string,
) (UpdateShipmentStatusCommand, error) {
	parsed, statusErr := shipment.ParseStatus(status)
	if err := errors.Join(validateActor(actor), shipmentID.Validate(), statusErr); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return UpdateShipmentStatusCommand{
		actor:      actor,
		shipmentID: shipmentID,
		status:     parsed,
		location:   location,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

func (c UpdateShipmentStatusCommand) Actor() services.Actor {
	return c.actor
}

func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

// Location is empty when the current location should be kept.
func (c UpdateShipmentStatusCommand) Location() string {
	return c.location
}
