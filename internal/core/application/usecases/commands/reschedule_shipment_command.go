package commands

import (
	"errors"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrRescheduleShipmentCommandIsNotConstructed = errors.New(
	"RescheduleShipmentCommand must be created via NewRescheduleShipmentCommand constructor",
)

// SchedulePatch lists the schedule fields to change. Nil fields are left as
// they are.
type SchedulePatch struct {
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Notes             *string
}

func (p SchedulePatch) apply(schedule shipment.Schedule) shipment.Schedule {
	if p.EstimatedDelivery != nil {
		schedule.EstimatedDelivery = p.EstimatedDelivery
	}
	if p.ActualDelivery != nil {
		schedule.ActualDelivery = p.ActualDelivery
	}
	if p.Notes != nil {
		schedule.Notes = *p.Notes
	}
	return schedule
}

type RescheduleShipmentCommand struct {
	actor      services.Actor
	shipmentID kernel.UUID
	patch      SchedulePatch

	guard guard.ConstructorGuard
}

func NewRescheduleShipmentCommand(
	actor services.Actor,
	shipmentID kernel.UUID,
	patch SchedulePatch,
) (RescheduleShipmentCommand, error) {
	if err := errors.Join(validateActor(actor), shipmentID.Validate()); err != nil {
		return RescheduleShipmentCommand{}, err
	}

	return RescheduleShipmentCommand{
		actor:      actor,
		shipmentID: shipmentID,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RescheduleShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleShipmentCommandIsNotConstructed)
}

func (c RescheduleShipmentCommand) Actor() services.Actor {
	return c.actor
}

func (c RescheduleShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c RescheduleShipmentCommand) Patch() SchedulePatch {
	return c.patch
}
