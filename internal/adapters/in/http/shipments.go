package http

import (
	"net/http"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/application/usecases/queries"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/domain/services"
	"relocation/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	items, err := s.queries.ListShipments.Handle(ctx.Request().Context(), queries.NewListShipmentsQuery(actorFrom(ctx)))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, mapAll(items, toShipment))
}

// CreateShipment handles POST /api/v1/shipments. A tracking number is
// generated when the body carries none.
func (s *Server) CreateShipment(ctx echo.Context) error {
	body, err := bind[servers.NewShipment](ctx)
	if err != nil {
		return err
	}
	bookingID, err := kernelID(body.BookingId)
	if err != nil {
		return err
	}

	actor := actorFrom(ctx)
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(actor, shipmentID, bookingID, deref(body.TrackingNumber), shipment.Schedule{
		EstimatedDelivery: body.EstimatedDelivery,
		Notes:             deref(body.Notes),
	})
	if err != nil {
		return err
	}

	if err = s.commands.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondShipment(ctx, http.StatusCreated, actor, shipmentID)
}

// GetShipment handles GET /api/v1/shipments/{id}.
func (s *Server) GetShipment(ctx echo.Context, id servers.Id) error {
	shipmentID, err := kernelID(id)
	if err != nil {
		return err
	}

	return s.respondShipment(ctx, http.StatusOK, actorFrom(ctx), shipmentID)
}

// UpdateShipment handles PATCH /api/v1/shipments/{id}.
func (s *Server) UpdateShipment(ctx echo.Context, id servers.Id) error {
	body, err := bind[servers.ShipmentPatch](ctx)
	if err != nil {
		return err
	}
	shipmentID, err := kernelID(id)
	if err != nil {
		return err
	}

	actor := actorFrom(ctx)
	cmd, err := commands.NewRescheduleShipmentCommand(actor, shipmentID, commands.SchedulePatch{
		EstimatedDelivery: body.EstimatedDelivery,
		ActualDelivery:    body.ActualDelivery,
		Notes:             body.Notes,
	})
	if err != nil {
		return err
	}

	if err = s.commands.RescheduleShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondShipment(ctx, http.StatusOK, actor, shipmentID)
}

// UpdateShipmentStatus handles POST /api/v1/shipments/{id}/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context, id servers.Id) error {
	body, err := bind[servers.ShipmentStatusUpdate](ctx)
	if err != nil {
		return err
	}
	shipmentID, err := kernelID(id)
	if err != nil {
		return err
	}

	actor := actorFrom(ctx)
	cmd, err := commands.NewUpdateShipmentStatusCommand(actor, shipmentID, string(body.Status), deref(body.CurrentLocation))
	if err != nil {
		return err
	}

	if err = s.commands.UpdateShipmentStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondShipment(ctx, http.StatusOK, actor, shipmentID)
}

// TrackShipment handles GET /api/v1/shipments/track?code=.
func (s *Server) TrackShipment(ctx echo.Context, params servers.TrackShipmentParams) error {
	query, err := queries.NewTrackShipmentQuery(actorFrom(ctx), params.Code)
	if err != nil {
		return err
	}

	res, err := s.queries.TrackShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toTracking(res))
}

func (s *Server) respondShipment(ctx echo.Context, status int, actor services.Actor, id kernel.UUID) error {
	query, err := queries.NewGetShipmentQuery(actor, id)
	if err != nil {
		return err
	}

	res, err := s.queries.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(status, toShipment(res))
}
