package http

import (
	"context"
	"net/http"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/application/usecases/queries"
	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListBookings handles GET /api/v1/bookings.
func (s *Server) ListBookings(ctx echo.Context) error {
	items, err := s.queries.ListBookings.Handle(ctx.Request().Context(), queries.NewListBookingsQuery(actorFrom(ctx)))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, mapAll(items, toBooking))
}

// CreateBooking handles POST /api/v1/bookings - opens a pending booking.
func (s *Server) CreateBooking(ctx echo.Context) error {
	body, err := bind[servers.NewBooking](ctx)
	if err != nil {
		return err
	}
	providerID, err := kernelID(body.ProviderId)
	if err != nil {
		return err
	}
	relocationID, err := kernelID(body.RelocationId)
	if err != nil {
		return err
	}
	amount, err := kernel.MoneyFromString(body.TotalAmount)
	if err != nil {
		return err
	}

	actor := actorFrom(ctx)
	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(actor, bookingID, providerID, relocationID, booking.Terms{
		ServiceType: body.ServiceType,
		BookingDate: body.BookingDate,
		TotalAmount: amount,
		Notes:       deref(body.Notes),
	})
	if err != nil {
		return err
	}

	if err = s.commands.CreateBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondBooking(ctx, http.StatusCreated, actor, bookingID)
}

// GetBooking handles GET /api/v1/bookings/{id}.
func (s *Server) GetBooking(ctx echo.Context, id servers.Id) error {
	bookingID, err := kernelID(id)
	if err != nil {
		return err
	}

	return s.respondBooking(ctx, http.StatusOK, actorFrom(ctx), bookingID)
}

// UpdateBooking handles PATCH /api/v1/bookings/{id}.
func (s *Server) UpdateBooking(ctx echo.Context, id servers.Id) error {
	body, err := bind[servers.BookingPatch](ctx)
	if err != nil {
		return err
	}
	bookingID, err := kernelID(id)
	if err != nil {
		return err
	}

	patch := commands.TermsPatch{
		ServiceType: body.ServiceType,
		BookingDate: body.BookingDate,
		Notes:       body.Notes,
	}
	if body.TotalAmount != nil {
		amount, parseErr := kernel.MoneyFromString(*body.TotalAmount)
		if parseErr != nil {
			return parseErr
		}
		patch.TotalAmount = &amount
	}

	actor := actorFrom(ctx)
	cmd, err := commands.NewUpdateBookingTermsCommand(actor, bookingID, patch)
	if err != nil {
		return err
	}

	if err = s.commands.UpdateBookingTerms.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondBooking(ctx, http.StatusOK, actor, bookingID)
}

// ConfirmBooking handles POST /api/v1/bookings/{id}/confirm.
func (s *Server) ConfirmBooking(ctx echo.Context, id servers.Id) error {
	return s.transitionBooking(ctx, id, func(c context.Context, actor services.Actor, bookingID kernel.UUID) error {
		cmd, err := commands.NewConfirmBookingCommand(actor, bookingID)
		if err != nil {
			return err
		}
		return s.commands.ConfirmBooking.Handle(c, cmd)
	})
}

// CancelBooking handles POST /api/v1/bookings/{id}/cancel.
func (s *Server) CancelBooking(ctx echo.Context, id servers.Id) error {
	return s.transitionBooking(ctx, id, func(c context.Context, actor services.Actor, bookingID kernel.UUID) error {
		cmd, err := commands.NewCancelBookingCommand(actor, bookingID)
		if err != nil {
			return err
		}
		return s.commands.CancelBooking.Handle(c, cmd)
	})
}

// AdvanceBooking handles POST /api/v1/bookings/{id}/advance.
func (s *Server) AdvanceBooking(ctx echo.Context, id servers.Id) error {
	body, err := bind[servers.AdvanceBookingRequest](ctx)
	if err != nil {
		return err
	}
	target, err := booking.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	return s.transitionBooking(ctx, id, func(c context.Context, actor services.Actor, bookingID kernel.UUID) error {
		cmd, err := commands.NewAdvanceBookingCommand(actor, bookingID, target)
		if err != nil {
			return err
		}
		return s.commands.AdvanceBooking.Handle(c, cmd)
	})
}

func (s *Server) transitionBooking(
	ctx echo.Context,
	id servers.Id,
	run func(context.Context, services.Actor, kernel.UUID) error,
) error {
	bookingID, err := kernelID(id)
	if err != nil {
		return err
	}

	actor := actorFrom(ctx)
	if err = run(ctx.Request().Context(), actor, bookingID); err != nil {
		return err
	}

	return s.respondBooking(ctx, http.StatusOK, actor, bookingID)
}

func (s *Server) respondBooking(ctx echo.Context, status int, actor services.Actor, id kernel.UUID) error {
	query, err := queries.NewGetBookingQuery(actor, id)
	if err != nil {
		return err
	}

	res, err := s.queries.GetBooking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(status, toBooking(res))
}
