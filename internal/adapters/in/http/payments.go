package http

import (
	"net/http"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/application/usecases/queries"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListPayments handles GET /api/v1/payments.
func (s *Server) ListPayments(ctx echo.Context) error {
	items, err := s.queries.ListPayments.Handle(ctx.Request().Context(), queries.NewListPaymentsQuery(actorFrom(ctx)))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, mapAll(items, toPayment))
}

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	body, err := bind[servers.NewPayment](ctx)
	if err != nil {
		return err
	}
	bookingID, err := kernelID(body.BookingId)
	if err != nil {
		return err
	}
	amount, err := kernel.MoneyFromString(body.Amount)
	if err != nil {
		return err
	}

	actor := actorFrom(ctx)
	paymentID := kernel.NewUUID()
	cmd, err := commands.NewCreatePaymentCommand(actor, paymentID, bookingID, commands.PaymentDetails{
		Amount:        amount,
		Method:        body.Method,
		TransactionID: deref(body.TransactionId),
		Notes:         deref(body.Notes),
	})
	if err != nil {
		return err
	}

	if err = s.commands.CreatePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondPayment(ctx, http.StatusCreated, actor, paymentID)
}

// GetPayment handles GET /api/v1/payments/{id}.
func (s *Server) GetPayment(ctx echo.Context, id servers.Id) error {
	paymentID, err := kernelID(id)
	if err != nil {
		return err
	}

	return s.respondPayment(ctx, http.StatusOK, actorFrom(ctx), paymentID)
}

func (s *Server) respondPayment(ctx echo.Context, status int, actor services.Actor, id kernel.UUID) error {
	query, err := queries.NewGetPaymentQuery(actor, id)
	if err != nil {
		return err
	}

	res, err := s.queries.GetPayment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(status, toPayment(res))
}
