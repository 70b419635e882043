package http

import (
	"context"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/application/usecases/queries"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/ports"
	"relocation/internal/generated/servers"
)

// CommandHandler is satisfied by every command handler that only reports
// success or failure.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is satisfied by query handlers and by command handlers that
// return a value.
type ResultHandler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// Commands groups the write-side use cases the server dispatches to.
type Commands struct {
	RegisterCustomer      CommandHandler[commands.RegisterCustomerCommand]
	RegisterProvider      CommandHandler[commands.RegisterProviderCommand]
	CreateSession         ResultHandler[commands.CreateSessionCommand, ports.TokenPair]
	RefreshSession        ResultHandler[commands.RefreshSessionCommand, ports.TokenPair]
	UpdateProviderProfile CommandHandler[commands.UpdateProviderProfileCommand]
	CreateRelocation      CommandHandler[commands.CreateRelocationCommand]
	UpdateRelocation      CommandHandler[commands.UpdateRelocationCommand]
	QuoteRelocation       ResultHandler[commands.QuoteRelocationCommand, kernel.Money]
	CreateBooking         CommandHandler[commands.CreateBookingCommand]
	UpdateBookingTerms    CommandHandler[commands.UpdateBookingTermsCommand]
	ConfirmBooking        CommandHandler[commands.ConfirmBookingCommand]
	CancelBooking         CommandHandler[commands.CancelBookingCommand]
	AdvanceBooking        CommandHandler[commands.AdvanceBookingCommand]
	CreateShipment        CommandHandler[commands.CreateShipmentCommand]
	RescheduleShipment    CommandHandler[commands.RescheduleShipmentCommand]
	UpdateShipmentStatus  CommandHandler[commands.UpdateShipmentStatusCommand]
	CreatePayment         CommandHandler[commands.CreatePaymentCommand]
	CreateReview          CommandHandler[commands.CreateReviewCommand]
	UpdateReview          CommandHandler[commands.UpdateReviewCommand]
	UploadDocument        CommandHandler[commands.UploadDocumentCommand]
	DeleteDocument        CommandHandler[commands.DeleteDocumentCommand]
}

// Queries groups the read-side use cases.
type Queries struct {
	GetMe           ResultHandler[queries.GetMeQuery, queries.AccountResponse]
	ListAccounts    ResultHandler[queries.ListAccountsQuery, []queries.AccountResponse]
	ListProviders   ResultHandler[queries.ListProvidersQuery, []queries.ProviderResponse]
	GetProvider     ResultHandler[queries.GetProviderQuery, queries.ProviderResponse]
	ListRelocations ResultHandler[queries.ListRelocationsQuery, []queries.RelocationResponse]
	GetRelocation   ResultHandler[queries.GetRelocationQuery, queries.RelocationResponse]
	ListBookings    ResultHandler[queries.ListBookingsQuery, []queries.BookingResponse]
	GetBooking      ResultHandler[queries.GetBookingQuery, queries.BookingResponse]
	ListShipments   ResultHandler[queries.ListShipmentsQuery, []queries.ShipmentResponse]
	GetShipment     ResultHandler[queries.GetShipmentQuery, queries.ShipmentResponse]
	TrackShipment   ResultHandler[queries.TrackShipmentQuery, queries.TrackingResponse]
	ListPayments    ResultHandler[queries.ListPaymentsQuery, []queries.PaymentResponse]
	GetPayment      ResultHandler[queries.GetPaymentQuery, queries.PaymentResponse]
	ListReviews     ResultHandler[queries.ListReviewsQuery, []queries.ReviewResponse]
	GetReview       ResultHandler[queries.GetReviewQuery, queries.ReviewResponse]
	ListDocuments   ResultHandler[queries.ListDocumentsQuery, []queries.DocumentResponse]
	GetDocument     ResultHandler[queries.GetDocumentQuery, queries.DocumentResponse]
	GetDocumentFile ResultHandler[queries.GetDocumentQuery, queries.DocumentFile]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commands Commands, queries Queries) *Server {
	return &Server{
		commands: commands,
		queries:  queries,
	}
}
