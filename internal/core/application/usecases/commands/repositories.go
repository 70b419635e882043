// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management and persistence.
package commands

import (
	"context"

	"relocation/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to accounts and provider profiles
	// within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
		ProviderRepository() ports.ProviderRepository
	}

	// RelocationRepoFactory provides access to relocations and bookings
	// within a transaction.
	RelocationRepoFactory interface {
		RelocationRepository() ports.RelocationRepository
		BookingRepository() ports.BookingRepository
	}

	// FulfilmentRepoFactory provides access to the records hanging off a
	// booking within a transaction.
	FulfilmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
		PaymentRepository() ports.PaymentRepository
	}

	// FeedbackRepoFactory provides access to reviews and documents within a
	// transaction.
	FeedbackRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
		DocumentRepository() ports.DocumentRepository
	}

	// UoW manages transactions across all aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   bookingRepo := uow.BookingRepository()
	//   relocationRepo := uow.RelocationRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		AccountRepoFactory
		RelocationRepoFactory
		FulfilmentRepoFactory
		FeedbackRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
