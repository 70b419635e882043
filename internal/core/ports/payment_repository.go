package ports

import (
	"context"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/payment"
)

type PaymentRepository interface {
	// Add persists a payment. A duplicate transaction id returns a Conflict error.
	Add(ctx context.Context, aggregate *payment.Payment) error
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
}
