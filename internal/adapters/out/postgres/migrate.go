package postgres

import (
	"context"

	"relocation/internal/adapters/out/postgres/accountrepo"
	"relocation/internal/adapters/out/postgres/bookingrepo"
	"relocation/internal/adapters/out/postgres/documentrepo"
	"relocation/internal/adapters/out/postgres/paymentrepo"
	"relocation/internal/adapters/out/postgres/providerrepo"
	"relocation/internal/adapters/out/postgres/relocationrepo"
	"relocation/internal/adapters/out/postgres/reviewrepo"
	"relocation/internal/adapters/out/postgres/shipmentrepo"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Tables lists the schema in dependency order. TRUNCATE in tests uses it.
var Tables = []string{
	"documents",
	"reviews",
	"payments",
	"shipments",
	"bookings",
	"relocations",
	"provider_profiles",
	"accounts",
}

// Migrate creates or updates the schema from the repository DTOs.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&accountrepo.AccountDTO{},
		&providerrepo.ProfileDTO{},
		&relocationrepo.RelocationDTO{},
		&bookingrepo.BookingDTO{},
		&shipmentrepo.ShipmentDTO{},
		&paymentrepo.PaymentDTO{},
		&reviewrepo.ReviewDTO{},
		&documentrepo.DocumentDTO{},
	)
	if err != nil {
		return errors.Wrap(err, "auto-migrate schema")
	}

	err = db.WithContext(ctx).Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS " + reviewrepo.UniqueAuthorIndex +
			" ON reviews (account_id, provider_id, booking_id) NULLS NOT DISTINCT",
	).Error
	return errors.Wrap(err, "create review uniqueness index")
}
