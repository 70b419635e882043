// Package pgerr maps PostgreSQL constraint violations onto the domain error
// types so callers can branch with errors.Is instead of inspecting SQLSTATE
// codes.
package pgerr

import (
	"errors"

	"relocation/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// Translate converts a unique violation into a Conflict on entity and a
// foreign key violation into a NotFound of the referenced row. key names the
// offending value in the returned error. Other errors are returned as is.
//
// Example:
//
//	err := db.Create(&dto).Error
//	return pgerr.Translate(err, "shipment", "tracking number "+dto.TrackingNumber)
func Translate(err error, entity string, key string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case UniqueViolation:
		return errs.NewConflictErrorWithCause(entity, conflictValue(pgErr, key), err)
	case ForeignKeyViolation:
		return errs.NewObjectNotFoundErrorWithCause(referenced(pgErr), key, err)
	default:
		return err
	}
}

func conflictValue(pgErr *pgconn.PgError, key string) string {
	if pgErr.ConstraintName == "" {
		return key
	}
	return key + " (" + pgErr.ConstraintName + ")"
}

func referenced(pgErr *pgconn.PgError) string {
	if pgErr.TableName != "" {
		return "reference from " + pgErr.TableName
	}
	return "reference"
}
