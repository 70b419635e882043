// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read straight from the database into read models and never go
// through aggregates; every handler narrows its rows with the scope the
// access policy grants the caller.
package queries

import (
	"strings"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scopeColumns maps the conditions of a services.Scope onto the columns of
// one read model. An empty column means the condition never matches there.
type scopeColumns struct {
	account  string
	provider string
	public   string
}

// applyScope restricts db to the rows scope allows. A scope that matches
// nothing yields an always-false filter rather than an error, so lists come
// back empty.
func applyScope(db *gorm.DB, scope services.Scope, cols scopeColumns) *gorm.DB {
	if scope.Unrestricted() {
		return db
	}

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 2)

	if scope.IncludesPublic() && cols.public != "" {
		conditions = append(conditions, cols.public)
	}
	if id, ok := scope.AccountID(); ok && cols.account != "" {
		conditions = append(conditions, cols.account+" = ?")
		args = append(args, id.Bytes())
	}
	if id, ok := scope.ProviderID(); ok && cols.provider != "" {
		conditions = append(conditions, cols.provider+" = ?")
		args = append(args, id.Bytes())
	}

	if len(conditions) == 0 {
		return db.Where("1 = 0")
	}
	return db.Where("("+strings.Join(conditions, " OR ")+")", args...)
}

func toUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

// findOne scans the first row of db. No row is a NotFound error for entity.
func findOne[R any](db *gorm.DB, entity string, id kernel.UUID) (R, error) {
	var rows []R
	if err := db.Limit(1).Scan(&rows).Error; err != nil {
		var zero R
		return zero, err
	}
	if len(rows) == 0 {
		var zero R
		return zero, errs.NewObjectNotFoundError(entity, id.String())
	}
	return rows[0], nil
}

func mapRows[R any, T any](rows []R, convert func(R) (T, error)) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		item, err := convert(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
