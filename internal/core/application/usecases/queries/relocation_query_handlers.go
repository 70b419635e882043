package queries

import (
	"context"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var relocationScope = scopeColumns{account: "relocations.account_id"}

type relocationRow struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	Origin        string
	Destination   string
	MovingDate    time.Time
	Inventory     string
	Status        int
	EstimatedCost decimal.NullDecimal
	CreatedAt     time.Time
}

func (r relocationRow) toResponse() (RelocationResponse, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return RelocationResponse{}, err
	}
	accountID, err := toUUID(r.AccountID)
	if err != nil {
		return RelocationResponse{}, err
	}

	var cost *kernel.Money
	if r.EstimatedCost.Valid {
		money, moneyErr := kernel.NewMoney(r.EstimatedCost.Decimal)
		if moneyErr != nil {
			return RelocationResponse{}, moneyErr
		}
		cost = &money
	}

	return RelocationResponse{
		ID:        id,
		AccountID: accountID,
		Plan: relocation.Plan{
			Origin:      r.Origin,
			Destination: r.Destination,
			MovingDate:  r.MovingDate,
			Inventory:   r.Inventory,
		},
		Status:        relocation.Status(r.Status),
		EstimatedCost: cost,
		CreatedAt:     r.CreatedAt,
	}, nil
}

func selectRelocations(db *gorm.DB) *gorm.DB {
	return db.Table("relocations").
		Select(`relocations.id, relocations.account_id, relocations.origin, relocations.destination,
			relocations.moving_date, relocations.inventory, relocations.status,
			relocations.estimated_cost, relocations.created_at`)
}

type ListRelocationsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListRelocationsQueryHandler(db *gorm.DB) ListRelocationsQueryHandler {
	return ListRelocationsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the caller's relocations, soonest move first.
func (h ListRelocationsQueryHandler) Handle(ctx context.Context, query ListRelocationsQuery) ([]RelocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := h.policy.VisibleSet(query.Actor(), services.KindRelocation)

	var rows []relocationRow
	err := applyScope(selectRelocations(h.db.WithContext(ctx)), scope, relocationScope).
		Order("relocations.moving_date, relocations.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return mapRows(rows, relocationRow.toResponse)
}

type GetRelocationQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetRelocationQueryHandler(db *gorm.DB) GetRelocationQueryHandler {
	return GetRelocationQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetRelocationQueryHandler) Handle(ctx context.Context, query GetRelocationQuery) (RelocationResponse, error) {
	if err := query.Validate(); err != nil {
		return RelocationResponse{}, err
	}

	row, err := findOne[relocationRow](
		selectRelocations(h.db.WithContext(ctx)).Where("relocations.id = ?", query.RelocationID().Bytes()),
		"relocation", query.RelocationID(),
	)
	if err != nil {
		return RelocationResponse{}, err
	}

	resp, err := row.toResponse()
	if err != nil {
		return RelocationResponse{}, err
	}

	ownership := services.Ownership{AccountID: resp.AccountID}
	if err = h.policy.AuthorizeRead(query.Actor(), services.KindRelocation, resp.ID, ownership); err != nil {
		return RelocationResponse{}, err
	}
	return resp, nil
}
