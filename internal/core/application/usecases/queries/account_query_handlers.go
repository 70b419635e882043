package queries

import (
	"context"
	"time"

	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRow struct {
	ID         uuid.UUID
	Username   string
	Email      string
	Role       string
	FirstName  string
	LastName   string
	Contact    string
	Address    string
	Verified   bool
	JoinedAt   time.Time
	ProviderID *uuid.UUID
}

func (r accountRow) toResponse() (AccountResponse, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return AccountResponse{}, err
	}
	role, err := account.ParseRole(r.Role)
	if err != nil {
		return AccountResponse{}, err
	}
	providerID, err := kernel.UUIDPtrFromBytes(r.ProviderID)
	if err != nil {
		return AccountResponse{}, err
	}

	return AccountResponse{
		ID:       id,
		Username: r.Username,
		Email:    r.Email,
		Role:     role,
		Details: account.Details{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Contact:   r.Contact,
			Address:   r.Address,
		},
		Verified:   r.Verified,
		JoinedAt:   r.JoinedAt,
		ProviderID: providerID,
	}, nil
}

func selectAccounts(db *gorm.DB) *gorm.DB {
	return db.Table("accounts").
		Select(`accounts.id, accounts.username, accounts.email, accounts.role,
			accounts.first_name, accounts.last_name, accounts.contact, accounts.address,
			accounts.verified, accounts.joined_at, provider_profiles.id AS provider_id`).
		Joins("LEFT JOIN provider_profiles ON provider_profiles.account_id = accounts.id")
}

// GetMeQueryHandler resolves the caller's account.
type GetMeQueryHandler struct {
	db *gorm.DB
}

func NewGetMeQueryHandler(db *gorm.DB) GetMeQueryHandler {
	return GetMeQueryHandler{db: db}
}

// Handle returns Unauthenticated for anonymous callers and NotFound when the
// account behind a still-valid token was removed.
func (h GetMeQueryHandler) Handle(ctx context.Context, query GetMeQuery) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}
	if query.Actor().IsAnonymous() {
		return AccountResponse{}, errs.NewUnauthenticatedError("authentication required")
	}

	var rows []accountRow
	err := selectAccounts(h.db.WithContext(ctx)).
		Where("accounts.id = ?", query.Actor().AccountID().Bytes()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return AccountResponse{}, err
	}
	if len(rows) == 0 {
		return AccountResponse{}, errs.NewObjectNotFoundError("account", query.Actor().AccountID().String())
	}

	return rows[0].toResponse()
}

// ListAccountsQueryHandler lists accounts for administrators.
type ListAccountsQueryHandler struct {
	db *gorm.DB
}

func NewListAccountsQueryHandler(db *gorm.DB) ListAccountsQueryHandler {
	return ListAccountsQueryHandler{db: db}
}

// Handle returns every account ordered by username for an administrator and
// an empty list for anyone else.
func (h ListAccountsQueryHandler) Handle(ctx context.Context, query ListAccountsQuery) ([]AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts := make([]AccountResponse, 0)
	if !query.Actor().IsAdmin() {
		return accounts, nil
	}

	var rows []accountRow
	if err := selectAccounts(h.db.WithContext(ctx)).Order("accounts.username").Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		resp, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, resp)
	}
	return accounts, nil
}
