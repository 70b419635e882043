package queries

import (
	"context"

	"relocation/internal/core/domain/model/provider"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var providerScope = scopeColumns{
	provider: "provider_profiles.id",
	public:   "provider_profiles.available = TRUE",
}

type providerRow struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	CompanyName     string
	ContactPerson   string
	ServicesOffered pq.StringArray
	PricingInfo     string
	Available       bool
	Rating          decimal.Decimal
	TotalReviews    int
}

func (r providerRow) ownership() (services.Ownership, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return services.Ownership{}, err
	}
	accountID, err := toUUID(r.AccountID)
	if err != nil {
		return services.Ownership{}, err
	}
	return services.Ownership{AccountID: accountID, ProviderID: &id, Public: r.Available}, nil
}

func (r providerRow) toResponse() (ProviderResponse, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return ProviderResponse{}, err
	}
	accountID, err := toUUID(r.AccountID)
	if err != nil {
		return ProviderResponse{}, err
	}

	servicesOffered := make([]string, len(r.ServicesOffered))
	copy(servicesOffered, r.ServicesOffered)

	return ProviderResponse{
		ID:        id,
		AccountID: accountID,
		Info: provider.Info{
			CompanyName:     r.CompanyName,
			ContactPerson:   r.ContactPerson,
			ServicesOffered: servicesOffered,
			PricingInfo:     r.PricingInfo,
		},
		Available:    r.Available,
		Rating:       r.Rating,
		TotalReviews: r.TotalReviews,
	}, nil
}

func selectProviders(db *gorm.DB) *gorm.DB {
	return db.Table("provider_profiles").
		Select(`provider_profiles.id, provider_profiles.account_id, provider_profiles.company_name,
			provider_profiles.contact_person, provider_profiles.services_offered,
			provider_profiles.pricing_info, provider_profiles.available,
			provider_profiles.rating, provider_profiles.total_reviews`)
}

type ListProvidersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListProvidersQueryHandler(db *gorm.DB) ListProvidersQueryHandler {
	return ListProvidersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the visible profiles, best rated first.
func (h ListProvidersQueryHandler) Handle(ctx context.Context, query ListProvidersQuery) ([]ProviderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := h.policy.VisibleSet(query.Actor(), services.KindProvider)

	var rows []providerRow
	err := applyScope(selectProviders(h.db.WithContext(ctx)), scope, providerScope).
		Order("provider_profiles.rating DESC, provider_profiles.company_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]ProviderResponse, 0, len(rows))
	for _, row := range rows {
		resp, respErr := row.toResponse()
		if respErr != nil {
			return nil, respErr
		}
		profiles = append(profiles, resp)
	}
	return profiles, nil
}

type GetProviderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetProviderQueryHandler(db *gorm.DB) GetProviderQueryHandler {
	return GetProviderQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns NotFound for an unknown id and Forbidden for an unavailable
// profile the caller does not own.
func (h GetProviderQueryHandler) Handle(ctx context.Context, query GetProviderQuery) (ProviderResponse, error) {
	if err := query.Validate(); err != nil {
		return ProviderResponse{}, err
	}

	var rows []providerRow
	err := selectProviders(h.db.WithContext(ctx)).
		Where("provider_profiles.id = ?", query.ProviderID().Bytes()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return ProviderResponse{}, err
	}
	if len(rows) == 0 {
		return ProviderResponse{}, errs.NewObjectNotFoundError("provider", query.ProviderID().String())
	}

	ownership, err := rows[0].ownership()
	if err != nil {
		return ProviderResponse{}, err
	}
	if err = h.policy.AuthorizeRead(query.Actor(), services.KindProvider, query.ProviderID(), ownership); err != nil {
		return ProviderResponse{}, err
	}

	return rows[0].toResponse()
}
