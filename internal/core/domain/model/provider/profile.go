package provider

import (
	"errors"
	"strings"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCompanyNameIsRequired   = errs.NewValueIsRequiredError("company_name")
	ErrContactPersonIsRequired = errs.NewValueIsRequiredError("contact_person")
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

	maxRating = decimal.NewFromInt(5)
)

// Profile is the service-provider side of a provider account: what the
// company offers and how customers rate it.
//
// rating and totalReviews are derived from the reviews that reference the
// profile. They are never taken from client input and change only through
// ApplyRatingAggregate.
type Profile struct {
	id              kernel.UUID
	accountID       kernel.UUID
	companyName     string
	contactPerson   string
	servicesOffered []string
	pricingInfo     string
	available       bool
	rating          decimal.Decimal
	totalReviews    int
	guard           guard.ConstructorGuard
}

// Info is the client-editable part of a profile.
type Info struct {
	CompanyName     string
	ContactPerson   string
	ServicesOffered []string
	PricingInfo     string
}

// NewProfile creates an available profile with no reviews.
func NewProfile(id kernel.UUID, accountID kernel.UUID, info Info) (*Profile, error) {
	p := &Profile{
		available: true,
		rating:    decimal.Zero,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setAccountID(accountID),
		p.setInfo(info),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProfile rebuilds a profile from storage.
func RestoreProfile(
	id kernel.UUID,
	accountID kernel.UUID,
	info Info,
	available bool,
	rating decimal.Decimal,
	totalReviews int,
) *Profile {
	return &Profile{
		id:              id,
		accountID:       accountID,
		companyName:     info.CompanyName,
		contactPerson:   info.ContactPerson,
		servicesOffered: info.ServicesOffered,
		pricingInfo:     info.PricingInfo,
		available:       available,
		rating:          rating,
		totalReviews:    totalReviews,
		guard:           guard.NewConstructorGuard(),
	}
}

func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

func (p *Profile) ID() kernel.UUID {
	return p.id
}

func (p *Profile) AccountID() kernel.UUID {
	return p.accountID
}

func (p *Profile) Info() Info {
	services := make([]string, len(p.servicesOffered))
	copy(services, p.servicesOffered)
	return Info{
		CompanyName:     p.companyName,
		ContactPerson:   p.contactPerson,
		ServicesOffered: services,
		PricingInfo:     p.pricingInfo,
	}
}

func (p *Profile) IsAvailable() bool {
	return p.available
}

// Rating is the mean review score rounded to two decimals.
func (p *Profile) Rating() decimal.Decimal {
	return p.rating
}

func (p *Profile) TotalReviews() int {
	return p.totalReviews
}

// UpdateInfo replaces the client-editable fields.
func (p *Profile) UpdateInfo(info Info) error {
	return p.setInfo(info)
}

func (p *Profile) SetAvailability(available bool) {
	p.available = available
}

// ApplyRatingAggregate stores a freshly computed aggregate. Only the rating
// aggregator calls it.
func (p *Profile) ApplyRatingAggregate(rating decimal.Decimal, totalReviews int) error {
	if rating.IsNegative() || rating.GreaterThan(maxRating) {
		return errs.NewValueIsOutOfRangeError("rating", rating.String(), "0.00", "5.00")
	}
	if totalReviews < 0 {
		return errs.NewValueIsOutOfRangeError("total_reviews", totalReviews, 0, "unbounded")
	}
	p.rating = rating.Round(2)
	p.totalReviews = totalReviews
	return nil
}

// ParseServices splits the comma separated form used by registration forms.
func ParseServices(raw string) []string {
	services := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			services = append(services, s)
		}
	}
	return services
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("account", err)
	}
	p.accountID = accountID
	return nil
}

// Validate checks the required fields of info.
func (i Info) Validate() error {
	var err error
	if strings.TrimSpace(i.CompanyName) == "" {
		err = errors.Join(err, ErrCompanyNameIsRequired)
	}
	if strings.TrimSpace(i.ContactPerson) == "" {
		err = errors.Join(err, ErrContactPersonIsRequired)
	}
	return err
}

func (p *Profile) setInfo(info Info) error {
	if err := info.Validate(); err != nil {
		return err
	}
	company := strings.TrimSpace(info.CompanyName)
	contact := strings.TrimSpace(info.ContactPerson)

	services := make([]string, 0, len(info.ServicesOffered))
	for _, s := range info.ServicesOffered {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}

	p.companyName = company
	p.contactPerson = contact
	p.servicesOffered = services
	p.pricingInfo = strings.TrimSpace(info.PricingInfo)
	return nil
}
