package commands_test

import (
	"context"
	"io"
	"time"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/document"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/payment"
	"relocation/internal/core/domain/model/provider"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/core/domain/model/review"
	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}
func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	args := m.Called(ctx, username)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

type MockProviderRepository struct{ mock.Mock }

func (m *MockProviderRepository) Add(ctx context.Context, p *provider.Profile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProviderRepository) Update(ctx context.Context, p *provider.Profile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProviderRepository) Get(ctx context.Context, id kernel.UUID) (*provider.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*provider.Profile)
	return p, args.Error(1)
}
func (m *MockProviderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*provider.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*provider.Profile)
	return p, args.Error(1)
}
func (m *MockProviderRepository) GetByAccount(ctx context.Context, accountID kernel.UUID) (*provider.Profile, error) {
	args := m.Called(ctx, accountID)
	p, _ := args.Get(0).(*provider.Profile)
	return p, args.Error(1)
}

type MockRelocationRepository struct{ mock.Mock }

func (m *MockRelocationRepository) Add(ctx context.Context, r *relocation.Relocation) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRelocationRepository) Update(ctx context.Context, r *relocation.Relocation) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRelocationRepository) Get(ctx context.Context, id kernel.UUID) (*relocation.Relocation, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*relocation.Relocation)
	return r, args.Error(1)
}
func (m *MockRelocationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*relocation.Relocation, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*relocation.Relocation)
	return r, args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}
func (m *MockBookingRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentRepository) GetByTrackingNumber(
	ctx context.Context,
	tracking shipment.TrackingNumber,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, tracking)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*review.Review)
	return r, args.Error(1)
}
func (m *MockReviewRepository) Exists(
	ctx context.Context,
	accountID, providerID kernel.UUID,
	bookingID *kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, accountID, providerID, bookingID)
	return args.Bool(0), args.Error(1)
}
func (m *MockReviewRepository) ListRatingsByProvider(ctx context.Context, providerID kernel.UUID) ([]review.Rating, error) {
	args := m.Called(ctx, providerID)
	ratings, _ := args.Get(0).([]review.Rating)
	return ratings, args.Error(1)
}
func (m *MockReviewRepository) ProvidersWithReviews(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Add(ctx context.Context, d *document.Document) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*document.Document)
	return d, args.Error(1)
}
func (m *MockDocumentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW hands out the repositories it was built with; only the
// transaction calls are recorded.
type MockUoW struct {
	mock.Mock

	accounts    *MockAccountRepository
	providers   *MockProviderRepository
	relocations *MockRelocationRepository
	bookings    *MockBookingRepository
	shipments   *MockShipmentRepository
	payments    *MockPaymentRepository
	reviews     *MockReviewRepository
	documents   *MockDocumentRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		accounts:    new(MockAccountRepository),
		providers:   new(MockProviderRepository),
		relocations: new(MockRelocationRepository),
		bookings:    new(MockBookingRepository),
		shipments:   new(MockShipmentRepository),
		payments:    new(MockPaymentRepository),
		reviews:     new(MockReviewRepository),
		documents:   new(MockDocumentRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository       { return m.accounts }
func (m *MockUoW) ProviderRepository() ports.ProviderRepository     { return m.providers }
func (m *MockUoW) RelocationRepository() ports.RelocationRepository { return m.relocations }
func (m *MockUoW) BookingRepository() ports.BookingRepository       { return m.bookings }
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository     { return m.shipments }
func (m *MockUoW) PaymentRepository() ports.PaymentRepository       { return m.payments }
func (m *MockUoW) ReviewRepository() ports.ReviewRepository         { return m.reviews }
func (m *MockUoW) DocumentRepository() ports.DocumentRepository     { return m.documents }

// expectCommitted sets up Begin, Commit and the deferred Rollback.
func (m *MockUoW) expectCommitted(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Commit", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

// expectRolledBack sets up Begin and the deferred Rollback only.
func (m *MockUoW) expectRolledBack(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

func (m *MockUoW) assertExpectations(t mock.TestingT) {
	m.AssertExpectations(t)
	m.accounts.AssertExpectations(t)
	m.providers.AssertExpectations(t)
	m.relocations.AssertExpectations(t)
	m.bookings.AssertExpectations(t)
	m.shipments.AssertExpectations(t)
	m.payments.AssertExpectations(t)
	m.reviews.AssertExpectations(t)
	m.documents.AssertExpectations(t)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func factoryFor(uow *MockUoW) *MockUoWFactory {
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)
	return factory
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(claims ports.Claims) (ports.TokenPair, error) {
	args := m.Called(claims)
	return args.Get(0).(ports.TokenPair), args.Error(1)
}
func (m *MockTokenIssuer) ParseAccess(token string) (ports.Claims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.Claims), args.Error(1)
}
func (m *MockTokenIssuer) ParseRefresh(token string) (ports.Claims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.Claims), args.Error(1)
}

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	value, _ := args.Get(0).([]byte)
	return value, args.Bool(1), args.Error(2)
}
func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}
func (m *MockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) Save(ctx context.Context, key string, r io.Reader) (int64, error) {
	args := m.Called(ctx, key, r)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockFileStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}
func (m *MockFileStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
