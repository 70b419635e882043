package cmd

import (
	"context"
	"time"

	"relocation/internal/adapters/in/http"
	"relocation/internal/adapters/out/auth"
	"relocation/internal/adapters/out/cache"
	"relocation/internal/adapters/out/events"
	"relocation/internal/adapters/out/filestorage"
	"relocation/internal/adapters/out/postgres"
	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/application/usecases/queries"
	"relocation/internal/core/ports"
	"relocation/internal/jobs"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	logger     zerolog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.Cache
	publisher  ports.EventPublisher
	storage    ports.FileStorage
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
	closers    []func() error
}

// NewCompositionRoot builds the outbound adapters. Redis and Kafka are
// optional: without an address the tracking cache is a no-op and events are
// only logged.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger zerolog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		logger:  logger,
		hasher:  auth.NewBcryptHasher(configs.Auth.BcryptCost),
		issuer: auth.NewJWTIssuer(auth.TokenConfig{
			AccessSecret:  configs.Auth.AccessSecret,
			RefreshSecret: configs.Auth.RefreshSecret,
			AccessTTL:     configs.Auth.AccessTTL,
			RefreshTTL:    configs.Auth.RefreshTTL,
			Issuer:        configs.Auth.Issuer,
		}),
	}

	c.cache = cache.NopCache{}
	if configs.Redis.Address != "" {
		redisCache := cache.NewRedisCache(configs.Redis.Address, configs.Redis.Password, configs.Redis.DB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn().Err(err).Str("address", configs.Redis.Address).
				Msg("redis unreachable, tracking lookups will fall back to the database")
		}
		cancel()
		c.cache = redisCache
		c.closers = append(c.closers, redisCache.Close)
	}

	if len(configs.Kafka.Brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(configs.Kafka.Brokers, configs.Kafka.Topic)
		c.publisher = kafkaPublisher
		c.closers = append(c.closers, kafkaPublisher.Close)
	} else {
		c.publisher = events.NewLogPublisher(logger)
	}

	storage, err := filestorage.NewLocalStorage(configs.Storage.Root)
	if err != nil {
		return nil, err
	}
	c.storage = storage

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, c.publisher, logger)
	return c, nil
}

// Close releases the Redis client and flushes the Kafka writer.
func (c *CompositionRoot) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			c.logger.Error().Err(err).Msg("failed to close adapter")
		}
	}
}

func (c *CompositionRoot) TokenIssuer() ports.TokenIssuer {
	return c.issuer
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCommands() http.Commands {
	f := c.unitOfWorkFactory()

	registerCustomer := commands.NewRegisterCustomerCommandHandler(f, c.hasher)
	registerProvider := commands.NewRegisterProviderCommandHandler(f, c.hasher)
	createSession := commands.NewCreateSessionCommandHandler(f, c.hasher, c.issuer)
	refreshSession := commands.NewRefreshSessionCommandHandler(f, c.issuer)
	updateProvider := commands.NewUpdateProviderProfileCommandHandler(f)
	createRelocation := commands.NewCreateRelocationCommandHandler(f)
	updateRelocation := commands.NewUpdateRelocationCommandHandler(f)
	quoteRelocation := commands.NewQuoteRelocationCommandHandler(f)
	createBooking := commands.NewCreateBookingCommandHandler(f)
	updateBooking := commands.NewUpdateBookingTermsCommandHandler(f)
	confirmBooking := commands.NewConfirmBookingCommandHandler(f)
	cancelBooking := commands.NewCancelBookingCommandHandler(f)
	advanceBooking := commands.NewAdvanceBookingCommandHandler(f)
	createShipment := commands.NewCreateShipmentCommandHandler(f)
	rescheduleShipment := commands.NewRescheduleShipmentCommandHandler(f, c.cache)
	updateShipmentStatus := commands.NewUpdateShipmentStatusCommandHandler(f, c.cache)
	createPayment := commands.NewCreatePaymentCommandHandler(f)
	createReview := commands.NewCreateReviewCommandHandler(f)
	updateReview := commands.NewUpdateReviewCommandHandler(f)
	uploadDocument := commands.NewUploadDocumentCommandHandler(f, c.storage)
	deleteDocument := commands.NewDeleteDocumentCommandHandler(f, c.storage)

	return http.Commands{
		RegisterCustomer:      &registerCustomer,
		RegisterProvider:      &registerProvider,
		CreateSession:         &createSession,
		RefreshSession:        &refreshSession,
		UpdateProviderProfile: &updateProvider,
		CreateRelocation:      &createRelocation,
		UpdateRelocation:      &updateRelocation,
		QuoteRelocation:       &quoteRelocation,
		CreateBooking:         &createBooking,
		UpdateBookingTerms:    &updateBooking,
		ConfirmBooking:        &confirmBooking,
		CancelBooking:         &cancelBooking,
		AdvanceBooking:        &advanceBooking,
		CreateShipment:        &createShipment,
		RescheduleShipment:    &rescheduleShipment,
		UpdateShipmentStatus:  &updateShipmentStatus,
		CreatePayment:         &createPayment,
		CreateReview:          &createReview,
		UpdateReview:          &updateReview,
		UploadDocument:        &uploadDocument,
		DeleteDocument:        &deleteDocument,
	}
}

func (c *CompositionRoot) CreateQueries() http.Queries {
	db := c.gormDB
	return http.Queries{
		GetMe:           queries.NewGetMeQueryHandler(db),
		ListAccounts:    queries.NewListAccountsQueryHandler(db),
		ListProviders:   queries.NewListProvidersQueryHandler(db),
		GetProvider:     queries.NewGetProviderQueryHandler(db),
		ListRelocations: queries.NewListRelocationsQueryHandler(db),
		GetRelocation:   queries.NewGetRelocationQueryHandler(db),
		ListBookings:    queries.NewListBookingsQueryHandler(db),
		GetBooking:      queries.NewGetBookingQueryHandler(db),
		ListShipments:   queries.NewListShipmentsQueryHandler(db),
		GetShipment:     queries.NewGetShipmentQueryHandler(db),
		TrackShipment:   queries.NewTrackShipmentQueryHandler(db, c.cache, c.configs.Tracking.CacheTTL),
		ListPayments:    queries.NewListPaymentsQueryHandler(db),
		GetPayment:      queries.NewGetPaymentQueryHandler(db),
		ListReviews:     queries.NewListReviewsQueryHandler(db),
		GetReview:       queries.NewGetReviewQueryHandler(db),
		ListDocuments:   queries.NewListDocumentsQueryHandler(db),
		GetDocument:     queries.NewGetDocumentQueryHandler(db),
		GetDocumentFile: queries.NewGetDocumentFileQueryHandler(db, c.storage),
	}
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(c.CreateCommands(), c.CreateQueries())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reconcile := commands.NewReconcileProviderRatingsCommandHandler(c.unitOfWorkFactory())
	return jobs.NewJobManager(jobs.Config{
		RatingReconcileSchedule: c.configs.Jobs.RatingReconcileSchedule,
		RatingReconcileTimeout:  c.configs.Jobs.RatingReconcileTimeout,
	}, &reconcile, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
