package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"relocation/internal/core/application/usecases/queries"
	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		expected error
	}{
		{"get me", queries.GetMeQuery{}.Validate, queries.ErrGetMeQueryIsNotConstructed},
		{"list accounts", queries.ListAccountsQuery{}.Validate, queries.ErrListAccountsQueryIsNotConstructed},
		{"list providers", queries.ListProvidersQuery{}.Validate, queries.ErrListProvidersQueryIsNotConstructed},
		{"get booking", queries.GetBookingQuery{}.Validate, queries.ErrGetBookingQueryIsNotConstructed},
		{"track shipment", queries.TrackShipmentQuery{}.Validate, queries.ErrTrackShipmentQueryIsNotConstructed},
		{"list reviews", queries.ListReviewsQuery{}.Validate, queries.ErrListReviewsQueryIsNotConstructed},
		{"get document", queries.GetDocumentQuery{}.Validate, queries.ErrGetDocumentQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.expected)
		})
	}
}

func TestGetQueries_RejectUnconstructedID(t *testing.T) {
	actor := services.AnonymousActor()

	_, err := queries.NewGetProviderQuery(actor, kernel.UUID{})
	require.Error(t, err)

	_, err = queries.NewGetRelocationQuery(actor, kernel.UUID{})
	require.Error(t, err)

	_, err = queries.NewGetPaymentQuery(actor, kernel.UUID{})
	require.Error(t, err)
}

func TestNewTrackShipmentQuery_RequiresCode(t *testing.T) {
	_, err := queries.NewTrackShipmentQuery(services.AnonymousActor(), "   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewTrackShipmentQuery(services.AnonymousActor(), " TRK-1 ")
	require.NoError(t, err)
	assert.Equal(t, "TRK-1", query.Code())
}

func TestTrackShipment_CacheHitSkipsDatabase(t *testing.T) {
	ctx := context.Background()
	cached := queries.TrackingResponse{
		TrackingNumber:  "TRK-CACHED",
		Status:          shipment.InTransit,
		CurrentLocation: "Lyon",
		UpdatedAt:       time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	cache := new(MockCache)
	cache.On("Get", ctx, "shipments:track:TRK-CACHED").Return(payload, true, nil).Once()

	// A nil database would panic if the handler fell through to it.
	handler := queries.NewTrackShipmentQueryHandler(nil, cache, time.Minute)
	actor := services.NewActor(kernel.NewUUID(), account.RoleCustomer, nil)
	query, err := queries.NewTrackShipmentQuery(actor, "TRK-CACHED")
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, cached, resp)
	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTrackShipment_AnonymousIsUnauthenticated(t *testing.T) {
	handler := queries.NewTrackShipmentQueryHandler(nil, new(MockCache), time.Minute)
	query, err := queries.NewTrackShipmentQuery(services.AnonymousActor(), "TRK-1")
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), query)

	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}
