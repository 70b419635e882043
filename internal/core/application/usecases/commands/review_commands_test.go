package commands_test

import (
	"testing"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/provider"
	"relocation/internal/core/domain/model/review"
	"relocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewCommandHandler_Handle_RecomputesRating(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	profile := newProfile(t, kernel.NewUUID())

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.providers.On("GetForUpdate", ctx, profile.ID()).Return(profile, nil).Once(),
		uow.reviews.On("Exists", ctx, actor.AccountID(), profile.ID(), (*kernel.UUID)(nil)).Return(false, nil).Once(),
		uow.reviews.On("Add", ctx, mock.AnythingOfType("*review.Review")).Return(nil).Once(),
		uow.reviews.On("ListRatingsByProvider", ctx, profile.ID()).
			Return([]review.Rating{5, 4, 5, 3}, nil).Once(),
		uow.providers.On("Update", ctx, mock.MatchedBy(func(p *provider.Profile) bool {
			return p.Rating().StringFixed(2) == "4.50" && p.TotalReviews() == 4
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCreateReviewCommand(actor, kernel.NewUUID(), profile.ID(), nil, 3, "fine")
	require.NoError(t, err)

	h := commands.NewCreateReviewCommandHandler(factoryFor(uow))
	require.NoError(t, h.Handle(ctx, cmd))
	uow.assertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	profile := newProfile(t, kernel.NewUUID())

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.providers.On("GetForUpdate", ctx, profile.ID()).Return(profile, nil).Once()
	uow.reviews.On("Exists", ctx, actor.AccountID(), profile.ID(), (*kernel.UUID)(nil)).Return(true, nil).Once()

	cmd, _ := commands.NewCreateReviewCommand(actor, kernel.NewUUID(), profile.ID(), nil, 5, "")
	h := commands.NewCreateReviewCommandHandler(factoryFor(uow))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, 0, profile.TotalReviews())
	uow.assertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_BookingOfAnotherProvider(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	profile := newProfile(t, kernel.NewUUID())
	b := newBooking(t, newRelocation(t, actor.AccountID()), kernel.NewUUID())
	bookingID := b.ID()

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.providers.On("GetForUpdate", ctx, profile.ID()).Return(profile, nil).Once()
	uow.bookings.On("Get", ctx, bookingID).Return(b, nil).Once()

	cmd, _ := commands.NewCreateReviewCommand(actor, kernel.NewUUID(), profile.ID(), &bookingID, 4, "")
	h := commands.NewCreateReviewCommandHandler(factoryFor(uow))

	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrBookingServedByAnotherProvider)
	uow.assertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_BookingOfAnotherCustomer(t *testing.T) {
	ctx := t.Context()
	profile := newProfile(t, kernel.NewUUID())
	b := newBooking(t, newRelocation(t, kernel.NewUUID()), profile.ID())
	bookingID := b.ID()

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.providers.On("GetForUpdate", ctx, profile.ID()).Return(profile, nil).Once()
	uow.bookings.On("Get", ctx, bookingID).Return(b, nil).Once()

	cmd, _ := commands.NewCreateReviewCommand(customerActor(), kernel.NewUUID(), profile.ID(), &bookingID, 4, "")
	h := commands.NewCreateReviewCommandHandler(factoryFor(uow))

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	uow.assertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_ProviderNotFound(t *testing.T) {
	ctx := t.Context()
	providerID := kernel.NewUUID()

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.providers.On("GetForUpdate", ctx, providerID).
		Return(nil, errs.NewObjectNotFoundError("provider", providerID.String())).Once()

	cmd, _ := commands.NewCreateReviewCommand(customerActor(), kernel.NewUUID(), providerID, nil, 4, "")
	h := commands.NewCreateReviewCommandHandler(factoryFor(uow))

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.assertExpectations(t)
}

func TestNewCreateReviewCommand_Validation(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		wantErr error
	}{
		{name: "below range", rating: 0, wantErr: errs.ErrValueIsOutOfRange},
		{name: "above range", rating: 6, wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateReviewCommand(customerActor(), kernel.NewUUID(), kernel.NewUUID(), nil, tt.rating, "")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := commands.NewCreateReviewCommand(customerActor(), kernel.NewUUID(), kernel.UUID{}, nil, 3, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateReviewCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	profile := newProfile(t, kernel.NewUUID())
	r, err := review.NewReview(kernel.NewUUID(), actor.AccountID(), profile.ID(), nil, 5, "great")
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.reviews.On("Get", ctx, r.ID()).Return(r, nil).Once()
	uow.providers.On("GetForUpdate", ctx, profile.ID()).Return(profile, nil).Once()
	uow.reviews.On("Update", ctx, r).Return(nil).Once()
	uow.reviews.On("ListRatingsByProvider", ctx, profile.ID()).Return([]review.Rating{2, 5, 4}, nil).Once()
	uow.providers.On("Update", ctx, profile).Return(nil).Once()

	rating := 2
	cmd, err := commands.NewUpdateReviewCommand(actor, r.ID(), &rating, nil)
	require.NoError(t, err)
	h := commands.NewUpdateReviewCommandHandler(factoryFor(uow))

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, review.Rating(2), r.Rating())
	assert.Equal(t, "great", r.Comment())
	assert.Equal(t, "3.67", profile.Rating().StringFixed(2))
	assert.Equal(t, 3, profile.TotalReviews())
	uow.assertExpectations(t)
}

func TestUpdateReviewCommandHandler_Handle_NotAuthor(t *testing.T) {
	ctx := t.Context()
	profile := newProfile(t, kernel.NewUUID())
	r, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), profile.ID(), nil, 5, "")
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.reviews.On("Get", ctx, r.ID()).Return(r, nil).Once()

	comment := "changed"
	cmd, _ := commands.NewUpdateReviewCommand(customerActor(), r.ID(), nil, &comment)
	h := commands.NewUpdateReviewCommandHandler(factoryFor(uow))

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	assert.Empty(t, r.Comment())
	uow.assertExpectations(t)
}

func TestReconcileProviderRatingsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	first := newProfile(t, kernel.NewUUID())
	second := newProfile(t, kernel.NewUUID())

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.reviews.On("ProvidersWithReviews", ctx).Return([]kernel.UUID{first.ID(), second.ID()}, nil).Once()
	uow.providers.On("GetForUpdate", ctx, first.ID()).Return(first, nil).Once()
	uow.providers.On("GetForUpdate", ctx, second.ID()).Return(second, nil).Once()
	uow.reviews.On("ListRatingsByProvider", ctx, first.ID()).Return([]review.Rating{5, 4, 5}, nil).Once()
	uow.reviews.On("ListRatingsByProvider", ctx, second.ID()).Return([]review.Rating{}, nil).Once()
	uow.providers.On("Update", ctx, first).Return(nil).Once()

	h := commands.NewReconcileProviderRatingsCommandHandler(factoryFor(uow))
	updated, err := h.Handle(ctx, commands.NewReconcileProviderRatingsCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, "4.67", first.Rating().StringFixed(2))
	assert.Equal(t, 0, second.TotalReviews())
	uow.assertExpectations(t)
}

func TestReconcileProviderRatingsCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewReconcileProviderRatingsCommandHandler(new(MockUoWFactory))
	_, err := h.Handle(t.Context(), commands.ReconcileProviderRatingsCommand{})

	require.ErrorIs(t, err, commands.ErrReconcileProviderRatingsCommandIsNotConstructed)
}
