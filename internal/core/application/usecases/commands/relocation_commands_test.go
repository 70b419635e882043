package commands_test

import (
	"testing"
	"time"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRelocationCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.relocations.On("Add", ctx, mock.MatchedBy(func(r *relocation.Relocation) bool {
		return r.IsOwnedBy(actor.AccountID()) && r.Status() == relocation.Planning
	})).Return(nil).Once()

	cmd, err := commands.NewCreateRelocationCommand(actor, kernel.NewUUID(), relocation.Plan{
		Origin:      "Berlin",
		Destination: "Lisbon",
		MovingDate:  time.Now().Add(14 * 24 * time.Hour),
	})
	require.NoError(t, err)
	h := commands.NewCreateRelocationCommandHandler(factoryFor(uow))

	require.NoError(t, h.Handle(ctx, cmd))
	uow.assertExpectations(t)
}

func TestCreateRelocationCommandHandler_Handle_MissingOrigin(t *testing.T) {
	uow := newMockUoW()

	cmd, err := commands.NewCreateRelocationCommand(customerActor(), kernel.NewUUID(), relocation.Plan{
		Destination: "Lisbon",
		MovingDate:  time.Now(),
	})
	require.NoError(t, err)
	h := commands.NewCreateRelocationCommandHandler(factoryFor(uow))

	require.ErrorIs(t, h.Handle(t.Context(), cmd), relocation.ErrOriginIsRequired)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestUpdateRelocationCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newRelocation(t, actor.AccountID())

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.relocations.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once()
	uow.relocations.On("Update", ctx, r).Return(nil).Once()

	destination := "Porto"
	status := relocation.Cancelled
	cmd, err := commands.NewUpdateRelocationCommand(actor, r.ID(), commands.RelocationPatch{
		Destination: &destination,
		Status:      &status,
	})
	require.NoError(t, err)
	h := commands.NewUpdateRelocationCommandHandler(factoryFor(uow))

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, "Porto", r.Plan().Destination)
	assert.Equal(t, "Berlin", r.Plan().Origin)
	assert.Equal(t, relocation.Cancelled, r.Status())
	uow.assertExpectations(t)
}

func TestUpdateRelocationCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	r := newRelocation(t, kernel.NewUUID())

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.relocations.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once()

	origin := "Hamburg"
	cmd, _ := commands.NewUpdateRelocationCommand(customerActor(), r.ID(), commands.RelocationPatch{Origin: &origin})
	h := commands.NewUpdateRelocationCommandHandler(factoryFor(uow))

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	assert.Equal(t, "Berlin", r.Plan().Origin)
	uow.assertExpectations(t)
}

func TestNewUpdateRelocationCommand_RejectsUnknownStatus(t *testing.T) {
	status := relocation.Unknown
	_, err := commands.NewUpdateRelocationCommand(customerActor(), kernel.NewUUID(), commands.RelocationPatch{Status: &status})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQuoteRelocationCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newRelocation(t, actor.AccountID())

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.relocations.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once()
	uow.relocations.On("Update", ctx, r).Return(nil).Once()

	cmd, err := commands.NewQuoteRelocationCommand(actor, r.ID())
	require.NoError(t, err)
	h := commands.NewQuoteRelocationCommandHandler(factoryFor(uow))

	quote, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "600.00", quote.String())
	require.NotNil(t, r.EstimatedCost())
	assert.True(t, quote.IsEqual(*r.EstimatedCost()))
	uow.assertExpectations(t)
}
