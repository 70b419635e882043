package relocation_test

import (
	"testing"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRelocation(t *testing.T, inventory string) *relocation.Relocation {
	t.Helper()
	r, err := relocation.NewRelocation(kernel.NewUUID(), kernel.NewUUID(), relocation.Plan{
		Origin:      "Berlin",
		Destination: "Lisbon",
		MovingDate:  time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		Inventory:   inventory,
	})
	require.NoError(t, err)
	return r
}

func TestNewRelocation(t *testing.T) {
	r := newRelocation(t, "sofa")

	require.NoError(t, r.Validate())
	assert.Equal(t, relocation.Planning, r.Status())
	assert.Nil(t, r.EstimatedCost())
}

func TestNewRelocation_Validation(t *testing.T) {
	_, err := relocation.NewRelocation(kernel.NewUUID(), kernel.UUID{}, relocation.Plan{Origin: " "})

	require.Error(t, err)
	assert.ErrorIs(t, err, relocation.ErrOriginIsRequired)
	assert.ErrorIs(t, err, relocation.ErrDestinationIsRequired)
	assert.ErrorIs(t, err, relocation.ErrMovingDateIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRelocation_Quote(t *testing.T) {
	tests := []struct {
		inventory string
		want      string
	}{
		{inventory: "sofa", want: "550.00"},
		{inventory: "sofa, bed, 12 boxes", want: "650.00"},
		{inventory: "", want: "550.00"},
		{inventory: "a,b,c,d,e,f,g,h,i,j", want: "1000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.inventory, func(t *testing.T) {
			r := newRelocation(t, tt.inventory)

			cost, err := r.Quote()

			require.NoError(t, err)
			assert.Equal(t, tt.want, cost.String())
			require.NotNil(t, r.EstimatedCost())
			assert.Equal(t, tt.want, r.EstimatedCost().String())
		})
	}
}

func TestRelocation_Quote_NegativeAmountKeepsEstimate(t *testing.T) {
	r := newRelocation(t, "sofa, bed")
	original := relocation.QuotePerItemFee
	relocation.QuotePerItemFee = decimal.NewFromInt(-1000)
	t.Cleanup(func() { relocation.QuotePerItemFee = original })

	_, err := r.Quote()

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Nil(t, r.EstimatedCost())
}

func TestRelocation_MarkBooked(t *testing.T) {
	r := newRelocation(t, "sofa")

	r.MarkBooked()

	assert.Equal(t, relocation.Booked, r.Status())
}

func TestRelocation_ChangeStatus(t *testing.T) {
	r := newRelocation(t, "sofa")

	require.NoError(t, r.ChangeStatus(relocation.InProgress))
	assert.Equal(t, "in_progress", r.Status().String())

	require.ErrorIs(t, r.ChangeStatus(relocation.Unknown), errs.ErrValueIsInvalid)
	assert.Equal(t, relocation.InProgress, r.Status())
}

func TestParseStatus(t *testing.T) {
	s, err := relocation.ParseStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, relocation.Cancelled, s)

	_, err = relocation.ParseStatus("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRelocation_IsOwnedBy(t *testing.T) {
	owner := kernel.NewUUID()
	r, err := relocation.NewRelocation(kernel.NewUUID(), owner, relocation.Plan{
		Origin: "A", Destination: "B", MovingDate: time.Now(),
	})
	require.NoError(t, err)

	assert.True(t, r.IsOwnedBy(owner))
	assert.False(t, r.IsOwnedBy(kernel.NewUUID()))
}
