package guard_test

import (
	"errors"
	"sync"
	"testing"

	"relocation/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("booking not constructed")

		assert.Equal(t, expected, g.Validate(expected))
	})

	t.Run("zero_value_guard_falls_back_to_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

type quote struct {
	guard  guard.ConstructorGuard
	amount int
}

var errQuoteNotConstructed = errors.New("quote must be created via newQuote")

func newQuote(amount int) quote {
	return quote{guard: guard.NewConstructorGuard(), amount: amount}
}

func (q quote) validate() error {
	return q.guard.Validate(errQuoteNotConstructed)
}

func TestConstructorGuard_EmbeddedInValueType(t *testing.T) {
	require.NoError(t, newQuote(550).validate())
	require.ErrorIs(t, quote{amount: 550}.validate(), errQuoteNotConstructed)

	copied := newQuote(600)
	passed := copied
	require.NoError(t, passed.validate())
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}
