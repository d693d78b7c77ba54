package guard_test

import (
	"errors"
	"testing"

	"workmarket/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	type bid struct {
		price int
		guard guard.ConstructorGuard
	}
	errBidNotConstructed := errors.New("bid must be created via newBid")

	newBid := func(price int) (bid, error) {
		if price <= 0 {
			return bid{}, errors.New("price must be positive")
		}
		return bid{price: price, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_bid_is_valid", func(t *testing.T) {
		b, err := newBid(100)

		require.NoError(t, err)
		require.NoError(t, b.guard.Validate(errBidNotConstructed))
		assert.Equal(t, 100, b.price)
	})

	t.Run("literal_bid_is_rejected", func(t *testing.T) {
		b := bid{price: 100}

		assert.Equal(t, errBidNotConstructed, b.guard.Validate(errBidNotConstructed))
	})
}
