package kernel_test

import (
	"testing"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		zero, err := kernel.NewMoney(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, zero.IsZero())

		m, err := kernel.NewMoney(decimal.RequireFromString("250000.50"))
		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "250000.5", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromInt(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money

		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, m.Validate())
	})
}

func TestMoney_Compare(t *testing.T) {
	small, _ := kernel.MoneyFromInt(199999)
	tier, _ := kernel.MoneyFromInt(200000)

	assert.Equal(t, -1, small.Cmp(tier))
	assert.Equal(t, 0, tier.Cmp(tier))
	assert.False(t, small.GreaterThanOrEqualInt(200000))
	assert.True(t, tier.GreaterThanOrEqualInt(200000))
}
