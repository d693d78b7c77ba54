package kernel

import (
	"fmt"

	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when Money was not created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromInt")

// Money is a non-negative amount in the marketplace currency (minor units are
// not implied; budgets are whole currency amounts with optional fraction).
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromInt is a convenience constructor for whole amounts.
func MoneyFromInt(amount int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount))
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Cmp returns -1, 0 or +1 like decimal.Decimal.Cmp.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// GreaterThanOrEqualInt is used by budget tiers in the ranker.
func (m Money) GreaterThanOrEqualInt(threshold int64) bool {
	return m.amount.GreaterThanOrEqual(decimal.NewFromInt(threshold))
}

func (m Money) String() string {
	return m.amount.String()
}
