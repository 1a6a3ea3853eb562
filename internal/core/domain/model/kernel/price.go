package kernel

import (
	"errors"
	"fmt"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when validating a zero-value Price.
var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice or PriceFromString")

// Price is an exact, non-negative monetary amount.
// Prices are compared by value, so 19000 and 19000.00 are equal.
type Price struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from a decimal amount. Negative amounts are rejected.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is less than 0", amount.String()),
		)
	}
	return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewPriceFromInt creates a Price from a whole amount.
func NewPriceFromInt(amount int64) (Price, error) {
	return NewPrice(decimal.NewFromInt(amount))
}

// MustNewPriceFromInt is NewPriceFromInt for constants and test fixtures.
func MustNewPriceFromInt(amount int64) Price {
	p, err := NewPriceFromInt(amount)
	if err != nil {
		panic(err)
	}
	return p
}

// PriceFromString parses a decimal string such as "19000" or "12.50".
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// Amount returns the exact decimal value.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// IsEqual compares two prices by numeric value.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// MultiplyQuantity returns price * quantity as a plain decimal.
// The quantity may be negative (eat-in orders allow it), so the result is not a Price.
func (p Price) MultiplyQuantity(quantity int64) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(quantity))
}

func (p Price) String() string {
	return p.amount.String()
}

// Validate ensures the price was built through a constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
