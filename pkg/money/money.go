// Package money provides the monetary value types used across the engine.
// Amounts are held at cent precision and are immutable; all arithmetic
// returns new values.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/baufitools/hypo-engine/pkg/constants"
	"github.com/baufitools/hypo-engine/pkg/mathutil"
)

// Validation failures for monetary amounts. These form a closed set; callers
// match with errors.Is.
var (
	ErrInvalidAmount   = errors.New("money: amount is not a finite number")
	ErrNegativeAmount  = errors.New("money: amount must not be negative")
	ErrExceedsMaximum  = errors.New("money: amount exceeds maximum")
	ErrTooManyDecimals = errors.New("money: amount has more than two decimal places")
)

var maxAmount = decimal.NewFromFloat(constants.MaxMoneyAmount)

// Money represents an immutable euro amount at cent precision.
// The field is unexported so values can only be built through validation.
type Money struct {
	amount decimal.Decimal
}

// New validates a raw euro amount and returns it as Money. Validation order
// is fixed: finiteness, sign, maximum, decimal places.
func New(amount float64) (Money, error) {
	if !mathutil.IsFinite(amount) {
		return Money{}, ErrInvalidAmount
	}
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	if amount > constants.MaxMoneyAmount {
		return Money{}, ErrExceedsMaximum
	}
	d := decimal.NewFromFloat(amount)
	if !d.Equal(d.Round(2)) {
		return Money{}, ErrTooManyDecimals
	}
	return Money{amount: d}, nil
}

// NewFromString parses a decimal euro amount such as "1234.56".
func NewFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	if d.GreaterThan(maxAmount) {
		return Money{}, ErrExceedsMaximum
	}
	if !d.Equal(d.Round(2)) {
		return Money{}, ErrTooManyDecimals
	}
	return Money{amount: d}, nil
}

// FromCents builds a Money value from an integral number of cents.
func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	d := decimal.New(cents, -2)
	if d.GreaterThan(maxAmount) {
		return Money{}, ErrExceedsMaximum
	}
	return Money{amount: d}, nil
}

// MustNew builds a Money value and panics on validation failure. Intended for
// package-level constant construction only.
func MustNew(amount float64) Money {
	m, err := New(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a zero euro amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Decimal returns the amount as a decimal.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount in euros as a float64.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// Cents returns the amount as an integral number of cents.
func (m Money) Cents() int64 {
	return m.amount.Mul(decimal.NewFromInt(constants.DecimalPrecision)).IntPart()
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal returns true if both amounts are equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan returns true if m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan returns true if m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Add returns the sum of m and other. Two valid amounts cannot produce a
// negative sum, so only the maximum can be violated.
func (m Money) Add(other Money) (Money, error) {
	sum := m.amount.Add(other.amount)
	if sum.GreaterThan(maxAmount) {
		return Money{}, ErrExceedsMaximum
	}
	return Money{amount: sum}, nil
}

// Subtract returns m minus other, failing when the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: diff}, nil
}

// Multiply returns m scaled by factor, rounded to cents with banker's
// rounding.
func (m Money) Multiply(factor float64) (Money, error) {
	if !mathutil.IsFinite(factor) {
		return Money{}, ErrInvalidAmount
	}
	if factor < 0 {
		return Money{}, ErrNegativeAmount
	}
	product := m.amount.Mul(decimal.NewFromFloat(factor)).RoundBank(2)
	if product.GreaterThan(maxAmount) {
		return Money{}, ErrExceedsMaximum
	}
	return Money{amount: product}, nil
}

// Divide returns m divided by divisor, rounded to cents with banker's
// rounding.
func (m Money) Divide(divisor float64) (Money, error) {
	if !mathutil.IsFinite(divisor) || divisor == 0 {
		return Money{}, ErrInvalidAmount
	}
	if divisor < 0 {
		return Money{}, ErrNegativeAmount
	}
	quotient := m.amount.Div(decimal.NewFromFloat(divisor)).RoundBank(2)
	if quotient.GreaterThan(maxAmount) {
		return Money{}, ErrExceedsMaximum
	}
	return Money{amount: quotient}, nil
}

// String formats the amount with a period decimal separator and EUR suffix,
// for example "1234.56 EUR". Locale-aware output lives in pkg/format.
func (m Money) String() string {
	return fmt.Sprintf("%s EUR", m.amount.StringFixed(2))
}
