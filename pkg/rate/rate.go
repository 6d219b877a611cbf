// Package rate provides percentage and interest rate value types.
package rate

import (
	"errors"
	"fmt"

	"github.com/baufitools/hypo-engine/pkg/constants"
	"github.com/baufitools/hypo-engine/pkg/mathutil"
)

// Validation failures for percentages and interest rates.
var (
	ErrInvalidPercentage    = errors.New("rate: percentage is not a finite number")
	ErrNegativePercentage   = errors.New("rate: percentage must not be negative")
	ErrPercentageTooLarge   = errors.New("rate: percentage exceeds 100")
	ErrPercentageValidation = errors.New("rate: percentage validation failed")
	ErrBelowMinimumRate     = errors.New("rate: interest rate below minimum")
	ErrAboveMaximumRate     = errors.New("rate: interest rate above maximum")
)

// Percentage is a value in the closed range [0, 100].
type Percentage struct {
	value float64
}

// NewPercentage validates a raw percentage. Validation order is fixed:
// finiteness, sign, upper bound.
func NewPercentage(value float64) (Percentage, error) {
	if !mathutil.IsFinite(value) {
		return Percentage{}, ErrInvalidPercentage
	}
	if value < 0 {
		return Percentage{}, ErrNegativePercentage
	}
	if value > 100 {
		return Percentage{}, ErrPercentageTooLarge
	}
	return Percentage{value: value}, nil
}

// MustNewPercentage builds a Percentage and panics on validation failure.
// Intended for package-level constant construction only.
func MustNewPercentage(value float64) Percentage {
	p, err := NewPercentage(value)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the percentage as a number in [0, 100].
func (p Percentage) Value() float64 {
	return p.value
}

// AsDecimal returns the percentage as a fraction, e.g. 3.5% -> 0.035.
func (p Percentage) AsDecimal() float64 {
	return p.value / constants.PercentageMultiplier
}

// Add returns the sum of two percentages, failing when the sum exceeds 100.
func (p Percentage) Add(other Percentage) (Percentage, error) {
	return NewPercentage(p.value + other.value)
}

// Subtract returns the difference of two percentages, failing when the
// result would be negative.
func (p Percentage) Subtract(other Percentage) (Percentage, error) {
	return NewPercentage(p.value - other.value)
}

// ApplyTo returns the percentage of the given base value.
func (p Percentage) ApplyTo(base float64) float64 {
	return mathutil.ApplyPercentage(base, p.value)
}

// Equal returns true if both percentages hold the same value.
func (p Percentage) Equal(other Percentage) bool {
	return p.value == other.value
}

// String formats the percentage with a period decimal separator, for example
// "3.50%". Locale-aware output lives in pkg/format.
func (p Percentage) String() string {
	return fmt.Sprintf("%.2f%%", p.value)
}

// InterestRate is an annual mortgage interest rate, a Percentage narrowed to
// [constants.MinInterestRate, constants.MaxInterestRate].
type InterestRate struct {
	value Percentage
}

// NewInterestRate validates a raw annual rate in percent. The Percentage
// validation runs first; its failure is wrapped so callers can distinguish
// it from the rate bounds.
func NewInterestRate(value float64) (InterestRate, error) {
	p, err := NewPercentage(value)
	if err != nil {
		return InterestRate{}, fmt.Errorf("%w: %w", ErrPercentageValidation, err)
	}
	if p.Value() < constants.MinInterestRate {
		return InterestRate{}, ErrBelowMinimumRate
	}
	if p.Value() > constants.MaxInterestRate {
		return InterestRate{}, ErrAboveMaximumRate
	}
	return InterestRate{value: p}, nil
}

// NewInterestRateFromDecimal builds an InterestRate from a fraction,
// e.g. 0.035 -> 3.5%.
func NewInterestRateFromDecimal(fraction float64) (InterestRate, error) {
	return NewInterestRate(fraction * constants.PercentageMultiplier)
}

// MustNewInterestRate builds an InterestRate and panics on validation
// failure. Intended for package-level constant construction only.
func MustNewInterestRate(value float64) InterestRate {
	r, err := NewInterestRate(value)
	if err != nil {
		panic(err)
	}
	return r
}

// TypicalCurrentRate is a representative market rate used as a default in
// examples and strategy output.
var TypicalCurrentRate = MustNewInterestRate(3.5)

// Value returns the annual rate in percent.
func (r InterestRate) Value() float64 {
	return r.value.Value()
}

// AsDecimal returns the annual rate as a fraction.
func (r InterestRate) AsDecimal() float64 {
	return r.value.AsDecimal()
}

// MonthlyRate returns the periodic rate for one month as a fraction.
func (r InterestRate) MonthlyRate() float64 {
	return r.value.AsDecimal() / constants.MonthsPerYear
}

// Percentage returns the underlying percentage value.
func (r InterestRate) Percentage() Percentage {
	return r.value
}

// Equal returns true if both rates hold the same value.
func (r InterestRate) Equal(other InterestRate) bool {
	return r.value.Equal(other.value)
}

// String formats the rate like Percentage.String.
func (r InterestRate) String() string {
	return r.value.String()
}
