// Package term provides positive numeric value types and the loan term
// types built on them.
package term

import (
	"errors"
	"fmt"

	"github.com/baufitools/hypo-engine/pkg/constants"
	"github.com/baufitools/hypo-engine/pkg/mathutil"
)

// Validation failures for positive numeric values and terms.
var (
	ErrInvalidValue   = errors.New("term: value is not a finite number")
	ErrNotPositive    = errors.New("term: value must be strictly positive")
	ErrNotInteger     = errors.New("term: value must be a whole number")
	ErrTooManyMonths  = errors.New("term: month count exceeds maximum")
	ErrTooManyYears   = errors.New("term: year count exceeds maximum")
	ErrMonthOutOfTerm = errors.New("term: payment month exceeds maximum term")
)

// PositiveInteger is a strictly positive whole number.
type PositiveInteger struct {
	value int
}

// NewPositiveInteger validates a raw number as a strictly positive integer.
// Validation order is fixed: finiteness, sign, integrality.
func NewPositiveInteger(value float64) (PositiveInteger, error) {
	if !mathutil.IsFinite(value) {
		return PositiveInteger{}, ErrInvalidValue
	}
	if value <= 0 {
		return PositiveInteger{}, ErrNotPositive
	}
	if !mathutil.IsWholeNumber(value) {
		return PositiveInteger{}, ErrNotInteger
	}
	return PositiveInteger{value: int(value)}, nil
}

// Value returns the integer value.
func (p PositiveInteger) Value() int {
	return p.value
}

// PositiveDecimal is a strictly positive finite number.
type PositiveDecimal struct {
	value float64
}

// NewPositiveDecimal validates a raw number as strictly positive.
func NewPositiveDecimal(value float64) (PositiveDecimal, error) {
	if !mathutil.IsFinite(value) {
		return PositiveDecimal{}, ErrInvalidValue
	}
	if value <= 0 {
		return PositiveDecimal{}, ErrNotPositive
	}
	return PositiveDecimal{value: value}, nil
}

// Value returns the decimal value.
func (p PositiveDecimal) Value() float64 {
	return p.value
}

// MonthCount is a loan term length in months, narrowed to
// [1, constants.MaxTermMonths].
type MonthCount struct {
	value PositiveInteger
}

// NewMonthCount validates a raw number of months. The PositiveInteger
// validation runs first; its failure is wrapped before the term bound is
// applied.
func NewMonthCount(months float64) (MonthCount, error) {
	p, err := NewPositiveInteger(months)
	if err != nil {
		return MonthCount{}, fmt.Errorf("month count validation: %w", err)
	}
	if p.Value() > constants.MaxTermMonths {
		return MonthCount{}, ErrTooManyMonths
	}
	return MonthCount{value: p}, nil
}

// NewMonthCountFromYears converts whole or fractional years into a month
// count; the resulting number of months must be whole.
func NewMonthCountFromYears(years float64) (MonthCount, error) {
	return NewMonthCount(years * constants.MonthsPerYear)
}

// MustNewMonthCount builds a MonthCount and panics on validation failure.
// Intended for package-level constant construction only.
func MustNewMonthCount(months float64) MonthCount {
	mc, err := NewMonthCount(months)
	if err != nil {
		panic(err)
	}
	return mc
}

// Value returns the number of months.
func (mc MonthCount) Value() int {
	return mc.value.Value()
}

// Years returns the term expressed in years, possibly fractional.
func (mc MonthCount) Years() float64 {
	return float64(mc.value.Value()) / constants.MonthsPerYear
}

// YearCount is a loan term length in years, narrowed to
// [1, constants.MaxTermYears].
type YearCount struct {
	value PositiveInteger
}

// NewYearCount validates a raw number of years.
func NewYearCount(years float64) (YearCount, error) {
	p, err := NewPositiveInteger(years)
	if err != nil {
		return YearCount{}, fmt.Errorf("year count validation: %w", err)
	}
	if p.Value() > constants.MaxTermYears {
		return YearCount{}, ErrTooManyYears
	}
	return YearCount{value: p}, nil
}

// Value returns the number of years.
func (yc YearCount) Value() int {
	return yc.value.Value()
}

// Months returns the term expressed as a MonthCount.
func (yc YearCount) Months() MonthCount {
	// A valid YearCount is at most 40 years, so the conversion cannot fail.
	mc, err := NewMonthCount(float64(yc.value.Value() * constants.MonthsPerYear))
	if err != nil {
		panic(err)
	}
	return mc
}

// PaymentMonth is a 1-based month index within a payment schedule, narrowed
// to [1, constants.MaxTermMonths].
type PaymentMonth struct {
	value PositiveInteger
}

// NewPaymentMonth validates a raw 1-based month index.
func NewPaymentMonth(month float64) (PaymentMonth, error) {
	p, err := NewPositiveInteger(month)
	if err != nil {
		return PaymentMonth{}, fmt.Errorf("payment month validation: %w", err)
	}
	if p.Value() > constants.MaxTermMonths {
		return PaymentMonth{}, ErrMonthOutOfTerm
	}
	return PaymentMonth{value: p}, nil
}

// MustNewPaymentMonth builds a PaymentMonth and panics on validation
// failure. Intended for package-level constant construction only.
func MustNewPaymentMonth(month float64) PaymentMonth {
	pm, err := NewPaymentMonth(month)
	if err != nil {
		panic(err)
	}
	return pm
}

// Value returns the 1-based month index.
func (pm PaymentMonth) Value() int {
	return pm.value.Value()
}

// LoanYear returns the 1-based loan year this month falls in; months 1-12
// are year 1, months 13-24 year 2, and so on.
func (pm PaymentMonth) LoanYear() int {
	return (pm.value.Value() + constants.MonthsPerYear - 1) / constants.MonthsPerYear
}
