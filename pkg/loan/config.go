package loan

import (
	"errors"

	"github.com/baufitools/hypo-engine/pkg/constants"
	"github.com/baufitools/hypo-engine/pkg/mathutil"
	"github.com/baufitools/hypo-engine/pkg/money"
	"github.com/baufitools/hypo-engine/pkg/rate"
	"github.com/baufitools/hypo-engine/pkg/term"
)

// Validation failures for loan configurations.
var (
	// ErrPaymentMismatch indicates the declared monthly payment does not
	// satisfy the annuity relation for the amount, rate, and term.
	ErrPaymentMismatch = errors.New("loan: monthly payment inconsistent with annuity formula")

	// ErrPaymentDoesNotAmortize indicates the monthly payment does not even
	// cover the first month's interest, so the balance would never decrease.
	ErrPaymentDoesNotAmortize = errors.New("loan: monthly payment does not cover monthly interest")
)

// Configuration is a fully validated annuity loan: principal, annual rate,
// term, and the constant monthly payment tying them together. Instances are
// immutable; recalculation produces a new Configuration.
type Configuration struct {
	amount         money.LoanAmount
	annualRate     rate.Percentage
	termInMonths   term.MonthCount
	monthlyPayment MonthlyPayment

	// original points at the configuration this one was derived from, for
	// example through refinancing. Nil for a freshly created loan.
	original *Configuration
}

// NewConfiguration validates that the four fields satisfy the annuity
// relation within constants.PaymentTolerance, or the straight-line relation
// within constants.ZeroRateTolerance when the rate is zero. The annual rate
// is a Percentage rather than an InterestRate so promotional zero-rate loans
// remain representable.
func NewConfiguration(amount money.LoanAmount, annualRate rate.Percentage, termInMonths term.MonthCount, monthlyPayment MonthlyPayment) (Configuration, error) {
	expected := CalculateMonthlyPayment(amount.Float64(), annualRate.Value(), termInMonths.Value())

	tolerance := constants.PaymentTolerance
	if annualRate.Value() == 0 {
		tolerance = constants.ZeroRateTolerance
	}
	if !mathutil.WithinTolerance(monthlyPayment.Float64(), expected, tolerance) {
		return Configuration{}, ErrPaymentMismatch
	}

	firstMonthInterest := CalculateInterestPayment(amount.Float64(), annualRate.Value())
	if monthlyPayment.Float64() <= firstMonthInterest {
		return Configuration{}, ErrPaymentDoesNotAmortize
	}

	return Configuration{
		amount:         amount,
		annualRate:     annualRate,
		termInMonths:   termInMonths,
		monthlyPayment: monthlyPayment,
	}, nil
}

// NewConfigurationFromRate builds a Configuration for a standard
// interest-bearing loan.
func NewConfigurationFromRate(amount money.LoanAmount, annualRate rate.InterestRate, termInMonths term.MonthCount, monthlyPayment MonthlyPayment) (Configuration, error) {
	return NewConfiguration(amount, annualRate.Percentage(), termInMonths, monthlyPayment)
}

// NewConfigurationWithCalculatedPayment derives the monthly payment from the
// annuity formula and returns the resulting configuration.
func NewConfigurationWithCalculatedPayment(amount money.LoanAmount, annualRate rate.Percentage, termInMonths term.MonthCount) (Configuration, error) {
	raw := CalculateMonthlyPayment(amount.Float64(), annualRate.Value(), termInMonths.Value())
	payment, err := NewMonthlyPayment(mathutil.Round(raw))
	if err != nil {
		return Configuration{}, err
	}
	return NewConfiguration(amount, annualRate, termInMonths, payment)
}

// Amount returns the loan principal.
func (c Configuration) Amount() money.LoanAmount {
	return c.amount
}

// AnnualRate returns the annual interest rate as a percentage.
func (c Configuration) AnnualRate() rate.Percentage {
	return c.annualRate
}

// MonthlyRate returns the periodic rate for one month as a fraction.
func (c Configuration) MonthlyRate() float64 {
	return c.annualRate.AsDecimal() / constants.MonthsPerYear
}

// TermInMonths returns the loan term.
func (c Configuration) TermInMonths() term.MonthCount {
	return c.termInMonths
}

// MonthlyPayment returns the constant installment.
func (c Configuration) MonthlyPayment() MonthlyPayment {
	return c.monthlyPayment
}

// Original returns the configuration this one was derived from, or nil.
func (c Configuration) Original() *Configuration {
	return c.original
}

// MonthlySavings returns how much lower this configuration's payment is than
// the original's, or 0 for a fresh loan or when the payment went up.
func (c Configuration) MonthlySavings() float64 {
	if c.original == nil {
		return 0
	}
	savings := c.original.monthlyPayment.Float64() - c.monthlyPayment.Float64()
	if savings < 0 {
		return 0
	}
	return mathutil.Round(savings)
}

// Refinance produces a new configuration for the same principal and term at
// a different rate, with the monthly payment recalculated. The receiver is
// kept as the new configuration's original for comparison.
func (c Configuration) Refinance(newRate rate.InterestRate) (Configuration, error) {
	next, err := NewConfigurationWithCalculatedPayment(c.amount, newRate.Percentage(), c.termInMonths)
	if err != nil {
		return Configuration{}, err
	}
	prior := c
	next.original = &prior
	return next, nil
}
