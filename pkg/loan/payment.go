// Package loan provides the composite loan types and the annuity formulas
// that tie them together.
package loan

import (
	"errors"
	"math"

	"github.com/baufitools/hypo-engine/pkg/constants"
	"github.com/baufitools/hypo-engine/pkg/money"
)

// ErrZeroPayment rejects a monthly payment of zero.
var ErrZeroPayment = errors.New("loan: monthly payment must be positive")

// MonthlyPayment is the constant monthly installment of an annuity loan.
type MonthlyPayment struct {
	amount money.Money
}

// NewMonthlyPayment validates a raw euro amount as a monthly installment.
func NewMonthlyPayment(amount float64) (MonthlyPayment, error) {
	m, err := money.New(amount)
	if err != nil {
		return MonthlyPayment{}, err
	}
	if m.IsZero() {
		return MonthlyPayment{}, ErrZeroPayment
	}
	return MonthlyPayment{amount: m}, nil
}

// MonthlyPaymentFromMoney wraps an already-validated Money value.
func MonthlyPaymentFromMoney(m money.Money) (MonthlyPayment, error) {
	if m.IsZero() {
		return MonthlyPayment{}, ErrZeroPayment
	}
	return MonthlyPayment{amount: m}, nil
}

// Money returns the installment amount.
func (mp MonthlyPayment) Money() money.Money {
	return mp.amount
}

// Float64 returns the installment in euros as a float64.
func (mp MonthlyPayment) Float64() float64 {
	return mp.amount.Float64()
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using
// the standard amortization formula.
func CalculateMonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if annualRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicRate := annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualRate float64) float64 {
	return remainingPrincipal * annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// CalculateRemainingMonths solves the annuity formula for the number of
// payments needed to clear the given balance. The analytic inverse avoids
// simulating very small residual balances month by month.
func CalculateRemainingMonths(balance, annualRate, payment float64) int {
	if balance <= 0 {
		return 0
	}
	if annualRate == 0 {
		return int(math.Ceil(balance / payment))
	}
	periodicRate := annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	return int(math.Ceil(-math.Log(1-balance*periodicRate/payment) / math.Log(1+periodicRate)))
}
