package money

import (
	"errors"
	"fmt"
)

// Business bounds for mortgage principals in euros.
const (
	// MinLoanAmount is the smallest principal the engine accepts.
	MinLoanAmount = 1000.00

	// MaxLoanAmount is the largest principal the engine accepts.
	MaxLoanAmount = 10000000.00
)

// Validation failures for loan amounts.
var (
	ErrBelowMinimumLoan = errors.New("money: loan amount below minimum")
	ErrAboveMaximumLoan = errors.New("money: loan amount above maximum")
)

// LoanAmount is a mortgage principal, a Money value narrowed to the business
// range [MinLoanAmount, MaxLoanAmount].
type LoanAmount struct {
	value Money
}

// NewLoanAmount validates a raw euro amount as a mortgage principal. The
// Money validation runs first so its error kinds surface before the loan
// bounds are applied.
func NewLoanAmount(amount float64) (LoanAmount, error) {
	m, err := New(amount)
	if err != nil {
		return LoanAmount{}, fmt.Errorf("loan amount validation: %w", err)
	}
	return loanAmountFromMoney(m)
}

// LoanAmountFromMoney narrows an already-validated Money value to a
// LoanAmount.
func LoanAmountFromMoney(m Money) (LoanAmount, error) {
	return loanAmountFromMoney(m)
}

func loanAmountFromMoney(m Money) (LoanAmount, error) {
	if m.Float64() < MinLoanAmount {
		return LoanAmount{}, ErrBelowMinimumLoan
	}
	if m.Float64() > MaxLoanAmount {
		return LoanAmount{}, ErrAboveMaximumLoan
	}
	return LoanAmount{value: m}, nil
}

// MustNewLoanAmount builds a LoanAmount and panics on validation failure.
// Intended for package-level constant construction only.
func MustNewLoanAmount(amount float64) LoanAmount {
	la, err := NewLoanAmount(amount)
	if err != nil {
		panic(err)
	}
	return la
}

// Money returns the underlying monetary value.
func (la LoanAmount) Money() Money {
	return la.value
}

// Float64 returns the principal in euros as a float64.
func (la LoanAmount) Float64() float64 {
	return la.value.Float64()
}

// String formats the principal like Money.String.
func (la LoanAmount) String() string {
	return la.value.String()
}
