package money

import (
	"errors"
	"testing"
)

func TestNewLoanAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr error
	}{
		{"Typical mortgage", 300000, nil},
		{"Minimum", 1000, nil},
		{"Maximum", 10000000, nil},
		{"Below minimum", 999.99, ErrBelowMinimumLoan},
		{"Above maximum", 10000000.01, ErrAboveMaximumLoan},
		{"Negative surfaces money error", -1000, ErrNegativeAmount},
		{"Too many decimals surfaces money error", 1000.123, ErrTooManyDecimals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoanAmount(tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewLoanAmount(%v) error = %v, expected %v", tt.amount, err, tt.wantErr)
			}
		})
	}
}

func TestLoanAmountFromMoney(t *testing.T) {
	m := MustNew(250000)
	la, err := LoanAmountFromMoney(m)
	if err != nil {
		t.Fatalf("LoanAmountFromMoney() error = %v", err)
	}
	if !la.Money().Equal(m) {
		t.Errorf("Money() = %s, expected %s", la.Money(), m)
	}

	if _, err := LoanAmountFromMoney(MustNew(500)); !errors.Is(err, ErrBelowMinimumLoan) {
		t.Errorf("LoanAmountFromMoney(500) error = %v, expected ErrBelowMinimumLoan", err)
	}
}
