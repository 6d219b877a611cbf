package config

import (
	"errors"
	"testing"

	"github.com/baufitools/hypo-engine/pkg/datetime"
	"github.com/baufitools/hypo-engine/pkg/loan"
	"github.com/baufitools/hypo-engine/pkg/money"
)

func TestBuildPositions(t *testing.T) {
	cfg := Configuration{
		Loans: []Loan{
			{
				Name:       "Hauptdarlehen",
				Amount:     300000,
				AnnualRate: 3.5,
				TermMonths: 300,
				StartDate:  "2024-01",
				ExtraPayments: []ExtraPayment{
					{Month: 12, Amount: 10000},
				},
			},
			{
				Name:       "Anbau",
				Amount:     100000,
				AnnualRate: 4.5,
				TermMonths: 120,
				StartDate:  "2025-01",
			},
		},
	}

	eval := datetime.MustParseTime(DateTimeLayout, "2026-01")
	positions, err := cfg.BuildPositions(eval)
	if err != nil {
		t.Fatalf("BuildPositions() error = %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("BuildPositions() = %d positions, expected 2", len(positions))
	}

	first := positions[0]
	if first.Name != "Hauptdarlehen" {
		t.Errorf("position name = %q, expected Hauptdarlehen", first.Name)
	}
	if first.Loan.Amount().Float64() != 300000 {
		t.Errorf("loan amount = %v, expected 300000", first.Loan.Amount().Float64())
	}
	if amount, ok := first.Plan.AmountForMonth(12); !ok || amount.Float64() != 10000 {
		t.Errorf("plan month 12 = %v/%v, expected 10000", amount, ok)
	}
	if first.Valuation != nil {
		t.Errorf("position without a property should have no valuation")
	}
}

func TestBuildPositionsCombinesSameMonthEntries(t *testing.T) {
	cfg := Configuration{
		Loans: []Loan{{
			Name:       "Hauptdarlehen",
			Amount:     300000,
			AnnualRate: 3.5,
			TermMonths: 300,
			ExtraPayments: []ExtraPayment{
				{Month: 12, Amount: 5000},
				{Month: 12, Amount: 3000},
			},
		}},
	}

	eval := datetime.MustParseTime(DateTimeLayout, "2026-01")
	positions, err := cfg.BuildPositions(eval)
	if err != nil {
		t.Fatalf("BuildPositions() error = %v", err)
	}

	amount, ok := positions[0].Plan.AmountForMonth(12)
	if !ok || amount.Float64() != 8000 {
		t.Errorf("combined month 12 = %v/%v, expected 8000", amount, ok)
	}
}

func TestBuildPositionsWithProperty(t *testing.T) {
	cfg := Configuration{
		Loans: []Loan{{
			Name:       "Eigenheim",
			Amount:     400000,
			AnnualRate: 3.5,
			TermMonths: 300,
			Property: &Property{
				CurrentValue:  500000,
				PurchasePrice: 450000,
				ValuationDate: "2025-07",
				Method:        "Vergleichswertverfahren",
				Type:          "Einfamilienhaus",
				Location:      "Gut",
			},
		}},
	}

	eval := datetime.MustParseTime(DateTimeLayout, "2026-01")
	positions, err := cfg.BuildPositions(eval)
	if err != nil {
		t.Fatalf("BuildPositions() error = %v", err)
	}
	if positions[0].Valuation == nil {
		t.Fatalf("expected a valuation on the position")
	}
	if positions[0].Valuation.CurrentValue().Float64() != 500000 {
		t.Errorf("valuation value = %v, expected 500000", positions[0].Valuation.CurrentValue().Float64())
	}
}

func TestBuildPositionsExplicitPayment(t *testing.T) {
	cfg := Configuration{
		Loans: []Loan{{
			Name:           "Hauptdarlehen",
			Amount:         300000,
			AnnualRate:     3.5,
			TermMonths:     300,
			MonthlyPayment: 1501.88,
		}},
	}

	eval := datetime.MustParseTime(DateTimeLayout, "2026-01")
	positions, err := cfg.BuildPositions(eval)
	if err != nil {
		t.Fatalf("BuildPositions() error = %v", err)
	}
	if positions[0].Loan.MonthlyPayment().Float64() != 1501.88 {
		t.Errorf("monthly payment = %v, expected the configured 1501.88", positions[0].Loan.MonthlyPayment().Float64())
	}
}

func TestBuildPositionsSurfacesValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		loan     Loan
		expected error
	}{
		{
			name:     "Loan below minimum",
			loan:     Loan{Name: "Klein", Amount: 500, AnnualRate: 3.5, TermMonths: 120},
			expected: money.ErrBelowMinimumLoan,
		},
		{
			name:     "Mismatched payment",
			loan:     Loan{Name: "Falsch", Amount: 300000, AnnualRate: 3.5, TermMonths: 300, MonthlyPayment: 2000},
			expected: loan.ErrPaymentMismatch,
		},
		{
			name: "Extra payment too small",
			loan: Loan{
				Name: "Mini", Amount: 300000, AnnualRate: 3.5, TermMonths: 300,
				ExtraPayments: []ExtraPayment{{Month: 12, Amount: 0.5}},
			},
			expected: loan.ErrExtraPaymentTooSmall,
		},
	}

	eval := datetime.MustParseTime(DateTimeLayout, "2026-01")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Configuration{Loans: []Loan{tt.loan}}
			_, err := cfg.BuildPositions(eval)
			if !errors.Is(err, tt.expected) {
				t.Errorf("BuildPositions() error = %v, expected %v", err, tt.expected)
			}
		})
	}
}
