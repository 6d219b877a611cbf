package portfolio

import (
	"math"
	"testing"

	"github.com/baufitools/hypo-engine/pkg/datetime"
	"github.com/baufitools/hypo-engine/pkg/loan"
	"github.com/baufitools/hypo-engine/pkg/money"
	"github.com/baufitools/hypo-engine/pkg/property"
	"github.com/baufitools/hypo-engine/pkg/rate"
	"github.com/baufitools/hypo-engine/pkg/term"
)

func mustPosition(t *testing.T, name string, amount, annualRate float64, termMonths int) Position {
	t.Helper()
	la, err := money.NewLoanAmount(amount)
	if err != nil {
		t.Fatalf("NewLoanAmount() error = %v", err)
	}
	p, err := rate.NewPercentage(annualRate)
	if err != nil {
		t.Fatalf("NewPercentage() error = %v", err)
	}
	mc, err := term.NewMonthCount(float64(termMonths))
	if err != nil {
		t.Fatalf("NewMonthCount() error = %v", err)
	}
	cfg, err := loan.NewConfigurationWithCalculatedPayment(la, p, mc)
	if err != nil {
		t.Fatalf("NewConfigurationWithCalculatedPayment() error = %v", err)
	}
	plan, err := loan.NewPlan(nil)
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}
	return Position{Name: name, Loan: cfg, Plan: plan}
}

func TestAnalyzeAggregates(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	positions := []Position{
		mustPosition(t, "Hauptdarlehen", 300000, 3.5, 300),
		mustPosition(t, "Anbau", 100000, 4.5, 120),
	}

	summary, err := analyzer.Analyze(positions)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if summary.TotalPrincipal != 400000 {
		t.Errorf("TotalPrincipal = %v, expected 400000", summary.TotalPrincipal)
	}
	if len(summary.Loans) != 2 {
		t.Fatalf("Loans = %d entries, expected 2", len(summary.Loans))
	}

	expectedPayment := summary.Loans[0].MonthlyPayment + summary.Loans[1].MonthlyPayment
	if math.Abs(summary.TotalMonthlyPayment-expectedPayment) > 0.01 {
		t.Errorf("TotalMonthlyPayment = %v, expected %v", summary.TotalMonthlyPayment, expectedPayment)
	}

	// (3.5*300000 + 4.5*100000) / 400000 = 3.75
	if math.Abs(summary.WeightedAverageRate-3.75) > 0.0001 {
		t.Errorf("WeightedAverageRate = %v, expected 3.75", summary.WeightedAverageRate)
	}

	for _, analysis := range summary.Loans {
		if analysis.PayoffMonth == 0 {
			t.Errorf("loan %s never cleared", analysis.Name)
		}
		if analysis.TotalInterest <= 0 {
			t.Errorf("loan %s has no interest cost", analysis.Name)
		}
		if analysis.LTV != nil {
			t.Errorf("loan %s has an LTV without a valuation", analysis.Name)
		}
	}
}

func TestAnalyzeWithValuation(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	eval := datetime.MustParseTime(datetime.DateTimeLayout, "2026-01")
	valuation, err := property.NewValuation(
		money.MustNew(500000),
		money.MustNew(450000),
		eval.AddDate(0, -6, 0),
		property.MethodMarketComparison,
		property.TypeSingleFamilyHouse,
		property.LocationGood,
		eval,
	)
	if err != nil {
		t.Fatalf("NewValuation() error = %v", err)
	}

	position := mustPosition(t, "Eigenheim", 400000, 3.5, 300)
	position.Valuation = &valuation

	summary, err := analyzer.Analyze([]Position{position})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	analysis := summary.Loans[0]
	if analysis.LTV == nil {
		t.Fatalf("expected an LTV for a position with a valuation")
	}
	if analysis.LTV.CurrentLTV() != 80.0 {
		t.Errorf("CurrentLTV() = %v, expected 80.0", analysis.LTV.CurrentLTV())
	}
	if analysis.LTV.RiskCategory() != property.RiskMedium {
		t.Errorf("RiskCategory() = %v, expected Medium", analysis.LTV.RiskCategory())
	}
}

func TestAnalyzeEmptyPortfolio(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	summary, err := analyzer.Analyze(nil)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if summary.TotalPrincipal != 0 || summary.WeightedAverageRate != 0 || len(summary.Loans) != 0 {
		t.Errorf("empty portfolio should produce a zero summary: %+v", summary)
	}
}

func TestAnalyzeRejectsOverleveragedPosition(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	eval := datetime.MustParseTime(datetime.DateTimeLayout, "2026-01")
	valuation, err := property.NewValuation(
		money.MustNew(500000),
		money.MustNew(500000),
		eval.AddDate(0, -6, 0),
		property.MethodMarketComparison,
		property.TypeSingleFamilyHouse,
		property.LocationAverage,
		eval,
	)
	if err != nil {
		t.Fatalf("NewValuation() error = %v", err)
	}

	// 460000 against 500000 is 92%, beyond the buffered 90% cap.
	position := mustPosition(t, "Überbeliehen", 460000, 3.5, 300)
	position.Valuation = &valuation

	if _, err := analyzer.Analyze([]Position{position}); err == nil {
		t.Errorf("Analyze() should surface the LTV rejection")
	}
}
