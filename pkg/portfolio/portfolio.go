// Package portfolio aggregates metrics across a set of mortgage positions.
package portfolio

import (
	"go.uber.org/zap"

	"github.com/baufitools/hypo-engine/pkg/loan"
	"github.com/baufitools/hypo-engine/pkg/mathutil"
	"github.com/baufitools/hypo-engine/pkg/property"
	"github.com/baufitools/hypo-engine/pkg/schedule"
)

// Position is one mortgage in a portfolio: the validated configuration plus
// its extra payment plan and, when available, the property securing it.
type Position struct {
	Name      string
	Loan      loan.Configuration
	Plan      loan.Plan
	Valuation *property.Valuation
}

// LoanAnalysis is the per-position result row.
type LoanAnalysis struct {
	Name           string
	Principal      float64
	AnnualRate     float64
	MonthlyPayment float64
	TotalInterest  float64
	PayoffMonth    int
	LTV            *property.LoanToValueRatio
}

// Summary aggregates a whole portfolio.
type Summary struct {
	TotalPrincipal      float64
	TotalMonthlyPayment float64
	TotalInterest       float64
	WeightedAverageRate float64
	Loans               []LoanAnalysis
}

// Analyzer runs full-schedule analysis across portfolio positions.
type Analyzer struct {
	logger    *zap.Logger
	generator *schedule.Generator
}

// NewAnalyzer creates a new analyzer instance.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger, generator: schedule.NewGenerator(logger)}
}

// Analyze materializes the full schedule for every position and sums the
// portfolio metrics. The weighted average rate weights each loan's annual
// rate by its principal.
func (a *Analyzer) Analyze(positions []Position) (Summary, error) {
	var summary Summary
	weightedRate := 0.0

	for _, position := range positions {
		sched, err := a.generator.Generate(position.Loan, position.Plan)
		if err != nil {
			return Summary{}, err
		}

		principal := position.Loan.Amount().Float64()
		analysis := LoanAnalysis{
			Name:           position.Name,
			Principal:      principal,
			AnnualRate:     position.Loan.AnnualRate().Value(),
			MonthlyPayment: position.Loan.MonthlyPayment().Float64(),
			TotalInterest:  mathutil.Round(schedule.TotalInterest(sched)),
			PayoffMonth:    schedule.PayoffMonth(sched),
		}

		if position.Valuation != nil {
			ltv, ltvErr := property.NewLoanToValueRatio(position.Loan.Amount(), *position.Valuation)
			if ltvErr != nil {
				return Summary{}, ltvErr
			}
			analysis.LTV = &ltv
		}

		summary.TotalPrincipal += principal
		summary.TotalMonthlyPayment += analysis.MonthlyPayment
		summary.TotalInterest += analysis.TotalInterest
		weightedRate += analysis.AnnualRate * principal
		summary.Loans = append(summary.Loans, analysis)

		a.logger.Debug("analyzed portfolio position",
			zap.String("op", "portfolio.Analyze"),
			zap.String("name", position.Name),
			zap.Int("payoff_month", analysis.PayoffMonth),
		)
	}

	if summary.TotalPrincipal > 0 {
		summary.WeightedAverageRate = weightedRate / summary.TotalPrincipal
	}
	summary.TotalPrincipal = mathutil.Round(summary.TotalPrincipal)
	summary.TotalMonthlyPayment = mathutil.Round(summary.TotalMonthlyPayment)
	summary.TotalInterest = mathutil.Round(summary.TotalInterest)

	return summary, nil
}
