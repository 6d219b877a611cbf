// Package report provides utilities for formatting and displaying portfolio
// analysis results.
package report

import (
	"fmt"

	"github.com/baufitools/hypo-engine/pkg/format"
	"github.com/baufitools/hypo-engine/pkg/portfolio"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(summary portfolio.Summary) {
	fmt.Printf("--- Portfolio ---\n")
	fmt.Printf("Darlehen             | Rate/Monat    | Zins gesamt    | Laufzeit | LTV\n")
	fmt.Printf("________             | __________    | ___________    | ________ | ___\n")
	for _, analysis := range summary.Loans {
		ltv := "-"
		if analysis.LTV != nil {
			ltv = fmt.Sprintf("%.1f%% (%s)", analysis.LTV.CurrentLTV(), analysis.LTV.RiskCategory())
		}
		fmt.Printf("%-20s | %13s | %14s | %8d | %s\n",
			analysis.Name,
			format.Amount(analysis.MonthlyPayment, 2),
			format.Amount(analysis.TotalInterest, 2),
			analysis.PayoffMonth,
			ltv,
		)
	}
	fmt.Printf("\n")
	fmt.Printf("Gesamtdarlehen:      %s\n", format.Amount(summary.TotalPrincipal, 2))
	fmt.Printf("Gesamtrate/Monat:    %s\n", format.Amount(summary.TotalMonthlyPayment, 2))
	fmt.Printf("Gesamtzinsen:        %s\n", format.Amount(summary.TotalInterest, 2))
	fmt.Printf("Durchschnittszins:   %s\n", format.Rate(summary.WeightedAverageRate, 2))
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(summary portfolio.Summary) {
	fmt.Printf(`"name","principal","annual_rate","monthly_payment","total_interest","payoff_month","current_ltv","risk_category"`)
	fmt.Printf("\n")
	for _, analysis := range summary.Loans {
		currentLTV := ""
		riskCategory := ""
		if analysis.LTV != nil {
			currentLTV = fmt.Sprintf("%.2f", analysis.LTV.CurrentLTV())
			riskCategory = string(analysis.LTV.RiskCategory())
		}
		fmt.Printf(`"%s","%.2f","%.2f","%.2f","%.2f","%d","%s","%s"`,
			analysis.Name,
			analysis.Principal,
			analysis.AnnualRate,
			analysis.MonthlyPayment,
			analysis.TotalInterest,
			analysis.PayoffMonth,
			currentLTV,
			riskCategory,
		)
		fmt.Printf("\n")
	}
}
