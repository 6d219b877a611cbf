// Package format renders domain values as German-locale strings. The output
// is a presentation contract: "1.234,56 €" and "3,50 %" are fixed formats
// consumed verbatim by callers.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/baufitools/hypo-engine/pkg/money"
	"github.com/baufitools/hypo-engine/pkg/rate"
	"github.com/baufitools/hypo-engine/pkg/term"
)

var printer = message.NewPrinter(language.German)

// Money formats a monetary amount with German thousands and decimal
// separators and a trailing euro sign, e.g. "1.234,56 €".
func Money(m money.Money, precision int) string {
	return printer.Sprintf(verb(precision)+" €", m.Float64())
}

// LoanAmount formats a principal like Money.
func LoanAmount(la money.LoanAmount, precision int) string {
	return Money(la.Money(), precision)
}

// Amount formats a raw euro value like Money. Used by report output where
// derived sums are not themselves Money values.
func Amount(value float64, precision int) string {
	return printer.Sprintf(verb(precision)+" €", value)
}

// Percentage formats a percentage with a comma decimal separator and a
// trailing percent sign, e.g. "3,50 %".
func Percentage(p rate.Percentage, precision int) string {
	return printer.Sprintf(verb(precision)+" %%", p.Value())
}

// Rate formats a raw percentage value like Percentage. Used by report output
// where derived averages are not themselves Percentage values.
func Rate(value float64, precision int) string {
	return printer.Sprintf(verb(precision)+" %%", value)
}

// InterestRate formats an annual rate like Percentage.
func InterestRate(r rate.InterestRate, precision int) string {
	return Percentage(r.Percentage(), precision)
}

// MonthCount formats a term as months with the German unit, e.g.
// "300 Monate"; a single month reads "1 Monat".
func MonthCount(mc term.MonthCount) string {
	if mc.Value() == 1 {
		return "1 Monat"
	}
	return fmt.Sprintf("%d Monate", mc.Value())
}

// YearCount formats a term as years with the German unit, e.g. "25 Jahre";
// a single year reads "1 Jahr".
func YearCount(yc term.YearCount) string {
	if yc.Value() == 1 {
		return "1 Jahr"
	}
	return fmt.Sprintf("%d Jahre", yc.Value())
}

func verb(precision int) string {
	if precision < 0 {
		precision = 2
	}
	return fmt.Sprintf("%%.%df", precision)
}
