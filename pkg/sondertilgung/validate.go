package sondertilgung

import (
	"errors"
	"fmt"
	"time"

	"github.com/baufitools/hypo-engine/pkg/datetime"
	"github.com/baufitools/hypo-engine/pkg/loan"
	"github.com/baufitools/hypo-engine/pkg/money"
)

// Validation failures for proposed extra payments.
var (
	ErrBelowMinimumAmount       = errors.New("sondertilgung: payment below bank minimum")
	ErrExceedsAllowedPercentage = errors.New("sondertilgung: yearly total exceeds allowed percentage of principal")
	ErrWithinGracePeriod        = errors.New("sondertilgung: payment falls within the grace period")
)

// FixedRatePeriod is the interval during which the loan's rate is
// contractually locked.
type FixedRatePeriod struct {
	Start time.Time
	Years int
}

// End returns the first day after the fixed-rate period.
func (p FixedRatePeriod) End() time.Time {
	return p.Start.AddDate(p.Years, 0, 0)
}

// YearsRemaining returns the whole years left in the period at the given
// evaluation date. Negative when the period has already ended.
func (p FixedRatePeriod) YearsRemaining(at time.Time) int {
	return datetime.MonthsBetween(at, p.End()) / 12
}

// ValidatePayment decides whether a candidate extra payment is admissible
// under a bank's rules given the payments already planned for the loan.
// The fixed-rate period and evaluation date are optional; the grace period
// check only runs when both are supplied.
func ValidatePayment(rules Rules, payment loan.ExtraPayment, loanAmount money.LoanAmount, existing loan.Plan, fixedRatePeriod *FixedRatePeriod, evaluationDate *time.Time) error {
	if payment.Amount().LessThan(rules.MinimumAmount) {
		return fmt.Errorf("%w: minimum is %s", ErrBelowMinimumAmount, rules.MinimumAmount)
	}

	loanYear := payment.Month().LoanYear()
	yearlyTotal := existing.TotalForLoanYear(loanYear) + payment.Amount().Float64()
	if yearlyTotal > rules.YearlyCap(loanAmount) {
		return fmt.Errorf("%w: %.2f of %.2f in loan year %d",
			ErrExceedsAllowedPercentage, yearlyTotal, rules.YearlyCap(loanAmount), loanYear)
	}

	if fixedRatePeriod != nil && evaluationDate != nil {
		graceEnd := fixedRatePeriod.Start.AddDate(0, rules.GracePeriodMonths, 0)
		if evaluationDate.Before(graceEnd) {
			return fmt.Errorf("%w: until %s", ErrWithinGracePeriod, graceEnd.Format(datetime.DateTimeLayout))
		}
	}

	return nil
}
