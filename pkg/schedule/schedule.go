// Package schedule generates month-by-month amortization schedules for
// validated loan configurations.
package schedule

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/baufitools/hypo-engine/pkg/loan"
	"github.com/baufitools/hypo-engine/pkg/mathutil"
)

// ErrScheduleExhausted indicates the schedule reached the term cap with a
// balance still outstanding. The configuration invariant should make this
// unreachable for untampered inputs.
var ErrScheduleExhausted = errors.New("schedule: balance not cleared within loan term")

// PaymentDetail holds the values for one schedule month. Principal includes
// any extra payment applied in that month; ExtraPayment carries the extra
// portion separately for reporting.
type PaymentDetail struct {
	Month            int
	Payment          float64
	Interest         float64
	Principal        float64
	ExtraPayment     float64
	RemainingBalance float64
}

// Generator produces amortization schedules.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new generator instance.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Generate creates the complete amortization schedule for a loan with the
// given extra payment plan. The schedule ends at the first month the balance
// reaches zero, at latest at the term cap.
func (g *Generator) Generate(cfg loan.Configuration, plan loan.Plan) ([]PaymentDetail, error) {
	termMonths := cfg.TermInMonths().Value()
	monthlyPayment := cfg.MonthlyPayment().Float64()
	monthlyRate := cfg.MonthlyRate()

	schedule := make([]PaymentDetail, 0, termMonths)
	balance := cfg.Amount().Float64()

	for month := 1; month <= termMonths; month++ {
		interest := balance * monthlyRate

		principal := monthlyPayment - interest
		if principal > balance {
			principal = balance
		}

		extra := 0.0
		if amount, ok := plan.AmountForMonth(month); ok {
			extra = amount.Float64()
			// Cap the extra payment so the balance is floored at zero.
			if extra > balance-principal {
				extra = balance - principal
				g.logger.Debug("capping extra payment to remaining balance",
					zap.String("op", "schedule.Generate"),
					zap.Int("month", month),
					zap.Float64("capped_to", extra),
				)
			}
		}

		// A payment rounded down to cents accumulates a small shortfall over
		// the full term. The final installment absorbs that residue.
		if month == termMonths {
			principal = balance - extra
		}

		balance = balance - principal - extra
		if mathutil.Round(balance) <= 0 {
			// We will get machine error otherwise so just set to 0.
			balance = 0
		}

		schedule = append(schedule, PaymentDetail{
			Month:            month,
			Payment:          interest + principal + extra,
			Interest:         interest,
			Principal:        principal + extra,
			ExtraPayment:     extra,
			RemainingBalance: balance,
		})

		if balance == 0 {
			g.logger.Debug(fmt.Sprintf("loan cleared in month %d of %d", month, termMonths),
				zap.String("op", "schedule.Generate"),
			)
			return schedule, nil
		}
	}

	if balance > 0 {
		return schedule, ErrScheduleExhausted
	}
	return schedule, nil
}

// TotalInterest sums the interest components of a schedule.
func TotalInterest(schedule []PaymentDetail) float64 {
	total := 0.0
	for _, detail := range schedule {
		total += detail.Interest
	}
	return total
}

// TotalPrincipal sums the principal components of a schedule, extra
// payments included.
func TotalPrincipal(schedule []PaymentDetail) float64 {
	total := 0.0
	for _, detail := range schedule {
		total += detail.Principal
	}
	return total
}

// PayoffMonth returns the 1-based month the schedule reaches zero balance,
// or 0 if the schedule never clears.
func PayoffMonth(schedule []PaymentDetail) int {
	if len(schedule) == 0 {
		return 0
	}
	last := schedule[len(schedule)-1]
	if last.RemainingBalance != 0 {
		return 0
	}
	return last.Month
}
