package loan

import (
	"errors"
	"fmt"
	"sort"

	"github.com/baufitools/hypo-engine/pkg/constants"
	"github.com/baufitools/hypo-engine/pkg/money"
	"github.com/baufitools/hypo-engine/pkg/term"
)

// Validation failures for extra payments.
var (
	ErrExtraPaymentTooSmall  = errors.New("loan: extra payment below minimum")
	ErrExtraPaymentTooLarge  = errors.New("loan: extra payment above maximum")
	ErrDuplicatePaymentMonth = errors.New("loan: duplicate extra payment month in plan")
)

// ExtraPayment is an out-of-schedule principal payment applied in a specific
// schedule month.
type ExtraPayment struct {
	month  term.PaymentMonth
	amount money.Money
}

// NewExtraPayment validates an extra payment amount against the business
// range [constants.MinExtraPaymentAmount, constants.MaxExtraPaymentAmount].
func NewExtraPayment(month term.PaymentMonth, amount money.Money) (ExtraPayment, error) {
	if amount.Float64() < constants.MinExtraPaymentAmount {
		return ExtraPayment{}, ErrExtraPaymentTooSmall
	}
	if amount.Float64() > constants.MaxExtraPaymentAmount {
		return ExtraPayment{}, ErrExtraPaymentTooLarge
	}
	return ExtraPayment{month: month, amount: amount}, nil
}

// Month returns the 1-based schedule month the payment applies to.
func (ep ExtraPayment) Month() term.PaymentMonth {
	return ep.month
}

// Amount returns the payment amount.
func (ep ExtraPayment) Amount() money.Money {
	return ep.amount
}

// Plan is an ordered set of extra payments with at most one payment per
// schedule month.
type Plan struct {
	payments []ExtraPayment
}

// NewPlan validates and orders a set of extra payments. Two payments in the
// same month are rejected; callers combine them first with CombineByMonth.
func NewPlan(payments []ExtraPayment) (Plan, error) {
	seen := make(map[int]bool, len(payments))
	for _, p := range payments {
		if seen[p.Month().Value()] {
			return Plan{}, fmt.Errorf("%w: month %d", ErrDuplicatePaymentMonth, p.Month().Value())
		}
		seen[p.Month().Value()] = true
	}
	ordered := make([]ExtraPayment, len(payments))
	copy(ordered, payments)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Month().Value() < ordered[j].Month().Value()
	})
	return Plan{payments: ordered}, nil
}

// CombineByMonth sums payments that fall in the same month and returns the
// combined plan. Combined amounts may exceed the single-payment maximum, in
// which case the plan is rejected as a whole.
func CombineByMonth(payments []ExtraPayment) (Plan, error) {
	totals := make(map[int]money.Money)
	for _, p := range payments {
		sum, ok := totals[p.Month().Value()]
		if !ok {
			totals[p.Month().Value()] = p.Amount()
			continue
		}
		combined, err := sum.Add(p.Amount())
		if err != nil {
			return Plan{}, err
		}
		totals[p.Month().Value()] = combined
	}

	combined := make([]ExtraPayment, 0, len(totals))
	for monthIndex, amount := range totals {
		pm, err := term.NewPaymentMonth(float64(monthIndex))
		if err != nil {
			return Plan{}, err
		}
		ep, err := NewExtraPayment(pm, amount)
		if err != nil {
			return Plan{}, err
		}
		combined = append(combined, ep)
	}
	return NewPlan(combined)
}

// Payments returns the payments ordered by month.
func (p Plan) Payments() []ExtraPayment {
	return p.payments
}

// AmountForMonth returns the extra payment for the given schedule month and
// whether one exists.
func (p Plan) AmountForMonth(month int) (money.Money, bool) {
	for _, payment := range p.payments {
		if payment.Month().Value() == month {
			return payment.Amount(), true
		}
		if payment.Month().Value() > month {
			break
		}
	}
	return money.Money{}, false
}

// TotalForLoanYear sums the payments whose month falls in the given 1-based
// loan year (months 1-12 are year 1).
func (p Plan) TotalForLoanYear(year int) float64 {
	total := 0.0
	for _, payment := range p.payments {
		if payment.Month().LoanYear() == year {
			total += payment.Amount().Float64()
		}
	}
	return total
}

// IsEmpty returns true if the plan holds no payments.
func (p Plan) IsEmpty() bool {
	return len(p.payments) == 0
}
