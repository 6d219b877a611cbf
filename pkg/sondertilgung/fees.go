package sondertilgung

import (
	"github.com/shopspring/decimal"

	"github.com/baufitools/hypo-engine/pkg/money"
)

// FeeKind discriminates the fee structure variants.
type FeeKind string

// Fee structure variants.
const (
	FeeNone       FeeKind = "None"
	FeePercentage FeeKind = "Percentage"
	FeeFixed      FeeKind = "Fixed"
	FeeTiered     FeeKind = "Tiered"
)

// FeeStructure is a tagged variant describing how a bank prices extra
// repayments. Only the fields of the active kind are meaningful.
type FeeStructure struct {
	kind       FeeKind
	rate       float64
	fixed      money.Money
	baseRate   float64
	excessRate float64
}

// NoFee charges nothing.
func NoFee() FeeStructure {
	return FeeStructure{kind: FeeNone}
}

// PercentageFee charges the given percentage of the payment amount.
func PercentageFee(rate float64) FeeStructure {
	return FeeStructure{kind: FeePercentage, rate: rate}
}

// FixedFee charges a constant amount regardless of payment size.
func FixedFee(amount money.Money) FeeStructure {
	return FeeStructure{kind: FeeFixed, fixed: amount}
}

// TieredFee charges baseRate percent on the whole payment plus excessRate
// percent on the portion exceeding the bank's yearly percentage cap.
func TieredFee(baseRate, excessRate float64) FeeStructure {
	return FeeStructure{kind: FeeTiered, baseRate: baseRate, excessRate: excessRate}
}

// Kind returns the active variant.
func (f FeeStructure) Kind() FeeKind {
	return f.kind
}

// CalculateFees prices an extra payment under a bank's fee structure. The
// tiered variant applies its penalty rate only to the portion of the
// payment above the bank's percentage cap of the principal.
func CalculateFees(rules Rules, payment money.Money, loanAmount money.LoanAmount) money.Money {
	f := rules.Fees
	switch f.kind {
	case FeePercentage:
		return scale(payment.Decimal(), f.rate)
	case FeeFixed:
		return f.fixed
	case FeeTiered:
		base := scale(payment.Decimal(), f.baseRate)
		yearlyCap := decimal.NewFromFloat(rules.YearlyCap(loanAmount))
		excess := payment.Decimal().Sub(yearlyCap)
		if excess.IsNegative() {
			excess = decimal.Zero
		}
		penalty := scale(excess, f.excessRate)
		total, err := base.Add(penalty)
		if err != nil {
			// Both components are bounded by the payment amount, which is
			// itself a valid Money value.
			panic(err)
		}
		return total
	default:
		return money.Zero()
	}
}

// scale returns amount * rate / 100 as Money, banker's-rounded to cents.
func scale(amount decimal.Decimal, ratePercent float64) money.Money {
	raw := amount.Mul(decimal.NewFromFloat(ratePercent)).Div(decimal.NewFromInt(100)).RoundBank(2)
	m, err := money.NewFromString(raw.String())
	if err != nil {
		panic(err)
	}
	return m
}
