package sondertilgung

import (
	"errors"
	"time"

	"github.com/baufitools/hypo-engine/pkg/mathutil"
	"github.com/baufitools/hypo-engine/pkg/money"
)

// RiskLevel tags the size of a recommended extra repayment.
type RiskLevel string

// Risk tags by percentage of principal.
const (
	RiskNiedrig RiskLevel = "Niedrig" // <= 10%
	RiskMittel  RiskLevel = "Mittel"  // <= 20%
	RiskHoch    RiskLevel = "Hoch"    // > 20%
)

// Timing advises when to make the recommended payment.
type Timing string

// Timing advice values.
const (
	// TimingBeforePeriodEnd recommends paying before the fixed-rate period
	// expires, because five or fewer years remain in it.
	TimingBeforePeriodEnd Timing = "VorZinsbindungsende"

	// TimingImmediately recommends paying now while the locked-in rate still
	// has a long run ahead; waiting for expiry forfeits the rate advantage.
	TimingImmediately Timing = "Sofort"
)

// ErrNoAffordableTier indicates no allowed percentage tier fits within the
// available funds.
var ErrNoAffordableTier = errors.New("sondertilgung: no allowed percentage tier within available funds")

// Strategy is a priced recommendation for one extra repayment.
type Strategy struct {
	Percentage float64
	Amount     money.Money
	Fees       money.Money
	Risk       RiskLevel
	Timing     Timing
}

// ClassifyRisk tags a repayment percentage qualitatively.
func ClassifyRisk(percentage float64) RiskLevel {
	switch {
	case percentage <= 10:
		return RiskNiedrig
	case percentage <= 20:
		return RiskMittel
	default:
		return RiskHoch
	}
}

// RecommendStrategy picks the largest allowed percentage tier whose euro
// value fits within the available funds and prices it under the bank's fee
// structure. Timing derives from the fixed-rate period: with five or fewer
// years remaining the payment should land before the period ends, otherwise
// immediately.
func RecommendStrategy(rules Rules, loanAmount money.LoanAmount, availableFunds money.Money, fixedRatePeriod FixedRatePeriod, evaluationDate time.Time) (Strategy, error) {
	var chosen float64
	found := false
	for _, pct := range rules.AllowedPercentages {
		tierAmount := mathutil.ApplyPercentage(loanAmount.Float64(), pct)
		if tierAmount <= availableFunds.Float64() && pct > chosen {
			chosen = pct
			found = true
		}
	}
	if !found {
		return Strategy{}, ErrNoAffordableTier
	}

	amount, err := money.New(mathutil.Round(mathutil.ApplyPercentage(loanAmount.Float64(), chosen)))
	if err != nil {
		return Strategy{}, err
	}

	timing := TimingImmediately
	if fixedRatePeriod.YearsRemaining(evaluationDate) <= 5 {
		timing = TimingBeforePeriodEnd
	}

	return Strategy{
		Percentage: chosen,
		Amount:     amount,
		Fees:       CalculateFees(rules, amount, loanAmount),
		Risk:       ClassifyRisk(chosen),
		Timing:     timing,
	}, nil
}
