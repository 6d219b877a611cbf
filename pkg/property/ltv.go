package property

import (
	"errors"

	"github.com/baufitools/hypo-engine/pkg/constants"
	"github.com/baufitools/hypo-engine/pkg/mathutil"
	"github.com/baufitools/hypo-engine/pkg/money"
)

// RiskCategory is the qualitative risk band of a loan-to-value ratio.
type RiskCategory string

// Risk bands by current LTV.
const (
	RiskVeryLow  RiskCategory = "VeryLow"  // <= 60
	RiskLow      RiskCategory = "Low"      // <= 70
	RiskMedium   RiskCategory = "Medium"   // <= 80
	RiskHigh     RiskCategory = "High"     // <= 90
	RiskVeryHigh RiskCategory = "VeryHigh" // > 90
)

// ErrLTVExceedsMaximum indicates the loan exceeds the property's maximum
// allowed LTV plus the approval buffer.
var ErrLTVExceedsMaximum = errors.New("property: loan-to-value ratio exceeds allowed maximum")

// LoanToValueRatio relates an outstanding loan to the property securing it.
type LoanToValueRatio struct {
	currentLTV   float64
	originalLTV  float64
	riskCategory RiskCategory
	valuation    Valuation
	loanAmount   money.LoanAmount
}

// ClassifyLTV maps a loan-to-value percentage onto its risk band.
func ClassifyLTV(ltv float64) RiskCategory {
	switch {
	case ltv <= 60:
		return RiskVeryLow
	case ltv <= 70:
		return RiskLow
	case ltv <= 80:
		return RiskMedium
	case ltv <= 90:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// NewLoanToValueRatio derives the LTV figures for a loan against a
// valuation. Creation fails when the current LTV exceeds the property's
// maximum allowed LTV by more than constants.LTVApprovalBuffer.
func NewLoanToValueRatio(loanAmount money.LoanAmount, valuation Valuation) (LoanToValueRatio, error) {
	currentLTV := mathutil.CalculatePercentage(loanAmount.Float64(), valuation.CurrentValue().Float64())
	originalLTV := currentLTV
	if !valuation.PurchasePrice().IsZero() {
		originalLTV = mathutil.CalculatePercentage(loanAmount.Float64(), valuation.PurchasePrice().Float64())
	}

	if currentLTV > valuation.MaxAllowedLTV()+constants.LTVApprovalBuffer {
		return LoanToValueRatio{}, ErrLTVExceedsMaximum
	}

	return LoanToValueRatio{
		currentLTV:   currentLTV,
		originalLTV:  originalLTV,
		riskCategory: ClassifyLTV(currentLTV),
		valuation:    valuation,
		loanAmount:   loanAmount,
	}, nil
}

// CurrentLTV returns the current loan-to-value percentage.
func (l LoanToValueRatio) CurrentLTV() float64 {
	return l.currentLTV
}

// OriginalLTV returns the loan-to-value percentage against the purchase
// price.
func (l LoanToValueRatio) OriginalLTV() float64 {
	return l.originalLTV
}

// RiskCategory returns the qualitative risk band.
func (l LoanToValueRatio) RiskCategory() RiskCategory {
	return l.riskCategory
}

// InterestRatePremium returns the rate surcharge in percentage points a
// lender applies for the risk band.
func (l LoanToValueRatio) InterestRatePremium() float64 {
	switch l.riskCategory {
	case RiskVeryLow:
		return 0.0
	case RiskLow:
		return 0.10
	case RiskMedium:
		return 0.25
	case RiskHigh:
		return 0.50
	default:
		return 1.00
	}
}

// RequiresMortgageInsurance reports whether the current LTV obliges
// mortgage insurance.
func (l LoanToValueRatio) RequiresMortgageInsurance() bool {
	return l.currentLTV > constants.MortgageInsuranceLTVThreshold
}

// IsAcceptableForMortgage reports whether the current LTV sits within the
// property's maximum allowed LTV.
func (l LoanToValueRatio) IsAcceptableForMortgage() bool {
	return l.currentLTV <= l.valuation.MaxAllowedLTV()
}

// IsSafeForRefinancing reports whether the current LTV sits within the
// conservative refinancing bound, which is stricter than the approval
// threshold.
func (l LoanToValueRatio) IsSafeForRefinancing() bool {
	return l.currentLTV <= constants.RefinancingSafeLTVThreshold
}

// AmountToReachTargetLTV returns the principal reduction needed to bring
// the current LTV down to the target percentage. Zero when the loan is
// already at or below the target.
func (l LoanToValueRatio) AmountToReachTargetLTV(targetLTV float64) float64 {
	targetBalance := mathutil.ApplyPercentage(l.valuation.CurrentValue().Float64(), targetLTV)
	reduction := l.loanAmount.Float64() - targetBalance
	if reduction < 0 {
		return 0
	}
	return mathutil.Round(reduction)
}

// MaxAdditionalBorrowing returns the headroom up to the target LTV. Zero
// when the loan already exceeds the target.
func (l LoanToValueRatio) MaxAdditionalBorrowing(targetLTV float64) float64 {
	targetBalance := mathutil.ApplyPercentage(l.valuation.CurrentValue().Float64(), targetLTV)
	headroom := targetBalance - l.loanAmount.Float64()
	if headroom < 0 {
		return 0
	}
	return mathutil.Round(headroom)
}
