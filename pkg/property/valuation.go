// Package property provides property valuations and loan-to-value risk
// classification.
package property

import (
	"errors"
	"time"

	"github.com/baufitools/hypo-engine/pkg/constants"
	"github.com/baufitools/hypo-engine/pkg/datetime"
	"github.com/baufitools/hypo-engine/pkg/mathutil"
	"github.com/baufitools/hypo-engine/pkg/money"
)

// ValuationMethod is the closed set of accepted appraisal methods.
type ValuationMethod string

// Accepted appraisal methods.
const (
	MethodMarketComparison ValuationMethod = "Vergleichswertverfahren"
	MethodIncomeApproach   ValuationMethod = "Ertragswertverfahren"
	MethodCostApproach     ValuationMethod = "Sachwertverfahren"
	MethodExpertAppraisal  ValuationMethod = "Gutachten"
	MethodAutomatedModel   ValuationMethod = "AutomatisierteBewertung"
)

// PropertyType classifies the financed property.
type PropertyType string

// Property types. Multi-family and commercial properties count as
// investment-class for LTV limits.
const (
	TypeSingleFamilyHouse PropertyType = "Einfamilienhaus"
	TypeCondominium       PropertyType = "Eigentumswohnung"
	TypeMultiFamilyHouse  PropertyType = "Mehrfamilienhaus"
	TypeCommercial        PropertyType = "Gewerbeimmobilie"
)

// IsInvestmentClass reports whether the property type is held for yield
// rather than owner occupation.
func (pt PropertyType) IsInvestmentClass() bool {
	return pt == TypeMultiFamilyHouse || pt == TypeCommercial
}

// LocationQuality grades the property's location.
type LocationQuality string

// Location grades.
const (
	LocationPremium LocationQuality = "Premium"
	LocationGood    LocationQuality = "Gut"
	LocationAverage LocationQuality = "Durchschnitt"
	LocationBasic   LocationQuality = "Einfach"
)

// Validation failures for property valuations.
var (
	ErrUnknownValuationMethod = errors.New("property: unknown valuation method")
	ErrUnknownPropertyType    = errors.New("property: unknown property type")
	ErrUnknownLocationQuality = errors.New("property: unknown location quality")
	ErrValuationTooOld        = errors.New("property: valuation older than 24 months")
	ErrExcessiveValueDecrease = errors.New("property: value decreased more than 50% from purchase price")
)

var knownMethods = map[ValuationMethod]bool{
	MethodMarketComparison: true,
	MethodIncomeApproach:   true,
	MethodCostApproach:     true,
	MethodExpertAppraisal:  true,
	MethodAutomatedModel:   true,
}

var knownTypes = map[PropertyType]bool{
	TypeSingleFamilyHouse: true,
	TypeCondominium:       true,
	TypeMultiFamilyHouse:  true,
	TypeCommercial:        true,
}

var knownLocations = map[LocationQuality]bool{
	LocationPremium: true,
	LocationGood:    true,
	LocationAverage: true,
	LocationBasic:   true,
}

// Valuation is a validated property appraisal.
type Valuation struct {
	currentValue  money.Money
	purchasePrice money.Money
	valuationDate time.Time
	method        ValuationMethod
	propertyType  PropertyType
	location      LocationQuality
}

// NewValuation validates an appraisal against the evaluation date: the
// valuation must be at most 24 months old, the value must not have dropped
// more than half from the purchase price, and the enumerations must be
// known.
func NewValuation(currentValue, purchasePrice money.Money, valuationDate time.Time, method ValuationMethod, propertyType PropertyType, location LocationQuality, evaluationDate time.Time) (Valuation, error) {
	if !knownMethods[method] {
		return Valuation{}, ErrUnknownValuationMethod
	}
	if !knownTypes[propertyType] {
		return Valuation{}, ErrUnknownPropertyType
	}
	if !knownLocations[location] {
		return Valuation{}, ErrUnknownLocationQuality
	}
	if datetime.MonthsBetween(valuationDate, evaluationDate) > constants.MaxValuationAgeMonths {
		return Valuation{}, ErrValuationTooOld
	}
	if !purchasePrice.IsZero() {
		decrease := mathutil.CalculatePercentage(purchasePrice.Float64()-currentValue.Float64(), purchasePrice.Float64())
		if decrease > constants.MaxValueDecreasePercent {
			return Valuation{}, ErrExcessiveValueDecrease
		}
	}
	return Valuation{
		currentValue:  currentValue,
		purchasePrice: purchasePrice,
		valuationDate: valuationDate,
		method:        method,
		propertyType:  propertyType,
		location:      location,
	}, nil
}

// CurrentValue returns the appraised market value.
func (v Valuation) CurrentValue() money.Money {
	return v.currentValue
}

// PurchasePrice returns the original purchase price.
func (v Valuation) PurchasePrice() money.Money {
	return v.purchasePrice
}

// ValuationDate returns when the appraisal was performed.
func (v Valuation) ValuationDate() time.Time {
	return v.valuationDate
}

// Method returns the appraisal method.
func (v Valuation) Method() ValuationMethod {
	return v.method
}

// PropertyType returns the property classification.
func (v Valuation) PropertyType() PropertyType {
	return v.propertyType
}

// Location returns the location grade.
func (v Valuation) Location() LocationQuality {
	return v.location
}

// MaxAllowedLTV returns the highest loan-to-value percentage lendable
// against this property. Investment-class properties cap at 70 regardless
// of location; premium locations lift the cap to 90, all others sit at 80.
func (v Valuation) MaxAllowedLTV() float64 {
	if v.propertyType.IsInvestmentClass() {
		return 70.0
	}
	if v.location == LocationPremium {
		return 90.0
	}
	return 80.0
}
