// Package constants provides shared constants for the hypo-engine application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Value type bounds
const (
	// MaxMoneyAmount is the upper bound for any monetary amount in euros
	MaxMoneyAmount = 999999999.00

	// MinInterestRate is the lowest accepted annual interest rate in percent
	MinInterestRate = 0.1

	// MaxInterestRate is the highest accepted annual interest rate in percent
	MaxInterestRate = 25.0

	// MaxTermMonths is the longest accepted loan term in months (40 years)
	MaxTermMonths = 480

	// MaxTermYears is the longest accepted loan term in years
	MaxTermYears = 40

	// MinExtraPaymentAmount is the smallest accepted extra payment in euros
	MinExtraPaymentAmount = 1.00

	// MaxExtraPaymentAmount is the largest accepted extra payment in euros
	MaxExtraPaymentAmount = 1000000.00
)

// Consistency-check tolerances. These are pragmatic policy values rather than
// derived quantities, so they are variables to allow overriding in tests.
var (
	// PaymentTolerance is the allowed deviation in euros between a declared
	// monthly payment and the annuity formula result.
	PaymentTolerance = 1.0

	// ZeroRateTolerance is the allowed deviation in euros for the straight-line
	// payment check on zero-interest loans.
	ZeroRateTolerance = 0.01

	// LTVApprovalBuffer is the number of percentage points a loan-to-value
	// ratio may exceed the property's maximum before creation fails.
	LTVApprovalBuffer = 10.0
)

// Valuation constraints
const (
	// MaxValuationAgeMonths is the oldest a property valuation may be
	MaxValuationAgeMonths = 24

	// MaxValueDecreasePercent is the largest accepted drop from purchase price
	MaxValueDecreasePercent = 50.0

	// MortgageInsuranceLTVThreshold is the LTV above which insurance is required
	MortgageInsuranceLTVThreshold = 80.0

	// RefinancingSafeLTVThreshold is the conservative LTV bound for refinancing
	RefinancingSafeLTVThreshold = 75.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)
