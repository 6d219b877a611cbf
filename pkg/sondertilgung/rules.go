// Package sondertilgung validates and prices extra mortgage repayments
// against per-bank rule sets.
package sondertilgung

import (
	"errors"

	"github.com/baufitools/hypo-engine/pkg/money"
)

// BankType identifies a German mortgage lender category.
type BankType string

// The lender categories with built-in rule tables.
const (
	Sparkasse           BankType = "Sparkasse"
	Volksbank           BankType = "Volksbank"
	Privatbank          BankType = "Privatbank"
	Bausparkasse        BankType = "Bausparkasse"
	Hypothekenbank      BankType = "Hypothekenbank"
	OnlineBank          BankType = "OnlineBank"
	Genossenschaftsbank BankType = "Genossenschaftsbank"
)

// PaymentDates restricts when extra payments may be made.
type PaymentDates string

// Payment date windows.
const (
	AnyDate    PaymentDates = "jederzeit"
	QuarterEnd PaymentDates = "Quartalsende"
	YearEnd    PaymentDates = "Jahresende"
)

// ErrUnknownBankType indicates a bank type with no rule table.
var ErrUnknownBankType = errors.New("sondertilgung: unknown bank type")

// Rules is one bank's extra-repayment terms. AllowedPercentages is a
// discrete menu of yearly caps in ascending order; the effective cap is the
// largest entry.
type Rules struct {
	BankType           BankType
	AllowedPercentages []float64
	GracePeriodMonths  int
	NoticeRequiredDays int
	AllowedDates       PaymentDates
	MinimumAmount      money.Money
	Fees               FeeStructure
}

// MaxAllowedPercentage returns the largest entry of the percentage menu.
func (r Rules) MaxAllowedPercentage() float64 {
	if len(r.AllowedPercentages) == 0 {
		return 0
	}
	return r.AllowedPercentages[len(r.AllowedPercentages)-1]
}

// YearlyCap returns the largest extra repayment total permitted per loan
// year for the given principal.
func (r Rules) YearlyCap(loanAmount money.LoanAmount) float64 {
	return loanAmount.Float64() * r.MaxAllowedPercentage() / 100
}

// bankRules is the versioned constant rule table for the seven bank types.
// It is initialized once at process start and never mutated.
var bankRules = map[BankType]Rules{
	Sparkasse: {
		BankType:           Sparkasse,
		AllowedPercentages: []float64{5, 10},
		GracePeriodMonths:  12,
		NoticeRequiredDays: 30,
		AllowedDates:       AnyDate,
		MinimumAmount:      money.MustNew(500),
		Fees:               NoFee(),
	},
	Volksbank: {
		BankType:           Volksbank,
		AllowedPercentages: []float64{5, 10},
		GracePeriodMonths:  6,
		NoticeRequiredDays: 30,
		AllowedDates:       AnyDate,
		MinimumAmount:      money.MustNew(500),
		Fees:               NoFee(),
	},
	Privatbank: {
		BankType:           Privatbank,
		AllowedPercentages: []float64{10, 20},
		GracePeriodMonths:  6,
		NoticeRequiredDays: 14,
		AllowedDates:       AnyDate,
		MinimumAmount:      money.MustNew(1000),
		Fees:               PercentageFee(1.0),
	},
	Bausparkasse: {
		BankType:           Bausparkasse,
		AllowedPercentages: []float64{5},
		GracePeriodMonths:  24,
		NoticeRequiredDays: 60,
		AllowedDates:       YearEnd,
		MinimumAmount:      money.MustNew(250),
		Fees:               TieredFee(0.5, 2.0),
	},
	Hypothekenbank: {
		BankType:           Hypothekenbank,
		AllowedPercentages: []float64{5, 10},
		GracePeriodMonths:  12,
		NoticeRequiredDays: 30,
		AllowedDates:       QuarterEnd,
		MinimumAmount:      money.MustNew(1000),
		Fees:               FixedFee(money.MustNew(250)),
	},
	OnlineBank: {
		BankType:           OnlineBank,
		AllowedPercentages: []float64{10, 20, 50},
		GracePeriodMonths:  0,
		NoticeRequiredDays: 0,
		AllowedDates:       AnyDate,
		MinimumAmount:      money.MustNew(100),
		Fees:               NoFee(),
	},
	Genossenschaftsbank: {
		BankType:           Genossenschaftsbank,
		AllowedPercentages: []float64{5, 10},
		GracePeriodMonths:  12,
		NoticeRequiredDays: 30,
		AllowedDates:       AnyDate,
		MinimumAmount:      money.MustNew(500),
		Fees:               NoFee(),
	},
}

// RulesFor returns the rule set for a bank type.
func RulesFor(bank BankType) (Rules, error) {
	rules, ok := bankRules[bank]
	if !ok {
		return Rules{}, ErrUnknownBankType
	}
	return rules, nil
}

// BankTypes lists all bank types with a rule table, in a fixed order.
func BankTypes() []BankType {
	return []BankType{
		Sparkasse,
		Volksbank,
		Privatbank,
		Bausparkasse,
		Hypothekenbank,
		OnlineBank,
		Genossenschaftsbank,
	}
}
