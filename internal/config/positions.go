package config

import (
	"fmt"
	"time"

	"github.com/baufitools/hypo-engine/pkg/loan"
	"github.com/baufitools/hypo-engine/pkg/mathutil"
	"github.com/baufitools/hypo-engine/pkg/money"
	"github.com/baufitools/hypo-engine/pkg/portfolio"
	"github.com/baufitools/hypo-engine/pkg/property"
	"github.com/baufitools/hypo-engine/pkg/rate"
	"github.com/baufitools/hypo-engine/pkg/term"
)

// EvaluationTime parses the configured evaluation date, defaulting to the
// given fallback when the config leaves it empty.
func (c *Configuration) EvaluationTime(fallback time.Time) (time.Time, error) {
	if c.EvaluationDate == "" {
		return fallback, nil
	}
	return time.Parse(DateTimeLayout, c.EvaluationDate)
}

// BuildPositions converts the raw configuration into validated portfolio
// positions. Every value passes through its smart constructor; the first
// failure aborts the conversion.
func (c *Configuration) BuildPositions(evaluationTime time.Time) ([]portfolio.Position, error) {
	positions := make([]portfolio.Position, 0, len(c.Loans))

	for _, raw := range c.Loans {
		position, err := buildPosition(raw, evaluationTime)
		if err != nil {
			return nil, fmt.Errorf("loan %q: %w", raw.Name, err)
		}
		positions = append(positions, position)
	}

	return positions, nil
}

func buildPosition(raw Loan, evaluationTime time.Time) (portfolio.Position, error) {
	amount, err := money.NewLoanAmount(raw.Amount)
	if err != nil {
		return portfolio.Position{}, err
	}

	annualRate, err := rate.NewPercentage(raw.AnnualRate)
	if err != nil {
		return portfolio.Position{}, err
	}

	months, err := term.NewMonthCount(float64(raw.TermMonths))
	if err != nil {
		return portfolio.Position{}, err
	}

	var cfg loan.Configuration
	if raw.MonthlyPayment == 0 {
		cfg, err = loan.NewConfigurationWithCalculatedPayment(amount, annualRate, months)
	} else {
		var payment loan.MonthlyPayment
		payment, err = loan.NewMonthlyPayment(mathutil.Round(raw.MonthlyPayment))
		if err != nil {
			return portfolio.Position{}, err
		}
		cfg, err = loan.NewConfiguration(amount, annualRate, months, payment)
	}
	if err != nil {
		return portfolio.Position{}, err
	}

	extras := make([]loan.ExtraPayment, 0, len(raw.ExtraPayments))
	for _, rawExtra := range raw.ExtraPayments {
		month, monthErr := term.NewPaymentMonth(float64(rawExtra.Month))
		if monthErr != nil {
			return portfolio.Position{}, monthErr
		}
		extraAmount, amountErr := money.New(rawExtra.Amount)
		if amountErr != nil {
			return portfolio.Position{}, amountErr
		}
		extra, extraErr := loan.NewExtraPayment(month, extraAmount)
		if extraErr != nil {
			return portfolio.Position{}, extraErr
		}
		extras = append(extras, extra)
	}
	// Same-month entries in a config file are combined into one payment.
	plan, err := loan.CombineByMonth(extras)
	if err != nil {
		return portfolio.Position{}, err
	}

	position := portfolio.Position{
		Name: raw.Name,
		Loan: cfg,
		Plan: plan,
	}

	if raw.Property != nil {
		valuation, valErr := buildValuation(*raw.Property, evaluationTime)
		if valErr != nil {
			return portfolio.Position{}, valErr
		}
		position.Valuation = &valuation
	}

	return position, nil
}

func buildValuation(raw Property, evaluationTime time.Time) (property.Valuation, error) {
	currentValue, err := money.New(raw.CurrentValue)
	if err != nil {
		return property.Valuation{}, err
	}
	purchasePrice, err := money.New(raw.PurchasePrice)
	if err != nil {
		return property.Valuation{}, err
	}
	valuationDate, err := time.Parse(DateTimeLayout, raw.ValuationDate)
	if err != nil {
		return property.Valuation{}, err
	}
	return property.NewValuation(
		currentValue,
		purchasePrice,
		valuationDate,
		property.ValuationMethod(raw.Method),
		property.PropertyType(raw.Type),
		property.LocationQuality(raw.Location),
		evaluationTime,
	)
}
