package sondertilgung

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baufitools/hypo-engine/pkg/datetime"
	"github.com/baufitools/hypo-engine/pkg/money"
)

func TestClassifyRisk(t *testing.T) {
	assert.Equal(t, RiskNiedrig, ClassifyRisk(5))
	assert.Equal(t, RiskNiedrig, ClassifyRisk(10))
	assert.Equal(t, RiskMittel, ClassifyRisk(20))
	assert.Equal(t, RiskHoch, ClassifyRisk(50))
}

func TestRecommendStrategyPicksLargestAffordableTier(t *testing.T) {
	rules, err := RulesFor(OnlineBank)
	require.NoError(t, err)
	loanAmount := money.MustNewLoanAmount(300000)

	period := FixedRatePeriod{
		Start: datetime.MustParseTime(datetime.DateTimeLayout, "2024-01"),
		Years: 10,
	}
	eval := datetime.MustParseTime(datetime.DateTimeLayout, "2026-01")

	// Tiers are 10/20/50 percent, worth 30000/60000/150000. With 70000 in
	// funds the 20% tier is the largest that fits.
	strategy, err := RecommendStrategy(rules, loanAmount, money.MustNew(70000), period, eval)
	require.NoError(t, err)
	assert.Equal(t, 20.0, strategy.Percentage)
	assert.Equal(t, 60000.0, strategy.Amount.Float64())
	assert.Equal(t, RiskMittel, strategy.Risk)
	assert.True(t, strategy.Fees.IsZero(), "OnlineBank charges no fees")

	smaller, err := RecommendStrategy(rules, loanAmount, money.MustNew(35000), period, eval)
	require.NoError(t, err)
	assert.Equal(t, 10.0, smaller.Percentage)
	assert.Equal(t, 30000.0, smaller.Amount.Float64())
	assert.Equal(t, RiskNiedrig, smaller.Risk)
}

func TestRecommendStrategyNoAffordableTier(t *testing.T) {
	rules, err := RulesFor(OnlineBank)
	require.NoError(t, err)

	period := FixedRatePeriod{
		Start: datetime.MustParseTime(datetime.DateTimeLayout, "2024-01"),
		Years: 10,
	}
	eval := datetime.MustParseTime(datetime.DateTimeLayout, "2026-01")

	// The smallest tier of 10% on 300000 needs 30000.
	_, err = RecommendStrategy(rules, money.MustNewLoanAmount(300000), money.MustNew(5000), period, eval)
	assert.True(t, errors.Is(err, ErrNoAffordableTier), "error = %v", err)
}

func TestRecommendStrategyTiming(t *testing.T) {
	rules, err := RulesFor(Sparkasse)
	require.NoError(t, err)
	loanAmount := money.MustNewLoanAmount(300000)
	funds := money.MustNew(50000)

	period := FixedRatePeriod{
		Start: datetime.MustParseTime(datetime.DateTimeLayout, "2024-01"),
		Years: 10,
	}

	// Eight years remain: pay now to exploit the locked rate.
	early := datetime.MustParseTime(datetime.DateTimeLayout, "2026-01")
	strategy, err := RecommendStrategy(rules, loanAmount, funds, period, early)
	require.NoError(t, err)
	assert.Equal(t, TimingImmediately, strategy.Timing)

	// Four years remain: land the payment before the period ends.
	late := datetime.MustParseTime(datetime.DateTimeLayout, "2030-01")
	strategy, err = RecommendStrategy(rules, loanAmount, funds, period, late)
	require.NoError(t, err)
	assert.Equal(t, TimingBeforePeriodEnd, strategy.Timing)
}

func TestRecommendStrategyPricesFees(t *testing.T) {
	rules, err := RulesFor(Privatbank)
	require.NoError(t, err)

	period := FixedRatePeriod{
		Start: datetime.MustParseTime(datetime.DateTimeLayout, "2024-01"),
		Years: 10,
	}
	eval := datetime.MustParseTime(datetime.DateTimeLayout, "2026-01")

	// 20% of 300000 is 60000; Privatbank charges 1% of the payment.
	strategy, err := RecommendStrategy(rules, money.MustNewLoanAmount(300000), money.MustNew(70000), period, eval)
	require.NoError(t, err)
	assert.Equal(t, 20.0, strategy.Percentage)
	assert.Equal(t, 600.0, strategy.Fees.Float64())
}
