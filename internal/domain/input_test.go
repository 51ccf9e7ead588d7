package domain

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwgo/networth-projector/pkg/currency"
)

func TestProfileHorizon(t *testing.T) {
	p := Profile{BirthYear: 1990, RetirementAge: 65, LifeExpectancy: 95}
	assert.Equal(t, 2085, p.EndYear())
	assert.Equal(t, 35, p.AgeIn(2025))
	assert.Equal(t, 0, p.AgeIn(1990))
}

func TestAssetWithdrawalActiveAt(t *testing.T) {
	noPolicy := Asset{}
	assert.False(t, noPolicy.WithdrawalActiveAt(99))

	withPolicy := Asset{Withdrawal: &WithdrawalPolicy{StartAge: 70, Rate: decimal.NewFromFloat(0.04)}}
	assert.False(t, withPolicy.WithdrawalActiveAt(69))
	assert.True(t, withPolicy.WithdrawalActiveAt(70))
	assert.True(t, withPolicy.WithdrawalActiveAt(85))
}

func TestAssetAnnualContribution(t *testing.T) {
	a := Asset{ContributionMonthly: decimal.NewFromInt(500)}
	assert.True(t, a.AnnualContribution().Equal(decimal.NewFromInt(6000)))
}

func TestPensionActiveAt(t *testing.T) {
	p := Pension{StartAge: 67}
	assert.False(t, p.ActiveAt(66))
	assert.True(t, p.ActiveAt(67))
}

func TestLifeEventLifecycle(t *testing.T) {
	e := LifeEvent{Year: 2030}
	assert.False(t, e.OccursIn(2029))
	assert.True(t, e.OccursIn(2030))
	assert.False(t, e.OccursIn(2031))

	assert.False(t, e.RecurringActiveIn(2029))
	assert.True(t, e.RecurringActiveIn(2030))
	assert.True(t, e.RecurringActiveIn(2050))
}

func TestInflationForCurrency(t *testing.T) {
	in := SimulationInput{
		InflationRateUS: decimal.NewFromFloat(0.03),
		InflationRateJP: decimal.NewFromFloat(0.01),
	}
	assert.True(t, in.InflationFor(currency.USD).Equal(decimal.NewFromFloat(0.03)))
	assert.True(t, in.InflationFor(currency.JPY).Equal(decimal.NewFromFloat(0.01)))
}

func TestYearRecordMarshalsNumericAmounts(t *testing.T) {
	rec := YearRecord{
		Year:        2026,
		Age:         31,
		TotalAssets: decimal.RequireFromString("111000"),
		AssetBalances: map[string]decimal.Decimal{
			"401k": decimal.RequireFromString("111000"),
		},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_assets":111000`)
	assert.NotContains(t, string(data), `"total_assets":"`)
	// Past-year records omit the breakdown maps entirely.
	past, err := json.Marshal(YearRecord{Year: 2000, Age: 5})
	require.NoError(t, err)
	assert.NotContains(t, string(past), "pension_incomes")
	assert.NotContains(t, string(past), "asset_drawdowns")
}
