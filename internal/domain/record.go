package domain

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Monetary fields serialize as JSON numbers, matching the wire format
	// the frontend consumes.
	decimal.MarshalJSONWithoutQuotes = true
}

// YearRecord is the engine's output unit: the household's position in one
// simulated year, all monetary fields in the reporting currency (USD) and
// rounded to cents. Past years carry zero totals and no breakdowns.
type YearRecord struct {
	Year int `yaml:"year" json:"year"`
	Age  int `yaml:"age" json:"age"`

	TotalAssets decimal.Decimal `yaml:"total_assets" json:"total_assets"`

	// PensionIncomes maps pension name to the annual amount received this
	// year; pensions that have not started yet appear with value 0.
	PensionIncomes map[string]decimal.Decimal `yaml:"pension_incomes,omitempty" json:"pension_incomes,omitempty"`

	// AssetBalances maps asset name to the year-end balance.
	AssetBalances map[string]decimal.Decimal `yaml:"asset_balances,omitempty" json:"asset_balances,omitempty"`

	// AssetDrawdowns maps asset name to the amount withdrawn this year;
	// only assets with an active withdrawal policy appear.
	AssetDrawdowns map[string]decimal.Decimal `yaml:"asset_drawdowns,omitempty" json:"asset_drawdowns,omitempty"`
}
