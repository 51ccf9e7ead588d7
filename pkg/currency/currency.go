// Package currency provides the two-currency model used throughout the
// projector: amounts are declared in their native currency (USD or JPY)
// and normalized to USD, the reporting currency, at aggregation points.
package currency

import (
	"github.com/shopspring/decimal"
)

// Unit identifies one of the two supported currencies.
type Unit string

const (
	USD Unit = "USD"
	JPY Unit = "JPY"
)

var twelve = decimal.NewFromInt(12)

// Valid reports whether the unit is one of the supported currencies.
func (u Unit) Valid() bool {
	return u == USD || u == JPY
}

// ToUSD converts an amount from its native unit to USD using the USD/JPY
// exchange rate. USD amounts pass through unchanged.
func ToUSD(amount decimal.Decimal, unit Unit, usdJPYRate decimal.Decimal) decimal.Decimal {
	if unit == JPY {
		return amount.Div(usdJPYRate)
	}
	return amount
}

// Round rounds to cents for reporting.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Annual converts a monthly amount to an annual figure.
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve)
}

// Inflate compounds an amount at the given annual rate over a number of
// years. Non-positive year counts leave the amount unchanged.
func Inflate(amount decimal.Decimal, rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return amount
	}
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(years)))
	return amount.Mul(factor)
}
