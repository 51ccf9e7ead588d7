package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUnitValid(t *testing.T) {
	assert.True(t, USD.Valid())
	assert.True(t, JPY.Valid())
	assert.False(t, Unit("EUR").Valid())
	assert.False(t, Unit("").Valid())
}

func TestToUSD(t *testing.T) {
	rate := decimal.NewFromInt(150)

	tests := []struct {
		name     string
		amount   decimal.Decimal
		unit     Unit
		expected decimal.Decimal
	}{
		{"USD passes through", decimal.NewFromInt(100000), USD, decimal.NewFromInt(100000)},
		{"JPY divided by rate", decimal.NewFromInt(15000000), JPY, decimal.NewFromInt(100000)},
		{"zero JPY", decimal.Zero, JPY, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToUSD(tt.amount, tt.unit, rate)
			assert.True(t, got.Equal(tt.expected), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestRound(t *testing.T) {
	got := Round(decimal.NewFromFloat(1234.5678))
	assert.Equal(t, "1234.57", got.StringFixed(2))
}

func TestAnnual(t *testing.T) {
	got := Annual(decimal.NewFromInt(500))
	assert.True(t, got.Equal(decimal.NewFromInt(6000)))
}

func TestInflate(t *testing.T) {
	rate := decimal.NewFromFloat(0.03)
	base := decimal.NewFromInt(1000)

	// Zero or negative years leave the amount unchanged.
	assert.True(t, Inflate(base, rate, 0).Equal(base))
	assert.True(t, Inflate(base, rate, -3).Equal(base))

	// 1000 * 1.03^2 = 1060.90
	got := Inflate(base, rate, 2)
	assert.Equal(t, "1060.90", got.StringFixed(2))
}
