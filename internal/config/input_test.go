package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nwgo/networth-projector/internal/domain"
	"github.com/nwgo/networth-projector/pkg/currency"
)

func validInput() *domain.SimulationInput {
	input := CreateExampleInput(time.Now().Year())
	return input
}

func TestExampleInputIsValid(t *testing.T) {
	assert.NoError(t, Validate(validInput()))
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.SimulationInput)
		wantErr string
	}{
		{
			name:    "retirement age beyond life expectancy",
			mutate:  func(in *domain.SimulationInput) { in.Profile.RetirementAge = 99 },
			wantErr: "retirement age",
		},
		{
			name:    "zero life expectancy",
			mutate:  func(in *domain.SimulationInput) { in.Profile.LifeExpectancy = 0 },
			wantErr: "life expectancy",
		},
		{
			name:    "unknown location",
			mutate:  func(in *domain.SimulationInput) { in.Profile.CurrentLocation = "DE" },
			wantErr: "current location",
		},
		{
			name:    "negative asset value",
			mutate:  func(in *domain.SimulationInput) { in.Assets[0].CurrentValue = decimal.NewFromInt(-1) },
			wantErr: "current value",
		},
		{
			name:    "unknown asset currency",
			mutate:  func(in *domain.SimulationInput) { in.Assets[0].Currency = "EUR" },
			wantErr: "currency",
		},
		{
			name: "contribution currency mismatch",
			mutate: func(in *domain.SimulationInput) {
				in.Assets[0].Currency = currency.USD
				in.Assets[0].ContributionCurrency = currency.JPY
			},
			wantErr: "contribution currency",
		},
		{
			name:    "duplicate asset ids",
			mutate:  func(in *domain.SimulationInput) { in.Assets[1].ID = in.Assets[0].ID },
			wantErr: "duplicate id",
		},
		{
			name: "withdrawal rate out of range",
			mutate: func(in *domain.SimulationInput) {
				in.Assets[0].Withdrawal = &domain.WithdrawalPolicy{StartAge: 65, Rate: decimal.NewFromFloat(1.5)}
			},
			wantErr: "withdrawal rate",
		},
		{
			name: "negative withdrawal start age",
			mutate: func(in *domain.SimulationInput) {
				in.Assets[0].Withdrawal = &domain.WithdrawalPolicy{StartAge: -1, Rate: decimal.NewFromFloat(0.04)}
			},
			wantErr: "withdrawal start age",
		},
		{
			name:    "negative pension amount",
			mutate:  func(in *domain.SimulationInput) { in.Pensions[0].MonthlyAmountEstimated = decimal.NewFromInt(-10) },
			wantErr: "monthly amount",
		},
		{
			name:    "life event month out of range",
			mutate:  func(in *domain.SimulationInput) { in.LifeEvents[0].Month = 13 },
			wantErr: "month",
		},
		{
			name:    "missing life event id",
			mutate:  func(in *domain.SimulationInput) { in.LifeEvents[0].ID = "" },
			wantErr: "id is required",
		},
		{
			name:    "zero exchange rate",
			mutate:  func(in *domain.SimulationInput) { in.ExchangeRateUSDJPY = decimal.Zero },
			wantErr: "exchange rate",
		},
		{
			name:    "extreme inflation",
			mutate:  func(in *domain.SimulationInput) { in.InflationRateUS = decimal.NewFromFloat(0.5) },
			wantErr: "inflation rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			err := Validate(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	input := &domain.SimulationInput{
		Assets:     []domain.Asset{{ID: "a", Name: "A", Currency: currency.JPY}},
		Pensions:   []domain.Pension{{ID: "p", Name: "P"}},
		LifeEvents: []domain.LifeEvent{{ID: "e", Name: "E", Year: 2030}},
	}

	Normalize(input)

	assert.Equal(t, domain.LocationUS, input.Profile.CurrentLocation)
	assert.Equal(t, currency.JPY, input.Assets[0].ContributionCurrency)
	assert.Equal(t, currency.USD, input.Pensions[0].Currency)
	assert.Equal(t, 1, input.LifeEvents[0].Month)
}

func TestMinimalJSONPayloadGetsSchemaDefaults(t *testing.T) {
	payload := []byte(`{
		"profile": {"birth_year": 1985},
		"assets": [{"id": "a1", "name": "Brokerage", "type": "Brokerage", "current_value": 100000}],
		"pensions": [{"id": "p1", "name": "Social Security", "type": "SocialSecurity", "start_age": 67, "monthly_amount_estimated": 2000}],
		"life_events": []
	}`)

	var input domain.SimulationInput
	require.NoError(t, json.Unmarshal(payload, &input))

	Normalize(&input)
	require.NoError(t, Validate(&input))

	assert.Equal(t, 65, input.Profile.RetirementAge)
	assert.Equal(t, 95, input.Profile.LifeExpectancy)
	assert.Equal(t, domain.LocationUS, input.Profile.CurrentLocation)
	assert.True(t, input.Assets[0].ExpectedReturnRate.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, input.Assets[0].IsTaxable)
	assert.Equal(t, currency.USD, input.Assets[0].Currency)
	assert.True(t, input.Pensions[0].IsInflationAdjusted)
	assert.True(t, input.ExchangeRateUSDJPY.Equal(decimal.NewFromInt(150)))
	assert.True(t, input.InflationRateUS.Equal(decimal.NewFromFloat(0.03)))
	assert.True(t, input.InflationRateJP.Equal(decimal.NewFromFloat(0.01)))
}

func TestMinimalYAMLPayloadGetsSchemaDefaults(t *testing.T) {
	data := []byte("profile:\n  birth_year: 1985\nassets: []\npensions: []\nlife_events: []\n")

	var input domain.SimulationInput
	require.NoError(t, yaml.Unmarshal(data, &input))

	assert.Equal(t, 65, input.Profile.RetirementAge)
	assert.Equal(t, 95, input.Profile.LifeExpectancy)
	assert.True(t, input.ExchangeRateUSDJPY.Equal(decimal.NewFromInt(150)))
}

func TestExplicitZerosSurviveDecoding(t *testing.T) {
	payload := []byte(`{
		"profile": {"birth_year": 1985, "retirement_age": 0},
		"assets": [{"id": "a1", "name": "Cash", "type": "Cash", "current_value": 100, "expected_return_rate": 0, "is_taxable": false}],
		"pensions": [{"id": "p1", "name": "P", "type": "Other", "start_age": 60, "monthly_amount_estimated": 100, "is_inflation_adjusted": false}],
		"life_events": []
	}`)

	var input domain.SimulationInput
	require.NoError(t, json.Unmarshal(payload, &input))

	assert.Equal(t, 0, input.Profile.RetirementAge)
	assert.True(t, input.Assets[0].ExpectedReturnRate.IsZero())
	assert.False(t, input.Assets[0].IsTaxable)
	assert.False(t, input.Pensions[0].IsInflationAdjusted)
}

func TestLoadFromYAMLFile(t *testing.T) {
	input := validInput()
	data, err := yaml.Marshal(input)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, input.Profile, loaded.Profile)
	assert.Len(t, loaded.Assets, len(input.Assets))
	assert.True(t, loaded.Assets[0].CurrentValue.Equal(input.Assets[0].CurrentValue))
}

func TestLoadFromJSONFile(t *testing.T) {
	input := validInput()
	data, err := json.Marshal(input)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, input.Profile, loaded.Profile)
	assert.Len(t, loaded.Pensions, len(input.Pensions))
}

func TestLoadFromFileRejectsInvalidInput(t *testing.T) {
	input := validInput()
	input.Profile.RetirementAge = 200
	data, err := yaml.Marshal(input)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err = LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
