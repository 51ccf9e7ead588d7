// Package config loads and validates simulation input files. Validation
// runs before the projection engine is ever invoked: the engine assumes a
// structurally valid input and performs no internal recovery.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nwgo/networth-projector/internal/domain"
	"github.com/nwgo/networth-projector/pkg/currency"
)

// Rate sanity bounds shared by the inflation checks.
var (
	minRate = decimal.NewFromFloat(-0.10)
	maxRate = decimal.NewFromFloat(0.20)
)

// LoadFromFile loads a SimulationInput from a YAML or JSON file, applies
// defaults, and validates it.
func LoadFromFile(filename string) (*domain.SimulationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.SimulationInput
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		if err := json.Unmarshal(data, &input); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &input); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	Normalize(&input)
	if err := Validate(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// Normalize fills in the string and relational defaults: currencies
// default to USD, contribution currency defaults to the asset's own
// currency, event months default to January, and the residency defaults
// to US. Scalar and boolean defaults (return rate, life expectancy,
// inflation toggles, macro rates) are applied at decode time by the
// domain package, so explicit zeros in inputs survive.
func Normalize(input *domain.SimulationInput) {
	if input.Profile.CurrentLocation == "" {
		input.Profile.CurrentLocation = domain.LocationUS
	}
	for i := range input.Assets {
		if input.Assets[i].Currency == "" {
			input.Assets[i].Currency = currency.USD
		}
		if input.Assets[i].ContributionCurrency == "" {
			input.Assets[i].ContributionCurrency = input.Assets[i].Currency
		}
	}
	for i := range input.Pensions {
		if input.Pensions[i].Currency == "" {
			input.Pensions[i].Currency = currency.USD
		}
	}
	for i := range input.LifeEvents {
		if input.LifeEvents[i].Month == 0 {
			input.LifeEvents[i].Month = 1
		}
	}
}

// Validate checks the full input snapshot and returns a descriptive error
// for the first violation found.
func Validate(input *domain.SimulationInput) error {
	if err := validateProfile(&input.Profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	seen := make(map[string]bool)
	for i := range input.Assets {
		asset := &input.Assets[i]
		if err := validateAsset(asset); err != nil {
			return fmt.Errorf("asset %q: %w", asset.ID, err)
		}
		if seen[asset.ID] {
			return fmt.Errorf("asset %q: duplicate id", asset.ID)
		}
		seen[asset.ID] = true
	}

	seen = make(map[string]bool)
	for i := range input.Pensions {
		pension := &input.Pensions[i]
		if err := validatePension(pension); err != nil {
			return fmt.Errorf("pension %q: %w", pension.ID, err)
		}
		if seen[pension.ID] {
			return fmt.Errorf("pension %q: duplicate id", pension.ID)
		}
		seen[pension.ID] = true
	}

	seen = make(map[string]bool)
	for i := range input.LifeEvents {
		event := &input.LifeEvents[i]
		if err := validateLifeEvent(event); err != nil {
			return fmt.Errorf("life event %q: %w", event.ID, err)
		}
		if seen[event.ID] {
			return fmt.Errorf("life event %q: duplicate id", event.ID)
		}
		seen[event.ID] = true
	}

	return validateMacro(input)
}

func validateProfile(p *domain.Profile) error {
	if p.BirthYear <= 0 {
		return fmt.Errorf("birth year is required")
	}
	if !p.CurrentLocation.Valid() {
		return fmt.Errorf("current location must be US or JP, got %q", p.CurrentLocation)
	}
	if p.LifeExpectancy <= 0 {
		return fmt.Errorf("life expectancy must be positive")
	}
	if p.RetirementAge < 0 {
		return fmt.Errorf("retirement age cannot be negative")
	}
	if p.RetirementAge > p.LifeExpectancy {
		return fmt.Errorf("retirement age (%d) cannot exceed life expectancy (%d)", p.RetirementAge, p.LifeExpectancy)
	}
	return nil
}

func validateAsset(a *domain.Asset) error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	if a.Name == "" {
		return fmt.Errorf("name is required")
	}
	if a.CurrentValue.IsNegative() {
		return fmt.Errorf("current value cannot be negative")
	}
	if !a.Currency.Valid() {
		return fmt.Errorf("currency must be USD or JPY, got %q", a.Currency)
	}
	if !a.ContributionCurrency.Valid() {
		return fmt.Errorf("contribution currency must be USD or JPY, got %q", a.ContributionCurrency)
	}
	// No conversion path exists for contributions; mixed declarations
	// would silently produce nonsense.
	if a.ContributionCurrency != a.Currency {
		return fmt.Errorf("contribution currency (%s) must match the asset currency (%s)", a.ContributionCurrency, a.Currency)
	}
	if a.Withdrawal != nil {
		if a.Withdrawal.StartAge < 0 {
			return fmt.Errorf("withdrawal start age cannot be negative")
		}
		if a.Withdrawal.Rate.IsNegative() || a.Withdrawal.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("withdrawal rate must be between 0 and 1")
		}
	}
	return nil
}

func validatePension(p *domain.Pension) error {
	if p.ID == "" {
		return fmt.Errorf("id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.StartAge < 0 {
		return fmt.Errorf("start age cannot be negative")
	}
	if p.MonthlyAmountEstimated.IsNegative() {
		return fmt.Errorf("monthly amount cannot be negative")
	}
	if !p.Currency.Valid() {
		return fmt.Errorf("currency must be USD or JPY, got %q", p.Currency)
	}
	return nil
}

func validateLifeEvent(e *domain.LifeEvent) error {
	if e.ID == "" {
		return fmt.Errorf("id is required")
	}
	if e.Name == "" {
		return fmt.Errorf("name is required")
	}
	if e.Year <= 0 {
		return fmt.Errorf("year is required")
	}
	if e.Month < 1 || e.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func validateMacro(input *domain.SimulationInput) error {
	if !input.ExchangeRateUSDJPY.IsPositive() {
		return fmt.Errorf("exchange rate USD/JPY must be positive")
	}
	if input.InflationRateUS.LessThan(minRate) || input.InflationRateUS.GreaterThan(maxRate) {
		return fmt.Errorf("US inflation rate must be between -10%% and 20%%")
	}
	if input.InflationRateJP.LessThan(minRate) || input.InflationRateJP.GreaterThan(maxRate) {
		return fmt.Errorf("JP inflation rate must be between -10%% and 20%%")
	}
	return nil
}

// CreateExampleInput builds a populated example input for the `example`
// command and for documentation.
func CreateExampleInput(currentYear int) *domain.SimulationInput {
	return &domain.SimulationInput{
		Profile: domain.Profile{
			BirthYear:       currentYear - 40,
			CurrentLocation: domain.LocationUS,
			RetirementAge:   65,
			LifeExpectancy:  95,
		},
		Assets: []domain.Asset{
			{
				ID:                   uuid.NewString(),
				Name:                 "401k",
				Type:                 "401k",
				CurrentValue:         decimal.NewFromInt(250000),
				Currency:             currency.USD,
				ContributionMonthly:  decimal.NewFromInt(1500),
				ContributionCurrency: currency.USD,
				ExpectedReturnRate:   decimal.NewFromFloat(0.06),
				IsTaxable:            false,
				Withdrawal: &domain.WithdrawalPolicy{
					StartAge: 70,
					Rate:     decimal.NewFromFloat(0.04),
				},
			},
			{
				ID:                   uuid.NewString(),
				Name:                 "JP Savings",
				Type:                 "Cash",
				CurrentValue:         decimal.NewFromInt(5000000),
				Currency:             currency.JPY,
				ContributionCurrency: currency.JPY,
				ExpectedReturnRate:   decimal.NewFromFloat(0.001),
				IsTaxable:            true,
			},
		},
		Pensions: []domain.Pension{
			{
				ID:                     uuid.NewString(),
				Name:                   "Social Security",
				Type:                   "SocialSecurity",
				StartAge:               67,
				MonthlyAmountEstimated: decimal.NewFromInt(2400),
				Currency:               currency.USD,
				IsInflationAdjusted:    true,
			},
			{
				ID:                     uuid.NewString(),
				Name:                   "JP National Pension",
				Type:                   "JPPension",
				StartAge:               65,
				MonthlyAmountEstimated: decimal.NewFromInt(65000),
				Currency:               currency.JPY,
				IsInflationAdjusted:    false,
			},
		},
		LifeEvents: []domain.LifeEvent{
			{
				ID:            uuid.NewString(),
				Name:          "College Tuition",
				Type:          "EducationEnd",
				Year:          currentYear + 8,
				Month:         9,
				Description:   "One-time tuition payment",
				ImpactOneTime: decimal.NewFromInt(-40000),
			},
			{
				ID:                  uuid.NewString(),
				Name:                "Downsize Home",
				Type:                "Relocation",
				Year:                currentYear + 25,
				Month:               1,
				ImpactOneTime:       decimal.NewFromInt(150000),
				ImpactMonthly:       decimal.NewFromInt(800),
				IsInflationAdjusted: true,
			},
		},
		ExchangeRateUSDJPY: decimal.NewFromInt(150),
		InflationRateUS:    decimal.NewFromFloat(0.03),
		InflationRateJP:    decimal.NewFromFloat(0.01),
	}
}
