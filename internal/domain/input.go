package domain

import (
	"github.com/shopspring/decimal"

	"github.com/nwgo/networth-projector/pkg/currency"
)

// Location represents the household's residency for reporting purposes
type Location string

const (
	LocationUS Location = "US"
	LocationJP Location = "JP"
)

// Valid reports whether the location is one of the supported residencies.
func (l Location) Valid() bool {
	return l == LocationUS || l == LocationJP
}

// Profile holds the household information that frames the simulation horizon
type Profile struct {
	BirthYear       int      `yaml:"birth_year" json:"birth_year"`
	SpouseBirthYear *int     `yaml:"spouse_birth_year,omitempty" json:"spouse_birth_year,omitempty"`
	CurrentLocation Location `yaml:"current_location" json:"current_location"`
	RetirementAge   int      `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy  int      `yaml:"life_expectancy" json:"life_expectancy"`
}

// EndYear returns the last simulated calendar year.
func (p *Profile) EndYear() int {
	return p.BirthYear + p.LifeExpectancy
}

// AgeIn returns the simulated age in a given calendar year.
func (p *Profile) AgeIn(year int) int {
	return year - p.BirthYear
}

// WithdrawalPolicy describes an asset's drawdown once the holder reaches
// the start age: each year a fixed fraction of the balance is withdrawn.
// Absence of the policy means the asset is never drawn down.
type WithdrawalPolicy struct {
	StartAge int             `yaml:"start_age" json:"start_age"`
	Rate     decimal.Decimal `yaml:"rate" json:"rate"`
}

// Asset represents a financial asset with growth and contribution parameters.
// All amounts are in the asset's native currency.
type Asset struct {
	ID                   string            `yaml:"id" json:"id"`
	Name                 string            `yaml:"name" json:"name"`
	Type                 string            `yaml:"type" json:"type"` // 401k, IRA, RothIRA, Brokerage, Crypto, RealEstate, Cash, Other
	CurrentValue         decimal.Decimal   `yaml:"current_value" json:"current_value"`
	Currency             currency.Unit     `yaml:"currency" json:"currency"`
	ContributionMonthly  decimal.Decimal   `yaml:"contribution_monthly" json:"contribution_monthly"`
	ContributionCurrency currency.Unit     `yaml:"contribution_currency" json:"contribution_currency"`
	ExpectedReturnRate   decimal.Decimal   `yaml:"expected_return_rate" json:"expected_return_rate"` // fractional, 0.05 = 5%
	IsTaxable            bool              `yaml:"is_taxable" json:"is_taxable"`
	Withdrawal           *WithdrawalPolicy `yaml:"withdrawal,omitempty" json:"withdrawal,omitempty"`
}

// AnnualContribution returns the yearly contribution amount in the asset's
// native currency.
func (a *Asset) AnnualContribution() decimal.Decimal {
	return currency.Annual(a.ContributionMonthly)
}

// WithdrawalActiveAt reports whether the withdrawal policy applies at the
// given simulated age.
func (a *Asset) WithdrawalActiveAt(age int) bool {
	return a.Withdrawal != nil && age >= a.Withdrawal.StartAge
}

// Pension represents a pension-like income stream: dormant until the holder
// reaches the start age, then active for the rest of the horizon.
type Pension struct {
	ID                     string          `yaml:"id" json:"id"`
	Name                   string          `yaml:"name" json:"name"`
	Type                   string          `yaml:"type" json:"type"` // SocialSecurity, JPPension, PrivateAnnuity, Other
	StartAge               int             `yaml:"start_age" json:"start_age"`
	MonthlyAmountEstimated decimal.Decimal `yaml:"monthly_amount_estimated" json:"monthly_amount_estimated"`
	Currency               currency.Unit   `yaml:"currency" json:"currency"`
	IsInflationAdjusted    bool            `yaml:"is_inflation_adjusted" json:"is_inflation_adjusted"`
}

// ActiveAt reports whether the pension pays out at the given simulated age.
func (p *Pension) ActiveAt(age int) bool {
	return age >= p.StartAge
}

// LifeEvent represents a one-time and/or recurring cash-flow impact.
// Impacts are signed (positive = income, negative = cost) and modeled as
// USD-denominated. The one-time impact fires exactly once in the
// occurrence year; the recurring impact contributes every year from the
// occurrence year until the horizon ends.
type LifeEvent struct {
	ID                  string          `yaml:"id" json:"id"`
	Name                string          `yaml:"name" json:"name"`
	Type                string          `yaml:"type" json:"type"` // Retirement, Relocation, EducationEnd, Other
	Year                int             `yaml:"year" json:"year"`
	Month               int             `yaml:"month" json:"month"` // resolution collapsed to annual
	Description         string          `yaml:"description,omitempty" json:"description,omitempty"`
	ImpactOneTime       decimal.Decimal `yaml:"impact_one_time" json:"impact_one_time"`
	ImpactMonthly       decimal.Decimal `yaml:"impact_monthly" json:"impact_monthly"`
	IsInflationAdjusted bool            `yaml:"is_inflation_adjusted" json:"is_inflation_adjusted"`
}

// OccursIn reports whether the one-time impact fires in the given year.
func (e *LifeEvent) OccursIn(year int) bool {
	return e.Year == year
}

// RecurringActiveIn reports whether the recurring impact contributes in the
// given year.
func (e *LifeEvent) RecurringActiveIn(year int) bool {
	return e.Year <= year
}

// SimulationInput is the engine's sole input: one immutable snapshot of the
// household's finances plus macro parameters.
type SimulationInput struct {
	Profile    Profile     `yaml:"profile" json:"profile"`
	Assets     []Asset     `yaml:"assets" json:"assets"`
	Pensions   []Pension   `yaml:"pensions" json:"pensions"`
	LifeEvents []LifeEvent `yaml:"life_events" json:"life_events"`

	ExchangeRateUSDJPY decimal.Decimal `yaml:"exchange_rate_usd_jpy" json:"exchange_rate_usd_jpy"`
	InflationRateUS    decimal.Decimal `yaml:"inflation_rate_us" json:"inflation_rate_us"`
	InflationRateJP    decimal.Decimal `yaml:"inflation_rate_jp" json:"inflation_rate_jp"`
}

// InflationFor selects the inflation rate matching a currency unit.
func (in *SimulationInput) InflationFor(unit currency.Unit) decimal.Decimal {
	if unit == currency.JPY {
		return in.InflationRateJP
	}
	return in.InflationRateUS
}
