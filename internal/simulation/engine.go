// Package simulation implements the projection engine: a deterministic
// year-by-year net worth projection over the household's full horizon.
package simulation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nwgo/networth-projector/internal/domain"
	"github.com/nwgo/networth-projector/pkg/currency"
)

var one = decimal.NewFromInt(1)

// Engine runs net worth projections. It holds no per-run state: each call
// to Project builds its own balance and surplus tracking, so an Engine is
// safe to reuse across requests.
type Engine struct {
	// CurrentYear anchors the past/present/future partition of the horizon.
	CurrentYear int
	Logger      Logger
}

// NewEngine creates an engine anchored at the current calendar year.
func NewEngine() *Engine {
	return NewEngineAt(time.Now().Year())
}

// NewEngineAt creates an engine anchored at a fixed calendar year.
func NewEngineAt(year int) *Engine {
	return &Engine{CurrentYear: year, Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Project computes the ordered sequence of YearRecords from the profile's
// birth year through the end of life expectancy, inclusive. It is a pure
// function of its input and the engine's anchor year: the input is never
// mutated and two calls with the same input produce identical output.
//
// The horizon is partitioned around the anchor year. Past years report
// zeros (there is no historical data to reconstruct). The present year
// initializes per-asset running balances from current values. Future years
// are computed strictly in order: each year's balances and surplus depend
// on the previous year's, so the loop cannot be reordered.
func (e *Engine) Project(input *domain.SimulationInput) []domain.YearRecord {
	startYear := input.Profile.BirthYear
	endYear := input.Profile.EndYear()
	now := e.CurrentYear

	e.Logger.Debugf("projecting %d-%d (anchor year %d, %d assets, %d pensions, %d life events)",
		startYear, endYear, now, len(input.Assets), len(input.Pensions), len(input.LifeEvents))

	// State carried between iterations: running balances in each asset's
	// native currency, and the USD surplus accumulator.
	balances := make(map[string]decimal.Decimal, len(input.Assets))
	surplus := decimal.Zero

	records := make([]domain.YearRecord, 0, endYear-startYear+1)
	for year := startYear; year <= endYear; year++ {
		age := input.Profile.AgeIn(year)

		switch {
		case year < now:
			records = append(records, domain.YearRecord{Year: year, Age: age})
		case year == now:
			records = append(records, e.presentYear(input, year, age, balances))
		default:
			rec, net := e.futureYear(input, year, age, balances)
			surplus = surplus.Add(net)
			rec.TotalAssets = currency.Round(rec.TotalAssets.Add(surplus))
			records = append(records, rec)
		}
	}

	return records
}

// presentYear seeds the running balances from each asset's current value
// and reports the USD-converted total. No income or withdrawal activity is
// attributed to the initialization year itself.
func (e *Engine) presentYear(input *domain.SimulationInput, year, age int, balances map[string]decimal.Decimal) domain.YearRecord {
	total := decimal.Zero
	assetBalances := make(map[string]decimal.Decimal, len(input.Assets))

	for i := range input.Assets {
		asset := &input.Assets[i]
		balances[asset.ID] = asset.CurrentValue

		usd := currency.ToUSD(asset.CurrentValue, asset.Currency, input.ExchangeRateUSDJPY)
		total = total.Add(usd)
		assetBalances[asset.Name] = currency.Round(usd)
	}

	return domain.YearRecord{
		Year:           year,
		Age:            age,
		TotalAssets:    currency.Round(total),
		PensionIncomes: map[string]decimal.Decimal{},
		AssetBalances:  assetBalances,
		AssetDrawdowns: map[string]decimal.Decimal{},
	}
}

// futureYear advances asset balances one year and aggregates the year's
// cash flows. The returned record's TotalAssets holds only the converted
// asset total; the caller folds in the surplus accumulator. The second
// return value is the year's net annual flow.
func (e *Engine) futureYear(input *domain.SimulationInput, year, age int, balances map[string]decimal.Decimal) (domain.YearRecord, decimal.Decimal) {
	assetTotal, assetBalances, drawdowns := e.growAssets(input, age, balances)
	pensionTotal, pensionIncomes := e.pensionIncome(input, year, age)
	oneTime, recurringMonthly := e.lifeEventFlows(input, year)

	// Withdrawals already left the asset balances; as cash flow they land
	// in the surplus bucket alongside pension income and event impacts.
	// Summing the map directly keeps each entry counted once even when
	// assets share a display name.
	withdrawalTotal := decimal.Zero
	for _, amount := range drawdowns {
		withdrawalTotal = withdrawalTotal.Add(amount)
	}

	netFlow := pensionTotal.
		Add(oneTime).
		Add(currency.Annual(recurringMonthly)).
		Add(withdrawalTotal)

	return domain.YearRecord{
		Year:           year,
		Age:            age,
		TotalAssets:    assetTotal,
		PensionIncomes: pensionIncomes,
		AssetBalances:  assetBalances,
		AssetDrawdowns: drawdowns,
	}, netFlow
}

// growAssets applies one year of growth, contributions, and withdrawals to
// every initialized balance, in that order. Balances stay in native
// currency; conversion to USD happens only for reporting.
func (e *Engine) growAssets(input *domain.SimulationInput, age int, balances map[string]decimal.Decimal) (decimal.Decimal, map[string]decimal.Decimal, map[string]decimal.Decimal) {
	total := decimal.Zero
	assetBalances := make(map[string]decimal.Decimal, len(input.Assets))
	drawdowns := make(map[string]decimal.Decimal)

	for i := range input.Assets {
		asset := &input.Assets[i]
		balance, ok := balances[asset.ID]
		if !ok {
			continue
		}

		balance = balance.Mul(one.Add(asset.ExpectedReturnRate))

		// Contributions stop at retirement age.
		if age < input.Profile.RetirementAge {
			balance = balance.Add(asset.AnnualContribution())
		}

		if asset.WithdrawalActiveAt(age) {
			withdrawal := balance.Mul(asset.Withdrawal.Rate)
			balance = balance.Sub(withdrawal)
			drawdowns[asset.Name] = currency.Round(currency.ToUSD(withdrawal, asset.Currency, input.ExchangeRateUSDJPY))
		}

		balances[asset.ID] = balance

		usd := currency.ToUSD(balance, asset.Currency, input.ExchangeRateUSDJPY)
		total = total.Add(usd)
		assetBalances[asset.Name] = currency.Round(usd)
	}

	return total, assetBalances, drawdowns
}

// pensionIncome computes the annual USD pension income for the year.
// Pensions that have not started appear in the breakdown with value 0.
// Inflation compounds from the present year using the rate that matches
// the pension's own currency.
func (e *Engine) pensionIncome(input *domain.SimulationInput, year, age int) (decimal.Decimal, map[string]decimal.Decimal) {
	total := decimal.Zero
	incomes := make(map[string]decimal.Decimal, len(input.Pensions))

	for i := range input.Pensions {
		pension := &input.Pensions[i]
		if !pension.ActiveAt(age) {
			incomes[pension.Name] = decimal.Zero
			continue
		}

		monthly := pension.MonthlyAmountEstimated
		if pension.IsInflationAdjusted {
			monthly = currency.Inflate(monthly, input.InflationFor(pension.Currency), year-e.CurrentYear)
		}

		annual := currency.ToUSD(currency.Annual(monthly), pension.Currency, input.ExchangeRateUSDJPY)
		total = total.Add(annual)
		incomes[pension.Name] = currency.Round(annual)
	}

	return total, incomes
}

// lifeEventFlows returns the year's one-time impact total and the recurring
// monthly total. Life events are modeled as already USD-denominated. The
// recurring total is re-derived from scratch every year over all events
// whose occurrence year has been reached; re-deriving (rather than carrying
// a running accumulator) keeps per-event inflation correct. Recurring
// inflation uses the domestic rate uniformly as a single cost-of-living
// assumption.
func (e *Engine) lifeEventFlows(input *domain.SimulationInput, year int) (decimal.Decimal, decimal.Decimal) {
	oneTime := decimal.Zero
	recurringMonthly := decimal.Zero

	for i := range input.LifeEvents {
		event := &input.LifeEvents[i]

		if event.OccursIn(year) {
			oneTime = oneTime.Add(event.ImpactOneTime)
		}

		if event.RecurringActiveIn(year) && !event.ImpactMonthly.IsZero() {
			monthly := event.ImpactMonthly
			if event.IsInflationAdjusted {
				monthly = currency.Inflate(monthly, input.InflationRateUS, year-e.CurrentYear)
			}
			recurringMonthly = recurringMonthly.Add(monthly)
		}
	}

	return oneTime, recurringMonthly
}
