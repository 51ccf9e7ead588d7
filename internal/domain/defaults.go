package domain

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Schema defaults applied while decoding: absent fields take these values,
// explicit zeros and falses survive untouched. Structs built in code get
// none of this; they spell out every field.
var (
	defaultReturnRate   = decimal.NewFromFloat(0.05)
	defaultExchangeRate = decimal.NewFromInt(150)
	defaultInflationUS  = decimal.NewFromFloat(0.03)
	defaultInflationJP  = decimal.NewFromFloat(0.01)
)

const (
	defaultRetirementAge  = 65
	defaultLifeExpectancy = 95
)

func defaultProfile() Profile {
	return Profile{
		RetirementAge:  defaultRetirementAge,
		LifeExpectancy: defaultLifeExpectancy,
	}
}

func defaultAsset() Asset {
	return Asset{
		ExpectedReturnRate: defaultReturnRate,
		IsTaxable:          true,
	}
}

func defaultPension() Pension {
	return Pension{IsInflationAdjusted: true}
}

func defaultSimulationInput() SimulationInput {
	return SimulationInput{
		ExchangeRateUSDJPY: defaultExchangeRate,
		InflationRateUS:    defaultInflationUS,
		InflationRateJP:    defaultInflationJP,
	}
}

// The alias types below drop the Unmarshal methods so the pre-filled value
// decodes without recursing.

func (p *Profile) UnmarshalJSON(data []byte) error {
	type profile Profile
	tmp := profile(defaultProfile())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*p = Profile(tmp)
	return nil
}

func (p *Profile) UnmarshalYAML(value *yaml.Node) error {
	type profile Profile
	tmp := profile(defaultProfile())
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*p = Profile(tmp)
	return nil
}

func (a *Asset) UnmarshalJSON(data []byte) error {
	type asset Asset
	tmp := asset(defaultAsset())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*a = Asset(tmp)
	return nil
}

func (a *Asset) UnmarshalYAML(value *yaml.Node) error {
	type asset Asset
	tmp := asset(defaultAsset())
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*a = Asset(tmp)
	return nil
}

func (p *Pension) UnmarshalJSON(data []byte) error {
	type pension Pension
	tmp := pension(defaultPension())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*p = Pension(tmp)
	return nil
}

func (p *Pension) UnmarshalYAML(value *yaml.Node) error {
	type pension Pension
	tmp := pension(defaultPension())
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*p = Pension(tmp)
	return nil
}

func (in *SimulationInput) UnmarshalJSON(data []byte) error {
	type simulationInput SimulationInput
	tmp := simulationInput(defaultSimulationInput())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*in = SimulationInput(tmp)
	return nil
}

func (in *SimulationInput) UnmarshalYAML(value *yaml.Node) error {
	type simulationInput SimulationInput
	tmp := simulationInput(defaultSimulationInput())
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*in = SimulationInput(tmp)
	return nil
}
