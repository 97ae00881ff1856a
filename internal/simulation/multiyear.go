package simulation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"pv-speicher/internal/model"
)

// EconomicParams are the market assumptions of a multi-year comparison.
type EconomicParams struct {
	ElectricityPriceEURPerKWh decimal.Decimal
	FeedInTariffEURPerKWh     decimal.Decimal
	AnnualPriceIncrease       decimal.Decimal
	AnnualDegradation         decimal.Decimal
	BatteryLifetimeYears      int
	DiscountRate              decimal.Decimal
}

// DefaultEconomicParams are the market assumptions used when a comparison
// configures nothing else.
func DefaultEconomicParams() EconomicParams {
	return EconomicParams{
		ElectricityPriceEURPerKWh: decimal.RequireFromString("0.32"),
		FeedInTariffEURPerKWh:     decimal.RequireFromString("0.082"),
		AnnualPriceIncrease:       decimal.RequireFromString("0.03"),
		AnnualDegradation:         decimal.RequireFromString("0.02"),
		BatteryLifetimeYears:      15,
		DiscountRate:              decimal.RequireFromString("0.03"),
	}
}

// WithPriceGrowth returns p with the price escalation of the chosen scenario.
func (p EconomicParams) WithPriceGrowth(s PriceGrowthScenario) EconomicParams {
	p.AnnualPriceIncrease = s.Rate
	return p
}

// PriceGrowthScenario is one electricity price trajectory offered for comparison.
type PriceGrowthScenario struct {
	ID    string
	Label string
	Rate  decimal.Decimal
}

var priceGrowthScenarios = []PriceGrowthScenario{
	{ID: "0", Label: "0 % per year", Rate: decimal.Zero},
	{ID: "3", Label: "+3 % per year", Rate: decimal.RequireFromString("0.03")},
	{ID: "6", Label: "+6 % per year", Rate: decimal.RequireFromString("0.06")},
}

// PriceGrowthScenarios lists the offered scenarios in display order.
func PriceGrowthScenarios() []PriceGrowthScenario {
	out := make([]PriceGrowthScenario, len(priceGrowthScenarios))
	copy(out, priceGrowthScenarios)
	return out
}

func PriceGrowthByID(id string) (PriceGrowthScenario, error) {
	for _, s := range priceGrowthScenarios {
		if s.ID == id {
			return s, nil
		}
	}
	return PriceGrowthScenario{}, fmt.Errorf("%w: unknown price growth scenario %q", model.ErrInvalidParameter, id)
}

// ComparisonMode selects the horizon a multi-year comparison runs over.
type ComparisonMode string

const (
	Compare10Years ComparisonMode = "10"
	Compare15Years ComparisonMode = "15"
	// CompareTechnicalLifetime runs each scenario over its own effective lifetime.
	CompareTechnicalLifetime ComparisonMode = "technicalLifetime"
)

// ResolveHorizon returns the number of projected years for a scenario.
// Technical lifetimes are rounded up to whole years.
func ResolveHorizon(mode ComparisonMode, lc model.LifecycleResult) (int, error) {
	switch mode {
	case Compare10Years:
		return 10, nil
	case Compare15Years:
		return 15, nil
	case CompareTechnicalLifetime:
		if !model.IsFinite(lc.EffectiveLifetimeYears) || lc.EffectiveLifetimeYears <= 0 {
			return 0, fmt.Errorf("%w: effective lifetime must be > 0, got %g", model.ErrInvalidParameter, lc.EffectiveLifetimeYears)
		}
		return int(math.Ceil(lc.EffectiveLifetimeYears)), nil
	default:
		return 0, fmt.Errorf("%w: unknown comparison mode %q", model.ErrInvalidParameter, mode)
	}
}

// AggregateMultiYear projects one simulated year over a horizon of years
// under the given market assumptions.
//
// TODO: degradation curve, price compounding and NPV discounting are not
// specified yet; until product defines them this returns an empty projection.
func AggregateMultiYear(annual model.AnnualBalance, years int, params EconomicParams) model.MultiYearAggregationResult {
	_, _, _ = annual, years, params
	return model.MultiYearAggregationResult{
		Scenarios:       []model.MultiYearScenario{},
		TotalSavingsEUR: decimal.Zero,
		NPVEUR:          decimal.Zero,
	}
}
