package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pv-speicher/internal/model"
)

func TestAggregateMultiYear_EmptyProjection(t *testing.T) {
	growth, err := PriceGrowthByID("6")
	require.NoError(t, err)
	params := DefaultEconomicParams().WithPriceGrowth(growth)

	got := AggregateMultiYear(model.AnnualBalance{LoadKWh: 4500, PVKWh: 9000, SelfConsumptionKWh: 3000}, 15, params)
	assert.NotNil(t, got.Scenarios)
	assert.Empty(t, got.Scenarios)
	assert.True(t, got.TotalSavingsEUR.IsZero())
	assert.True(t, got.NPVEUR.IsZero())
}

func TestResolveHorizon(t *testing.T) {
	lc := model.LifecycleResult{EffectiveLifetimeYears: 12.3}

	n, err := ResolveHorizon(Compare10Years, lc)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = ResolveHorizon(Compare15Years, lc)
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	n, err = ResolveHorizon(CompareTechnicalLifetime, lc)
	require.NoError(t, err)
	assert.Equal(t, 13, n)

	n, err = ResolveHorizon(CompareTechnicalLifetime, model.LifecycleResult{EffectiveLifetimeYears: 15})
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	_, err = ResolveHorizon(CompareTechnicalLifetime, model.LifecycleResult{})
	assert.ErrorIs(t, err, model.ErrInvalidParameter)

	_, err = ResolveHorizon("20", lc)
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}

func TestPriceGrowthScenarios(t *testing.T) {
	all := PriceGrowthScenarios()
	require.Len(t, all, 3)
	assert.Equal(t, "0", all[0].ID)

	s, err := PriceGrowthByID("6")
	require.NoError(t, err)
	assert.Equal(t, "0.06", s.Rate.String())

	_, err = PriceGrowthByID("9")
	assert.ErrorIs(t, err, model.ErrInvalidParameter)

	// Callers get a copy.
	all[0].ID = "x"
	assert.Equal(t, "0", PriceGrowthScenarios()[0].ID)
}

func TestDefaultEconomicParams(t *testing.T) {
	p := DefaultEconomicParams()
	assert.Equal(t, "0.32", p.ElectricityPriceEURPerKWh.String())
	assert.Equal(t, "0.082", p.FeedInTariffEURPerKWh.String())
	assert.Equal(t, 15, p.BatteryLifetimeYears)
	assert.Equal(t, "0.03", p.AnnualPriceIncrease.String())
}

func TestEconomicParams_WithPriceGrowth(t *testing.T) {
	flat, err := PriceGrowthByID("0")
	require.NoError(t, err)

	base := DefaultEconomicParams()
	p := base.WithPriceGrowth(flat)
	assert.True(t, p.AnnualPriceIncrease.IsZero())
	assert.True(t, p.ElectricityPriceEURPerKWh.Equal(base.ElectricityPriceEURPerKWh))
	assert.Equal(t, "0.03", base.AnnualPriceIncrease.String())
}
