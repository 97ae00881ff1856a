// Package analysis compares battery sizes for one household by running the
// simulation core once per size.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"pv-speicher/internal/model"
	"pv-speicher/internal/profile"
	"pv-speicher/internal/simulation"
)

// DefaultSizesKWh are the storage scenarios offered by default: none, 5, 7.5 and 10 kWh.
var DefaultSizesKWh = []float64{0, 5, 7.5, 10}

// ScenarioResult is the outcome of one battery size.
type ScenarioResult struct {
	NominalKWh float64
	UsableKWh  float64

	// Simulation is zero for the no-storage scenario.
	Simulation model.BatterySimulationResult
	Balance    model.AnnualBalance
	Lifecycle  model.LifecycleResult

	// AdditionalSelfConsumptionKWh is the gain over the no-storage baseline.
	AdditionalSelfConsumptionKWh float64

	HorizonYears int
	Projection   model.MultiYearAggregationResult
}

// HasStorage reports whether the scenario includes a battery.
func (s ScenarioResult) HasStorage() bool { return s.NominalKWh > 0 }

// Options select what one comparison run simulates and projects.
type Options struct {
	// SizesKWh are nameplate capacities; 0 is the no-storage scenario.
	SizesKWh []float64
	Battery  model.BatterySpec
	Mode     simulation.ComparisonMode

	PriceGrowth simulation.PriceGrowthScenario
	// Economics are overlaid with PriceGrowth before projection.
	Economics simulation.EconomicParams
}

// Report bundles every scenario of one comparison run.
type Report struct {
	ID        string
	CreatedAt time.Time

	Battery     model.BatterySpec
	Mode        simulation.ComparisonMode
	PriceGrowth simulation.PriceGrowthScenario
	Economics   simulation.EconomicParams

	Load     SeriesStats
	PV       SeriesStats
	Baseline model.AnnualBalance

	// Scenarios are in the order the sizes were given.
	Scenarios []ScenarioResult
}

// CompareScenarios simulates every nominal size in parallel. The simulator
// cycles size × depth of discharge.
func CompareScenarios(ctx context.Context, series profile.Series, opts Options) (*Report, error) {
	if len(opts.SizesKWh) == 0 {
		return nil, fmt.Errorf("%w: no battery sizes to compare", model.ErrInvalidParameter)
	}
	if err := opts.Battery.Validate(); err != nil {
		return nil, err
	}
	growth, err := simulation.PriceGrowthByID(opts.PriceGrowth.ID)
	if err != nil {
		return nil, err
	}
	econ := opts.Economics.WithPriceGrowth(growth)

	baseline, err := simulation.BalanceWithoutStorage(series.Load, series.PV)
	if err != nil {
		return nil, err
	}

	out := make([]ScenarioResult, len(opts.SizesKWh))
	g, gctx := errgroup.WithContext(ctx)
	for i, size := range opts.SizesKWh {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := runScenario(series, size, opts.Battery, opts.Mode, econ, baseline)
			if err != nil {
				return fmt.Errorf("scenario %g kWh: %w", size, err)
			}
			log.Debug().
				Float64("nominal_kwh", size).
				Float64("self_consumption_kwh", r.Balance.SelfConsumptionKWh).
				Float64("cycles_per_year", r.Simulation.CyclesPerYear).
				Str("limiting_factor", string(r.Lifecycle.LimitingFactor)).
				Msg("scenario simulated")
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Battery:     opts.Battery,
		Mode:        opts.Mode,
		PriceGrowth: growth,
		Economics:   econ,
		Load:        ComputeStats(series.Load),
		PV:          ComputeStats(series.PV),
		Baseline:    baseline,
		Scenarios:   out,
	}, nil
}

func runScenario(series profile.Series, nominalKWh float64, spec model.BatterySpec, mode simulation.ComparisonMode, econ simulation.EconomicParams, baseline model.AnnualBalance) (ScenarioResult, error) {
	if !model.IsFinite(nominalKWh) || nominalKWh < 0 {
		return ScenarioResult{}, fmt.Errorf("%w: battery size must be >= 0 kWh, got %g", model.ErrInvalidParameter, nominalKWh)
	}

	r := ScenarioResult{
		NominalKWh: nominalKWh,
		UsableKWh:  spec.UsableCapacityKWh(nominalKWh),
		Balance:    baseline,
	}
	if r.HasStorage() {
		sim, err := simulation.SimulateBattery(series.Load, series.PV, r.UsableKWh, spec)
		if err != nil {
			return ScenarioResult{}, err
		}
		bal, err := simulation.BalanceWithStorage(series.Load, series.PV, sim)
		if err != nil {
			return ScenarioResult{}, err
		}
		r.Simulation = sim
		r.Balance = bal
		r.AdditionalSelfConsumptionKWh = bal.SelfConsumptionKWh - baseline.SelfConsumptionKWh
	}

	lc, err := simulation.CalculateLifecycle(nominalKWh, r.Simulation.CyclesPerYear, spec)
	if err != nil {
		return ScenarioResult{}, err
	}
	r.Lifecycle = lc

	horizon, err := simulation.ResolveHorizon(mode, lc)
	if err != nil {
		return ScenarioResult{}, err
	}
	r.HorizonYears = horizon
	r.Projection = simulation.AggregateMultiYear(r.Balance, horizon, econ)
	return r, nil
}
