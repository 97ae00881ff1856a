package simulation

import (
	"fmt"
	"math"

	"pv-speicher/internal/model"
)

// hourFlow captures the energy flows of one simulated hour (kWh).
type hourFlow struct {
	LoadKWh       float64
	PVKWh         float64
	DirectUseKWh  float64
	ChargedKWh    float64 // PV surplus drawn into the battery
	DischargedKWh float64 // delivered from the battery to the load
	GridImportKWh float64
	FeedInKWh     float64
	SOCStart      float64
	SOCEnd        float64
}

// cell is the simulation state: one state-of-charge fraction of usable
// capacity, starting empty.
type cell struct {
	capacityKWh float64
	efficiency  float64
	soc         float64
}

// step advances one hour. Surplus charges first, then a deficit discharges;
// within an hour at most one of the two is non-zero. Round-trip losses are
// taken once, on the way in.
func (c *cell) step(load, pv float64) hourFlow {
	f := hourFlow{
		LoadKWh:      load,
		PVKWh:        pv,
		DirectUseKWh: math.Min(pv, load),
		SOCStart:     c.soc,
	}
	surplus := math.Max(0, pv-load)
	deficit := math.Max(0, load-pv)

	if surplus > 0 {
		headroomKWh := (1 - c.soc) * c.capacityKWh
		charge := math.Min(surplus, headroomKWh/c.efficiency)
		c.soc += charge * c.efficiency / c.capacityKWh
		f.ChargedKWh = charge
	}

	if deficit > 0 && c.soc > 0 {
		available := c.soc * c.capacityKWh
		discharge := math.Min(deficit, available)
		c.soc -= discharge / c.capacityKWh
		f.DischargedKWh = discharge
	}

	c.soc = model.Clamp01(c.soc)
	f.SOCEnd = c.soc
	f.FeedInKWh = surplus - f.ChargedKWh
	f.GridImportKWh = deficit - f.DischargedKWh
	return f
}

// simulate runs the hourly pass and reports every hour to onHour (may be nil).
func simulate(load, pv model.HourlySeries, usableCapacityKWh float64, spec model.BatterySpec, onHour func(h int, f hourFlow)) (model.BatterySimulationResult, error) {
	if err := model.ValidatePair(load, pv); err != nil {
		return model.BatterySimulationResult{}, err
	}
	if !model.IsFinite(usableCapacityKWh) || usableCapacityKWh <= 0 {
		return model.BatterySimulationResult{}, fmt.Errorf("%w: usable capacity must be > 0 kWh, got %g", model.ErrInvalidParameter, usableCapacityKWh)
	}
	if err := spec.Validate(); err != nil {
		return model.BatterySimulationResult{}, err
	}

	c := &cell{capacityKWh: usableCapacityKWh, efficiency: spec.RoundTripEfficiency}
	res := model.BatterySimulationResult{
		SOCHourly: make(model.HourlySeries, model.HoursPerYear),
	}
	for h := 0; h < model.HoursPerYear; h++ {
		f := c.step(load[h], pv[h])
		res.TotalChargedKWh += f.ChargedKWh
		res.TotalDischargedKWh += f.DischargedKWh
		res.SelfConsumptionWithStorageKWh += f.DirectUseKWh + f.DischargedKWh
		res.SOCHourly[h] = f.SOCEnd
		if onHour != nil {
			onHour(h, f)
		}
	}
	res.CyclesPerYear = CalculateCyclesPerYear(res.TotalDischargedKWh, usableCapacityKWh)
	return res, nil
}

// SimulateBattery runs the hour-by-hour charge/discharge simulation over a
// full year. The battery starts empty at hour 0.
func SimulateBattery(load, pv model.HourlySeries, usableCapacityKWh float64, spec model.BatterySpec) (model.BatterySimulationResult, error) {
	return simulate(load, pv, usableCapacityKWh, spec, nil)
}

// BalanceWithStorage derives grid import and feed-in from a simulation result.
func BalanceWithStorage(load, pv model.HourlySeries, res model.BatterySimulationResult) (model.AnnualBalance, error) {
	direct, err := CalculateSelfConsumption(load, pv)
	if err != nil {
		return model.AnnualBalance{}, err
	}
	loadSum, pvSum := load.Sum(), pv.Sum()
	return model.AnnualBalance{
		LoadKWh:            loadSum,
		PVKWh:              pvSum,
		SelfConsumptionKWh: res.SelfConsumptionWithStorageKWh,
		GridImportKWh:      math.Max(0, loadSum-res.SelfConsumptionWithStorageKWh),
		FeedInKWh:          math.Max(0, pvSum-direct-res.TotalChargedKWh),
	}, nil
}
