package simulation

import (
	"fmt"
	"math"

	"pv-speicher/internal/model"
)

// CalculateCyclesPerYear converts discharged energy into full-equivalent cycles.
func CalculateCyclesPerYear(totalDischargedKWh, usableCapacityKWh float64) float64 {
	if usableCapacityKWh <= 0 {
		return 0
	}
	return totalDischargedKWh / usableCapacityKWh
}

// CalculateLifecycle limits the battery life by both calendar aging and cycle
// wear; the shorter one wins. A battery that never cycles ages by calendar only.
func CalculateLifecycle(capacityKWh, cyclesPerYear float64, spec model.BatterySpec) (model.LifecycleResult, error) {
	if !model.IsFinite(capacityKWh) || capacityKWh < 0 {
		return model.LifecycleResult{}, fmt.Errorf("%w: capacity must be >= 0 kWh, got %g", model.ErrInvalidParameter, capacityKWh)
	}
	if !model.IsFinite(cyclesPerYear) || cyclesPerYear < 0 {
		return model.LifecycleResult{}, fmt.Errorf("%w: cycles per year must be >= 0, got %g", model.ErrInvalidParameter, cyclesPerYear)
	}
	if err := spec.Validate(); err != nil {
		return model.LifecycleResult{}, err
	}

	byCalendar := spec.CalendarLifeYears
	byCycles := byCalendar
	if cyclesPerYear > 0 {
		byCycles = float64(spec.CycleLife80Pct) / cyclesPerYear
	}

	limiting := model.LimitingCalendar
	if byCycles < byCalendar {
		limiting = model.LimitingCycles
	}

	return model.LifecycleResult{
		CapacityKWh:             capacityKWh,
		CyclesPerYear:           cyclesPerYear,
		LifetimeByCyclesYears:   byCycles,
		LifetimeByCalendarYears: byCalendar,
		EffectiveLifetimeYears:  math.Min(byCalendar, byCycles),
		LimitingFactor:          limiting,
	}, nil
}
