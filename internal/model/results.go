package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// BatterySimulationResult is the outcome of one hourly battery simulation.
type BatterySimulationResult struct {
	// SOCHourly is the end-of-hour state of charge, fraction of usable capacity [0,1].
	SOCHourly HourlySeries

	// TotalChargedKWh is PV surplus energy drawn into the battery (before losses).
	TotalChargedKWh float64
	// TotalDischargedKWh is energy delivered from the battery to the load.
	TotalDischargedKWh float64

	// CyclesPerYear counts full-equivalent cycles: discharged / usable capacity.
	CyclesPerYear float64

	SelfConsumptionWithStorageKWh float64
}

// LimitingFactor names which aging mechanism ends the battery's life first.
type LimitingFactor string

const (
	LimitingCycles   LimitingFactor = "cycles"
	LimitingCalendar LimitingFactor = "calendar"
)

// LifecycleResult holds the dual-limit lifetime of a battery scenario.
// Values are unrounded; use Rounded for report output.
type LifecycleResult struct {
	CapacityKWh             float64
	CyclesPerYear           float64
	LifetimeByCyclesYears   float64
	LifetimeByCalendarYears float64
	EffectiveLifetimeYears  float64
	LimitingFactor          LimitingFactor
}

// Rounded returns the presentation form used by reports: cycles per year to
// the nearest integer, lifetimes to one decimal place, halves rounded up.
func (r LifecycleResult) Rounded() LifecycleResult {
	out := r
	out.CyclesPerYear = roundHalfUp(r.CyclesPerYear, 0)
	out.LifetimeByCyclesYears = roundHalfUp(r.LifetimeByCyclesYears, 1)
	out.EffectiveLifetimeYears = roundHalfUp(r.EffectiveLifetimeYears, 1)
	return out
}

func roundHalfUp(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(x*p+0.5) / p
}

// AnnualBalance is the yearly energy split of one scenario.
type AnnualBalance struct {
	LoadKWh            float64
	PVKWh              float64
	SelfConsumptionKWh float64
	GridImportKWh      float64
	FeedInKWh          float64
}

// SelfConsumptionRate is the share of PV energy consumed on site, in percent.
func (b AnnualBalance) SelfConsumptionRate() float64 {
	if b.PVKWh <= 0 {
		return 0
	}
	return b.SelfConsumptionKWh / b.PVKWh * 100
}

// AutarkyRate is the share of load covered without the grid, in percent.
func (b AnnualBalance) AutarkyRate() float64 {
	if b.LoadKWh <= 0 {
		return 0
	}
	return b.SelfConsumptionKWh / b.LoadKWh * 100
}

// MultiYearScenario is the economic snapshot of one projected year.
type MultiYearScenario struct {
	Year               int
	SelfConsumptionKWh float64
	GridImportKWh      float64
	FeedInKWh          float64
	SavingsEUR         decimal.Decimal
}

type MultiYearAggregationResult struct {
	Scenarios       []MultiYearScenario
	TotalSavingsEUR decimal.Decimal
	NPVEUR          decimal.Decimal
}
