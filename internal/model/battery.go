package model

import (
	"fmt"
	"sort"
)

// Chemistry is the cell chemistry of a battery model. The set is closed:
// a spec with any other chemistry does not validate.
type Chemistry string

const (
	ChemistryLFP Chemistry = "LiFePO4"
	ChemistryNMC Chemistry = "NMC"
)

func (c Chemistry) Valid() bool {
	switch c {
	case ChemistryLFP, ChemistryNMC:
		return true
	default:
		return false
	}
}

// BatterySpec describes a battery model. It is built once (preset, config or
// request) and only read afterwards.
// Units:
// - RoundTripEfficiency: fraction (0,1]
// - DepthOfDischarge: usable fraction of nameplate capacity (0,1]
// - CycleLife80Pct: full-equivalent cycles until 80% remaining capacity
// - CalendarLifeYears: years
type BatterySpec struct {
	Name                string
	Manufacturer        string
	Chemistry           Chemistry
	RoundTripEfficiency float64
	DepthOfDischarge    float64
	CycleLife80Pct      int
	CalendarLifeYears   float64
}

// DefaultPresetName names the built-in reference model.
const DefaultPresetName = "generic_lfp"

// DefaultBatterySpec is a conservative LiFePO4 baseline. It is a calculation
// reference, not a warranty figure.
func DefaultBatterySpec() BatterySpec {
	return BatterySpec{
		Name:                DefaultPresetName,
		Manufacturer:        "Generic LFP",
		Chemistry:           ChemistryLFP,
		RoundTripEfficiency: 0.94,
		DepthOfDischarge:    0.9,
		CycleLife80Pct:      6000,
		CalendarLifeYears:   15,
	}
}

// NMCPresetName names the built-in high-DoD NMC reference model.
const NMCPresetName = "generic_nmc"

// NMCBatterySpec trades cycle and calendar life for a deeper usable window.
func NMCBatterySpec() BatterySpec {
	return BatterySpec{
		Name:                NMCPresetName,
		Manufacturer:        "Generic NMC",
		Chemistry:           ChemistryNMC,
		RoundTripEfficiency: 0.92,
		DepthOfDischarge:    0.95,
		CycleLife80Pct:      4000,
		CalendarLifeYears:   12,
	}
}

var presets = map[string]func() BatterySpec{
	DefaultPresetName: DefaultBatterySpec,
	NMCPresetName:     NMCBatterySpec,
}

// Preset returns a built-in spec by name.
func Preset(name string) (BatterySpec, error) {
	mk, ok := presets[name]
	if !ok {
		return BatterySpec{}, fmt.Errorf("%w: unknown battery preset %q", ErrInvalidParameter, name)
	}
	return mk(), nil
}

// Presets lists the built-in specs ordered by name.
func Presets() []BatterySpec {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]BatterySpec, 0, len(names))
	for _, n := range names {
		out = append(out, presets[n]())
	}
	return out
}

func (s BatterySpec) Validate() error {
	if !s.Chemistry.Valid() {
		return fmt.Errorf("%w: unsupported battery chemistry %q", ErrInvalidParameter, s.Chemistry)
	}
	if !IsFinite(s.RoundTripEfficiency) || s.RoundTripEfficiency <= 0 || s.RoundTripEfficiency > 1 {
		return fmt.Errorf("%w: RoundTripEfficiency must be in (0, 1], got %g", ErrInvalidParameter, s.RoundTripEfficiency)
	}
	if !IsFinite(s.DepthOfDischarge) || s.DepthOfDischarge <= 0 || s.DepthOfDischarge > 1 {
		return fmt.Errorf("%w: DepthOfDischarge must be in (0, 1], got %g", ErrInvalidParameter, s.DepthOfDischarge)
	}
	if s.CycleLife80Pct <= 0 {
		return fmt.Errorf("%w: CycleLife80Pct must be > 0, got %d", ErrInvalidParameter, s.CycleLife80Pct)
	}
	if !IsFinite(s.CalendarLifeYears) || s.CalendarLifeYears <= 0 {
		return fmt.Errorf("%w: CalendarLifeYears must be > 0, got %g", ErrInvalidParameter, s.CalendarLifeYears)
	}
	return nil
}

// UsableCapacityKWh converts a nameplate capacity into the capacity the
// simulator may cycle.
func (s BatterySpec) UsableCapacityKWh(nominalKWh float64) float64 {
	return nominalKWh * s.DepthOfDischarge
}

// Clamp01 bounds x to [0,1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
