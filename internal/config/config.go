package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pv-speicher/internal/analysis"
	"pv-speicher/internal/model"
	"pv-speicher/internal/simulation"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load battery parameters from a separate YAML (e.g. examples/batteries/*.yaml).
	// If both BatteryFile and Battery are provided, Battery overrides BatteryFile.
	BatteryFile string          `yaml:"battery_file"`
	Battery     BatteryConfig   `yaml:"battery"`
	Household   HouseholdConfig `yaml:"household"`
	Sources     SourcesConfig   `yaml:"sources"`
	Scenarios   ScenariosConfig `yaml:"scenarios"`
}

type BatteryConfig struct {
	// Preset names the built-in spec the other fields overlay (default generic_lfp).
	Preset              string  `yaml:"preset"`
	Name                string  `yaml:"name"`
	Manufacturer        string  `yaml:"manufacturer"`
	Chemistry           string  `yaml:"chemistry"`
	RoundTripEfficiency float64 `yaml:"roundtrip_efficiency"`
	DepthOfDischarge    float64 `yaml:"depth_of_discharge"`
	CycleLife80Pct      int     `yaml:"cycle_life_80pct"`
	CalendarLifeYears   float64 `yaml:"calendar_life_years"`
}

type HouseholdConfig struct {
	AnnualConsumptionKWh float64  `yaml:"annual_consumption_kwh"`
	PV                   PVConfig `yaml:"pv"`
}

type PVConfig struct {
	SizeKWp    float64 `yaml:"size_kwp"`
	TiltDeg    float64 `yaml:"tilt_deg"`
	AzimuthDeg float64 `yaml:"azimuth_deg"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
}

// SourcesConfig points at the stored inputs. Relative paths are resolved
// against the config file directory.
type SourcesConfig struct {
	LoadProfile string `yaml:"load_profile"`
	PVGIS       string `yaml:"pvgis"`
}

type ScenariosConfig struct {
	SizesKWh    []float64 `yaml:"sizes_kwh"`
	PriceGrowth string    `yaml:"price_growth"`
	Comparison  string    `yaml:"comparison"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	// If battery_file is set, load it and merge in any explicit overrides from c.Battery.
	if c.BatteryFile != "" {
		loaded, err := LoadBatteryFile(resolve(dir, c.BatteryFile))
		if err != nil {
			return nil, err
		}
		c.Battery = MergeBattery(loaded, c.Battery)
	}
	c.Sources.LoadProfile = resolve(dir, c.Sources.LoadProfile)
	c.Sources.PVGIS = resolve(dir, c.Sources.PVGIS)
	return &c, nil
}

// resolve prefers interpreting relative paths as relative to the config file
// directory, but falls back to the provided path (relative to cwd) if that
// doesn't exist.
func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	cand := filepath.Join(dir, p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}

func (c *Config) applyDefaults() {
	if len(c.Scenarios.SizesKWh) == 0 {
		c.Scenarios.SizesKWh = append([]float64(nil), analysis.DefaultSizesKWh...)
	}
	if c.Scenarios.PriceGrowth == "" {
		c.Scenarios.PriceGrowth = "3"
	}
	if c.Scenarios.Comparison == "" {
		c.Scenarios.Comparison = string(simulation.Compare15Years)
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Sources.LoadProfile == "" {
		return errors.New("sources.load_profile is required")
	}
	if c.Sources.PVGIS == "" {
		return errors.New("sources.pvgis is required")
	}
	spec, err := c.Battery.ToModelSpec()
	if err != nil {
		return fmt.Errorf("battery config invalid: %w", err)
	}
	in := c.Inputs(spec)
	if err := in.Validate(); err != nil {
		return fmt.Errorf("household config invalid: %w", err)
	}
	if _, err := simulation.PriceGrowthByID(c.Scenarios.PriceGrowth); err != nil {
		return fmt.Errorf("scenarios config invalid: %w", err)
	}
	if _, err := simulation.ResolveHorizon(c.ComparisonMode(), model.LifecycleResult{EffectiveLifetimeYears: spec.CalendarLifeYears}); err != nil {
		return fmt.Errorf("scenarios config invalid: %w", err)
	}
	return nil
}

// Inputs assembles the model inputs of this config around an already built spec.
func (c *Config) Inputs(spec model.BatterySpec) model.SimulationInputs {
	return model.SimulationInputs{
		AnnualConsumptionKWh: c.Household.AnnualConsumptionKWh,
		PV: model.PVSystem{
			SizeKWp:    c.Household.PV.SizeKWp,
			TiltDeg:    c.Household.PV.TiltDeg,
			AzimuthDeg: c.Household.PV.AzimuthDeg,
			Latitude:   c.Household.PV.Latitude,
			Longitude:  c.Household.PV.Longitude,
		},
		Battery:         spec,
		NominalSizesKWh: c.Scenarios.SizesKWh,
	}
}

func (c *Config) ComparisonMode() simulation.ComparisonMode {
	return simulation.ComparisonMode(c.Scenarios.Comparison)
}

// ComparisonOptions builds the size comparison this config describes.
func (c *Config) ComparisonOptions(spec model.BatterySpec) (analysis.Options, error) {
	growth, err := simulation.PriceGrowthByID(c.Scenarios.PriceGrowth)
	if err != nil {
		return analysis.Options{}, err
	}
	return analysis.Options{
		SizesKWh:    c.Scenarios.SizesKWh,
		Battery:     spec,
		Mode:        c.ComparisonMode(),
		PriceGrowth: growth,
		Economics:   simulation.DefaultEconomicParams(),
	}, nil
}

// ToModelSpec overlays the configured fields onto the selected preset and
// validates the result.
func (b BatteryConfig) ToModelSpec() (model.BatterySpec, error) {
	preset := b.Preset
	if preset == "" {
		preset = model.DefaultPresetName
	}
	base, err := model.Preset(preset)
	if err != nil {
		return model.BatterySpec{}, err
	}
	if b.Name != "" {
		base.Name = b.Name
	}
	if b.Manufacturer != "" {
		base.Manufacturer = b.Manufacturer
	}
	if b.Chemistry != "" {
		base.Chemistry = model.Chemistry(b.Chemistry)
	}
	if b.RoundTripEfficiency != 0 {
		base.RoundTripEfficiency = b.RoundTripEfficiency
	}
	if b.DepthOfDischarge != 0 {
		base.DepthOfDischarge = b.DepthOfDischarge
	}
	if b.CycleLife80Pct != 0 {
		base.CycleLife80Pct = b.CycleLife80Pct
	}
	if b.CalendarLifeYears != 0 {
		base.CalendarLifeYears = b.CalendarLifeYears
	}
	if err := base.Validate(); err != nil {
		return model.BatterySpec{}, err
	}
	return base, nil
}

type batteryFileWrapper struct {
	Battery BatteryConfig `yaml:"battery"`
}

// LoadBatteryFile reads a manufacturer battery file (a `battery:` block).
func LoadBatteryFile(path string) (BatteryConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BatteryConfig{}, err
	}
	var w batteryFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return BatteryConfig{}, err
	}
	return w.Battery, nil
}

// MergeBattery overlays non-zero fields from override onto base.
// This is used when loading a battery file and then applying overrides from the config.
func MergeBattery(base, override BatteryConfig) BatteryConfig {
	out := base
	if override.Preset != "" {
		out.Preset = override.Preset
	}
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Manufacturer != "" {
		out.Manufacturer = override.Manufacturer
	}
	if override.Chemistry != "" {
		out.Chemistry = override.Chemistry
	}
	if override.RoundTripEfficiency != 0 {
		out.RoundTripEfficiency = override.RoundTripEfficiency
	}
	if override.DepthOfDischarge != 0 {
		out.DepthOfDischarge = override.DepthOfDischarge
	}
	if override.CycleLife80Pct != 0 {
		out.CycleLife80Pct = override.CycleLife80Pct
	}
	if override.CalendarLifeYears != 0 {
		out.CalendarLifeYears = override.CalendarLifeYears
	}
	return out
}
