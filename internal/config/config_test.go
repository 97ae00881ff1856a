package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pv-speicher/internal/analysis"
	"pv-speicher/internal/model"
	"pv-speicher/internal/simulation"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_MergesBatteryFileAndResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data/h0.json", "[]")
	writeFile(t, dir, "data/pvgis.json", "{}")
	writeFile(t, dir, "batteries/nmc.yaml", `
battery:
  name: "home_nmc_10"
  manufacturer: "Example"
  chemistry: "NMC"
  roundtrip_efficiency: 0.92
  depth_of_discharge: 0.95
  cycle_life_80pct: 4000
  calendar_life_years: 12
`)
	path := writeFile(t, dir, "config.yaml", `
battery_file: "batteries/nmc.yaml"
battery:
  roundtrip_efficiency: 0.9
household:
  annual_consumption_kwh: 4500
  pv:
    size_kwp: 9.9
    tilt_deg: 35
    azimuth_deg: 180
sources:
  load_profile: "data/h0.json"
  pvgis: "data/pvgis.json"
scenarios:
  sizes_kwh: [0, 10]
  comparison: "technicalLifetime"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data/h0.json"), cfg.Sources.LoadProfile)
	assert.Equal(t, filepath.Join(dir, "data/pvgis.json"), cfg.Sources.PVGIS)
	assert.Equal(t, []float64{0, 10}, cfg.Scenarios.SizesKWh)
	assert.Equal(t, "3", cfg.Scenarios.PriceGrowth)
	assert.Equal(t, simulation.CompareTechnicalLifetime, cfg.ComparisonMode())

	spec, err := cfg.Battery.ToModelSpec()
	require.NoError(t, err)
	assert.Equal(t, "home_nmc_10", spec.Name)
	assert.Equal(t, model.ChemistryNMC, spec.Chemistry)
	assert.Equal(t, 0.9, spec.RoundTripEfficiency)
	assert.Equal(t, 0.95, spec.DepthOfDischarge)
	assert.Equal(t, 4000, spec.CycleLife80Pct)
	assert.Equal(t, 12.0, spec.CalendarLifeYears)

	in := cfg.Inputs(spec)
	assert.Equal(t, 4500.0, in.AnnualConsumptionKWh)
	assert.Equal(t, 9.9, in.PV.SizeKWp)

	opts, err := cfg.ComparisonOptions(spec)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10}, opts.SizesKWh)
	assert.Equal(t, spec, opts.Battery)
	assert.Equal(t, simulation.CompareTechnicalLifetime, opts.Mode)
	assert.Equal(t, "3", opts.PriceGrowth.ID)
	assert.Equal(t, "0.32", opts.Economics.ElectricityPriceEURPerKWh.String())
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
household:
  annual_consumption_kwh: 3000
  pv:
    size_kwp: 6
sources:
  load_profile: "/abs/h0.json"
  pvgis: "/abs/pvgis.json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, analysis.DefaultSizesKWh, cfg.Scenarios.SizesKWh)
	assert.Equal(t, simulation.Compare15Years, cfg.ComparisonMode())
	assert.Equal(t, "/abs/h0.json", cfg.Sources.LoadProfile)

	spec, err := cfg.Battery.ToModelSpec()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultBatterySpec(), spec)
}

func TestLoad_Invalid(t *testing.T) {
	base := `
household:
  annual_consumption_kwh: 3000
  pv:
    size_kwp: 6
sources:
  load_profile: "h0.json"
  pvgis: "pvgis.json"
`
	cases := map[string]string{
		"missing sources":    "household:\n  annual_consumption_kwh: 3000\n  pv:\n    size_kwp: 6\n",
		"unknown chemistry":  base + "battery:\n  chemistry: \"Lead\"\n",
		"unknown preset":     base + "battery:\n  preset: \"nope\"\n",
		"zero consumption":   "household:\n  pv:\n    size_kwp: 6\nsources:\n  load_profile: a\n  pvgis: b\n",
		"unknown growth":     base + "scenarios:\n  price_growth: \"9\"\n",
		"unknown comparison": base + "scenarios:\n  comparison: \"20\"\n",
		"negative size":      base + "scenarios:\n  sizes_kwh: [-5]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yaml", body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingBatteryFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "battery_file: \"missing.yaml\"\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestMergeBattery(t *testing.T) {
	base := BatteryConfig{Name: "a", Chemistry: "NMC", CycleLife80Pct: 4000}
	got := MergeBattery(base, BatteryConfig{Name: "b", DepthOfDischarge: 0.8})
	assert.Equal(t, BatteryConfig{Name: "b", Chemistry: "NMC", CycleLife80Pct: 4000, DepthOfDischarge: 0.8}, got)
}

func TestBatteryConfig_NMCPreset(t *testing.T) {
	spec, err := BatteryConfig{Preset: model.NMCPresetName, Name: "roof_nmc"}.ToModelSpec()
	require.NoError(t, err)
	want := model.NMCBatterySpec()
	want.Name = "roof_nmc"
	assert.Equal(t, want, spec)
}
