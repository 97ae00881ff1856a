package main

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pv-speicher/internal/model"
)

const exampleConfig = "../../examples/config.yaml"

func TestPrepare_ExampleConfig(t *testing.T) {
	cfg, spec, series, err := prepare(context.Background(), exampleConfig)
	require.NoError(t, err)

	assert.Equal(t, model.DefaultPresetName, spec.Name)
	assert.Equal(t, []float64{0, 5, 7.5, 10}, cfg.Scenarios.SizesKWh)
	require.Len(t, series.Load, model.HoursPerYear)
	require.Len(t, series.PV, model.HoursPerYear)
	assert.InDelta(t, cfg.Household.AnnualConsumptionKWh, series.Load.Sum(), 1e-3)
	assert.Greater(t, series.PV.Sum(), 0.0)
}

func TestApp_Simulate(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out", "ledger.csv")
	xlsxPath := filepath.Join(dir, "out", "ledger.xlsx")

	err := newApp().Run([]string{"speicher", "--log-level", "error",
		"simulate", "--config", exampleConfig, "--size", "5", "--out", csvPath, "--xlsx", xlsxPath})
	require.NoError(t, err)

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	lines := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines++
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, model.HoursPerYear+1, lines)

	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestApp_Compare(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		t.Run(format, func(t *testing.T) {
			err := newApp().Run([]string{"speicher", "--log-level", "error",
				"compare", "--config", exampleConfig, "--output", format})
			assert.NoError(t, err)
		})
	}

	err := newApp().Run([]string{"speicher", "--log-level", "error",
		"compare", "--config", exampleConfig, "--output", "yaml"})
	assert.Error(t, err)
}

func TestApp_Presets(t *testing.T) {
	assert.NoError(t, newApp().Run([]string{"speicher", "presets"}))
}

func TestApp_MissingConfig(t *testing.T) {
	err := newApp().Run([]string{"speicher", "--log-level", "error",
		"simulate", "--config", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}
