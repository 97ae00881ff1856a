package simulation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pv-speicher/internal/model"
)

func TestBuildLedgerXLSX(t *testing.T) {
	load, pv := dailyScenario()
	res, err := New().Run(load, pv, 5, model.DefaultBatterySpec())
	require.NoError(t, err)

	raw, err := BuildLedgerXLSX(res)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPresetName, name)

	rows, err := f.GetRows("hourly")
	require.NoError(t, err)
	require.Len(t, rows, model.HoursPerYear+1)
	assert.Equal(t, "hour", rows[0][0])
	assert.Equal(t, "CHARGING", rows[9][4])
}

func TestBuildLedgerXLSX_NilResult(t *testing.T) {
	_, err := BuildLedgerXLSX(nil)
	assert.Error(t, err)
}
