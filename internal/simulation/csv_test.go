package simulation

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pv-speicher/internal/model"
)

func TestEncodeLedgerCSV(t *testing.T) {
	load, pv := dailyScenario()
	res, err := New().Run(load, pv, 5, idealSpec())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeLedgerCSV(&buf, res.Ledger))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, model.HoursPerYear+1)
	assert.Equal(t, ledgerHeader, records[0])
	assert.Equal(t, []string{
		"8", "1.000000", "2.000000", "1.000000", "CHARGING", "1.000000",
		"0.000000", "0.000000", "0.000000", "0.000000", "0.200000",
	}, records[9])
}

func TestWriteLedgerCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	ledger := []LedgerRow{{Hour: 0, LoadKWh: 1, Action: model.ActionIdle}}
	require.NoError(t, WriteLedgerCSV(path, ledger))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "hour,load_kwh")
	assert.Contains(t, string(raw), "IDLE")
}
