package simulation

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// BuildLedgerXLSX renders a workbook with a summary sheet and the hourly ledger.
func BuildLedgerXLSX(res *Result) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("result is nil")
	}
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	hourlySheet := "hourly"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(hourlySheet); err != nil {
		return nil, err
	}

	summary := [][]interface{}{
		{"Battery Simulation"},
		{},
		{"Battery", res.Battery.Name},
		{"Chemistry", string(res.Battery.Chemistry)},
		{"Round-trip efficiency", res.Battery.RoundTripEfficiency},
		{"Usable capacity (kWh)", res.UsableCapacityKWh},
		{"Charged (kWh)", res.Summary.TotalChargedKWh},
		{"Discharged (kWh)", res.Summary.TotalDischargedKWh},
		{"Cycles per year", res.Summary.CyclesPerYear},
		{"Self-consumption with storage (kWh)", res.Summary.SelfConsumptionWithStorageKWh},
		{"Load (kWh)", res.Balance.LoadKWh},
		{"PV (kWh)", res.Balance.PVKWh},
		{"Grid import (kWh)", res.Balance.GridImportKWh},
		{"Feed-in (kWh)", res.Balance.FeedInKWh},
		{"Self-consumption rate (%)", res.Balance.SelfConsumptionRate()},
		{"Autarky rate (%)", res.Balance.AutarkyRate()},
	}
	for i, row := range summary {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return nil, err
		}
	}

	header := make([]interface{}, len(ledgerHeader))
	for i, h := range ledgerHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(hourlySheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, r := range res.Ledger {
		row := []interface{}{
			r.Hour,
			r.LoadKWh,
			r.PVKWh,
			r.DirectUseKWh,
			string(r.Action),
			r.ChargedKWh,
			r.DischargedKWh,
			r.GridImportKWh,
			r.FeedInKWh,
			r.SOCStart,
			r.SOCEnd,
		}
		if err := f.SetSheetRow(hourlySheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WriteLedgerXLSX(path string, res *Result) error {
	raw, err := BuildLedgerXLSX(res)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
