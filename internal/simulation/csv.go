package simulation

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

var ledgerHeader = []string{
	"hour",
	"load_kwh",
	"pv_kwh",
	"direct_use_kwh",
	"action",
	"charged_kwh",
	"discharged_kwh",
	"grid_import_kwh",
	"feed_in_kwh",
	"soc_start",
	"soc_end",
}

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeLedgerCSV(f, ledger)
}

func EncodeLedgerCSV(out io.Writer, ledger []LedgerRow) error {
	w := csv.NewWriter(out)
	if err := w.Write(ledgerHeader); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Hour),
			fmtFloat(r.LoadKWh),
			fmtFloat(r.PVKWh),
			fmtFloat(r.DirectUseKWh),
			string(r.Action),
			fmtFloat(r.ChargedKWh),
			fmtFloat(r.DischargedKWh),
			fmtFloat(r.GridImportKWh),
			fmtFloat(r.FeedInKWh),
			fmtFloat(r.SOCStart),
			fmtFloat(r.SOCEnd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
