package simulation

import (
	"pv-speicher/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes the battery simulation and keeps a per-hour ledger. Its
// summary is identical to SimulateBattery for the same inputs.
func (e *Engine) Run(load, pv model.HourlySeries, usableCapacityKWh float64, spec model.BatterySpec) (*Result, error) {
	ledger := make([]LedgerRow, 0, model.HoursPerYear)
	summary, err := simulate(load, pv, usableCapacityKWh, spec, func(h int, f hourFlow) {
		ledger = append(ledger, LedgerRow{
			Hour: h,

			LoadKWh:      f.LoadKWh,
			PVKWh:        f.PVKWh,
			DirectUseKWh: f.DirectUseKWh,

			Action: model.ActionFromFlow(f.ChargedKWh, f.DischargedKWh),

			ChargedKWh:    f.ChargedKWh,
			DischargedKWh: f.DischargedKWh,

			GridImportKWh: f.GridImportKWh,
			FeedInKWh:     f.FeedInKWh,

			SOCStart: f.SOCStart,
			SOCEnd:   f.SOCEnd,
		})
	})
	if err != nil {
		return nil, err
	}

	balance, err := BalanceWithStorage(load, pv, summary)
	if err != nil {
		return nil, err
	}

	return &Result{
		Ledger:            ledger,
		Summary:           summary,
		Balance:           balance,
		UsableCapacityKWh: usableCapacityKWh,
		Battery:           spec,
	}, nil
}
