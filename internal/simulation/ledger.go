package simulation

import "pv-speicher/internal/model"

// LedgerRow is one simulated hour.
// This is the primary artifact for "what happened" in a simulation.
type LedgerRow struct {
	Hour int

	LoadKWh      float64
	PVKWh        float64
	DirectUseKWh float64

	Action model.Action

	ChargedKWh    float64
	DischargedKWh float64

	GridImportKWh float64
	FeedInKWh     float64

	SOCStart float64
	SOCEnd   float64
}

type Result struct {
	Ledger  []LedgerRow
	Summary model.BatterySimulationResult
	Balance model.AnnualBalance

	UsableCapacityKWh float64
	Battery           model.BatterySpec
}
