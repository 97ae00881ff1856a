package model

// Action is a human-friendly operating mode for one simulated hour.
// Keep these values stable; they are intended for CSV/XLSX output.
type Action string

const (
	ActionCharging    Action = "CHARGING"
	ActionIdle        Action = "IDLE"
	ActionDischarging Action = "DISCHARGING"
)

// ActionFromFlow classifies an hour by its battery flows. Within one hour the
// battery either charges from surplus or discharges into a deficit, never both.
func ActionFromFlow(chargedKWh, dischargedKWh float64) Action {
	switch {
	case chargedKWh > 0:
		return ActionCharging
	case dischargedKWh > 0:
		return ActionDischarging
	default:
		return ActionIdle
	}
}
