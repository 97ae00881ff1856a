// Package profile builds the two hourly input series of a simulation: the
// household load scaled from a standard load shape, and the PV yield
// normalized from an external generation model.
package profile

import (
	"fmt"

	"pv-speicher/internal/model"
)

// ReferenceTotalKWh is the annual total the BDEW H0 reference weights sum to (1 GWh).
const ReferenceTotalKWh = 1_000_000

// ScaleLoadProfile scales BDEW reference weights to a household's annual consumption.
func ScaleLoadProfile(weights []float64, annualKWh float64) (model.HourlySeries, error) {
	return ScaleLoadProfileTo(weights, annualKWh, ReferenceTotalKWh)
}

// ScaleLoadProfileTo multiplies every weight by annualKWh/referenceTotal.
// The shape of the profile is kept; only its magnitude changes.
func ScaleLoadProfileTo(weights []float64, annualKWh, referenceTotal float64) (model.HourlySeries, error) {
	ref := model.HourlySeries(weights)
	if err := ref.ValidateLength("reference profile"); err != nil {
		return nil, err
	}
	if !model.IsFinite(annualKWh) || annualKWh <= 0 {
		return nil, fmt.Errorf("%w: annual consumption must be > 0 kWh, got %g", model.ErrInvalidParameter, annualKWh)
	}
	if !model.IsFinite(referenceTotal) || referenceTotal <= 0 {
		return nil, fmt.Errorf("%w: reference total must be > 0, got %g", model.ErrInvalidParameter, referenceTotal)
	}
	if err := ref.ValidateNonNegative("reference profile"); err != nil {
		return nil, err
	}

	factor := annualKWh / referenceTotal
	out := make(model.HourlySeries, len(ref))
	for h, w := range ref {
		out[h] = w * factor
	}
	return out, nil
}
