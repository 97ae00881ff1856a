package profile

import (
	"context"
	"fmt"

	"pv-speicher/internal/data"
	"pv-speicher/internal/model"
)

// Series is the pair of hourly inputs every simulation consumes.
type Series struct {
	Load model.HourlySeries
	PV   model.HourlySeries
}

// Build fetches both raw inputs and turns them into aligned hourly series.
// The two sources are independent of each other.
func Build(ctx context.Context, loadSrc data.LoadProfileSource, pvSrc data.PVSource, annualKWh float64) (Series, error) {
	weights, err := loadSrc.ReferenceWeights(ctx)
	if err != nil {
		return Series{}, fmt.Errorf("load profile: %w", err)
	}
	load, err := ScaleLoadProfile(weights, annualKWh)
	if err != nil {
		return Series{}, fmt.Errorf("load profile: %w", err)
	}

	rows, err := pvSrc.HourlyRows(ctx)
	if err != nil {
		return Series{}, fmt.Errorf("pv production: %w", err)
	}
	pv, err := NormalizePVSeries(rows)
	if err != nil {
		return Series{}, fmt.Errorf("pv production: %w", err)
	}

	return Series{Load: load, PV: pv}, nil
}
