// Package data holds the collaborators that deliver the raw inputs of a
// simulation: the reference load shape and the PV generation rows.
package data

import (
	"context"
	"fmt"

	"pv-speicher/internal/model"
)

// LoadProfileSource delivers the 8760 reference weights of a standard load profile.
type LoadProfileSource interface {
	ReferenceWeights(ctx context.Context) ([]float64, error)
}

// PVSource delivers raw hourly generation rows for one PV system.
type PVSource interface {
	HourlyRows(ctx context.Context) ([]model.RawRow, error)
}

// FileLoadProfile reads reference weights from a JSON file.
type FileLoadProfile struct {
	Path string
}

func (s FileLoadProfile) ReferenceWeights(ctx context.Context) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadReferenceWeightsJSON(s.Path)
}

// FilePVGIS reads a stored PVGIS response from disk.
type FilePVGIS struct {
	Path string
}

func (s FilePVGIS) HourlyRows(ctx context.Context) ([]model.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := LoadPVGISJSON(s.Path)
	if err != nil {
		return nil, err
	}
	rows, _ := resp.Rows()
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: pvgis response %s does not contain usable hourly data", model.ErrDataValidity, s.Path)
	}
	return model.RawRowsFromPVGIS(rows), nil
}

// StaticLoadProfile serves weights already in memory.
type StaticLoadProfile []float64

func (s StaticLoadProfile) ReferenceWeights(context.Context) ([]float64, error) {
	return []float64(s), nil
}

// StaticPV serves rows already in memory.
type StaticPV []model.RawRow

func (s StaticPV) HourlyRows(context.Context) ([]model.RawRow, error) {
	return []model.RawRow(s), nil
}
