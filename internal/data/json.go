package data

import (
	"encoding/json"
	"fmt"
	"os"

	"pv-speicher/internal/model"
)

// LoadReferenceWeightsJSON reads a JSON array of hourly load-profile weights.
func LoadReferenceWeightsJSON(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var weights []float64
	if err := json.Unmarshal(raw, &weights); err != nil {
		return nil, fmt.Errorf("decode reference weights %s: %w", path, err)
	}
	return weights, nil
}

// LoadPVGISJSON reads a stored PVGIS seriescalc response.
func LoadPVGISJSON(path string) (*model.PVGISResponse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp model.PVGISResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode pvgis response %s: %w", path, err)
	}
	return &resp, nil
}
