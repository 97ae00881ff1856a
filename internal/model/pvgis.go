package model

// RawRow is one hourly row delivered by an external PV yield model.
// Timestamp may be empty when the source only reports positional rows.
type RawRow struct {
	Timestamp  string
	PowerWatts float64
}

// PVGISResponse matches the JSON shape of a PVGIS seriescalc response.
// Depending on the request, rows arrive under one of three keys.
//
// Example:
//
//	{
//	  "outputs": {
//	    "hourly": [ {"time": "20180101:0010", "P": 0.0}, ... ]
//	  }
//	}
type PVGISResponse struct {
	Outputs PVGISOutputs `json:"outputs"`
}

type PVGISOutputs struct {
	Hourly      []PVGISRow       `json:"hourly"`
	HourlyFixed []PVGISRow       `json:"hourly_fixed"`
	TimeSeries  *PVGISTimeSeries `json:"time_series"`
}

type PVGISTimeSeries struct {
	Data []PVGISRow `json:"data"`
}

// PVGISRow is one generation row. P is the mean AC power in W over the hour;
// a missing P is reported as 0 W.
type PVGISRow struct {
	Time string   `json:"time"`
	P    *float64 `json:"P"`
}

// Rows returns the first non-empty row block in PVGIS precedence order
// (hourly, hourly_fixed, time_series.data).
func (r PVGISResponse) Rows() ([]PVGISRow, string) {
	switch {
	case len(r.Outputs.Hourly) > 0:
		return r.Outputs.Hourly, "hourly"
	case len(r.Outputs.HourlyFixed) > 0:
		return r.Outputs.HourlyFixed, "hourly_fixed"
	case r.Outputs.TimeSeries != nil && len(r.Outputs.TimeSeries.Data) > 0:
		return r.Outputs.TimeSeries.Data, "time_series"
	default:
		return nil, ""
	}
}

// RawRowsFromPVGIS converts PVGIS rows into source-agnostic rows.
func RawRowsFromPVGIS(rows []PVGISRow) []RawRow {
	out := make([]RawRow, 0, len(rows))
	for _, r := range rows {
		w := 0.0
		if r.P != nil {
			w = *r.P
		}
		out = append(out, RawRow{Timestamp: r.Time, PowerWatts: w})
	}
	return out
}
