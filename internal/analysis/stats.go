package analysis

import (
	"math"
	"sort"

	"pv-speicher/internal/model"
)

// SeriesStats is a compact summary of one hourly series for reports.
type SeriesStats struct {
	SumKWh  float64
	MinKWh  float64
	MaxKWh  float64
	MeanKWh float64
	P05KWh  float64
	P95KWh  float64

	// PeakHour is the first hour holding MaxKWh.
	PeakHour int
	// ActiveHours counts hours with a value above zero.
	ActiveHours int
}

func ComputeStats(s model.HourlySeries) SeriesStats {
	st := SeriesStats{}
	if len(s) == 0 {
		return st
	}

	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(s))
	for h, v := range s {
		vals = append(vals, v)
		st.SumKWh += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
			st.PeakHour = h
		}
		if v > 0 {
			st.ActiveHours++
		}
	}
	sort.Float64s(vals)
	st.MinKWh = minv
	st.MaxKWh = maxv
	st.MeanKWh = st.SumKWh / float64(len(vals))
	st.P05KWh = percentileSorted(vals, 0.05)
	st.P95KWh = percentileSorted(vals, 0.95)
	return st
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
