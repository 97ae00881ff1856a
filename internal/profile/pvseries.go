package profile

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"pv-speicher/internal/model"
)

// HoursPerLeapYear is the row count of a PV source that reports a leap year.
const HoursPerLeapYear = 8784

// Untimestamped leap-year rows lose this block: February 29 starts after
// 31 + 28 days.
const (
	leapDayFirstHour = 59 * 24
	leapDayLastHour  = leapDayFirstHour + 23
)

// Timestamp layouts accepted on raw rows. PVGIS reports "20180101:0010".
var timestampLayouts = []string{
	time.RFC3339,
	"20060102:1504",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

type stampedRow struct {
	at time.Time
	w  float64
}

// NormalizePVSeries turns raw generation rows into a sorted, validated
// 8760-hour kWh series.
//
// Rows with timestamps are sorted chronologically first. A leap-year source
// (8784 rows) loses exactly its February 29 rows. Power is hourly mean W, so
// kWh = W / 1000.
func NormalizePVSeries(rows []model.RawRow) (model.HourlySeries, error) {
	stamped, err := parseTimestamps(rows)
	if err != nil {
		return nil, err
	}

	var watts []float64
	if stamped != nil {
		sort.SliceStable(stamped, func(i, j int) bool { return stamped[i].at.Before(stamped[j].at) })
		if len(stamped) == HoursPerLeapYear {
			stamped = dropLeapDayStamped(stamped)
		}
		watts = make([]float64, 0, len(stamped))
		for _, r := range stamped {
			watts = append(watts, r.w)
		}
	} else {
		watts = make([]float64, 0, len(rows))
		for i, r := range rows {
			if len(rows) == HoursPerLeapYear && i >= leapDayFirstHour && i <= leapDayLastHour {
				continue
			}
			watts = append(watts, r.PowerWatts)
		}
	}

	out := make(model.HourlySeries, len(watts))
	for h, w := range watts {
		out[h] = w / 1000
	}
	if err := out.ValidateLength("pv"); err != nil {
		return nil, err
	}
	if err := out.ValidateNonNegative("pv"); err != nil {
		return nil, err
	}
	return out, nil
}

// parseTimestamps returns nil when no row carries a timestamp. Mixed rows
// are rejected: their order cannot be reconstructed.
func parseTimestamps(rows []model.RawRow) ([]stampedRow, error) {
	withTS := 0
	for _, r := range rows {
		if strings.TrimSpace(r.Timestamp) != "" {
			withTS++
		}
	}
	if withTS == 0 {
		return nil, nil
	}
	if withTS != len(rows) {
		return nil, fmt.Errorf("%w: %d of %d pv rows lack a timestamp", model.ErrDataValidity, len(rows)-withTS, len(rows))
	}

	out := make([]stampedRow, 0, len(rows))
	for i, r := range rows {
		at, err := parseTimestamp(r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: pv row %d: %v", model.ErrDataValidity, i, err)
		}
		out = append(out, stampedRow{at: at, w: r.PowerWatts})
	}
	return out, nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func dropLeapDayStamped(rows []stampedRow) []stampedRow {
	out := make([]stampedRow, 0, model.HoursPerYear)
	for _, r := range rows {
		if r.at.Month() == time.February && r.at.Day() == 29 {
			continue
		}
		out = append(out, r)
	}
	return out
}
