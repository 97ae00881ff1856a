package model

import (
	"fmt"
	"math"
)

// HoursPerYear is the length of every hourly series (non-leap reference year).
const HoursPerYear = 8760

// HourlySeries holds one kWh value per hour of the reference year.
// Index 0 is hour 0 of January 1st; there is no calendar or timezone meaning
// beyond the position.
type HourlySeries []float64

// ValidateLength fails with ErrLengthMismatch unless s has exactly HoursPerYear values.
func (s HourlySeries) ValidateLength(name string) error {
	if len(s) != HoursPerYear {
		return fmt.Errorf("%w: %s has %d values, want %d", ErrLengthMismatch, name, len(s), HoursPerYear)
	}
	return nil
}

// ValidateNonNegative fails with ErrDataValidity on the first NaN, Inf or negative value.
func (s HourlySeries) ValidateNonNegative(name string) error {
	for h, v := range s {
		if !IsFinite(v) {
			return fmt.Errorf("%w: %s[%d] is not finite", ErrDataValidity, name, h)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s[%d] is negative (%g)", ErrDataValidity, name, h, v)
		}
	}
	return nil
}

// Sum adds the series in index order.
func (s HourlySeries) Sum() float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}

// Clone returns an independent copy.
func (s HourlySeries) Clone() HourlySeries {
	if s == nil {
		return nil
	}
	out := make(HourlySeries, len(s))
	copy(out, s)
	return out
}

// ValidatePair checks that load and pv are both full-year series of finite,
// non-negative values.
func ValidatePair(load, pv HourlySeries) error {
	if err := load.ValidateLength("load"); err != nil {
		return err
	}
	if err := pv.ValidateLength("pv"); err != nil {
		return err
	}
	if err := load.ValidateNonNegative("load"); err != nil {
		return err
	}
	return pv.ValidateNonNegative("pv")
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
