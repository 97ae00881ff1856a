package model

import "errors"

// Error kinds raised by the simulation core. Callers match them with errors.Is;
// the wrapped message carries the precise reason.
var (
	// ErrLengthMismatch: a series is not exactly HoursPerYear long.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInvalidParameter: a scalar is non-positive or out of its physical range.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDataValidity: a series holds non-finite or negative values.
	ErrDataValidity = errors.New("invalid data")
)
