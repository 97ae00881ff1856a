package model

import "fmt"

// PVSystem describes the generator the PV yield source was queried for.
// Angles in degrees: azimuth 0 = north, 180 = south; tilt 0 = flat.
type PVSystem struct {
	SizeKWp    float64
	TiltDeg    float64
	AzimuthDeg float64
	Latitude   float64
	Longitude  float64
}

func (p PVSystem) Validate() error {
	if !IsFinite(p.SizeKWp) || p.SizeKWp <= 0 {
		return fmt.Errorf("%w: PV size must be > 0 kWp, got %g", ErrInvalidParameter, p.SizeKWp)
	}
	if !IsFinite(p.AzimuthDeg) || p.AzimuthDeg < 0 || p.AzimuthDeg > 360 {
		return fmt.Errorf("%w: azimuth must be in [0, 360], got %g", ErrInvalidParameter, p.AzimuthDeg)
	}
	if !IsFinite(p.TiltDeg) || p.TiltDeg < 0 || p.TiltDeg > 90 {
		return fmt.Errorf("%w: tilt must be in [0, 90], got %g", ErrInvalidParameter, p.TiltDeg)
	}
	return nil
}

// SimulationInputs is the canonical set of scalars a household calculation
// starts from, before the two hourly series are built.
type SimulationInputs struct {
	AnnualConsumptionKWh float64
	PV                   PVSystem
	Battery              BatterySpec
	// NominalSizesKWh are the nameplate sizes to compare; 0 means no storage.
	NominalSizesKWh []float64
}

func (in SimulationInputs) Validate() error {
	if !IsFinite(in.AnnualConsumptionKWh) || in.AnnualConsumptionKWh <= 0 {
		return fmt.Errorf("%w: annual consumption must be > 0 kWh, got %g", ErrInvalidParameter, in.AnnualConsumptionKWh)
	}
	if err := in.PV.Validate(); err != nil {
		return err
	}
	if err := in.Battery.Validate(); err != nil {
		return err
	}
	for _, s := range in.NominalSizesKWh {
		if !IsFinite(s) || s < 0 {
			return fmt.Errorf("%w: battery size must be >= 0 kWh, got %g", ErrInvalidParameter, s)
		}
	}
	return nil
}
