package simulation

import (
	"math/rand"

	"pv-speicher/internal/model"
)

func constantSeries(v float64) model.HourlySeries {
	s := make(model.HourlySeries, model.HoursPerYear)
	for h := range s {
		s[h] = v
	}
	return s
}

// dailyScenario is 1 kWh of load every hour and 2 kWh of PV from 08:00 to 15:59.
func dailyScenario() (load, pv model.HourlySeries) {
	load = constantSeries(1)
	pv = make(model.HourlySeries, model.HoursPerYear)
	for h := range pv {
		if hod := h % 24; hod >= 8 && hod < 16 {
			pv[h] = 2
		}
	}
	return load, pv
}

// randomScenario is a reproducible noisy household year.
func randomScenario(seed int64) (load, pv model.HourlySeries) {
	r := rand.New(rand.NewSource(seed))
	load = make(model.HourlySeries, model.HoursPerYear)
	pv = make(model.HourlySeries, model.HoursPerYear)
	for h := range load {
		load[h] = 0.2 + r.Float64()
		if hod := h % 24; hod >= 6 && hod < 20 {
			pv[h] = 4 * r.Float64()
		}
	}
	return load, pv
}

func idealSpec() model.BatterySpec {
	s := model.DefaultBatterySpec()
	s.RoundTripEfficiency = 1
	return s
}
