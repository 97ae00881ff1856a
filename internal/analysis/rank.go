package analysis

import "sort"

// RankByMarginalGain orders the storage scenarios of a report by additional
// self-consumption per nominal kWh, best first. The no-storage scenario is
// left out. Ties keep report order.
func RankByMarginalGain(r *Report) []ScenarioResult {
	if r == nil {
		return nil
	}
	out := make([]ScenarioResult, 0, len(r.Scenarios))
	for _, s := range r.Scenarios {
		if s.HasStorage() {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return gainPerKWh(out[i]) > gainPerKWh(out[j])
	})
	return out
}

func gainPerKWh(s ScenarioResult) float64 {
	if s.NominalKWh <= 0 {
		return 0
	}
	return s.AdditionalSelfConsumptionKWh / s.NominalKWh
}
