package simulation

import (
	"math"

	"pv-speicher/internal/model"
)

// CalculateSelfConsumption returns the annual self-consumption without
// storage: the sum over all hours of min(pv[h], load[h]).
func CalculateSelfConsumption(load, pv model.HourlySeries) (float64, error) {
	if err := model.ValidatePair(load, pv); err != nil {
		return 0, err
	}
	sum := 0.0
	for h := 0; h < model.HoursPerYear; h++ {
		sum += math.Min(pv[h], load[h])
	}
	return sum, nil
}

// BalanceWithoutStorage splits the year into self-consumption, grid import
// and feed-in for a household without a battery.
func BalanceWithoutStorage(load, pv model.HourlySeries) (model.AnnualBalance, error) {
	sc, err := CalculateSelfConsumption(load, pv)
	if err != nil {
		return model.AnnualBalance{}, err
	}
	loadSum, pvSum := load.Sum(), pv.Sum()
	return model.AnnualBalance{
		LoadKWh:            loadSum,
		PVKWh:              pvSum,
		SelfConsumptionKWh: sc,
		GridImportKWh:      math.Max(0, loadSum-sc),
		FeedInKWh:          math.Max(0, pvSum-sc),
	}, nil
}
