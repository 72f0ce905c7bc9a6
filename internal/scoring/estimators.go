package scoring

import (
	"math"

	"github.com/kahua-labs/malama/internal/oahu"
	"github.com/kahua-labs/malama/internal/trip"
)

// CarbonFootprintTons estimates total trip emissions in tons of CO2e.
// Flight, ground transport, lodging, food, and activity emissions are
// summed, then scaled by the island multiplier to account for shipped
// fuel and imported goods.
func CarbonFootprintTons(p trip.Parameters, f oahu.Factors) float64 {
	flight := p.FlightDistanceMiles * f.Carbon.FlightEmissionsFactor / 1000

	days := float64(p.DurationDays)
	ground := f.Transport.AvgDailyTravelMiles * p.LocalTransport.CarbonTonsPerMile() * days
	lodging := p.Accommodation.CarbonTonsPerNight() * days
	food := 0.01 * dietAdjustment(p) * days

	// Visitors rotate through activities rather than repeating all of
	// them daily, so outings accrue at a third of the trip length.
	var outings float64
	for _, a := range p.Activities {
		outings += a.CarbonTonsPerOuting()
	}
	activities := outings * days / 3

	return (flight + ground + lodging + food + activities) * f.Carbon.IslandMultiplier
}

// dietAdjustment scales food emissions by diet composition and local
// sourcing. Meat-heavy diets double the base, plant-forward diets cut
// it, and fully local sourcing removes another third.
func dietAdjustment(p trip.Parameters) float64 {
	adj := 0.8
	switch {
	case p.PlantBasedShare < 0.3:
		adj = 2.0
	case p.PlantBasedShare < 0.7:
		adj = 1.5
	}
	return adj * (1.5 - p.LocalFoodShare*0.5)
}

// WaterUsageGallonsPerDay estimates daily water draw in gallons,
// rounded to the nearest gallon. Hotel showers run about 2.5 gallons
// per minute and a figure of ten uses per stay-day folds laundry and
// housekeeping into the same line.
func WaterUsageGallonsPerDay(p trip.Parameters, f oahu.Factors) int {
	base := p.Accommodation.BaseWaterGallonsPerDay()
	shower := p.ShowerMinutes * 2.5 * 10
	pool := p.PoolHours * 15

	conservation := 1 - p.WaterConservation*0.3
	linen := 1.0
	if p.LinenReuse {
		linen = 0.9
	}

	total := (base + shower + pool) * conservation * linen
	total *= f.Water.TourismWaterFactor

	return int(math.Round(total))
}

// WasteGenerationPoundsPerDay estimates daily solid waste in pounds,
// rounded to one decimal. Starts from the 4 lb/day EPA visitor average
// and applies reduction factors for each habit.
func WasteGenerationPoundsPerDay(p trip.Parameters, f oahu.Factors) float64 {
	total := 4.0

	if p.ReusableBottle {
		total *= 0.8
	} else {
		total *= 1.2
	}
	if p.ReusableBag {
		total *= 0.9
	} else {
		total *= 1.1
	}

	total *= 1 - p.SingleUseRefusal*0.4

	if p.CleanupParticipation {
		total *= 0.9
	}

	total *= 1 - p.FoodWasteReduction*0.3
	total *= f.Waste.TourismWasteFactor

	return math.Round(total*10) / 10
}
