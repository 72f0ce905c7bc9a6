package scoring

import (
	"github.com/kahua-labs/malama/internal/oahu"
	"github.com/kahua-labs/malama/internal/trip"
)

// Each category scorer starts from a base of 100 and applies signed
// adjustments for the visitor's choices and for island conditions.
// Higher scores mean more sustainable behavior.

// TransportScore rates flight distance and ground transport choices.
// Flight miles cost 0.02 points each, so a mainland round trip alone
// can consume most of the category.
func TransportScore(p trip.Parameters, f oahu.Factors) float64 {
	score := 100.0

	score -= p.FlightDistanceMiles * 0.02
	score -= f.Transport.AvgDailyTravelMiles * p.LocalTransport.EmissionMultiplier() * 0.15

	switch p.LocalTransport {
	case trip.TransportPublicTransit, trip.TransportWalkBike:
		score += 10 * f.Transport.PublicTransitQuality
	case trip.TransportRentalEV:
		// Charging infrastructure is thin outside Honolulu.
		score -= 5 * (1 - f.Transport.EVRentalAvailability)
	}

	score -= 5 * f.Transport.TrafficCongestion

	return clamp(score, 0, 100)
}

// AccommodationScore rates lodging type, AC habits, and in-room
// conservation practices.
func AccommodationScore(p trip.Parameters, f oahu.Factors) float64 {
	score := 100.0

	score -= 30 * p.Accommodation.ImpactMultiplier()
	score -= p.ACUsageHours * 2
	score -= 15 * (1 - p.WaterConservation)

	if p.LinenReuse {
		score += 10
	}

	score -= 5 * (f.Energy.TourismEnergyFactor - 1)
	score += 5 * f.Accommodation.GreenCertifiedShare

	return clamp(score, 0, 100)
}

// ActivitiesScore rates the chosen activity mix. The per-activity
// impact is averaged so a long list of gentle activities is not
// penalized more than a single harmful one.
func ActivitiesScore(p trip.Parameters, f oahu.Factors) float64 {
	score := 100.0

	if len(p.Activities) > 0 {
		var total float64
		for _, a := range p.Activities {
			total += activityImpact(a, f)
		}
		score -= total / float64(len(p.Activities))
	}

	if p.EcoTours {
		score += 15
	}
	if p.WildlifeDistance {
		score += 10
	} else {
		score -= 10 * f.Activities.WildlifeDisturbance
	}
	if p.ReefSafeSunscreen {
		score += 15
	} else {
		score -= 15 * f.Activities.ReefVulnerability
	}

	return clamp(score, 0, 100)
}

// activityImpact returns the score penalty for one activity. Reef,
// trail, wildlife, and surf penalties scale with the island's
// vulnerability factors.
func activityImpact(a trip.Activity, f oahu.Factors) float64 {
	switch a {
	case trip.ActivityReefSnorkeling:
		return 15 * f.Activities.ReefVulnerability
	case trip.ActivityMotorizedWaterSports:
		return 25
	case trip.ActivityTrailHiking:
		return 5 * f.Activities.TrailErosion
	case trip.ActivityOffTrailHiking:
		return 20 * f.Activities.TrailErosion
	case trip.ActivityWildlifeTour:
		return 10 * f.Activities.WildlifeDisturbance
	case trip.ActivityATVTour:
		return 30
	case trip.ActivityShoppingDining:
		return 10
	case trip.ActivityCulturalSites:
		return 5
	case trip.ActivityBeachRelaxation:
		return 5
	case trip.ActivitySurfing:
		return 5 * f.Activities.MarineActivityImpact
	default:
		return 10
	}
}

// WaterScore rates daily water habits against Oahu's aquifer stress.
func WaterScore(p trip.Parameters, f oahu.Factors) float64 {
	score := 100.0

	score -= p.ShowerMinutes * 2.5
	score -= 20 * (1 - p.WaterConservation)

	if p.LinenReuse {
		score += 15
	} else {
		score -= 10
	}

	score -= p.PoolHours * 3
	score -= 10 * f.Water.FreshwaterScarcity
	score -= 5 * (f.Water.TourismWaterFactor - 1)

	return clamp(score, 0, 100)
}

// WasteScore rates single-use habits. Landfill scarcity and marine
// debris pressure make every pound count more here than on the
// mainland.
func WasteScore(p trip.Parameters, f oahu.Factors) float64 {
	score := 100.0

	if p.ReusableBottle {
		score += 15
	} else {
		score -= 15
	}
	if p.ReusableBag {
		score += 10
	} else {
		score -= 10
	}

	score -= 20 * (1 - p.SingleUseRefusal)

	if p.CleanupParticipation {
		score += 20
	}

	score -= 10 * f.Waste.LimitedLandfillSpace
	score -= 10 * f.Waste.MarineDebrisImpact
	score -= 5 * (f.Waste.TourismWasteFactor - 1)

	return clamp(score, 0, 100)
}

// FoodScore rates sourcing and diet choices against the island's
// import dependency.
func FoodScore(p trip.Parameters, f oahu.Factors) float64 {
	score := 100.0

	score -= 25 * (1 - p.LocalFoodShare)
	score -= 20 * (1 - p.PlantBasedShare)

	if p.SustainableSeafood {
		score += 15
	} else {
		score -= 15
	}

	score -= 15 * (1 - p.FoodWasteReduction)
	score -= 10 * f.Food.ImportDependency
	score -= 10 * (1 - f.Food.LocalAgricultureCapacity)
	score -= 5 * (f.Food.TouristDiningImpact - 1)

	return clamp(score, 0, 100)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
