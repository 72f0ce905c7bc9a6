// Package oahu holds the destination-specific environmental baseline the
// scoring engine works from. Everything here is a fixed constant for one
// island; nothing is fetched or refreshed at runtime.
package oahu

// Factors is the immutable table of Oahu environmental constants, grouped by
// domain. Scorers and estimators read it, nothing writes it.
type Factors struct {
	Transport     TransportFactors     `json:"transport"`
	Accommodation AccommodationFactors `json:"accommodation"`
	Energy        EnergyFactors        `json:"energy"`
	Water         WaterFactors         `json:"water"`
	Waste         WasteFactors         `json:"waste"`
	Food          FoodFactors          `json:"food"`
	Activities    ActivityFactors      `json:"activities"`
	Carbon        CarbonFactors        `json:"carbon"`
}

type TransportFactors struct {
	TrafficCongestion    float64 `json:"traffic_congestion"`      // Honolulu ranks among the most congested US cities
	PublicTransitQuality float64 `json:"public_transit_quality"`  // TheBus coverage is good by island standards
	EVRentalAvailability float64 `json:"ev_rental_availability"`  // EV fleet share is still limited
	AvgDailyTravelMiles  float64 `json:"avg_daily_travel_miles"`  // typical visitor driving per day
}

type AccommodationFactors struct {
	HotelEnergyKWhPerNight float64 `json:"hotel_energy_kwh_per_night"`
	ResortWaterGallonsDay  float64 `json:"resort_water_gallons_day"`
	GreenCertifiedShare    float64 `json:"green_certified_share"` // share of certified properties
	AvgACUsageHours        float64 `json:"avg_ac_usage_hours"`
}

type EnergyFactors struct {
	ElectricityCostKWh  float64 `json:"electricity_cost_kwh"` // highest in the US
	RenewableShare      float64 `json:"renewable_share"`
	FossilDependency    float64 `json:"fossil_dependency"`
	TourismEnergyFactor float64 `json:"tourism_energy_factor"` // visitors use more energy than residents
}

type WaterFactors struct {
	FreshwaterScarcity float64 `json:"freshwater_scarcity"` // aquifer stress
	RainfallVariation  float64 `json:"rainfall_variation"`
	TourismWaterFactor float64 `json:"tourism_water_factor"` // visitors use about twice resident water
	AvgHotelGallonsDay float64 `json:"avg_hotel_gallons_day"`
}

type WasteFactors struct {
	LimitedLandfillSpace    float64 `json:"limited_landfill_space"` // Waimanalo Gulch is near capacity
	RecyclingInfrastructure float64 `json:"recycling_infrastructure"`
	MarineDebrisImpact      float64 `json:"marine_debris_impact"`
	TourismWasteFactor      float64 `json:"tourism_waste_factor"`
}

type FoodFactors struct {
	ImportDependency         float64 `json:"import_dependency"` // ~85% of food is shipped in
	LocalAgricultureCapacity float64 `json:"local_agriculture_capacity"`
	FishingSustainability    float64 `json:"fishing_sustainability"`
	TouristDiningImpact      float64 `json:"tourist_dining_impact"`
}

type ActivityFactors struct {
	ReefVulnerability    float64 `json:"reef_vulnerability"`
	TrailErosion         float64 `json:"trail_erosion"`
	WildlifeDisturbance  float64 `json:"wildlife_disturbance"`
	MarineActivityImpact float64 `json:"marine_activity_impact"`
}

type CarbonFactors struct {
	IslandMultiplier      float64 `json:"island_multiplier"`       // shipping and generation overhead
	TourismImpact         float64 `json:"tourism_impact"`
	FlightEmissionsFactor float64 `json:"flight_emissions_factor"` // tons CO2e per 1000 miles flown
	AvgTouristTonsPerWeek float64 `json:"avg_tourist_tons_per_week"`
}

// DefaultFactors returns the Oahu baseline.
func DefaultFactors() Factors {
	return Factors{
		Transport: TransportFactors{
			TrafficCongestion:    0.8,
			PublicTransitQuality: 0.6,
			EVRentalAvailability: 0.4,
			AvgDailyTravelMiles:  20,
		},
		Accommodation: AccommodationFactors{
			HotelEnergyKWhPerNight: 20.5,
			ResortWaterGallonsDay:  300,
			GreenCertifiedShare:    0.25,
			AvgACUsageHours:        8,
		},
		Energy: EnergyFactors{
			ElectricityCostKWh:  0.34,
			RenewableShare:      0.35,
			FossilDependency:    0.65,
			TourismEnergyFactor: 1.5,
		},
		Water: WaterFactors{
			FreshwaterScarcity: 0.7,
			RainfallVariation:  0.7,
			TourismWaterFactor: 2.0,
			AvgHotelGallonsDay: 300,
		},
		Waste: WasteFactors{
			LimitedLandfillSpace:    0.8,
			RecyclingInfrastructure: 0.5,
			MarineDebrisImpact:      0.9,
			TourismWasteFactor:      1.8,
		},
		Food: FoodFactors{
			ImportDependency:         0.85,
			LocalAgricultureCapacity: 0.3,
			FishingSustainability:    0.6,
			TouristDiningImpact:      1.6,
		},
		Activities: ActivityFactors{
			ReefVulnerability:    0.8,
			TrailErosion:         0.7,
			WildlifeDisturbance:  0.6,
			MarineActivityImpact: 0.75,
		},
		Carbon: CarbonFactors{
			IslandMultiplier:      1.2,
			TourismImpact:         1.5,
			FlightEmissionsFactor: 0.2,
			AvgTouristTonsPerWeek: 3.2,
		},
	}
}
