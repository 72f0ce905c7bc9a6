package trip

// TransportMode is the visitor's primary way of getting around the island.
type TransportMode string

const (
	TransportRentalEV      TransportMode = "rental_ev"
	TransportRentalHybrid  TransportMode = "rental_hybrid"
	TransportRentalEconomy TransportMode = "rental_economy"
	TransportRentalSUV     TransportMode = "rental_suv"
	TransportPublicTransit TransportMode = "public_transit"
	TransportWalkBike      TransportMode = "walk_bike"
	TransportRideshare     TransportMode = "rideshare"
)

// TransportModes lists every mode in form-display order.
func TransportModes() []TransportMode {
	return []TransportMode{
		TransportRentalEV,
		TransportRentalHybrid,
		TransportRentalEconomy,
		TransportRentalSUV,
		TransportPublicTransit,
		TransportWalkBike,
		TransportRideshare,
	}
}

// Valid reports whether the mode is one of the known options.
func (m TransportMode) Valid() bool {
	switch m {
	case TransportRentalEV, TransportRentalHybrid, TransportRentalEconomy,
		TransportRentalSUV, TransportPublicTransit, TransportWalkBike,
		TransportRideshare:
		return true
	}
	return false
}

// Label is the human-readable form label for the mode.
func (m TransportMode) Label() string {
	switch m {
	case TransportRentalEV:
		return "Rental EV"
	case TransportRentalHybrid:
		return "Rental hybrid"
	case TransportRentalEconomy:
		return "Rental economy car"
	case TransportRentalSUV:
		return "Rental SUV/large vehicle"
	case TransportPublicTransit:
		return "Public transportation/shuttle"
	case TransportWalkBike:
		return "Mostly walking/biking"
	case TransportRideshare:
		return "Rideshare/taxi"
	default:
		return string(m)
	}
}

// EmissionMultiplier scales the daily local-travel deduction. Lower is cleaner.
func (m TransportMode) EmissionMultiplier() float64 {
	switch m {
	case TransportRentalEV:
		return 0.3
	case TransportRentalHybrid:
		return 0.6
	case TransportRentalEconomy:
		return 1.0
	case TransportRentalSUV:
		return 2.0
	case TransportPublicTransit:
		return 0.4
	case TransportWalkBike:
		return 0.1
	case TransportRideshare:
		return 0.8
	default:
		return 1.0
	}
}

// CarbonTonsPerMile is the mode's emission factor in tons CO2e per mile.
func (m TransportMode) CarbonTonsPerMile() float64 {
	switch m {
	case TransportRentalEV:
		return 0.0001
	case TransportRentalHybrid:
		return 0.0002
	case TransportRentalEconomy:
		return 0.0004
	case TransportRentalSUV:
		return 0.0007
	case TransportPublicTransit:
		return 0.0001
	case TransportWalkBike:
		return 0.00001
	case TransportRideshare:
		return 0.0003
	default:
		return 0.0004
	}
}

// AccommodationType is where the visitor stays.
type AccommodationType string

const (
	AccommodationEcoCertified   AccommodationType = "eco_certified"
	AccommodationStandardHotel  AccommodationType = "standard_hotel"
	AccommodationLuxuryResort   AccommodationType = "luxury_resort"
	AccommodationVacationRental AccommodationType = "vacation_rental"
	AccommodationHostel         AccommodationType = "hostel"
	AccommodationCamping        AccommodationType = "camping"
)

// AccommodationTypes lists every type in form-display order.
func AccommodationTypes() []AccommodationType {
	return []AccommodationType{
		AccommodationEcoCertified,
		AccommodationStandardHotel,
		AccommodationLuxuryResort,
		AccommodationVacationRental,
		AccommodationHostel,
		AccommodationCamping,
	}
}

// Valid reports whether the type is one of the known options.
func (a AccommodationType) Valid() bool {
	switch a {
	case AccommodationEcoCertified, AccommodationStandardHotel,
		AccommodationLuxuryResort, AccommodationVacationRental,
		AccommodationHostel, AccommodationCamping:
		return true
	}
	return false
}

// Label is the human-readable form label for the type.
func (a AccommodationType) Label() string {
	switch a {
	case AccommodationEcoCertified:
		return "Eco-certified hotel/resort"
	case AccommodationStandardHotel:
		return "Standard hotel/resort"
	case AccommodationLuxuryResort:
		return "Luxury resort"
	case AccommodationVacationRental:
		return "Vacation rental"
	case AccommodationHostel:
		return "Hostel/budget accommodation"
	case AccommodationCamping:
		return "Camping/outdoor lodging"
	default:
		return string(a)
	}
}

// ImpactMultiplier scales the lodging baseline deduction. Lower is lighter.
func (a AccommodationType) ImpactMultiplier() float64 {
	switch a {
	case AccommodationEcoCertified:
		return 0.5
	case AccommodationStandardHotel:
		return 1.0
	case AccommodationLuxuryResort:
		return 1.5
	case AccommodationVacationRental:
		return 0.8
	case AccommodationHostel:
		return 0.6
	case AccommodationCamping:
		return 0.3
	default:
		return 1.0
	}
}

// CarbonTonsPerNight is the lodging emission factor in tons CO2e per night.
func (a AccommodationType) CarbonTonsPerNight() float64 {
	switch a {
	case AccommodationEcoCertified:
		return 0.01
	case AccommodationStandardHotel:
		return 0.03
	case AccommodationLuxuryResort:
		return 0.06
	case AccommodationVacationRental:
		return 0.02
	case AccommodationHostel:
		return 0.01
	case AccommodationCamping:
		return 0.005
	default:
		return 0.03
	}
}

// BaseWaterGallonsPerDay is the per-guest daily water baseline for the type.
func (a AccommodationType) BaseWaterGallonsPerDay() float64 {
	switch a {
	case AccommodationEcoCertified:
		return 80
	case AccommodationStandardHotel:
		return 150
	case AccommodationLuxuryResort:
		return 250
	case AccommodationVacationRental:
		return 100
	case AccommodationHostel:
		return 70
	case AccommodationCamping:
		return 30
	default:
		return 150
	}
}

// Activity is one planned outing on the island.
type Activity string

const (
	ActivityReefSnorkeling       Activity = "reef_snorkeling"
	ActivityMotorizedWaterSports Activity = "motorized_water_sports"
	ActivityTrailHiking          Activity = "trail_hiking"
	ActivityOffTrailHiking       Activity = "off_trail_hiking"
	ActivityWildlifeTour         Activity = "wildlife_tour"
	ActivityATVTour              Activity = "atv_tour"
	ActivityShoppingDining       Activity = "shopping_dining"
	ActivityCulturalSites        Activity = "cultural_sites"
	ActivityBeachRelaxation      Activity = "beach_relaxation"
	ActivitySurfing              Activity = "surfing"
)

// Activities lists every activity in form-display order.
func Activities() []Activity {
	return []Activity{
		ActivityReefSnorkeling,
		ActivityMotorizedWaterSports,
		ActivityTrailHiking,
		ActivityOffTrailHiking,
		ActivityWildlifeTour,
		ActivityATVTour,
		ActivityShoppingDining,
		ActivityCulturalSites,
		ActivityBeachRelaxation,
		ActivitySurfing,
	}
}

// Valid reports whether the activity is one of the known options.
func (a Activity) Valid() bool {
	switch a {
	case ActivityReefSnorkeling, ActivityMotorizedWaterSports, ActivityTrailHiking,
		ActivityOffTrailHiking, ActivityWildlifeTour, ActivityATVTour,
		ActivityShoppingDining, ActivityCulturalSites, ActivityBeachRelaxation,
		ActivitySurfing:
		return true
	}
	return false
}

// Label is the human-readable form label for the activity.
func (a Activity) Label() string {
	switch a {
	case ActivityReefSnorkeling:
		return "Snorkeling/scuba on coral reefs"
	case ActivityMotorizedWaterSports:
		return "Motorized water sports (jet ski, motorboats)"
	case ActivityTrailHiking:
		return "Hiking on maintained trails"
	case ActivityOffTrailHiking:
		return "Off-trail hiking/exploration"
	case ActivityWildlifeTour:
		return "Wildlife viewing tours"
	case ActivityATVTour:
		return "ATV/off-road vehicle tours"
	case ActivityShoppingDining:
		return "Shopping/dining"
	case ActivityCulturalSites:
		return "Cultural sites/museums"
	case ActivityBeachRelaxation:
		return "Beach relaxation"
	case ActivitySurfing:
		return "Surfing/paddleboarding"
	default:
		return string(a)
	}
}

// CarbonTonsPerOuting is the activity's emission factor in tons CO2e per outing.
func (a Activity) CarbonTonsPerOuting() float64 {
	switch a {
	case ActivityReefSnorkeling:
		return 0.005
	case ActivityMotorizedWaterSports:
		return 0.03
	case ActivityTrailHiking:
		return 0.001
	case ActivityOffTrailHiking:
		return 0.001
	case ActivityWildlifeTour:
		return 0.01
	case ActivityATVTour:
		return 0.04
	case ActivityShoppingDining:
		return 0.005
	case ActivityCulturalSites:
		return 0.002
	case ActivityBeachRelaxation:
		return 0.001
	case ActivitySurfing:
		return 0.001
	default:
		return 0.01
	}
}
