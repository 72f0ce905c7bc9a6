package trip

import "fmt"

// Parameters captures everything a visitor tells us about one Oahu trip.
// A value is immutable once validated; every calculation works from a copy.
type Parameters struct {
	DurationDays        int           `json:"duration_days"`
	FlightDistanceMiles float64       `json:"flight_distance_miles"`
	LocalTransport      TransportMode `json:"local_transport"`

	Accommodation AccommodationType `json:"accommodation"`
	ACUsageHours  float64           `json:"ac_usage_hours"`
	LinenReuse    bool              `json:"linen_reuse"`

	// Habits expressed as effort fractions in [0, 1].
	WaterConservation  float64 `json:"water_conservation"`
	SingleUseRefusal   float64 `json:"single_use_refusal"`
	LocalFoodShare     float64 `json:"local_food_share"`
	PlantBasedShare    float64 `json:"plant_based_share"`
	FoodWasteReduction float64 `json:"food_waste_reduction"`

	ShowerMinutes float64 `json:"shower_minutes"`
	PoolHours     float64 `json:"pool_hours"`

	ReusableBottle       bool `json:"reusable_bottle"`
	ReusableBag          bool `json:"reusable_bag"`
	CleanupParticipation bool `json:"cleanup_participation"`
	SustainableSeafood   bool `json:"sustainable_seafood"`

	Activities        []Activity `json:"activities"`
	EcoTours          bool       `json:"eco_tours"`
	WildlifeDistance  bool       `json:"wildlife_distance"`
	ReefSafeSunscreen bool       `json:"reef_safe_sunscreen"`
}

// Validate checks every field against its documented range and every enum
// against its closed set. All failures wrap ErrInvalidParameter.
func (p Parameters) Validate() error {
	if p.DurationDays < 1 {
		return fmt.Errorf("%w: duration_days must be at least 1, got %d", ErrInvalidParameter, p.DurationDays)
	}
	if p.FlightDistanceMiles < 0 {
		return fmt.Errorf("%w: flight_distance_miles must not be negative, got %g", ErrInvalidParameter, p.FlightDistanceMiles)
	}
	if !p.LocalTransport.Valid() {
		return fmt.Errorf("%w: unknown local_transport %q", ErrInvalidParameter, p.LocalTransport)
	}
	if !p.Accommodation.Valid() {
		return fmt.Errorf("%w: unknown accommodation %q", ErrInvalidParameter, p.Accommodation)
	}
	if p.ACUsageHours < 0 || p.ACUsageHours > 24 {
		return fmt.Errorf("%w: ac_usage_hours must be within [0, 24], got %g", ErrInvalidParameter, p.ACUsageHours)
	}

	fractions := []struct {
		field string
		value float64
	}{
		{"water_conservation", p.WaterConservation},
		{"single_use_refusal", p.SingleUseRefusal},
		{"local_food_share", p.LocalFoodShare},
		{"plant_based_share", p.PlantBasedShare},
		{"food_waste_reduction", p.FoodWasteReduction},
	}
	for _, f := range fractions {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %g", ErrInvalidParameter, f.field, f.value)
		}
	}

	if p.ShowerMinutes < 0 {
		return fmt.Errorf("%w: shower_minutes must not be negative, got %g", ErrInvalidParameter, p.ShowerMinutes)
	}
	if p.PoolHours < 0 {
		return fmt.Errorf("%w: pool_hours must not be negative, got %g", ErrInvalidParameter, p.PoolHours)
	}

	seen := make(map[Activity]bool, len(p.Activities))
	for _, a := range p.Activities {
		if !a.Valid() {
			return fmt.Errorf("%w: unknown activity %q", ErrInvalidParameter, a)
		}
		if seen[a] {
			return fmt.Errorf("%w: duplicate activity %q", ErrInvalidParameter, a)
		}
		seen[a] = true
	}

	return nil
}

// HasActivity reports whether the visitor selected the given activity.
func (p Parameters) HasActivity(a Activity) bool {
	for _, sel := range p.Activities {
		if sel == a {
			return true
		}
	}
	return false
}
