package scoring

import (
	"fmt"
	"math"
)

// Category identifies one of the six scored impact areas.
type Category string

const (
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
	CategoryActivities    Category = "activities"
	CategoryWater         Category = "water"
	CategoryWaste         Category = "waste"
	CategoryFood          Category = "food"
)

// Categories returns all scored categories in aggregation order.
func Categories() []Category {
	return []Category{
		CategoryTransport,
		CategoryAccommodation,
		CategoryActivities,
		CategoryWater,
		CategoryWaste,
		CategoryFood,
	}
}

// CategoryWeights defines the relative importance of each impact category.
// All weights must sum to 1.0 (±0.001 tolerance).
type CategoryWeights struct {
	Transport     float64 `yaml:"transport"`
	Accommodation float64 `yaml:"accommodation"`
	Activities    float64 `yaml:"activities"`
	Water         float64 `yaml:"water"`
	Waste         float64 `yaml:"waste"`
	Food          float64 `yaml:"food"`
}

// DefaultWeights returns the standard weight distribution. Transport and
// accommodation dominate because they drive most of a visitor's footprint.
func DefaultWeights() CategoryWeights {
	return CategoryWeights{
		Transport:     0.20,
		Accommodation: 0.20,
		Activities:    0.15,
		Water:         0.15,
		Waste:         0.15,
		Food:          0.15,
	}
}

// Sum returns the total of all weights.
func (w CategoryWeights) Sum() float64 {
	return w.Transport + w.Accommodation + w.Activities +
		w.Water + w.Waste + w.Food
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w CategoryWeights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range w.asList() {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

// For returns the weight assigned to a single category.
func (w CategoryWeights) For(c Category) float64 {
	switch c {
	case CategoryTransport:
		return w.Transport
	case CategoryAccommodation:
		return w.Accommodation
	case CategoryActivities:
		return w.Activities
	case CategoryWater:
		return w.Water
	case CategoryWaste:
		return w.Waste
	case CategoryFood:
		return w.Food
	default:
		return 0
	}
}

func (w CategoryWeights) asList() []float64 {
	return []float64{
		w.Transport, w.Accommodation, w.Activities,
		w.Water, w.Waste, w.Food,
	}
}
