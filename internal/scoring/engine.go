package scoring

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/kahua-labs/malama/internal/oahu"
	"github.com/kahua-labs/malama/internal/trip"
)

// ImpactResult captures the complete scoring output for a single trip.
type ImpactResult struct {
	OverallScore        int                  `json:"overall_score"`
	TransportScore      float64              `json:"transport_score"`
	AccommodationScore  float64              `json:"accommodation_score"`
	ActivitiesScore     float64              `json:"activities_score"`
	WaterScore          float64              `json:"water_score"`
	WasteScore          float64              `json:"waste_score"`
	FoodScore           float64              `json:"food_score"`
	CarbonFootprintTons float64              `json:"carbon_footprint_tons"`
	WaterGallonsPerDay  int                  `json:"water_gallons_per_day"`
	WastePoundsPerDay   float64              `json:"waste_pounds_per_day"`
	ImpactBreakdown     map[Category]float64 `json:"impact_breakdown"`
}

// CategoryScore returns the category's 0-100 score from the result.
func (r ImpactResult) CategoryScore(c Category) float64 {
	switch c {
	case CategoryTransport:
		return r.TransportScore
	case CategoryAccommodation:
		return r.AccommodationScore
	case CategoryActivities:
		return r.ActivitiesScore
	case CategoryWater:
		return r.WaterScore
	case CategoryWaste:
		return r.WasteScore
	case CategoryFood:
		return r.FoodScore
	default:
		return 0
	}
}

// Engine orchestrates the six-category weighted scoring pipeline.
type Engine struct {
	factors oahu.Factors
	weights CategoryWeights
	logger  *slog.Logger
}

// NewEngine creates an Engine with the given island factors and weights.
func NewEngine(factors oahu.Factors, weights CategoryWeights, logger *slog.Logger) *Engine {
	return &Engine{
		factors: factors,
		weights: weights,
		logger:  logger,
	}
}

// Factors returns the island factor set the engine scores against.
func (e *Engine) Factors() oahu.Factors {
	return e.factors
}

// ComputeImpact validates the trip and computes the full impact result.
func (e *Engine) ComputeImpact(p trip.Parameters) (ImpactResult, error) {
	if err := p.Validate(); err != nil {
		return ImpactResult{}, fmt.Errorf("compute impact: %w", err)
	}

	result := ImpactResult{
		TransportScore:      TransportScore(p, e.factors),
		AccommodationScore:  AccommodationScore(p, e.factors),
		ActivitiesScore:     ActivitiesScore(p, e.factors),
		WaterScore:          WaterScore(p, e.factors),
		WasteScore:          WasteScore(p, e.factors),
		FoodScore:           FoodScore(p, e.factors),
		CarbonFootprintTons: CarbonFootprintTons(p, e.factors),
		WaterGallonsPerDay:  WaterUsageGallonsPerDay(p, e.factors),
		WastePoundsPerDay:   WasteGenerationPoundsPerDay(p, e.factors),
	}

	weighted := result.TransportScore*e.weights.Transport +
		result.AccommodationScore*e.weights.Accommodation +
		result.ActivitiesScore*e.weights.Activities +
		result.WaterScore*e.weights.Water +
		result.WasteScore*e.weights.Waste +
		result.FoodScore*e.weights.Food

	result.OverallScore = int(math.Round(weighted))
	result.ImpactBreakdown = e.breakdown(result)

	e.logger.Debug("impact computed",
		"overall", result.OverallScore,
		"carbon_tons", result.CarbonFootprintTons,
		"water_gallons_day", result.WaterGallonsPerDay,
		"waste_pounds_day", result.WastePoundsPerDay,
	)

	return result, nil
}

// breakdown reports each category's weighted share of the overall
// score. When the overall score is zero every share is zero.
func (e *Engine) breakdown(r ImpactResult) map[Category]float64 {
	shares := make(map[Category]float64, 6)
	for _, c := range Categories() {
		if r.OverallScore > 0 {
			shares[c] = e.weights.For(c) * r.CategoryScore(c) / float64(r.OverallScore)
		} else {
			shares[c] = 0
		}
	}
	return shares
}

// CategoryResult captures one category's contribution to the overall score.
type CategoryResult struct {
	Category Category `json:"category"`
	Score    float64  `json:"score"`
	Weight   float64  `json:"weight"`
	Weighted float64  `json:"weighted"`
	Share    float64  `json:"share"`
}

// Explain expands an impact result into per-category contributions,
// in aggregation order.
func (e *Engine) Explain(r ImpactResult) []CategoryResult {
	out := make([]CategoryResult, 0, 6)
	for _, c := range Categories() {
		score := r.CategoryScore(c)
		weight := e.weights.For(c)
		out = append(out, CategoryResult{
			Category: c,
			Score:    score,
			Weight:   weight,
			Weighted: score * weight,
			Share:    r.ImpactBreakdown[c],
		})
	}
	return out
}
