package report

import "github.com/kahua-labs/malama/internal/scoring"

// Baselines for a typical one-week visitor.
const (
	AvgCarbonTons      = 1.2
	AvgWaterGallonsDay = 250.0
	AvgWastePoundsDay  = 5.2
)

// Comparison positions a trip against the average visitor. Deltas are
// percentages of the baseline; positive means below average.
type Comparison struct {
	CarbonDeltaPct float64 `json:"carbon_delta_pct"`
	CarbonStatus   string  `json:"carbon_status"`
	WaterDeltaPct  float64 `json:"water_delta_pct"`
	WaterStatus    string  `json:"water_status"`
	WasteDeltaPct  float64 `json:"waste_delta_pct"`
	WasteStatus    string  `json:"waste_status"`
}

// Compare measures the result against the visitor baselines.
func Compare(r scoring.ImpactResult) Comparison {
	carbon := (AvgCarbonTons - r.CarbonFootprintTons) / AvgCarbonTons * 100
	water := (AvgWaterGallonsDay - float64(r.WaterGallonsPerDay)) / AvgWaterGallonsDay * 100
	waste := (AvgWastePoundsDay - r.WastePoundsPerDay) / AvgWastePoundsDay * 100

	return Comparison{
		CarbonDeltaPct: carbon,
		CarbonStatus:   deltaStatus(carbon),
		WaterDeltaPct:  water,
		WaterStatus:    deltaStatus(water),
		WasteDeltaPct:  waste,
		WasteStatus:    deltaStatus(waste),
	}
}

func deltaStatus(delta float64) string {
	if delta > 0 {
		return "lower"
	}
	return "higher"
}
