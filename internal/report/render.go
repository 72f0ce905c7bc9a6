package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/kahua-labs/malama/internal/advisor"
	"github.com/kahua-labs/malama/internal/scoring"
	"github.com/kahua-labs/malama/internal/trip"
)

const separatorWidth = 50

// Render builds the full terminal report for a scored trip. At most
// limit recommendations are shown; zero or negative shows them all.
func Render(p trip.Parameters, r scoring.ImpactResult, recs []advisor.Advisory, limit int) string {
	var out strings.Builder

	out.WriteString("🌺 Oahu Trip Sustainability Report\n")
	out.WriteString(strings.Repeat("─", separatorWidth) + "\n")
	out.WriteString(printer.Sprintf("%d-day stay, %.0f flight miles, %s\n\n",
		p.DurationDays, p.FlightDistanceMiles, p.Accommodation.Label()))

	band := scoreColor(r.OverallScore)
	out.WriteString(fmt.Sprintf("Overall score: %s/100\n",
		band.Sprint(r.OverallScore)))
	out.WriteString(band.Sprint(ScoreContext(r.OverallScore)) + "\n\n")

	out.WriteString("Category scores\n")
	for _, c := range scoring.Categories() {
		score := r.CategoryScore(c)
		out.WriteString(fmt.Sprintf("  %-14s %s %5.1f\n", c, scoreBar(score), score))
	}
	out.WriteString("\n")

	cmp := Compare(r)
	out.WriteString("Estimated impact\n")
	out.WriteString(fmt.Sprintf("  Carbon footprint  %-18s %s\n",
		FormatCarbon(r.CarbonFootprintTons), versusAverage(cmp.CarbonDeltaPct, cmp.CarbonStatus)))
	out.WriteString(fmt.Sprintf("  Water use         %-18s %s\n",
		FormatWater(r.WaterGallonsPerDay)+"/day", versusAverage(cmp.WaterDeltaPct, cmp.WaterStatus)))
	out.WriteString(fmt.Sprintf("  Waste             %-18s %s\n",
		fmt.Sprintf("%.1f lbs/day", r.WastePoundsPerDay), versusAverage(cmp.WasteDeltaPct, cmp.WasteStatus)))
	out.WriteString("\n")

	out.WriteString("Recommendations\n")
	shown := recs
	if limit > 0 && len(recs) > limit {
		shown = recs[:limit]
	}
	for _, rec := range shown {
		out.WriteString(fmt.Sprintf("  %s %s\n", CategoryIcon(rec.Category), rec.Title))
		out.WriteString("     " + rec.Description + "\n")
	}
	if hidden := len(recs) - len(shown); hidden > 0 {
		out.WriteString(fmt.Sprintf("  (%d more not shown)\n", hidden))
	}

	return out.String()
}

// scoreBar draws a ten-cell bar, one cell per ten points.
func scoreBar(score float64) string {
	filled := int(math.Round(score / 10))
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return scoreColor(int(score)).Sprint(strings.Repeat("█", filled)) +
		strings.Repeat("░", 10-filled)
}

func versusAverage(delta float64, status string) string {
	return fmt.Sprintf("(%.1f%% %s than the average visitor)", math.Abs(delta), status)
}
