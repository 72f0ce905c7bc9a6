package report

import (
	"strings"

	"github.com/fatih/color"
)

// ScoreHex returns the web color for a score band. Bands step every
// twenty points from red to green.
func ScoreHex(score int) string {
	switch {
	case score >= 80:
		return "#4CAF50"
	case score >= 60:
		return "#8BC34A"
	case score >= 40:
		return "#FFC107"
	case score >= 20:
		return "#FF9800"
	default:
		return "#F44336"
	}
}

// ScoreContext returns the one-line reading of an overall score.
func ScoreContext(score int) string {
	switch {
	case score >= 80:
		return "Excellent! You're a sustainable tourism champion."
	case score >= 60:
		return "Good job! Your vacation has a lower-than-average impact."
	case score >= 40:
		return "Average impact. Some simple changes could make a big difference."
	default:
		return "Higher impact than most. Check recommendations to improve."
	}
}

// scoreColor maps a band to a terminal color. Orange has no ANSI
// equivalent so the two warning bands share the yellow family.
func scoreColor(score int) *color.Color {
	switch {
	case score >= 80:
		return color.New(color.FgGreen)
	case score >= 60:
		return color.New(color.FgHiGreen)
	case score >= 40:
		return color.New(color.FgYellow)
	case score >= 20:
		return color.New(color.FgHiRed)
	default:
		return color.New(color.FgRed)
	}
}

// CategoryIcon returns the marker shown next to an advisory category.
func CategoryIcon(category string) string {
	switch strings.ToLower(category) {
	case "transportation":
		return "🚗"
	case "energy":
		return "⚡"
	case "water":
		return "💧"
	case "waste":
		return "🗑️"
	case "food":
		return "🍲"
	case "activities":
		return "🏄"
	case "accommodation":
		return "🏨"
	case "general":
		return "🌱"
	default:
		return "🌴"
	}
}
