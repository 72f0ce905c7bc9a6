// Package report renders scored trips for people: terminal output for
// the CLI and small presentation values (bands, icons, comparisons)
// shared with the HTTP API.
package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats numbers with English thousand separators.
var printer = message.NewPrinter(language.English)

// FormatCarbon renders a footprint in kilograms below one ton and in
// tons above it.
func FormatCarbon(tons float64) string {
	if tons < 1 {
		return fmt.Sprintf("%.0f kg CO₂e", tons*1000)
	}
	return fmt.Sprintf("%.1f tons CO₂e", tons)
}

// FormatWater renders a daily draw with thousand separators.
func FormatWater(gallons int) string {
	return printer.Sprintf("%d gallons", gallons)
}

// FormatPercent renders a fraction as a whole percentage, truncated.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%d%%", int(v*100))
}
