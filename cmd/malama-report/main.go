// Package main implements the malama-report CLI for scoring an Oahu
// trip from the terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kahua-labs/malama/internal/advisor"
	"github.com/kahua-labs/malama/internal/oahu"
	"github.com/kahua-labs/malama/internal/report"
	"github.com/kahua-labs/malama/internal/scoring"
	"github.com/kahua-labs/malama/internal/trip"
)

var (
	days          = flag.Int("days", 7, "trip length in days")
	flightMiles   = flag.Float64("flight-miles", 3000, "one-way flight distance in miles")
	transport     = flag.String("transport", "rental_economy", "local transport mode (see -list-options)")
	lodging       = flag.String("lodging", "standard_hotel", "accommodation type (see -list-options)")
	acHours       = flag.Float64("ac-hours", 8, "daily air conditioning hours")
	linenReuse    = flag.Bool("linen-reuse", false, "reuse towels and linens")
	waterSaving   = flag.Float64("water-conservation", 0.5, "water conservation effort, 0 to 1")
	showerMinutes = flag.Float64("shower-minutes", 8, "average shower length in minutes")
	poolHours     = flag.Float64("pool-hours", 0, "daily pool/hot tub hours")
	bottle        = flag.Bool("reusable-bottle", false, "carry a reusable water bottle")
	bag           = flag.Bool("reusable-bag", false, "carry reusable shopping bags")
	refusal       = flag.Float64("single-use-refusal", 0.5, "effort to refuse single-use plastics, 0 to 1")
	cleanup       = flag.Bool("cleanup", false, "join a beach cleanup")
	localFood     = flag.Float64("local-food", 0.5, "share of meals from local sources, 0 to 1")
	plantBased    = flag.Float64("plant-based", 0.5, "share of plant-based meals, 0 to 1")
	seafood       = flag.Bool("sustainable-seafood", false, "choose sustainable seafood")
	foodWaste     = flag.Float64("food-waste-reduction", 0.5, "effort to avoid food waste, 0 to 1")
	activities    = flag.String("activities", "beach_relaxation", "comma-separated activities (see -list-options)")
	ecoTours      = flag.Bool("eco-tours", false, "book certified eco-tour operators")
	wildlife      = flag.Bool("wildlife-distance", false, "keep distance from wildlife")
	reefSafe      = flag.Bool("reef-safe", false, "use reef-safe sunscreen")
	recLimit      = flag.Int("recommendations", 5, "max recommendations to show, 0 shows all")
	listOptions   = flag.Bool("list-options", false, "list transport, lodging, and activity choices")
	noColor       = flag.Bool("no-color", false, "disable colored output")
	verbose       = flag.Bool("verbose", false, "enable verbose logging")
)

func main() {
	flag.Parse()

	if *listOptions {
		printOptions()
		return
	}

	if *noColor {
		color.NoColor = true
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	params := trip.Parameters{
		DurationDays:         *days,
		FlightDistanceMiles:  *flightMiles,
		LocalTransport:       trip.TransportMode(*transport),
		Accommodation:        trip.AccommodationType(*lodging),
		ACUsageHours:         *acHours,
		LinenReuse:           *linenReuse,
		WaterConservation:    *waterSaving,
		SingleUseRefusal:     *refusal,
		LocalFoodShare:       *localFood,
		PlantBasedShare:      *plantBased,
		FoodWasteReduction:   *foodWaste,
		ShowerMinutes:        *showerMinutes,
		PoolHours:            *poolHours,
		ReusableBottle:       *bottle,
		ReusableBag:          *bag,
		CleanupParticipation: *cleanup,
		SustainableSeafood:   *seafood,
		EcoTours:             *ecoTours,
		WildlifeDistance:     *wildlife,
		ReefSafeSunscreen:    *reefSafe,
	}
	for _, a := range strings.Split(*activities, ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		params.Activities = append(params.Activities, trip.Activity(a))
	}

	engine := scoring.NewEngine(oahu.DefaultFactors(), scoring.DefaultWeights(), logger)
	result, err := engine.ComputeImpact(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	recs := advisor.Derive(params, result)
	fmt.Print(report.Render(params, result, recs, *recLimit))
}

func printOptions() {
	fmt.Println("Transport modes:")
	for _, m := range trip.TransportModes() {
		fmt.Printf("  %-24s %s\n", string(m), m.Label())
	}
	fmt.Println("\nAccommodation types:")
	for _, a := range trip.AccommodationTypes() {
		fmt.Printf("  %-24s %s\n", string(a), a.Label())
	}
	fmt.Println("\nActivities:")
	for _, a := range trip.Activities() {
		fmt.Printf("  %-24s %s\n", string(a), a.Label())
	}
}
