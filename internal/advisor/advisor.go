// Package advisor derives personalized sustainability recommendations
// from a scored trip. Rules fire on the visitor's stated choices, not
// on the computed scores, so every recommendation names something the
// visitor can actually change.
package advisor

import (
	"github.com/kahua-labs/malama/internal/scoring"
	"github.com/kahua-labs/malama/internal/trip"
)

// Advisory is one actionable recommendation.
type Advisory struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Advisory categories.
const (
	CategoryTransportation = "transportation"
	CategoryAccommodation  = "accommodation"
	CategoryWater          = "water"
	CategoryWaste          = "waste"
	CategoryFood           = "food"
	CategoryActivities     = "activities"
	CategoryGeneral        = "general"
)

// Derive evaluates the rule set in a fixed order and returns every
// advisory that applies. When fewer than three specific rules fire,
// two general advisories are appended so a visitor always leaves with
// something to act on. The full list is returned; callers decide how
// many to present.
func Derive(p trip.Parameters, r scoring.ImpactResult) []Advisory {
	var out []Advisory

	if p.LocalTransport == trip.TransportRentalSUV || p.LocalTransport == trip.TransportRentalEconomy {
		out = append(out, Advisory{
			Category:    CategoryTransportation,
			Title:       "Consider sustainable transportation",
			Description: "Opt for Oahu's reliable public bus system (TheBus) or the Waikiki Trolley for getting around tourist areas. You can also rent bikes or use the Biki bikeshare system in Honolulu.",
		})
	}

	if p.FlightDistanceMiles > 3000 {
		out = append(out, Advisory{
			Category:    CategoryTransportation,
			Title:       "Offset your flight emissions",
			Description: "Consider purchasing carbon offsets for your long-distance flight to Hawaii. Many airlines offer this option, or you can use services like Cool Effect or Sustainable Travel International.",
		})
	}

	if (p.Accommodation == trip.AccommodationStandardHotel || p.Accommodation == trip.AccommodationLuxuryResort) && p.ACUsageHours > 6 {
		out = append(out, Advisory{
			Category:    CategoryAccommodation,
			Title:       "Reduce AC usage",
			Description: "Hawaii's natural trade winds provide excellent ventilation. Try using ceiling fans and opening windows instead of running AC constantly. When using AC, set it to 76-78°F (24-26°C).",
		})
	}

	if !p.LinenReuse {
		out = append(out, Advisory{
			Category:    CategoryAccommodation,
			Title:       "Reuse hotel towels and linens",
			Description: "Let your hotel know you don't need daily linen changes. This saves water and energy, which are both precious resources on an island.",
		})
	}

	if p.ShowerMinutes > 5 {
		out = append(out, Advisory{
			Category:    CategoryWater,
			Title:       "Take shorter showers",
			Description: "Fresh water is a limited resource on Oahu. Try to limit showers to 5 minutes or less, especially after beach activities when a quick rinse is sufficient.",
		})
	}

	if p.PoolHours > 3 {
		out = append(out, Advisory{
			Category:    CategoryWater,
			Title:       "Balance pool and ocean time",
			Description: "While resort pools are enjoyable, consider spending more time in the ocean. Hawaii's beaches offer natural swimming opportunities without the water and chemical use of pools.",
		})
	}

	if !p.ReusableBottle {
		out = append(out, Advisory{
			Category:    CategoryWaste,
			Title:       "Bring a reusable water bottle",
			Description: "Plastic waste is a significant issue on Oahu, with limited landfill space. Carry a reusable water bottle - Hawaii tap water is clean and safe to drink.",
		})
	}

	if !p.CleanupParticipation {
		out = append(out, Advisory{
			Category:    CategoryWaste,
			Title:       "Join a beach cleanup",
			Description: "Consider participating in a beach cleanup through organizations like Sustainable Coastlines Hawaii or the Surfrider Foundation. This is a great way to give back to the places you're enjoying.",
		})
	}

	if p.LocalFoodShare < 0.5 {
		out = append(out, Advisory{
			Category:    CategoryFood,
			Title:       "Eat more local food",
			Description: "Over 85% of Hawaii's food is imported. Support local farmers and reduce carbon emissions by choosing restaurants that serve locally-sourced ingredients, and shopping at farmers markets.",
		})
	}

	if !p.SustainableSeafood {
		out = append(out, Advisory{
			Category:    CategoryFood,
			Title:       "Choose sustainable seafood",
			Description: "Hawaii's marine ecosystems are fragile. When ordering seafood, ask about sustainable options or check the Seafood Watch app to make ocean-friendly choices.",
		})
	}

	if p.HasActivity(trip.ActivityMotorizedWaterSports) || p.HasActivity(trip.ActivityATVTour) {
		out = append(out, Advisory{
			Category:    CategoryActivities,
			Title:       "Choose low-impact activities",
			Description: "Consider eco-friendly alternatives like kayaking, paddleboarding, or electric boat tours that minimize noise pollution and marine ecosystem disruption.",
		})
	}

	if p.HasActivity(trip.ActivityReefSnorkeling) && !p.ReefSafeSunscreen {
		out = append(out, Advisory{
			Category:    CategoryActivities,
			Title:       "Use reef-safe sunscreen",
			Description: "Hawaii has banned sunscreens containing oxybenzone and octinoxate because they damage coral reefs. Look for mineral-based sunscreens with zinc oxide or titanium dioxide.",
		})
	}

	if p.HasActivity(trip.ActivityWildlifeTour) && !p.WildlifeDistance {
		out = append(out, Advisory{
			Category:    CategoryActivities,
			Title:       "Maintain distance from wildlife",
			Description: "Hawaii law requires keeping at least 50 feet from sea turtles, monk seals, and other protected species. Never touch or chase wildlife - observe respectfully from a distance.",
		})
	}

	if len(out) < 3 {
		out = append(out,
			Advisory{
				Category:    CategoryGeneral,
				Title:       "Support Hawaiian conservation efforts",
				Description: "Consider donating to local conservation organizations like The Nature Conservancy Hawaii or volunteering with a Malama Hawaii program during your stay.",
			},
			Advisory{
				Category:    CategoryGeneral,
				Title:       "Learn about Hawaiian culture",
				Description: "Understanding Hawaiian culture and values like 'malama 'aina' (caring for the land) can enhance your visit and inspire more sustainable choices. Visit cultural sites respectfully.",
			},
		)
	}

	return out
}
