// seed_profiles.go posts sample visitor profiles to a running malama API.
//
// Usage:
//
//	go run scripts/seed_profiles.go -api http://localhost:8700
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
)

type profile struct {
	Name string
	Trip map[string]interface{}
}

func profiles() []profile {
	return []profile{
		{
			Name: "inter-island steward",
			Trip: map[string]interface{}{
				"duration_days":         4,
				"flight_distance_miles": 200,
				"local_transport":       "public_transit",
				"accommodation":         "hostel",
				"ac_usage_hours":        0,
				"linen_reuse":           true,
				"water_conservation":    0.9,
				"single_use_refusal":    1.0,
				"local_food_share":      0.9,
				"plant_based_share":     0.8,
				"food_waste_reduction":  0.9,
				"shower_minutes":        4,
				"pool_hours":            0,
				"reusable_bottle":       true,
				"reusable_bag":          true,
				"cleanup_participation": true,
				"sustainable_seafood":   true,
				"activities":            []string{"trail_hiking", "cultural_sites"},
				"eco_tours":             true,
				"wildlife_distance":     true,
				"reef_safe_sunscreen":   true,
			},
		},
		{
			Name: "mainland family week",
			Trip: map[string]interface{}{
				"duration_days":         7,
				"flight_distance_miles": 3000,
				"local_transport":       "rental_economy",
				"accommodation":         "standard_hotel",
				"ac_usage_hours":        8,
				"linen_reuse":           true,
				"water_conservation":    0.5,
				"single_use_refusal":    0.5,
				"local_food_share":      0.5,
				"plant_based_share":     0.4,
				"food_waste_reduction":  0.5,
				"shower_minutes":        8,
				"pool_hours":            2,
				"reusable_bottle":       true,
				"reusable_bag":          false,
				"cleanup_participation": false,
				"sustainable_seafood":   false,
				"activities":            []string{"beach_relaxation", "reef_snorkeling", "shopping_dining"},
				"eco_tours":             false,
				"wildlife_distance":     true,
				"reef_safe_sunscreen":   true,
			},
		},
		{
			Name: "long-haul luxury",
			Trip: map[string]interface{}{
				"duration_days":         10,
				"flight_distance_miles": 6000,
				"local_transport":       "rental_suv",
				"accommodation":         "luxury_resort",
				"ac_usage_hours":        12,
				"linen_reuse":           false,
				"water_conservation":    0.1,
				"single_use_refusal":    0.1,
				"local_food_share":      0.2,
				"plant_based_share":     0.1,
				"food_waste_reduction":  0.2,
				"shower_minutes":        12,
				"pool_hours":            4,
				"reusable_bottle":       false,
				"reusable_bag":          false,
				"cleanup_participation": false,
				"sustainable_seafood":   false,
				"activities":            []string{"motorized_water_sports", "atv_tour", "wildlife_tour"},
				"eco_tours":             false,
				"wildlife_distance":     false,
				"reef_safe_sunscreen":   false,
			},
		},
	}
}

func main() {
	apiURL := flag.String("api", "http://localhost:8700", "malama API base URL")
	dryRun := flag.Bool("dry-run", false, "print profiles without posting")
	flag.Parse()

	if *dryRun {
		for i, p := range profiles() {
			body, _ := json.MarshalIndent(p.Trip, "", "  ")
			fmt.Printf("[%d] %s\n%s\n", i+1, p.Name, body)
		}
		return
	}

	client := &http.Client{}
	posted, skipped := 0, 0
	for _, p := range profiles() {
		body, _ := json.Marshal(p.Trip)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/calculations", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip %q: %v", p.Name, err)
			skipped++
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", uuid.NewString())

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("skip %q: %v", p.Name, err)
			skipped++
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			log.Printf("skip %q: status %d", p.Name, resp.StatusCode)
			skipped++
			continue
		}

		var out struct {
			Result struct {
				OverallScore int `json:"overall_score"`
			} `json:"result"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			resp.Body.Close()
			log.Printf("skip %q: decode response: %v", p.Name, err)
			skipped++
			continue
		}
		resp.Body.Close()

		log.Printf("%s: overall score %d", p.Name, out.Result.OverallScore)
		posted++
	}

	log.Printf("done: %d posted, %d skipped", posted, skipped)
}
