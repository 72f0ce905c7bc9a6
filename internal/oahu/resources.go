package oahu

// Resource is one educational link for visitors.
type Resource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// ResourceCategory groups resources under a visitor-facing heading.
type ResourceCategory struct {
	Category  string     `json:"category"`
	Resources []Resource `json:"resources"`
}

// TouristResources returns the static directory of sustainable-tourism
// resources for Oahu, in display order.
func TouristResources() []ResourceCategory {
	return []ResourceCategory{
		{
			Category: "Sustainable Accommodations",
			Resources: []Resource{
				{
					Name:        "Hawaii Green Business Program",
					Description: "Directory of hotels and accommodations certified for their sustainable practices in Hawaii.",
					URL:         "https://greenbusiness.hawaii.gov/",
				},
				{
					Name:        "Green Hotels Association",
					Description: "Information on eco-friendly accommodations and sustainable hotel practices in Hawaii.",
					URL:         "https://www.greenhotels.com/",
				},
			},
		},
		{
			Category: "Responsible Transportation",
			Resources: []Resource{
				{
					Name:        "Biki Bikeshare",
					Description: "Honolulu's bikeshare program offering an eco-friendly way to explore urban Oahu.",
					URL:         "https://gobiki.org/",
				},
				{
					Name:        "TheBus - Oahu Transit Services",
					Description: "Information about Honolulu's public bus system routes and schedules for tourists.",
					URL:         "http://www.thebus.org/",
				},
				{
					Name:        "Sustainable Transportation Guide",
					Description: "Guide to low-impact transportation options around the island.",
					URL:         "https://www.gohawaii.com/islands/oahu/travel-tips",
				},
			},
		},
		{
			Category: "Eco-Friendly Activities",
			Resources: []Resource{
				{
					Name:        "Hawaii Ecotourism Association",
					Description: "Directory of certified tour operators committed to sustainable practices in Hawaii.",
					URL:         "https://www.hawaiiecotourism.org/",
				},
				{
					Name:        "Sustainable Coastlines Hawaii",
					Description: "Organizes beach cleanups that tourists can join and provides education about marine conservation.",
					URL:         "https://www.sustainablecoastlineshawaii.org/",
				},
				{
					Name:        "Hawaii Wildlife Fund",
					Description: "Information on responsible wildlife viewing and conservation efforts tourists can support.",
					URL:         "https://www.wildhawaii.org/",
				},
			},
		},
		{
			Category: "Responsible Dining",
			Resources: []Resource{
				{
					Name:        "Slow Food Oahu",
					Description: "Guide to restaurants and markets featuring local, sustainable food options.",
					URL:         "https://www.slowfoodoahu.org/",
				},
				{
					Name:        "Hawaii Farm Bureau",
					Description: "Information on farmers markets where tourists can purchase local produce.",
					URL:         "https://hfbf.org/",
				},
				{
					Name:        "Seafood Watch Hawaii",
					Description: "Guide to sustainable seafood choices specific to Hawaii.",
					URL:         "https://www.seafoodwatch.org/",
				},
			},
		},
		{
			Category: "Conservation Programs",
			Resources: []Resource{
				{
					Name:        "Malama Hawaii Program",
					Description: "Volunteer opportunities for tourists to give back through conservation activities during their stay.",
					URL:         "https://www.gohawaii.com/malama",
				},
				{
					Name:        "Hawaii Conservation Alliance",
					Description: "Information on protected areas and conservation efforts tourists can support.",
					URL:         "https://www.hawaiiconservation.org/",
				},
				{
					Name:        "Coral Reef Alliance Hawaii",
					Description: "Educational resources on protecting Hawaii's coral reefs during tourist activities.",
					URL:         "https://coral.org/where-we-work/hawaii/",
				},
			},
		},
		{
			Category: "Cultural Sustainability",
			Resources: []Resource{
				{
					Name:        "Hawaii Tourism Authority - Responsible Tourism",
					Description: "Guidelines for respectful and sustainable tourism that honors Hawaiian culture.",
					URL:         "https://www.hawaiitourismauthority.org/responsible-tourism/",
				},
				{
					Name:        "Native Hawaiian Hospitality Association",
					Description: "Resources on culturally responsible tourism practices.",
					URL:         "https://www.nahha.com/",
				},
			},
		},
		{
			Category: "Zero Waste Travel",
			Resources: []Resource{
				{
					Name:        "Zero Waste Oahu",
					Description: "Tips and locations for reducing waste during your vacation on Oahu.",
					URL:         "https://www.zerowasteoahu.org/",
				},
				{
					Name:        "Kokua Hawaii Foundation",
					Description: "Educational resources on reducing plastic use during beach and ocean activities.",
					URL:         "https://kokuahawaiifoundation.org/",
				},
			},
		},
	}
}
