package catalog

// defaultDestinations are the rich destination guides. Origin defaults to
// Toronto for v1; adding hubs means adding entries, not changing code.
var defaultDestinations = []Destination{
	{
		Slug:            "lisbon",
		DestinationCode: "LIS",
		DestinationName: "Lisbon",
		Country:         "Portugal",
		Region:          "Europe",
		OriginCode:      "YYZ",
		OriginName:      "Toronto",
		SEO: SEOMeta{
			Title:       "Solo Travel to Lisbon from Toronto | Cheap Flights & Guide",
			Description: "Find cheap flights to Lisbon from Toronto. Perfect for solo travelers: great Wi-Fi, walkable streets, amazing food. Budget flights from $500 CAD.",
			Keywords:    []string{"lisbon solo travel", "toronto to lisbon flights", "cheap flights lisbon", "portugal solo trip", "lisbon digital nomad"},
		},
		Hero: Hero{
			Tagline:     "Europe's best-kept secret for solo travelers",
			Description: "Lisbon offers the perfect blend of old-world charm and modern amenities. Cobblestone streets, world-class pastéis de nata, and some of Europe's fastest Wi-Fi make it ideal for solo adventurers and digital nomads alike.",
		},
		SoloScore: 9,
		SoloHighlights: []string{
			"Extremely safe for solo travelers",
			"English widely spoken",
			"Excellent public transport",
			"Thriving digital nomad community",
			"Affordable compared to Western Europe",
		},
		Vibes:        []string{"wifi", "culture", "food", "walkable", "safe", "europe", "portugal"},
		FlightBudget: BudgetHint{Low: 450, Typical: 550, Currency: "CAD"},
		BestMonths:   []string{"March", "April", "May", "September", "October", "November"},
		AvoidMonths:  []string{"July", "August"},
		IdealTripMin: 5,
		IdealTripMax: 14,
		VisaInfo:     "Canadian citizens: No visa required for stays up to 90 days (Schengen)",
		Timezone:     "WET (UTC+0, UTC+1 summer)",
		Languages:    []string{"Portuguese", "English"},
		SafetyRating: "excellent",
		Sections: Sections{
			WhyGo: "Lisbon consistently ranks among the best cities for solo travelers. The combination of safety, affordability, and culture makes it a no-brainer. The city is compact enough to explore on foot, yet has enough depth for weeks of discovery.",
			Neighborhoods: []Neighborhood{
				{Name: "Alfama", Description: "The oldest district. Winding alleys, fado music, and authentic vibes. Best for: atmosphere seekers."},
				{Name: "Baixa", Description: "Downtown grid. Easy navigation, main shopping, transit hub. Best for: first-timers."},
				{Name: "Bairro Alto", Description: "Nightlife central. Quiet days, lively nights. Best for: social solo travelers."},
				{Name: "LX Factory", Description: "Creative hub in converted warehouse. Cafes, shops, Sunday market. Best for: digital nomads."},
			},
			SoloTips: []string{
				"Get a Viva Viagem card for metro/tram—much cheaper than single tickets",
				"Book Time Out Market lunch for communal seating and easy solo dining",
				"Join a free walking tour on day one to orient yourself",
				"Work from Copenhagen Coffee Lab or Fábrica Coffee Roasters for fast Wi-Fi",
			},
			DayTrips: []string{"Sintra (palaces & castles, 40 min)", "Cascais (beach town, 30 min)", "Setúbal (seafood & dolphins, 1 hr)"},
		},
	},
	{
		Slug:            "barcelona",
		DestinationCode: "BCN",
		DestinationName: "Barcelona",
		Country:         "Spain",
		Region:          "Europe",
		OriginCode:      "YYZ",
		OriginName:      "Toronto",
		SEO: SEOMeta{
			Title:       "Solo Travel to Barcelona from Toronto | Flights & Guide",
			Description: "Book cheap flights to Barcelona from Toronto. Beach, culture, nightlife—perfect for solo travelers. Flights from $600 CAD. Complete solo guide inside.",
			Keywords:    []string{"barcelona solo travel", "toronto to barcelona flights", "spain solo trip", "barcelona beach", "barcelona nightlife"},
		},
		Hero: Hero{
			Tagline:     "Where beach meets culture meets nightlife",
			Description: "Barcelona delivers everything a solo traveler could want: Mediterranean beaches, Gaudí architecture, world-class dining, and nightlife that doesn't start until midnight. It's a city where being alone never means being lonely.",
		},
		SoloScore: 9,
		SoloHighlights: []string{
			"Beach access right in the city",
			"Incredible food scene with tapas culture",
			"Easy to meet people at hostels and bars",
			"Walkable Gothic Quarter",
			"Strong digital nomad presence",
		},
		Vibes:        []string{"beach", "nightlife", "culture", "food", "wifi", "europe", "spain"},
		FlightBudget: BudgetHint{Low: 500, Typical: 650, Currency: "CAD"},
		BestMonths:   []string{"April", "May", "June", "September", "October"},
		AvoidMonths:  []string{"August"},
		IdealTripMin: 5,
		IdealTripMax: 10,
		VisaInfo:     "Canadian citizens: No visa required for stays up to 90 days (Schengen)",
		Timezone:     "CET (UTC+1, UTC+2 summer)",
		Languages:    []string{"Spanish", "Catalan", "English"},
		SafetyRating: "good",
		Sections: Sections{
			WhyGo: "Barcelona is the rare city that truly has it all. Morning coffee in the Gothic Quarter, afternoon at Barceloneta Beach, evening tapas crawl through El Born. The tapas culture means eating alone is not just accepted—it's the norm.",
			Neighborhoods: []Neighborhood{
				{Name: "Gothic Quarter", Description: "Medieval maze of streets. Historic, atmospheric, central. Best for: history buffs."},
				{Name: "El Born", Description: "Trendy boutiques and tapas bars. Best for: foodies."},
				{Name: "Gràcia", Description: "Village feel, local plazas, fewer tourists. Best for: longer stays."},
				{Name: "Barceloneta", Description: "Beachfront with seafood spots. Best for: beach lovers."},
			},
			SoloTips: []string{
				"Keep your phone zipped away on La Rambla—pickpockets target distracted tourists",
				"Book Sagrada Família tickets online weeks ahead",
				"Eat lunch as your main meal; menú del día is the best value in town",
			},
			DayTrips: []string{"Montserrat (mountain monastery, 1 hr)", "Sitges (beach town, 40 min)", "Girona (medieval old town, 1.5 hr)"},
		},
	},
	{
		Slug:            "porto",
		DestinationCode: "OPO",
		DestinationName: "Porto",
		Country:         "Portugal",
		Region:          "Europe",
		OriginCode:      "YYZ",
		OriginName:      "Toronto",
		SEO: SEOMeta{
			Title:       "Solo Travel to Porto from Toronto | Cheap Flights & Guide",
			Description: "Cheap flights to Porto from Toronto. Hidden-gem city for solo travelers: riverside charm, port wine, and prices well below Lisbon. Flights from $520 CAD.",
			Keywords:    []string{"porto solo travel", "toronto to porto flights", "cheap flights porto", "portugal solo trip"},
		},
		Hero: Hero{
			Tagline:     "Portugal's hidden gem, minus the crowds",
			Description: "Porto packs riverside views, azulejo-tiled churches, and the world's best port wine into a compact, walkable city. Smaller airport, fewer crowds, cheaper than Lisbon—ideal for a relaxed solo trip.",
		},
		SoloScore: 8,
		SoloHighlights: []string{
			"Cheaper than Lisbon across the board",
			"Compact and walkable riverside center",
			"Friendly locals, easygoing pace",
			"Great base for the Douro Valley",
		},
		Vibes:        []string{"quiet", "cheap", "food", "culture", "wifi", "europe", "portugal"},
		FlightBudget: BudgetHint{Low: 450, Typical: 520, Currency: "CAD"},
		BestMonths:   []string{"March", "April", "May", "September", "October", "November"},
		AvoidMonths:  []string{"August"},
		IdealTripMin: 4,
		IdealTripMax: 10,
		VisaInfo:     "Canadian citizens: No visa required for stays up to 90 days (Schengen)",
		Timezone:     "WET (UTC+0, UTC+1 summer)",
		Languages:    []string{"Portuguese", "English"},
		SafetyRating: "excellent",
		Sections: Sections{
			WhyGo: "Porto rewards slow travel. The Ribeira district tumbles down to the Douro in a jumble of tiled facades, and a glass of port across the river in Gaia costs less than a Toronto coffee. Solo travelers blend right in.",
			Neighborhoods: []Neighborhood{
				{Name: "Ribeira", Description: "Riverside postcard district. Best for: first-timers."},
				{Name: "Cedofeita", Description: "Galleries and indie shops. Best for: creatives."},
				{Name: "Vila Nova de Gaia", Description: "Port lodges across the river. Best for: wine lovers."},
			},
			SoloTips: []string{
				"Climb the Clérigos Tower early to beat tour groups",
				"A francesinha is a two-person meal; arrive hungry",
				"Day-trip the Douro Valley by train from São Bento",
			},
			DayTrips: []string{"Douro Valley (wine country, 2 hr)", "Guimarães (birthplace of Portugal, 1 hr)", "Aveiro (canals, 1 hr)"},
		},
	},
	{
		Slug:            "mexico-city",
		DestinationCode: "MEX",
		DestinationName: "Mexico City",
		Country:         "Mexico",
		Region:          "Americas",
		OriginCode:      "YYZ",
		OriginName:      "Toronto",
		SEO: SEOMeta{
			Title:       "Solo Travel to Mexico City from Toronto | Flights & Guide",
			Description: "Cheap flights to Mexico City from Toronto. Incredible value, world-class food, fast Wi-Fi—a budget solo traveler's dream. Flights from $450 CAD.",
			Keywords:    []string{"mexico city solo travel", "toronto to mexico city flights", "cdmx digital nomad", "cheap flights mexico"},
		},
		Hero: Hero{
			Tagline:     "Big-city energy at street-taco prices",
			Description: "Mexico City is one of the best value propositions in travel: museums rivaling Europe, a food scene that rewrites your standards, and neighborhoods built for wandering—all at prices that stretch a solo budget twice as far.",
		},
		SoloScore: 8,
		SoloHighlights: []string{
			"Exceptional value for money",
			"Huge digital nomad community in Roma/Condesa",
			"World-class museums and food",
			"Same time zone as Toronto (no jet lag)",
		},
		Vibes:        []string{"warm", "wifi", "cheap", "city", "food", "culture", "budget"},
		FlightBudget: BudgetHint{Low: 400, Typical: 480, Currency: "CAD"},
		BestMonths:   []string{"March", "April", "May", "September", "October", "November"},
		AvoidMonths:  []string{"June", "July"},
		IdealTripMin: 5,
		IdealTripMax: 14,
		VisaInfo:     "Canadian citizens: No visa required for stays up to 180 days",
		Timezone:     "CST (UTC-6)",
		Languages:    []string{"Spanish", "English in tourist areas"},
		SafetyRating: "moderate",
		Sections: Sections{
			WhyGo: "CDMX runs on contrasts: Aztec ruins beside Art Deco cafes, street tacos outside Michelin-listed kitchens. Stick to Roma, Condesa, and Coyoacán and the city feels like a village strung together by parks.",
			Neighborhoods: []Neighborhood{
				{Name: "Roma Norte", Description: "Cafes, galleries, nomad central. Best for: first-timers."},
				{Name: "Condesa", Description: "Leafy streets around two parks. Best for: runners and brunch."},
				{Name: "Coyoacán", Description: "Frida Kahlo's cobblestoned quarter. Best for: culture."},
			},
			SoloTips: []string{
				"Use Uber or Didi at night instead of street cabs",
				"Altitude is real at 2,240m—take day one slow",
				"Sunday is Paseo de la Reforma's car-free bike morning",
			},
			DayTrips: []string{"Teotihuacán (pyramids, 1 hr)", "Xochimilco (canals, 45 min)", "Puebla (colonial city, 2 hr)"},
		},
	},
}
