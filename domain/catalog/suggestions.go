package catalog

// defaultSuggestionRoutes is the candidate pool the Suggestion Engine scores
// parsed intent against. All candidates depart Toronto for v1; the rationale
// strings are surfaced verbatim on suggestion cards.
var defaultSuggestionRoutes = []SuggestionRoute{
	{
		ID:               "yto-lis",
		OriginCode:       "YTO",
		DestinationCode:  "LIS",
		OriginLabel:      "Toronto (YTO)",
		DestinationLabel: "Lisbon (LIS)",
		Rationale:        "Perfect for shoulder season. Great Wi-Fi, walkable city, excellent food scene. Budget-friendly once you arrive.",
		MinBudget:        500,
		GoodMonths:       []string{"March", "April", "May", "September", "October", "November"},
		VibeMatch:        []string{"warm", "wifi", "europe", "portugal", "city", "food"},
	},
	{
		ID:               "yto-bcn",
		OriginCode:       "YTO",
		DestinationCode:  "BCN",
		OriginLabel:      "Toronto (YTO)",
		DestinationLabel: "Barcelona (BCN)",
		Rationale:        "Vibrant city with beaches nearby. Great for solo travelers who want culture, nightlife, and good Wi-Fi.",
		MinBudget:        600,
		GoodMonths:       []string{"April", "May", "June", "September", "October"},
		VibeMatch:        []string{"warm", "wifi", "europe", "spain", "city", "nightlife", "beach"},
	},
	{
		ID:               "yto-mad",
		OriginCode:       "YTO",
		DestinationCode:  "MAD",
		OriginLabel:      "Toronto (YTO)",
		DestinationLabel: "Madrid (MAD)",
		Rationale:        "Central Spain hub. Direct flights available. Perfect base for exploring Iberia solo.",
		MinBudget:        580,
		GoodMonths:       []string{"March", "April", "May", "October", "November"},
		VibeMatch:        []string{"warm", "europe", "spain", "city", "food", "culture"},
	},
	{
		ID:               "yto-opo",
		OriginCode:       "YTO",
		DestinationCode:  "OPO",
		OriginLabel:      "Toronto (YTO)",
		DestinationLabel: "Porto (OPO)",
		Rationale:        "Hidden gem. Smaller airport, fewer crowds, cheaper than Lisbon. Great for a relaxed solo trip.",
		MinBudget:        520,
		GoodMonths:       []string{"March", "April", "May", "September", "October", "November"},
		VibeMatch:        []string{"warm", "europe", "portugal", "quiet", "cheap", "city"},
	},
	{
		ID:               "yto-tfs",
		OriginCode:       "YTO",
		DestinationCode:  "TFS",
		OriginLabel:      "Toronto (YTO)",
		DestinationLabel: "Tenerife (TFS)",
		Rationale:        "Year-round warm weather. Great Wi-Fi, affordable, perfect for digital nomads or beach lovers.",
		MinBudget:        700,
		GoodMonths:       []string{"January", "February", "March", "April", "May", "September", "October", "November", "December"},
		VibeMatch:        []string{"warm", "wifi", "beach", "tropical", "relax"},
	},
	{
		ID:               "yto-mex",
		OriginCode:       "YTO",
		DestinationCode:  "MEX",
		OriginLabel:      "Toronto (YTO)",
		DestinationLabel: "Mexico City (MEX)",
		Rationale:        "Incredible value, amazing food, great Wi-Fi. Perfect for budget solo travelers who love culture.",
		MinBudget:        600,
		GoodMonths:       []string{"March", "April", "May", "September", "October", "November"},
		VibeMatch:        []string{"warm", "wifi", "cheap", "city", "food", "culture", "budget"},
	},
	{
		ID:               "yto-bkk",
		OriginCode:       "YTO",
		DestinationCode:  "BKK",
		OriginLabel:      "Toronto (YTO)",
		DestinationLabel: "Bangkok (BKK)",
		Rationale:        "Gateway to Southeast Asia. Incredible value, great food, excellent Wi-Fi. Perfect for longer trips.",
		MinBudget:        900,
		GoodMonths:       []string{"November", "December", "January", "February", "March"},
		VibeMatch:        []string{"warm", "wifi", "asia", "se asia", "cheap", "food", "culture", "budget"},
	},
	{
		ID:               "yto-sgn",
		OriginCode:       "YTO",
		DestinationCode:  "SGN",
		OriginLabel:      "Toronto (YTO)",
		DestinationLabel: "Ho Chi Minh City (SGN)",
		Rationale:        "Ultra-budget friendly. Amazing food, great Wi-Fi, perfect for digital nomads on a tight budget.",
		MinBudget:        950,
		GoodMonths:       []string{"November", "December", "January", "February", "March"},
		VibeMatch:        []string{"warm", "wifi", "asia", "se asia", "cheap", "food", "budget"},
	},
}
