package catalog

// defaultDeals is the flight deals grid on the homepage
var defaultDeals = []Deal{
	{
		ID:         "yyz-lis",
		From:       "Toronto (YYZ)",
		To:         "Lisbon (LIS)",
		Price:      550,
		Currency:   "CAD",
		BestSeason: "March–May, Sept–Nov",
		Notes:      "Shoulder season, midweek departures, one carry-on only. Perfect for a 7-day Iberian loop starting in Lisbon.",
	},
	{
		ID:         "yyz-mad",
		From:       "Toronto (YYZ)",
		To:         "Madrid (MAD)",
		Price:      580,
		Currency:   "CAD",
		BestSeason: "March–May, Oct–Nov",
		Notes:      "Direct flights available. Great base for exploring central Spain solo. Book 2-3 months ahead for best prices.",
	},
	{
		ID:         "yyz-bcn",
		From:       "Toronto (YYZ)",
		To:         "Barcelona (BCN)",
		Price:      620,
		Currency:   "CAD",
		BestSeason: "April–June, Sept–Oct",
		Notes:      "Slightly pricier but worth it for the vibe. Midweek departures save $100+. Perfect for a 5-day solo adventure.",
	},
	{
		ID:         "yyz-opo",
		From:       "Toronto (YYZ)",
		To:         "Porto (OPO)",
		Price:      520,
		Currency:   "CAD",
		BestSeason: "March–May, Sept–Nov",
		Notes:      "Hidden gem route. Smaller airport, fewer crowds, cheaper than Lisbon. Ideal for a relaxed solo trip.",
	},
	{
		ID:         "yyz-lon",
		From:       "Toronto (YYZ)",
		To:         "London (LHR/LGW)",
		Price:      650,
		Currency:   "CAD",
		BestSeason: "March–May, Sept–Nov",
		Notes:      "Classic route with lots of options. Use as a hub to hop to other European cities via budget airlines.",
	},
	{
		ID:         "yyz-ams",
		From:       "Toronto (YYZ)",
		To:         "Amsterdam (AMS)",
		Price:      640,
		Currency:   "CAD",
		BestSeason: "April–June, Sept",
		Notes:      "Easy first solo trip: everyone speaks English and trains reach half of Europe from Centraal.",
	},
	{
		ID:         "yyz-mex",
		From:       "Toronto (YYZ)",
		To:         "Mexico City (MEX)",
		Price:      480,
		Currency:   "CAD",
		BestSeason: "March–May, Sept–Nov",
		Notes:      "Incredible value and zero jet lag. Tacos, museums, and fast Wi-Fi at half the price of Europe.",
	},
	{
		ID:         "yyz-bkk",
		From:       "Toronto (YYZ)",
		To:         "Bangkok (BKK)",
		Price:      980,
		Currency:   "CAD",
		BestSeason: "Nov–March",
		Notes:      "Long haul but worth it for trips of two weeks plus. Gateway fare to all of Southeast Asia.",
	},
}
