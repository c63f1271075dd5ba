package catalog

import (
	"regexp"
	"strings"
)

// Programmatic SEO routes are generated from hub origins crossed with
// destination configs. Budget bands come from a per-origin-type,
// per-region, per-tier table rather than per-route guesses.

type hubOrigin struct {
	city     string
	iata     string
	country  string
	currency string
}

type destConfig struct {
	city       string
	iata       string
	country    string
	region     string
	bestMonths []string
	tripDays   int
	baseTags   []string
	budgetTier string // low | mid | high
}

var hubOrigins = map[string]hubOrigin{
	"toronto":   {city: "Toronto", iata: "YYZ", country: "Canada", currency: "CAD"},
	"montreal":  {city: "Montreal", iata: "YUL", country: "Canada", currency: "CAD"},
	"vancouver": {city: "Vancouver", iata: "YVR", country: "Canada", currency: "CAD"},
	"newyork":   {city: "New York", iata: "JFK", country: "United States", currency: "USD"},
	"boston":    {city: "Boston", iata: "BOS", country: "United States", currency: "USD"},
	"chicago":   {city: "Chicago", iata: "ORD", country: "United States", currency: "USD"},
	"london":    {city: "London", iata: "LHR", country: "United Kingdom", currency: "GBP"},
	"paris":     {city: "Paris", iata: "CDG", country: "France", currency: "EUR"},
	"amsterdam": {city: "Amsterdam", iata: "AMS", country: "Netherlands", currency: "EUR"},
}

var destConfigs = map[string]destConfig{
	// Europe
	"lisbon": {
		city: "Lisbon", iata: "LIS", country: "Portugal", region: "europe",
		bestMonths: []string{"March", "April", "May", "September", "October"},
		tripDays:   7, baseTags: []string{"solo", "budget", "wifi", "culture", "food"}, budgetTier: "low",
	},
	"barcelona": {
		city: "Barcelona", iata: "BCN", country: "Spain", region: "europe",
		bestMonths: []string{"April", "May", "June", "September", "October"},
		tripDays:   7, baseTags: []string{"solo", "budget", "beach", "nightlife", "culture"}, budgetTier: "mid",
	},
	"madrid": {
		city: "Madrid", iata: "MAD", country: "Spain", region: "europe",
		bestMonths: []string{"March", "April", "May", "October", "November"},
		tripDays:   5, baseTags: []string{"solo", "budget", "food", "culture", "nightlife"}, budgetTier: "mid",
	},
	"porto": {
		city: "Porto", iata: "OPO", country: "Portugal", region: "europe",
		bestMonths: []string{"March", "April", "May", "September", "October"},
		tripDays:   5, baseTags: []string{"solo", "budget", "food", "culture", "wifi"}, budgetTier: "low",
	},
	"rome": {
		city: "Rome", iata: "FCO", country: "Italy", region: "europe",
		bestMonths: []string{"April", "May", "September", "October"},
		tripDays:   7, baseTags: []string{"solo", "budget", "history", "food", "culture"}, budgetTier: "mid",
	},
	"athens": {
		city: "Athens", iata: "ATH", country: "Greece", region: "europe",
		bestMonths: []string{"April", "May", "June", "September", "October"},
		tripDays:   7, baseTags: []string{"solo", "budget", "history", "beach", "culture"}, budgetTier: "low",
	},
	"prague": {
		city: "Prague", iata: "PRG", country: "Czech Republic", region: "europe",
		bestMonths: []string{"April", "May", "June", "September", "October"},
		tripDays:   5, baseTags: []string{"solo", "budget", "nightlife", "history", "culture"}, budgetTier: "low",
	},
	"budapest": {
		city: "Budapest", iata: "BUD", country: "Hungary", region: "europe",
		bestMonths: []string{"April", "May", "June", "September", "October"},
		tripDays:   5, baseTags: []string{"solo", "budget", "nightlife", "history", "culture"}, budgetTier: "low",
	},
	"istanbul": {
		city: "Istanbul", iata: "IST", country: "Turkey", region: "europe",
		bestMonths: []string{"April", "May", "September", "October", "November"},
		tripDays:   7, baseTags: []string{"solo", "budget", "history", "food", "culture"}, budgetTier: "low",
	},
	"vienna": {
		city: "Vienna", iata: "VIE", country: "Austria", region: "europe",
		bestMonths: []string{"April", "May", "June", "September", "October"},
		tripDays:   5, baseTags: []string{"solo", "budget", "culture", "history", "food"}, budgetTier: "mid",
	},
	"krakow": {
		city: "Krakow", iata: "KRK", country: "Poland", region: "europe",
		bestMonths: []string{"May", "June", "July", "August", "September"},
		tripDays:   5, baseTags: []string{"solo", "budget", "history", "culture", "nightlife"}, budgetTier: "low",
	},

	// UK & Ireland
	"london": {
		city: "London", iata: "LHR", country: "United Kingdom", region: "uk",
		bestMonths: []string{"April", "May", "June", "September"},
		tripDays:   7, baseTags: []string{"solo", "budget", "culture", "history", "food"}, budgetTier: "high",
	},
	"dublin": {
		city: "Dublin", iata: "DUB", country: "Ireland", region: "uk",
		bestMonths: []string{"May", "June", "July", "August", "September"},
		tripDays:   5, baseTags: []string{"solo", "budget", "culture", "nightlife", "history"}, budgetTier: "mid",
	},
	"edinburgh": {
		city: "Edinburgh", iata: "EDI", country: "United Kingdom", region: "uk",
		bestMonths: []string{"May", "June", "July", "August", "September"},
		tripDays:   5, baseTags: []string{"solo", "budget", "history", "culture", "hiking"}, budgetTier: "mid",
	},

	// Nordics
	"reykjavik": {
		city: "Reykjavik", iata: "KEF", country: "Iceland", region: "nordics",
		bestMonths: []string{"June", "July", "August", "September"},
		tripDays:   7, baseTags: []string{"solo", "budget", "hiking", "culture"}, budgetTier: "high",
	},
	"copenhagen": {
		city: "Copenhagen", iata: "CPH", country: "Denmark", region: "nordics",
		bestMonths: []string{"May", "June", "July", "August"},
		tripDays:   5, baseTags: []string{"solo", "budget", "culture", "food", "wifi"}, budgetTier: "high",
	},

	// Asia
	"bangkok": {
		city: "Bangkok", iata: "BKK", country: "Thailand", region: "asia",
		bestMonths: []string{"November", "December", "January", "February", "March"},
		tripDays:   10, baseTags: []string{"solo", "budget", "food", "culture", "wifi"}, budgetTier: "low",
	},
	"tokyo": {
		city: "Tokyo", iata: "NRT", country: "Japan", region: "asia",
		bestMonths: []string{"March", "April", "October", "November"},
		tripDays:   10, baseTags: []string{"solo", "budget", "food", "culture", "wifi"}, budgetTier: "mid",
	},
	"hochiminh": {
		city: "Ho Chi Minh City", iata: "SGN", country: "Vietnam", region: "asia",
		bestMonths: []string{"December", "January", "February", "March"},
		tripDays:   10, baseTags: []string{"solo", "budget", "food", "wifi", "cheap"}, budgetTier: "low",
	},

	// Americas & Caribbean
	"mexicocity": {
		city: "Mexico City", iata: "MEX", country: "Mexico", region: "americas",
		bestMonths: []string{"March", "April", "May", "September", "October", "November"},
		tripDays:   7, baseTags: []string{"solo", "budget", "food", "culture", "wifi"}, budgetTier: "low",
	},
	"medellin": {
		city: "Medellin", iata: "MDE", country: "Colombia", region: "americas",
		bestMonths: []string{"December", "January", "February", "July", "August"},
		tripDays:   10, baseTags: []string{"solo", "budget", "wifi", "culture", "nightlife"}, budgetTier: "low",
	},
	"sanjuan": {
		city: "San Juan", iata: "SJU", country: "Puerto Rico", region: "caribbean",
		bestMonths: []string{"December", "January", "February", "March", "April"},
		tripDays:   5, baseTags: []string{"solo", "budget", "beach", "history", "nightlife"}, budgetTier: "mid",
	},
	"cancun": {
		city: "Cancun", iata: "CUN", country: "Mexico", region: "caribbean",
		bestMonths: []string{"December", "January", "February", "March", "April"},
		tripDays:   7, baseTags: []string{"solo", "budget", "beach", "nightlife"}, budgetTier: "mid",
	},
}

type budgetBand struct{ min, max int }

// budgetBands[originType][region][tier]
var budgetBands = map[string]map[string]map[string]budgetBand{
	"canada": {
		"europe":    {"low": {450, 700}, "mid": {550, 850}, "high": {650, 1000}},
		"uk":        {"low": {500, 750}, "mid": {550, 850}, "high": {600, 950}},
		"nordics":   {"low": {500, 800}, "mid": {600, 900}, "high": {700, 1100}},
		"asia":      {"low": {750, 1100}, "mid": {900, 1300}, "high": {1000, 1500}},
		"americas":  {"low": {350, 550}, "mid": {450, 700}, "high": {550, 850}},
		"caribbean": {"low": {350, 550}, "mid": {400, 650}, "high": {450, 700}},
	},
	"usa": {
		"europe":    {"low": {400, 650}, "mid": {500, 800}, "high": {600, 950}},
		"uk":        {"low": {450, 700}, "mid": {500, 800}, "high": {550, 900}},
		"nordics":   {"low": {450, 750}, "mid": {550, 850}, "high": {650, 1000}},
		"asia":      {"low": {700, 1000}, "mid": {850, 1200}, "high": {950, 1400}},
		"americas":  {"low": {250, 450}, "mid": {350, 550}, "high": {450, 700}},
		"caribbean": {"low": {200, 400}, "mid": {300, 500}, "high": {350, 550}},
	},
	"europe": {
		"europe":    {"low": {50, 150}, "mid": {100, 250}, "high": {150, 350}},
		"uk":        {"low": {50, 150}, "mid": {80, 200}, "high": {100, 250}},
		"nordics":   {"low": {80, 200}, "mid": {120, 280}, "high": {150, 350}},
		"asia":      {"low": {400, 700}, "mid": {500, 850}, "high": {600, 1000}},
		"americas":  {"low": {400, 700}, "mid": {500, 850}, "high": {600, 950}},
		"caribbean": {"low": {450, 750}, "mid": {550, 900}, "high": {650, 1000}},
	},
}

var naOrigins = []string{"toronto", "montreal", "vancouver", "newyork", "boston", "chicago"}
var euOrigins = []string{"london", "paris", "amsterdam"}

var europeDests = []string{"lisbon", "barcelona", "madrid", "porto", "rome", "athens", "prague", "budapest", "istanbul", "vienna", "krakow"}
var ukDests = []string{"london", "dublin", "edinburgh"}
var nordicDests = []string{"reykjavik", "copenhagen"}
var asiaDests = []string{"bangkok", "tokyo", "hochiminh"}
var americasDests = []string{"mexicocity", "medellin"}
var caribbeanDests = []string{"sanjuan", "cancun"}

func originType(o hubOrigin) string {
	switch o.country {
	case "Canada":
		return "canada"
	case "United States":
		return "usa"
	default:
		return "europe"
	}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9-]`)

func citySlug(city string) string {
	s := strings.ToLower(city)
	s = strings.ReplaceAll(s, " ", "-")
	return slugStrip.ReplaceAllString(s, "")
}

func makeRoute(originKey, destKey string) (Route, bool) {
	origin, ok := hubOrigins[originKey]
	if !ok {
		return Route{}, false
	}
	dest, ok := destConfigs[destKey]
	if !ok {
		return Route{}, false
	}
	if origin.city == dest.city {
		return Route{}, false
	}

	band, ok := budgetBands[originType(origin)][dest.region][dest.budgetTier]
	if !ok {
		return Route{}, false
	}

	return Route{
		Slug:           citySlug(origin.city) + "-to-" + citySlug(dest.city),
		OriginCity:     origin.city,
		OriginIATA:     origin.iata,
		OriginCountry:  origin.country,
		DestCity:       dest.city,
		DestIATA:       dest.iata,
		DestCountry:    dest.country,
		RegionTag:      dest.region,
		BestMonths:     dest.bestMonths,
		BudgetRange:    BudgetRange{Min: band.min, Max: band.max, Currency: origin.currency},
		TripLengthDays: dest.tripDays,
		Tags:           dest.baseTags,
	}, true
}

func appendRoutes(routes []Route, origins, dests []string) []Route {
	for _, o := range origins {
		for _, d := range dests {
			if r, ok := makeRoute(o, d); ok {
				routes = append(routes, r)
			}
		}
	}
	return routes
}

// generateRoutes expands the origin/destination combination lists into the
// full SEO route catalog. Order is deterministic: combination lists are
// iterated in declaration order.
func generateRoutes() []Route {
	var routes []Route
	routes = appendRoutes(routes, naOrigins, europeDests)
	routes = appendRoutes(routes, naOrigins, ukDests)
	routes = appendRoutes(routes, naOrigins, nordicDests)
	routes = appendRoutes(routes, naOrigins, asiaDests)
	routes = appendRoutes(routes, naOrigins, americasDests)
	routes = appendRoutes(routes, naOrigins, caribbeanDests)
	routes = appendRoutes(routes, euOrigins, europeDests)
	routes = appendRoutes(routes, euOrigins, asiaDests)
	return routes
}
