// Package catalog holds the static reference data the marketing site is built
// from: destination guides, programmatic SEO flight routes, and the flight
// deals grid. The tables are immutable; a Catalog is constructed once at
// startup and passed by reference to whatever needs lookups.
package catalog

import (
	"regexp"
	"strings"
	"time"

	"bfd-backend/domain/mission"
)

// SEOMeta is the per-page meta block rendered into crawlable pages
type SEOMeta struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Hero is the above-the-fold copy for a destination page
type Hero struct {
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

// BudgetHint is a low/typical flight price pair in a currency
type BudgetHint struct {
	Low      int    `json:"low"`
	Typical  int    `json:"typical"`
	Currency string `json:"currency"`
}

// BudgetRange is a min/max flight price band in a currency
type BudgetRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Midpoint returns the rounded midpoint of the range, used as a suggested budget
func (r BudgetRange) Midpoint() int {
	return (r.Min + r.Max + 1) / 2
}

// Neighborhood is one entry in a destination's neighborhood guide
type Neighborhood struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Sections are the long-form content blocks of a destination page
type Sections struct {
	WhyGo         string         `json:"whyGo"`
	Neighborhoods []Neighborhood `json:"neighborhoods"`
	SoloTips      []string       `json:"soloTips"`
	DayTrips      []string       `json:"dayTrips"`
}

// Destination is a rich, SEO-optimized destination guide. Each one generates a
// static crawlable page that feeds into the Mission Engine.
type Destination struct {
	Slug            string `json:"slug"`
	DestinationCode string `json:"destinationCode"`
	DestinationName string `json:"destinationName"`
	Country         string `json:"country"`
	Region          string `json:"region"`

	OriginCode string `json:"originCode"`
	OriginName string `json:"originName"`

	SEO  SEOMeta `json:"seo"`
	Hero Hero    `json:"hero"`

	SoloScore      int      `json:"soloScore"`
	SoloHighlights []string `json:"soloHighlights"`
	Vibes          []string `json:"vibes"`

	FlightBudget BudgetHint `json:"flightBudget"`

	BestMonths   []string `json:"bestMonths"`
	AvoidMonths  []string `json:"avoidMonths"`
	IdealTripMin int      `json:"idealTripMin"`
	IdealTripMax int      `json:"idealTripMax"`

	VisaInfo     string   `json:"visaInfo"`
	Timezone     string   `json:"timezone"`
	Languages    []string `json:"languages"`
	SafetyRating string   `json:"safetyRating"`

	Sections Sections `json:"sections"`
}

// Route is a programmatic SEO flight route ("toronto-to-lisbon"). Each one
// generates a static crawlable page that funnels users into the Mission Engine.
type Route struct {
	Slug string `json:"slug"`

	OriginCity    string `json:"originCity"`
	OriginIATA    string `json:"originIata"`
	OriginCountry string `json:"originCountry"`

	DestCity    string `json:"destCity"`
	DestIATA    string `json:"destIata"`
	DestCountry string `json:"destCountry"`

	RegionTag string `json:"regionTag"`

	BestMonths     []string    `json:"bestMonths"`
	BudgetRange    BudgetRange `json:"budgetRange"`
	TripLengthDays int         `json:"tripLengthDays"`

	Tags []string `json:"tags"`
}

// SuggestionRoute is a scoring candidate for the Suggestion Engine: a hub
// route annotated with the hints the scorer matches against.
type SuggestionRoute struct {
	ID               string   `json:"id"`
	OriginCode       string   `json:"originCode"`
	DestinationCode  string   `json:"destinationCode"`
	OriginLabel      string   `json:"originLabel"`
	DestinationLabel string   `json:"destinationLabel"`
	Rationale        string   `json:"rationale"`
	MinBudget        int      `json:"minBudget,omitempty"`
	GoodMonths       []string `json:"goodMonths,omitempty"`
	VibeMatch        []string `json:"vibeMatch,omitempty"`
}

// Deal is one card on the flight deals grid
type Deal struct {
	ID         string `json:"id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Price      int    `json:"price"`
	Currency   string `json:"currency"`
	BestSeason string `json:"bestSeason,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Catalog bundles the reference tables behind lookup methods
type Catalog struct {
	destinations []Destination
	routes       []Route
	suggestions  []SuggestionRoute
	deals        []Deal

	destBySlug  map[string]*Destination
	routeBySlug map[string]*Route
	dealByID    map[string]*Deal
}

// New builds the default catalog from the embedded tables
func New() *Catalog {
	return build(defaultDestinations, generateRoutes(), defaultSuggestionRoutes, defaultDeals)
}

func build(dests []Destination, routes []Route, suggestions []SuggestionRoute, deals []Deal) *Catalog {
	c := &Catalog{
		destinations: dests,
		routes:       routes,
		suggestions:  suggestions,
		deals:        deals,
		destBySlug:   make(map[string]*Destination, len(dests)),
		routeBySlug:  make(map[string]*Route, len(routes)),
		dealByID:     make(map[string]*Deal, len(deals)),
	}
	for i := range c.destinations {
		c.destBySlug[c.destinations[i].Slug] = &c.destinations[i]
	}
	for i := range c.routes {
		c.routeBySlug[c.routes[i].Slug] = &c.routes[i]
	}
	for i := range c.deals {
		c.dealByID[c.deals[i].ID] = &c.deals[i]
	}
	return c
}

// Destinations returns all destination guides in catalog order
func (c *Catalog) Destinations() []Destination {
	return c.destinations
}

// Routes returns all generated SEO routes in catalog order
func (c *Catalog) Routes() []Route {
	return c.routes
}

// SuggestionRoutes returns the scoring candidates in catalog order
func (c *Catalog) SuggestionRoutes() []SuggestionRoute {
	return c.suggestions
}

// Deals returns the deals grid in catalog order
func (c *Catalog) Deals() []Deal {
	return c.deals
}

// DestinationBySlug looks up a destination guide; ok is false for unknown slugs
func (c *Catalog) DestinationBySlug(slug string) (*Destination, bool) {
	d, ok := c.destBySlug[strings.ToLower(slug)]
	return d, ok
}

// RouteBySlug looks up an SEO route; ok is false for unknown slugs
func (c *Catalog) RouteBySlug(slug string) (*Route, bool) {
	r, ok := c.routeBySlug[strings.ToLower(slug)]
	return r, ok
}

// DealByID looks up a deal card; ok is false for unknown ids
func (c *Catalog) DealByID(id string) (*Deal, bool) {
	d, ok := c.dealByID[strings.ToLower(id)]
	return d, ok
}

// Mission bridges

// DestinationMission builds a Mission from a destination guide. Labels are
// derived here, once; they are never recomputed downstream.
func (d *Destination) Mission() mission.Mission {
	return mission.Mission{
		ID:               mission.RouteID(d.OriginCode, d.DestinationCode),
		OriginCode:       d.OriginCode,
		DestinationCode:  d.DestinationCode,
		OriginLabel:      d.OriginName + " (" + d.OriginCode + ")",
		DestinationLabel: d.DestinationName + " (" + d.DestinationCode + ")",
		Currency:         d.FlightBudget.Currency,
		Budget:           d.FlightBudget.Typical,
		Tags:             append([]string(nil), d.Vibes...),
		TravelerType:     mission.TravelerSolo,
		Notes:            d.Hero.Description,
		Source:           mission.SourceDeepLink,
	}
}

// Mission builds a Mission from an SEO route. The suggested budget is the
// midpoint of the route's budget range; the month is the first best month, or
// next calendar month when the route has none.
func (r *Route) Mission(now time.Time) mission.Mission {
	month := nextMonthName(now)
	if len(r.BestMonths) > 0 {
		month = r.BestMonths[0]
	}
	return mission.Mission{
		ID:               r.Slug,
		OriginCode:       r.OriginIATA,
		DestinationCode:  r.DestIATA,
		OriginLabel:      r.OriginCity + " (" + r.OriginIATA + ")",
		DestinationLabel: r.DestCity + " (" + r.DestIATA + ")",
		Currency:         r.BudgetRange.Currency,
		Budget:           r.BudgetRange.Midpoint(),
		TripLengthDays:   r.TripLengthDays,
		Month:            month,
		Tags:             append([]string(nil), r.Tags...),
		TravelerType:     mission.TravelerSolo,
		Source:           mission.SourceDeepLink,
	}
}

var iataInLabel = regexp.MustCompile(`\(([A-Z]{3})`)

// Mission builds a Mission from a deals-grid card. Deal labels carry the IATA
// code in parentheses ("Toronto (YYZ)"); multi-airport labels like
// "London (LHR/LGW)" resolve to the first code.
func (d *Deal) Mission() mission.Mission {
	return mission.Mission{
		ID:               d.ID,
		OriginCode:       codeFromLabel(d.From),
		DestinationCode:  codeFromLabel(d.To),
		OriginLabel:      d.From,
		DestinationLabel: d.To,
		Currency:         d.Currency,
		Budget:           d.Price,
		TravelerType:     mission.TravelerSolo,
		Notes:            d.Notes,
		Source:           mission.SourceDealsGrid,
	}
}

func codeFromLabel(label string) string {
	if m := iataInLabel.FindStringSubmatch(label); m != nil {
		return m[1]
	}
	return ""
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func nextMonthName(now time.Time) string {
	return monthNames[int(now.Month())%12]
}
