// Package suggest ranks catalog routes against parsed trip intent.
package suggest

import (
	"sort"

	"bfd-backend/application/intent"
	"bfd-backend/domain/catalog"
	"bfd-backend/domain/mission"
)

// MaxSuggestions caps the shortlist returned to the caller
const MaxSuggestions = 3

// defaultOriginCode is the hub candidates are filtered to when the intent has
// no recognized origin. Single-origin assumption for v1.
const defaultOriginCode = "YTO"

// Scoring weights. All additive; a candidate's total can go negative.
const (
	budgetFitBonus    = 10
	budgetMissPenalty = -5
	monthFitBonus     = 8
	vibeMatchBonus    = 3
	durationFitBonus  = 2
)

// Suggest scores every suggestion route in the catalog against the parsed
// intent and returns up to three missions, best first. Only candidates with a
// strictly positive score survive; ties keep catalog order. Deterministic for
// a fixed catalog.
func Suggest(parsed intent.ParsedIntent, cat *catalog.Catalog) []mission.Mission {
	type scored struct {
		route catalog.SuggestionRoute
		score int
	}

	var candidates []scored
	for _, route := range cat.SuggestionRoutes() {
		if route.OriginCode != defaultOriginCode {
			continue
		}
		if s := scoreRoute(route, parsed); s > 0 {
			candidates = append(candidates, scored{route: route, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}

	suggestions := make([]mission.Mission, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, toMission(c.route, parsed))
	}
	return suggestions
}

func scoreRoute(route catalog.SuggestionRoute, parsed intent.ParsedIntent) int {
	score := 0

	if parsed.Budget > 0 && route.MinBudget > 0 {
		if parsed.Budget >= route.MinBudget {
			score += budgetFitBonus
		} else {
			score += budgetMissPenalty
		}
	}

	if parsed.MonthHint != "" {
		for _, month := range route.GoodMonths {
			if month == parsed.MonthHint {
				score += monthFitBonus
				break
			}
		}
	}

	if len(parsed.VibeHints) > 0 {
		hints := make(map[string]bool, len(parsed.VibeHints))
		for _, v := range parsed.VibeHints {
			hints[v] = true
		}
		for _, v := range route.VibeMatch {
			if hints[v] {
				score += vibeMatchBonus
			}
		}
	}

	// Most routes accommodate a 7-14 day trip; generic bonus, not
	// route-specific.
	if parsed.DaysHint >= 7 && parsed.DaysHint <= 14 {
		score += durationFitBonus
	}

	return score
}

// toMission builds a suggestion card mission: the intent's budget is carried
// even when the route's own suggested price differs, and the route rationale
// rides along verbatim as the notes.
func toMission(route catalog.SuggestionRoute, parsed intent.ParsedIntent) mission.Mission {
	return mission.Mission{
		ID:               route.ID,
		OriginCode:       route.OriginCode,
		DestinationCode:  route.DestinationCode,
		OriginLabel:      route.OriginLabel,
		DestinationLabel: route.DestinationLabel,
		Currency:         "CAD",
		Budget:           parsed.Budget,
		TravelerType:     mission.TravelerSolo,
		Notes:            route.Rationale,
		Source:           mission.SourceMissionInput,
	}
}
