// Package intent turns free-text trip descriptions into structured hints.
// The parser is heuristic and ordered: first match wins per field, and the
// resolution order below is the contract. It is deliberately simple; do not
// reach for smarter NLP here.
package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedIntent is the ephemeral hint bag produced from one piece of text.
// It is never persisted and never merged with stored state; the Suggestion
// Engine is its only consumer.
type ParsedIntent struct {
	OriginHint string   `json:"originHint,omitempty"`
	Budget     int      `json:"budget,omitempty"`
	MonthHint  string   `json:"monthHint,omitempty"`
	DaysHint   int      `json:"daysHint,omitempty"`
	VibeHints  []string `json:"vibeHints"`
}

// Budget patterns in priority order: $1200 / $1,200, CAD 1200, USD 1200,
// 1200 dollars|cad|usd.
var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*(\d{1,6}(?:,\d{3})*)`),
	regexp.MustCompile(`cad\s*(\d{1,6}(?:,\d{3})*)`),
	regexp.MustCompile(`usd\s*(\d{1,6}(?:,\d{3})*)`),
	regexp.MustCompile(`\b(\d{1,6}(?:,\d{3})*)\s*(?:dollars?|cad|usd)`),
}

var (
	daysPattern  = regexp.MustCompile(`\b(\d+)\s*days?\b`)
	weeksPattern = regexp.MustCompile(`\b(\d+)\s*weeks?\b`)
)

// Literal week phrases, checked after the numeric patterns
var weekPhrases = []struct {
	phrase string
	days   int
}{
	{"one week", 7},
	{"two weeks", 14},
	{"three weeks", 21},
}

var months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Vibe vocabulary scanned independently; every match is kept. The scan order
// is fixed, so multi-word variants normalize before their parts would.
var vibeKeywords = []string{
	"warm", "cold", "beach", "hike", "city", "nightlife", "quiet",
	"wifi", "wi-fi", "cheap", "europe", "asia", "se asia", "southeast asia",
	"portugal", "spain", "iberia", "mediterranean", "tropical", "mountains",
	"culture", "food", "adventure", "relax", "party", "budget",
}

// Parse extracts budget, trip length, month, origin, and vibe hints from
// natural-language mission text. It never fails: unmatched fields stay zero
// and empty input yields an all-empty result.
func Parse(text string) ParsedIntent {
	lower := strings.ToLower(text)
	parsed := ParsedIntent{VibeHints: []string{}}

	for _, pattern := range budgetPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
				parsed.Budget = n
			}
			break
		}
	}

	if m := daysPattern.FindStringSubmatch(lower); m != nil {
		parsed.DaysHint, _ = strconv.Atoi(m[1])
	} else if m := weeksPattern.FindStringSubmatch(lower); m != nil {
		weeks, _ := strconv.Atoi(m[1])
		parsed.DaysHint = weeks * 7
	} else {
		for _, wp := range weekPhrases {
			if strings.Contains(lower, wp.phrase) {
				parsed.DaysHint = wp.days
				break
			}
		}
	}

	for _, month := range months {
		if strings.Contains(lower, month) {
			parsed.MonthHint = strings.ToUpper(month[:1]) + month[1:]
			break
		}
	}

	// Toronto is the only recognized origin at this layer. A single-origin
	// assumption, not a bug to work around silently.
	if strings.Contains(lower, "toronto") || strings.Contains(lower, "yyz") || strings.Contains(lower, "yto") {
		parsed.OriginHint = "Toronto"
	}

	seen := make(map[string]bool)
	for _, keyword := range vibeKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		normalized := keyword
		switch keyword {
		case "se asia", "southeast asia":
			normalized = "se asia"
		case "wi-fi":
			normalized = "wifi"
		}
		if !seen[normalized] {
			seen[normalized] = true
			parsed.VibeHints = append(parsed.VibeHints, normalized)
		}
	}

	return parsed
}
