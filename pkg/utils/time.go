package utils

import "time"

// ISODate is the calendar-date layout used on mission depart/return dates.
const ISODate = "2006-01-02"

// NowRFC3339 returns the current time in RFC3339 format
func NowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ParseRFC3339 parses a time string in RFC3339 format
func ParseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ParseISODate parses an ISO calendar date ("2025-03-15")
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

// FormatDDMM renders a date as the DDMM fragment used in affiliate search paths
func FormatDDMM(t time.Time) string {
	return t.Format("0201")
}
