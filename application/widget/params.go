// Package widget bridges missions to the third-party flight search widget.
// The widget is opaque beyond its configuration parameters.
package widget

import (
	"strconv"
	"strings"

	"bfd-backend/domain/mission"
)

// Params derives the query parameters for the widget from a mission.
// Dates pass through verbatim as ISO strings; reformatting happens only in
// the deep link builder. Locale, currency and marker are emitted only when
// the mission carries them, so the embed layer can apply environment
// defaults.
func Params(m mission.Mission) map[string]string {
	params := map[string]string{
		"origin":      m.OriginCode,
		"destination": m.DestinationCode,
	}

	if m.DepartDate != "" {
		params["depart_date"] = m.DepartDate
	}
	if m.ReturnDate != "" {
		params["return_date"] = m.ReturnDate
	}

	params["adults"] = strconv.Itoa(m.AdultCount())
	params["trip_class"] = tripClass(m.Cabin)

	if m.Locale != "" {
		params["locale"] = m.Locale
	}
	if m.Currency != "" {
		params["currency"] = strings.ToLower(m.Currency)
	}
	if m.Marker != "" {
		params["marker"] = m.Marker
	}

	return params
}

func tripClass(cabin mission.CabinClass) string {
	switch cabin {
	case mission.CabinFirst:
		return "3"
	case mission.CabinBusiness:
		return "2"
	default:
		return "0"
	}
}
