package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bfd-backend/domain/mission"
)

func TestParams_Defaults(t *testing.T) {
	m := mission.Mission{
		OriginCode:      "YYZ",
		DestinationCode: "LIS",
	}

	params := Params(m)

	assert.Equal(t, "YYZ", params["origin"])
	assert.Equal(t, "LIS", params["destination"])
	assert.Equal(t, "1", params["adults"])
	assert.Equal(t, "0", params["trip_class"])
	assert.NotContains(t, params, "depart_date")
	assert.NotContains(t, params, "return_date")
	assert.NotContains(t, params, "locale")
	assert.NotContains(t, params, "currency")
	assert.NotContains(t, params, "marker")
}

func TestParams_FullMission(t *testing.T) {
	m := mission.Mission{
		OriginCode:      "YYZ",
		DestinationCode: "BKK",
		DepartDate:      "2026-03-05",
		ReturnDate:      "2026-03-19",
		Adults:          2,
		Cabin:           mission.CabinBusiness,
		Currency:        "CAD",
		Locale:          "en",
		Marker:          "605276",
	}

	params := Params(m)

	assert.Equal(t, "2026-03-05", params["depart_date"], "dates pass through verbatim")
	assert.Equal(t, "2026-03-19", params["return_date"])
	assert.Equal(t, "2", params["adults"])
	assert.Equal(t, "2", params["trip_class"])
	assert.Equal(t, "cad", params["currency"], "currency is lowercased")
	assert.Equal(t, "en", params["locale"])
	assert.Equal(t, "605276", params["marker"])
}

func TestParams_TripClass(t *testing.T) {
	tests := []struct {
		cabin mission.CabinClass
		want  string
	}{
		{mission.CabinFirst, "3"},
		{mission.CabinBusiness, "2"},
		{mission.CabinEconomy, "0"},
		{"", "0"},
	}

	for _, tt := range tests {
		m := mission.Mission{OriginCode: "YYZ", DestinationCode: "LIS", Cabin: tt.cabin}
		assert.Equal(t, tt.want, Params(m)["trip_class"], "cabin %q", tt.cabin)
	}
}
