package mission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMission() Mission {
	return Mission{
		ID:               "yyz-lis",
		OriginCode:       "YYZ",
		DestinationCode:  "LIS",
		OriginLabel:      "Toronto (YYZ)",
		DestinationLabel: "Lisbon (LIS)",
		Currency:         "CAD",
		Budget:           850,
		TravelerType:     TravelerSolo,
		Source:           SourceMissionInput,
	}
}

func TestMission_Validate(t *testing.T) {
	t.Run("valid mission passes", func(t *testing.T) {
		m := validMission()
		assert.NoError(t, m.Validate())
	})

	t.Run("missing id fails", func(t *testing.T) {
		m := validMission()
		m.ID = ""
		assert.Error(t, m.Validate())
	})

	t.Run("missing origin fails", func(t *testing.T) {
		m := validMission()
		m.OriginCode = ""
		assert.Error(t, m.Validate())
	})

	t.Run("origin equal to destination fails", func(t *testing.T) {
		m := validMission()
		m.DestinationCode = m.OriginCode
		assert.Error(t, m.Validate())
	})

	t.Run("negative budget fails", func(t *testing.T) {
		m := validMission()
		m.Budget = -100
		assert.Error(t, m.Validate())
	})

	t.Run("unknown cabin fails", func(t *testing.T) {
		m := validMission()
		m.Cabin = CabinClass("premium")
		assert.Error(t, m.Validate())
	})

	t.Run("valid date pair passes", func(t *testing.T) {
		m := validMission()
		m.DepartDate = "2026-05-01"
		m.ReturnDate = "2026-05-15"
		assert.NoError(t, m.Validate())
	})

	t.Run("return before depart fails", func(t *testing.T) {
		m := validMission()
		m.DepartDate = "2026-05-15"
		m.ReturnDate = "2026-05-01"
		assert.Error(t, m.Validate())
	})

	t.Run("malformed depart date fails", func(t *testing.T) {
		m := validMission()
		m.DepartDate = "May 1st"
		m.ReturnDate = "2026-05-15"
		assert.Error(t, m.Validate())
	})

	t.Run("single date skips range check", func(t *testing.T) {
		m := validMission()
		m.DepartDate = "2026-05-01"
		assert.NoError(t, m.Validate())
	})
}

func TestMission_AdultCount(t *testing.T) {
	m := validMission()
	assert.Equal(t, 1, m.AdultCount())

	m.Adults = 2
	assert.Equal(t, 2, m.AdultCount())

	m.Adults = -3
	assert.Equal(t, 1, m.AdultCount())
}

func TestMission_HasTag(t *testing.T) {
	m := validMission()
	m.Tags = []string{"warm", "wifi"}

	assert.True(t, m.HasTag("warm"))
	assert.False(t, m.HasTag("cold"))
}

func TestMission_Refine(t *testing.T) {
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	m := validMission()
	m.CreatedAt = "2026-08-01T00:00:00Z"
	m.Tags = []string{"warm"}

	refined := m.Refine(RefineRebook, at)

	assert.Equal(t, "yyz-lis-rebook-1788264000", refined.ID)
	assert.Equal(t, "", refined.CreatedAt)
	assert.Equal(t, m.OriginCode, refined.OriginCode)
	assert.Equal(t, m.DestinationCode, refined.DestinationCode)

	// tags are copied, not shared
	require.Len(t, refined.Tags, 1)
	refined.Tags[0] = "cold"
	assert.Equal(t, "warm", m.Tags[0])

	// original is untouched
	assert.Equal(t, "yyz-lis", m.ID)
	assert.Equal(t, "2026-08-01T00:00:00Z", m.CreatedAt)
}

func TestRouteID(t *testing.T) {
	assert.Equal(t, "yyz-lis", RouteID("YYZ", "LIS"))
	assert.Equal(t, "yto-bkk", RouteID("yto", "BKK"))
}
