package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bfd-backend/domain/mission"
)

func TestCatalog_DestinationLookup(t *testing.T) {
	c := New()

	d, ok := c.DestinationBySlug("lisbon")
	require.True(t, ok)
	assert.Equal(t, "LIS", d.DestinationCode)
	assert.Equal(t, "Portugal", d.Country)

	_, ok = c.DestinationBySlug("LISBON")
	assert.True(t, ok)

	_, ok = c.DestinationBySlug("atlantis")
	assert.False(t, ok)
}

func TestCatalog_RouteLookup(t *testing.T) {
	c := New()

	r, ok := c.RouteBySlug("toronto-to-lisbon")
	require.True(t, ok)
	assert.Equal(t, "YYZ", r.OriginIATA)
	assert.Equal(t, "LIS", r.DestIATA)
	assert.Equal(t, "europe", r.RegionTag)
	assert.Equal(t, BudgetRange{Min: 450, Max: 700, Currency: "CAD"}, r.BudgetRange)

	_, ok = c.RouteBySlug("toronto-to-narnia")
	assert.False(t, ok)
}

func TestCatalog_RouteGeneration(t *testing.T) {
	c := New()
	routes := c.Routes()

	// 6 NA origins x 23 destinations plus 3 EU origins x 14 destinations
	assert.Len(t, routes, 180)

	seen := make(map[string]bool)
	for _, r := range routes {
		assert.False(t, seen[r.Slug], "duplicate slug %s", r.Slug)
		seen[r.Slug] = true
		assert.NotEmpty(t, r.OriginIATA)
		assert.NotEmpty(t, r.DestIATA)
		assert.Greater(t, r.BudgetRange.Max, r.BudgetRange.Min)
		assert.NotEmpty(t, r.BudgetRange.Currency)
	}

	// multi-word city names slugify cleanly
	_, ok := c.RouteBySlug("toronto-to-ho-chi-minh-city")
	assert.True(t, ok)
}

func TestCatalog_DealLookup(t *testing.T) {
	c := New()

	d, ok := c.DealByID("yyz-bkk")
	require.True(t, ok)
	assert.Equal(t, "Bangkok (BKK)", d.To)

	_, ok = c.DealByID("yyz-xxx")
	assert.False(t, ok)
}

func TestBudgetRange_Midpoint(t *testing.T) {
	assert.Equal(t, 575, BudgetRange{Min: 450, Max: 700}.Midpoint())
	assert.Equal(t, 500, BudgetRange{Min: 400, Max: 599}.Midpoint())
}

func TestDestination_Mission(t *testing.T) {
	c := New()
	d, ok := c.DestinationBySlug("lisbon")
	require.True(t, ok)

	m := d.Mission()

	assert.Equal(t, "yyz-lis", m.ID)
	assert.Equal(t, "YYZ", m.OriginCode)
	assert.Equal(t, "LIS", m.DestinationCode)
	assert.Equal(t, "Toronto (YYZ)", m.OriginLabel)
	assert.Equal(t, "Lisbon (LIS)", m.DestinationLabel)
	assert.Equal(t, "CAD", m.Currency)
	assert.Equal(t, 550, m.Budget)
	assert.Equal(t, mission.TravelerSolo, m.TravelerType)
	assert.Equal(t, mission.SourceDeepLink, m.Source)
	assert.NoError(t, m.Validate())
}

func TestRoute_Mission(t *testing.T) {
	c := New()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	r, ok := c.RouteBySlug("toronto-to-lisbon")
	require.True(t, ok)

	m := r.Mission(now)

	assert.Equal(t, "toronto-to-lisbon", m.ID)
	assert.Equal(t, "YYZ", m.OriginCode)
	assert.Equal(t, "LIS", m.DestinationCode)
	assert.Equal(t, 575, m.Budget)
	assert.Equal(t, 7, m.TripLengthDays)
	assert.Equal(t, "March", m.Month)
	assert.Equal(t, mission.SourceDeepLink, m.Source)
	assert.NoError(t, m.Validate())
}

func TestRoute_MissionFallsBackToNextMonth(t *testing.T) {
	r := Route{
		Slug:        "toronto-to-nowhere",
		OriginCity:  "Toronto",
		OriginIATA:  "YYZ",
		DestCity:    "Nowhere",
		DestIATA:    "NWR",
		BudgetRange: BudgetRange{Min: 400, Max: 600, Currency: "CAD"},
	}

	m := r.Mission(time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "January", m.Month)

	m = r.Mission(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "October", m.Month)
}

func TestDeal_Mission(t *testing.T) {
	c := New()

	d, ok := c.DealByID("yyz-lon")
	require.True(t, ok)

	m := d.Mission()

	assert.Equal(t, "yyz-lon", m.ID)
	assert.Equal(t, "YYZ", m.OriginCode)
	// multi-airport labels resolve to the first code
	assert.Equal(t, "LHR", m.DestinationCode)
	assert.Equal(t, mission.SourceDealsGrid, m.Source)
	assert.NoError(t, m.Validate())
}
