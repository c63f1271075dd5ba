package seo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bfd-backend/domain/catalog"
)

func TestSitemap_ContainsAllPages(t *testing.T) {
	cat := catalog.New()
	sitemap := NewSitemap("https://bigflightdeals.com/", cat, zap.NewNop())

	xml := sitemap.XML()

	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, "<loc>https://bigflightdeals.com/</loc>")
	assert.Contains(t, xml, "<loc>https://bigflightdeals.com/destinations</loc>")
	assert.Contains(t, xml, "<loc>https://bigflightdeals.com/routes</loc>")

	for _, dest := range cat.Destinations() {
		assert.Contains(t, xml, "/destinations/"+dest.Slug+"</loc>")
	}

	// Spot-check a generated route page.
	require.NotEmpty(t, cat.Routes())
	assert.Contains(t, xml, "/routes/"+cat.Routes()[0].Slug+"</loc>")

	wantURLs := 3 + len(cat.Destinations()) + len(cat.Routes())
	assert.Equal(t, wantURLs, strings.Count(xml, "<url>"))
}

func TestSitemap_RegenerateRefreshesLastMod(t *testing.T) {
	cat := catalog.New()
	sitemap := NewSitemap("https://bigflightdeals.com", cat, zap.NewNop())
	sitemap.now = func() time.Time {
		return time.Date(2026, 9, 1, 4, 0, 0, 0, time.UTC)
	}

	sitemap.Regenerate()

	assert.Contains(t, sitemap.XML(), "<lastmod>2026-09-01</lastmod>")
}

func TestRobotsTxt(t *testing.T) {
	cat := catalog.New()
	sitemap := NewSitemap("https://bigflightdeals.com", cat, zap.NewNop())

	robots := sitemap.RobotsTxt()

	assert.Contains(t, robots, "User-agent: *")
	assert.Contains(t, robots, "Sitemap: https://bigflightdeals.com/sitemap.xml")
}
