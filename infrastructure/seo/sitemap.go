// Package seo serves the crawlable surfaces: sitemap.xml and robots.txt,
// built from the catalog's destination and route pages.
package seo

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"bfd-backend/domain/catalog"
)

// staticPage is a hand-maintained sitemap entry
type staticPage struct {
	path       string
	priority   string
	changeFreq string
}

var staticPages = []staticPage{
	{path: "/", priority: "1.0", changeFreq: "weekly"},
	{path: "/destinations", priority: "0.9", changeFreq: "weekly"},
	{path: "/routes", priority: "0.9", changeFreq: "weekly"},
}

// Sitemap renders and caches the sitemap for the catalog. Regenerate rebuilds
// the cached document; reads are cheap and concurrent.
type Sitemap struct {
	baseURL string
	catalog *catalog.Catalog
	logger  *zap.Logger
	now     func() time.Time

	mu  sync.RWMutex
	xml string
}

// NewSitemap builds the initial document immediately so the first request is
// served from cache
func NewSitemap(baseURL string, cat *catalog.Catalog, logger *zap.Logger) *Sitemap {
	s := &Sitemap{
		baseURL: strings.TrimRight(baseURL, "/"),
		catalog: cat,
		logger:  logger,
		now:     time.Now,
	}
	s.Regenerate()
	return s
}

// XML returns the cached sitemap document
func (s *Sitemap) XML() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.xml
}

// Regenerate rebuilds the sitemap from the catalog
func (s *Sitemap) Regenerate() {
	lastMod := s.now().UTC().Format("2006-01-02")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	for _, page := range staticPages {
		writeURL(&b, s.baseURL+page.path, lastMod, page.changeFreq, page.priority)
	}
	for _, dest := range s.catalog.Destinations() {
		writeURL(&b, s.baseURL+"/destinations/"+dest.Slug, lastMod, "monthly", "0.8")
	}
	for _, route := range s.catalog.Routes() {
		writeURL(&b, s.baseURL+"/routes/"+route.Slug, lastMod, "weekly", "0.8")
	}

	b.WriteString("</urlset>\n")

	s.mu.Lock()
	s.xml = b.String()
	s.mu.Unlock()

	s.logger.Info("sitemap regenerated",
		zap.Int("destinations", len(s.catalog.Destinations())),
		zap.Int("routes", len(s.catalog.Routes())))
}

func writeURL(b *strings.Builder, loc, lastMod, changeFreq, priority string) {
	fmt.Fprintf(b, "  <url>\n    <loc>%s</loc>\n    <lastmod>%s</lastmod>\n    <changefreq>%s</changefreq>\n    <priority>%s</priority>\n  </url>\n",
		loc, lastMod, changeFreq, priority)
}

// RobotsTxt returns the robots policy pointing crawlers at the sitemap
func (s *Sitemap) RobotsTxt() string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", s.baseURL)
}
