package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"bfd-backend/infrastructure/seo"
)

// SEOHandler serves the crawlable artifacts
type SEOHandler struct {
	sitemap *seo.Sitemap
	logger  *zap.Logger
}

// NewSEOHandler creates a new SEO handler
func NewSEOHandler(sitemap *seo.Sitemap, logger *zap.Logger) *SEOHandler {
	return &SEOHandler{sitemap: sitemap, logger: logger}
}

// Sitemap handles GET /sitemap.xml
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(h.sitemap.XML())); err != nil {
		h.logger.Error("Failed to write sitemap", zap.Error(err))
	}
}

// Robots handles GET /robots.txt
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(h.sitemap.RobotsTxt())); err != nil {
		h.logger.Error("Failed to write robots.txt", zap.Error(err))
	}
}
