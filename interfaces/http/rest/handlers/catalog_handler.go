package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"bfd-backend/application/ports"
	"bfd-backend/domain/catalog"
)

// CatalogHandler serves the static reference data behind the marketing
// pages: destination guides, SEO routes and the deals grid, plus the bridges
// that turn each of them into a runnable mission.
type CatalogHandler struct {
	catalog   *catalog.Catalog
	analytics ports.AnalyticsSink
	logger    *zap.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog, analytics ports.AnalyticsSink, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: cat, analytics: analytics, logger: logger}
}

// destinationSummary is the index-page projection of a destination guide
type destinationSummary struct {
	Slug            string   `json:"slug"`
	DestinationName string   `json:"destinationName"`
	DestinationCode string   `json:"destinationCode"`
	Country         string   `json:"country"`
	SoloScore       int      `json:"soloScore"`
	Vibes           []string `json:"vibes"`
}

// ListDestinations handles GET /catalog/destinations
func (h *CatalogHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	dests := h.catalog.Destinations()
	summaries := make([]destinationSummary, 0, len(dests))
	for _, d := range dests {
		summaries = append(summaries, destinationSummary{
			Slug:            d.Slug,
			DestinationName: d.DestinationName,
			DestinationCode: d.DestinationCode,
			Country:         d.Country,
			SoloScore:       d.SoloScore,
			Vibes:           d.Vibes,
		})
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"destinations": summaries})
}

// GetDestination handles GET /catalog/destinations/{slug}
func (h *CatalogHandler) GetDestination(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	dest, ok := h.catalog.DestinationBySlug(slug)
	if !ok {
		h.respondError(w, http.StatusNotFound, "No such destination")
		return
	}
	h.respondJSON(w, http.StatusOK, dest)
}

// GetDestinationMission handles GET /catalog/destinations/{slug}/mission
func (h *CatalogHandler) GetDestinationMission(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	dest, ok := h.catalog.DestinationBySlug(slug)
	if !ok {
		h.respondError(w, http.StatusNotFound, "No such destination")
		return
	}

	m := dest.Mission()
	h.analytics.Track(r.Context(), "destination_mission_launched", map[string]string{
		"slug":        dest.Slug,
		"destination": m.DestinationCode,
	})
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"mission": m})
}

// routeSummary is the index-page projection of an SEO route
type routeSummary struct {
	Slug       string `json:"slug"`
	OriginCity string `json:"originCity"`
	OriginIATA string `json:"originIata"`
	DestCity   string `json:"destCity"`
	DestIATA   string `json:"destIata"`
}

// ListRoutes handles GET /catalog/routes
func (h *CatalogHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	routes := h.catalog.Routes()
	summaries := make([]routeSummary, 0, len(routes))
	for _, rt := range routes {
		summaries = append(summaries, routeSummary{
			Slug:       rt.Slug,
			OriginCity: rt.OriginCity,
			OriginIATA: rt.OriginIATA,
			DestCity:   rt.DestCity,
			DestIATA:   rt.DestIATA,
		})
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"routes": summaries})
}

// GetRoute handles GET /catalog/routes/{slug}
func (h *CatalogHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	route, ok := h.catalog.RouteBySlug(slug)
	if !ok {
		h.respondError(w, http.StatusNotFound, "No such route")
		return
	}

	h.analytics.Track(r.Context(), "route_page_view", map[string]string{
		"slug": route.Slug,
	})
	h.respondJSON(w, http.StatusOK, route)
}

// GetRouteMission handles GET /catalog/routes/{slug}/mission
func (h *CatalogHandler) GetRouteMission(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	route, ok := h.catalog.RouteBySlug(slug)
	if !ok {
		h.respondError(w, http.StatusNotFound, "No such route")
		return
	}

	m := route.Mission(time.Now())
	h.analytics.Track(r.Context(), "route_mission_started", map[string]string{
		"slug":        route.Slug,
		"origin":      m.OriginCode,
		"destination": m.DestinationCode,
	})
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"mission": m})
}

// ListDeals handles GET /catalog/deals
func (h *CatalogHandler) ListDeals(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"deals": h.catalog.Deals()})
}

// GetDealMission handles GET /catalog/deals/{dealID}/mission
func (h *CatalogHandler) GetDealMission(w http.ResponseWriter, r *http.Request) {
	dealID := chi.URLParam(r, "dealID")
	deal, ok := h.catalog.DealByID(dealID)
	if !ok {
		h.respondError(w, http.StatusNotFound, "No such deal")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"mission": deal.Mission()})
}

func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
