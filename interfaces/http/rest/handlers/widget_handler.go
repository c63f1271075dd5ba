package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"bfd-backend/application/widget"
)

// WidgetHandler serves embed descriptors and the fallback affiliate link for
// the third-party flight search widget
type WidgetHandler struct {
	bridge *widget.Bridge
	logger *zap.Logger
}

// NewWidgetHandler creates a new widget handler
func NewWidgetHandler(bridge *widget.Bridge, logger *zap.Logger) *WidgetHandler {
	return &WidgetHandler{bridge: bridge, logger: logger}
}

// Embed handles GET /widget/embed. origin and destination are optional;
// when both are present the widget URL carries the route.
func (h *WidgetHandler) Embed(w http.ResponseWriter, r *http.Request) {
	origin := r.URL.Query().Get("origin")
	destination := r.URL.Query().Get("destination")

	embed := h.bridge.EmbedFor(origin, destination)
	h.respondJSON(w, http.StatusOK, embed)
}

// Fallback handles GET /widget/fallback: the tracked affiliate link shown
// when the widget fails to render. 204 when no referral URL is configured.
func (h *WidgetHandler) Fallback(w http.ResponseWriter, r *http.Request) {
	origin := r.URL.Query().Get("origin")
	destination := r.URL.Query().Get("destination")

	url := h.bridge.FallbackURL(origin, destination)
	if url == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *WidgetHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
