package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"bfd-backend/application/executor"
	"bfd-backend/application/intent"
	"bfd-backend/application/ports"
	"bfd-backend/application/suggest"
	"bfd-backend/domain/catalog"
	"bfd-backend/domain/mission"
	"bfd-backend/interfaces/http/rest/middleware"
)

// MissionHandler handles mission-related HTTP requests
type MissionHandler struct {
	exec       *executor.Executor
	store      ports.MissionStore
	analytics  ports.AnalyticsSink
	catalog    *catalog.Catalog
	recentDays int
	logger     *zap.Logger
}

// NewMissionHandler creates a new mission handler
func NewMissionHandler(
	exec *executor.Executor,
	store ports.MissionStore,
	analytics ports.AnalyticsSink,
	cat *catalog.Catalog,
	recentDays int,
	logger *zap.Logger,
) *MissionHandler {
	return &MissionHandler{
		exec:       exec,
		store:      store,
		analytics:  analytics,
		catalog:    cat,
		recentDays: recentDays,
		logger:     logger,
	}
}

// ParseRequest is the request body for parsing free-text trip intent
type ParseRequest struct {
	Text string `json:"text"`
}

// SuggestResponse carries the parsed intent and the ranked suggestion cards
type SuggestResponse struct {
	Intent      intent.ParsedIntent `json:"intent"`
	Suggestions []mission.Mission   `json:"suggestions"`
}

// RefineRequest is the request body for deriving a refined mission
type RefineRequest struct {
	Mission mission.Mission        `json:"mission"`
	Kind    mission.RefinementKind `json:"kind"`
}

// ResumeRequest is the request body for resuming a stored mission
type ResumeRequest struct {
	MissionID string `json:"missionId"`
	Source    string `json:"source,omitempty"`
}

// Execute handles POST /missions/execute. This is the single entry point for
// running any mission, whatever surface triggered it.
func (h *MissionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var m mission.Mission
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := m.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	visitorID, ok := middleware.GetVisitorID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Missing visitor identity")
		return
	}

	result := h.exec.Execute(r.Context(), visitorID, m)
	h.respondJSON(w, http.StatusOK, result)
}

// Parse handles POST /missions/parse
func (h *MissionHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, intent.Parse(req.Text))
}

// Suggest handles POST /missions/suggest: parse the text, score the catalog,
// return the shortlist
func (h *MissionHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	parsed := intent.Parse(req.Text)
	suggestions := suggest.Suggest(parsed, h.catalog)

	h.analytics.Track(r.Context(), "mission_suggestions_generated", map[string]string{
		"inputLength":     strconv.Itoa(len(req.Text)),
		"suggestionCount": strconv.Itoa(len(suggestions)),
	})

	h.respondJSON(w, http.StatusOK, SuggestResponse{
		Intent:      parsed,
		Suggestions: suggestions,
	})
}

// GetCurrent handles GET /missions/current. An absent mission is a null
// payload, not an error.
func (h *MissionHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := middleware.GetVisitorID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Missing visitor identity")
		return
	}

	current, err := h.store.GetCurrent(r.Context(), visitorID)
	if err != nil {
		h.logger.Warn("failed to read current mission", zap.Error(err))
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"mission": current})
}

// ClearCurrent handles DELETE /missions/current
func (h *MissionHandler) ClearCurrent(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := middleware.GetVisitorID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Missing visitor identity")
		return
	}

	if err := h.store.ClearCurrent(r.Context(), visitorID); err != nil {
		h.logger.Warn("failed to clear current mission", zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}

// CurrentRecent handles GET /missions/current/recent. Drives the resume
// banner; days defaults to the configured recency window.
func (h *MissionHandler) CurrentRecent(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := middleware.GetVisitorID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Missing visitor identity")
		return
	}

	days := h.recentDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.respondError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	recent, err := h.store.IsCurrentRecent(r.Context(), visitorID, days)
	if err != nil {
		h.logger.Warn("failed to check mission recency", zap.Error(err))
	}

	var current *mission.Mission
	if recent {
		current, _ = h.store.GetCurrent(r.Context(), visitorID)
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"recent":  recent,
		"mission": current,
	})
}

// GetSaved handles GET /missions/saved
func (h *MissionHandler) GetSaved(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := middleware.GetVisitorID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Missing visitor identity")
		return
	}

	saved, err := h.store.GetSaved(r.Context(), visitorID)
	if err != nil {
		h.logger.Warn("failed to read saved missions", zap.Error(err))
		saved = []mission.Mission{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"missions": saved})
}

// Save handles POST /missions/saved. The cap is a soft limit: hitting it is
// an expected state answered with an upsell signal, not a hard failure.
func (h *MissionHandler) Save(w http.ResponseWriter, r *http.Request) {
	var m mission.Mission
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := m.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if m.ID == "" {
		h.respondError(w, http.StatusBadRequest, "Mission id is required to save")
		return
	}

	visitorID, ok := middleware.GetVisitorID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Missing visitor identity")
		return
	}

	canSave, err := h.store.CanSave(r.Context(), visitorID)
	if err != nil {
		h.logger.Warn("failed to check saved cap", zap.Error(err))
	}
	if !canSave {
		h.respondJSON(w, http.StatusConflict, map[string]interface{}{
			"error":   true,
			"code":    "SOFT_LIMIT",
			"message": "Saved mission limit reached. Upgrade to Pro to save unlimited missions.",
		})
		return
	}

	if err := h.store.Save(r.Context(), visitorID, m); err != nil {
		h.logger.Warn("failed to save mission", zap.Error(err))
	}

	h.analytics.Track(r.Context(), "mission_saved", map[string]string{
		"id":          m.ID,
		"origin":      m.OriginCode,
		"destination": m.DestinationCode,
	})

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{"saved": true})
}

// DeleteSaved handles DELETE /missions/saved/{missionID}. Unknown IDs
// succeed; the end state is the same.
func (h *MissionHandler) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	missionID := chi.URLParam(r, "missionID")

	visitorID, ok := middleware.GetVisitorID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Missing visitor identity")
		return
	}

	if err := h.store.Remove(r.Context(), visitorID, missionID); err != nil {
		h.logger.Warn("failed to remove saved mission", zap.Error(err))
	}

	h.analytics.Track(r.Context(), "mission_deleted", map[string]string{
		"id": missionID,
	})

	w.WriteHeader(http.StatusNoContent)
}

// Resume handles POST /missions/resume: re-execute a mission the visitor
// already has, from the saved list or the current slot
func (h *MissionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	var req ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.MissionID == "" {
		h.respondError(w, http.StatusBadRequest, "missionId is required")
		return
	}

	visitorID, ok := middleware.GetVisitorID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Missing visitor identity")
		return
	}

	target := h.findMission(r, visitorID, req.MissionID)
	if target == nil {
		h.respondError(w, http.StatusNotFound, "No stored mission with that id")
		return
	}

	source := req.Source
	if source == "" {
		source = "resume"
	}
	h.analytics.Track(r.Context(), "mission_resumed", map[string]string{
		"id":          target.ID,
		"origin":      target.OriginCode,
		"destination": target.DestinationCode,
		"source":      source,
	})

	result := h.exec.Execute(r.Context(), visitorID, *target)
	h.respondJSON(w, http.StatusOK, result)
}

// findMission looks the ID up in the saved list, then the current slot
func (h *MissionHandler) findMission(r *http.Request, visitorID, missionID string) *mission.Mission {
	saved, err := h.store.GetSaved(r.Context(), visitorID)
	if err == nil {
		for i := range saved {
			if saved[i].ID == missionID {
				return &saved[i]
			}
		}
	}
	current, err := h.store.GetCurrent(r.Context(), visitorID)
	if err == nil && current != nil && current.ID == missionID {
		return current
	}
	return nil
}

// Refine handles POST /missions/refine: derive a new mission from an
// existing one with fresh provenance
func (h *MissionHandler) Refine(w http.ResponseWriter, r *http.Request) {
	var req RefineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	switch req.Kind {
	case mission.RefineEdit, mission.RefineResume, mission.RefineRebook:
	default:
		h.respondError(w, http.StatusBadRequest, "kind must be one of edit, resume, rebook")
		return
	}
	if err := req.Mission.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	refined := req.Mission.Refine(req.Kind, time.Now())
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"mission": refined})
}

func (h *MissionHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *MissionHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
