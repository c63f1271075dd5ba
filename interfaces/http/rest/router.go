// Package rest wires the HTTP surface: routes, middleware and handlers.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"bfd-backend/application/executor"
	"bfd-backend/application/ports"
	"bfd-backend/application/widget"
	"bfd-backend/domain/catalog"
	"bfd-backend/infrastructure/config"
	"bfd-backend/infrastructure/seo"
	"bfd-backend/interfaces/http/rest/handlers"
	"bfd-backend/interfaces/http/rest/middleware"
	"bfd-backend/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg       *config.Config
	exec      *executor.Executor
	store     ports.MissionStore
	analytics ports.AnalyticsSink
	catalog   *catalog.Catalog
	bridge    *widget.Bridge
	sitemap   *seo.Sitemap
	tokens    *auth.VisitorTokens
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	exec *executor.Executor,
	store ports.MissionStore,
	analytics ports.AnalyticsSink,
	cat *catalog.Catalog,
	bridge *widget.Bridge,
	sitemap *seo.Sitemap,
	tokens *auth.VisitorTokens,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		exec:      exec,
		store:     store,
		analytics: analytics,
		catalog:   cat,
		bridge:    bridge,
		sitemap:   sitemap,
		tokens:    tokens,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:5173", "https://bigflightdeals.com", "https://*.bigflightdeals.com"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-Visitor-Token"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Crawlable artifacts
	seoHandler := handlers.NewSEOHandler(rt.sitemap, rt.logger)
	router.Get("/sitemap.xml", seoHandler.Sitemap)
	router.Get("/robots.txt", seoHandler.Robots)

	router.Route("/api/v1", func(r chi.Router) {
		// Mission state is visitor-scoped
		r.Route("/missions", func(r chi.Router) {
			r.Use(middleware.Visitor(rt.tokens, rt.logger))

			missionHandler := handlers.NewMissionHandler(
				rt.exec, rt.store, rt.analytics, rt.catalog, rt.cfg.RecentMissionDays, rt.logger)
			r.Post("/execute", missionHandler.Execute)
			r.Post("/parse", missionHandler.Parse)
			r.Post("/suggest", missionHandler.Suggest)
			r.Post("/resume", missionHandler.Resume)
			r.Post("/refine", missionHandler.Refine)
			r.Get("/current", missionHandler.GetCurrent)
			r.Delete("/current", missionHandler.ClearCurrent)
			r.Get("/current/recent", missionHandler.CurrentRecent)
			r.Get("/saved", missionHandler.GetSaved)
			r.Post("/saved", missionHandler.Save)
			r.Delete("/saved/{missionID}", missionHandler.DeleteSaved)
		})

		// Catalog and widget endpoints are anonymous
		r.Route("/catalog", func(r chi.Router) {
			catalogHandler := handlers.NewCatalogHandler(rt.catalog, rt.analytics, rt.logger)
			r.Get("/destinations", catalogHandler.ListDestinations)
			r.Get("/destinations/{slug}", catalogHandler.GetDestination)
			r.Get("/destinations/{slug}/mission", catalogHandler.GetDestinationMission)
			r.Get("/routes", catalogHandler.ListRoutes)
			r.Get("/routes/{slug}", catalogHandler.GetRoute)
			r.Get("/routes/{slug}/mission", catalogHandler.GetRouteMission)
			r.Get("/deals", catalogHandler.ListDeals)
			r.Get("/deals/{dealID}/mission", catalogHandler.GetDealMission)
		})

		r.Route("/widget", func(r chi.Router) {
			widgetHandler := handlers.NewWidgetHandler(rt.bridge, rt.logger)
			r.Get("/embed", widgetHandler.Embed)
			r.Get("/fallback", widgetHandler.Fallback)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
