package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/galleypress/galley/internal/config"
	"github.com/galleypress/galley/internal/presets"
	"github.com/galleypress/galley/internal/sharelink"
	"github.com/galleypress/galley/internal/stats"
)

// Server is the HTTP API server for galley.
type Server struct {
	router         chi.Router
	presets        presets.Store
	share          *sharelink.Encoder
	paginateStats  *stats.Recorder
	preflightStats *stats.Recorder
	log            *slog.Logger
	cfg            config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(store presets.Store, share *sharelink.Encoder, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		presets:        store,
		share:          share,
		paginateStats:  stats.NewRecorder(cfg.StatsWindow),
		preflightStats: stats.NewRecorder(cfg.StatsWindow),
		log:            log,
		cfg:            cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// API endpoints, authenticated when an API key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/paginate", s.handlePaginate)
		r.Post("/api/join", s.handleJoin)
		r.Post("/api/preflight", s.handlePreflight)
		r.Get("/api/formats", s.handleFormats)

		r.Post("/api/import", s.handleImport)
		r.Post("/api/import/batch", s.handleBatchImport)

		r.Get("/api/presets", s.handleListPresets)
		r.Post("/api/presets", s.handleCreatePreset)
		r.Put("/api/presets", s.handleReplacePresets)
		r.Delete("/api/presets/{presetID}", s.handleDeletePreset)

		r.Post("/api/share", s.handleCreateShare)
		r.Get("/api/share/{token}", s.handleResolveShare)

		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
