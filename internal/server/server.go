// Package server exposes the projection engine and the saved-scenario store
// over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/nwgo/networth-projector/internal/simulation"
	"github.com/nwgo/networth-projector/internal/store"
)

// Server is the HTTP front end for the projection service.
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	engine *simulation.Engine
	store  *store.FileStore
}

// New builds a server around the given engine and store.
func New(cfg *Config, log zerolog.Logger, engine *simulation.Engine, st *store.FileStore) *Server {
	s := &Server{
		router: chi.NewRouter(),
		log:    log.With().Str("component", "server").Logger(),
		engine: engine,
		store:  st,
	}

	s.setupMiddleware(cfg.AllowedOrigins)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Calculation-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/simulate", s.handleSimulate)
	s.router.Post("/save", s.handleSave)
	s.router.Get("/load", s.handleLoad)
}

// Handler returns the routing tree, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

// engineLogger adapts zerolog to the engine's Logger interface.
type engineLogger struct {
	log zerolog.Logger
}

// NewEngineLogger wraps a zerolog logger for use by the projection engine.
func NewEngineLogger(log zerolog.Logger) simulation.Logger {
	return &engineLogger{log: log.With().Str("component", "engine").Logger()}
}

func (l *engineLogger) Debugf(format string, args ...any) { l.log.Debug().Msgf(format, args...) }
func (l *engineLogger) Infof(format string, args ...any)  { l.log.Info().Msgf(format, args...) }
func (l *engineLogger) Warnf(format string, args ...any)  { l.log.Warn().Msgf(format, args...) }
func (l *engineLogger) Errorf(format string, args ...any) { l.log.Error().Msgf(format, args...) }
