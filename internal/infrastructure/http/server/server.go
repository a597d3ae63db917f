// Package server assembles the chi router and HTTP server for the
// extraction API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/wellfed/extraction/internal/infrastructure/config"
	"github.com/wellfed/extraction/internal/infrastructure/http/handlers"
	"github.com/wellfed/extraction/internal/infrastructure/http/middleware"
	"github.com/wellfed/extraction/internal/infrastructure/monitoring"
)

// Server wraps the HTTP server and its router.
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	router   *chi.Mux
	server   *http.Server
	handlers *handlers.ExtractionHandlers
	metrics  *monitoring.MetricsCollector
}

// NewServer creates the HTTP server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	extractionHandlers *handlers.ExtractionHandlers,
	metrics *monitoring.MetricsCollector,
) *Server {
	s := &Server{
		config:   cfg,
		logger:   logger,
		handlers: extractionHandlers,
		metrics:  metrics,
	}

	s.router = s.setupRouter()
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	return s
}

// setupRouter configures the router with middleware and routes.
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	// Double the extraction limit to leave headroom for the JSON envelope.
	r.Use(middleware.MaxBytes(int64(s.config.Extraction.MaxInputBytes) * 2))

	if s.config.Monitoring.EnableMetrics {
		r.Use(middleware.Metrics(s.metrics))
		r.Method(http.MethodGet, s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	r.Get(s.config.Monitoring.HealthCheckPath, s.handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		if s.config.Features.MaintenanceMode {
			r.Use(middleware.Maintenance())
		}

		r.Post("/detect", s.handlers.Detect)
		r.Post("/extract", s.handlers.Extract)
		r.Post("/extract/recipe", s.handlers.ExtractRecipe)
		r.Post("/extract/workout", s.handlers.ExtractWorkout)

		r.Route("/extractions", func(r chi.Router) {
			r.Post("/", s.handlers.SaveExtraction)
			r.Get("/", s.handlers.ListExtractions)
			r.Get("/{id}", s.handlers.GetExtraction)
		})
	})

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("starting http server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
