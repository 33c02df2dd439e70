package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/filings_ingestor/internal/config"
)

type Dependencies struct {
	Jobs      JobsService
	Validator TickerValidator
	Catalog   CompanyCatalog
	Documents DocumentsRepository
	Database  Pinger
	Storage   StorageService
	Metrics   http.Handler
}

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, log *slog.Logger, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, deps),
		},
	}
}

func NewRouter(log *slog.Logger, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	health := NewHealthHandler(log, deps.Database)

	r.Get("/health", health.Liveness)
	r.Get("/health/liveness", health.Liveness)
	r.Get("/health/readiness", health.Readiness)

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	jobs := NewJobsHandler(log, deps.Jobs, deps.Validator)
	companies := NewCompaniesHandler(log, deps.Jobs, deps.Validator, deps.Catalog, deps.Documents)
	storage := NewStorageHandler(log, deps.Storage)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", jobs.StartJob)
			r.Get("/", jobs.ListJobs)
			r.Get("/{job_id}", jobs.GetJob)
			r.Post("/{job_id}/cancel", jobs.CancelJob)
		})

		r.Get("/companies/search", companies.Search)

		r.Route("/companies/{ticker}", func(r chi.Router) {
			r.Get("/", companies.GetCompany)
			r.Get("/status", companies.GetStatus)
			r.Get("/validate", companies.Validate)
			r.Get("/documents", companies.GetDocuments)
		})

		r.Route("/storage", func(r chi.Router) {
			r.Get("/stats", storage.GetStats)
			r.Post("/cleanup", storage.Cleanup)
		})
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
