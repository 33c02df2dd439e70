package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/filings_ingestor/internal/config"
	v1 "github.com/kurochkinivan/filings_ingestor/internal/controller/http/v1"
	"github.com/kurochkinivan/filings_ingestor/internal/domain"
	"github.com/kurochkinivan/filings_ingestor/internal/edgar"
	"github.com/kurochkinivan/filings_ingestor/internal/infrastructure/blobstore"
	"github.com/kurochkinivan/filings_ingestor/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/filings_ingestor/internal/observability"
	"github.com/kurochkinivan/filings_ingestor/internal/pipeline"
	"github.com/kurochkinivan/filings_ingestor/internal/ratelimit"
	"github.com/kurochkinivan/filings_ingestor/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const (
	reportsBuffer   = 100
	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

type components struct {
	pool         *pgxpool.Pool
	documents    *postgresql.DocumentsRepository
	registry     *edgar.Client
	store        *pipeline.Store
	orchestrator *pipeline.Orchestrator
	reporter     *pipeline.Reporter
	reports      chan *domain.JobReport
	metrics      *observability.Metrics
}

func (c *components) close(ctx context.Context) error {
	c.pool.Close()
	return c.metrics.Shutdown(ctx)
}

func (a *App) build(ctx context.Context) (*components, error) {
	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	documentsRepository := postgresql.NewDocumentsRepository(pool)
	companiesRepository := postgresql.NewCompaniesRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	reset, err := documentsRepository.ResetProcessingDocuments(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reset processing documents: %w", err)
	}
	if reset > 0 {
		a.log.InfoContext(ctx, "reset documents left in processing", slog.Int64("count", reset))
	}

	blobs, err := a.blobStore(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	limiter, err := ratelimit.New(a.cfg.Registry.RequestsPerSecond)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to init metrics: %w", err)
	}

	registryClient := edgar.NewClient(a.log,
		edgar.Config{
			UserAgent:      a.cfg.Registry.UserAgent,
			TickersURL:     a.cfg.Registry.CatalogURL,
			SubmissionsURL: a.cfg.Registry.SubmissionsURL,
			ArchivesURL:    a.cfg.Registry.ArchivesURL,
		},
		limiter,
		edgar.WithHTTPClient(&http.Client{Timeout: a.cfg.Registry.RequestTimeout}),
	)

	store := pipeline.NewStore(a.log,
		pipeline.StoreConfig{
			UserAgent:      a.cfg.Registry.UserAgent,
			MaxConcurrent:  a.cfg.Download.MaxConcurrent,
			RetryAttempts:  a.cfg.Download.RetryAttempts,
			RetryDelay:     a.cfg.Download.RetryDelay,
			AttemptTimeout: a.cfg.Download.AttemptTimeout,
		},
		limiter,
		blobs,
		documentsRepository,
		companiesRepository,
		txManager,
		pipeline.WithStoreMetrics(metrics),
	)

	reports := make(chan *domain.JobReport, reportsBuffer)

	orchestrator := pipeline.NewOrchestrator(a.log, registryClient, store, pipeline.NewRegistry(),
		pipeline.WithReports(reports),
		pipeline.WithOrchestratorMetrics(metrics),
	)

	reporter := pipeline.NewReporter(a.log, a.cfg.Jobs.ReportsDirectory, reports, report_generator.New())

	return &components{
		pool:         pool,
		documents:    documentsRepository,
		registry:     registryClient,
		store:        store,
		orchestrator: orchestrator,
		reporter:     reporter,
		reports:      reports,
		metrics:      metrics,
	}, nil
}

func (a *App) blobStore(ctx context.Context) (pipeline.BlobStore, error) {
	switch a.cfg.Storage.Backend {
	case config.StorageBackendMinio:
		a.log.InfoContext(ctx, "using minio storage",
			slog.String("endpoint", a.cfg.Storage.Minio.Endpoint),
			slog.String("bucket", a.cfg.Storage.Minio.Bucket),
		)

		store, err := blobstore.NewMinio(blobstore.MinioConfig{
			Endpoint:  a.cfg.Storage.Minio.Endpoint,
			AccessKey: a.cfg.Storage.Minio.AccessKey,
			SecretKey: a.cfg.Storage.Minio.SecretKey,
			Bucket:    a.cfg.Storage.Minio.Bucket,
			UseSSL:    a.cfg.Storage.Minio.UseSSL,
		})
		if err != nil {
			return nil, err
		}

		if err := store.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("failed to ensure bucket: %w", err)
		}

		return store, nil

	case config.StorageBackendLocal, "":
		a.log.InfoContext(ctx, "using local storage", slog.String("dir", a.cfg.Storage.Directory))

		store, err := blobstore.NewLocal(a.cfg.Storage.Directory)
		if err != nil {
			return nil, err
		}

		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", a.cfg.Storage.Backend)
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("storage_backend", a.cfg.Storage.Backend),
		slog.String("reports_dir", a.cfg.Jobs.ReportsDirectory),
		slog.Float64("requests_per_second", a.cfg.Registry.RequestsPerSecond),
		slog.Int64("max_concurrent_downloads", a.cfg.Download.MaxConcurrent),
	)

	c, err := a.build(ctx)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := c.close(closeCtx); err != nil {
			a.log.Error("failed to release resources", slog.String("err", err.Error()))
		}
	}()

	evictor := pipeline.NewEvictor(a.log, c.orchestrator, a.cfg.Jobs.EvictionInterval, a.cfg.Jobs.Retention)
	server := v1.NewServer(a.cfg.HTTP, a.log, v1.Dependencies{
		Jobs:      c.orchestrator,
		Validator: c.registry,
		Catalog:   c.registry,
		Documents: c.documents,
		Database:  c.pool,
		Storage:   c.store,
		Metrics:   c.metrics.Handler(),
	})

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "evictor started")
		return evictor.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return c.reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(
			server.Shutdown(shutdownCtx),
			c.orchestrator.Shutdown(shutdownCtx),
		)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

// Backfill ingests every ticker of a CSV watchlist and returns once all jobs have finished and
// their reports are written.
func (a *App) Backfill(ctx context.Context, filename string) error {
	a.log.InfoContext(ctx, "starting backfill", slog.String("watchlist", filename))

	c, err := a.build(ctx)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := c.close(closeCtx); err != nil {
			a.log.Error("failed to release resources", slog.String("err", err.Error()))
		}
	}()

	reporterCtx, stopReporter := context.WithCancel(ctx)
	defer stopReporter()

	erg, reporterCtx := errgroup.WithContext(reporterCtx)

	erg.Go(func() error {
		return c.reporter.Run(reporterCtx)
	})

	statuses, runErr := pipeline.NewBackfiller(a.log, c.orchestrator).RunFile(ctx, filename)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Reports may only be closed once no pipeline can send on them.
	if err := c.orchestrator.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("failed to stop jobs: %w", err))
		stopReporter()
	} else {
		close(c.reports)
	}

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		runErr = errors.Join(runErr, err)
	}

	failed := 0
	for _, status := range statuses {
		if status.Phase == domain.PhaseError {
			failed++
		}
	}

	a.log.InfoContext(ctx, "backfill finished",
		slog.Int("jobs", len(statuses)),
		slog.Int("failed", failed),
	)

	return runErr
}
