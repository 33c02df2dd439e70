package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/kurochkinivan/filings_ingestor/internal/app"
	"github.com/kurochkinivan/filings_ingestor/internal/config"
	"github.com/kurochkinivan/filings_ingestor/internal/edgar"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "filings_ingestor",
		Usage:   "Regulatory filings ingestion service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := logger(ctx)
			if err != nil {
				return err
			}

			return app.New(log, config.Load(cmd)).Run(ctx)
		},
		Commands: []*cli.Command{
			{
				Name:      "backfill",
				Usage:     "Ingest every ticker of a CSV watchlist (ticker,years,types) and exit",
				ArgsUsage: "WATCHLIST",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "watchlist",
						Aliases:   []string{"f"},
						Usage:     "Read tickers from `FILE`",
						Validator: validateFile(".csv"),
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					log, err := logger(ctx)
					if err != nil {
						return err
					}

					watchlist := cmd.String("watchlist")
					if watchlist == "" {
						watchlist = cmd.Args().First()
					}

					if watchlist == "" {
						return errors.New("watchlist file is required")
					}

					return app.New(log, config.Load(cmd)).Backfill(ctx, watchlist)
				},
			},
		},
	}
}

func logger(ctx context.Context) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}
	return log, nil
}

func flags() []cli.Flag {
	var configFile string

	source := func(key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(&configFile)))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateFile(".yml", ".yaml"),
			Usage:       "Load configuration from `FILE`",
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:     "user-agent",
			Aliases:  []string{"u"},
			Usage:    "Set the identifying User-Agent sent to the registry, e.g. \"Company admin@company.com\"",
			Sources:  source("registry.user_agent"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "catalog-url",
			Usage:   "Set the registry ticker catalog URL",
			Value:   edgar.DefaultTickersURL,
			Sources: source("registry.catalog_url"),
		},
		&cli.StringFlag{
			Name:    "submissions-url",
			Usage:   "Set the registry submissions base URL",
			Value:   edgar.DefaultSubmissionsURL,
			Sources: source("registry.submissions_url"),
		},
		&cli.StringFlag{
			Name:    "archives-url",
			Usage:   "Set the registry archives base URL",
			Value:   edgar.DefaultArchivesURL,
			Sources: source("registry.archives_url"),
		},
		&cli.Float64Flag{
			Name:    "requests-per-second",
			Usage:   "Set the ceiling on registry requests per second",
			Value:   9,
			Sources: source("registry.requests_per_second"),
			Validator: func(rps float64) error {
				if rps <= 0 {
					return fmt.Errorf("requests per second must be positive, got %v", rps)
				}
				return nil
			},
		},
		&cli.DurationFlag{
			Name:    "request-timeout",
			Usage:   "Set the timeout of registry index requests",
			Value:   30 * time.Second,
			Sources: source("registry.request_timeout"),
		},
		&cli.StringFlag{
			Name:    "storage-backend",
			Usage:   "Set the blob storage backend: local or minio",
			Value:   config.StorageBackendLocal,
			Sources: source("storage.backend"),
			Validator: func(backend string) error {
				if !slices.Contains([]string{config.StorageBackendLocal, config.StorageBackendMinio}, backend) {
					return fmt.Errorf("unknown storage backend %q", backend)
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:    "storage-dir",
			Aliases: []string{"d"},
			Usage:   "Set directory to store downloaded filings in",
			Value:   "data/filings",
			Sources: source("storage.dir"),
		},
		&cli.StringFlag{
			Name:    "minio-endpoint",
			Usage:   "Set MinIO endpoint",
			Value:   "localhost:9000",
			Sources: source("storage.minio.endpoint"),
		},
		&cli.StringFlag{
			Name:    "minio-access-key",
			Usage:   "Set MinIO access key",
			Sources: source("storage.minio.access_key"),
		},
		&cli.StringFlag{
			Name:    "minio-secret-key",
			Usage:   "Set MinIO secret key",
			Sources: source("storage.minio.secret_key"),
		},
		&cli.StringFlag{
			Name:    "minio-bucket",
			Usage:   "Set MinIO bucket",
			Value:   "filings",
			Sources: source("storage.minio.bucket"),
		},
		&cli.BoolFlag{
			Name:    "minio-use-ssl",
			Usage:   "Connect to MinIO over TLS",
			Sources: source("storage.minio.use_ssl"),
		},
		&cli.Int64Flag{
			Name:    "max-concurrent-downloads",
			Usage:   "Set the maximum number of concurrent downloads across all jobs",
			Value:   3,
			Sources: source("download.max_concurrent"),
		},
		&cli.IntFlag{
			Name:    "retry-attempts",
			Usage:   "Set the number of attempts per download",
			Value:   3,
			Sources: source("download.retry_attempts"),
		},
		&cli.DurationFlag{
			Name:    "retry-delay",
			Usage:   "Set the base delay between download attempts, doubled after each attempt",
			Value:   1 * time.Second,
			Sources: source("download.retry_delay"),
		},
		&cli.DurationFlag{
			Name:    "download-timeout",
			Usage:   "Set the timeout of a single download attempt",
			Value:   60 * time.Second,
			Sources: source("download.attempt_timeout"),
		},
		&cli.DurationFlag{
			Name:      "job-retention",
			Usage:     "Set how long finished jobs stay queryable",
			Value:     24 * time.Hour,
			Sources:   source("jobs.retention"),
			Validator: positiveDuration,
		},
		&cli.DurationFlag{
			Name:      "eviction-interval",
			Usage:     "Set how often finished jobs are evicted",
			Value:     10 * time.Minute,
			Sources:   source("jobs.eviction_interval"),
			Validator: positiveDuration,
		},
		&cli.StringFlag{
			Name:    "reports-dir",
			Aliases: []string{"r"},
			Usage:   "Set directory to write job reports to",
			Value:   "output",
			Sources: source("jobs.reports_dir"),
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  source("postgresql.host"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  source("postgresql.port"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  source("postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  source("postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "filings",
			Sources:  source("postgresql.dbname"),
			Required: true,
		},
		&cli.Int32Flag{
			Name:    "pg-max-conns",
			Usage:   "Set the maximum size of the PostgreSQL pool",
			Value:   10,
			Sources: source("postgresql.max_conns"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: source("http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: source("http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: source("http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: source("http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: source("http.write_timeout"),
		},
	}
}

func positiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %s", d)
	}
	return nil
}

func validateFile(extensions ...string) func(string) error {
	return func(name string) error {
		info, err := os.Stat(name)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%q does not exist", name)
			}
			return fmt.Errorf("failed to stat %q: %w", name, err)
		}

		if info.IsDir() {
			return fmt.Errorf("%q is a directory, not a file", name)
		}

		if ext := filepath.Ext(info.Name()); !slices.Contains(extensions, ext) {
			return fmt.Errorf("invalid extension %q, want one of %v", ext, extensions)
		}

		return nil
	}
}
