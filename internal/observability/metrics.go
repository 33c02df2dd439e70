// Package observability exposes the ingestor's OpenTelemetry metrics in Prometheus format.
package observability

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kurochkinivan/filings_ingestor/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "github.com/kurochkinivan/filings_ingestor"

type Metrics struct {
	provider  *sdkmetric.MeterProvider
	handler   http.Handler
	downloads metric.Int64Counter
	jobs      metric.Int64Counter
}

// InitMetrics creates a meter provider backed by its own Prometheus registry.
// Shutdown must be called on exit.
func InitMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	meter := provider.Meter(meterName)

	downloads, err := meter.Int64Counter("filings.downloads",
		metric.WithDescription("Filing downloads by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create downloads counter: %w", err)
	}

	jobs, err := meter.Int64Counter("filings.jobs",
		metric.WithDescription("Finished ingestion jobs by terminal phase"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create jobs counter: %w", err)
	}

	return &Metrics{
		provider:  provider,
		handler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		downloads: downloads,
		jobs:      jobs,
	}, nil
}

func (m *Metrics) DownloadFinished(ctx context.Context, outcome string) {
	m.downloads.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *Metrics) JobFinished(ctx context.Context, phase domain.Phase) {
	m.jobs.Add(ctx, 1, metric.WithAttributes(attribute.String("phase", phase.String())))
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

func (m *Metrics) Shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}
