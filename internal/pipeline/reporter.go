package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

// Reporter renders a summary document for every completed job it receives.
type Reporter struct {
	log             *slog.Logger
	outputDir       string
	reports         <-chan *domain.JobReport
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.JobReport,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		reports:         reports,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case report, ok := <-r.reports:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("job_id", report.Job.JobID),
				slog.String("ticker", report.Job.Ticker),
				slog.Int("documents_count", len(report.Documents)),
			)

			log.InfoContext(ctx, "received job report")

			path, err := r.processReport(report)
			if err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
				continue
			}

			if path != "" {
				log.InfoContext(ctx, "report generated", slog.String("path", path))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// processReport returns the written path, or "" when the job stored nothing.
func (r *Reporter) processReport(report *domain.JobReport) (string, error) {
	if len(report.Documents) == 0 {
		return "", nil
	}

	path := filepath.Join(r.outputDir, fmt.Sprintf("%s_%s.pdf", report.Job.Ticker, report.Job.JobID))

	if err := r.reportGenerator.GenerateReport(path, report); err != nil {
		return "", fmt.Errorf("job %s: %w", report.Job.JobID, err)
	}

	return path, nil
}
