package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

// WatchlistEntry is one row of a backfill CSV: ticker,years,types. Types are separated by
// semicolons and may be empty to use the registry defaults.
type WatchlistEntry struct {
	Ticker string `csv:"ticker"`
	Years  int    `csv:"years,omitempty"`
	Types  string `csv:"types,omitempty"`
}

func (e *WatchlistEntry) FilingTypes() []string {
	var types []string
	for _, t := range strings.Split(e.Types, ";") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}

type JobRunner interface {
	Start(ctx context.Context, ticker string, years int, types []string) (domain.JobStatus, error)
	Wait(ctx context.Context, jobID string) (domain.JobStatus, error)
}

// Backfiller starts a job for every watchlist entry and waits for all of them to finish.
type Backfiller struct {
	log  *slog.Logger
	jobs JobRunner
}

func NewBackfiller(log *slog.Logger, jobs JobRunner) *Backfiller {
	return &Backfiller{
		log:  log,
		jobs: jobs,
	}
}

func (b *Backfiller) RunFile(ctx context.Context, filename string) (_ []domain.JobStatus, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return b.Run(ctx, f)
}

// Run skips entries whose job cannot be started and returns the final status of every job
// that was.
func (b *Backfiller) Run(ctx context.Context, r io.Reader) ([]domain.JobStatus, error) {
	entries, err := ParseWatchlist(r)
	if err != nil {
		return nil, err
	}

	b.log.InfoContext(ctx, "backfill started", slog.Int("entries", len(entries)))

	jobIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		status, err := b.jobs.Start(ctx, entry.Ticker, entry.Years, entry.FilingTypes())
		if err != nil {
			b.log.ErrorContext(ctx, "failed to start job, skipping entry",
				slog.String("ticker", entry.Ticker),
				slog.String("err", err.Error()),
			)
			continue
		}

		jobIDs = append(jobIDs, status.JobID)
	}

	statuses := make([]domain.JobStatus, 0, len(jobIDs))
	for _, jobID := range jobIDs {
		status, err := b.jobs.Wait(ctx, jobID)
		if err != nil {
			return statuses, fmt.Errorf("failed to wait for job %s: %w", jobID, err)
		}

		b.log.InfoContext(ctx, "backfill job finished",
			slog.String("ticker", status.Ticker),
			slog.String("phase", status.Phase.String()),
			slog.Int("documents_processed", status.DocumentsProcessed),
		)

		statuses = append(statuses, status)
	}

	return statuses, nil
}

func ParseWatchlist(r io.Reader) ([]*WatchlistEntry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	var entries []*WatchlistEntry
	for {
		var entry WatchlistEntry

		err := dec.Decode(&entry)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode watchlist record #%d: %w", len(entries)+1, err)
		}

		entry.Ticker = domain.NormalizeTicker(entry.Ticker)
		if entry.Ticker == "" {
			return nil, fmt.Errorf("watchlist record #%d has no ticker: %w", len(entries)+1, domain.ErrInvalidArgument)
		}

		entries = append(entries, &entry)
	}

	return entries, nil
}
