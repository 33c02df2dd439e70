package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

type JobEvictor interface {
	EvictCompleted(maxAge time.Duration) int
}

// Evictor periodically drops finished jobs older than the retention window.
type Evictor struct {
	log       *slog.Logger
	jobs      JobEvictor
	interval  time.Duration
	retention time.Duration
}

func NewEvictor(log *slog.Logger, jobs JobEvictor, interval, retention time.Duration) *Evictor {
	return &Evictor{
		log:       log,
		jobs:      jobs,
		interval:  interval,
		retention: retention,
	}
}

func (e *Evictor) Run(ctx context.Context) error {
	if e.interval <= 0 {
		return fmt.Errorf("eviction interval must be positive, got %s: %w", e.interval, domain.ErrInvalidArgument)
	}

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.log.DebugContext(ctx, "eviction cycle started")

			if removed := e.jobs.EvictCompleted(e.retention); removed > 0 {
				e.log.InfoContext(ctx, "evicted completed jobs", slog.Int("count", removed))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
