package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

const (
	progressScraping    = 0
	progressDownloading = 25
	progressComplete    = 100
)

// Orchestrator runs one background pipeline per ticker and tracks its phase and progress.
type Orchestrator struct {
	log      *slog.Logger
	lister   FilingsLister
	storer   DocumentStorer
	registry *Registry
	metrics  Metrics
	reports  chan<- *domain.JobReport
	now      func() time.Time

	wg sync.WaitGroup
}

type OrchestratorOption func(*Orchestrator)

func WithReports(reports chan<- *domain.JobReport) OrchestratorOption {
	return func(o *Orchestrator) { o.reports = reports }
}

func WithOrchestratorMetrics(metrics Metrics) OrchestratorOption {
	return func(o *Orchestrator) { o.metrics = metrics }
}

func WithOrchestratorClock(now func() time.Time) OrchestratorOption {
	return func(o *Orchestrator) { o.now = now }
}

func NewOrchestrator(
	log *slog.Logger,
	lister FilingsLister,
	storer DocumentStorer,
	registry *Registry,
	opts ...OrchestratorOption,
) *Orchestrator {
	o := &Orchestrator{
		log:      log,
		lister:   lister,
		storer:   storer,
		registry: registry,
		metrics:  nopMetrics{},
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Start returns the ticker's active job when one exists, otherwise it launches a new one.
// The pipeline outlives ctx; use Cancel to stop it.
func (o *Orchestrator) Start(ctx context.Context, ticker string, years int, types []string) (domain.JobStatus, error) {
	ticker = domain.NormalizeTicker(ticker)
	if !domain.ValidTicker(ticker) {
		return domain.JobStatus{}, fmt.Errorf("malformed ticker %q: %w", ticker, domain.ErrInvalidArgument)
	}

	if !domain.ValidYears(years) {
		return domain.JobStatus{}, fmt.Errorf("years must be one of %v, got %d: %w",
			domain.SupportedYears, years, domain.ErrInvalidArgument)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	j, created := o.registry.activeOrRegister(ticker, func() *job {
		return &job{
			status: domain.JobStatus{
				JobID:       uuid.NewString(),
				Ticker:      ticker,
				TimeRange:   years,
				FilingTypes: slices.Clone(types),
				Phase:       domain.PhasePending,
				StartedAt:   o.now().UTC(),
			},
			cancel: cancel,
			done:   make(chan struct{}),
		}
	})

	if !created {
		cancel()

		status := j.snapshot()
		o.log.InfoContext(ctx, "job already active for ticker",
			slog.String("ticker", ticker),
			slog.String("job_id", status.JobID),
		)
		return status, nil
	}

	status := j.snapshot()

	o.log.InfoContext(ctx, "started job",
		slog.String("ticker", ticker),
		slog.String("job_id", status.JobID),
		slog.Int("years", years),
	)

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		o.run(runCtx, j)
	}()

	return status, nil
}

func (o *Orchestrator) run(ctx context.Context, j *job) {
	defer close(j.done)
	defer j.cancel()

	status := j.snapshot()
	log := o.log.With(slog.String("job_id", status.JobID), slog.String("ticker", status.Ticker))

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "job panicked", slog.Any("panic", r))
			o.fail(ctx, log, j, fmt.Errorf("internal error: %v", r))
		}
	}()

	if !o.transition(j, domain.PhaseScraping, progressScraping) {
		return
	}

	filings, err := o.lister.ListFilings(ctx, status.Ticker, status.TimeRange, status.FilingTypes)
	if err != nil {
		o.fail(ctx, log, j, fmt.Errorf("failed to list filings: %w", err))
		return
	}

	j.mu.Lock()
	j.status.DocumentsFound = len(filings)
	j.mu.Unlock()

	log.InfoContext(ctx, "discovered filings", slog.Int("count", len(filings)))

	if len(filings) == 0 {
		o.complete(ctx, log, j, nil)
		return
	}

	if !o.transition(j, domain.PhaseDownloading, progressDownloading) {
		return
	}

	records, err := o.storer.StoreFilings(ctx, filings, func(p domain.Progress) {
		o.downloadProgress(j, p)
	})
	if err != nil {
		o.fail(ctx, log, j, fmt.Errorf("failed to store filings: %w", err))
		return
	}

	o.complete(ctx, log, j, records)
}

// transition moves the job to next when the phase table allows it and reports whether it did.
// A rejected transition means the job already ended, typically through Cancel.
func (o *Orchestrator) transition(j *job, next domain.Phase, progress int) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	return o.transitionLocked(j, next, progress)
}

func (o *Orchestrator) transitionLocked(j *job, next domain.Phase, progress int) bool {
	if !j.status.Phase.CanTransitionTo(next) {
		return false
	}

	j.status.Phase = next
	o.setProgressLocked(j, progress)

	if next.Terminal() {
		now := o.now().UTC()
		j.status.CompletedAt = &now
		j.status.EstimatedTimeRemaining = nil
	}

	return true
}

// downloadProgress maps the download batch onto the 25..100 band of the overall progress.
func (o *Orchestrator) downloadProgress(j *job, p domain.Progress) {
	if p.Total <= 0 {
		return
	}

	overall := progressDownloading + p.Current*(progressComplete-progressDownloading)/p.Total

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.status.Phase != domain.PhaseDownloading || overall <= j.status.Progress {
		return
	}

	o.setProgressLocked(j, overall)
}

func (o *Orchestrator) setProgressLocked(j *job, current int) {
	percent := domain.Progress{Current: current, Total: progressComplete}.Percent()
	j.status.Progress = percent

	if percent <= 0 || percent >= 100 {
		j.status.EstimatedTimeRemaining = nil
		return
	}

	elapsed := o.now().Sub(j.status.StartedAt).Seconds()
	remaining := int(elapsed/(float64(percent)/100) - elapsed)
	j.status.EstimatedTimeRemaining = &remaining
}

func (o *Orchestrator) complete(ctx context.Context, log *slog.Logger, j *job, records []*domain.DocumentRecord) {
	j.mu.Lock()
	ok := o.transitionLocked(j, domain.PhaseComplete, progressComplete)
	if ok {
		j.status.DocumentsProcessed = len(records)
		j.documents = records
	}
	j.mu.Unlock()

	if !ok {
		return
	}

	status := j.snapshot()
	log.InfoContext(ctx, "job completed",
		slog.Int("documents_found", status.DocumentsFound),
		slog.Int("documents_processed", status.DocumentsProcessed),
	)

	o.metrics.JobFinished(ctx, domain.PhaseComplete)
	o.report(ctx, log, &domain.JobReport{Job: status, Documents: records})
}

func (o *Orchestrator) fail(ctx context.Context, log *slog.Logger, j *job, err error) {
	j.mu.Lock()
	ok := o.transitionLocked(j, domain.PhaseError, j.status.Progress)
	if ok {
		message := err.Error()
		j.status.ErrorMessage = &message
	}
	j.mu.Unlock()

	if !ok {
		return
	}

	log.ErrorContext(ctx, "job failed", slog.String("err", err.Error()))
	o.metrics.JobFinished(ctx, domain.PhaseError)
}

// report hands the finished job to the reporter without ever blocking the pipeline.
func (o *Orchestrator) report(ctx context.Context, log *slog.Logger, report *domain.JobReport) {
	if o.reports == nil {
		return
	}

	select {
	case o.reports <- report:
	default:
		log.WarnContext(ctx, "report queue is full, dropping job report")
	}
}

func (o *Orchestrator) Status(jobID string) (domain.JobStatus, bool) {
	j, ok := o.registry.get(jobID)
	if !ok {
		return domain.JobStatus{}, false
	}
	return j.snapshot(), true
}

func (o *Orchestrator) StatusByTicker(ticker string) (domain.JobStatus, bool) {
	j, ok := o.registry.latest(domain.NormalizeTicker(ticker))
	if !ok {
		return domain.JobStatus{}, false
	}
	return j.snapshot(), true
}

func (o *Orchestrator) List() []domain.JobStatus {
	jobs := o.registry.all()

	statuses := make([]domain.JobStatus, 0, len(jobs))
	for _, j := range jobs {
		statuses = append(statuses, j.snapshot())
	}

	return statuses
}

// Cancel stops a running job and marks it failed. It returns false for unknown or finished jobs.
func (o *Orchestrator) Cancel(jobID string) bool {
	j, ok := o.registry.get(jobID)
	if !ok {
		return false
	}

	j.mu.Lock()
	cancelled := o.transitionLocked(j, domain.PhaseError, j.status.Progress)
	if cancelled {
		message := domain.CancelledByUserMessage
		j.status.ErrorMessage = &message
	}
	j.mu.Unlock()

	if !cancelled {
		return false
	}

	j.cancel()

	o.log.Info("job cancelled", slog.String("job_id", jobID))
	o.metrics.JobFinished(context.Background(), domain.PhaseError)

	return true
}

// Wait blocks until the job's pipeline has exited and returns its final status.
func (o *Orchestrator) Wait(ctx context.Context, jobID string) (domain.JobStatus, error) {
	j, ok := o.registry.get(jobID)
	if !ok {
		return domain.JobStatus{}, fmt.Errorf("job %q: %w", jobID, domain.ErrNotFound)
	}

	select {
	case <-j.done:
		return j.snapshot(), nil
	case <-ctx.Done():
		return domain.JobStatus{}, ctx.Err()
	}
}

// EvictCompleted forgets finished jobs that completed more than maxAge ago.
func (o *Orchestrator) EvictCompleted(maxAge time.Duration) int {
	return o.registry.evict(o.now().Add(-maxAge))
}

// Shutdown cancels every running job and waits for the pipelines to exit.
func (o *Orchestrator) Shutdown(ctx context.Context) error {
	for _, j := range o.registry.all() {
		if !j.terminal() {
			j.cancel()
		}
	}

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
