package pipeline

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

type job struct {
	mu        sync.Mutex
	status    domain.JobStatus
	documents []*domain.DocumentRecord

	seq    uint64
	cancel context.CancelFunc
	done   chan struct{}
}

func (j *job) snapshot() domain.JobStatus {
	j.mu.Lock()
	defer j.mu.Unlock()

	status := j.status
	status.FilingTypes = slices.Clone(j.status.FilingTypes)

	return status
}

func (j *job) terminal() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.status.Phase.Terminal()
}

// Registry holds every known job. At most one non-terminal job exists per ticker.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]*job
	seq  uint64
}

func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*job)}
}

// activeOrRegister returns the non-terminal job for the ticker if there is one; otherwise it
// registers the job built by newJob. The check and the insert happen under one lock.
func (r *Registry) activeOrRegister(ticker string, newJob func() *job) (*job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, j := range r.jobs {
		if j.status.Ticker == ticker && !j.terminal() {
			return j, false
		}
	}

	j := newJob()
	r.seq++
	j.seq = r.seq
	r.jobs[j.status.JobID] = j

	return j, true
}

func (r *Registry) get(jobID string) (*job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jobs[jobID]
	return j, ok
}

// latest returns the most recently started job for the ticker.
func (r *Registry) latest(ticker string) (*job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *job
	for _, j := range r.jobs {
		if j.status.Ticker != ticker {
			continue
		}
		if found == nil || j.seq > found.seq {
			found = j
		}
	}

	return found, found != nil
}

func (r *Registry) all() []*job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]*job, 0, len(r.jobs))
	for _, j := range r.jobs {
		jobs = append(jobs, j)
	}

	slices.SortFunc(jobs, func(a, b *job) int {
		return cmp.Compare(a.seq, b.seq)
	})

	return jobs
}

// evict removes terminal jobs that completed before cutoff.
func (r *Registry) evict(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, j := range r.jobs {
		status := j.snapshot()
		if !status.Phase.Terminal() || status.CompletedAt == nil || !status.CompletedAt.Before(cutoff) {
			continue
		}

		delete(r.jobs, id)
		removed++
	}

	return removed
}
