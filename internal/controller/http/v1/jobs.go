package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

type JobsHandler struct {
	log       *slog.Logger
	jobs      JobsService
	validator TickerValidator
}

func NewJobsHandler(log *slog.Logger, jobs JobsService, validator TickerValidator) *JobsHandler {
	return &JobsHandler{
		log:       log,
		jobs:      jobs,
		validator: validator,
	}
}

type StartJobRequest struct {
	Ticker      string   `json:"ticker"`
	TimeRange   int      `json:"timeRange"`
	FilingTypes []string `json:"filingTypes,omitempty"`
}

type StartJobResponse struct {
	JobID     string       `json:"jobId"`
	Ticker    string       `json:"ticker"`
	TimeRange int          `json:"timeRange"`
	Status    domain.Phase `json:"status"`
	Message   string       `json:"message"`
}

type ListJobsResponse struct {
	Jobs  []domain.JobStatus `json:"jobs"`
	Total int                `json:"total"`
}

type CancelJobResponse struct {
	JobID   string `json:"jobId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StartJob rejects malformed requests before consulting the registry catalog, and tickers
// missing from the catalog before a job is created.
func (h *JobsHandler) StartJob(w http.ResponseWriter, r *http.Request) {
	var req StartJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.log, fmt.Errorf("invalid request body: %v: %w", err, domain.ErrInvalidArgument))
		return
	}

	ticker := domain.NormalizeTicker(req.Ticker)
	if !domain.ValidTicker(ticker) {
		writeError(w, r, h.log, fmt.Errorf("malformed ticker %q: %w", req.Ticker, domain.ErrInvalidArgument))
		return
	}

	if !domain.ValidYears(req.TimeRange) {
		writeError(w, r, h.log, fmt.Errorf("time range must be one of %v, got %d: %w",
			domain.SupportedYears, req.TimeRange, domain.ErrInvalidArgument))
		return
	}

	validation, err := h.validator.ValidateTicker(r.Context(), ticker)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if !validation.Valid {
		writeError(w, r, h.log, fmt.Errorf("company with ticker %q: %w", ticker, domain.ErrNotFound))
		return
	}

	status, err := h.jobs.Start(r.Context(), ticker, req.TimeRange, req.FilingTypes)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusAccepted, StartJobResponse{
		JobID:     status.JobID,
		Ticker:    status.Ticker,
		TimeRange: status.TimeRange,
		Status:    status.Phase,
		Message:   fmt.Sprintf("Processing started for %s (%d years)", status.Ticker, status.TimeRange),
	})
}

func (h *JobsHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := h.jobs.List()

	writeJSON(w, http.StatusOK, ListJobsResponse{
		Jobs:  jobs,
		Total: len(jobs),
	})
}

func (h *JobsHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")

	status, ok := h.jobs.Status(jobID)
	if !ok {
		writeError(w, r, h.log, fmt.Errorf("job %q: %w", jobID, domain.ErrNotFound))
		return
	}

	writeJSON(w, http.StatusOK, status)
}

func (h *JobsHandler) CancelJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")

	if !h.jobs.Cancel(jobID) {
		writeError(w, r, h.log, fmt.Errorf("job %q is unknown or already finished: %w", jobID, domain.ErrNotFound))
		return
	}

	writeJSON(w, http.StatusOK, CancelJobResponse{
		JobID:   jobID,
		Status:  "cancelled",
		Message: fmt.Sprintf("Processing job %s has been cancelled", jobID),
	})
}
