package v1

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

type JobsService interface {
	Start(ctx context.Context, ticker string, years int, types []string) (domain.JobStatus, error)
	Status(jobID string) (domain.JobStatus, bool)
	StatusByTicker(ticker string) (domain.JobStatus, bool)
	List() []domain.JobStatus
	Cancel(jobID string) bool
}

type TickerValidator interface {
	ValidateTicker(ctx context.Context, ticker string) (*domain.TickerValidation, error)
}

type CompanyCatalog interface {
	Company(ctx context.Context, ticker string) (*domain.Company, error)
	SearchCompanies(ctx context.Context, query string, limit int) ([]*domain.Company, error)
}

// Pinger reports whether a backing service accepts connections. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type DocumentsRepository interface {
	DocumentsByTicker(ctx context.Context, ticker string, limit, offset uint64) ([]*domain.DocumentRecord, int, error)
}

type StorageService interface {
	StorageStatistics(ctx context.Context) (*domain.StorageStatistics, error)
	CleanupOrphanedFiles(ctx context.Context) (int, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
