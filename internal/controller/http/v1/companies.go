package v1

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

const (
	phaseNotStarted = "not_started"

	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type CompaniesHandler struct {
	log       *slog.Logger
	jobs      JobsService
	validator TickerValidator
	catalog   CompanyCatalog
	documents DocumentsRepository
}

func NewCompaniesHandler(
	log *slog.Logger,
	jobs JobsService,
	validator TickerValidator,
	catalog CompanyCatalog,
	documents DocumentsRepository,
) *CompaniesHandler {
	return &CompaniesHandler{
		log:       log,
		jobs:      jobs,
		validator: validator,
		catalog:   catalog,
		documents: documents,
	}
}

type SearchCompaniesResponse struct {
	Query     string            `json:"query"`
	Companies []*domain.Company `json:"companies"`
	Total     int               `json:"total"`
}

type NotStartedResponse struct {
	Ticker             string `json:"ticker"`
	Phase              string `json:"phase"`
	Progress           int    `json:"progress"`
	DocumentsFound     int    `json:"documentsFound"`
	DocumentsProcessed int    `json:"documentsProcessed"`
	ChunksCreated      int    `json:"chunksCreated"`
	ChunksVectorized   int    `json:"chunksVectorized"`
	Message            string `json:"message"`
}

type GetDocumentsByTickerResponse struct {
	Documents  []*domain.DocumentRecord `json:"documents"`
	Pagination Pagination               `json:"pagination"`
}

// GetStatus reports the latest job for the ticker, or a not_started placeholder.
func (h *CompaniesHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ticker, err := tickerParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	status, ok := h.jobs.StatusByTicker(ticker)
	if !ok {
		writeJSON(w, http.StatusOK, NotStartedResponse{
			Ticker:  ticker,
			Phase:   phaseNotStarted,
			Message: fmt.Sprintf("No processing found for %s", ticker),
		})
		return
	}

	writeJSON(w, http.StatusOK, status)
}

func (h *CompaniesHandler) Validate(w http.ResponseWriter, r *http.Request) {
	ticker, err := tickerParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	validation, err := h.validator.ValidateTicker(r.Context(), ticker)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, validation)
}

func (h *CompaniesHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	ticker, err := tickerParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	company, err := h.catalog.Company(r.Context(), ticker)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, company)
}

// Search matches query against catalog tickers and company names.
func (h *CompaniesHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, r, h.log, fmt.Errorf("query is required: %w", domain.ErrInvalidArgument))
		return
	}

	limit := defaultSearchLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		var err error
		limit, err = strconv.Atoi(l)
		if err != nil || limit < 1 || limit > maxSearchLimit {
			writeError(w, r, h.log,
				fmt.Errorf("invalid limit %q, must be in [1;%d]: %w", l, maxSearchLimit, domain.ErrInvalidArgument))
			return
		}
	}

	companies, err := h.catalog.SearchCompanies(r.Context(), query, limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, SearchCompaniesResponse{
		Query:     query,
		Companies: companies,
		Total:     len(companies),
	})
}

func (h *CompaniesHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	ticker, err := tickerParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	offset := (page - 1) * limit

	documents, total, err := h.documents.DocumentsByTicker(r.Context(), ticker, limit, offset)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if documents == nil {
		documents = []*domain.DocumentRecord{}
	}

	writeJSON(w, http.StatusOK, GetDocumentsByTickerResponse{
		Documents:  documents,
		Pagination: newPagination(page, limit, total),
	})
}

func tickerParam(r *http.Request) (string, error) {
	ticker := domain.NormalizeTicker(chi.URLParam(r, "ticker"))
	if !domain.ValidTicker(ticker) {
		return "", fmt.Errorf("malformed ticker %q: %w", ticker, domain.ErrInvalidArgument)
	}
	return ticker, nil
}
