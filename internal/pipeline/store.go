package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/filings_ingestor/internal/domain"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	OutcomeStored = "stored"
	OutcomeFailed = "failed"

	defaultContentType = "text/html"
)

type StoreConfig struct {
	UserAgent      string
	MaxConcurrent  int64
	RetryAttempts  int
	RetryDelay     time.Duration
	AttemptTimeout time.Duration
}

// Store downloads filings and persists them as document records. All jobs share one Store,
// so its gate bounds concurrent downloads for the whole process.
type Store struct {
	log        *slog.Logger
	cfg        StoreConfig
	httpClient *http.Client
	limiter    Limiter
	blobs      BlobStore
	documents  DocumentsRepository
	companies  CompaniesRepository
	transactor Transactor
	metrics    Metrics
	gate       *semaphore.Weighted
	now        func() time.Time
}

type StoreOption func(*Store)

func WithStoreHTTPClient(httpClient *http.Client) StoreOption {
	return func(s *Store) { s.httpClient = httpClient }
}

func WithStoreMetrics(metrics Metrics) StoreOption {
	return func(s *Store) { s.metrics = metrics }
}

func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func NewStore(
	log *slog.Logger,
	cfg StoreConfig,
	limiter Limiter,
	blobs BlobStore,
	documents DocumentsRepository,
	companies CompaniesRepository,
	transactor Transactor,
	opts ...StoreOption,
) *Store {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 3
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 60 * time.Second
	}

	s := &Store{
		log:        log,
		cfg:        cfg,
		httpClient: &http.Client{},
		limiter:    limiter,
		blobs:      blobs,
		documents:  documents,
		companies:  companies,
		transactor: transactor,
		metrics:    nopMetrics{},
		gate:       semaphore.NewWeighted(cfg.MaxConcurrent),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DownloadError is returned once every download attempt for a URL has failed.
type DownloadError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download %s after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

func (e *DownloadError) Unwrap() []error {
	return []error{domain.ErrDownloadFailed, e.Err}
}

type httpStatusError struct {
	StatusCode int
}

func (e *httpStatusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.StatusCode)
}

// permanent reports client errors that will not change on retry.
func (e *httpStatusError) permanent() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 &&
		e.StatusCode != http.StatusRequestTimeout &&
		e.StatusCode != http.StatusTooManyRequests
}

// StoragePathFor returns TICKER/year/filingType/filename.
func StoragePathFor(filing *domain.FilingDescriptor) string {
	filename := ""
	if u, err := url.Parse(filing.DocumentURL); err == nil {
		filename = path.Base(u.Path)
	}

	if filename == "" || filename == "." || filename == "/" || !strings.Contains(filename, ".") {
		filename = filing.AccessionNumber + ".html"
	}

	return path.Join(
		filing.Ticker,
		strconv.Itoa(filing.FilingDate.Year()),
		filing.FilingType,
		filename,
	)
}

func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DetectFormat checks the content type first and falls back to the file extension.
func DetectFormat(contentType, storagePath string) domain.Format {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "html"):
		return domain.FormatHTML
	case strings.Contains(ct, "pdf"):
		return domain.FormatPDF
	case strings.Contains(ct, "xml"), strings.Contains(ct, "xbrl"):
		return domain.FormatXBRL
	case strings.Contains(ct, "text"):
		return domain.FormatTXT
	}

	switch strings.ToLower(path.Ext(storagePath)) {
	case ".pdf":
		return domain.FormatPDF
	case ".xml", ".xbrl":
		return domain.FormatXBRL
	case ".txt":
		return domain.FormatTXT
	default:
		return domain.FormatHTML
	}
}

func (s *Store) DownloadWithRetry(ctx context.Context, documentURL string) ([]byte, string, error) {
	var lastErr error

	attempts := 0
	for attempt := range s.cfg.RetryAttempts {
		attempts++

		data, contentType, err := s.download(ctx, documentURL)
		if err == nil {
			return data, contentType, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", ctxErr
		}

		lastErr = err

		s.log.WarnContext(ctx, "download attempt failed",
			slog.String("url", documentURL),
			slog.Int("attempt", attempt+1),
			slog.String("err", err.Error()),
		)

		var statusErr *httpStatusError
		if errors.As(err, &statusErr) && statusErr.permanent() {
			break
		}

		if attempt == s.cfg.RetryAttempts-1 {
			break
		}

		select {
		case <-time.After(s.cfg.RetryDelay * time.Duration(1<<attempt)):
		case <-ctx.Done():
			return nil, "", ctx.Err()
		}
	}

	return nil, "", &DownloadError{URL: documentURL, Attempts: attempts, Err: lastErr}
}

func (s *Store) download(ctx context.Context, documentURL string) (_ []byte, _ string, err error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.AttemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer func() { err = errors.Join(err, resp.Body.Close()) }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, "", &httpStatusError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	return data, contentType, nil
}

// StoreFiling is idempotent per accession number: a filing that already has a record is
// returned as is without touching the network.
func (s *Store) StoreFiling(ctx context.Context, filing *domain.FilingDescriptor) (*domain.DocumentRecord, error) {
	log := s.log.With(
		slog.String("ticker", filing.Ticker),
		slog.String("accession", filing.AccessionNumber),
	)

	existing, err := s.documents.DocumentByAccession(ctx, filing.AccessionNumber)
	switch {
	case err == nil:
		log.DebugContext(ctx, "document already stored")
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("failed to look up document: %w", err)
	}

	data, contentType, err := s.DownloadWithRetry(ctx, filing.DocumentURL)
	if err != nil {
		return nil, err
	}

	if filing.Size > 0 && int64(len(data)) != filing.Size {
		log.WarnContext(ctx, "downloaded size differs from registry index",
			slog.Int64("indexed_size", filing.Size),
			slog.Int("downloaded_size", len(data)),
		)
	}

	storagePath := StoragePathFor(filing)
	hash := ContentHash(data)

	duplicate, err := s.documents.DocumentByContentHash(ctx, hash)
	switch {
	case err == nil:
		log.DebugContext(ctx, "identical content already stored, reusing blob",
			slog.String("storage_path", duplicate.StoragePath),
		)
		storagePath = duplicate.StoragePath
	case errors.Is(err, domain.ErrNotFound):
		if err := s.blobs.Put(ctx, storagePath, data, contentType); err != nil {
			return nil, fmt.Errorf("failed to save blob: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up content hash: %w", err)
	}

	now := s.now().UTC()
	record := &domain.DocumentRecord{
		ID:              uuid.NewString(),
		Ticker:          filing.Ticker,
		FilingType:      filing.FilingType,
		AccessionNumber: filing.AccessionNumber,
		PeriodEnd:       filing.PeriodEnd,
		FiledDate:       filing.FilingDate,
		DocumentURL:     filing.DocumentURL,
		StoragePath:     storagePath,
		FileSize:        int64(len(data)),
		Format:          DetectFormat(contentType, storagePath),
		ContentHash:     hash,
		Status:          domain.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.saveRecord(ctx, filing, record)
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	if err != nil || !created {
		log.DebugContext(ctx, "document stored concurrently, returning existing record")

		winner, err := s.documents.DocumentByAccession(ctx, filing.AccessionNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to get concurrently stored document: %w", err)
		}
		return winner, nil
	}

	log.InfoContext(ctx, "stored document",
		slog.String("storage_path", record.StoragePath),
		slog.Int64("size", record.FileSize),
		slog.String("format", string(record.Format)),
	)

	return record, nil
}

func (s *Store) saveRecord(ctx context.Context, filing *domain.FilingDescriptor, record *domain.DocumentRecord) (bool, error) {
	var created bool

	err := s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		err := s.companies.EnsureCompany(ctx, &domain.Company{
			Ticker: filing.Ticker,
			Name:   filing.CompanyName,
			CIK:    filing.CIK,
		})
		if err != nil {
			return fmt.Errorf("failed to ensure company: %w", err)
		}

		created, err = s.documents.CreateDocumentIfAbsent(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to create document: %w", err)
		}

		return nil
	})

	return created, err
}

// StoreFilings stores every filing, tolerating individual failures. Records come back in input
// order with failures left out; the only error returned is the context's.
func (s *Store) StoreFilings(
	ctx context.Context,
	filings []*domain.FilingDescriptor,
	onProgress domain.ProgressFunc,
) ([]*domain.DocumentRecord, error) {
	if onProgress == nil {
		onProgress = func(domain.Progress) {}
	}

	total := len(filings)
	records := make([]*domain.DocumentRecord, total)

	var (
		mu        sync.Mutex
		completed int
	)

	onProgress(domain.Progress{Phase: domain.ProgressDownloading, Current: 0, Total: total})

	var g errgroup.Group
	for i, filing := range filings {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := s.gate.Acquire(ctx, 1); err != nil {
				return err
			}

			record, err := s.StoreFiling(ctx, filing)
			s.gate.Release(1)

			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}

				s.metrics.DownloadFinished(ctx, OutcomeFailed)
				s.log.ErrorContext(ctx, "failed to store filing",
					slog.String("accession", filing.AccessionNumber),
					slog.String("err", err.Error()),
				)
			} else {
				s.metrics.DownloadFinished(ctx, OutcomeStored)
			}

			mu.Lock()
			defer mu.Unlock()

			records[i] = record
			completed++
			onProgress(domain.Progress{Phase: domain.ProgressDownloading, Current: completed, Total: total})

			return nil
		})
	}

	err := g.Wait()

	stored := make([]*domain.DocumentRecord, 0, total)
	for _, record := range records {
		if record != nil {
			stored = append(stored, record)
		}
	}

	if err != nil {
		return stored, err
	}

	onProgress(domain.Progress{Phase: domain.ProgressCompleted, Current: total, Total: total})

	s.log.InfoContext(ctx, "download completed",
		slog.Int("stored", len(stored)),
		slog.Int("total", total),
	)

	return stored, nil
}

func (s *Store) StorageStatistics(ctx context.Context) (*domain.StorageStatistics, error) {
	stats := &domain.StorageStatistics{Backend: s.blobs.Backend()}

	err := s.blobs.Walk(ctx, func(_ string, size int64) error {
		stats.TotalFiles++
		stats.TotalBytes += size
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk blobs: %w", err)
	}

	stats.Documents, err = s.documents.DocumentStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get document statistics: %w", err)
	}

	return stats, nil
}

// CleanupOrphanedFiles deletes blobs that no document record points at and returns how many
// were removed. Individual delete failures are logged and skipped.
func (s *Store) CleanupOrphanedFiles(ctx context.Context) (int, error) {
	paths, err := s.documents.StoragePaths(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get storage paths: %w", err)
	}

	known := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		known[p] = struct{}{}
	}

	var orphans []string
	err = s.blobs.Walk(ctx, func(key string, _ int64) error {
		if _, ok := known[key]; !ok {
			orphans = append(orphans, key)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to walk blobs: %w", err)
	}

	deleted := 0
	for _, key := range orphans {
		if err := s.blobs.Delete(ctx, key); err != nil {
			s.log.WarnContext(ctx, "failed to delete orphaned blob",
				slog.String("key", key),
				slog.String("err", err.Error()),
			)
			continue
		}
		deleted++
	}

	s.log.InfoContext(ctx, "cleaned up orphaned blobs", slog.Int("deleted", deleted))

	return deleted, nil
}
