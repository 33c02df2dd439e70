package pipeline

import (
	"context"

	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

type Limiter interface {
	Wait(ctx context.Context) error
}

type FilingsLister interface {
	ListFilings(ctx context.Context, ticker string, years int, types []string) ([]*domain.FilingDescriptor, error)
}

type DocumentStorer interface {
	StoreFilings(
		ctx context.Context,
		filings []*domain.FilingDescriptor,
		onProgress domain.ProgressFunc,
	) ([]*domain.DocumentRecord, error)
}

// DocumentsRepository lookups return domain.ErrNotFound when no record matches.
type DocumentsRepository interface {
	DocumentByAccession(ctx context.Context, accessionNumber string) (*domain.DocumentRecord, error)
	DocumentByContentHash(ctx context.Context, contentHash string) (*domain.DocumentRecord, error)
	CreateDocumentIfAbsent(ctx context.Context, document *domain.DocumentRecord) (bool, error)
	StoragePaths(ctx context.Context) ([]string, error)
	DocumentStatistics(ctx context.Context) (*domain.DocumentStatistics, error)
}

type CompaniesRepository interface {
	EnsureCompany(ctx context.Context, company *domain.Company) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type BlobStore interface {
	Backend() string
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	Walk(ctx context.Context, fn func(key string, size int64) error) error
}

type Metrics interface {
	DownloadFinished(ctx context.Context, outcome string)
	JobFinished(ctx context.Context, phase domain.Phase)
}

type ReportGenerator interface {
	GenerateReport(outputPath string, report *domain.JobReport) error
}

type nopMetrics struct{}

func (nopMetrics) DownloadFinished(context.Context, string) {}
func (nopMetrics) JobFinished(context.Context, domain.Phase) {}
