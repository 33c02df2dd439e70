package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

const TableDocuments = "documents"

var documentColumns = []string{
	"id::text AS id",
	"ticker",
	"filing_type",
	"accession_number",
	"period_end",
	"filed_date",
	"document_url",
	"storage_path",
	"file_size",
	"document_format",
	"content_hash",
	"processing_status",
	"processing_error",
	"created_at",
	"updated_at",
}

type DocumentsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewDocumentsRepository(pool *pgxpool.Pool) *DocumentsRepository {
	return &DocumentsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *DocumentsRepository) DocumentByAccession(ctx context.Context, accessionNumber string) (*domain.DocumentRecord, error) {
	return r.document(ctx, sq.Eq{"accession_number": accessionNumber})
}

// DocumentByContentHash returns the oldest document with the given content hash.
func (r *DocumentsRepository) DocumentByContentHash(ctx context.Context, contentHash string) (*domain.DocumentRecord, error) {
	return r.document(ctx, sq.Eq{"content_hash": contentHash})
}

func (r *DocumentsRepository) document(ctx context.Context, where sq.Eq) (*domain.DocumentRecord, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(documentColumns...).
		From(TableDocuments).
		Where(where).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	document, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.DocumentRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, collectRowsError(err)
	}

	return document, nil
}

// CreateDocumentIfAbsent reports false when a document with the same accession number already
// exists. A unique violation on any other constraint is returned as domain.ErrAlreadyExists.
func (r *DocumentsRepository) CreateDocumentIfAbsent(ctx context.Context, document *domain.DocumentRecord) (bool, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableDocuments).
		Columns(
			"id",
			"ticker",
			"filing_type",
			"accession_number",
			"period_end",
			"filed_date",
			"document_url",
			"storage_path",
			"file_size",
			"document_format",
			"content_hash",
			"processing_status",
			"processing_error",
			"created_at",
			"updated_at",
		).
		Values(
			document.ID,
			document.Ticker,
			document.FilingType,
			document.AccessionNumber,
			document.PeriodEnd,
			document.FiledDate,
			document.DocumentURL,
			document.StoragePath,
			document.FileSize,
			document.Format,
			document.ContentHash,
			document.Status,
			document.ErrorMessage,
			document.CreatedAt,
			document.UpdatedAt,
		).
		Suffix("ON CONFLICT (accession_number) DO NOTHING").
		ToSql()
	if err != nil {
		return false, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("document %s: %w", document.AccessionNumber, domain.ErrAlreadyExists)
		}
		return false, executeQueryError(err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *DocumentsRepository) DocumentsByTicker(
	ctx context.Context,
	ticker string,
	limit, offset uint64,
) ([]*domain.DocumentRecord, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableDocuments).
		Where(sq.Eq{"ticker": ticker}).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(documentColumns...).
		From(TableDocuments).
		Where(sq.Eq{"ticker": ticker}).
		OrderBy("filed_date DESC", "accession_number ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	documents, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.DocumentRecord])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return documents, total, nil
}

func (r *DocumentsRepository) StoragePaths(ctx context.Context) ([]string, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("DISTINCT storage_path").
		From(TableDocuments).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	paths, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return paths, nil
}

func (r *DocumentsRepository) DocumentStatistics(ctx context.Context) (*domain.DocumentStatistics, error) {
	byStatus, err := r.countBy(ctx, "processing_status")
	if err != nil {
		return nil, fmt.Errorf("failed to count documents by status: %w", err)
	}

	byType, err := r.countBy(ctx, "filing_type")
	if err != nil {
		return nil, fmt.Errorf("failed to count documents by filing type: %w", err)
	}

	stats := &domain.DocumentStatistics{
		Processed:   byStatus[string(domain.StatusCompleted)],
		Pending:     byStatus[string(domain.StatusPending)],
		Failed:      byStatus[string(domain.StatusFailed)],
		FilingTypes: byType,
	}

	for _, count := range byStatus {
		stats.Total += count
	}

	if stats.Total > 0 {
		stats.ProcessingRate = float64(stats.Processed) / float64(stats.Total) * 100
	}

	return stats, nil
}

func (r *DocumentsRepository) countBy(ctx context.Context, column string) (map[string]int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(column, "COUNT(*)").
		From(TableDocuments).
		GroupBy(column).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			key   string
			count int
		)
		if err := rows.Scan(&key, &count); err != nil {
			return nil, scanRowError(err)
		}
		counts[key] = count
	}

	if err := rows.Err(); err != nil {
		return nil, executeQueryError(err)
	}

	return counts, nil
}

// ResetProcessingDocuments returns documents left in processing by a previous run to pending.
func (r *DocumentsRepository) ResetProcessingDocuments(ctx context.Context) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableDocuments).
		Set("processing_status", domain.StatusPending).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"processing_status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}
