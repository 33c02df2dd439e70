package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

const TableCompanies = "companies"

type CompaniesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewCompaniesRepository(pool *pgxpool.Pool) *CompaniesRepository {
	return &CompaniesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// EnsureCompany inserts the company unless a row for its ticker already exists.
func (r *CompaniesRepository) EnsureCompany(ctx context.Context, company *domain.Company) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableCompanies).
		Columns(
			"ticker",
			"name",
			"cik",
		).
		Values(
			company.Ticker,
			company.Name,
			company.CIK,
		).
		Suffix("ON CONFLICT (ticker) DO NOTHING").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}
