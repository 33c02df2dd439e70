package edgar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	yearLength = 365 * 24 * time.Hour
)

type submissions struct {
	CIK     string `json:"cik"`
	Name    string `json:"name"`
	Filings struct {
		Recent recentFilings `json:"recent"`
	} `json:"filings"`
}

// recentFilings is the registry's column-oriented index: the i-th element of every slice
// describes the same filing.
type recentFilings struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	ReportDate      []string `json:"reportDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
	Size            []int64  `json:"size"`
}

func (c *Client) ListFilings(
	ctx context.Context,
	ticker string,
	years int,
	types []string,
) ([]*domain.FilingDescriptor, error) {
	ticker = domain.NormalizeTicker(ticker)
	if !domain.ValidTicker(ticker) {
		return nil, fmt.Errorf("malformed ticker %q: %w", ticker, domain.ErrInvalidArgument)
	}

	if !domain.ValidYears(years) {
		return nil, fmt.Errorf("years must be one of %v, got %d: %w", domain.SupportedYears, years, domain.ErrInvalidArgument)
	}

	if len(types) == 0 {
		types = DefaultFilingTypes
	}

	company, err := c.Company(ctx, ticker)
	if err != nil {
		return nil, err
	}

	end := c.now()
	start := end.Add(-time.Duration(years) * yearLength)

	log := c.log.With(slog.String("ticker", ticker), slog.String("cik", company.CIK))
	log.InfoContext(ctx, "listing filings",
		slog.String("from", start.Format(dateLayout)),
		slog.String("to", end.Format(dateLayout)),
		slog.Any("types", types),
	)

	subs, err := c.submissions(ctx, company.CIK)
	if err != nil {
		return nil, err
	}

	if subs == nil {
		log.WarnContext(ctx, "no submissions found")
		return []*domain.FilingDescriptor{}, nil
	}

	filings := c.filterFilings(ctx, log, company, &subs.Filings.Recent, types, start, end)

	log.InfoContext(ctx, "found filings", slog.Int("count", len(filings)))

	return filings, nil
}

// submissions returns nil without an error when the registry has no index for the company.
func (c *Client) submissions(ctx context.Context, cik string) (*submissions, error) {
	var subs submissions

	err := c.getJSON(ctx, fmt.Sprintf("%s/CIK%s.json", strings.TrimRight(c.cfg.SubmissionsURL, "/"), cik), &subs)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	return &subs, nil
}

func (c *Client) filterFilings(
	ctx context.Context,
	log *slog.Logger,
	company *domain.Company,
	recent *recentFilings,
	types []string,
	start, end time.Time,
) []*domain.FilingDescriptor {
	filings := make([]*domain.FilingDescriptor, 0)

	for i := range recent.AccessionNumber {
		form := at(recent.Form, i)
		if !slices.Contains(types, form) {
			continue
		}

		filing, err := c.descriptor(company, recent, i)
		if err != nil {
			log.WarnContext(ctx, "skipping malformed index entry",
				slog.Int("index", i),
				slog.String("err", err.Error()),
			)
			continue
		}

		if filing.FilingDate.Before(start) || filing.FilingDate.After(end) {
			continue
		}

		filings = append(filings, filing)
	}

	return filings
}

func (c *Client) descriptor(company *domain.Company, recent *recentFilings, i int) (*domain.FilingDescriptor, error) {
	accession := at(recent.AccessionNumber, i)
	if accession == "" {
		return nil, errors.New("missing accession number")
	}

	primaryDocument := at(recent.PrimaryDocument, i)
	if primaryDocument == "" {
		return nil, fmt.Errorf("%s: missing primary document", accession)
	}

	filingDate, err := time.Parse(dateLayout, at(recent.FilingDate, i))
	if err != nil {
		return nil, fmt.Errorf("%s: invalid filing date: %w", accession, err)
	}

	var periodEnd *time.Time
	if reportDate := at(recent.ReportDate, i); reportDate != "" {
		if parsed, err := time.Parse(dateLayout, reportDate); err == nil {
			periodEnd = &parsed
		}
	}

	var size int64
	if i < len(recent.Size) {
		size = recent.Size[i]
	}

	documentURL, err := c.documentURL(company.CIK, accession, primaryDocument)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", accession, err)
	}

	return &domain.FilingDescriptor{
		AccessionNumber: accession,
		FilingType:      at(recent.Form, i),
		FilingDate:      filingDate,
		PeriodEnd:       periodEnd,
		DocumentURL:     documentURL,
		Ticker:          company.Ticker,
		CompanyName:     company.Name,
		CIK:             company.CIK,
		Size:            size,
	}, nil
}

// documentURL builds {archives}/Archives/edgar/data/{cik}/{accession without dashes}/{document}.
func (c *Client) documentURL(cik, accession, primaryDocument string) (string, error) {
	numericCIK, err := strconv.ParseInt(cik, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid cik %q: %w", cik, err)
	}

	base, err := url.Parse(c.cfg.ArchivesURL)
	if err != nil {
		return "", fmt.Errorf("invalid archives url: %w", err)
	}

	return base.JoinPath(
		"Archives", "edgar", "data",
		strconv.FormatInt(numericCIK, 10),
		strings.ReplaceAll(accession, "-", ""),
		primaryDocument,
	).String(), nil
}

func at(values []string, i int) string {
	if i < len(values) {
		return strings.TrimSpace(values[i])
	}
	return ""
}
