package edgar

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/kurochkinivan/filings_ingestor/internal/domain"
)

const maxSuggestions = 5

type catalogEntry struct {
	CIK    int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

type catalog struct {
	entries  []catalogEntry
	byTicker map[string]int
}

func newCatalog(raw map[string]catalogEntry) *catalog {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}

	// registry keys are "0", "1", ...; keep that order so lookups are deterministic
	slices.SortFunc(keys, func(a, b string) int {
		ai, aerr := strconv.Atoi(a)
		bi, berr := strconv.Atoi(b)
		if aerr == nil && berr == nil {
			return ai - bi
		}
		return strings.Compare(a, b)
	})

	c := &catalog{
		entries:  make([]catalogEntry, 0, len(keys)),
		byTicker: make(map[string]int, len(keys)),
	}

	for _, key := range keys {
		entry := raw[key]
		entry.Ticker = domain.NormalizeTicker(entry.Ticker)
		if entry.Ticker == "" {
			continue
		}

		if _, ok := c.byTicker[entry.Ticker]; ok {
			continue
		}

		c.byTicker[entry.Ticker] = len(c.entries)
		c.entries = append(c.entries, entry)
	}

	return c
}

func (c *catalog) lookup(ticker string) (catalogEntry, bool) {
	i, ok := c.byTicker[ticker]
	if !ok {
		return catalogEntry{}, false
	}
	return c.entries[i], true
}

// search ranks ticker prefix matches first, then ticker substrings, then company names.
func (c *catalog) search(query string, limit int) []catalogEntry {
	matches := make([]catalogEntry, 0, limit)
	if query == "" || limit <= 0 {
		return matches
	}

	seen := make(map[string]struct{}, limit)
	matchers := []func(catalogEntry) bool{
		func(e catalogEntry) bool { return strings.HasPrefix(e.Ticker, query) },
		func(e catalogEntry) bool { return strings.Contains(e.Ticker, query) },
		func(e catalogEntry) bool { return strings.Contains(strings.ToUpper(e.Title), query) },
	}

	for _, match := range matchers {
		for _, entry := range c.entries {
			if len(matches) == limit {
				return matches
			}

			if _, ok := seen[entry.Ticker]; ok || !match(entry) {
				continue
			}

			seen[entry.Ticker] = struct{}{}
			matches = append(matches, entry)
		}
	}

	return matches
}

func (c *catalog) suggest(query string) []string {
	matches := c.search(query, maxSuggestions)

	suggestions := make([]string, 0, len(matches))
	for _, entry := range matches {
		suggestions = append(suggestions, entry.Ticker)
	}
	return suggestions
}

func (e catalogEntry) company() *domain.Company {
	return &domain.Company{
		Ticker: e.Ticker,
		Name:   e.Title,
		CIK:    formatCIK(e.CIK),
	}
}

func formatCIK(cik int64) string {
	return fmt.Sprintf("%010d", cik)
}

// loadCatalog fetches the ticker catalog once per process. Concurrent first calls may both
// fetch; the last one stored wins, which is harmless because the content is identical.
func (c *Client) loadCatalog(ctx context.Context) (*catalog, error) {
	if cat := c.catalog.Load(); cat != nil {
		return cat, nil
	}

	var raw map[string]catalogEntry
	if err := c.getJSON(ctx, c.cfg.TickersURL, &raw); err != nil {
		return nil, fmt.Errorf("failed to load ticker catalog: %w", err)
	}

	cat := newCatalog(raw)
	c.catalog.Store(cat)

	c.log.InfoContext(ctx, "loaded ticker catalog", slog.Int("companies", len(cat.entries)))

	return cat, nil
}

func (c *Client) ResolveCIK(ctx context.Context, ticker string) (string, error) {
	company, err := c.Company(ctx, ticker)
	if err != nil {
		return "", err
	}
	return company.CIK, nil
}

func (c *Client) Company(ctx context.Context, ticker string) (*domain.Company, error) {
	ticker = domain.NormalizeTicker(ticker)

	cat, err := c.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	entry, ok := cat.lookup(ticker)
	if !ok {
		return nil, fmt.Errorf("ticker %q: %w", ticker, domain.ErrNotFound)
	}

	return entry.company(), nil
}

// SearchCompanies returns at most limit catalog companies matching query. An exact ticker
// match is returned alone.
func (c *Client) SearchCompanies(ctx context.Context, query string, limit int) ([]*domain.Company, error) {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return nil, fmt.Errorf("empty search query: %w", domain.ErrInvalidArgument)
	}

	cat, err := c.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if entry, ok := cat.lookup(query); ok {
		return []*domain.Company{entry.company()}, nil
	}

	matches := cat.search(query, limit)

	companies := make([]*domain.Company, 0, len(matches))
	for _, entry := range matches {
		companies = append(companies, entry.company())
	}
	return companies, nil
}

func (c *Client) ValidateTicker(ctx context.Context, ticker string) (*domain.TickerValidation, error) {
	ticker = domain.NormalizeTicker(ticker)

	cat, err := c.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if entry, ok := cat.lookup(ticker); ok {
		return &domain.TickerValidation{
			Ticker:      entry.Ticker,
			Valid:       true,
			CompanyName: entry.Title,
			Suggestions: []string{},
		}, nil
	}

	return &domain.TickerValidation{
		Ticker:      ticker,
		Valid:       false,
		Suggestions: cat.suggest(ticker),
	}, nil
}
