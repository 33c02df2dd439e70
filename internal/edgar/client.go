// Package edgar discovers filings in the SEC EDGAR registry.
package edgar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	DefaultTickersURL     = "https://www.sec.gov/files/company_tickers.json"
	DefaultSubmissionsURL = "https://data.sec.gov/submissions"
	DefaultArchivesURL    = "https://www.sec.gov"
)

var DefaultFilingTypes = []string{"10-K", "10-Q", "8-K", "20-F", "4"}

type Limiter interface {
	Wait(ctx context.Context) error
}

type Config struct {
	UserAgent      string
	TickersURL     string
	SubmissionsURL string
	ArchivesURL    string
}

type Client struct {
	log        *slog.Logger
	cfg        Config
	httpClient *http.Client
	limiter    Limiter
	now        func() time.Time

	catalog atomic.Pointer[catalog]
}

type Option func(*Client)

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func NewClient(log *slog.Logger, cfg Config, limiter Limiter, opts ...Option) *Client {
	if cfg.TickersURL == "" {
		cfg.TickersURL = DefaultTickersURL
	}
	if cfg.SubmissionsURL == "" {
		cfg.SubmissionsURL = DefaultSubmissionsURL
	}
	if cfg.ArchivesURL == "" {
		cfg.ArchivesURL = DefaultArchivesURL
	}

	c := &Client{
		log:        log,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    limiter,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// StatusError is returned for any non-2xx registry response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.StatusCode, e.URL)
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) (err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "registry request", slog.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to request %s: %w", url, err)
	}
	defer func() { err = errors.Join(err, resp.Body.Close()) }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", url, err)
	}

	return nil
}
