package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/logger"
)

const (
	TotalsURLTemplate = "https://www.basketball-reference.com/leagues/NBA_%d_totals.html"
	UserAgent         = "nba-team-age/1.0 (github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams)"
	Timeout           = 30 * time.Second
	MaxRetries        = 3

	initialBackoff = 500 * time.Millisecond
)

// Scraper handles fetching season stats pages from Basketball-Reference
type Scraper struct {
	client      *http.Client
	urlTemplate string
	retries     uint64
	backoffBase time.Duration
}

// New creates a Scraper with production defaults
func New() *Scraper {
	return NewWithOptions(TotalsURLTemplate, Timeout, MaxRetries)
}

// NewWithOptions creates a Scraper with explicit settings, for when flags or
// environment variables override the defaults
func NewWithOptions(urlTemplate string, timeout time.Duration, retries uint64) *Scraper {
	return &Scraper{
		client:      &http.Client{Timeout: timeout},
		urlTemplate: urlTemplate,
		retries:     retries,
		backoffBase: initialBackoff,
	}
}

// TotalsURL returns the URL of the totals page for a season. Seasons are
// named by their closing year, so 2017 means 2016-17. A template with no
// season placeholder is returned as-is.
func (s *Scraper) TotalsURL(season int) string {
	if !strings.Contains(s.urlTemplate, "%d") {
		return s.urlTemplate
	}
	return fmt.Sprintf(s.urlTemplate, season)
}

// FetchTotals downloads the totals page for a season and returns its HTML
// with comment markers stripped.
func (s *Scraper) FetchTotals(ctx context.Context, season int) ([]byte, error) {
	return s.Fetch(ctx, s.TotalsURL(season))
}

// Fetch downloads a single page. Network errors, 429 throttling and 5xx
// responses are retried with exponential backoff; any other non-200 status
// aborts immediately.
func (s *Scraper) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response body: %w", err)
		}
		body = data
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(s.newBackOff(), s.retries), ctx)
	notify := func(err error, wait time.Duration) {
		logger.Warn("retrying fetch", logger.Fields{
			"url":   url,
			"error": err.Error(),
			"wait":  wait.String(),
		})
	}
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	return StripCommentMarkers(body), nil
}

func (s *Scraper) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.backoffBase
	b.MaxElapsedTime = 2 * time.Minute
	return b
}

// StripCommentMarkers removes HTML comment delimiters so tables the site
// ships inside comments become visible to the parser. The markup inside the
// comments is complete, the site merely defers rendering it.
func StripCommentMarkers(page []byte) []byte {
	page = bytes.ReplaceAll(page, []byte("<!--"), nil)
	return bytes.ReplaceAll(page, []byte("-->"), nil)
}
