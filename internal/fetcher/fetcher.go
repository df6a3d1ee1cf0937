package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"resumatch-utils/internal/config"
	"resumatch-utils/internal/logging"
	"resumatch-utils/pkg/utils"
)

// Fetcher downloads job posting pages and reduces them to plain text.
// Requests are rate limited so repeated analyses do not hammer job boards,
// and pages are cached in Redis when a cache is configured.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	cache     *PageCache
	userAgent string
	logger    logging.Logger
}

// New creates a Fetcher from config. The cache may be nil.
func New(cfg *config.Config, cache *PageCache, logger logging.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Fetcher.RequestTimeout,
		},
		limiter:   rate.NewLimiter(rate.Limit(cfg.Fetcher.RatePerSecond), 1),
		cache:     cache,
		userAgent: cfg.Fetcher.UserAgent,
		logger:    logger,
	}
}

// FetchText downloads a job posting URL and returns the visible page text
// with scripts, styles and blank lines removed
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, error) {
	if text, ok := f.cache.Get(ctx, url); ok {
		f.logger.Debug("Job page served from cache", map[string]interface{}{
			"url": url,
		})
		return text, nil
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", utils.NewFetchError(fmt.Sprintf("%s returned HTTP %d", url, resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML from %s: %w", url, err)
	}

	text := ExtractVisibleText(doc)

	if err := f.cache.Set(ctx, url, text); err != nil {
		f.logger.Warn("Failed to cache job page", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
	}

	f.logger.Info("Job page fetched", map[string]interface{}{
		"url":    url,
		"length": len(text),
	})

	return text, nil
}

// ExtractVisibleText strips non-content elements from a parsed document and
// returns its text, one non-empty trimmed line per source line
func ExtractVisibleText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
