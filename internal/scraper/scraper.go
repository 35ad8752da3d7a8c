package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/pfrederiksen/euromillones/internal/draw"
	"github.com/pfrederiksen/euromillones/internal/logger"
)

const (
	ResultsURL = "https://www.euromillones.com.es/resultados-anteriores.html"
	UserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	Timeout = 30 * time.Second
)

// ErrUnexpectedStatus is returned when the results page answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Scraper handles fetching and parsing EuroMillones results
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper for url. An empty url means ResultsURL.
func New(url string) *Scraper {
	if url == "" {
		url = ResultsURL
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// URL returns the page the scraper fetches.
func (s *Scraper) URL() string {
	return s.url
}

// FetchDraws fetches the results page once and extracts its draws.
func (s *Scraper) FetchDraws(ctx context.Context) ([]*draw.Draw, error) {
	start := time.Now()
	defer func() {
		logger.RecordTiming("fetch", time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	logger.Debug("results page fetched", logger.Fields{
		"url":          s.url,
		"content_type": resp.Header.Get("Content-Type"),
	})

	return parseDraws(resp.Body, resp.Header.Get("Content-Type"))
}

// parseDraws decodes r to UTF-8 according to contentType and extracts draws
func parseDraws(r io.Reader, contentType string) ([]*draw.Draw, error) {
	utf8Body, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}

	root, err := ParseDocument(utf8Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return ExtractDraws(root)
}
