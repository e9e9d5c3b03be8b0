package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/seo-web-parser/models"
)

// Cache stores raw page bodies by URL.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, data []byte) error
}

type Fetcher struct {
	client    *http.Client
	userAgent string
	cache     Cache
	logger    *slog.Logger
}

type Option func(*Fetcher)

func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.client.Timeout = d }
}

// WithCache serves GetHTMLBytes from c when possible and stores fresh bodies in it.
func WithCache(c Cache) Option {
	return func(f *Fetcher) { f.cache = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

// WithTransport swaps the round tripper, mostly for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) { f.client.Transport = rt }
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: 30 * time.Second},
		userAgent: models.DefaultUserAgent,
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetDocument fetches url and parses it into a goquery document.
func (f *Fetcher) GetDocument(ctx context.Context, url string) (*goquery.Document, error) {
	bodyBytes, err := f.GetHTMLBytes(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// GetHTMLBytes returns the body of url. Anything but 200 OK is an error.
func (f *Fetcher) GetHTMLBytes(ctx context.Context, url string) ([]byte, error) {
	if f.cache != nil {
		if data, ok := f.cache.Get(url); ok {
			f.logger.Debug("cache hit", "url", url)
			return data, nil
		}
	}

	req, err := f.newRequest(ctx, http.MethodGet, url)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if f.cache != nil {
		if err := f.cache.Set(url, bodyBytes); err != nil {
			f.logger.Warn("failed to cache page", "url", url, "error", err)
		}
	}
	return bodyBytes, nil
}

func (f *Fetcher) newRequest(ctx context.Context, method, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	return req, nil
}
