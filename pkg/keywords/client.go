// Package keywords wraps the Keywords Everywhere API and scores the keyword
// data it returns.
package keywords

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"resty.dev/v3"
)

// relatedSuffixes and relatedPrefixes build the variants queried for a seed
// keyword. The API has no related-keywords endpoint that works on every plan.
var (
	relatedSuffixes = []string{"tips", "guide", "tutorial", "examples", "tools"}
	relatedPrefixes = []string{"how to", "best"}
	relatedTrailing = []string{"strategies", "techniques", "benefits"}
)

// Cache stores raw API responses.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, data []byte) error
}

type Client struct {
	http     *resty.Client
	endpoint string
	apiKey   string
	cache    Cache
	logger   *slog.Logger
}

type Option func(*Client)

// WithCache serves repeated keyword lookups from c.
func WithCache(c Cache) Option {
	return func(cl *Client) { cl.cache = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// NewClient creates a client for the API rooted at endpoint (".../v1").
func NewClient(http *resty.Client, endpoint, apiKey string, opts ...Option) *Client {
	c := &Client{
		http:     http,
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasKey reports whether an API key is configured.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// SearchVolume returns the raw get_keyword_data response for keywords.
func (c *Client) SearchVolume(ctx context.Context, keywords []string, country string) (map[string]any, error) {
	return c.keywordData(ctx, keywords, country, c.cache)
}

func (c *Client) keywordData(ctx context.Context, keywords []string, country string, cache Cache) (map[string]any, error) {
	form := url.Values{
		"country":    {strings.ToLower(country)},
		"currency":   {"usd"},
		"dataSource": {"gkp"},
		"kw[]":       keywords,
	}

	cacheKey := form.Encode()
	if cache != nil {
		if cached, ok := cache.Get(cacheKey); ok {
			var data map[string]any
			if err := json.Unmarshal(cached, &data); err == nil {
				return data, nil
			}
		}
	}

	var data map[string]any
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetFormDataFromValues(form).
		SetResult(&data).
		Post(c.endpoint + "/get_keyword_data")
	if err != nil {
		return nil, fmt.Errorf("failed to call Keywords Everywhere API: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("Keywords Everywhere API error: %d - %s", resp.StatusCode(), resp.String())
	}
	if data == nil {
		data = map[string]any{}
	}

	if cache != nil {
		if raw, err := json.Marshal(data); err == nil {
			if err := cache.Set(cacheKey, raw); err != nil {
				c.logger.Warn("failed to cache keyword data", "error", err)
			}
		}
	}
	return data, nil
}

// Related looks up the fixed set of variants of seed and returns their rows.
func (c *Client) Related(ctx context.Context, seed, country string) ([]Row, error) {
	data, err := c.SearchVolume(ctx, RelatedVariants(seed), country)
	if err != nil {
		return nil, err
	}
	return Rows(data), nil
}

// RelatedVariants expands seed into the phrases queried as its related keywords.
func RelatedVariants(seed string) []string {
	variants := make([]string, 0, 10)
	for _, s := range relatedSuffixes {
		variants = append(variants, seed+" "+s)
	}
	for _, p := range relatedPrefixes {
		variants = append(variants, p+" "+seed)
	}
	for _, s := range relatedTrailing {
		variants = append(variants, seed+" "+s)
	}
	return variants
}
