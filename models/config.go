// Package models defines data structures for configuration and tool results.
package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config holds runtime configuration. Values come from an optional YAML file,
// then the environment, then CLI flags (each layer overriding the previous).
type Config struct {
	UserAgent    string        `yaml:"user_agent"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	CachePath string        `yaml:"cache_path"` // empty disables the fetch cache
	CacheTTL  time.Duration `yaml:"cache_ttl"`

	Location string `yaml:"location"`
	Country  string `yaml:"country"`
	Device   string `yaml:"device"`

	ScrapeDelayMin time.Duration `yaml:"scrape_delay_min"`
	ScrapeDelayMax time.Duration `yaml:"scrape_delay_max"`

	SerpAPIKey            string `yaml:"serpapi_key"`
	PageSpeedKey          string `yaml:"pagespeed_key"`
	KeywordsEverywhereKey string `yaml:"keywords_everywhere_key"`

	// API endpoints; overridable so the clients can be pointed at a stub.
	SerpAPIURL            string `yaml:"serpapi_url"`
	PageSpeedURL          string `yaml:"pagespeed_url"`
	KeywordsEverywhereURL string `yaml:"keywords_everywhere_url"`
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() *Config {
	return &Config{
		UserAgent:             DefaultUserAgent,
		FetchTimeout:          30 * time.Second,
		CacheTTL:              24 * time.Hour,
		Location:              "United States",
		Country:               "US",
		Device:                "desktop",
		ScrapeDelayMin:        time.Second,
		ScrapeDelayMax:        2 * time.Second,
		SerpAPIURL:            "https://serpapi.com/search.json",
		PageSpeedURL:          "https://www.googleapis.com/pagespeedonline/v5/runPagespeed",
		KeywordsEverywhereURL: "https://api.keywordseverywhere.com/v1",
	}
}

// LoadConfig reads the YAML file at path on top of the defaults. An empty path
// or a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if config.ScrapeDelayMax < config.ScrapeDelayMin {
		return nil, fmt.Errorf("scrape_delay_max (%s) is below scrape_delay_min (%s)", config.ScrapeDelayMax, config.ScrapeDelayMin)
	}
	return config, nil
}

// ApplyEnv overrides API keys with any that are set in the environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("SERPAPI_KEY"); v != "" {
		c.SerpAPIKey = v
	}
	if v := getenv("GOOGLE_PAGESPEED_KEY"); v != "" {
		c.PageSpeedKey = v
	}
	if v := getenv("KEYWORDS_EVERYWHERE_API_KEY"); v != "" {
		c.KeywordsEverywhereKey = v
	}
}
