package fetch

import (
	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/analytics"
)

type Job struct {
	Index int
	URL   string
}

// Result holds the outcome of a processed job.
type Result struct {
	Index      int
	URL        string
	Page       *models.SEOPage
	Error      error
	ErrorType  string
	WordCounts map[string]int
}

// ResultSummary is the compact per-URL view printed by default.
type ResultSummary struct {
	URL             string           `json:"url" yaml:"url"`
	Status          string           `json:"status" yaml:"status"`
	Error           string           `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType       string           `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Title           string           `json:"title,omitempty" yaml:"title,omitempty"`
	Language        string           `json:"language,omitempty" yaml:"language,omitempty"`
	WordCount       int              `json:"word_count,omitempty" yaml:"word_count,omitempty"`
	EstimatedTokens int              `json:"estimated_tokens,omitempty" yaml:"estimated_tokens,omitempty"`
	H1Count         int              `json:"h1_count,omitempty" yaml:"h1_count,omitempty"`
	InternalLinks   int              `json:"internal_links,omitempty" yaml:"internal_links,omitempty"`
	ExternalLinks   int              `json:"external_links,omitempty" yaml:"external_links,omitempty"`
	SchemaBlocks    int              `json:"schema_blocks,omitempty" yaml:"schema_blocks,omitempty"`
	HasCanonical    bool             `json:"has_canonical,omitempty" yaml:"has_canonical,omitempty"`
	Issues          []string         `json:"issues,omitempty" yaml:"issues,omitempty"`
	TopKeywords     []analytics.Term `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string `json:"status" yaml:"status"`
	Results any    `json:"results" yaml:"results"`
	Stats   Stats  `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalURLs        int      `json:"total_urls" yaml:"total_urls"`
	Successful       int      `json:"successful" yaml:"successful"`
	Failed           int      `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64  `json:"total_time_seconds" yaml:"total_time_seconds"`
	TopKeywords      []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}
