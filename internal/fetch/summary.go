package fetch

import (
	"math"
	"unicode/utf8"

	"github.com/dtnitsch/seo-web-parser/pkg/analytics"
)

// BuildSummary condenses a result into the per-URL summary, flagging the
// on-page basics that are missing or out of range.
func BuildSummary(r Result) ResultSummary {
	summary := ResultSummary{URL: r.URL}
	if r.Error != nil {
		summary.Status = "failed"
		summary.Error = r.Error.Error()
		summary.ErrorType = r.ErrorType
		return summary
	}

	page := r.Page
	summary.Status = "success"
	if page.Title != nil {
		summary.Title = *page.Title
	}
	summary.Language = page.Meta.Language
	summary.WordCount = page.WordCount
	summary.EstimatedTokens = int(math.Round(float64(page.WordCount) / 0.75))
	summary.H1Count = len(page.Headers["h1"])
	summary.InternalLinks = len(page.InternalLinks)
	summary.ExternalLinks = len(page.ExternalLinks)
	summary.SchemaBlocks = len(page.SchemaMarkup)
	summary.HasCanonical = page.CanonicalURL != nil
	summary.TopKeywords = analytics.TopTerms(r.WordCounts, page.WordCount, 5)

	var issues []string
	switch n := utf8.RuneCountInString(summary.Title); {
	case n == 0:
		issues = append(issues, "missing title")
	case n > 60:
		issues = append(issues, "title longer than 60 characters")
	}
	if page.MetaTags["description"] == "" {
		issues = append(issues, "missing meta description")
	}
	if summary.H1Count == 0 {
		issues = append(issues, "no h1 heading")
	} else if summary.H1Count > 1 {
		issues = append(issues, "multiple h1 headings")
	}
	if !summary.HasCanonical {
		issues = append(issues, "no canonical url")
	}
	summary.Issues = issues
	return summary
}
