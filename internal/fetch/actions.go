package fetch

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dtnitsch/seo-web-parser/internal/common"
	"github.com/dtnitsch/seo-web-parser/pkg/mapreduce"
	"github.com/dtnitsch/seo-web-parser/pkg/parser"
	"github.com/urfave/cli/v2"
)

// ScrapeAction scrapes every --urls entry concurrently and prints either the
// per-URL summary or the full SEO data.
func ScrapeAction(c *cli.Context) error {
	startTime := time.Now()

	var urls []string
	if c.IsSet("urls") {
		urls = strings.Split(c.String("urls"), ",")
	}
	urls = append(urls, c.Args().Slice()...)
	if len(urls) == 0 {
		return cli.Exit(`Error: No URLs provided

Usage:
  seo-web-parser scrape --urls "https://example.com,https://example.org"
  seo-web-parser scrape https://example.com --output-mode full --markdown`, 1)
	}

	sanitized, invalid := common.SanitizeAndValidateURLs(urls)
	if len(invalid) > 0 {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Error: %d URL(s) are malformed (even after cleanup):\n", len(invalid))
		for _, bad := range invalid {
			fmt.Fprintf(&sb, "  - %s\n", bad)
		}
		sb.WriteString("Spaces in URLs must be pre-encoded as %20.")
		return cli.Exit(sb.String(), 1)
	}

	env, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer env.Close()

	var opts []parser.Option
	if c.Bool("markdown") {
		opts = append(opts, parser.WithMarkdown())
	}
	p := parser.NewParser(opts...)

	results := run(c.Context, env.Logger, sanitized, c.Int("workers"), env.Fetcher, p)

	stats := Stats{TotalURLs: len(sanitized)}
	var intermediate []map[string]int
	for _, r := range results {
		if r.Error != nil {
			stats.Failed++
			continue
		}
		stats.Successful++
		intermediate = append(intermediate, r.WordCounts)
	}
	stats.TopKeywords = mapreduce.TopKeywords(mapreduce.Reduce(intermediate), 25)
	stats.TotalTimeSeconds = time.Since(startTime).Seconds()

	output := FinalOutput{Status: "success", Stats: stats}
	if stats.Failed > 0 {
		output.Status = "partial_failure"
	}

	switch mode := strings.ToLower(c.String("output-mode")); mode {
	case "summary":
		summaries := make([]ResultSummary, 0, len(results))
		for _, r := range results {
			summaries = append(summaries, BuildSummary(r))
		}
		output.Results = summaries
	case "full":
		pages := make([]map[string]any, 0, len(results))
		for _, r := range results {
			if r.Error != nil {
				pages = append(pages, map[string]any{"url": r.URL, "error": r.Error.Error(), "error_type": r.ErrorType})
				continue
			}
			filtered, err := common.FilterResultFields(r.Page, c.String("fields"))
			if err != nil {
				return err
			}
			pages = append(pages, filtered)
		}
		output.Results = pages
	default:
		return fmt.Errorf("unknown output mode: %s (use: summary or full)", mode)
	}

	if err := common.WriteOutput(os.Stdout, output, c.String("format")); err != nil {
		return err
	}

	switch {
	case stats.Failed == stats.TotalURLs:
		return cli.Exit("", 2)
	case stats.Failed > 0:
		return cli.Exit("", 1)
	}
	return nil
}
