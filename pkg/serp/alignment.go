package serp

import (
	"context"
	"fmt"
	"time"

	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/jsonval"
)

const (
	maxCompetitors         = 10
	alignmentQuestionLimit = 5
	alignmentRelatedLimit  = 8
)

// ScrapeFunc loads and parses one page.
type ScrapeFunc func(ctx context.Context, url string) (*models.SEOPage, error)

type competitor struct {
	position any
	url      string
	title    string
	snippet  string
}

// ContentAlignment scrapes targetURL and then each of the top ranking pages for
// q, one after the other with pause in between. A page that fails to scrape is
// reported with its error; only cancellation of ctx aborts the run.
func ContentAlignment(ctx context.Context, q Query, targetURL string, raw map[string]any, scrape ScrapeFunc, pause Pauser, now time.Time) (*models.ContentAlignment, error) {
	competitors := topCompetitors(raw)

	report := &models.ContentAlignment{
		Keyword:      q.Keyword,
		AnalysisDate: now.Format(models.TimestampLayout),
		SERPMetadata: models.AlignmentSERPMetadata{
			Location:     q.Location,
			TotalResults: jsonval.Value(jsonval.Map(raw, "search_information"), "total_results", 0),
		},
		TopCompetitors: []models.PageSummary{},
		SERPFeatures:   alignmentFeatures(raw),
	}

	target, err := scrape(ctx, targetURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		report.TargetPage = models.PageSummary{URL: targetURL, Error: scrapeError(targetURL, err)}
	} else {
		report.TargetPage = summarize(targetURL, target)
	}

	for _, c := range competitors {
		if err := pause(ctx); err != nil {
			return nil, err
		}

		page, err := scrape(ctx, c.url)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			report.TopCompetitors = append(report.TopCompetitors, models.PageSummary{
				SERPPosition: c.position,
				URL:          c.url,
				Error:        scrapeError(c.url, err),
			})
			continue
		}

		summary := summarize(c.url, page)
		summary.SERPPosition = c.position
		summary.SERPTitle = &c.title
		summary.SERPSnippet = &c.snippet
		report.TopCompetitors = append(report.TopCompetitors, summary)
	}

	report.DatasetSummary = datasetSummary(len(competitors), report)
	return report, nil
}

func scrapeError(url string, err error) string {
	return fmt.Sprintf("Error scraping %s: %v", url, err)
}

// topCompetitors takes the organic results among the first ten that have a link.
func topCompetitors(raw map[string]any) []competitor {
	var out []competitor
	items := jsonval.Slice(raw, "organic_results")
	if len(items) > maxCompetitors {
		items = items[:maxCompetitors]
	}
	for i, item := range items {
		r, ok := jsonval.AsMap(item)
		if !ok {
			continue
		}
		link := jsonval.String(r, "link", "")
		if link == "" {
			continue
		}
		out = append(out, competitor{
			position: jsonval.Value(r, "position", i+1),
			url:      link,
			title:    jsonval.String(r, "title", ""),
			snippet:  jsonval.String(r, "snippet", ""),
		})
	}
	return out
}

func alignmentFeatures(raw map[string]any) map[string]any {
	features := map[string]any{}
	if jsonval.Has(raw, "answer_box") {
		box := jsonval.Map(raw, "answer_box")
		features["featured_snippet"] = map[string]any{
			"present": true,
			"type":    jsonval.String(box, "type", ""),
			"source":  jsonval.String(box, "link", ""),
			"content": jsonval.String(box, "snippet", ""),
		}
	}
	if jsonval.Has(raw, "people_also_ask") {
		features["people_also_ask"] = questions(raw, alignmentQuestionLimit)
	}
	if jsonval.Has(raw, "related_searches") {
		features["related_searches"] = relatedQueries(raw, alignmentRelatedLimit, false)
	}
	return features
}

func summarize(url string, page *models.SEOPage) models.PageSummary {
	description := page.MetaTags["description"]
	internal := len(page.InternalLinks)
	external := len(page.ExternalLinks)
	wordCount := page.WordCount
	main := page.MainContent
	full := page.FullText

	return models.PageSummary{
		URL:                url,
		Title:              page.Title,
		MetaDescription:    &description,
		MainContent:        &main,
		FullText:           &full,
		WordCount:          &wordCount,
		Headings:           page.Headers,
		SchemaMarkup:       page.SchemaMarkup,
		InternalLinksCount: &internal,
		ExternalLinksCount: &external,
	}
}

func datasetSummary(found int, report *models.ContentAlignment) models.AlignmentDatasetSummary {
	var ok, words int
	headings := map[string]int{"h1": 0, "h2": 0, "h3": 0}
	for _, c := range report.TopCompetitors {
		if c.Error != "" {
			continue
		}
		ok++
		if c.WordCount != nil {
			words += *c.WordCount
		}
		for tag := range headings {
			headings[tag] += len(c.Headings[tag])
		}
	}

	denom := float64(max(ok, 1))
	avgHeadings := make(map[string]float64, len(headings))
	for tag, n := range headings {
		avgHeadings[tag] = float64(n) / denom
	}

	return models.AlignmentDatasetSummary{
		TotalCompetitorsFound:  found,
		SuccessfulScrapes:      ok,
		TargetPageScraped:      report.TargetPage.Error == "",
		AvgCompetitorWordCount: float64(words) / denom,
		AvgCompetitorHeadings:  avgHeadings,
	}
}
