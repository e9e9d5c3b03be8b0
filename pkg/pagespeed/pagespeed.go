// Package pagespeed collects Core Web Vitals and Lighthouse scores from the
// Google PageSpeed Insights API.
package pagespeed

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/jsonval"
	"github.com/shopspring/decimal"
	"resty.dev/v3"
)

var categories = []string{"PERFORMANCE", "ACCESSIBILITY", "BEST_PRACTICES", "SEO"}

// Audits scoring below this are reported as opportunities.
const opportunityThreshold = 0.9

type Client struct {
	http     *resty.Client
	endpoint string
	apiKey   string
	now      func() time.Time
}

func NewClient(http *resty.Client, endpoint, apiKey string) *Client {
	return &Client{http: http, endpoint: endpoint, apiKey: apiKey, now: time.Now}
}

// Run analyzes pageURL for device ("desktop" or "mobile").
func (c *Client) Run(ctx context.Context, pageURL, device string) (*models.PageSpeedReport, error) {
	params := url.Values{
		"url":      {pageURL},
		"key":      {c.apiKey},
		"strategy": {strings.ToUpper(device)},
		"category": categories,
	}

	var data map[string]any
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		SetResult(&data).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to call PageSpeed API: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("PageSpeed API error: %d", resp.StatusCode())
	}

	return Reshape(pageURL, device, data, c.now()), nil
}

// Reshape reduces a runPagespeed response to the report fields.
func Reshape(pageURL, device string, data map[string]any, now time.Time) *models.PageSpeedReport {
	lighthouse := jsonval.Map(data, "lighthouseResult")
	audits := jsonval.Map(lighthouse, "audits")
	cats := jsonval.Map(lighthouse, "categories")

	numeric := func(audit string) float64 {
		return jsonval.Number(jsonval.Map(audits, audit), "numericValue", 0)
	}
	seconds := func(audit string) float64 {
		return decimal.NewFromFloat(numeric(audit)).Div(decimal.NewFromInt(1000)).InexactFloat64()
	}
	score := func(category string) float64 {
		s := jsonval.Number(jsonval.Map(cats, category), "score", 0)
		return decimal.NewFromFloat(s).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	return &models.PageSpeedReport{
		URL:      pageURL,
		TestDate: now.Format(models.TimestampLayout),
		Device:   device,
		CoreWebVitals: models.CoreWebVitals{
			LargestContentfulPaint: seconds("largest-contentful-paint"),
			FirstInputDelay:        numeric("max-potential-fid"),
			CumulativeLayoutShift:  numeric("cumulative-layout-shift"),
			FirstContentfulPaint:   seconds("first-contentful-paint"),
			TimeToInteractive:      seconds("interactive"),
		},
		LighthouseScores: models.LighthouseScores{
			Performance:   score("performance"),
			Accessibility: score("accessibility"),
			BestPractices: score("best-practices"),
			SEO:           score("seo"),
		},
		Opportunities: opportunities(audits),
	}
}

// opportunities lists numeric audits scoring under the threshold, ordered by
// audit id. Audits without a numeric score are skipped.
func opportunities(audits map[string]any) []models.PageSpeedOpportunity {
	ids := make([]string, 0, len(audits))
	for id := range audits {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := []models.PageSpeedOpportunity{}
	for _, id := range ids {
		audit, ok := jsonval.AsMap(audits[id])
		if !ok || jsonval.String(audit, "scoreDisplayMode", "") != "numeric" {
			continue
		}
		s, ok := audit["score"].(float64)
		if !ok || s >= opportunityThreshold {
			continue
		}
		out = append(out, models.PageSpeedOpportunity{
			ID:               id,
			Title:            jsonval.String(audit, "title", ""),
			Description:      jsonval.String(audit, "description", ""),
			Score:            s,
			PotentialSavings: jsonval.Number(jsonval.Map(audit, "details"), "overallSavingsMs", 0),
		})
	}
	return out
}
