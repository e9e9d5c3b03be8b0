package serp

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/dtnitsch/seo-web-parser/models"
)

func strPtr(s string) *string { return &s }

func fakePage(words int, h1, h2 int, schema ...any) *models.SEOPage {
	headers := map[string][]string{"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {}}
	for i := 0; i < h1; i++ {
		headers["h1"] = append(headers["h1"], "Heading")
	}
	for i := 0; i < h2; i++ {
		headers["h2"] = append(headers["h2"], "Sub heading")
	}
	return &models.SEOPage{
		Title:         strPtr("Page title"),
		MetaTags:      map[string]string{"description": "A description"},
		Headers:       headers,
		MainContent:   "main",
		FullText:      "full",
		WordCount:     words,
		InternalLinks: []models.Link{{URL: "a"}, {URL: "b"}},
		ExternalLinks: []models.Link{},
		SchemaMarkup:  append([]any{}, schema...),
	}
}

type scrapeStub struct {
	pages map[string]*models.SEOPage
	calls []string
}

func (s *scrapeStub) scrape(ctx context.Context, url string) (*models.SEOPage, error) {
	s.calls = append(s.calls, url)
	if p, ok := s.pages[url]; ok {
		return p, nil
	}
	return nil, errors.New("status code: 404")
}

func countingPause(n *int) Pauser {
	return func(ctx context.Context) error {
		*n++
		return nil
	}
}

const alignmentSERP = `{
  "search_information": {"total_results": 500},
  "answer_box": {"type": "organic_result", "link": "https://a.com/", "snippet": "answer"},
  "people_also_ask": [{"question": "q1"}, {"question": "q2"}, {"question": "q3"}, {"question": "q4"}, {"question": "q5"}, {"question": "q6"}],
  "related_searches": [{"query": "r1"}, {}, {"query": "r3"}],
  "organic_results": [
    {"position": 1, "link": "https://a.com/", "title": "A", "snippet": "about a"},
    {"title": "No link"},
    {"position": 3, "link": "https://b.com/", "title": "B", "snippet": "about b"},
    {"position": 4, "link": "https://c.com/", "title": "C", "snippet": "about c"}
  ]
}`

func TestContentAlignment(t *testing.T) {
	stub := &scrapeStub{pages: map[string]*models.SEOPage{
		"https://mine.com/": fakePage(100, 1, 1),
		"https://a.com/":    fakePage(300, 1, 4),
		"https://c.com/":    fakePage(500, 2, 0),
	}}
	pauses := 0

	got, err := ContentAlignment(context.Background(), Query{Keyword: "widgets", Location: "US"}, "https://mine.com/",
		decodeSERP(t, alignmentSERP), stub.scrape, countingPause(&pauses), fixedNow)
	if err != nil {
		t.Fatalf("ContentAlignment() error = %v", err)
	}

	wantCalls := []string{"https://mine.com/", "https://a.com/", "https://b.com/", "https://c.com/"}
	if !reflect.DeepEqual(stub.calls, wantCalls) {
		t.Errorf("scrape order = %v, want %v", stub.calls, wantCalls)
	}
	if pauses != 3 {
		t.Errorf("pauses = %d, want one per competitor", pauses)
	}

	if got.TargetPage.Error != "" || *got.TargetPage.WordCount != 100 || *got.TargetPage.InternalLinksCount != 2 {
		t.Errorf("target page = %+v", got.TargetPage)
	}
	if got.TargetPage.SERPTitle != nil || got.TargetPage.SERPPosition != nil {
		t.Error("target page must not carry SERP fields")
	}

	if len(got.TopCompetitors) != 3 {
		t.Fatalf("competitors = %d, want 3", len(got.TopCompetitors))
	}
	a, b := got.TopCompetitors[0], got.TopCompetitors[1]
	if a.SERPPosition != float64(1) || *a.SERPTitle != "A" || *a.SERPSnippet != "about a" || *a.MetaDescription != "A description" {
		t.Errorf("competitor a = %+v", a)
	}
	if b.Error != "Error scraping https://b.com/: status code: 404" || b.SERPPosition != float64(3) || b.WordCount != nil {
		t.Errorf("competitor b = %+v", b)
	}

	wantFeatures := map[string]any{
		"featured_snippet": map[string]any{"present": true, "type": "organic_result", "source": "https://a.com/", "content": "answer"},
		"people_also_ask":  []string{"q1", "q2", "q3", "q4", "q5"},
		"related_searches": []string{"r1", "", "r3"},
	}
	if !reflect.DeepEqual(got.SERPFeatures, wantFeatures) {
		t.Errorf("features = %#v", got.SERPFeatures)
	}

	wantSummary := models.AlignmentDatasetSummary{
		TotalCompetitorsFound:  3,
		SuccessfulScrapes:      2,
		TargetPageScraped:      true,
		AvgCompetitorWordCount: 400,
		AvgCompetitorHeadings:  map[string]float64{"h1": 1.5, "h2": 2, "h3": 0},
	}
	if !reflect.DeepEqual(got.DatasetSummary, wantSummary) {
		t.Errorf("summary = %+v, want %+v", got.DatasetSummary, wantSummary)
	}
}

func TestContentAlignment_NothingScraped(t *testing.T) {
	stub := &scrapeStub{}
	pauses := 0
	raw := map[string]any{"organic_results": []any{map[string]any{"link": "https://x.com/"}}}

	got, err := ContentAlignment(context.Background(), Query{Keyword: "k"}, "https://mine.com/", raw, stub.scrape, countingPause(&pauses), fixedNow)
	if err != nil {
		t.Fatalf("ContentAlignment() error = %v", err)
	}
	if got.TargetPage.Error == "" || got.DatasetSummary.TargetPageScraped {
		t.Errorf("target page = %+v", got.TargetPage)
	}
	s := got.DatasetSummary
	if s.TotalCompetitorsFound != 1 || s.SuccessfulScrapes != 0 || s.AvgCompetitorWordCount != 0 {
		t.Errorf("summary = %+v", s)
	}
	if len(got.SERPFeatures) != 0 {
		t.Errorf("features = %v, want none", got.SERPFeatures)
	}
	if got.SERPMetadata.TotalResults != 0 {
		t.Errorf("total results = %v", got.SERPMetadata.TotalResults)
	}
}

func TestContentAlignment_CancelledDuringPause(t *testing.T) {
	stub := &scrapeStub{pages: map[string]*models.SEOPage{"https://mine.com/": fakePage(1, 0, 0)}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ContentAlignment(ctx, Query{Keyword: "k"}, "https://mine.com/", decodeSERP(t, alignmentSERP),
		stub.scrape, RandomPause(0, 0), fixedNow)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if len(stub.calls) != 1 {
		t.Errorf("scrapes after cancel = %v", stub.calls)
	}
}
