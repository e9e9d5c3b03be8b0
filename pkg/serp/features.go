package serp

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/jsonval"
)

const featureQuestionLimit = 5

var numberedItem = regexp.MustCompile(`\d+\.`)

// FeatureOpportunities lists which SERP features exist for q and how the target
// page is structured, so an agent can judge which features the page could win.
// A failed scrape is reported inside the structure; only cancellation aborts.
func FeatureOpportunities(ctx context.Context, q Query, targetURL string, raw map[string]any, scrape ScrapeFunc, now time.Time) (*models.FeatureOpportunities, error) {
	report := &models.FeatureOpportunities{
		Keyword:             q.Keyword,
		TargetURL:           targetURL,
		AnalysisDate:        now.Format(models.TimestampLayout),
		Location:            q.Location,
		CurrentSERPFeatures: currentFeatures(raw),
		OpportunitySignals:  map[string]any{},
	}

	page, err := scrape(ctx, targetURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		report.TargetPageStructure = models.TargetPageStructure{Error: scrapeError(targetURL, err)}
		return report, nil
	}
	report.TargetPageStructure = PageStructure(page)
	return report, nil
}

func currentFeatures(raw map[string]any) map[string]map[string]any {
	features := map[string]map[string]any{}

	if jsonval.Has(raw, "answer_box") {
		box := jsonval.Map(raw, "answer_box")
		boxType := jsonval.String(box, "type", "")
		format := "list"
		if strings.Contains(boxType, "paragraph") {
			format = "paragraph"
		}
		features["featured_snippet"] = map[string]any{
			"present":        true,
			"type":           boxType,
			"current_winner": jsonval.String(box, "link", ""),
			"content_length": utf8.RuneCountInString(jsonval.String(box, "snippet", "")),
			"content_format": format,
		}
	} else {
		features["featured_snippet"] = map[string]any{"present": false, "opportunity": true}
	}

	if jsonval.Has(raw, "people_also_ask") {
		features["people_also_ask"] = map[string]any{
			"present":        true,
			"question_count": countOf(raw["people_also_ask"]),
			"questions":      questions(raw, featureQuestionLimit),
		}
	} else {
		features["people_also_ask"] = map[string]any{"present": false, "opportunity": true}
	}

	if jsonval.Has(raw, "knowledge_graph") {
		kg := jsonval.Map(raw, "knowledge_graph")
		features["knowledge_graph"] = map[string]any{
			"present":        true,
			"type":           jsonval.String(kg, "type", ""),
			"current_winner": jsonval.String(jsonval.Map(kg, "source"), "link", ""),
		}
	}

	if jsonval.Has(raw, "shopping_results") {
		features["shopping_results"] = map[string]any{
			"present":       true,
			"product_count": countOf(raw["shopping_results"]),
		}
	}

	if jsonval.Has(raw, "images_results") {
		features["images"] = map[string]any{
			"present":     true,
			"image_count": countOf(raw["images_results"]),
		}
	}

	if jsonval.Has(raw, "videos") {
		features["videos"] = map[string]any{
			"present":     true,
			"video_count": countOf(raw["videos"]),
		}
	}

	return features
}

// PageStructure describes the content, heading and schema shape of page.
func PageStructure(page *models.SEOPage) models.TargetPageStructure {
	main := page.MainContent
	lowerMain := strings.ToLower(main)

	paragraphs := 0
	for _, p := range strings.Split(main, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	content := &models.ContentStructure{
		WordCount:        page.WordCount,
		HasQuestions:     strings.Contains(main, "?"),
		QuestionCount:    strings.Count(main, "?"),
		HasNumberedLists: numberedItem.MatchString(main),
		HasBulletPoints:  containsAny(main, "•", "*"),
		HasTables:        strings.Contains(page.FullText, "<table"),
		ParagraphCount:   paragraphs,
		HasStepByStep:    containsAny(lowerMain, "step 1", "first step", "step by step"),
	}

	h1, h2, h3 := page.Headers["h1"], page.Headers["h2"], page.Headers["h3"]
	sub := append(append([]string{}, h2...), h3...)
	top := append(append([]string{}, h1...), h2...)

	headings := &models.HeadingStructure{
		H1Count: len(h1),
		H2Count: len(h2),
		H3Count: len(h3),
	}
	for _, h := range sub {
		lower := strings.ToLower(h)
		if strings.Contains(lower, "faq") || strings.Contains(lower, "question") {
			headings.HasFAQHeadings = true
		}
		if strings.HasSuffix(h, "?") {
			headings.HeadingAsQuestions++
		}
	}
	for _, h := range top {
		if strings.Contains(strings.ToLower(h), "how to") {
			headings.HasHowToHeadings = true
			break
		}
	}

	types := schemaTypes(page.SchemaMarkup)
	has := func(names ...string) bool {
		for _, t := range types {
			for _, n := range names {
				if t == n {
					return true
				}
			}
		}
		return false
	}
	schema := &models.SchemaAnalysis{
		SchemaTypesPresent:    types,
		HasArticleSchema:      has("Article", "BlogPosting"),
		HasFAQSchema:          has("FAQPage"),
		HasHowToSchema:        has("HowTo"),
		HasBreadcrumbSchema:   has("BreadcrumbList"),
		HasOrganizationSchema: has("Organization"),
	}

	descLen := utf8.RuneCountInString(page.MetaTags["description"])
	titleLen := 0
	if page.Title != nil {
		titleLen = utf8.RuneCountInString(*page.Title)
	}

	return models.TargetPageStructure{
		ContentStructure:      content,
		HeadingStructure:      headings,
		SchemaAnalysis:        schema,
		MetaDescriptionLength: &descLen,
		TitleLength:           &titleLen,
	}
}

// schemaTypes collects the distinct @type values of top-level JSON-LD objects,
// looking inside @graph only for objects without their own @type. A multi-typed
// @type contributes each of its names.
func schemaTypes(markup []any) []string {
	types := []string{}
	seen := map[string]bool{}
	add := func(v any) {
		var names []string
		switch t := v.(type) {
		case string:
			names = []string{t}
		case []any:
			for _, e := range t {
				if s, ok := e.(string); ok {
					names = append(names, s)
				}
			}
		}
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				types = append(types, n)
			}
		}
	}

	for _, block := range markup {
		obj, ok := jsonval.AsMap(block)
		if !ok {
			continue
		}
		if jsonval.Has(obj, "@type") {
			add(obj["@type"])
			continue
		}
		for _, item := range jsonval.Maps(obj, "@graph") {
			if jsonval.Has(item, "@type") {
				add(item["@type"])
			}
		}
	}
	return types
}
