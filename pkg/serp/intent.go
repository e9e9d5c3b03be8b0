package serp

import (
	"strings"
	"time"

	"github.com/dtnitsch/seo-web-parser/models"
	"github.com/dtnitsch/seo-web-parser/pkg/jsonval"
)

var (
	ecommerceDomains     = []string{"amazon", "ebay", "etsy", "shopify"}
	informationalDomains = []string{"wikipedia", "britannica", "howstuffworks"}
)

const (
	intentResultLimit   = 10
	intentQuestionLimit = 8
	intentRelatedLimit  = 10
)

// ClassifyIntent collects the signals an agent needs to judge the search intent
// behind q: which SERP features appear and what the top results look like.
func ClassifyIntent(q Query, raw map[string]any, now time.Time) *models.SearchIntentData {
	info := jsonval.Map(raw, "search_information")

	return &models.SearchIntentData{
		Keyword:                q.Keyword,
		AnalysisDate:           now.Format(models.TimestampLayout),
		Location:               q.Location,
		SERPFeatures:           intentFeatures(raw),
		OrganicResultsAnalysis: intentResults(raw),
		RelatedSearches:        relatedQueries(raw, intentRelatedLimit, false),
		SearchMetadata: models.IntentSearchMetadata{
			TotalResults:   jsonval.Value(info, "total_results", 0),
			SearchTime:     jsonval.Value(info, "time_taken_displayed", ""),
			QueryDisplayed: jsonval.Value(info, "query_displayed", q.Keyword),
		},
	}
}

func intentFeatures(raw map[string]any) map[string]map[string]any {
	features := map[string]map[string]any{}

	if jsonval.Has(raw, "answer_box") {
		box := jsonval.Map(raw, "answer_box")
		boxType := jsonval.String(box, "type", "")
		contentType := "answer"
		if strings.Contains(boxType, "definition") {
			contentType = "informational"
		}
		features["featured_snippet"] = map[string]any{
			"present":       true,
			"type":          boxType,
			"content_type":  contentType,
			"source_domain": urlDomain(jsonval.String(box, "link", "")),
		}
	}

	if jsonval.Has(raw, "people_also_ask") {
		features["people_also_ask"] = map[string]any{
			"present":        true,
			"question_count": countOf(raw["people_also_ask"]),
			"questions":      questions(raw, intentQuestionLimit),
		}
	}

	if jsonval.Has(raw, "shopping_results") {
		features["shopping_results"] = map[string]any{
			"present":       true,
			"product_count": countOf(raw["shopping_results"]),
			"intent_signal": "commercial/transactional",
		}
	}

	if jsonval.Has(raw, "local_results") {
		features["local_results"] = map[string]any{
			"present":        true,
			"business_count": countOf(raw["local_results"]),
			"intent_signal":  "local",
		}
	}

	if jsonval.Has(raw, "knowledge_graph") {
		features["knowledge_graph"] = map[string]any{
			"present":       true,
			"type":          jsonval.String(jsonval.Map(raw, "knowledge_graph"), "type", ""),
			"intent_signal": "informational",
		}
	}

	if jsonval.Has(raw, "images_results") {
		features["images"] = map[string]any{
			"present": true,
			"count":   countOf(raw["images_results"]),
		}
	}

	if jsonval.Has(raw, "videos") {
		features["videos"] = map[string]any{
			"present": true,
			"count":   countOf(raw["videos"]),
		}
	}

	if jsonval.Has(raw, "top_stories") {
		features["top_stories"] = map[string]any{
			"present":       true,
			"story_count":   countOf(raw["top_stories"]),
			"intent_signal": "informational/news",
		}
	}

	return features
}

func intentResults(raw map[string]any) []models.IntentResult {
	results := []models.IntentResult{}
	items := jsonval.Slice(raw, "organic_results")
	if len(items) > intentResultLimit {
		items = items[:intentResultLimit]
	}

	for i, item := range items {
		r, ok := jsonval.AsMap(item)
		if !ok {
			continue
		}
		link := jsonval.String(r, "link", "")
		domain := urlDomain(link)
		title := jsonval.String(r, "title", "")
		snippet := jsonval.String(r, "snippet", "")
		lowerTitle := strings.ToLower(title)
		lowerSnippet := strings.ToLower(snippet)

		results = append(results, models.IntentResult{
			Position: jsonval.Value(r, "position", i+1),
			URL:      link,
			Domain:   domain,
			Title:    title,
			Snippet:  snippet,
			URLSignals: models.URLSignals{
				HasShopPath:           containsAny(link, "/shop", "/store", "/buy"),
				HasBlogPath:           containsAny(link, "/blog", "/articles", "/news"),
				HasHowTo:              containsAny(link, "how-to", "guide", "tutorial"),
				IsEcommerceDomain:     containsAny(domain, ecommerceDomains...),
				IsInformationalDomain: containsAny(domain, informationalDomains...),
			},
			ContentSignals: models.ContentSignals{
				TitleHasHowTo:   containsAny(lowerTitle, "how to", "guide", "tutorial"),
				TitleHasBest:    containsAny(lowerTitle, "best", "top", "review"),
				TitleHasBuy:     containsAny(lowerTitle, "buy", "price", "cost"),
				TitleHasWhatIs:  containsAny(lowerTitle, "what is", "definition"),
				SnippetHasSteps: containsAny(lowerSnippet, "step", "follow"),
				SnippetHasPrice: containsAny(lowerSnippet, "price", "cost", "$"),
			},
		})
	}
	return results
}

// urlDomain returns the third "/"-separated segment of link, which is the host
// for any absolute URL, or "" when there is none.
func urlDomain(link string) string {
	parts := strings.Split(link, "/")
	if len(parts) > 2 {
		return parts[2]
	}
	return ""
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// countOf is the element count of a sequence or the key count of a mapping.
func countOf(v any) int {
	switch t := v.(type) {
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	default:
		return 0
	}
}
