package serp

import (
	"reflect"
	"testing"
)

func TestClassifyIntent_Features(t *testing.T) {
	got := ClassifyIntent(Query{Keyword: "best widgets", Location: "US"}, decodeSERP(t, fullSERP), fixedNow)

	want := map[string]map[string]any{
		"featured_snippet": {
			"present":       true,
			"type":          "organic_result_paragraph",
			"content_type":  "answer",
			"source_domain": "www.wikipedia.org",
		},
		"people_also_ask": {
			"present":        true,
			"question_count": 6,
			"questions": []string{
				"What is a widget?", "How to buy a widget?", "Are widgets safe?",
				"Who makes widgets?", "Where are widgets sold?", "Why widgets?",
			},
		},
		"shopping_results": {"present": true, "product_count": 2, "intent_signal": "commercial/transactional"},
		"local_results":    {"present": true, "business_count": 1, "intent_signal": "local"},
		"knowledge_graph":  {"present": true, "type": "Product", "intent_signal": "informational"},
		"images":           {"present": true, "count": 3},
		"videos":           {"present": true, "count": 1},
		"top_stories":      {"present": true, "story_count": 2, "intent_signal": "informational/news"},
	}

	if !reflect.DeepEqual(got.SERPFeatures, want) {
		t.Errorf("features =\n%#v\nwant\n%#v", got.SERPFeatures, want)
	}
}

func TestClassifyIntent_DefinitionSnippet(t *testing.T) {
	raw := map[string]any{"answer_box": map[string]any{"type": "dictionary_definition"}}
	got := ClassifyIntent(Query{Keyword: "k"}, raw, fixedNow)

	fs := got.SERPFeatures["featured_snippet"]
	if fs["content_type"] != "informational" || fs["source_domain"] != "" {
		t.Errorf("featured snippet = %v", fs)
	}
}

func TestClassifyIntent_Signals(t *testing.T) {
	got := ClassifyIntent(Query{Keyword: "best widgets"}, decodeSERP(t, fullSERP), fixedNow)

	if len(got.OrganicResultsAnalysis) != 3 {
		t.Fatalf("results = %d, want 3", len(got.OrganicResultsAnalysis))
	}

	tests := []struct {
		name    string
		index   int
		url     urlWant
		content contentWant
	}{
		{
			name:    "shop result",
			index:   0,
			url:     urlWant{shop: true, ecommerce: true},
			content: contentWant{best: true, price: true},
		},
		{
			name:    "guide result",
			index:   1,
			url:     urlWant{blog: true, howTo: true},
			content: contentWant{howTo: true, steps: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := got.OrganicResultsAnalysis[tt.index]
			u := r.URLSignals
			if u.HasShopPath != tt.url.shop || u.HasBlogPath != tt.url.blog || u.HasHowTo != tt.url.howTo || u.IsEcommerceDomain != tt.url.ecommerce || u.IsInformationalDomain {
				t.Errorf("url signals = %+v", u)
			}
			c := r.ContentSignals
			if c.TitleHasHowTo != tt.content.howTo || c.TitleHasBest != tt.content.best || c.SnippetHasSteps != tt.content.steps || c.SnippetHasPrice != tt.content.price {
				t.Errorf("content signals = %+v", c)
			}
		})
	}

	if d := got.OrganicResultsAnalysis[1].Domain; d != "blog.example.com" {
		t.Errorf("domain = %q", d)
	}
	if d := got.OrganicResultsAnalysis[2].Domain; d != "" {
		t.Errorf("domain without link = %q", d)
	}

	// Related searches without a query keep their slot as "".
	wantRelated := []string{"cheap widgets", "", "widget reviews"}
	if !reflect.DeepEqual(got.RelatedSearches, wantRelated) {
		t.Errorf("related = %#v, want %#v", got.RelatedSearches, wantRelated)
	}
	if got.SearchMetadata.QueryDisplayed != "best widgets" || got.SearchMetadata.SearchTime != 0.42 {
		t.Errorf("metadata = %+v", got.SearchMetadata)
	}
}

type urlWant struct {
	shop, blog, howTo, ecommerce bool
}

type contentWant struct {
	howTo, best, steps, price bool
}

func TestClassifyIntent_Empty(t *testing.T) {
	got := ClassifyIntent(Query{Keyword: "k"}, map[string]any{}, fixedNow)
	if len(got.SERPFeatures) != 0 || got.OrganicResultsAnalysis == nil || got.RelatedSearches == nil {
		t.Errorf("got %+v", got)
	}
	if got.SearchMetadata.QueryDisplayed != "k" || got.SearchMetadata.SearchTime != "" || got.SearchMetadata.TotalResults != 0 {
		t.Errorf("metadata = %+v", got.SearchMetadata)
	}
}

func TestURLDomain(t *testing.T) {
	tests := map[string]string{
		"https://example.com/a/b": "example.com",
		"https://example.com":     "example.com",
		"example.com/path":        "",
		"":                        "",
	}
	for in, want := range tests {
		if got := urlDomain(in); got != want {
			t.Errorf("urlDomain(%q) = %q, want %q", in, got, want)
		}
	}
}
