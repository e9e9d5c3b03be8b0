package serp

import (
	"reflect"
	"testing"
)

func TestCollectSERP(t *testing.T) {
	q := Query{Keyword: "best widgets", Location: "United States", Device: "mobile"}
	got := CollectSERP(q, decodeSERP(t, fullSERP), fixedNow)

	if got.SearchDate != "2026-05-04 12:00:00" || got.Device != "mobile" {
		t.Errorf("header = %+v", got)
	}
	if got.TotalResults != float64(1234000) || got.SearchTime != 0.42 {
		t.Errorf("totals = %v / %v", got.TotalResults, got.SearchTime)
	}

	if len(got.Results) != 3 {
		t.Fatalf("results = %d, want 3 (non-objects skipped)", len(got.Results))
	}
	if got.Results[0].Position != float64(1) || got.Results[0].URL != "https://www.amazon.com/shop/widgets" {
		t.Errorf("result 0 = %+v", got.Results[0])
	}
	// Missing position falls back to the 1-based index in the raw list.
	if got.Results[1].Position != 2 {
		t.Errorf("result 1 position = %v, want 2", got.Results[1].Position)
	}
	if !reflect.DeepEqual(got.Results[1].RichSnippet, map[string]any{}) {
		t.Errorf("rich snippet default = %#v", got.Results[1].RichSnippet)
	}

	f := got.SERPFeatures
	if f.AnswerBox == nil || f.AnswerBox.Type != "organic_result_paragraph" {
		t.Errorf("answer box = %+v", f.AnswerBox)
	}
	if len(f.PeopleAlsoAsk) != 4 || f.PeopleAlsoAsk[3].Question != "Who makes widgets?" {
		t.Errorf("people also ask = %+v", f.PeopleAlsoAsk)
	}
	if f.KnowledgeGraph == nil || f.KnowledgeGraph.Title != "Widget" {
		t.Errorf("knowledge graph = %+v", f.KnowledgeGraph)
	}

	wantRelated := []string{"cheap widgets", "widget reviews"}
	if !reflect.DeepEqual(got.RelatedSearches, wantRelated) {
		t.Errorf("related = %v, want %v", got.RelatedSearches, wantRelated)
	}

	md := got.SearchMetadata
	if md.Status != "best widgets" || md.EngineUsed != "google_via_serpapi" || md.DetectedLocation != "Austin, Texas, United States" {
		t.Errorf("metadata = %+v", md)
	}
}

func TestCollectSERP_EmptyResponse(t *testing.T) {
	q := Query{Keyword: "nothing", Location: "Berlin, Germany", Device: "desktop"}
	got := CollectSERP(q, map[string]any{}, fixedNow)

	if got.TotalResults != 0 || got.SearchTime != 0 {
		t.Errorf("totals = %v / %v", got.TotalResults, got.SearchTime)
	}
	if got.Results == nil || len(got.Results) != 0 || got.RelatedSearches == nil {
		t.Error("lists must be empty, not nil")
	}
	if got.SERPFeatures.AnswerBox != nil || got.SERPFeatures.PeopleAlsoAsk != nil || got.SERPFeatures.KnowledgeGraph != nil {
		t.Errorf("features = %+v", got.SERPFeatures)
	}
	md := got.SearchMetadata
	if md.Status != "nothing" || md.TimeTaken != "" || md.QueryDisplayed != "" || md.DetectedLocation != "Berlin, Germany" {
		t.Errorf("metadata defaults = %+v", md)
	}
}

func TestCollectSERP_MalformedSections(t *testing.T) {
	raw := map[string]any{
		"answer_box":       "oops",
		"people_also_ask":  map[string]any{"question": "x"},
		"knowledge_graph":  []any{1, 2},
		"organic_results":  "nope",
		"related_searches": []any{"plain string"},
	}
	got := CollectSERP(Query{Keyword: "k"}, raw, fixedNow)

	if got.SERPFeatures.AnswerBox != nil || got.SERPFeatures.PeopleAlsoAsk != nil || got.SERPFeatures.KnowledgeGraph != nil {
		t.Errorf("malformed features leaked: %+v", got.SERPFeatures)
	}
	if len(got.Results) != 0 || len(got.RelatedSearches) != 0 {
		t.Errorf("results = %v, related = %v", got.Results, got.RelatedSearches)
	}
}
