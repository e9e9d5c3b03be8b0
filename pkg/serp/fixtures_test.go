package serp

import (
	"encoding/json"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

const fullSERP = `{
  "search_parameters": {"location": "Austin, Texas, United States"},
  "search_information": {"total_results": 1234000, "time_taken_displayed": 0.42, "query_displayed": "best widgets", "organic_results_state": "Results for exact spelling"},
  "answer_box": {"type": "organic_result_paragraph", "title": "Widgets", "snippet": "A widget is a thing.", "link": "https://www.wikipedia.org/wiki/Widget", "displayed_link": "wikipedia.org"},
  "people_also_ask": [
    {"question": "What is a widget?"},
    {"question": "How to buy a widget?"},
    {"question": "Are widgets safe?"},
    {"question": "Who makes widgets?"},
    {"question": "Where are widgets sold?"},
    {"question": "Why widgets?"}
  ],
  "knowledge_graph": {"title": "Widget", "type": "Product", "source": {"name": "Wikipedia", "link": "https://en.wikipedia.org/wiki/Widget"}},
  "shopping_results": [{"title": "a"}, {"title": "b"}],
  "local_results": {"places": [{"title": "Shop"}]},
  "images_results": [{}, {}, {}],
  "videos": [{}],
  "top_stories": [{}, {}],
  "organic_results": [
    {"position": 1, "title": "Best Widgets of 2026 - Review", "link": "https://www.amazon.com/shop/widgets", "snippet": "Compare price and cost.", "displayed_link": "amazon.com"},
    {"title": "How to Choose a Widget: Guide", "link": "https://blog.example.com/blog/how-to-choose", "snippet": "Follow these step by step instructions."},
    "not a result",
    {"position": 4, "title": "No link here"}
  ],
  "related_searches": [
    {"query": "cheap widgets"},
    {"link": "https://no-query"},
    {"query": "widget reviews"}
  ]
}`

func decodeSERP(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return m
}
