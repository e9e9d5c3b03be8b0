package pagespeed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/seo-web-parser/models"
	"resty.dev/v3"
)

const sampleResponse = `{
  "lighthouseResult": {
    "categories": {
      "performance": {"score": 0.87},
      "accessibility": {"score": 1},
      "best-practices": {"score": 0.93},
      "seo": {"score": 0.5}
    },
    "audits": {
      "largest-contentful-paint": {"numericValue": 2534.5, "scoreDisplayMode": "numeric", "score": 0.95},
      "first-contentful-paint": {"numericValue": 1200, "scoreDisplayMode": "numeric", "score": 0.99},
      "interactive": {"numericValue": 4000, "scoreDisplayMode": "numeric", "score": 0.7, "title": "Time to Interactive", "description": "TTI"},
      "max-potential-fid": {"numericValue": 130},
      "cumulative-layout-shift": {"numericValue": 0.02},
      "unused-javascript": {"scoreDisplayMode": "numeric", "score": 0.4, "title": "Reduce unused JavaScript", "description": "Remove it", "details": {"overallSavingsMs": 450}},
      "render-blocking": {"scoreDisplayMode": "binary", "score": 0},
      "null-score": {"scoreDisplayMode": "numeric", "score": null},
      "no-score": {"scoreDisplayMode": "numeric"}
    }
  }
}`

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return m
}

func TestReshape(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := Reshape("https://example.com", "mobile", decode(t, sampleResponse), now)

	want := &models.PageSpeedReport{
		URL:      "https://example.com",
		TestDate: "2026-01-02 03:04:05",
		Device:   "mobile",
		CoreWebVitals: models.CoreWebVitals{
			LargestContentfulPaint: 2.5345,
			FirstInputDelay:        130,
			CumulativeLayoutShift:  0.02,
			FirstContentfulPaint:   1.2,
			TimeToInteractive:      4,
		},
		LighthouseScores: models.LighthouseScores{
			Performance:   87,
			Accessibility: 100,
			BestPractices: 93,
			SEO:           50,
		},
		Opportunities: []models.PageSpeedOpportunity{
			{ID: "interactive", Title: "Time to Interactive", Description: "TTI", Score: 0.7, PotentialSavings: 0},
			{ID: "unused-javascript", Title: "Reduce unused JavaScript", Description: "Remove it", Score: 0.4, PotentialSavings: 450},
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reshape() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestReshape_EmptyResponse(t *testing.T) {
	got := Reshape("u", "desktop", map[string]any{}, time.Now())
	if got.LighthouseScores != (models.LighthouseScores{}) || got.CoreWebVitals != (models.CoreWebVitals{}) {
		t.Errorf("expected zero scores, got %+v", got)
	}
	if got.Opportunities == nil || len(got.Opportunities) != 0 {
		t.Errorf("Opportunities = %#v, want empty slice", got.Opportunities)
	}
}

func TestClientRun(t *testing.T) {
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		if r.URL.Query().Get("key") != "good" {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"message":"bad key"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	tests := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "ok", key: "good"},
		{name: "forbidden", key: "bad", wantErr: "PageSpeed API error: 403"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(resty.New(), srv.URL, tt.key)
			report, err := client.Run(context.Background(), "https://example.com", "mobile")

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Run() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if report.LighthouseScores.Performance != 87 {
				t.Errorf("performance = %v", report.LighthouseScores.Performance)
			}
			if got := query["strategy"]; len(got) != 1 || got[0] != "MOBILE" {
				t.Errorf("strategy = %v", got)
			}
			wantCats := []string{"PERFORMANCE", "ACCESSIBILITY", "BEST_PRACTICES", "SEO"}
			if !reflect.DeepEqual(query["category"], wantCats) {
				t.Errorf("category = %v, want %v", query["category"], wantCats)
			}
		})
	}
}
