package serp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"resty.dev/v3"
)

func TestClientSearch(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		switch got.Get("q") {
		case "quota":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid API key."}`))
		case "soft":
			w.Write([]byte(`{"error":"Google hasn't returned any results for this query."}`))
		case "bare":
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		default:
			w.Write([]byte(`{"organic_results":[{"link":"https://a.com"}]}`))
		}
	}))
	defer srv.Close()

	client := NewClient(resty.New(), srv.URL, "key-123")

	tests := []struct {
		name    string
		query   Query
		wantErr string
	}{
		{name: "ok", query: Query{Keyword: "widgets", Location: "US", Device: "mobile"}},
		{name: "http error", query: Query{Keyword: "quota"}, wantErr: "SerpAPI error: Invalid API key."},
		{name: "error in body", query: Query{Keyword: "soft"}, wantErr: "SerpAPI error: Google hasn't returned any results for this query."},
		{name: "no body", query: Query{Keyword: "bare"}, wantErr: "SerpAPI error: 502 Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := client.Search(context.Background(), tt.query)
			if tt.wantErr != "" {
				var apiErr *APIError
				if !errors.As(err, &apiErr) || err.Error() != tt.wantErr {
					t.Fatalf("Search() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(raw["organic_results"].([]any)) != 1 {
				t.Errorf("raw = %v", raw)
			}

			want := map[string]string{
				"q": "widgets", "api_key": "key-123", "engine": "google", "location": "US",
				"device": "mobile", "hl": "en", "gl": "us", "num": "10",
			}
			for k, v := range want {
				if got.Get(k) != v {
					t.Errorf("param %s = %q, want %q", k, got.Get(k), v)
				}
			}
		})
	}
}

func TestClientSearch_NoDevice(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	raw, err := NewClient(resty.New(), srv.URL, "k").Search(context.Background(), Query{Keyword: "x"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if raw == nil {
		t.Error("Search() returned nil map")
	}
	if got.Has("device") {
		t.Error("device sent when unset")
	}
}
