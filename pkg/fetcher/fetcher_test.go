package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memCache) Get(k string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[k]
	return v, ok
}

func (m *memCache) Set(k string, v []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[k] = v
	return nil
}

func TestGetHTMLBytes(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("<html><title>ok</title></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "200", path: "/ok", wantErr: false},
		{name: "404", path: "/missing", wantErr: true},
	}

	f := NewFetcher(WithUserAgent("seo-test/1.0"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := f.GetHTMLBytes(context.Background(), srv.URL+tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetHTMLBytes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !strings.Contains(string(body), "<title>ok</title>") {
				t.Errorf("body = %q", body)
			}
			if gotUA != "seo-test/1.0" {
				t.Errorf("User-Agent = %q", gotUA)
			}
		})
	}
}

func TestGetHTMLBytes_Cache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("page"))
	}))
	defer srv.Close()

	cache := &memCache{data: map[string][]byte{}}
	f := NewFetcher(WithCache(cache))

	for i := 0; i < 3; i++ {
		body, err := f.GetHTMLBytes(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("GetHTMLBytes() error = %v", err)
		}
		if string(body) != "page" {
			t.Errorf("body = %q", body)
		}
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1", hits)
	}
}

func TestGetDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title> Hello </title></head><body><h1>x</h1></body></html>`))
	}))
	defer srv.Close()

	doc, err := NewFetcher().GetDocument(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("GetDocument() error = %v", err)
	}
	if got := strings.TrimSpace(doc.Find("title").Text()); got != "Hello" {
		t.Errorf("title = %q", got)
	}
}

func TestGetHTMLBytes_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("late"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFetcher().GetHTMLBytes(ctx, srv.URL); err == nil {
		t.Error("GetHTMLBytes() with cancelled context returned no error")
	}
}
