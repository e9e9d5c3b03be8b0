package caching

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dtnitsch/seo-web-parser/pkg/db"
)

func setupCache(t *testing.T, namespace string, ttl time.Duration) (*Cache, *db.DB) {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return NewCache(database, namespace, ttl), database
}

func TestCache_SetGet(t *testing.T) {
	c, _ := setupCache(t, NamespaceHTML, time.Hour)

	if _, ok := c.Get("https://example.com"); ok {
		t.Fatal("Get() on empty cache reported a hit")
	}
	if err := c.Set("https://example.com", []byte("body")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, ok := c.Get("https://example.com")
	if !ok || string(data) != "body" {
		t.Errorf("Get() = %q, %v; want body, true", data, ok)
	}
}

func TestCache_Expiry(t *testing.T) {
	c, _ := setupCache(t, NamespaceHTML, time.Minute)

	start := time.Unix(1700000000, 0)
	c.now = func() time.Time { return start }
	if err := c.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	tests := []struct {
		name    string
		elapsed time.Duration
		wantHit bool
	}{
		{name: "fresh", elapsed: 30 * time.Second, wantHit: true},
		{name: "at ttl", elapsed: time.Minute, wantHit: true},
		{name: "expired", elapsed: time.Minute + time.Second, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.now = func() time.Time { return start.Add(tt.elapsed) }
			if _, ok := c.Get("k"); ok != tt.wantHit {
				t.Errorf("Get() hit = %v, want %v", ok, tt.wantHit)
			}
		})
	}
}

func TestCache_NamespacesAreIsolated(t *testing.T) {
	html, database := setupCache(t, NamespaceHTML, time.Hour)
	keywords := NewCache(database, NamespaceKeywords, time.Hour)

	if err := html.Set("same-key", []byte("page")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok := keywords.Get("same-key"); ok {
		t.Error("keywords cache returned an html entry")
	}
}
