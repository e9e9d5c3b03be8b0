package caching

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/dtnitsch/seo-web-parser/pkg/db"
)

// Namespaces used by the fetch and keyword clients.
const (
	NamespaceHTML     = "html"
	NamespaceKeywords = "keywords"
)

// Cache is a TTL cache over the cache_entries table, scoped to one namespace.
type Cache struct {
	db        *db.DB
	namespace string
	ttl       time.Duration
	now       func() time.Time
}

// NewCache creates a Cache for namespace. Entries older than ttl are misses.
func NewCache(database *db.DB, namespace string, ttl time.Duration) *Cache {
	return &Cache{
		db:        database,
		namespace: namespace,
		ttl:       ttl,
		now:       time.Now,
	}
}

// key generates a SHA256 hash of the lookup key.
func (c *Cache) key(k string) string {
	hash := sha256.Sum256([]byte(k))
	return fmt.Sprintf("%x", hash)
}

// Get retrieves an item from the cache.
// It returns the data and true if the item is found and not expired.
// Otherwise, it returns nil and false.
func (c *Cache) Get(k string) ([]byte, bool) {
	entry, err := c.db.GetCacheEntry(c.namespace, c.key(k))
	if err != nil || entry == nil {
		return nil, false // Cache miss
	}

	if c.now().Sub(entry.CreatedAt) > c.ttl {
		return nil, false // Cache miss (expired)
	}

	return entry.Value, true
}

// Set adds an item to the cache.
func (c *Cache) Set(k string, data []byte) error {
	if err := c.db.PutCacheEntry(c.namespace, c.key(k), data, c.now()); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
