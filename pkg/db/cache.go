package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CacheEntry is one cached upstream response.
type CacheEntry struct {
	Namespace string
	Key       string
	Value     []byte
	CreatedAt time.Time
}

// NamespaceStats summarises the entries of one namespace.
type NamespaceStats struct {
	Namespace string    `json:"namespace" yaml:"namespace"`
	Entries   int       `json:"entries" yaml:"entries"`
	SizeBytes int64     `json:"size_bytes" yaml:"size_bytes"`
	OldestAt  time.Time `json:"oldest_at" yaml:"oldest_at"`
	NewestAt  time.Time `json:"newest_at" yaml:"newest_at"`
}

// GetCacheEntry returns the entry for (namespace, key), or nil when absent.
func (db *DB) GetCacheEntry(namespace, key string) (*CacheEntry, error) {
	entry := CacheEntry{Namespace: namespace, Key: key}
	var createdAt int64
	err := db.QueryRow(`
		SELECT value, created_at
		FROM cache_entries
		WHERE namespace = ? AND cache_key = ?
	`, namespace, key).Scan(&entry.Value, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}
	entry.CreatedAt = time.Unix(createdAt, 0)
	return &entry, nil
}

// PutCacheEntry inserts or replaces the entry for (namespace, key).
func (db *DB) PutCacheEntry(namespace, key string, value []byte, createdAt time.Time) error {
	_, err := db.Exec(`
		INSERT INTO cache_entries (namespace, cache_key, value, size_bytes, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(namespace, cache_key) DO UPDATE SET
			value = excluded.value,
			size_bytes = excluded.size_bytes,
			created_at = excluded.created_at
	`, namespace, key, value, len(value), createdAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to put cache entry: %w", err)
	}
	return nil
}

// PurgeCacheEntries deletes entries created before cutoff and returns how many
// were removed. An empty namespace purges every namespace.
func (db *DB) PurgeCacheEntries(namespace string, cutoff time.Time) (int64, error) {
	query := "DELETE FROM cache_entries WHERE created_at < ?"
	args := []any{cutoff.Unix()}
	if namespace != "" {
		query += " AND namespace = ?"
		args = append(args, namespace)
	}

	result, err := db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache entries: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged entries: %w", err)
	}
	return n, nil
}

// CacheStats returns per-namespace statistics ordered by namespace.
func (db *DB) CacheStats() ([]NamespaceStats, error) {
	rows, err := db.Query(`
		SELECT namespace, COUNT(*), COALESCE(SUM(size_bytes), 0), MIN(created_at), MAX(created_at)
		FROM cache_entries
		GROUP BY namespace
		ORDER BY namespace
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cache stats: %w", err)
	}
	defer rows.Close()

	var stats []NamespaceStats
	for rows.Next() {
		var s NamespaceStats
		var oldest, newest int64
		if err := rows.Scan(&s.Namespace, &s.Entries, &s.SizeBytes, &oldest, &newest); err != nil {
			return nil, fmt.Errorf("failed to scan cache stats: %w", err)
		}
		s.OldestAt = time.Unix(oldest, 0)
		s.NewestAt = time.Unix(newest, 0)
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cache stats: %w", err)
	}
	return stats, nil
}
