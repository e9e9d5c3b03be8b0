package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB is the response cache store. Only raw upstream payloads live here;
// analysis results are always recomputed.
type DB struct {
	*sql.DB
	path string
}

// Open opens the SQLite file at path, creating it and the cache table when
// needed. ":memory:" gives a private in-process store.
func Open(path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("cache database path is empty")
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	// One connection, so ":memory:" is the same database for every query.
	sqlDB.SetMaxOpenConns(1)

	db := &DB{DB: sqlDB, path: path}
	if err := db.migrate(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Path returns the database location given to Open.
func (db *DB) Path() string {
	return db.path
}

func (db *DB) migrate() error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return nil
}
