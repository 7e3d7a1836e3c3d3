// Package history persists executed queries so the query prompt can
// recall them across sessions.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/tabr-dev/tabr/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// Store is the query history backed by a local SQLite file.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed and opens the default
// history database.
func Open() (*Store, error) {
	path, err := config.HistoryDBPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return OpenPath(path)
}

// OpenPath opens a history database at an explicit path or DSN.
func OpenPath(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Record appends a query. Blank queries and immediate repeats of the
// most recent entry are skipped.
func (s *Store) Record(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	var last string
	err := s.db.QueryRow("SELECT query FROM queries ORDER BY id DESC LIMIT 1").Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if err == nil && last == query {
		return nil
	}
	if _, err := s.db.Exec("INSERT INTO queries (query) VALUES (?)", query); err != nil {
		return fmt.Errorf("record query: %w", err)
	}
	return nil
}

// Recent returns up to n queries, newest first.
func (s *Store) Recent(n int) ([]string, error) {
	rows, err := s.db.Query("SELECT query FROM queries ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
