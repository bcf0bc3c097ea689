package recent

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS recent_files (
	path      TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	opened_at TEXT NOT NULL
);
`

// Entry is one remembered file.
type Entry struct {
	Path     string
	Name     string
	OpenedAt time.Time
}

// Store records recently opened files in sqlite.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Touch records that path was opened now, inserting or refreshing its entry.
func (s *Store) Touch(ctx context.Context, path, name string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recent_files (path, name, opened_at) VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET name = excluded.name, opened_at = excluded.opened_at`,
		path, name, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record recent file: %w", err)
	}
	return nil
}

// List returns up to limit entries, most recently opened first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT path, name, opened_at FROM recent_files ORDER BY opened_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list recent files: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var opened string
		if err := rows.Scan(&entry.Path, &entry.Name, &opened); err != nil {
			return nil, fmt.Errorf("scan recent file: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, opened); parseErr == nil {
			entry.OpenedAt = ts
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Prune drops everything but the keep most recent entries.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		keep = 50
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM recent_files WHERE path NOT IN (
			SELECT path FROM recent_files ORDER BY opened_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune recent files: %w", err)
	}
	return res.RowsAffected()
}
