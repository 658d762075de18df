// Package session persists a REPL's interaction history to a local
// SQLite file via modernc.org/sqlite (a pure-Go driver, so cmd/glyph
// carries no cgo dependency). This is cmd/glyph-only state: the core
// evaluator never touches it, matching spec.md's explicit "the core
// does not persist state" non-goal, which binds the evaluator, not the
// CLI wrapped around it.
package session

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a REPL session's history log.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) and opens the SQLite file at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			recorded_at TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record appends one input/output pair to the history log.
func (s *Store) Record(input, output string) error {
	_, err := s.db.Exec(
		`INSERT INTO history (input, output, recorded_at) VALUES (?, ?, ?)`,
		input, output, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Entry is one recorded REPL interaction.
type Entry struct {
	Input      string
	Output     string
	RecordedAt string
}

// Recent returns the last n history entries, most recent first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT input, output, recorded_at FROM history ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Input, &e.Output, &e.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
