// Package leaderboard provides SQLite-based persistence for the ranked score
// list, one entry per player identity. Uses the pure-Go modernc.org/sqlite
// driver to avoid CGO dependencies.
package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultLimit is the number of entries the ranked view shows.
const DefaultLimit = 10

// Store manages the SQLite database connection for leaderboard persistence.
type Store struct {
	db *sql.DB
}

// Entry is a single leaderboard record. Identity deduplicates players; only
// the best score per identity is kept.
type Entry struct {
	Identity    string
	DisplayName string
	Score       int
	UpdatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("leaderboard: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("leaderboard: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("leaderboard: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("leaderboard: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS leaderboard (
			identity TEXT PRIMARY KEY,
			display_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_top ON leaderboard(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SubmitScore upserts a score for the given identity: creates the entry if
// none exists, updates it only when score is strictly greater than the stored
// one, and otherwise leaves it untouched.
func (s *Store) SubmitScore(identity, displayName string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO leaderboard (identity, display_name, score, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(identity) DO UPDATE SET
			display_name = excluded.display_name,
			score = excluded.score,
			updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > leaderboard.score`,
		identity, displayName, score,
	)
	if err != nil {
		return fmt.Errorf("leaderboard: cannot submit score: %w", err)
	}
	return nil
}

// Top retrieves the highest-ranked entries, ordered by score descending.
func (s *Store) Top(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT identity, display_name, score, updated_at
		 FROM leaderboard
		 ORDER BY score DESC, updated_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updatedAt any
		if err := rows.Scan(&e.Identity, &e.DisplayName, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("leaderboard: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTimestamp(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard: row iteration error: %w", err)
	}

	return entries, nil
}

// EntryFor retrieves the entry for an identity, or nil if none exists.
func (s *Store) EntryFor(identity string) (*Entry, error) {
	var e Entry
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT identity, display_name, score, updated_at
		 FROM leaderboard
		 WHERE identity = ?
		 LIMIT 1`,
		identity,
	).Scan(&e.Identity, &e.DisplayName, &e.Score, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot query entry: %w", err)
	}

	e.UpdatedAt = parseTimestamp(updatedAt)
	return &e, nil
}

// Count returns the number of leaderboard entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM leaderboard").Scan(&n); err != nil {
		return 0, fmt.Errorf("leaderboard: cannot count entries: %w", err)
	}
	return n, nil
}

// Clear deletes all leaderboard entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM leaderboard"); err != nil {
		return fmt.Errorf("leaderboard: cannot clear entries: %w", err)
	}
	return nil
}

// Watch polls the top entries at the given interval and streams each result
// to the returned channel. The ranking is computed entirely by the store; the
// consumer renders whatever it receives. Poll errors are skipped so a broken
// store leaves the consumer at its last known (or loading) state. The channel
// is closed when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, interval time.Duration, limit int) <-chan []Entry {
	if interval <= 0 {
		interval = time.Second
	}

	ch := make(chan []Entry, 1)
	go func() {
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			entries, err := s.Top(limit)
			if err == nil {
				select {
				case ch <- entries:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// parseTimestamp handles both time.Time and string scans from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
