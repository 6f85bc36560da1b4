// Package history records every applied theme change so users can see
// what was changed and when.
//
// Entries live in the theme_history table of the shared SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"multidrop/internal/database"
	"multidrop/internal/theme"

	"github.com/rs/zerolog"
)

// timeFormat is fixed-width so stored timestamps sort lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one recorded theme change.
type Entry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Key       string    `json:"key,omitempty"`
	Value     string    `json:"value,omitempty"`
	Previous  string    `json:"previous,omitempty"`
}

// Repository defines the persistence interface for history entries.
type Repository interface {
	Save(entry *Entry) error
	List(limit int) ([]Entry, error)
	ListByAction(action string, limit int) ([]Entry, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the history at the default database path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens the history in the SQLite database at path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	const table = `
		CREATE TABLE IF NOT EXISTS theme_history (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			action    TEXT NOT NULL,
			name      TEXT NOT NULL DEFAULT '',
			value     TEXT NOT NULL DEFAULT '',
			previous  TEXT NOT NULL DEFAULT ''
		);`
	const index = `CREATE INDEX IF NOT EXISTS idx_theme_history_timestamp ON theme_history(timestamp);`

	if err := database.Migrate(db, table, index); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Save inserts a new entry, assigning its ID and, if unset, its timestamp.
func (r *SQLiteRepository) Save(entry *Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.Exec(`
		INSERT INTO theme_history (timestamp, action, name, value, previous)
		VALUES (?, ?, ?, ?, ?)`,
		entry.Timestamp.UTC().Format(timeFormat), entry.Action, entry.Key, entry.Value, entry.Previous,
	)
	if err != nil {
		return fmt.Errorf("history: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("history: failed to get last insert ID: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns the most recent limit entries, newest first.
func (r *SQLiteRepository) List(limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
		SELECT id, timestamp, action, name, value, previous
		FROM theme_history ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// ListByAction returns the most recent limit entries for action.
func (r *SQLiteRepository) ListByAction(action string, limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
		SELECT id, timestamp, action, name, value, previous
		FROM theme_history WHERE action = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, action, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes entries older than olderThan and reports how many.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(timeFormat)
	result, err := r.db.Exec(`DELETE FROM theme_history WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("history: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Action, &e.Key, &e.Value, &e.Previous); err != nil {
			return nil, fmt.Errorf("history: scan failed: %w", err)
		}
		parsed, err := time.Parse(timeFormat, ts)
		if err != nil {
			return nil, fmt.Errorf("history: scan failed: bad timestamp %q: %w", ts, err)
		}
		e.Timestamp = parsed
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Recorder returns a theme change observer that saves each change to repo.
// Failures are logged and otherwise ignored: a change that was applied is
// never rolled back because its history entry could not be written.
func Recorder(repo Repository, logger zerolog.Logger) func(theme.Change) {
	return func(c theme.Change) {
		entry := &Entry{Action: c.Action, Key: c.Key, Value: c.Value, Previous: c.Previous}
		if err := repo.Save(entry); err != nil {
			logger.Warn().Err(err).Str("action", c.Action).Msg("failed to record theme change")
		}
	}
}
