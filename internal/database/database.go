// Package database opens the SQLite file shared by the theme store and the
// change history.
//
// The database lives at ~/.config/multidrop/multidrop.db (or the
// platform-equivalent path returned by os.UserConfigDir).
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	appDir = "multidrop"
	dbFile = "multidrop.db"
)

var pathOverride string

// SetPath overrides the default database path. Intended for testing and
// for the --db flag.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override.
func ResetPath() { pathOverride = "" }

// DefaultPath returns the database path, honoring SetPath.
func DefaultPath() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("database: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, dbFile), nil
}

// Open opens a SQLite database at path, creating the parent directory.
// Writers wait on a busy lock instead of failing immediately.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("database: failed to create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("database: failed to open database: %w", err)
	}
	return db, nil
}

// Migrate runs each DDL statement in order. Statements must be idempotent
// (CREATE ... IF NOT EXISTS).
func Migrate(db *sql.DB, ddl ...string) error {
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("database: migration failed: %w", err)
		}
	}
	return nil
}
