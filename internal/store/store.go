// Package store provides the durable key/value storage that theme and
// locale preferences are mirrored into.
//
// The namespace is flat: every preference is one string value under one
// string key (e.g. "multidrop-primary-color"). Storage is backed by the
// shared SQLite database at ~/.config/multidrop/multidrop.db.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"multidrop/internal/database"
	"multidrop/internal/retry"
)

// KV defines the persistence interface for preference values.
type KV interface {
	// Get returns the value stored under key. ok is false when the key
	// has never been written or was deleted.
	Get(key string) (value string, ok bool, err error)

	// Set upserts a single value.
	Set(key, value string) error

	// SetMany upserts every entry atomically: either all values are
	// written or none are.
	SetMany(entries map[string]string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Keys returns every stored key in lexical order.
	Keys() ([]string, error)

	// Close releases resources.
	Close() error
}

// SQLiteStore implements KV backed by a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates or opens the store at the default database path.
func Open() (*SQLiteStore, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a store in the SQLite database at path.
func OpenAt(path string) (*SQLiteStore, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	const ddl = `
		CREATE TABLE IF NOT EXISTS kv (
			name       TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`
	if err := database.Migrate(db, ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

const upsert = `
	INSERT INTO kv (name, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at`

// Get returns the value stored under key.
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE name = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: query %q failed: %w", key, err)
	}
	return value, true, nil
}

// Set upserts a single value.
func (s *SQLiteStore) Set(key, value string) error {
	return s.SetMany(map[string]string{key: value})
}

// SetMany upserts every entry in a single transaction. A write that finds
// the database locked by another process is retried with backoff.
func (s *SQLiteStore) SetMany(entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}
	return retry.Do(context.Background(), retry.DefaultConfig(), retry.IsBusy, func() error {
		return s.setMany(entries)
	})
}

func (s *SQLiteStore) setMany(entries map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin failed: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsert)
	if err != nil {
		return fmt.Errorf("store: prepare failed: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, key := range sortedKeys(entries) {
		if _, err := stmt.Exec(key, entries[key], now); err != nil {
			return fmt.Errorf("store: upsert %q failed: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit failed: %w", err)
	}
	return nil
}

// Delete removes key.
func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE name = ?`, key); err != nil {
		return fmt.Errorf("store: delete %q failed: %w", key, err)
	}
	return nil
}

// Keys returns every stored key in lexical order.
func (s *SQLiteStore) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM kv ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: query failed: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("store: scan failed: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close releases database resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore implements KV in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) SetMany(entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range entries {
		m.values[k] = v
	}
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.values), nil
}

func (m *MemoryStore) Close() error { return nil }

// Snapshot returns a copy of every stored value.
func (m *MemoryStore) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
