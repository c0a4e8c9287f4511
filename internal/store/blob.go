package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS blobs (
    key    TEXT PRIMARY KEY,
    value  BLOB NOT NULL
);
`

// errNotFound is returned by Backend.Get when the key has no blob.
var errNotFound = errors.New("blob not found")

// Backend is the durable key/value storage the store persists through.
// There is exactly one logical key in practice; the interface exists so
// tests can substitute an in-memory backend.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// SQLiteBackend stores blobs in a single-table sqlite database.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens or creates the blob database at the given path.
func OpenSQLite(dbPath string) (*SQLiteBackend, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening blob db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Get returns the blob stored under key, or errNotFound.
func (s *SQLiteBackend) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put stores the blob under key, replacing any prior value.
func (s *SQLiteBackend) Put(key string, value []byte) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO blobs (key, value) VALUES (?, ?)", key, value)
	return err
}

// Delete removes the blob stored under key, if any.
func (s *SQLiteBackend) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM blobs WHERE key = ?", key)
	return err
}

// Close closes the underlying database.
func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "billtab")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "billtab")
}

// DefaultPath returns the full path to the bills database.
func DefaultPath() string {
	return filepath.Join(DataDir(), "bills.db")
}
