package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"didact/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.PersistentStore as a key/value table in SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements PersistentStore
var _ ports.PersistentStore = (*Store)(nil)

// NewStore creates a store; call Open before use
func NewStore() *Store {
	return &Store{}
}

// Open creates or opens the database at dbPath. An empty path selects
// DefaultDatabasePath; ":memory:" opens a private in-memory database.
func (s *Store) Open(dbPath string) error {
	if dbPath == "" {
		dbPath = DefaultDatabasePath()
	}
	dbPath = expandHome(dbPath)
	s.dbPath = dbPath

	dsn := dbPath
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
		dsn += "?_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		// every connection would get its own empty database
		db.SetMaxOpenConns(1)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file in use
func (s *Store) Path() string {
	return s.dbPath
}

// SchemaVersion returns the schema version recorded in the database
func (s *Store) SchemaVersion(ctx context.Context) (string, error) {
	var version string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return version, err
}

// Get returns the value stored under key
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set replaces the value under key. The write is committed before Set returns.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.withTx(ctx, func(tx *kvTx) error {
		return tx.put(key, value)
	})
}

// Delete removes key; deleting a missing key is not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.withTx(ctx, func(tx *kvTx) error {
		return tx.remove(key)
	})
}

// Keys lists every stored key in order
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *Store) withTx(ctx context.Context, fn func(tx *kvTx) error) error {
	if s.db == nil {
		return fmt.Errorf("store is not open")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(&kvTx{ctx: ctx, tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// DefaultDatabasePath returns $XDG_DATA_HOME/didact/registry.db
func DefaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "didact", "registry.db")
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
