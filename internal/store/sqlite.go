package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pwdman/pwdman-client/internal/logger"
	"github.com/pwdman/pwdman-client/migrations"
)

// sqliteStore is the device-persistent [KeyValueStore], backed by a single
// kv table in an SQLite file. It survives restarts and holds the client
// identity, the long-lived token and the secKey-wrapped passphrase copy.
type sqliteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteStore opens (or creates) the SQLite database at path, runs
// pending schema migrations and returns a persistent [KeyValueStore].
// Returns an error if the file cannot be opened or migration fails.
func NewSQLiteStore(path string, log *logger.Logger) (KeyValueStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	if err := migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate sqlite store: %w", err)
	}

	log.Info().Str("path", path).Msg("persistent store ready")
	return &sqliteStore{db: db, logger: log}, nil
}

// NewSQLiteStoreFromDB wraps an already opened database handle. The caller
// is responsible for the schema; used in tests with a mocked handle.
func NewSQLiteStoreFromDB(db *sql.DB, log *logger.Logger) KeyValueStore {
	return &sqliteStore{db: db, logger: log}
}

// Get implements [KeyValueStore].
func (s *sqliteStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

// Set implements [KeyValueStore].
func (s *sqliteStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Remove implements [KeyValueStore].
func (s *sqliteStore) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}
