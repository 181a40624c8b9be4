package store

import (
	"fmt"
	"io"

	"github.com/pwdman/pwdman-client/internal/config"
	"github.com/pwdman/pwdman-client/internal/logger"
)

// ClientStorages groups the two credential caches the client works with:
// the session-scoped store (in-memory, gone when the process ends) and the
// device-persistent store (SQLite, survives restarts). Either cache can be
// reconstructed from the other where the custody rules allow it, so no
// transactional multi-store updates exist.
type ClientStorages struct {
	// Session is cleared when the client exits. Holds the serialized
	// AuthResult and the plaintext data-protection passphrase.
	Session KeyValueStore

	// Persistent survives restarts. Holds the client identity, the
	// long-lived token and the secKey-wrapped passphrase copy.
	Persistent KeyValueStore
}

// NewClientStorages initialises the client storage layer: a fresh in-memory
// session store and the SQLite-backed persistent store at cfg.Path
// (schema-migrated on open). Returns an error if the persistent store
// cannot be opened or migrated.
func NewClientStorages(cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	persistent, err := NewSQLiteStore(cfg.Path, log)
	if err != nil {
		return nil, fmt.Errorf("create persistent store: %w", err)
	}

	return &ClientStorages{
		Session:    NewMemoryStore(),
		Persistent: persistent,
	}, nil
}

// Close releases the persistent store's database handle. The session store
// holds no resources.
func (s *ClientStorages) Close() error {
	if closer, ok := s.Persistent.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
