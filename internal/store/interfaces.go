package store

// KeyValueStore is the minimal contract shared by the two credential
// caches: a session-scoped store that vanishes when the process ends, and a
// device-persistent store that survives restarts. Keeping the core against
// this interface makes it storage-backend-agnostic; tests back it with
// plain in-memory maps.
type KeyValueStore interface {
	// Get returns the value stored under key, or [ErrKeyNotFound] if the
	// key is absent.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the entry under key. Removing an absent key is not an
	// error.
	Remove(key string) error
}
