package store

import "errors"

// ErrKeyNotFound is returned by [KeyValueStore.Get] when no value is stored
// under the requested key.
var ErrKeyNotFound = errors.New("key not found")
