package config

import "errors"

// Validation errors returned by [ClientConfig] validation when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, an empty server URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid persistent store settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive idle timeout).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
