package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the pwdman
// client. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds network settings for the server transport.
	Adapter Adapter `envPrefix:"PWDMAN_"`

	// Storage holds the persistent key-value store settings.
	Storage Storage `envPrefix:"PWDMAN_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"PWDMAN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the PWDMAN_CONFIG variable or the -c / -config flag.
	JSONFilePath string `env:"PWDMAN_CONFIG"`
}

// Adapter holds network settings used by the client transport layer.
type Adapter struct {
	// ServerURL is the base URL of the pwdman backend.
	ServerURL string `env:"SERVER_URL" json:"server_url"`

	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	// Locale is passed to the primary login endpoint so server-issued
	// messages match the user's language.
	Locale string `env:"LOCALE" json:"locale"`
}

// Storage holds the device-persistent store settings.
type Storage struct {
	// Path is the SQLite file backing the persistent key-value store.
	Path string `env:"STORE_PATH" json:"store_path"`
}

// Workers holds background worker settings.
type Workers struct {
	// IdleTimeout is how long the client may sit without a successful
	// server round-trip before the inactivity monitor logs the user out.
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT" json:"idle_timeout"`
}

// ClientConfig is the validated configuration consumed by the client
// runtime.
type ClientConfig struct {
	// Adapter contains transport settings.
	Adapter Adapter
	// Storage contains persistent store settings.
	Storage Storage
	// Workers contains background job settings.
	Workers Workers
}

// GetClientConfig builds and validates the client configuration.
//
// Sources are merged in priority order: environment variables, then
// command-line flags, then the optional JSON file named by either of the
// former. Missing values fall back to defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (c *ClientConfig) applyDefaults() {
	if c.Adapter.ServerURL == "" {
		c.Adapter.ServerURL = "http://localhost:8080"
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = 15 * time.Second
	}
	if c.Adapter.Locale == "" {
		c.Adapter.Locale = "en"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "pwdman.db"
	}
	if c.Workers.IdleTimeout <= 0 {
		c.Workers.IdleTimeout = 10 * time.Minute
	}
}

func (c *ClientConfig) validate() error {
	if c.Adapter.ServerURL == "" {
		return fmt.Errorf("%w: empty server url", ErrInvalidAdapterConfigs)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("%w: empty store path", ErrInvalidStorageConfigs)
	}
	if c.Workers.IdleTimeout <= 0 {
		return fmt.Errorf("%w: idle timeout must be positive", ErrInvalidWorkerConfigs)
	}
	return nil
}
