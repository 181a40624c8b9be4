package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can spell durations as
// strings ("30s", "10m") in addition to raw nanosecond numbers.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for [Duration].
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*d = Duration(time.Duration(v))
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", raw)
	}
}

type structuredJSONConfig struct {
	Adapter struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
		Locale         string   `json:"locale"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Path string `json:"store_path"`
	} `json:"storage,omitempty"`

	Workers struct {
		IdleTimeout Duration `json:"idle_timeout"`
	} `json:"workers,omitempty"`
}

// parseJSON reads the JSON config file at path and maps it onto a
// [StructuredConfig] for merging.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config %q: %w", path, err)
	}

	var jsonCfg structuredJSONConfig
	if err := json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json config %q: %w", path, err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			ServerURL:      jsonCfg.Adapter.ServerURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Locale:         jsonCfg.Adapter.Locale,
		},
		Storage: Storage{
			Path: jsonCfg.Storage.Path,
		},
		Workers: Workers{
			IdleTimeout: time.Duration(jsonCfg.Workers.IdleTimeout),
		},
	}, nil
}
