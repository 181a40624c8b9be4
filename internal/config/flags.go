package config

import (
	"flag"
	"time"
)

// ParseFlags parses all client configuration flags.
//
// Flags:
//
//	-s server base URL
//	-c/-config json file path with configs
//	-store persistent store path
//	-locale locale passed to the login endpoint
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-idle-timeout inactivity logout timeout (e.g., "10m")
func ParseFlags() *StructuredConfig {
	var serverURL string
	var jsonConfigPath string
	var storePath string
	var locale string
	var requestTimeout time.Duration
	var idleTimeout time.Duration

	flag.StringVar(&serverURL, "s", "", "Server base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&storePath, "store", "", "Persistent store path")
	flag.StringVar(&locale, "locale", "", "Locale for server messages")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&idleTimeout, "idle-timeout", 0, "Inactivity logout timeout (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
			Locale:         locale,
		},
		Storage: Storage{
			Path: storePath,
		},
		Workers: Workers{
			IdleTimeout: idleTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
