// Package config loads runtime configuration for the spende CLI client.
//
// Sources, later ones winning: built-in defaults, an optional JSON file named
// by -c/-config, then command-line flags.
//
//	-a string   base URL of the spende HTTP API
//	-t int      request timeout (seconds)
//	-f string   offline cache file ("" disables the cache)
//
// JSON file:
//
//	{
//	  "server_url": "http://127.0.0.1:8080/api",
//	  "request_timeout": "10s",
//	  "cache_path": "spende-cache.db"
//	}
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the spende CLI.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	CachePath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.CachePath = "spende-cache.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	args := os.Args[1:]
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
