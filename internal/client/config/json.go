package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/spende/internal/flagx"
	"github.com/dmitrijs2005/spende/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	CachePath      *string        `json:"cache_path"`
}

// parseJson overlays cfg with the file named by -c/-config. Missing keys keep
// their current values. Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CachePath != nil {
		cfg.CachePath = *jc.CachePath
	}
}
