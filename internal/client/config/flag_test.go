package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"-a", "https://spende.example/api", "-t", "30", "-f", "/tmp/c.db"}, expectPanic: false,
			expected: &Config{ServerURL: "https://spende.example/api", RequestTimeout: 30 * time.Second, CachePath: "/tmp/c.db"}},
		{name: "Test2 incorrect timeout", args: []string{"-a", "http://x", "-t", "abc"}, expectPanic: true, expected: &Config{}},
		{name: "Test3 unrelated flags ignored", args: []string{"-c", "cfg.json", "-v", "-t", "5"}, expectPanic: false,
			expected: &Config{RequestTimeout: 5 * time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}
