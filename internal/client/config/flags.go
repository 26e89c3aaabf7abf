package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/spende/internal/flagx"
)

// parseFlags populates cfg from -a (server URL), -t (timeout, seconds) and
// -f (cache file). Other arguments are filtered out with flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the spende API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.CachePath, "f", cfg.CachePath, "offline cache file, empty to disable")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
