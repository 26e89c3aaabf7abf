package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/spende/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-g string   gRPC health bind address
//	-D string   database driver: pgx or sqlite
//	-d string   database DSN
//	-s string   session token secret key
//	-t int      session validity, hours
//	-b int      bcrypt cost
//	-n int      node id for the ID generator
//	-p string   API mount prefix
//
// Only these flags are looked at, so -c and anything unknown pass through.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-D", "-d", "-s", "-t", "-b", "-n", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.DatabaseDriver, "D", config.DatabaseDriver, "database driver (pgx, sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token validity (in hours)")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.IntVar(&config.NodeID, "n", config.NodeID, "node id")
	fs.StringVar(&config.APIPrefix, "p", config.APIPrefix, "API mount prefix")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Sub-hour durations from JSON survive when -t is absent.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Hour
		}
	})
}
