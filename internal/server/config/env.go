package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/dmitrijs2005/spende/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays environment variables onto config. When dotenv names an
// existing file it is loaded first; variables already present in the
// process environment win over the file.
//
// Recognised variables:
//
//	HTTP_ADDR, GRPC_ADDR, DATABASE_DRIVER, DATABASE_DSN, SECRET_KEY,
//	NODE_ID, ALLOWED_ORIGINS (comma separated)
func parseEnv(config *Config, dotenv string) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	lookupString(&config.EndpointAddrHTTP, "HTTP_ADDR")
	lookupString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	lookupString(&config.DatabaseDriver, "DATABASE_DRIVER")
	lookupString(&config.DatabaseDSN, "DATABASE_DSN")
	lookupString(&config.SecretKey, "SECRET_KEY")

	if v, ok := os.LookupEnv("NODE_ID"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.NodeID = n
	}
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok && v != "" {
		config.AllowedOrigins = flagx.SplitList(v)
	}
}

func lookupString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
