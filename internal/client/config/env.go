package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is folded in first; a missing file
// is not an error.
//
// Recognized variables:
//
//	USERCONSOLE_SERVER_URL    base address of the directory service
//	USERCONSOLE_DB            path of the local SQLite file
//	USERCONSOLE_PAGE_SIZE     rows per page (integer)
//	USERCONSOLE_IDLE_TIMEOUT  inactivity window (time.ParseDuration syntax)
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("USERCONSOLE_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("USERCONSOLE_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("USERCONSOLE_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("USERCONSOLE_IDLE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.IdleTimeout = d
		}
	}
}
