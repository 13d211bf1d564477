// Package config loads runtime settings for the console. Sources are
// layered: defaults, then environment (.env aware), then a JSON file, then
// command-line flags; later sources win.
package config

import "time"

// Config holds runtime settings for the console.
//
// Fields:
//   - ServerBaseURL: address of the directory service, without /auth.
//   - DatabaseDSN: SQLite file holding the persisted session token.
//   - PageSize: rows requested per directory page.
//   - IdleTimeout: inactivity window before the session is torn down.
type Config struct {
	ServerBaseURL string
	DatabaseDSN   string
	PageSize      int
	IdleTimeout   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.DatabaseDSN = "userconsole.db"
	c.PageSize = 10
	c.IdleTimeout = 29*time.Minute + 45*time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given via -c/-config) and
// command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
