package config

import (
	"encoding/json"
	"os"

	"github.com/pushkard/userconsole/internal/flagx"
	"github.com/pushkard/userconsole/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// rely on timex.Duration so the file can spell them either as strings like
// "29m45s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL string         `json:"server_base_url"`
	DatabaseDSN   string         `json:"database_dsn"`
	PageSize      int            `json:"page_size"`
	IdleTimeout   timex.Duration `json:"idle_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. Without the flag nothing is loaded. Only fields
// present in the file override the running config. Read or unmarshal
// failures panic; this runs once at startup and a broken config file should
// stop the program.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.IdleTimeout.Duration > 0 {
		cfg.IdleTimeout = jc.IdleTimeout.Duration
	}
}
