package config

import (
	"encoding/json"
	"os"

	"github.com/nanosensei/backend/internal/flagx"
	"github.com/nanosensei/backend/internal/timex"
)

// JSONConfig is the DTO for the optional JSON configuration file. It uses
// timex.Duration so interval fields parse from both "10s" strings and
// integer nanoseconds; values are then copied into the runtime Config.
type JSONConfig struct {
	EndpointAddr    string         `json:"endpoint_addr"`
	DatabaseDSN     string         `json:"database_dsn"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
}

// parseJSON overlays config values from the file named by -c/-config, when
// given. An unreadable or invalid file panics: a config file that was asked
// for but cannot be used should not be silently skipped.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()

	// Nothing to load.
	if jsonConfigFile == "" {
		return
	}

	c := &JSONConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.ShutdownTimeout = c.ShutdownTimeout.Duration
}
