package config

import (
	"encoding/json"
	"os"

	"github.com/haeun-dev/maumdiary/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	LogLevel     string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. If no flag is given, nothing is loaded. Read or
// unmarshal errors panic; config problems should stop the program before
// any state is touched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
