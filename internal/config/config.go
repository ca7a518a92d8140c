// Package config holds runtime settings for the maumdiary CLI.
//
// Sources are applied in order, later ones winning: defaults, JSON file
// (-c/-config), environment variables, command-line flags.
package config

type Config struct {
	// DatabasePath is the sqlite file holding all persisted state.
	DatabasePath string `env:"MAUMDIARY_DATABASE_PATH"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"MAUMDIARY_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "maumdiary.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON, environment, and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
