package config

import (
	"flag"
	"os"

	"github.com/haeun-dev/maumdiary/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the sqlite database file
//	-l string   log level (debug, info, warn, error)
//
// Only the flags handled here are parsed; the rest of os.Args is filtered
// out with flagx.FilterArgs so other components can define their own.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
