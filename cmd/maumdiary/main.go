package main

import (
	"context"
	"log"
	"os"

	"github.com/haeun-dev/maumdiary/internal/buildinfo"
	"github.com/haeun-dev/maumdiary/internal/cli"
	"github.com/haeun-dev/maumdiary/internal/config"
	"github.com/haeun-dev/maumdiary/internal/logging"
)

func main() {

	buildinfo.Print(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
