package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/logifrete/protocolos/internal/buildinfo"
	"github.com/logifrete/protocolos/internal/client/cli"
	"github.com/logifrete/protocolos/internal/client/config"
	"github.com/logifrete/protocolos/internal/filex"
	"github.com/logifrete/protocolos/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	// relative database paths land in ./data next to the binary's cwd
	if !filepath.IsAbs(cfg.DatabasePath) {
		dir, err := filex.EnsureSubdDir("data")
		if err != nil {
			log.Fatalf("%v", err)
		}
		cfg.DatabasePath = filepath.Join(dir, cfg.DatabasePath)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
