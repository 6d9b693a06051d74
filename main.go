package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/soocke/leetsnap-go/app"
	"github.com/soocke/leetsnap-go/config"
	"github.com/soocke/leetsnap-go/logging"
)

func main() {
	cfgPath := flag.String("config", "leetsnap.json", "path to the JSON config file")
	output := flag.String("output", "", "output directory (overrides config)")
	debugFlag := flag.Bool("debug", false, "debug logging and runtime stats")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if *output != "" {
		cfg.OutputDir = *output
	}
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := logging.NewLogger(level, cfg.LogFile)
	if err != nil {
		logger.Error("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	application := app.NewApp("Image Resizer to 1:1", 1280, 860, cfg, *cfgPath, logger)
	application.Start()
}
