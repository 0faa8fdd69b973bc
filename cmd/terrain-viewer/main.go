// Package main is the entry point for the terrain viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nhemsley/terrain-renderer/internal/config"
	"github.com/nhemsley/terrain-renderer/internal/logger"
	"github.com/nhemsley/terrain-renderer/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.DefaultOptions(cfg.Logging.Level, cfg.Logging.LogFile)); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Terrain Renderer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := viewer.Run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
