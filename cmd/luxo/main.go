// Package main is the entry point for the Luxo lamp viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/luxo/internal/app"
	"github.com/Faultbox/luxo/internal/config"
	"github.com/Faultbox/luxo/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Luxo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg, logger.Log)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("frame loop error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
