// Package main is the entry point for the interactive rendering playground.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gregoryw3/open-cv-imgui/internal/config"
	"github.com/gregoryw3/open-cv-imgui/internal/logger"
	"github.com/gregoryw3/open-cv-imgui/internal/playground"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== open-cv-imgui playground ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	p, err := playground.New(cfg)
	if err != nil {
		logger.Error("failed to create playground", zap.Error(err))
		os.Exit(1)
	}
	defer p.Close()

	if err := p.Run(); err != nil {
		logger.Error("playground error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("playground closed normally")
}
