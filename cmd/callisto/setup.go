package main

import (
	"fmt"
	"log/slog"
	"os"

	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/telemetry/logging"
)

// loadConfig initializes the global configuration from the --config flag.
// A missing file is not an error; defaults with environment overrides apply.
func loadConfig() (*config.Config, error) {
	if err := config.Initialize(cfgFile); err != nil {
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	return config.GetConfig(), nil
}

// setupLogger builds the process logger from config and the --verbose flag.
// Logs go to stderr so stdout stays clean for command results.
func setupLogger(cfg *config.Config) (*slog.Logger, error) {
	logCfg := cfg.Telemetry.Logging
	if verbose {
		logCfg.Level = "debug"
	}

	logger, err := logging.New(logCfg, os.Stderr)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}
