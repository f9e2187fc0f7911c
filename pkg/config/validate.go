package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first problem found.
func Validate(cfg *Config) error {
	if err := validateServer(&cfg.Server); err != nil {
		return err
	}
	if err := validateAnalysis(&cfg.Analysis); err != nil {
		return err
	}
	if err := validateStore(&cfg.Store); err != nil {
		return err
	}
	return validateTelemetry(&cfg.Telemetry)
}

func validateServer(cfg *ServerConfig) error {
	if _, _, err := net.SplitHostPort(cfg.ListenAddress); err != nil {
		return fmt.Errorf("server.listen_address %q is not host:port: %w", cfg.ListenAddress, err)
	}
	if cfg.ReadTimeout < 0 {
		return fmt.Errorf("server.read_timeout must not be negative")
	}
	if cfg.WriteTimeout < 0 {
		return fmt.Errorf("server.write_timeout must not be negative")
	}
	if cfg.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive")
	}
	return nil
}

func validateAnalysis(cfg *AnalysisConfig) error {
	if cfg.SolveTimeout <= 0 {
		return fmt.Errorf("analysis.solve_timeout must be positive")
	}
	return nil
}

func validateStore(cfg *StoreConfig) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Path == "" {
		return fmt.Errorf("store.path must be set when the store is enabled")
	}
	if cfg.RetentionDays < 0 {
		return fmt.Errorf("store.retention_days must not be negative")
	}
	return nil
}

func validateTelemetry(cfg *TelemetryConfig) error {
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("telemetry.logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("telemetry.logging.format %q is not one of json, text", cfg.Logging.Format)
	}
	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("telemetry.metrics.path %q must start with /", cfg.Metrics.Path)
	}
	return nil
}
