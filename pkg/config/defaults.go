package config

import "time"

// ApplyDefaults fills in default values for any zero-valued configuration
// fields. It is called by LoadConfig before validation.
//
// Boolean flags are not defaulted here: on a bool, zero and an explicit
// false in the file are indistinguishable. LoadConfig instead decodes the
// file over a DefaultConfig, so the flags default on while an explicit
// false survives.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = "127.0.0.1:8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 30 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60 * time.Second
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 120 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15 * time.Second
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = 10 * 1024 * 1024
	}
	if cfg.Server.MaxConcurrentAnalyses == 0 {
		cfg.Server.MaxConcurrentAnalyses = 4
	}
	if cfg.Server.CORS.AllowedOrigins == nil {
		cfg.Server.CORS.AllowedOrigins = []string{"*"}
	}

	// Analysis defaults
	if cfg.Analysis.MaxProducts == 0 {
		cfg.Analysis.MaxProducts = 1000
	}
	if cfg.Analysis.SolveTimeout == 0 {
		cfg.Analysis.SolveTimeout = 30 * time.Second
	}

	// Store defaults
	if cfg.Store.Path == "" {
		cfg.Store.Path = "data/callisto.db"
	}
	if cfg.Store.BusyTimeout == 0 {
		cfg.Store.BusyTimeout = 5 * time.Second
	}
	if cfg.Store.RetentionDays == 0 {
		cfg.Store.RetentionDays = 30
	}
	if cfg.Store.PruneSchedule == "" {
		cfg.Store.PruneSchedule = "0 3 * * *"
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = "info"
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = "json"
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = "callisto"
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = "/metrics"
	}
}

// DefaultConfig returns a configuration populated entirely with defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.CORS.Enabled = true
	cfg.Store.Enabled = true
	cfg.Telemetry.Metrics.Enabled = true
	ApplyDefaults(cfg)
	return cfg
}
