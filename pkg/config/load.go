package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	// Decode over a fully-defaulted config so boolean flags keep their
	// defaults when absent but an explicit false in the file survives.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Variables follow the naming convention
// CALLISTO_SECTION_FIELD (e.g. CALLISTO_SERVER_LISTEN_ADDRESS) and always
// take precedence over file-based configuration.
//
// If the file does not exist, defaults plus overrides are used so the CLI
// works without a config file.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	var cfg *Config

	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		cfg = DefaultConfig()
	} else {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies CALLISTO_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("CALLISTO_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("CALLISTO_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("CALLISTO_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv("CALLISTO_ANALYSIS_MAX_PRODUCTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Analysis.MaxProducts = n
		}
	}
	if val := os.Getenv("CALLISTO_ANALYSIS_SOLVE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Analysis.SolveTimeout = d
		}
	}
	if val := os.Getenv("CALLISTO_ANALYSIS_DEBUG_CHECKS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Analysis.DebugChecks = b
		}
	}
	if val := os.Getenv("CALLISTO_STORE_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Store.Enabled = b
		}
	}
	if val := os.Getenv("CALLISTO_STORE_PATH"); val != "" {
		cfg.Store.Path = val
	}
	if val := os.Getenv("CALLISTO_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("CALLISTO_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("CALLISTO_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
}
