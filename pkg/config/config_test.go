package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.ListenAddress != "127.0.0.1:8080" {
		t.Errorf("ListenAddress = %q, want 127.0.0.1:8080", cfg.Server.ListenAddress)
	}
	if cfg.Analysis.MaxProducts != 1000 {
		t.Errorf("MaxProducts = %d, want 1000", cfg.Analysis.MaxProducts)
	}
	if cfg.Analysis.SolveTimeout != 30*time.Second {
		t.Errorf("SolveTimeout = %v, want 30s", cfg.Analysis.SolveTimeout)
	}
	if !cfg.Store.Enabled {
		t.Error("Store.Enabled = false, want true")
	}
	if cfg.Telemetry.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Telemetry.Logging.Level)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true")
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultConfig()) failed: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := `
server:
  listen_address: "0.0.0.0:9090"
analysis:
  max_products: 50
  solve_timeout: 5s
telemetry:
  logging:
    level: debug
    format: text
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("ListenAddress = %q, want 0.0.0.0:9090", cfg.Server.ListenAddress)
	}
	if cfg.Analysis.MaxProducts != 50 {
		t.Errorf("MaxProducts = %d, want 50", cfg.Analysis.MaxProducts)
	}
	if cfg.Analysis.SolveTimeout != 5*time.Second {
		t.Errorf("SolveTimeout = %v, want 5s", cfg.Analysis.SolveTimeout)
	}
	// Unspecified sections still receive defaults.
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("ReadTimeout = %v, want default 30s", cfg.Server.ReadTimeout)
	}
}

func TestLoadConfig_ExplicitFalseSurvives(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := `
server:
  cors:
    enabled: false
store:
  enabled: false
telemetry:
  metrics:
    enabled: false
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Server.CORS.Enabled {
		t.Error("CORS.Enabled = true, want explicit false preserved")
	}
	if cfg.Store.Enabled {
		t.Error("Store.Enabled = true, want explicit false preserved")
	}
	if cfg.Telemetry.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want explicit false preserved")
	}

	// Flags absent from the file still default on.
	defaulted, err := LoadConfig(writeConfig(t, "server:\n  listen_address: \"127.0.0.1:8081\"\n"))
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if !defaulted.Store.Enabled || !defaulted.Server.CORS.Enabled || !defaulted.Telemetry.Metrics.Enabled {
		t.Error("absent boolean flags did not default to true")
	}
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad listen address", "server:\n  listen_address: \"no-port\"\n"},
		{"bad log level", "telemetry:\n  logging:\n    level: loud\n"},
		{"bad log format", "telemetry:\n  logging:\n    format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig() succeeded, want validation error")
			}
		})
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	t.Setenv("CALLISTO_SERVER_LISTEN_ADDRESS", "127.0.0.1:7070")
	t.Setenv("CALLISTO_ANALYSIS_MAX_PRODUCTS", "7")

	// Missing file falls back to defaults plus overrides.
	cfg, err := LoadConfigWithEnvOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() failed: %v", err)
	}

	if cfg.Server.ListenAddress != "127.0.0.1:7070" {
		t.Errorf("ListenAddress = %q, want env override", cfg.Server.ListenAddress)
	}
	if cfg.Analysis.MaxProducts != 7 {
		t.Errorf("MaxProducts = %d, want 7", cfg.Analysis.MaxProducts)
	}
}
