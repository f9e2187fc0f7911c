// Package config provides configuration loading and validation for Callisto.
//
// Configuration is read from a YAML file, merged with defaults, optionally
// overridden by CALLISTO_* environment variables, and validated before use.
//
// # Basic Usage
//
//	cfg, err := config.LoadConfig("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// With environment overrides:
//
//	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// The CLI entry points use the process-wide singleton:
//
//	if err := config.Initialize(cfgFile); err != nil {
//	    return err
//	}
//	cfg := config.GetConfig()
//
// Library code should take explicit *Config (or section) values instead of
// reaching for the singleton.
package config
