package config

import "time"

// Config is the root configuration structure for Callisto.
// It contains all configuration sections for the HTTP server, the analysis
// engine, the analysis history store, and telemetry.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, and CORS settings.
	Server ServerConfig `yaml:"server"`

	// Analysis contains configuration for model parsing and product
	// enumeration, including the enumeration ceiling and solve timeout.
	Analysis AnalysisConfig `yaml:"analysis"`

	// Store contains configuration for the SQLite analysis history store,
	// including the retention schedule.
	Store StoreConfig `yaml:"store"`

	// Telemetry contains configuration for logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port". Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. Default: 60s (product enumeration can be slow)
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next
	// request when keep-alives are enabled. Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful
	// shutdown. Default: 15s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxUploadBytes limits the size of uploaded model documents.
	// Default: 10485760 (10MB)
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// MaxConcurrentAnalyses limits simultaneous solver runs. Requests over
	// the limit receive 503 rather than queueing behind slow enumerations.
	// Default: 4. A negative value disables the limit.
	MaxConcurrentAnalyses int `yaml:"max_concurrent_analyses"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains CORS (Cross-Origin Resource Sharing) configuration.
type CORSConfig struct {
	// Enabled controls whether CORS headers are emitted.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins is a list of allowed origins for CORS requests.
	// Use ["*"] to allow all origins. Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AnalysisConfig contains configuration for the analysis engine.
type AnalysisConfig struct {
	// MaxProducts is the product enumeration ceiling. Enumeration stops and
	// reports truncation once this many products have been found.
	// Negative disables the ceiling. Default: 1000
	MaxProducts int `yaml:"max_products"`

	// SolveTimeout bounds a single enumeration or validation run.
	// Default: 30s
	SolveTimeout time.Duration `yaml:"solve_timeout"`

	// DebugChecks enables the redundant mandatory-completeness assertion on
	// every enumerated candidate. Failures indicate an encoder bug and are
	// logged; results are unaffected. Default: false
	DebugChecks bool `yaml:"debug_checks"`
}

// StoreConfig contains configuration for the analysis history store.
type StoreConfig struct {
	// Enabled controls whether analysis runs are recorded.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file path.
	// Default: "data/callisto.db"
	Path string `yaml:"path"`

	// BusyTimeout is how long to wait for database locks before failing.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`

	// RetentionDays is how long history records are kept. Records older
	// than this are removed by the retention pruner. Zero keeps records
	// forever. Default: 30
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is a cron expression for scheduled pruning in serve
	// mode (e.g. "0 3 * * *" for daily at 3 AM). Empty disables scheduled
	// pruning. Default: "0 3 * * *"
	PruneSchedule string `yaml:"prune_schedule"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text".
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in logs.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether the /metrics endpoint is served.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix. Default: "callisto"
	Namespace string `yaml:"namespace"`

	// Path is the metrics endpoint path. Default: "/metrics"
	Path string `yaml:"path"`
}
