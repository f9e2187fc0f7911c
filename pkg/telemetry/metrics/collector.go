package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/callisto/pkg/config"
)

// Collector registers and records all Prometheus metrics for Callisto.
type Collector struct {
	config   config.MetricsConfig
	registry *prometheus.Registry

	modelsParsed     *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	analysisProducts prometheus.Histogram
	validations      *prometheus.CounterVec
	solverSolves     *prometheus.CounterVec
}

// NewCollector creates a metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is used.
func NewCollector(cfg config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "callisto"
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		modelsParsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "models_parsed_total",
				Help:      "Total number of feature model parses",
			},
			[]string{"status"},
		),

		analysisDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "analysis_duration_seconds",
				Help:      "Duration of product enumeration runs in seconds",
				Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15, 30, 60},
			},
		),

		analysisProducts: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "analysis_products",
				Help:      "Minimal valid products found per enumeration",
				Buckets:   []float64{1, 2, 5, 10, 50, 100, 500, 1000},
			},
		),

		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "validations_total",
				Help:      "Total number of selection validations",
			},
			[]string{"result"},
		),

		solverSolves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "solver_solves_total",
				Help:      "Total number of SAT oracle solve calls",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(
		c.modelsParsed,
		c.analysisDuration,
		c.analysisProducts,
		c.validations,
		c.solverSolves,
	)

	return c
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordParse records the outcome of one model parse.
func (c *Collector) RecordParse(ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	c.modelsParsed.WithLabelValues(status).Inc()
}

// RecordAnalysis records a completed enumeration run.
func (c *Collector) RecordAnalysis(duration time.Duration, products int) {
	c.analysisDuration.Observe(duration.Seconds())
	c.analysisProducts.Observe(float64(products))
}

// RecordValidation records the outcome of one selection validation.
func (c *Collector) RecordValidation(valid bool) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	c.validations.WithLabelValues(result).Inc()
}

// RecordSolve records the result of one oracle solve call.
func (c *Collector) RecordSolve(result string) {
	c.solverSolves.WithLabelValues(result).Inc()
}
