// Package metrics provides Prometheus metrics for Callisto.
//
// The collector registers all analysis metrics against its own registry and
// exposes them through the standard promhttp handler.
//
// Metrics:
//   - callisto_models_parsed_total: model parses by outcome
//   - callisto_analysis_duration_seconds: enumeration duration histogram
//   - callisto_analysis_products: products found per enumeration
//   - callisto_validations_total: selection validations by outcome
//   - callisto_solver_solves_total: oracle solve calls by result
//
// # Basic Usage
//
//	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
//	collector.RecordParse(true)
//	http.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
package metrics
