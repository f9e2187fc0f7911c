// Package handlers implements the Callisto HTTP API handlers.
//
// Handlers translate between HTTP and the analysis library: multipart model
// uploads become parsed models in the registry, and analysis results are
// serialized as JSON. All solver state is request-scoped; handlers share
// only the immutable model registry and the metrics collector.
package handlers
