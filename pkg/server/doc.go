// Package server provides the Callisto HTTP API server.
//
// The server exposes model upload and analysis, selection validation,
// health/readiness probes, and the Prometheus metrics endpoint. Uploaded
// models are parsed once into immutable trees and held in an in-memory
// registry keyed by UUID; every analysis or validation request opens its own
// solver session, so no mutable state is shared between requests.
//
// # Endpoints
//
//	POST /api/v1/models                      upload a model, returns analysis
//	GET  /api/v1/models/{id}                 model tree, rules, and products
//	POST /api/v1/models/{id}/validate        validate a feature selection
//	GET  /healthz                            liveness probe
//	GET  /readyz                             readiness probe
//	GET  /metrics                            Prometheus metrics (configurable)
package server
