package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/fm/analysis"
	"mercator-hq/callisto/pkg/fm/parser"
	"mercator-hq/callisto/pkg/store"
	"mercator-hq/callisto/pkg/telemetry/metrics"
)

// ModelHandler serves model upload, retrieval, and analysis.
type ModelHandler struct {
	registry *ModelRegistry
	cfg      *config.Config
	metrics  *metrics.Collector
	store    *store.Store // May be nil when history is disabled
	logger   *slog.Logger
}

// NewModelHandler creates a model handler. The store may be nil.
func NewModelHandler(registry *ModelRegistry, cfg *config.Config, collector *metrics.Collector, st *store.Store, logger *slog.Logger) *ModelHandler {
	return &ModelHandler{
		registry: registry,
		cfg:      cfg,
		metrics:  collector,
		store:    st,
		logger:   logger.With("component", "handlers.models"),
	}
}

// Upload handles POST /api/v1/models: a multipart upload of a feature model
// document. The model is parsed, analyzed, stored in the registry, and the
// full analysis is returned.
func (h *ModelHandler) Upload(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.cfg.Server.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xml") {
		respondError(w, http.StatusBadRequest, "only .xml files are accepted")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("reading upload: %v", err))
		return
	}

	model, err := parser.New().
		WithMaxFileSize(maxBytes).
		ParseBytes(data, "upload://"+header.Filename)
	if err != nil {
		h.metrics.RecordParse(false)
		h.logger.Warn("model parse failed", "file", header.Filename, "error", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.metrics.RecordParse(true)

	ctx, cancel := h.analysisContext(r.Context())
	defer cancel()

	analyzer := analysis.New(model, analysis.Options{
		MaxProducts: h.cfg.Analysis.MaxProducts,
		DebugChecks: h.cfg.Analysis.DebugChecks,
		NewOracle:   h.metrics.NewOracle,
		Logger:      h.logger,
	})

	start := time.Now()
	enum, err := analyzer.Enumerate(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("analysis failed: %v", err))
		return
	}
	elapsed := time.Since(start)
	h.metrics.RecordAnalysis(elapsed, len(enum.Products))

	id := h.registry.Put(model)
	h.recordHistory(r.Context(), &store.Record{
		Kind:      store.KindEnumeration,
		ModelName: model.Name,
		Source:    header.Filename,
		Features:  model.FeatureCount(),
		Products:  len(enum.Products),
		Truncated: enum.Truncated,
		Duration:  elapsed,
	})

	h.logger.Info("model uploaded",
		"id", id,
		"file", header.Filename,
		"features", model.FeatureCount(),
		"products", len(enum.Products),
		"truncated", enum.Truncated,
		"duration", elapsed)

	products := make([][]string, 0, len(enum.Products))
	for _, p := range enum.Products {
		products = append(products, p)
	}

	respondJSON(w, http.StatusOK, ModelResponse{
		ID:          id,
		Name:        model.Name,
		Features:    featureNode(model.Root),
		LogicRules:  enum.Compiled.Rules,
		Products:    products,
		Constraints: constraintEntries(model),
		Warnings:    enum.Compiled.Warnings,
		Truncated:   enum.Truncated,
	})
}

// Get handles GET /api/v1/models/{id}: returns the stored model with a fresh
// analysis.
func (h *ModelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	model := h.registry.Get(id)
	if model == nil {
		respondError(w, http.StatusNotFound, "model not found")
		return
	}

	ctx, cancel := h.analysisContext(r.Context())
	defer cancel()

	analyzer := analysis.New(model, analysis.Options{
		MaxProducts: h.cfg.Analysis.MaxProducts,
		DebugChecks: h.cfg.Analysis.DebugChecks,
		NewOracle:   h.metrics.NewOracle,
		Logger:      h.logger,
	})

	start := time.Now()
	enum, err := analyzer.Enumerate(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("analysis failed: %v", err))
		return
	}
	h.metrics.RecordAnalysis(time.Since(start), len(enum.Products))

	products := make([][]string, 0, len(enum.Products))
	for _, p := range enum.Products {
		products = append(products, p)
	}

	respondJSON(w, http.StatusOK, ModelResponse{
		ID:          id,
		Name:        model.Name,
		Features:    featureNode(model.Root),
		LogicRules:  enum.Compiled.Rules,
		Products:    products,
		Constraints: constraintEntries(model),
		Warnings:    enum.Compiled.Warnings,
		Truncated:   enum.Truncated,
	})
}

// analysisContext derives a context bounded by the configured solve timeout.
func (h *ModelHandler) analysisContext(parent context.Context) (context.Context, context.CancelFunc) {
	if h.cfg.Analysis.SolveTimeout > 0 {
		return context.WithTimeout(parent, h.cfg.Analysis.SolveTimeout)
	}
	return context.WithCancel(parent)
}

// recordHistory persists an analysis record when the history store is
// enabled. Failures are logged and never surface to the client.
func (h *ModelHandler) recordHistory(ctx context.Context, rec *store.Record) {
	if h.store == nil {
		return
	}
	if err := h.store.Record(ctx, rec); err != nil {
		h.logger.Warn("failed to record analysis history", "error", err)
	}
}
