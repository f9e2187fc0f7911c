package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mercator-hq/callisto/pkg/fm/analysis"
	"mercator-hq/callisto/pkg/store"
)

// Validate handles POST /api/v1/models/{id}/validate: decides whether a
// candidate feature selection is consistent with the stored model.
func (h *ModelHandler) Validate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	model := h.registry.Get(id)
	if model == nil {
		respondError(w, http.StatusNotFound, "model not found")
		return
	}

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
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
	result, err := analyzer.Validate(ctx, req.SelectedFeatures)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("validation failed: %v", err))
		return
	}
	h.metrics.RecordValidation(result.Valid)

	h.recordHistory(r.Context(), &store.Record{
		Kind:      store.KindValidation,
		ModelName: model.Name,
		Source:    model.SourceFile,
		Features:  model.FeatureCount(),
		Valid:     result.Valid,
		Duration:  time.Since(start),
	})

	messages := result.Messages
	if messages == nil {
		messages = []string{}
	}
	respondJSON(w, http.StatusOK, ValidateResponse{
		IsValid:  result.Valid,
		Messages: messages,
	})
}
