package handlers

import (
	"sync"

	"github.com/google/uuid"

	"mercator-hq/callisto/pkg/fm/ast"
)

// defaultMaxModels bounds the registry; the oldest entry is evicted when the
// ceiling is reached.
const defaultMaxModels = 100

// ModelRegistry holds uploaded models in memory, keyed by UUID.
//
// Models are immutable after parse, so concurrent readers need no
// coordination beyond the map itself. The registry replaces the single
// process-wide model of earlier designs: analyses against one model never
// observe another request's upload.
type ModelRegistry struct {
	mu     sync.RWMutex
	models map[string]*ast.Model
	order  []string // Insertion order for eviction
	max    int
}

// NewModelRegistry creates an empty registry.
func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{
		models: make(map[string]*ast.Model),
		max:    defaultMaxModels,
	}
}

// Put stores a model and returns its assigned ID, evicting the oldest entry
// if the registry is full.
func (r *ModelRegistry) Put(model *ast.Model) string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.order) >= r.max {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.models, oldest)
	}
	r.models[id] = model
	r.order = append(r.order, id)
	return id
}

// Get returns the model with the given ID, or nil if unknown or evicted.
func (r *ModelRegistry) Get(id string) *ast.Model {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.models[id]
}

// Len returns the number of stored models.
func (r *ModelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}
