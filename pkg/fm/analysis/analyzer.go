package analysis

import (
	"log/slog"
	"sort"

	"mercator-hq/callisto/pkg/fm/ast"
	"mercator-hq/callisto/pkg/sat"
)

// DefaultMaxProducts bounds enumeration when no explicit ceiling is configured.
const DefaultMaxProducts = 1000

// Options configures an Analyzer.
type Options struct {
	// MaxProducts is the enumeration ceiling. Enumeration stops and reports
	// truncation once this many products have been found. Zero selects
	// DefaultMaxProducts; a negative value disables the ceiling.
	MaxProducts int

	// DebugChecks re-verifies mandatory-completeness of every candidate the
	// oracle returns. The CNF encoding already enforces this, so a failed
	// check indicates an encoder bug; it is logged loudly but does not alter
	// results.
	DebugChecks bool

	// NewOracle creates the solver session for each run.
	// Defaults to sat.NewGini.
	NewOracle func() sat.Oracle

	// Logger receives diagnostic logs. Defaults to slog.Default.
	Logger *slog.Logger
}

// Analyzer runs product enumeration and selection validation against a
// single immutable model. An Analyzer is safe for concurrent use; every call
// compiles the model afresh and opens its own oracle session.
type Analyzer struct {
	model       *ast.Model
	maxProducts int
	debugChecks bool
	newOracle   func() sat.Oracle
	logger      *slog.Logger
}

// New creates an analyzer for the given model.
func New(model *ast.Model, opts Options) *Analyzer {
	maxProducts := opts.MaxProducts
	if maxProducts == 0 {
		maxProducts = DefaultMaxProducts
	}

	newOracle := opts.NewOracle
	if newOracle == nil {
		newOracle = func() sat.Oracle { return sat.NewGini() }
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{
		model:       model,
		maxProducts: maxProducts,
		debugChecks: opts.DebugChecks,
		newOracle:   newOracle,
		logger:      logger.With("component", "fm.analysis"),
	}
}

// Model returns the model this analyzer operates on.
func (a *Analyzer) Model() *ast.Model {
	return a.model
}

// Product is a valid feature selection, as sorted feature names.
type Product []string

// newProduct converts a selection set into a sorted Product.
func newProduct(set map[string]bool) Product {
	p := make(Product, 0, len(set))
	for name := range set {
		p = append(p, name)
	}
	sort.Strings(p)
	return p
}

// Contains returns true if the product includes the named feature.
func (p Product) Contains(name string) bool {
	i := sort.SearchStrings(p, name)
	return i < len(p) && p[i] == name
}
