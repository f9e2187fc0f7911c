package analysis

import (
	"context"

	"mercator-hq/callisto/pkg/fm/compile"
)

// EnumerationResult holds the outcome of one enumeration run.
type EnumerationResult struct {
	// Products are the subset-minimal valid products, each as sorted
	// feature names, in discovery order.
	Products []Product

	// Truncated is true when enumeration stopped at the product ceiling
	// rather than exhausting the solution space.
	Truncated bool

	// Compiled is the compilation this run was based on (clauses, rule log,
	// warnings for unsupported constraints).
	Compiled *compile.Result
}

// Enumerate discovers every subset-minimal valid product of the model.
//
// It loads a fresh compilation into a fresh oracle session and alternates
// solving with blocking: each satisfying assignment becomes a candidate and
// is excluded from further search by a clause negating all of its true
// literals. Progress is strict, so the loop always terminates; the configured
// ceiling and the context deadline bound it further.
func (a *Analyzer) Enumerate(ctx context.Context) (*EnumerationResult, error) {
	compiled := compile.Compile(a.model)
	oracle := a.newOracle()
	compiled.Load(oracle)

	result := &EnumerationResult{Compiled: compiled}
	var candidates []map[string]bool

	for {
		ok, err := oracle.Solve(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		assignment := oracle.Model()
		selected := make(map[string]bool)
		blocking := make([]int, 0, len(assignment))
		for _, lit := range assignment {
			if lit > 0 {
				selected[compiled.Vars.Name(lit)] = true
				blocking = append(blocking, -lit)
			}
		}

		if a.debugChecks && !a.mandatoryComplete(selected) {
			// The parent/child clauses already force mandatory children, so
			// reaching this means the encoder emitted a wrong clause set.
			a.logger.Error("encoder invariant violated: candidate misses a mandatory feature",
				"candidate", newProduct(selected),
			)
		}
		candidates = append(candidates, selected)

		// Exclude exactly this assignment from future solutions.
		oracle.AddClause(blocking...)

		if a.maxProducts > 0 && len(candidates) >= a.maxProducts {
			result.Truncated = true
			a.logger.Warn("enumeration truncated at product ceiling",
				"max_products", a.maxProducts,
			)
			break
		}
	}

	for _, set := range filterMinimal(candidates) {
		result.Products = append(result.Products, newProduct(set))
	}

	a.logger.Debug("enumeration complete",
		"products", len(result.Products),
		"candidates", len(candidates),
		"truncated", result.Truncated,
	)
	return result, nil
}

// mandatoryComplete reports whether every mandatory feature whose parent is
// in the selection is itself in the selection.
func (a *Analyzer) mandatoryComplete(selected map[string]bool) bool {
	for name, f := range a.model.Index {
		if f.Mandatory && selected[f.Parent] && !selected[name] {
			return false
		}
	}
	return true
}

// filterMinimal keeps the candidates for which no other candidate is a
// strict subset, comparing feature-name sets regardless of insertion order.
func filterMinimal(candidates []map[string]bool) []map[string]bool {
	var minimal []map[string]bool
	for i, set := range candidates {
		dominated := false
		for j, other := range candidates {
			if i == j {
				continue
			}
			if isStrictSubset(other, set) {
				dominated = true
				break
			}
		}
		if !dominated {
			minimal = append(minimal, set)
		}
	}
	return minimal
}

// isStrictSubset reports whether a ⊂ b.
func isStrictSubset(a, b map[string]bool) bool {
	if len(a) >= len(b) {
		return false
	}
	for name := range a {
		if !b[name] {
			return false
		}
	}
	return true
}
