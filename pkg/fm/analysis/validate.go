package analysis

import (
	"context"
	"fmt"

	"mercator-hq/callisto/pkg/fm/ast"
	"mercator-hq/callisto/pkg/fm/compile"
)

// ValidationResult reports whether a candidate selection is consistent with
// the model, with ordered diagnostics when it is not.
type ValidationResult struct {
	Valid    bool     // True when the selection satisfies every constraint
	Messages []string // Human-readable diagnostics, empty when valid
}

// Validate decides whether the given selection (features intended "on"; all
// others "off") is consistent with the model.
//
// The selection is fixed as unit clauses over a fresh compilation and the
// oracle decides satisfiability. On an unsatisfiable result the tree is
// walked independently of the oracle to produce targeted diagnostics; an
// invalid selection is a normal outcome, not an error.
func (a *Analyzer) Validate(ctx context.Context, selection []string) (*ValidationResult, error) {
	selected := make(map[string]bool, len(selection))
	result := &ValidationResult{}

	for _, name := range selection {
		if !a.model.HasFeature(name) {
			result.Messages = append(result.Messages,
				fmt.Sprintf("Unknown feature: %s", name))
			continue
		}
		selected[name] = true
	}

	compiled := compile.Compile(a.model)
	oracle := a.newOracle()
	compiled.Load(oracle)

	// Fix every feature's value: selected features true, all others false.
	a.model.Root.Walk(func(f *ast.Feature) bool {
		v := compiled.Vars.Var(f.Name)
		if selected[f.Name] {
			oracle.AddClause(v)
		} else {
			oracle.AddClause(-v)
		}
		return true
	})

	ok, err := oracle.Solve(ctx)
	if err != nil {
		return nil, err
	}

	if !ok {
		result.Messages = append(result.Messages, a.diagnose(selected)...)
	}
	result.Valid = ok && len(result.Messages) == 0

	a.logger.Debug("selection validated",
		"selected", len(selected),
		"valid", result.Valid,
		"diagnostics", len(result.Messages),
	)
	return result, nil
}

// diagnose walks the tree in pre-order and re-derives constraint violations
// structurally. The diagnostics are best-effort explanations; they do not
// necessarily cover every clause the oracle found inconsistent.
func (a *Analyzer) diagnose(selected map[string]bool) []string {
	var messages []string

	a.model.Root.Walk(func(f *ast.Feature) bool {
		if f.Mandatory && selected[f.Parent] && !selected[f.Name] {
			messages = append(messages,
				fmt.Sprintf("Missing mandatory feature: %s", f.Name))
		}

		if selected[f.Name] && f.HasGroup() {
			count := 0
			for _, c := range f.Children {
				if selected[c.Name] {
					count++
				}
			}
			switch {
			case f.Group == ast.GroupXOR && count != 1:
				messages = append(messages,
					fmt.Sprintf("XOR group %s must have exactly one selection", f.Name))
			case f.Group == ast.GroupOR && count == 0:
				messages = append(messages,
					fmt.Sprintf("OR group %s must have at least one selection", f.Name))
			}
		}
		return true
	})

	for _, c := range a.model.Constraints {
		switch {
		case c.Kind == ast.ConstraintRequires && selected[c.Source] && !selected[c.Target]:
			messages = append(messages,
				fmt.Sprintf("%s feature is required for %s", c.Target, c.Source))
		case c.Kind == ast.ConstraintExcludes && selected[c.Source] && selected[c.Target]:
			messages = append(messages,
				fmt.Sprintf("%s cannot be combined with %s", c.Source, c.Target))
		}
	}

	return messages
}
