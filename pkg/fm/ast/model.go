package ast

// Model is the root AST node for a parsed feature model.
// It owns the feature tree, a flat name index for O(1) lookup, and the
// cross-tree constraint list. Models are immutable after construction.
type Model struct {
	Name        string              // Model name (from the document root, may be empty)
	Root        *Feature            // Root feature (always selected)
	Index       map[string]*Feature // name → feature, built once after parse
	Constraints []*Constraint       // Cross-tree constraints in document order

	SourceFile string // Path of the model document
}

// Feature returns the feature with the given name, or nil if not found.
func (m *Model) Feature(name string) *Feature {
	return m.Index[name]
}

// HasFeature returns true if the model contains a feature with the given name.
func (m *Model) HasFeature(name string) bool {
	_, ok := m.Index[name]
	return ok
}

// FeatureCount returns the total number of features in the model.
func (m *Model) FeatureCount() int {
	return len(m.Index)
}

// FeatureNames returns all feature names in pre-order.
func (m *Model) FeatureNames() []string {
	names := make([]string, 0, len(m.Index))
	m.Root.Walk(func(f *Feature) bool {
		names = append(names, f.Name)
		return true
	})
	return names
}

// SupportedConstraints returns the constraints that were recognized and
// participate in compilation.
func (m *Model) SupportedConstraints() []*Constraint {
	var out []*Constraint
	for _, c := range m.Constraints {
		if c.IsSupported() {
			out = append(out, c)
		}
	}
	return out
}

// UnsupportedConstraints returns the constraints no recognized pattern matched.
func (m *Model) UnsupportedConstraints() []*Constraint {
	var out []*Constraint
	for _, c := range m.Constraints {
		if !c.IsSupported() {
			out = append(out, c)
		}
	}
	return out
}
