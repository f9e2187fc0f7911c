package ast

import "fmt"

// ConstraintKind tags the recognized form of a cross-tree constraint.
type ConstraintKind string

const (
	// ConstraintRequires means selecting Source requires selecting Target.
	ConstraintRequires ConstraintKind = "requires"

	// ConstraintExcludes means Source and Target cannot be selected together.
	ConstraintExcludes ConstraintKind = "excludes"

	// ConstraintUnsupported marks a statement no recognized pattern matched.
	// Unsupported constraints produce no clauses; they are retained for
	// display and reported as warnings so they are never silently dropped.
	ConstraintUnsupported ConstraintKind = "unsupported"
)

// Constraint is a cross-tree constraint between two features that are not in
// a direct ancestor/descendant relation.
type Constraint struct {
	Statement string         // Original free-text statement from the document
	Kind      ConstraintKind // Recognized form
	Source    string         // Dependent feature (empty when unsupported)
	Target    string         // Required or excluded feature (empty when unsupported)
	Line      int            // Source line in the model document, 0 if unknown
}

// IsSupported returns true if the constraint was recognized and can be compiled.
func (c *Constraint) IsSupported() bool {
	return c.Kind == ConstraintRequires || c.Kind == ConstraintExcludes
}

// String returns the constraint in its symbolic form, falling back to the
// original statement when unsupported.
func (c *Constraint) String() string {
	switch c.Kind {
	case ConstraintRequires:
		return fmt.Sprintf("%s → %s", c.Source, c.Target)
	case ConstraintExcludes:
		return fmt.Sprintf("¬(%s ∧ %s)", c.Source, c.Target)
	default:
		return c.Statement
	}
}
