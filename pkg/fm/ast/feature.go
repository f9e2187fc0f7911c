package ast

// GroupType describes how a feature's immediate children relate to each other.
type GroupType string

const (
	// GroupNone means children are plain AND-composed; each child is
	// independently mandatory or optional per its own flag.
	GroupNone GroupType = ""

	// GroupXOR means exactly one child must be selected while the parent is
	// selected. Mutual exclusion between children holds unconditionally.
	GroupXOR GroupType = "XOR"

	// GroupOR means at least one child must be selected while the parent is
	// selected.
	GroupOR GroupType = "OR"
)

// Feature is a single node in the feature tree.
//
// The Mandatory flag is meaningful only relative to the parent: a mandatory
// feature is selected exactly when its parent is. It carries no meaning on
// the root, which is always selected.
type Feature struct {
	Name      string     // Globally unique feature name
	Mandatory bool       // Selected iff parent is selected (non-root only)
	Parent    string     // Parent feature name, empty for the root
	Children  []*Feature // Owned child features, in document order
	Group     GroupType  // How the immediate children relate
	Line      int        // Source line in the model document, 0 if unknown
}

// IsRoot returns true if the feature has no parent.
func (f *Feature) IsRoot() bool {
	return f.Parent == ""
}

// HasGroup returns true if the feature's children form an XOR or OR group.
func (f *Feature) HasGroup() bool {
	return f.Group == GroupXOR || f.Group == GroupOR
}

// ChildNames returns the names of the immediate children, in order.
func (f *Feature) ChildNames() []string {
	names := make([]string, len(f.Children))
	for i, c := range f.Children {
		names[i] = c.Name
	}
	return names
}

// Walk visits the feature and all of its descendants in pre-order.
// Traversal stops early if fn returns false.
func (f *Feature) Walk(fn func(*Feature) bool) bool {
	if !fn(f) {
		return false
	}
	for _, c := range f.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
