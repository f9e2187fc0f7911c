// Package ast provides the typed feature tree for Callisto feature models.
//
// A feature model is a tree of named features. Each non-root feature is
// mandatory or optional relative to its parent, and a feature may group its
// immediate children with XOR (exactly one while the parent is selected) or
// OR (at least one while the parent is selected) semantics. Cross-tree
// constraints relate features outside the parent/child hierarchy.
//
// # Core Types
//
// Model: root of the tree plus a name index and the cross-tree constraint list
//
// Feature: a single tree node (name, mandatory flag, group type, children)
//
// Constraint: a tagged cross-tree constraint (Requires, Excludes, or Unsupported)
//
// # Immutability
//
// A Model is immutable after construction. The parser builds the tree and the
// name index once; the compiler, enumerator, and validator only read it. This
// lets a single Model be shared across concurrent analyses while all solver
// state stays per-request.
package ast
