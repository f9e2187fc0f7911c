// Package errors provides rich error types for feature model parsing and analysis.
//
// Errors carry a category, a source location, and an optional suggestion so
// that callers (CLI, HTTP handlers) can present actionable diagnostics instead
// of bare messages. Multiple errors may be accumulated in an ErrorList so a
// single parse reports every problem it finds rather than failing on the first.
//
// # Error Categories
//
// Syntax: malformed XML that cannot be decoded at all
//
// Structural: a decodable document that violates the feature model schema
// (missing name, duplicate name, unknown group type, missing root)
//
// Constraint: a cross-tree constraint statement that no recognized pattern matches
//
// Solver: the SAT oracle failed or returned an indeterminate result
//
// IO: file access problems
package errors
