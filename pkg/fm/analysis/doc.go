// Package analysis provides minimal-valid-product enumeration and selection
// validation over compiled feature models.
//
// # Enumeration
//
// The enumerator drives a fresh SAT oracle session with a solve/block loop:
// every satisfying assignment yields a candidate product (the features
// assigned true), and a blocking clause excluding exactly that assignment is
// added before solving again. The loop terminates when the clause set becomes
// unsatisfiable; the accepted candidates are then filtered to the
// subset-minimal ones.
//
// Full-model enumeration is worst-case exponential in the number of
// independent optional and OR choices, so the enumerator honors both a
// configurable product ceiling and the context deadline and reports
// truncation instead of looping unbounded.
//
// # Validation
//
// The validator fixes a candidate selection as unit clauses over a fresh
// compilation and asks the oracle for satisfiability. An invalid selection is
// a normal outcome, not an error: the validator walks the tree independently
// of the oracle to produce ordered, best-effort diagnostics ("Missing
// mandatory feature: X", group cardinality violations, cross-tree
// violations). The walk re-derives violations structurally, so it is not
// guaranteed to mirror every clause the oracle found inconsistent.
//
// # Session Scope
//
// Each Enumerate or Validate call compiles the model afresh and opens its own
// oracle session. The immutable model may be shared across goroutines; the
// per-call state is never shared.
package analysis
