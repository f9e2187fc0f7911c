package sat

import (
	"context"
	"fmt"
)

// Oracle is an incremental SAT solver session.
//
// Clauses accumulate across AddClause calls. Solve reports satisfiability of
// the accumulated clause set; Model returns the most recent satisfying
// assignment and is defined only after Solve returned true.
//
// An Oracle is stateful and must not be used from multiple goroutines.
type Oracle interface {
	// AddClause adds a disjunction of DIMACS-style signed literals.
	// A positive literal means the variable is assigned true, a negative
	// literal false. Zero literals are not permitted.
	AddClause(lits ...int)

	// Solve reports whether the accumulated clause set is satisfiable.
	// It honors the context deadline; an expired or cancelled context
	// yields an error wrapping the context's error.
	Solve(ctx context.Context) (bool, error)

	// Model returns the most recent satisfying assignment as one signed
	// literal per variable, in variable order.
	Model() []int
}

// OracleError reports a failure of the solving engine itself, as opposed to
// an unsatisfiable result, which is a normal outcome.
type OracleError struct {
	Op  string // Operation that failed ("solve")
	Err error  // Underlying cause
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("sat oracle %s failed: %v", e.Op, e.Err)
}

func (e *OracleError) Unwrap() error {
	return e.Err
}
