// Package sat provides the SAT oracle abstraction used by the CNF compiler,
// enumerator, and validator, plus the variable registry that maps feature
// names to solver variables.
//
// The oracle is stateful and incremental: clauses accumulate across AddClause
// calls within one session, and Model is defined only after a satisfiable
// Solve. Every analysis creates its own oracle and its own VarMap; neither is
// safe to share across concurrent sessions, because variable identifiers are
// registry-local.
//
// # Basic Usage
//
//	vars := sat.NewVarMap()
//	oracle := sat.NewGini()
//	oracle.AddClause(vars.Lookup("Root"))
//	oracle.AddClause(-vars.Lookup("A"), vars.Lookup("Root"))
//
//	ok, err := oracle.Solve(ctx)
//	if err != nil {
//	    return err
//	}
//	if ok {
//	    for _, lit := range oracle.Model() {
//	        if lit > 0 {
//	            fmt.Println("selected:", vars.Name(lit))
//	        }
//	    }
//	}
//
// The concrete implementation wraps the gini solver
// (github.com/irifrance/gini) with DIMACS-style signed integer literals:
// positive means the feature is selected, negative means excluded.
package sat
