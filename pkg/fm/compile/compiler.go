package compile

import (
	"fmt"
	"strings"

	"mercator-hq/callisto/pkg/fm/ast"
	"mercator-hq/callisto/pkg/sat"
)

// Result holds the output of one compilation session: the clause set, the
// rule log emitted in lock-step with the structural clauses, the variable
// registry the clauses refer to, and warnings for constraints that produced
// no clauses.
//
// A Result's VarMap is session-local; never share it with another compilation.
type Result struct {
	Clauses  [][]int     // CNF clauses over Vars identifiers
	Rules    []string    // Human-readable rule per structural clause group
	Vars     *sat.VarMap // name ↔ variable registry for this session
	Warnings []string    // Unsupported constraints, one message each
}

// Compile translates the model into CNF. It is a pure function of the model;
// enumeration and validation each compile afresh rather than sharing state.
func Compile(model *ast.Model) *Result {
	c := &compiler{
		result: &Result{Vars: sat.NewVarMap()},
	}
	c.feature(model.Root)
	c.constraints(model.Constraints)
	return c.result
}

// Load adds every compiled clause to the oracle session.
func (r *Result) Load(o sat.Oracle) {
	for _, clause := range r.Clauses {
		o.AddClause(clause...)
	}
}

// ClauseCount returns the number of compiled clauses.
func (r *Result) ClauseCount() int {
	return len(r.Clauses)
}

type compiler struct {
	result *Result
}

func (c *compiler) emit(rule string, clause ...int) {
	c.result.Rules = append(c.result.Rules, rule)
	c.result.Clauses = append(c.result.Clauses, clause)
}

// feature compiles one feature and recurses over its children in pre-order.
func (c *compiler) feature(f *ast.Feature) {
	v := c.result.Vars.Lookup(f.Name)

	if f.IsRoot() {
		c.emit(f.Name, v)
	} else {
		p := c.result.Vars.Lookup(f.Parent)
		if f.Mandatory {
			c.emit(fmt.Sprintf("%s → %s", f.Parent, f.Name), -p, v)
			c.emit(fmt.Sprintf("%s → %s", f.Name, f.Parent), -v, p)
		} else {
			c.emit(fmt.Sprintf("%s → %s", f.Name, f.Parent), -v, p)
		}
	}

	if f.HasGroup() {
		c.group(f, v)
	}

	for _, child := range f.Children {
		c.feature(child)
	}
}

// group compiles the at-least-one clause shared by XOR and OR groups, plus
// pairwise mutual exclusion for XOR.
func (c *compiler) group(f *ast.Feature, v int) {
	names := f.ChildNames()
	atLeastOne := make([]int, 0, len(names)+1)
	atLeastOne = append(atLeastOne, -v)
	for _, name := range names {
		atLeastOne = append(atLeastOne, c.result.Vars.Lookup(name))
	}
	c.emit(fmt.Sprintf("%s → (%s)", f.Name, strings.Join(names, " ∨ ")), atLeastOne...)

	if f.Group != ast.GroupXOR {
		return
	}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			c.emit(
				fmt.Sprintf("¬(%s ∧ %s)", names[i], names[j]),
				-c.result.Vars.Var(names[i]),
				-c.result.Vars.Var(names[j]),
			)
		}
	}
}

// constraints compiles the recognized cross-tree constraints and records a
// warning for each unsupported one.
func (c *compiler) constraints(constraints []*ast.Constraint) {
	for _, ct := range constraints {
		switch ct.Kind {
		case ast.ConstraintRequires:
			c.emit(
				fmt.Sprintf("%s → %s", ct.Source, ct.Target),
				-c.result.Vars.Lookup(ct.Source),
				c.result.Vars.Lookup(ct.Target),
			)
		case ast.ConstraintExcludes:
			c.emit(
				fmt.Sprintf("¬(%s ∧ %s)", ct.Source, ct.Target),
				-c.result.Vars.Lookup(ct.Source),
				-c.result.Vars.Lookup(ct.Target),
			)
		default:
			c.result.Warnings = append(c.result.Warnings,
				fmt.Sprintf("unsupported constraint ignored: %q", ct.Statement))
		}
	}
}
