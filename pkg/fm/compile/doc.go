// Package compile translates a feature tree and its cross-tree constraints
// into a propositional clause set in conjunctive normal form.
//
// Compilation is a deterministic pure function of the model: compiling the
// same model twice yields byte-identical clause sets and rule logs. Each
// structural clause is emitted in lock-step with a human-readable rule string
// for traceability.
//
// # Encoding
//
// For the root r: unit clause [+r] (the root is always selected).
//
// For a mandatory feature f with parent p: [-p,+f] and [-f,+p] (f iff p).
// For an optional feature: [-f,+p] only (f implies p).
//
// For an XOR group g with children c1..ck: [-g,+c1,...,+ck] plus a mutual
// exclusion clause [-ci,-cj] per unordered child pair. Exactly-one holds only
// while g is selected: the at-least-one clause is conditioned on g, while the
// exclusion clauses apply unconditionally. The parent-implication clauses from
// the tree edges force every child false when g is false.
//
// For an OR group: the at-least-one clause only.
//
// For cross-tree constraints: Requires(A,B) compiles to [-A,+B] and
// Excludes(A,B) to [-A,-B]. Unsupported constraints compile to nothing and
// are listed in the result's warnings.
package compile
