// Package guard decides whether a forced unwrap is already protected by an
// enclosing syntactic guard.
//
// The classifier walks the unwrap's ancestors outward and matches each
// candidate against a fixed catalog of guard shapes: ternaries, if/else
// branch guards, early-exit clauses, short-circuit boolean chains, loop
// conditions, null-propagating comparisons, registered domain predicates,
// paired presence indicators, conditional collection elements, and
// null-coalescing assignments. Anything outside the catalog is
// conservatively unguarded — the analysis prefers a dismissible false
// positive over a missed null dereference.
//
// This is a hand-made, best-effort, flow-sensitive check over syntax, not
// a dataflow framework: one linear ancestor walk, with ternary arms and
// lambda bodies acting as hard decision boundaries.
package guard
