// Package unwrapcheck reports forced unwraps — postfix `!` null assertions —
// that are not provably protected by an enclosing guard.
//
// The input is an abstract expression/statement tree (see the ast package)
// produced by an external parser or built programmatically. Scan enumerates
// every forced-unwrap site in document order and classifies each one
// against a fixed catalog of guard shapes; unguarded sites come back as
// diagnostics with source ranges. DiagnoseAt re-checks the single site
// under a position, the way an editor integration queries at a cursor.
//
// The analysis is deliberately conservative: whatever falls outside the
// shape catalog is reported, never silently trusted. The guard vocabulary
// (presence predicates and paired indicators) is injected configuration;
// see the predicate package.
package unwrapcheck
