// Package ast defines the structural types used to describe null-safety
// relevant syntax of a single compilation unit.
//
// The node set is a closed tagged-variant hierarchy: every construct the
// guard analysis reasons about — access paths with null-aware operators,
// forced unwraps, short-circuit boolean chains, ternaries, branch and loop
// statements, conditional collection elements — has exactly one node type,
// and analyzers switch over the set exhaustively. Adding a construct means
// adding a node here plus the matching arms in the consumers, nothing else.
//
// Trees are produced externally (a parser or a programmatic builder) and
// are read-only views for the analysis: no component mutates, caches or
// retains them between calls.
package ast
