// Package treetext parses a compact Dart-flavored notation into the ast
// node set, with genuine source ranges on every node.
//
// It exists for fixtures and tests: guard-analysis cases read far better as
//
//	if (x != null) { use(x!); }
//
// than as pages of struct literals, and positional facilities need nodes
// with real extents. This is support input tooling only — no types, no name
// resolution, no error recovery — and it is not part of the public API.
//
// Notation summary: postfix `!`, `?.`, `?[`, `??=`, `&&`/`||`, comparisons,
// ternaries, assignment, calls, list literals with `if` elements, lambdas
// (`(x) => e` or `(x) { … }`), and the statement set: blocks, if/else,
// while, do/while, for(;;), return, throw, expression statements. Line
// comments start with //.
package treetext
