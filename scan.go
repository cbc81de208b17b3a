package unwrapcheck

import (
	"github.com/saropa/saropa-lints-sub000/ast"
	"github.com/saropa/saropa-lints-sub000/internal/canon"
	"github.com/saropa/saropa-lints-sub000/internal/guard"
	"github.com/saropa/saropa-lints-sub000/predicate"
)

// Scan classifies every forced unwrap in the unit and returns one
// diagnostic per unguarded site, in document order. Argument lists,
// collection literals and lambda bodies are all visited; no node twice.
//
// A nil registry means the built-in vocabulary. Scan holds no state across
// calls and never mutates the tree, so distinct units — or repeated scans
// of the same unit — may run concurrently and always produce the same set.
func Scan(unit *ast.Unit, reg *predicate.Registry) []Diagnostic {
	if reg == nil {
		reg = predicate.Default()
	}

	var diags []Diagnostic
	stack := make([]ast.Node, 0, 32)

	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if u, ok := n.(*ast.ForcedUnwrap); ok {
			if v := guard.Classify(stack, u, reg); !v.Guarded {
				diags = append(diags, newDiagnostic(u))
			}
		}

		stack = append(stack, n)
		for _, c := range ast.Children(n) {
			walk(c)
		}
		stack = stack[:len(stack)-1]
	}

	walk(unit)

	return diags
}

func unwrapKey(u *ast.ForcedUnwrap) string {
	return canon.Key(u.Operand)
}
