package guard

import (
	"github.com/saropa/saropa-lints-sub000/ast"
	"github.com/saropa/saropa-lints-sub000/internal/canon"
	"github.com/saropa/saropa-lints-sub000/predicate"
)

// Verdict is the classification result for one forced unwrap. Shape names
// the matched pattern when Guarded is set.
type Verdict struct {
	Guarded bool
	Shape   Shape
}

// Classify decides whether the forced unwrap u is protected by an enclosing
// guard. ancestors is u's ancestor chain, outermost first, as maintained by
// the scanner's walk; u itself is not part of it.
//
// The walk runs innermost to outermost. Ternary arms and lambda bodies are
// decision boundaries: nothing further out can prove safety for a use
// inside them. Every other unmatched ancestor is skipped, guards may nest.
// The classifier never errors; unmodeled node kinds simply do not match.
func Classify(ancestors []ast.Node, u *ast.ForcedUnwrap, reg *predicate.Registry) Verdict {
	key := canon.Key(u.Operand)
	if key == "" {
		// Not a stable access path, nothing can vouch for it.
		return Verdict{}
	}

	p := prover{reg: reg}
	child := ast.Node(u)

	// Coalescing assignments only count in the unwrap's own statement list.
	innerBlockSeen := false

	for i := len(ancestors) - 1; i >= 0; i-- {
		switch n := ancestors[i].(type) {
		case *ast.Cond:
			switch child {
			case ast.Node(n.Then):
				if r := p.whenTrue(n.Cond, key); r != reasonNone {
					return Verdict{Guarded: true, Shape: ShapeTernary}
				}

				return Verdict{}

			case ast.Node(n.Else):
				if r := p.whenFalse(n.Cond, key); r != reasonNone {
					return Verdict{Guarded: true, Shape: ShapeTernary}
				}

				return Verdict{}
			}
			// A use inside the condition itself is not bounded by the arms.

		case *ast.Logical:
			// Short-circuit order matters: only the right operand sees the
			// left one already evaluated.
			if ast.Node(n.Right) != child {
				break
			}

			switch n.Op {
			case ast.LogicalAnd:
				if r := p.whenTrue(n.Left, key); r != reasonNone {
					return Verdict{Guarded: true, Shape: ShapeAndChain}
				}

			case ast.LogicalOr:
				if r := p.whenFalse(n.Left, key); r != reasonNone {
					return Verdict{Guarded: true, Shape: ShapeOrChain}
				}
			}

		case *ast.If:
			if ast.Node(n.Then) == child {
				if r := p.whenTrue(n.Cond, key); r != reasonNone {
					return Verdict{Guarded: true, Shape: condShape(n.Cond, r)}
				}
			}
			if n.Else != nil && ast.Node(n.Else) == child {
				if r := p.whenFalse(n.Cond, key); r != reasonNone {
					return Verdict{Guarded: true, Shape: condShape(n.Cond, r)}
				}
			}

		case *ast.While:
			if ast.Node(n.Body) == child {
				if r := p.whenTrue(n.Cond, key); r != reasonNone {
					return Verdict{Guarded: true, Shape: ShapeLoopCondition}
				}
			}

		case *ast.DoWhile:
			// Body-first loop: the body runs before the condition is ever
			// evaluated, the trailing check guards nothing inside it.

		case *ast.For:
			if n.Cond != nil && ast.Node(n.Body) == child {
				if r := p.whenTrue(n.Cond, key); r != reasonNone {
					return Verdict{Guarded: true, Shape: ShapeLoopCondition}
				}
			}

		case *ast.IfElement:
			if ast.Node(n.Then) == child {
				if r := p.whenTrue(n.Cond, key); r != reasonNone {
					return Verdict{Guarded: true, Shape: ShapeCollectionIf}
				}
			}
			if n.Else != nil && ast.Node(n.Else) == child {
				if r := p.whenFalse(n.Cond, key); r != reasonNone {
					return Verdict{Guarded: true, Shape: ShapeCollectionIf}
				}
			}

		case *ast.Block:
			if v, ok := p.scanStmts(n.Stmts, child, key, innerBlockSeen); ok {
				return v
			}
			innerBlockSeen = true

		case *ast.Unit:
			if v, ok := p.scanStmts(n.Stmts, child, key, innerBlockSeen); ok {
				return v
			}
			innerBlockSeen = true

		case *ast.Lambda:
			// Closure boundary: the lambda may run long after outer guards
			// were evaluated, captured state can change in between.
			return Verdict{}
		}

		child = ancestors[i]
	}

	return Verdict{}
}

// scanStmts looks for guards established by statements textually preceding
// the one containing the unwrap: early-exit clauses and, in the innermost
// statement list only, null-coalescing assignments. Blocks and the unit's
// top level scan the same way.
func (p prover) scanStmts(stmts []ast.Stmt, child ast.Node, key string, nested bool) (Verdict, bool) {
	idx := -1
	for i, s := range stmts {
		if ast.Node(s) == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Verdict{}, false
	}

	for _, s := range stmts[:idx] {
		switch v := s.(type) {
		case *ast.If:
			if !isEarlyExit(v.Then) {
				continue
			}
			if r := p.whenFalse(v.Cond, key); r != reasonNone {
				return Verdict{Guarded: true, Shape: condShape(v.Cond, r)}, true
			}

		case *ast.ExprStmt:
			if nested {
				continue
			}

			as, ok := v.X.(*ast.Assign)
			if !ok || as.Op != ast.AssignCoalesce {
				continue
			}
			if canon.Key(as.Target) != key {
				continue
			}
			if lit, isLit := as.Value.(*ast.Basic); isLit && lit.IsNull() {
				// `x ??= null` establishes nothing.
				continue
			}

			return Verdict{Guarded: true, Shape: ShapeCoalesce}, true
		}
	}

	return Verdict{}, false
}

// condShape picks the reported shape for an if-style guard: boolean chains
// keep their chain identity, otherwise the matched leaf fact decides.
func condShape(cond ast.Expr, r reason) Shape {
	if lg, ok := cond.(*ast.Logical); ok {
		if lg.Op == ast.LogicalAnd {
			return ShapeAndChain
		}

		return ShapeOrChain
	}

	switch r {
	case reasonPropagated:
		return ShapePropagatedCompare
	case reasonPredicate:
		return ShapePredicate
	case reasonIndicator:
		return ShapePairedIndicator
	default:
		return ShapeGuardClause
	}
}
