// Package canon normalizes access-path expressions into comparable keys.
//
// A key is invariant under null-handling decoration: `a?.b`, `a!.b` and
// `a.b` all map to "a.b". Two semantically identical paths always get equal
// keys, and distinct independent paths never collide — index positions keep
// the canonical form of their index expression for exactly that reason.
package canon

import (
	"github.com/saropa/saropa-lints-sub000/ast"
)

// Key returns the canonical key of an access-path expression, or "" when
// the expression is not a stable path (calls, arithmetic, bare literals):
// such values cannot be related across sites, so they are never guardable.
func Key(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.Ident:
		return v.Name

	case *ast.Member:
		t := Key(v.Target)
		if t == "" {
			return ""
		}

		return t + "." + v.Name

	case *ast.Index:
		t := Key(v.Target)
		if t == "" {
			return ""
		}
		i := indexKey(v.Index)
		if i == "" {
			return ""
		}

		return t + "[" + i + "]"

	case *ast.ForcedUnwrap:
		return Key(v.Operand)

	default:
		return ""
	}
}

// indexKey renders a subscript expression. Literals are allowed here even
// though they are not paths on their own: `a[0]` and `a["k"]` are stable
// positions as long as the subscript is.
func indexKey(e ast.Expr) string {
	if lit, ok := e.(*ast.Basic); ok {
		return lit.Value
	}

	return Key(e)
}

// NullAwareTarget returns the canonical key of the receiver the innermost
// null-handling operator of a chain depends on:
//
//	a.b?.c    -> "a.b"
//	a?.b.c    -> "a"
//	a!.b      -> "a"
//	a.b.c     -> no target
//
// A chain without `?.`, `?[` or `!` has no null-aware target: plain access
// says nothing about nullability on its own.
func NullAwareTarget(e ast.Expr) (string, bool) {
	switch v := e.(type) {
	case *ast.Member:
		if k, ok := NullAwareTarget(v.Target); ok {
			return k, true
		}
		if v.NullAware {
			return receiverKey(v.Target)
		}

	case *ast.Index:
		if k, ok := NullAwareTarget(v.Target); ok {
			return k, true
		}
		if v.NullAware {
			return receiverKey(v.Target)
		}

	case *ast.Call:
		if v.Recv == nil {
			return "", false
		}
		if k, ok := NullAwareTarget(v.Recv); ok {
			return k, true
		}
		if v.NullAware {
			return receiverKey(v.Recv)
		}

	case *ast.ForcedUnwrap:
		if k, ok := NullAwareTarget(v.Operand); ok {
			return k, true
		}

		return receiverKey(v.Operand)
	}

	return "", false
}

func receiverKey(e ast.Expr) (string, bool) {
	k := Key(e)
	if k == "" {
		return "", false
	}

	return k, true
}
