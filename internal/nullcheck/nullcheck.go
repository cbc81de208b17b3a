// Package nullcheck recognizes comparisons that pin down the nullability of
// an access path: direct `x == null` / `x != null` forms in either operand
// order, their negations, and null-propagating comparisons whose truth is
// only reachable through a live receiver.
package nullcheck

import (
	"fmt"

	"github.com/saropa/saropa-lints-sub000/ast"
	"github.com/saropa/saropa-lints-sub000/internal/canon"
)

// Sense tells which way a recognized null comparison points.
type Sense int

const (
	senseInvalid Sense = iota

	// SenseEqualsNull marks `x == null` style checks.
	SenseEqualsNull

	// SenseNotEqualsNull marks `x != null` style checks.
	SenseNotEqualsNull
)

var senseValueMap = map[Sense]string{
	SenseEqualsNull:    "== null",
	SenseNotEqualsNull: "!= null",
}

func (s Sense) String() string {
	v, ok := senseValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid-sense(%d)", s)
	}

	return v
}

// Flip inverts the sense, for negated forms.
func (s Sense) Flip() Sense {
	switch s {
	case SenseEqualsNull:
		return SenseNotEqualsNull
	case SenseNotEqualsNull:
		return SenseEqualsNull
	default:
		return s
	}
}

// Checked recognizes a direct null comparison and returns the canonical key
// of the checked path and the comparison sense. `!(x == null)` is the same
// check as `x != null`.
func Checked(e ast.Expr) (key string, sense Sense, ok bool) {
	switch v := e.(type) {
	case *ast.Not:
		key, sense, ok = Checked(v.Operand)
		if !ok {
			return "", senseInvalid, false
		}

		return key, sense.Flip(), true

	case *ast.Compare:
		var checked ast.Expr
		switch {
		case isNullLiteral(v.Right):
			checked = v.Left
		case isNullLiteral(v.Left):
			checked = v.Right
		default:
			return "", senseInvalid, false
		}

		switch v.Op {
		case ast.CompareEQ:
			sense = SenseEqualsNull
		case ast.CompareNEQ:
			sense = SenseNotEqualsNull
		default:
			// Ordering against null is not a null check.
			return "", senseInvalid, false
		}

		key = canon.Key(checked)
		if key == "" {
			return "", senseInvalid, false
		}

		return key, sense, true
	}

	return "", senseInvalid, false
}

// Propagated recognizes null-propagating comparisons: when the left operand
// reaches through a null-aware operator, the comparison cannot be
// meaningfully true unless that receiver existed. Covered forms are
// `x?.p == <non-null literal>`, `x?.p != null`, and orderings of `x?.p`
// against a literal. The returned key names the receiver, not the compared
// path.
func Propagated(e ast.Expr) (key string, ok bool) {
	cmp, isCmp := e.(*ast.Compare)
	if !isCmp {
		return "", false
	}

	key, ok = canon.NullAwareTarget(cmp.Left)
	if !ok {
		return "", false
	}

	switch {
	case cmp.Op == ast.CompareEQ && isNonNullLiteral(cmp.Right):
		return key, true

	case cmp.Op == ast.CompareNEQ && isNullLiteral(cmp.Right):
		return key, true

	case cmp.Op.IsOrdering() && isLiteral(cmp.Right):
		return key, true

	default:
		return "", false
	}
}

func isNullLiteral(e ast.Expr) bool {
	lit, ok := e.(*ast.Basic)
	return ok && lit.IsNull()
}

func isNonNullLiteral(e ast.Expr) bool {
	lit, ok := e.(*ast.Basic)
	return ok && !lit.IsNull()
}

func isLiteral(e ast.Expr) bool {
	_, ok := e.(*ast.Basic)
	return ok
}
