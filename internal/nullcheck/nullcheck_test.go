package nullcheck

import (
	"testing"

	"github.com/saropa/saropa-lints-sub000/ast"
	"github.com/saropa/saropa-lints-sub000/internal/treetext"
)

func exprOf(t *testing.T, src string) ast.Expr {
	t.Helper()

	unit, err := treetext.Parse(src + ";")
	if err != nil {
		t.Fatalf("parse %q: %s", src, err)
	}

	return unit.Stmts[0].(*ast.ExprStmt).X
}

func TestChecked(t *testing.T) {
	tests := []struct {
		src   string
		key   string
		sense Sense
		ok    bool
	}{
		{src: "a != null", key: "a", sense: SenseNotEqualsNull, ok: true},
		{src: "a == null", key: "a", sense: SenseEqualsNull, ok: true},

		// Operand order does not matter.
		{src: "null != a", key: "a", sense: SenseNotEqualsNull, ok: true},
		{src: "null == a.b", key: "a.b", sense: SenseEqualsNull, ok: true},

		// Negation flips the sense.
		{src: "!(a == null)", key: "a", sense: SenseNotEqualsNull, ok: true},
		{src: "!(a != null)", key: "a", sense: SenseEqualsNull, ok: true},
		{src: "!(!(a != null))", key: "a", sense: SenseNotEqualsNull, ok: true},

		// Paths keep their canonical form.
		{src: "a?.b != null", key: "a.b", sense: SenseNotEqualsNull, ok: true},
		{src: `m["k"] == null`, key: `m["k"]`, sense: SenseEqualsNull, ok: true},

		// Not null checks at all.
		{src: "a == b", ok: false},
		{src: "a < null", ok: false},
		{src: "a == 0", ok: false},
		{src: "f() != null", ok: false},
		{src: "a && b", ok: false},
		{src: "!a", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			key, sense, ok := Checked(exprOf(t, tt.src))
			if ok != tt.ok {
				t.Fatalf("Checked(%s): got ok=%v, want %v", tt.src, ok, tt.ok)
			}
			if !ok {
				return
			}
			if key != tt.key || sense != tt.sense {
				t.Errorf("Checked(%s): got %q %s, want %q %s", tt.src, key, sense, tt.key, tt.sense)
			}
		})
	}
}

func TestPropagated(t *testing.T) {
	tests := []struct {
		src string
		key string
		ok  bool
	}{
		// Equality against a non-null literal.
		{src: "a?.b == 1", key: "a", ok: true},
		{src: `user?.name == "bob"`, key: "user", ok: true},
		{src: "a?.b == true", key: "a", ok: true},

		// Inequality against null.
		{src: "a?.b != null", key: "a", ok: true},

		// Orderings against any literal.
		{src: "a?.len > 0", key: "a", ok: true},
		{src: "a?.len <= 10", key: "a", ok: true},

		// The innermost null-aware operator names the receiver.
		{src: "a.b?.c == 1", key: "a.b", ok: true},
		{src: "a!.b == 1", key: "a", ok: true},

		// Non-propagating forms: no null-aware operator, comparisons that
		// hold when the chain yields null, right-operand chains, orderings
		// against non-literals, unstable receivers.
		{src: "a.b == 1", ok: false},
		{src: "a?.b == null", ok: false},
		{src: "a?.b != 1", ok: false},
		{src: "1 == a?.b", ok: false},
		{src: "a?.b > c.d", ok: false},
		{src: "f()?.x == 1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			key, ok := Propagated(exprOf(t, tt.src))
			if ok != tt.ok || key != tt.key {
				t.Errorf("Propagated(%s): got %q, %v, want %q, %v", tt.src, key, ok, tt.key, tt.ok)
			}
		})
	}
}
