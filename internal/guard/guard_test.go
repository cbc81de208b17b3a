package guard

import (
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/saropa/saropa-lints-sub000/ast"
	"github.com/saropa/saropa-lints-sub000/internal/treetext"
	"github.com/saropa/saropa-lints-sub000/predicate"
)

// classifyAll parses src and classifies every forced unwrap in document
// order, maintaining the ancestor stack the way the scanner does.
func classifyAll(t *testing.T, src string, reg *predicate.Registry) []Verdict {
	t.Helper()

	unit, err := treetext.Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %s", src, err)
	}

	var verdicts []Verdict
	var stack []ast.Node

	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if u, ok := n.(*ast.ForcedUnwrap); ok {
			verdicts = append(verdicts, Classify(stack, u, reg))
		}

		stack = append(stack, n)
		for _, c := range ast.Children(n) {
			walk(c)
		}
		stack = stack[:len(stack)-1]
	}

	walk(unit)

	return verdicts
}

func guarded(s Shape) Verdict { return Verdict{Guarded: true, Shape: s} }
func unguarded() Verdict      { return Verdict{} }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Verdict
	}{
		{
			name: "and chain",
			src:  "a != null && a!.b;",
			want: []Verdict{guarded(ShapeAndChain)},
		},
		{
			name: "and chain wrong order",
			src:  "a!.b && a != null;",
			want: []Verdict{unguarded()},
		},
		{
			name: "and chain nested right",
			src:  "c && a != null && a!.b;",
			want: []Verdict{guarded(ShapeAndChain)},
		},
		{
			name: "or chain",
			src:  "a == null || a!.b;",
			want: []Verdict{guarded(ShapeOrChain)},
		},
		{
			name: "or chain wrong sense",
			src:  "a != null || a!.b;",
			want: []Verdict{unguarded()},
		},
		{
			name: "ternary then arm",
			src:  "a != null ? a!.b : 0;",
			want: []Verdict{guarded(ShapeTernary)},
		},
		{
			name: "ternary else arm",
			src:  "a == null ? 0 : a!.b;",
			want: []Verdict{guarded(ShapeTernary)},
		},
		{
			name: "ternary arm is a boundary",
			src:  "if (a != null) { b == null ? a!.c : 0; }",
			want: []Verdict{unguarded()},
		},
		{
			name: "ternary condition sees outer guard",
			src:  "if (a != null) { a!.b ? x : y; }",
			want: []Verdict{guarded(ShapeGuardClause)},
		},
		{
			name: "if guard clause",
			src:  "if (a != null) { a!.b; }",
			want: []Verdict{guarded(ShapeGuardClause)},
		},
		{
			name: "if guard unparenthesized body",
			src:  "if (a != null) use(a!.b);",
			want: []Verdict{guarded(ShapeGuardClause)},
		},
		{
			name: "else branch of null check",
			src:  "if (a == null) { skip(); } else { a!.b; }",
			want: []Verdict{guarded(ShapeGuardClause)},
		},
		{
			name: "negated condition",
			src:  "if (!(a == null)) { a!.b; }",
			want: []Verdict{guarded(ShapeGuardClause)},
		},
		{
			name: "early return",
			src:  "if (a == null) { return; } a!.b;",
			want: []Verdict{guarded(ShapeGuardClause)},
		},
		{
			name: "early throw",
			src:  "if (a == null) { throw missing(); } a!.b;",
			want: []Verdict{guarded(ShapeGuardClause)},
		},
		{
			name: "early exit deeper in clause",
			src:  "if (a == null) { log(); return; } a!.b;",
			want: []Verdict{guarded(ShapeGuardClause)},
		},
		{
			name: "no early exit",
			src:  "if (a == null) { log(); } a!.b;",
			want: []Verdict{unguarded()},
		},
		{
			name: "use before the guard",
			src:  "a!.b; if (a == null) { return; }",
			want: []Verdict{unguarded()},
		},
		{
			name: "early exit guards nested branches",
			src:  "if (a == null) { return; } if (c) { a!.b; }",
			want: []Verdict{guarded(ShapeGuardClause)},
		},
		{
			name: "truthy predicate",
			src:  "if (list.isNotEmpty) { list!.first; }",
			want: []Verdict{guarded(ShapePredicate)},
		},
		{
			name: "falsy predicate early exit",
			src:  "if (s.isEmpty) { return; } s!.x;",
			want: []Verdict{guarded(ShapePredicate)},
		},
		{
			name: "negated falsy predicate",
			src:  "if (!s.isEmpty) { s!.x; }",
			want: []Verdict{guarded(ShapePredicate)},
		},
		{
			name: "predicate call form",
			src:  `if (m.containsKey("k")) { m!["k"]; }`,
			want: []Verdict{guarded(ShapePredicate)},
		},
		{
			name: "predicate on another receiver",
			src:  "if (other.isNotEmpty) { list!.first; }",
			want: []Verdict{unguarded()},
		},
		{
			name: "unknown predicate",
			src:  "if (a.looksFine) { a!.b; }",
			want: []Verdict{unguarded()},
		},
		{
			name: "paired indicator",
			src:  "if (snap.hasData) { snap.data!.x; }",
			want: []Verdict{guarded(ShapePairedIndicator)},
		},
		{
			name: "indicator on wrong receiver",
			src:  "if (other.hasData) { snap.data!.x; }",
			want: []Verdict{unguarded()},
		},
		{
			name: "propagated comparison",
			src:  "if (a?.b == 1) { a!.c; }",
			want: []Verdict{guarded(ShapePropagatedCompare)},
		},
		{
			name: "one comparison carries two facts",
			src:  "if (a?.b != null) { a!.x; a.b!.y; }",
			want: []Verdict{guarded(ShapePropagatedCompare), guarded(ShapeGuardClause)},
		},
		{
			name: "while condition",
			src:  "while (node != null) { node!.next; }",
			want: []Verdict{guarded(ShapeLoopCondition)},
		},
		{
			name: "for condition",
			src:  "for (; node != null;) { node!.next; }",
			want: []Verdict{guarded(ShapeLoopCondition)},
		},
		{
			name: "do-while condition guards nothing",
			src:  "do { node!.next; } while (node != null);",
			want: []Verdict{unguarded()},
		},
		{
			name: "collection if then element",
			src:  "[ if (a != null) a!.b else 0 ];",
			want: []Verdict{guarded(ShapeCollectionIf)},
		},
		{
			name: "collection if else element",
			src:  "[ if (a == null) 0 else a!.b ];",
			want: []Verdict{guarded(ShapeCollectionIf)},
		},
		{
			name: "collection element without condition",
			src:  "[ a!.b ];",
			want: []Verdict{unguarded()},
		},
		{
			name: "coalescing assignment",
			src:  "a ??= fallback(); a!.b;",
			want: []Verdict{guarded(ShapeCoalesce)},
		},
		{
			name: "coalescing with null establishes nothing",
			src:  "a ??= null; a!.b;",
			want: []Verdict{unguarded()},
		},
		{
			name: "coalescing after the use",
			src:  "a!.b; a ??= fallback();",
			want: []Verdict{unguarded()},
		},
		{
			name: "coalescing does not reach nested blocks",
			src:  "a ??= fallback(); if (c) { a!.b; }",
			want: []Verdict{unguarded()},
		},
		{
			name: "lambda is a boundary",
			src:  "if (a != null) { each((x) => a!.b); }",
			want: []Verdict{unguarded()},
		},
		{
			name: "guard inside the lambda holds",
			src:  "each((x) => a != null && a!.b);",
			want: []Verdict{guarded(ShapeAndChain)},
		},
		{
			name: "guard inside lambda block body",
			src:  "each((x) { if (x == null) { return; } x!.b; });",
			want: []Verdict{guarded(ShapeGuardClause)},
		},
		{
			name: "unstable operand",
			src:  "if (f() != null) { f()!.x; }",
			want: []Verdict{unguarded()},
		},
		{
			name: "or in condition needs both disjuncts",
			src:  "if (a != null || b != null) { a!.x; }",
			want: []Verdict{unguarded()},
		},
		{
			name: "or in condition with both disjuncts",
			src:  "if (a != null || a?.b == 1) { a!.x; }",
			want: []Verdict{guarded(ShapeOrChain)},
		},
		{
			name: "distinct paths do not alias",
			src:  "if (a.b != null) { a.c!.x; }",
			want: []Verdict{unguarded()},
		},
		{
			name: "guard proves the full path only",
			src:  "if (a != null) { a.b!.c; }",
			want: []Verdict{unguarded()},
		},
	}

	reg := predicate.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAll(t, tt.src, reg)
			if !reflect.DeepEqual(tt.want, got) {
				deepequal.SideBySide(t, "verdicts", tt.want, got)
			}
		})
	}
}

func TestClassifyCustomVocabulary(t *testing.T) {
	reg := predicate.New(
		map[string]predicate.Polarity{"exists": predicate.PolarityTruthy},
		map[string]string{"hasPayload": "payload"},
	)

	got := classifyAll(t, "if (rec.exists) { rec!.id; }", reg)
	want := []Verdict{guarded(ShapePredicate)}
	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "verdicts", want, got)
	}

	got = classifyAll(t, "if (msg.hasPayload) { msg.payload!.size; }", reg)
	want = []Verdict{guarded(ShapePairedIndicator)}
	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "verdicts", want, got)
	}

	// The built-in names mean nothing to a custom vocabulary.
	got = classifyAll(t, "if (list.isNotEmpty) { list!.first; }", reg)
	want = []Verdict{unguarded()}
	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "verdicts", want, got)
	}
}
