package spanindex

import (
	"strings"
	"testing"

	"github.com/saropa/saropa-lints-sub000/ast"
	"github.com/saropa/saropa-lints-sub000/internal/treetext"
)

func TestIndexResolvesInnermost(t *testing.T) {
	const src = "if (a != null) { use(a!.b); }"

	unit, err := treetext.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	ix := Build(unit)

	// Position of the asserted identifier inside the call.
	pos := ast.Pos(strings.Index(src, "a!"))

	node := ix.NodeAt(pos)
	id, ok := node.(*ast.Ident)
	if !ok || id.Name != "a" {
		t.Fatalf("NodeAt(%d): got %#v, want the inner identifier", pos, node)
	}
}

func TestIndexPathNesting(t *testing.T) {
	const src = "if (a != null) { use(a!.b); }"

	unit, err := treetext.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	ix := Build(unit)

	pos := ast.Pos(strings.Index(src, "a!") + 1)
	path := ix.PathAt(pos)
	if len(path) == 0 {
		t.Fatal("expected a non-empty covering chain")
	}

	if _, ok := path[0].(*ast.Unit); !ok {
		t.Fatalf("expected the unit first, got %T", path[0])
	}

	// Each step must cover the position and nest within its parent.
	for i, n := range path {
		r := n.Span()
		if !r.Contains(pos) {
			t.Errorf("step %d (%T) does not cover %d: %+v", i, n, pos, r)
		}
		if i == 0 {
			continue
		}

		outer := path[i-1].Span()
		if r.Start < outer.Start || r.End() > outer.End() {
			t.Errorf("step %d (%T) escapes its parent: %+v vs %+v", i, n, r, outer)
		}
	}

	// The chain must pass through the forced unwrap.
	var seen bool
	for _, n := range path {
		if _, ok := n.(*ast.ForcedUnwrap); ok {
			seen = true
		}
	}
	if !seen {
		t.Error("expected the forced unwrap on the covering chain")
	}
}

func TestIndexOutsideAnyNode(t *testing.T) {
	unit, err := treetext.Parse("a;")
	if err != nil {
		t.Fatal(err)
	}
	ix := Build(unit)

	if n := ix.NodeAt(100); n != nil {
		t.Fatalf("expected no node past the end, got %#v", n)
	}
	if p := ix.PathAt(-1); p != nil {
		t.Fatalf("expected no chain before the start, got %d nodes", len(p))
	}
}

func TestIndexSiblingsStayApart(t *testing.T) {
	const src = "a = f(); b = g();"

	unit, err := treetext.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	ix := Build(unit)

	first := ix.NodeAt(ast.Pos(strings.Index(src, "a")))
	second := ix.NodeAt(ast.Pos(strings.Index(src, "b")))

	fi, ok := first.(*ast.Ident)
	if !ok || fi.Name != "a" {
		t.Fatalf("first statement lookup: got %#v", first)
	}
	si, ok := second.(*ast.Ident)
	if !ok || si.Name != "b" {
		t.Fatalf("second statement lookup: got %#v", second)
	}
}
