// Package spanindex maps source positions to tree nodes through a
// containment hierarchy of node spans.
//
// Spans of sibling nodes are disjoint and a parent's span contains its
// children's, so an RB-tree ordered by "disjoint by position" with nested
// child trees resolves a position to the innermost covering node, and to
// the whole covering chain. The index is best-effort: nodes without usable
// spans are simply not indexed.
package spanindex

import (
	"github.com/sirkon/rbtree"

	"github.com/saropa/saropa-lints-sub000/ast"
)

// Index resolves positions within one compilation unit's tree.
type Index struct {
	tree *rbtree.Tree[*nodeSpan]
}

// Build indexes every node of the unit carrying a valid span. The walk adds
// parents before children, which keeps the containment fix-up cheap.
func Build(unit *ast.Unit) *Index {
	ix := &Index{tree: rbtree.New[*nodeSpan]()}

	ast.Inspect(unit, func(n ast.Node) bool {
		r := n.Span()
		if !r.Valid() {
			return true
		}

		attachInto(ix.tree, &nodeSpan{
			start: r.Start,
			end:   r.End() - 1,
			node:  n,
		})

		return true
	})

	return ix
}

// NodeAt returns the innermost indexed node covering pos, or nil.
func (ix *Index) NodeAt(pos ast.Pos) ast.Node {
	path := ix.PathAt(pos)
	if len(path) == 0 {
		return nil
	}

	return path[len(path)-1]
}

// PathAt returns the chain of indexed nodes covering pos, outermost first.
func (ix *Index) PathAt(pos ast.Pos) []ast.Node {
	probe := &nodeSpan{start: pos, end: pos}

	var path []ast.Node
	tree := ix.tree
	for tree != nil {
		found := tree.Search(probe)
		if found == nil {
			break
		}

		path = append(path, found.node)
		tree = found.children
	}

	return path
}
