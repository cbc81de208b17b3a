package spanindex

import (
	"github.com/sirkon/rbtree"

	"github.com/saropa/saropa-lints-sub000/ast"
)

// nodeSpan stores an inclusive [start,end] span for a node and, if needed,
// a nested RB-tree for child spans fully contained in this span.
type nodeSpan struct {
	start ast.Pos
	end   ast.Pos

	node     ast.Node
	children *rbtree.Tree[*nodeSpan]
}

// Cmp defines the RB-tree ordering as "disjoint by position":
//   - -1 if this span ends strictly before other starts,
//   - 1 if this span starts strictly after other ends,
//   - 0 when the spans overlap in any way, containment included.
//
// Well-formed trees never produce partial overlaps: overlapping spans are
// always in a containment relationship, and the zero result hands us the
// overlapping resident via InsertReturn so the containment structure can be
// fixed up in place.
func (n *nodeSpan) Cmp(other *nodeSpan) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}

	return 0
}

func contains(a, b *nodeSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts span s into tree t keeping the containment structure:
//   - no overlapping resident: s becomes a sibling;
//   - s strictly contains the resident r: r's slot is rewritten to s and
//     the old r re-attaches as a child of it;
//   - r contains s (equal spans included): s descends into r's children.
//
// Partial overlaps indicate a malformed input tree; the span is dropped
// rather than indexed wrongly.
func attachInto(t *rbtree.Tree[*nodeSpan], s *nodeSpan) {
	r := t.InsertReturn(s)
	if r == s {
		return
	}

	if contains(s, r) && !contains(r, s) {
		old := *r
		*r = *s

		if r.children == nil {
			r.children = rbtree.New[*nodeSpan]()
		}
		attachInto(r.children, &old)

		return
	}

	if contains(r, s) {
		if r.children == nil {
			r.children = rbtree.New[*nodeSpan]()
		}
		attachInto(r.children, s)

		return
	}
}
