package ast

// Pos is a byte offset into the unit's source text.
type Pos int

// Range locates a node in the unit's source text as (start, length).
type Range struct {
	Start  Pos
	Length int
}

// End returns the position right after the range.
func (r Range) End() Pos {
	return r.Start + Pos(r.Length)
}

// Contains reports whether pos falls inside the range.
func (r Range) Contains(pos Pos) bool {
	return pos >= r.Start && pos < r.End()
}

// Valid reports whether the range carries a usable extent. Programmatic
// builders may leave ranges zeroed; positional facilities skip such nodes.
func (r Range) Valid() bool {
	return r.Length > 0
}

// Node is the base interface implemented by all tree node types.
type Node interface {
	Span() Range
	isNode()
}

// Expr marks nodes that appear in expression position.
type Expr interface {
	Node
	isExpr()
}

// Stmt marks nodes that appear in statement position.
type Stmt interface {
	Node
	isStmt()
}

// Unit is the root of a single compilation unit's tree.
type Unit struct {
	Range Range
	Stmts []Stmt
}

func (u *Unit) Span() Range { return u.Range }
func (*Unit) isNode()       {}
