package ast

import "fmt"

// Ident is a bare identifier.
type Ident struct {
	Range Range
	Name  string
}

// Member is a property access. NullAware distinguishes `a?.b` from `a.b`;
// the forced form `a!.b` is represented as Member over ForcedUnwrap.
type Member struct {
	Range     Range
	Target    Expr
	Name      string
	NullAware bool
}

// Index is a subscript access, null-aware for `a?[i]`.
type Index struct {
	Range     Range
	Target    Expr
	Index     Expr
	NullAware bool
}

// BasicKind enumerates literal kinds.
type BasicKind int

const (
	basicInvalid BasicKind = iota

	BasicNull
	BasicBool
	BasicInt
	BasicString
)

// Basic is a literal value. Value keeps the source text of the literal.
type Basic struct {
	Range Range
	Kind  BasicKind
	Value string
}

// IsNull reports whether the literal is the null literal.
func (b *Basic) IsNull() bool {
	return b.Kind == BasicNull
}

// LogicalOp is a short-circuit boolean operator.
type LogicalOp int

const (
	logicalInvalid LogicalOp = iota

	LogicalAnd
	LogicalOr
)

var logicalOpValueMap = map[LogicalOp]string{
	LogicalAnd: "&&",
	LogicalOr:  "||",
}

func (op LogicalOp) String() string {
	v, ok := logicalOpValueMap[op]
	if !ok {
		return fmt.Sprintf("invalid-logical-op(%d)", op)
	}

	return v
}

// Logical is a short-circuit boolean chain node. The right operand is only
// evaluated when the left one does not decide the result, which is what
// makes `x != null && x!.y` a legitimate guard and its mirror image not.
type Logical struct {
	Range Range
	Op    LogicalOp
	Left  Expr
	Right Expr
}

// CompareOp is a comparison operator.
type CompareOp int

const (
	compareInvalid CompareOp = iota

	CompareEQ
	CompareNEQ
	CompareLT
	CompareLTE
	CompareGT
	CompareGTE
)

var compareOpValueMap = map[CompareOp]string{
	CompareEQ:  "==",
	CompareNEQ: "!=",
	CompareLT:  "<",
	CompareLTE: "<=",
	CompareGT:  ">",
	CompareGTE: ">=",
}

func (op CompareOp) String() string {
	v, ok := compareOpValueMap[op]
	if !ok {
		return fmt.Sprintf("invalid-compare-op(%d)", op)
	}

	return v
}

// IsOrdering reports whether the operator is one of < <= > >=.
func (op CompareOp) IsOrdering() bool {
	switch op {
	case CompareLT, CompareLTE, CompareGT, CompareGTE:
		return true
	default:
		return false
	}
}

// Compare is a comparison between two expressions.
type Compare struct {
	Range Range
	Op    CompareOp
	Left  Expr
	Right Expr
}

// Not is a boolean negation.
type Not struct {
	Range   Range
	Operand Expr
}

// Cond is a ternary conditional expression.
type Cond struct {
	Range Range
	Cond  Expr
	Then  Expr
	Else  Expr
}

// AssignOp is an assignment operator.
type AssignOp int

const (
	assignInvalid AssignOp = iota

	// AssignSet is plain `=`.
	AssignSet

	// AssignCoalesce is `??=`: assigns only when the target is null, so the
	// target is non-null afterwards whenever the value is.
	AssignCoalesce
)

var assignOpValueMap = map[AssignOp]string{
	AssignSet:      "=",
	AssignCoalesce: "??=",
}

func (op AssignOp) String() string {
	v, ok := assignOpValueMap[op]
	if !ok {
		return fmt.Sprintf("invalid-assign-op(%d)", op)
	}

	return v
}

// Assign is an assignment expression.
type Assign struct {
	Range  Range
	Op     AssignOp
	Target Expr
	Value  Expr
}

// Call is a function or method invocation. Recv is nil for free calls.
// NullAware distinguishes `a?.f()` from `a.f()`.
type Call struct {
	Range     Range
	Recv      Expr
	Name      string
	Args      []Expr
	NullAware bool
}

// ForcedUnwrap is the postfix `!` null assertion: it asserts the operand is
// non-null and fails fatally at run time when it is not. These are the
// sites the analysis classifies.
type ForcedUnwrap struct {
	Range   Range
	Operand Expr
}

// ListLit is a collection literal. Elements may be plain expressions or
// IfElement conditionals.
type ListLit struct {
	Range Range
	Elems []Expr
}

// IfElement is a conditional collection-literal element:
//
//	[ if (cond) thenElem else elseElem ]
//
// It sits in expression position but branches exactly like an If statement,
// and the guard analysis treats it as one.
type IfElement struct {
	Range Range
	Cond  Expr
	Then  Expr
	Else  Expr // may be nil
}

// Lambda is a function literal, either expression-bodied (`(x) => e`) or
// block-bodied. Captured variables may change between creation and
// invocation, so guards established outside a lambda do not carry into it.
type Lambda struct {
	Range  Range
	Params []string
	Expr   Expr   // set for `=> expr` bodies
	Body   *Block // set for block bodies
}

func (n *Ident) Span() Range        { return n.Range }
func (n *Member) Span() Range       { return n.Range }
func (n *Index) Span() Range        { return n.Range }
func (n *Basic) Span() Range        { return n.Range }
func (n *Logical) Span() Range      { return n.Range }
func (n *Compare) Span() Range      { return n.Range }
func (n *Not) Span() Range          { return n.Range }
func (n *Cond) Span() Range         { return n.Range }
func (n *Assign) Span() Range       { return n.Range }
func (n *Call) Span() Range         { return n.Range }
func (n *ForcedUnwrap) Span() Range { return n.Range }
func (n *ListLit) Span() Range      { return n.Range }
func (n *IfElement) Span() Range    { return n.Range }
func (n *Lambda) Span() Range       { return n.Range }

func (*Ident) isNode()        {}
func (*Member) isNode()       {}
func (*Index) isNode()        {}
func (*Basic) isNode()        {}
func (*Logical) isNode()      {}
func (*Compare) isNode()      {}
func (*Not) isNode()          {}
func (*Cond) isNode()         {}
func (*Assign) isNode()       {}
func (*Call) isNode()         {}
func (*ForcedUnwrap) isNode() {}
func (*ListLit) isNode()      {}
func (*IfElement) isNode()    {}
func (*Lambda) isNode()       {}

func (*Ident) isExpr()        {}
func (*Member) isExpr()       {}
func (*Index) isExpr()        {}
func (*Basic) isExpr()        {}
func (*Logical) isExpr()      {}
func (*Compare) isExpr()      {}
func (*Not) isExpr()          {}
func (*Cond) isExpr()         {}
func (*Assign) isExpr()       {}
func (*Call) isExpr()         {}
func (*ForcedUnwrap) isExpr() {}
func (*ListLit) isExpr()      {}
func (*IfElement) isExpr()    {}
func (*Lambda) isExpr()       {}
