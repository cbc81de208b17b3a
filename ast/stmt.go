package ast

// Block is an ordered statement list in braces.
type Block struct {
	Range Range
	Stmts []Stmt
}

// If is a branch statement. Else may be nil.
type If struct {
	Range Range
	Cond  Expr
	Then  Stmt
	Else  Stmt
}

// While is a condition-first loop: the condition holds on every entry into
// the body.
type While struct {
	Range Range
	Cond  Expr
	Body  Stmt
}

// DoWhile is a body-first loop: the body runs before the condition is ever
// checked, so the trailing condition guards nothing inside it.
type DoWhile struct {
	Range Range
	Body  Stmt
	Cond  Expr
}

// For is a counting loop. Any of Init, Cond and Post may be nil.
type For struct {
	Range Range
	Init  Stmt
	Cond  Expr
	Post  Expr
	Body  Stmt
}

// Return exits the enclosing function. Value may be nil.
type Return struct {
	Range Range
	Value Expr
}

// Throw raises an error, abandoning the rest of the enclosing branch.
type Throw struct {
	Range Range
	Value Expr
}

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	Range Range
	X     Expr
}

func (n *Block) Span() Range    { return n.Range }
func (n *If) Span() Range       { return n.Range }
func (n *While) Span() Range    { return n.Range }
func (n *DoWhile) Span() Range  { return n.Range }
func (n *For) Span() Range      { return n.Range }
func (n *Return) Span() Range   { return n.Range }
func (n *Throw) Span() Range    { return n.Range }
func (n *ExprStmt) Span() Range { return n.Range }

func (*Block) isNode()    {}
func (*If) isNode()       {}
func (*While) isNode()    {}
func (*DoWhile) isNode()  {}
func (*For) isNode()      {}
func (*Return) isNode()   {}
func (*Throw) isNode()    {}
func (*ExprStmt) isNode() {}

func (*Block) isStmt()    {}
func (*If) isStmt()       {}
func (*While) isStmt()    {}
func (*DoWhile) isStmt()  {}
func (*For) isStmt()      {}
func (*Return) isStmt()   {}
func (*Throw) isStmt()    {}
func (*ExprStmt) isStmt() {}
