package treetext

import (
	"fmt"

	"github.com/saropa/saropa-lints-sub000/ast"
)

// Binding powers, lowest first.
const (
	_ int = iota
	precLowest
	precAssign  // = ??=
	precTernary // ?:
	precOr      // ||
	precAnd     // &&
	precEquals  // == !=
	precCompare // < <= > >=
	precPrefix  // !x
	precCall    // member access, calls, indexing, postfix !
)

var precedences = map[tokenType]int{
	tokAssign:   precAssign,
	tokCoalesce: precAssign,
	tokQuestion: precTernary,
	tokOr:       precOr,
	tokAnd:      precAnd,
	tokEQ:       precEquals,
	tokNEQ:      precEquals,
	tokLT:       precCompare,
	tokLTE:      precCompare,
	tokGT:       precCompare,
	tokGTE:      precCompare,
	tokDot:      precCall,
	tokQDot:     precCall,
	tokLBracket: precCall,
	tokQBracket: precCall,
	tokLParen:   precCall,
	tokBang:     precCall,
}

var compareOps = map[tokenType]ast.CompareOp{
	tokEQ:  ast.CompareEQ,
	tokNEQ: ast.CompareNEQ,
	tokLT:  ast.CompareLT,
	tokLTE: ast.CompareLTE,
	tokGT:  ast.CompareGT,
	tokGTE: ast.CompareGTE,
}

// Parse turns a notation document into a unit tree.
func Parse(src string) (unit *ast.Unit, err error) {
	toks, err := lex(src)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}

	p := newParser(toks)

	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseFailure)
			if !ok {
				panic(r)
			}
			unit, err = nil, pe.err
		}
	}()

	unit = &ast.Unit{Range: ast.Range{Start: 0, Length: len(src)}}
	for p.cur().typ != tokEOF {
		unit.Stmts = append(unit.Stmts, p.parseStatement())
		p.next()
	}

	return unit, nil
}

// MustParse is Parse for fixtures known to be well-formed.
func MustParse(src string) *ast.Unit {
	unit, err := Parse(src)
	if err != nil {
		panic(fmt.Errorf("parse fixture: %w", err))
	}

	return unit
}

// parseFailure carries a syntax error up through the recursive descent.
type parseFailure struct {
	err error
}

type parser struct {
	toks []token
	pos  int

	prefixFns map[tokenType]func() ast.Expr
	infixFns  map[tokenType]func(ast.Expr) ast.Expr
}

func newParser(toks []token) *parser {
	p := &parser{toks: toks}

	p.prefixFns = map[tokenType]func() ast.Expr{
		tokIdent:    p.parseIdent,
		tokInt:      p.parseBasicLit,
		tokString:   p.parseBasicLit,
		tokNull:     p.parseBasicLit,
		tokTrue:     p.parseBasicLit,
		tokFalse:    p.parseBasicLit,
		tokBang:     p.parseNot,
		tokLParen:   p.parseParenOrLambda,
		tokLBracket: p.parseList,
	}

	p.infixFns = map[tokenType]func(ast.Expr) ast.Expr{
		tokDot:      p.parseMember,
		tokQDot:     p.parseMember,
		tokLBracket: p.parseIndex,
		tokQBracket: p.parseIndex,
		tokLParen:   p.parseCall,
		tokBang:     p.parseUnwrap,
		tokEQ:       p.parseCompare,
		tokNEQ:      p.parseCompare,
		tokLT:       p.parseCompare,
		tokLTE:      p.parseCompare,
		tokGT:       p.parseCompare,
		tokGTE:      p.parseCompare,
		tokAnd:      p.parseLogical,
		tokOr:       p.parseLogical,
		tokQuestion: p.parseTernary,
		tokAssign:   p.parseAssign,
		tokCoalesce: p.parseAssign,
	}

	return p
}

func (p *parser) cur() token {
	return p.toks[p.pos]
}

func (p *parser) peek() token {
	if p.pos+1 >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}

	return p.toks[p.pos+1]
}

func (p *parser) next() {
	if p.pos+1 < len(p.toks) {
		p.pos++
	}
}

func (p *parser) peekPrecedence() int {
	return precedences[p.peek().typ]
}

func (p *parser) failf(format string, args ...any) {
	panic(parseFailure{err: fmt.Errorf(format, args...)})
}

func (p *parser) expectPeek(typ tokenType) {
	got := p.peek()
	if got.typ != typ {
		p.failf("offset %d: expected %q, got %q", got.startPos, typ, got.typ)
	}

	p.next()
}

// rangeFrom builds a range from a start offset to the end of the current
// token; every parse function leaves the current token on its last lexeme.
func (p *parser) rangeFrom(start int) ast.Range {
	return ast.Range{Start: ast.Pos(start), Length: p.cur().endPos - start}
}

func (p *parser) rangeOf(left ast.Expr) ast.Range {
	return p.rangeFrom(int(left.Span().Start))
}

// --- Statements -----------------------------------------------------------

func (p *parser) parseStatement() ast.Stmt {
	switch p.cur().typ {
	case tokLBrace:
		return p.parseBlock()
	case tokIf:
		return p.parseIf()
	case tokWhile:
		return p.parseWhile()
	case tokDo:
		return p.parseDoWhile()
	case tokFor:
		return p.parseFor()
	case tokReturn:
		return p.parseReturn()
	case tokThrow:
		return p.parseThrow()
	default:
		start := p.cur().startPos
		x := p.parseExpression(precLowest)
		p.expectPeek(tokSemicolon)

		return &ast.ExprStmt{Range: p.rangeFrom(start), X: x}
	}
}

func (p *parser) parseBlock() *ast.Block {
	start := p.cur().startPos

	var stmts []ast.Stmt
	p.next()
	for p.cur().typ != tokRBrace {
		if p.cur().typ == tokEOF {
			p.failf("offset %d: unterminated block", start)
		}
		stmts = append(stmts, p.parseStatement())
		p.next()
	}

	return &ast.Block{Range: p.rangeFrom(start), Stmts: stmts}
}

func (p *parser) parseIf() ast.Stmt {
	start := p.cur().startPos

	p.expectPeek(tokLParen)
	p.next()
	cond := p.parseExpression(precLowest)
	p.expectPeek(tokRParen)

	p.next()
	then := p.parseStatement()

	var els ast.Stmt
	if p.peek().typ == tokElse {
		p.next()
		p.next()
		els = p.parseStatement()
	}

	return &ast.If{Range: p.rangeFrom(start), Cond: cond, Then: then, Else: els}
}

func (p *parser) parseWhile() ast.Stmt {
	start := p.cur().startPos

	p.expectPeek(tokLParen)
	p.next()
	cond := p.parseExpression(precLowest)
	p.expectPeek(tokRParen)

	p.next()
	body := p.parseStatement()

	return &ast.While{Range: p.rangeFrom(start), Cond: cond, Body: body}
}

func (p *parser) parseDoWhile() ast.Stmt {
	start := p.cur().startPos

	p.next()
	body := p.parseStatement()

	p.expectPeek(tokWhile)
	p.expectPeek(tokLParen)
	p.next()
	cond := p.parseExpression(precLowest)
	p.expectPeek(tokRParen)
	p.expectPeek(tokSemicolon)

	return &ast.DoWhile{Range: p.rangeFrom(start), Body: body, Cond: cond}
}

func (p *parser) parseFor() ast.Stmt {
	start := p.cur().startPos

	p.expectPeek(tokLParen)

	var init ast.Stmt
	p.next()
	if p.cur().typ != tokSemicolon {
		istart := p.cur().startPos
		x := p.parseExpression(precLowest)
		init = &ast.ExprStmt{Range: p.rangeFrom(istart), X: x}
		p.expectPeek(tokSemicolon)
	}

	var cond ast.Expr
	p.next()
	if p.cur().typ != tokSemicolon {
		cond = p.parseExpression(precLowest)
		p.expectPeek(tokSemicolon)
	}

	var post ast.Expr
	p.next()
	if p.cur().typ != tokRParen {
		post = p.parseExpression(precLowest)
		p.expectPeek(tokRParen)
	}

	p.next()
	body := p.parseStatement()

	return &ast.For{Range: p.rangeFrom(start), Init: init, Cond: cond, Post: post, Body: body}
}

func (p *parser) parseReturn() ast.Stmt {
	start := p.cur().startPos

	if p.peek().typ == tokSemicolon {
		p.next()

		return &ast.Return{Range: p.rangeFrom(start)}
	}

	p.next()
	v := p.parseExpression(precLowest)
	p.expectPeek(tokSemicolon)

	return &ast.Return{Range: p.rangeFrom(start), Value: v}
}

func (p *parser) parseThrow() ast.Stmt {
	start := p.cur().startPos

	p.next()
	v := p.parseExpression(precLowest)
	p.expectPeek(tokSemicolon)

	return &ast.Throw{Range: p.rangeFrom(start), Value: v}
}

// --- Expressions ----------------------------------------------------------

func (p *parser) parseExpression(prec int) ast.Expr {
	prefix := p.prefixFns[p.cur().typ]
	if prefix == nil {
		p.failf("offset %d: unexpected token %q", p.cur().startPos, p.cur().typ)
	}
	left := prefix()

	for prec < p.peekPrecedence() {
		infix := p.infixFns[p.peek().typ]
		if infix == nil {
			return left
		}

		p.next()
		left = infix(left)
	}

	return left
}

func (p *parser) parseIdent() ast.Expr {
	t := p.cur()

	return &ast.Ident{
		Range: ast.Range{Start: ast.Pos(t.startPos), Length: t.endPos - t.startPos},
		Name:  t.literal,
	}
}

func (p *parser) parseBasicLit() ast.Expr {
	t := p.cur()

	var kind ast.BasicKind
	switch t.typ {
	case tokInt:
		kind = ast.BasicInt
	case tokString:
		kind = ast.BasicString
	case tokNull:
		kind = ast.BasicNull
	case tokTrue, tokFalse:
		kind = ast.BasicBool
	default:
		p.failf("offset %d: not a literal: %q", t.startPos, t.typ)
	}

	return &ast.Basic{
		Range: ast.Range{Start: ast.Pos(t.startPos), Length: t.endPos - t.startPos},
		Kind:  kind,
		Value: t.literal,
	}
}

func (p *parser) parseNot() ast.Expr {
	start := p.cur().startPos

	p.next()
	operand := p.parseExpression(precPrefix)

	return &ast.Not{Range: p.rangeFrom(start), Operand: operand}
}

func (p *parser) parseParenOrLambda() ast.Expr {
	if p.lambdaAhead() {
		return p.parseLambda()
	}

	p.next()
	e := p.parseExpression(precLowest)
	p.expectPeek(tokRParen)

	return e
}

// lambdaAhead tells a lambda head from a grouped expression: a run of
// comma-separated identifiers closed by `)` and followed by `=>` or `{`.
func (p *parser) lambdaAhead() bool {
	i := p.pos + 1
	for p.toks[i].typ == tokIdent || p.toks[i].typ == tokComma {
		i++
	}
	if p.toks[i].typ != tokRParen {
		return false
	}

	following := p.toks[i+1].typ

	return following == tokArrow || following == tokLBrace
}

func (p *parser) parseLambda() ast.Expr {
	start := p.cur().startPos

	var params []string
	for p.peek().typ == tokIdent {
		p.next()
		params = append(params, p.cur().literal)
		if p.peek().typ == tokComma {
			p.next()
		}
	}
	p.expectPeek(tokRParen)

	switch p.peek().typ {
	case tokArrow:
		p.next()
		p.next()
		body := p.parseExpression(precLowest)

		return &ast.Lambda{Range: p.rangeFrom(start), Params: params, Expr: body}

	case tokLBrace:
		p.next()
		block := p.parseBlock()

		return &ast.Lambda{Range: p.rangeFrom(start), Params: params, Body: block}

	default:
		p.failf("offset %d: expected lambda body", p.peek().startPos)
		return nil
	}
}

func (p *parser) parseList() ast.Expr {
	start := p.cur().startPos

	if p.peek().typ == tokRBracket {
		p.next()

		return &ast.ListLit{Range: p.rangeFrom(start)}
	}

	var elems []ast.Expr
	for {
		p.next()
		elems = append(elems, p.parseElement())

		switch p.peek().typ {
		case tokComma:
			p.next()
		case tokRBracket:
			p.next()

			return &ast.ListLit{Range: p.rangeFrom(start), Elems: elems}
		default:
			p.failf("offset %d: expected ',' or ']' in list", p.peek().startPos)
		}
	}
}

// parseElement handles collection elements: either an `if` element or a
// plain expression.
func (p *parser) parseElement() ast.Expr {
	if p.cur().typ != tokIf {
		return p.parseExpression(precLowest)
	}

	start := p.cur().startPos

	p.expectPeek(tokLParen)
	p.next()
	cond := p.parseExpression(precLowest)
	p.expectPeek(tokRParen)

	p.next()
	then := p.parseElement()

	var els ast.Expr
	if p.peek().typ == tokElse {
		p.next()
		p.next()
		els = p.parseElement()
	}

	return &ast.IfElement{Range: p.rangeFrom(start), Cond: cond, Then: then, Else: els}
}

func (p *parser) parseMember(left ast.Expr) ast.Expr {
	nullAware := p.cur().typ == tokQDot

	p.expectPeek(tokIdent)
	name := p.cur().literal

	return &ast.Member{Range: p.rangeOf(left), Target: left, Name: name, NullAware: nullAware}
}

func (p *parser) parseIndex(left ast.Expr) ast.Expr {
	nullAware := p.cur().typ == tokQBracket

	p.next()
	idx := p.parseExpression(precLowest)
	p.expectPeek(tokRBracket)

	return &ast.Index{Range: p.rangeOf(left), Target: left, Index: idx, NullAware: nullAware}
}

func (p *parser) parseCall(left ast.Expr) ast.Expr {
	var args []ast.Expr
	if p.peek().typ == tokRParen {
		p.next()
	} else {
		for {
			p.next()
			args = append(args, p.parseExpression(precLowest))
			if p.peek().typ != tokComma {
				break
			}
			p.next()
		}
		p.expectPeek(tokRParen)
	}

	switch recv := left.(type) {
	case *ast.Ident:
		return &ast.Call{Range: p.rangeOf(left), Name: recv.Name, Args: args}

	case *ast.Member:
		return &ast.Call{
			Range:     p.rangeOf(left),
			Recv:      recv.Target,
			Name:      recv.Name,
			Args:      args,
			NullAware: recv.NullAware,
		}

	default:
		p.failf("offset %d: cannot call %T", int(left.Span().Start), left)
		return nil
	}
}

func (p *parser) parseUnwrap(left ast.Expr) ast.Expr {
	return &ast.ForcedUnwrap{Range: p.rangeOf(left), Operand: left}
}

func (p *parser) parseCompare(left ast.Expr) ast.Expr {
	op := compareOps[p.cur().typ]
	prec := precedences[p.cur().typ]

	p.next()
	right := p.parseExpression(prec)

	return &ast.Compare{Range: p.rangeOf(left), Op: op, Left: left, Right: right}
}

func (p *parser) parseLogical(left ast.Expr) ast.Expr {
	op := ast.LogicalAnd
	if p.cur().typ == tokOr {
		op = ast.LogicalOr
	}
	prec := precedences[p.cur().typ]

	p.next()
	right := p.parseExpression(prec)

	return &ast.Logical{Range: p.rangeOf(left), Op: op, Left: left, Right: right}
}

func (p *parser) parseTernary(left ast.Expr) ast.Expr {
	p.next()
	then := p.parseExpression(precLowest)
	p.expectPeek(tokColon)

	p.next()
	els := p.parseExpression(precLowest)

	return &ast.Cond{Range: p.rangeOf(left), Cond: left, Then: then, Else: els}
}

func (p *parser) parseAssign(left ast.Expr) ast.Expr {
	op := ast.AssignSet
	if p.cur().typ == tokCoalesce {
		op = ast.AssignCoalesce
	}

	p.next()
	value := p.parseExpression(precLowest)

	return &ast.Assign{Range: p.rangeOf(left), Op: op, Target: left, Value: value}
}
