package treetext

import "fmt"

// tokenType represents the type of a token.
type tokenType string

// token is a single lexeme with its byte extent in the source.
type token struct {
	typ      tokenType
	literal  string
	startPos int // 0-based byte offset where the token starts
	endPos   int // 0-based byte offset after the token ends
}

const (
	tokIllegal tokenType = "ILLEGAL"
	tokEOF     tokenType = "EOF"

	tokIdent  tokenType = "IDENT"
	tokInt    tokenType = "INT"
	tokString tokenType = "STRING"

	tokNull  tokenType = "null"
	tokTrue  tokenType = "true"
	tokFalse tokenType = "false"

	tokIf     tokenType = "if"
	tokElse   tokenType = "else"
	tokWhile  tokenType = "while"
	tokDo     tokenType = "do"
	tokFor    tokenType = "for"
	tokReturn tokenType = "return"
	tokThrow  tokenType = "throw"

	tokAssign   tokenType = "="
	tokCoalesce tokenType = "??="
	tokArrow    tokenType = "=>"
	tokBang     tokenType = "!"
	tokDot      tokenType = "."
	tokQDot     tokenType = "?."
	tokQBracket tokenType = "?["
	tokQuestion tokenType = "?"
	tokColon    tokenType = ":"

	tokEQ  tokenType = "=="
	tokNEQ tokenType = "!="
	tokLT  tokenType = "<"
	tokLTE tokenType = "<="
	tokGT  tokenType = ">"
	tokGTE tokenType = ">="

	tokAnd tokenType = "&&"
	tokOr  tokenType = "||"

	tokComma     tokenType = ","
	tokSemicolon tokenType = ";"
	tokLParen    tokenType = "("
	tokRParen    tokenType = ")"
	tokLBrace    tokenType = "{"
	tokRBrace    tokenType = "}"
	tokLBracket  tokenType = "["
	tokRBracket  tokenType = "]"
)

var keywords = map[string]tokenType{
	"null":   tokNull,
	"true":   tokTrue,
	"false":  tokFalse,
	"if":     tokIf,
	"else":   tokElse,
	"while":  tokWhile,
	"do":     tokDo,
	"for":    tokFor,
	"return": tokReturn,
	"throw":  tokThrow,
}

// lex tokenizes the whole input up front; the parser wants arbitrary
// lookahead for lambda detection and a token slice makes that trivial.
func lex(src string) ([]token, error) {
	var toks []token
	pos := 0

	emit := func(typ tokenType, start, end int) {
		toks = append(toks, token{
			typ:      typ,
			literal:  src[start:end],
			startPos: start,
			endPos:   end,
		})
	}

	for pos < len(src) {
		c := src[pos]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			pos++
			continue

		case c == '/' && pos+1 < len(src) && src[pos+1] == '/':
			for pos < len(src) && src[pos] != '\n' {
				pos++
			}
			continue

		case isIdentStart(c):
			start := pos
			for pos < len(src) && isIdentPart(src[pos]) {
				pos++
			}
			word := src[start:pos]
			if kw, ok := keywords[word]; ok {
				emit(kw, start, pos)
			} else {
				emit(tokIdent, start, pos)
			}
			continue

		case c >= '0' && c <= '9':
			start := pos
			for pos < len(src) && src[pos] >= '0' && src[pos] <= '9' {
				pos++
			}
			emit(tokInt, start, pos)
			continue

		case c == '"':
			start := pos
			pos++
			for pos < len(src) && src[pos] != '"' {
				pos++
			}
			if pos >= len(src) {
				return nil, fmt.Errorf("offset %d: unterminated string", start)
			}
			pos++
			emit(tokString, start, pos)
			continue
		}

		start := pos
		two := ""
		if pos+1 < len(src) {
			two = src[pos : pos+2]
		}
		three := ""
		if pos+2 < len(src) {
			three = src[pos : pos+3]
		}

		var typ tokenType
		switch {
		case three == "??=":
			typ, pos = tokCoalesce, pos+3
		case two == "?.":
			typ, pos = tokQDot, pos+2
		case two == "?[":
			typ, pos = tokQBracket, pos+2
		case two == "==":
			typ, pos = tokEQ, pos+2
		case two == "!=":
			typ, pos = tokNEQ, pos+2
		case two == "<=":
			typ, pos = tokLTE, pos+2
		case two == ">=":
			typ, pos = tokGTE, pos+2
		case two == "&&":
			typ, pos = tokAnd, pos+2
		case two == "||":
			typ, pos = tokOr, pos+2
		case two == "=>":
			typ, pos = tokArrow, pos+2
		case c == '=':
			typ, pos = tokAssign, pos+1
		case c == '!':
			typ, pos = tokBang, pos+1
		case c == '?':
			typ, pos = tokQuestion, pos+1
		case c == '.':
			typ, pos = tokDot, pos+1
		case c == ':':
			typ, pos = tokColon, pos+1
		case c == '<':
			typ, pos = tokLT, pos+1
		case c == '>':
			typ, pos = tokGT, pos+1
		case c == ',':
			typ, pos = tokComma, pos+1
		case c == ';':
			typ, pos = tokSemicolon, pos+1
		case c == '(':
			typ, pos = tokLParen, pos+1
		case c == ')':
			typ, pos = tokRParen, pos+1
		case c == '{':
			typ, pos = tokLBrace, pos+1
		case c == '}':
			typ, pos = tokRBrace, pos+1
		case c == '[':
			typ, pos = tokLBracket, pos+1
		case c == ']':
			typ, pos = tokRBracket, pos+1
		default:
			return nil, fmt.Errorf("offset %d: unexpected character %q", pos, c)
		}

		emit(typ, start, pos)
	}

	toks = append(toks, token{typ: tokEOF, startPos: len(src), endPos: len(src)})

	return toks, nil
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
