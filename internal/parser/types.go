package parser

import (
	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/lexer"
)

// typeKeywordName maps a primitive type keyword token to its spelling.
var typeKeywordName = map[lexer.TokenType]string{
	lexer.INT_KW:   "int",
	lexer.FLOAT_KW: "float",
	lexer.CHAR_KW:  "char",
	lexer.BOOL_KW:  "bool",
	lexer.UNIT_KW:  "unit",
}

// parseTypeExpr parses a base type name (primitive keyword or a record
// identifier) followed by zero or more `[]` or `[N]` dimension markers. The
// element count inside brackets, if present, is consumed but not retained:
// spec.md's Type model tracks rank only, not per-axis sizes.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	tok := p.cur
	var name string
	if kw, ok := typeKeywordName[p.cur.Type]; ok {
		name = kw
	} else if p.curTokenIs(lexer.IDENT) {
		name = p.cur.Literal
	} else {
		p.addError("expected a type name", p.cur.Pos)
		return &ast.NamedTypeExpr{Token: tok, Name: "<error>"}
	}

	dim := 0
	for p.peekTokenIs(lexer.LBRACK) {
		p.nextToken() // consume '['
		if p.peekTokenIs(lexer.INT) {
			p.nextToken() // consume the (unused) size literal
		}
		if !p.expectPeek(lexer.RBRACK) {
			break
		}
		dim++
	}

	return &ast.NamedTypeExpr{Token: tok, Name: name, Dimension: dim}
}
