package parser

import (
	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/lexer"
)

// parseDeclaration dispatches on the lookahead to one of the three
// declaration shapes: a record type (`Point { ... }`), a function
// (`int add(int a, int b) { ... }`), or a variable (`int x = 1;`).
func (p *Parser) parseDeclaration() ast.Declaration {
	if p.curTokenIs(lexer.IDENT) && p.peekTokenIs(lexer.LBRACE) && p.isRecordTypeDeclStart() {
		return p.parseRecordTypeDecl()
	}

	if !p.isTypeStart() {
		p.addError("expected a declaration", p.cur.Pos)
		return nil
	}

	typeExpr := p.parseTypeExpr()
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	nameTok := p.cur
	name := p.cur.Literal

	if p.peekTokenIs(lexer.LPAREN) {
		p.nextToken()
		return p.parseFunctionDef(nameTok, name, typeExpr)
	}
	return p.parseVarDeclRest(nameTok, name, typeExpr)
}

// parseVarDeclRest parses the tail of a variable declaration after its
// type and name have already been consumed: an optional initializer and
// the terminating semicolon.
func (p *Parser) parseVarDeclRest(nameTok lexer.Token, name string, typeExpr ast.TypeExpr) *ast.VarDecl {
	decl := &ast.VarDecl{Token: nameTok, Name: name, DeclaredType: typeExpr, Mutable: true}

	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken() // consume '='
		p.nextToken() // move to the initializer's first token
		if p.curTokenIs(lexer.LBRACE) {
			decl.Initializer = p.parseArrayLiteral()
		} else {
			decl.Initializer = p.parseExpression(LOWEST)
		}
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return decl
	}
	return decl
}

// parseFunctionDef parses a named function's parameter list and body; cur
// is the '(' when this is called.
func (p *Parser) parseFunctionDef(nameTok lexer.Token, name string, returnType ast.TypeExpr) *ast.FunctionDef {
	def := &ast.FunctionDef{Token: nameTok, Name: name, ReturnType: returnType}
	def.Params = p.parseParamList()

	if !p.expectPeek(lexer.LBRACE) {
		return def
	}
	def.Body = p.parseBlockStatements()
	return def
}

// parseParamList parses a parenthesized, comma-separated parameter list:
// cur is '(' on entry, cur is ')' on exit.
func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param

	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	for {
		ptype := p.parseTypeExpr()
		if !p.expectPeek(lexer.IDENT) {
			break
		}
		params = append(params, ast.Param{Name: p.cur.Literal, Type: ptype})

		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}

	if !p.expectPeek(lexer.RPAREN) {
		return params
	}
	return params
}

// parseRecordTypeDecl parses `Name { type field; ... }`.
func (p *Parser) parseRecordTypeDecl() *ast.RecordTypeDecl {
	tok := p.cur
	decl := &ast.RecordTypeDecl{Token: tok, Name: p.cur.Literal}

	if !p.expectPeek(lexer.LBRACE) {
		return decl
	}

	for !p.peekTokenIs(lexer.RBRACE) && !p.peekTokenIs(lexer.EOF) {
		p.nextToken()
		ftype := p.parseTypeExpr()
		if !p.expectPeek(lexer.IDENT) {
			break
		}
		fname := p.cur.Literal
		decl.Fields = append(decl.Fields, ast.RecordField{Name: fname, Type: ftype})
		if !p.expectPeek(lexer.SEMICOLON) {
			break
		}
	}

	p.expectPeek(lexer.RBRACE)
	return decl
}
