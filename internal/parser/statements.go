package parser

import (
	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/lexer"
)

// parseStatement parses one statement inside a block: a nested
// declaration, a while loop, an assignment, or a bare expression statement.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curTokenIs(lexer.WHILE):
		return p.parseWhileLoop()
	case p.curTokenIs(lexer.RETURN):
		return p.parseReturnStatement()
	case p.curTokenIs(lexer.IDENT) && p.peekTokenIs(lexer.LBRACE) && p.isRecordTypeDeclStart():
		decl := p.parseRecordTypeDecl()
		return &ast.DeclStmt{Decl: decl}
	case p.isTypeStart() && p.startsDeclaration():
		decl := p.parseDeclaration()
		if decl == nil {
			return nil
		}
		return &ast.DeclStmt{Decl: decl}
	default:
		return p.parseExpressionOrAssignment()
	}
}

// startsDeclaration reports whether the type-looking token at cur actually
// begins a declaration (type name followed by another identifier) rather
// than a variable reference used in an expression statement (e.g. a lone
// record-typed value used as a statement, which the grammar doesn't
// support, or a primitive-keyword-led expression, which also doesn't
// exist) — primitive keywords always start a declaration, and a bare
// identifier starts one only when immediately followed by another
// identifier (the variable's name).
func (p *Parser) startsDeclaration() bool {
	if p.cur.Type != lexer.IDENT {
		return true
	}
	return p.peekTokenIs(lexer.IDENT)
}

func (p *Parser) parseWhileLoop() *ast.WhileLoop {
	tok := p.cur
	p.nextToken()
	cond := p.parseExpression(LOWEST)

	loop := &ast.WhileLoop{Token: tok, Condition: cond}
	if !p.expectPeek(lexer.LBRACE) {
		return loop
	}
	loop.Body = p.parseBlockStatements()
	return loop
}

// parseReturnStatement lowers `return expr;` to the expression statement
// it wraps: this language has no call-stack unwinding, so an explicit
// return is equivalent to the expression simply being the last one
// evaluated in its enclosing block.
func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.cur
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	stmt := &ast.ExprStmt{Token: tok, Expression: expr}
	p.expectPeek(lexer.SEMICOLON)
	return stmt
}

// parseExpressionOrAssignment parses an expression and, if it's followed
// by '=', turns it into an Assignment statement instead of an ExprStmt.
func (p *Parser) parseExpressionOrAssignment() ast.Statement {
	tok := p.cur
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken() // consume '='
		p.nextToken()
		value := p.parseExpression(LOWEST)
		p.expectPeek(lexer.SEMICOLON)
		return &ast.Assignment{Token: tok, Target: expr, Value: value}
	}

	p.expectPeek(lexer.SEMICOLON)
	return &ast.ExprStmt{Token: tok, Expression: expr}
}
