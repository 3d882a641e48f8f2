// Package parser implements the Pratt (precedence-climbing) recursive
// descent parser described by spec.md's grammar and precedence table.
package parser

import (
	"fmt"

	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/lexer"
)

// Operator precedence levels, lowest to highest.
const (
	LOWEST int = iota
	OR
	AND
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
	INDEX
	MEMBER
)

var precedences = map[lexer.TokenType]int{
	lexer.OR_OR:      OR,
	lexer.AND_AND:    AND,
	lexer.EQ:         EQUALS,
	lexer.NOT_EQ:     EQUALS,
	lexer.LESS:       LESSGREATER,
	lexer.GREATER:    LESSGREATER,
	lexer.LESS_EQ:    LESSGREATER,
	lexer.GREATER_EQ: LESSGREATER,
	lexer.PLUS:       SUM,
	lexer.MINUS:      SUM,
	lexer.ASTERISK:   PRODUCT,
	lexer.SLASH:      PRODUCT,
	lexer.PERCENT:    PRODUCT,
	lexer.LPAREN:     CALL,
	lexer.LBRACK:     INDEX,
	lexer.DOT:        MEMBER,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser turns a token stream into an ast.Program, collecting syntax
// errors instead of stopping at the first one.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token

	errors []*ParseError

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New constructs a Parser reading from an already-tokenized Lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:   p.parseIdentifier,
		lexer.INT:     p.parseIntegerLiteral,
		lexer.FLOAT:   p.parseFloatLiteral,
		lexer.STRING:  p.parseStringLiteral,
		lexer.CHAR:    p.parseCharLiteral,
		lexer.TRUE:    p.parseBooleanLiteral,
		lexer.FALSE:   p.parseBooleanLiteral,
		lexer.BANG:    p.parsePrefixExpression,
		lexer.MINUS:   p.parsePrefixExpression,
		lexer.LPAREN:  p.parseParenOrLambda,
		lexer.LBRACE:  p.parseArrayLiteral,
		lexer.IF:      p.parseIfExpression,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:       p.parseInfixExpression,
		lexer.MINUS:      p.parseInfixExpression,
		lexer.ASTERISK:   p.parseInfixExpression,
		lexer.SLASH:      p.parseInfixExpression,
		lexer.PERCENT:    p.parseInfixExpression,
		lexer.EQ:         p.parseInfixExpression,
		lexer.NOT_EQ:     p.parseInfixExpression,
		lexer.LESS:       p.parseInfixExpression,
		lexer.GREATER:    p.parseInfixExpression,
		lexer.LESS_EQ:    p.parseInfixExpression,
		lexer.GREATER_EQ: p.parseInfixExpression,
		lexer.AND_AND:    p.parseInfixExpression,
		lexer.OR_OR:      p.parseInfixExpression,
		lexer.LPAREN:     p.parseCallExpression,
		lexer.LBRACK:     p.parseIndexExpression,
		lexer.DOT:        p.parseFieldRef,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every syntax error recovered during parsing.
func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curTokenIs(tt lexer.TokenType) bool  { return p.cur.Type == tt }
func (p *Parser) peekTokenIs(tt lexer.TokenType) bool { return p.peek.Type == tt }

func (p *Parser) expectPeek(tt lexer.TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekError(tt lexer.TokenType) {
	p.addError(fmt.Sprintf("expected next token to be %s, got %s (%q) instead", tt, p.peek.Type, p.peek.Literal), p.peek.Pos)
}

func (p *Parser) addError(msg string, pos lexer.Position) {
	p.errors = append(p.errors, &ParseError{Message: msg, Position: pos})
}

func (p *Parser) noPrefixParseFnError(tt lexer.TokenType) {
	p.addError(fmt.Sprintf("no prefix parse function for %s found", tt), p.cur.Pos)
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Type]; ok {
		return pr
	}
	return LOWEST
}

// declStart tokens that can start a top-level or nested declaration: the
// primitive type keywords plus a bare identifier (a record type name used
// as a variable's declared type, or a record declaration itself).
func (p *Parser) isTypeStart() bool {
	switch p.cur.Type {
	case lexer.INT_KW, lexer.FLOAT_KW, lexer.CHAR_KW, lexer.BOOL_KW, lexer.UNIT_KW, lexer.IDENT:
		return true
	default:
		return false
	}
}

// isRecordTypeDeclStart distinguishes `Name { type field; ... }` (a record
// type declaration) from `Name { field: value, ... }` (a record literal
// expression), both of which start with IDENT '{'. A declaration's second
// field-list token follows a type name and is never a ':'; a literal's is
// always ':'.
func (p *Parser) isRecordTypeDeclStart() bool {
	first := p.peekAt(1)
	if first.Type == lexer.RBRACE {
		return true
	}
	second := p.peekAt(2)
	return second.Type != lexer.COLON
}

// ParseProgram parses the whole token stream into a Program of top-level
// declarations. After a bad declaration it does not abort the pass: it
// advances one token and tries again, so every following token that cannot
// start a declaration is reported as its own error.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(lexer.EOF) {
		before := p.cur
		decl := p.parseDeclaration()
		if decl != nil {
			program.Declarations = append(program.Declarations, decl)
		}
		p.nextToken()
		if p.cur == before {
			// parseDeclaration made no progress; force it to avoid looping
			// forever on unparseable input.
			p.nextToken()
		}
	}

	return program
}
