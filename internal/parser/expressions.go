package parser

import (
	"strconv"
	"strings"

	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/types"
)

// parseExpression is the precedence-climbing core: it parses one prefix
// expression, then repeatedly extends it with infix/postfix operators as
// long as their precedence exceeds minPrecedence.
func (p *Parser) parseExpression(minPrecedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.cur.Type]
	if !ok {
		p.noPrefixParseFnError(p.cur.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON) && minPrecedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peek.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	tok := p.cur
	if p.peekTokenIs(lexer.LBRACE) {
		return p.parseRecordLiteral(tok)
	}
	return &ast.VarRef{Token: tok, Name: tok.Literal}
}

func (p *Parser) parseRecordLiteral(nameTok lexer.Token) ast.Expression {
	lit := &ast.RecordLiteral{Token: nameTok, RecordName: nameTok.Literal, Fields: map[string]ast.Expression{}}
	if !p.expectPeek(lexer.LBRACE) {
		return lit
	}

	if p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()
		return lit
	}

	p.nextToken()
	for {
		if !p.curTokenIs(lexer.IDENT) {
			p.addError("expected a field name", p.cur.Pos)
			break
		}
		fname := p.cur.Literal
		if !p.expectPeek(lexer.COLON) {
			break
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		lit.FieldOrder = append(lit.FieldOrder, fname)
		lit.Fields[fname] = value

		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}

	p.expectPeek(lexer.RBRACE)
	return lit
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.addError("invalid integer literal "+tok.Literal, tok.Pos)
	}
	return &ast.PrimitiveLiteral{Token: tok, Kind: types.KindInt, IntVal: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addError("invalid float literal "+tok.Literal, tok.Pos)
	}
	return &ast.PrimitiveLiteral{Token: tok, Kind: types.KindFloat, FloatVal: v}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	tok := p.cur
	return &ast.PrimitiveLiteral{Token: tok, Kind: types.KindBool, BoolVal: tok.Type == lexer.TRUE}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	tok := p.cur
	raw := strings.TrimSuffix(strings.TrimPrefix(tok.Literal, "'"), "'")
	r := unescapeOne(raw)
	return &ast.PrimitiveLiteral{Token: tok, Kind: types.KindChar, CharVal: r}
}

// parseStringLiteral desugars a string literal into a char[1] ArrayLiteral,
// since spec.md's type system has no dedicated string type.
func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.cur
	raw := strings.TrimSuffix(strings.TrimPrefix(tok.Literal, "\""), "\"")
	runes := unescapeAll(raw)
	elems := make([]ast.Expression, len(runes))
	for i, r := range runes {
		elems[i] = &ast.PrimitiveLiteral{Token: tok, Kind: types.KindChar, CharVal: r}
	}
	return &ast.ArrayLiteral{Token: tok, Elements: elems}
}

func unescapeAll(s string) []rune {
	var out []rune
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			out = append(out, unescapeEscape(runes[i+1]))
			i++
			continue
		}
		out = append(out, runes[i])
	}
	return out
}

func unescapeOne(s string) rune {
	runes := unescapeAll(s)
	if len(runes) == 0 {
		return 0
	}
	return runes[0]
}

func unescapeEscape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return r
	}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.cur
	op := tok.Literal
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.OperatorCall{Token: tok, Operator: op, Operands: []ast.Expression{operand}}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.cur
	op := tok.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.OperatorCall{Token: tok, Operator: op, Operands: []ast.Expression{left, right}}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.cur
	call := &ast.FunctionCall{Token: tok, Callee: callee}
	call.Args = p.parseExpressionList(lexer.RPAREN)
	return call
}

func (p *Parser) parseIndexExpression(arr ast.Expression) ast.Expression {
	tok := p.cur
	p.nextToken()
	idx := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACK) {
		return arr
	}
	return &ast.OperatorCall{Token: tok, Operator: "[]", Operands: []ast.Expression{arr, idx}}
}

func (p *Parser) parseFieldRef(record ast.Expression) ast.Expression {
	tok := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return record
	}
	return &ast.FieldRef{Token: tok, Record: record, Field: p.cur.Literal}
}

// parseExpressionList parses a comma-separated list of expressions up to
// and including the closing token; cur is the opening token on entry.
func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	var list []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	p.expectPeek(end)
	return list
}

// parseArrayLiteral parses `{ e1, e2, ... }` or `{}`. It is the prefix
// parser for '{', so array literals can appear anywhere an expression can:
// as an initializer, a nested element, or a call argument (`zeros({2, 2})`).
func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.cur
	elems := p.parseExpressionList(lexer.RBRACE)
	return &ast.ArrayLiteral{Token: tok, Elements: elems}
}

func (p *Parser) parseIfExpression() ast.Expression {
	tok := p.cur
	p.nextToken()
	cond := p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.LBRACE) {
		return &ast.IfExpr{Token: tok, Condition: cond}
	}
	thenBlock := p.parseBlockStatements()

	ifExpr := &ast.IfExpr{Token: tok, Condition: cond, Then: thenBlock}

	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken()
		if !p.expectPeek(lexer.LBRACE) {
			return ifExpr
		}
		ifExpr.Else = p.parseBlockStatements()
	} else {
		ifExpr.Else = &ast.BlockExpr{Token: tok}
	}

	return ifExpr
}

// parseBlockStatements parses `{ stmt* }`; cur is '{' on entry, cur is '}'
// on exit.
func (p *Parser) parseBlockStatements() *ast.BlockExpr {
	block := &ast.BlockExpr{Token: p.cur}
	p.nextToken()

	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		before := p.cur
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
		if p.cur == before {
			p.nextToken()
		}
	}

	return block
}

// parseParenOrLambda disambiguates `(expr)` from `(params) -> body` by
// scanning ahead for a matching ')' immediately followed by '->'.
func (p *Parser) parseParenOrLambda() ast.Expression {
	if p.looksLikeLambda() {
		return p.parseLambdaLiteral()
	}
	return p.parseGroupedExpression()
}

func (p *Parser) looksLikeLambda() bool {
	depth := 1 // cur is the opening '('
	for i := 0; ; i++ {
		tok := p.peekAt(i)
		switch tok.Type {
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			depth--
			if depth == 0 {
				return p.peekAt(i + 1).Type == lexer.ARROW
			}
		case lexer.EOF:
			return false
		}
	}
}

// peekAt returns the token i positions past cur (peekAt(0) == p.peek).
func (p *Parser) peekAt(i int) lexer.Token {
	if i == 0 {
		return p.peek
	}
	return p.l.Peek(i - 1)
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return expr
	}
	return expr
}

func (p *Parser) parseLambdaLiteral() ast.Expression {
	tok := p.cur
	lambda := &ast.LambdaLiteral{Token: tok}
	lambda.Params = p.parseParamList()

	if !p.expectPeek(lexer.ARROW) {
		return lambda
	}
	p.nextToken()

	if p.curTokenIs(lexer.LBRACE) {
		lambda.Body = p.parseBlockStatements()
	} else {
		expr := p.parseExpression(LOWEST)
		lambda.Body = &ast.BlockExpr{Token: tok, Statements: []ast.Statement{&ast.ExprStmt{Token: tok, Expression: expr}}}
	}
	return lambda
}
