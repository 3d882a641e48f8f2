package ast

import (
	"fmt"

	"github.com/arrlang/arrlang/internal/lexer"
)

// ExprStmt is an expression evaluated for its value and/or side effect; as
// the last statement of a Block it supplies the block's value.
type ExprStmt struct {
	Token      lexer.Token
	Expression Expression
}

func (*ExprStmt) statementNode()         {}
func (e *ExprStmt) TokenLiteral() string { return e.Token.Literal }
func (e *ExprStmt) Pos() lexer.Position  { return e.Token.Pos }
func (e *ExprStmt) String() string       { return e.Expression.String() + ";" }

// Assignment writes a new value into an lvalue: a bare variable name or a
// field projection. It has no value of its own (the checker types it unit).
type Assignment struct {
	Token  lexer.Token
	Target Expression // *VarRef or *FieldRef
	Value  Expression
}

func (*Assignment) statementNode()         {}
func (a *Assignment) TokenLiteral() string { return a.Token.Literal }
func (a *Assignment) Pos() lexer.Position  { return a.Token.Pos }
func (a *Assignment) String() string {
	return fmt.Sprintf("%s = %s;", a.Target.String(), a.Value.String())
}

// WhileLoop repeatedly evaluates Body while Condition is true. It has no
// value of its own.
type WhileLoop struct {
	Token     lexer.Token
	Condition Expression
	Body      *BlockExpr
}

func (*WhileLoop) statementNode()         {}
func (w *WhileLoop) TokenLiteral() string { return w.Token.Literal }
func (w *WhileLoop) Pos() lexer.Position  { return w.Token.Pos }
func (w *WhileLoop) String() string {
	return fmt.Sprintf("while %s %s", w.Condition.String(), w.Body.String())
}

// DeclStmt wraps a Declaration so it can appear in statement position
// inside a block (a local var/function/record declaration nested in a
// function body).
type DeclStmt struct {
	Decl Declaration
}

func (*DeclStmt) statementNode()         {}
func (d *DeclStmt) TokenLiteral() string { return d.Decl.TokenLiteral() }
func (d *DeclStmt) Pos() lexer.Position  { return d.Decl.Pos() }
func (d *DeclStmt) String() string       { return d.Decl.String() }
