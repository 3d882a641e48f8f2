package ast

import (
	"fmt"

	"github.com/arrlang/arrlang/internal/lexer"
)

// TypeExpr is the syntactic rendering of a declared type: a base name
// (primitive keyword or record identifier) plus a bracket-counted array
// dimension, e.g. `int`, `float[2]`, `Point[1]`.
type TypeExpr interface {
	Node
	typeExprNode()
}

// NamedTypeExpr is the only TypeExpr shape the grammar produces: a base
// type name and how many pairs of `[]` followed it.
type NamedTypeExpr struct {
	Token     lexer.Token
	Name      string
	Dimension int
}

func (*NamedTypeExpr) typeExprNode()          {}
func (t *NamedTypeExpr) TokenLiteral() string { return t.Token.Literal }
func (t *NamedTypeExpr) Pos() lexer.Position  { return t.Token.Pos }
func (t *NamedTypeExpr) String() string {
	if t.Dimension == 0 {
		return t.Name
	}
	return fmt.Sprintf("%s[%d]", t.Name, t.Dimension)
}
