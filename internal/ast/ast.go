// Package ast defines the syntax tree produced by the parser and annotated
// in place by the semantic analyzer. Every Expression carries a types.Type
// slot (the zero Type, with a nil Base, until annotation runs); each
// Declaration records its own ResolvedType; other Statements carry no type.
package ast

import (
	"bytes"
	"strings"

	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/types"
)

// Node is the universal interface implemented by every tree node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is a Node that produces a value and carries a resolved type
// once the annotator has run.
type Expression interface {
	Node
	expressionNode()
	GetType() types.Type
	SetType(types.Type)
}

// Statement is a Node executed for effect.
type Statement interface {
	Node
	statementNode()
}

// Declaration is a Statement that introduces a new binding into scope.
type Declaration interface {
	Statement
	declarationNode()
}

// typedBase is embedded by every Expression implementation to provide the
// GetType/SetType pair without repeating it on each node type.
type typedBase struct {
	Type types.Type
}

func (t *typedBase) GetType() types.Type  { return t.Type }
func (t *typedBase) SetType(typ types.Type) { t.Type = typ }

// Program is the root node: an ordered list of top-level declarations.
type Program struct {
	Declarations []Declaration
}

func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var buf bytes.Buffer
	for _, d := range p.Declarations {
		buf.WriteString(d.String())
		buf.WriteString("\n")
	}
	return buf.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// joinStrings renders a slice of Nodes as a comma-separated String() list.
func joinStrings(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
