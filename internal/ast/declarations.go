package ast

import (
	"bytes"
	"fmt"

	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/types"
)

// VarDecl introduces a variable: `int x = 1;` or `int x;` (declared type
// only, initializer required to be absent only when a type is given).
type VarDecl struct {
	Token        lexer.Token
	Name         string
	DeclaredType TypeExpr // nil if the declaration relies entirely on inference
	Mutable      bool
	Initializer  Expression // nil if absent
	ResolvedType types.Type
}

func (*VarDecl) statementNode()         {}
func (*VarDecl) declarationNode()       {}
func (v *VarDecl) TokenLiteral() string { return v.Token.Literal }
func (v *VarDecl) Pos() lexer.Position  { return v.Token.Pos }
func (v *VarDecl) String() string {
	var buf bytes.Buffer
	if v.DeclaredType != nil {
		buf.WriteString(v.DeclaredType.String())
		buf.WriteString(" ")
	}
	buf.WriteString(v.Name)
	if v.Initializer != nil {
		buf.WriteString(" = ")
		buf.WriteString(v.Initializer.String())
	}
	buf.WriteString(";")
	return buf.String()
}

// FunctionDef is a named, top-level or nested function declaration. Its
// call frames close over the environment in which it was declared.
type FunctionDef struct {
	Token        lexer.Token
	Name         string
	Params       []Param
	ReturnType   TypeExpr
	Body         *BlockExpr
	ResolvedType types.Type
}

func (*FunctionDef) statementNode()         {}
func (*FunctionDef) declarationNode()       {}
func (f *FunctionDef) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDef) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionDef) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "fn %s(", f.Name)
	for i, p := range f.Params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Name)
		if p.Type != nil {
			buf.WriteString(": ")
			buf.WriteString(p.Type.String())
		}
	}
	buf.WriteString(")")
	if f.ReturnType != nil {
		buf.WriteString(" -> ")
		buf.WriteString(f.ReturnType.String())
	}
	buf.WriteString(" ")
	buf.WriteString(f.Body.String())
	return buf.String()
}

// RecordField is one named, typed field in a record declaration.
type RecordField struct {
	Name string
	Type TypeExpr
}

// RecordTypeDecl declares a named record schema: `Point { int x; int y; }`.
type RecordTypeDecl struct {
	Token        lexer.Token
	Name         string
	Fields       []RecordField
	ResolvedType types.Type
}

func (*RecordTypeDecl) statementNode()         {}
func (*RecordTypeDecl) declarationNode()       {}
func (r *RecordTypeDecl) TokenLiteral() string { return r.Token.Literal }
func (r *RecordTypeDecl) Pos() lexer.Position  { return r.Token.Pos }
func (r *RecordTypeDecl) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "record %s {", r.Name)
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %s", f.Name, f.Type.String())
	}
	buf.WriteString("}")
	return buf.String()
}
