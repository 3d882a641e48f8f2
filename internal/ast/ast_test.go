package ast

import (
	"testing"

	"github.com/arrlang/arrlang/internal/lexer"
)

func TestVarDeclString(t *testing.T) {
	decl := &VarDecl{
		Token:        lexer.Token{Type: lexer.INT_KW, Literal: "int"},
		Name:         "x",
		DeclaredType: &NamedTypeExpr{Token: lexer.Token{Literal: "int"}, Name: "int"},
		Initializer: &PrimitiveLiteral{
			Token:  lexer.Token{Type: lexer.INT, Literal: "5"},
			Kind:   0, // types.KindInt
			IntVal: 5,
		},
	}
	want := "int x = 5;"
	if got := decl.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOperatorCallIndexRendersBrackets(t *testing.T) {
	arr := &VarRef{Token: lexer.Token{Literal: "a"}, Name: "a"}
	idx := &PrimitiveLiteral{Token: lexer.Token{Literal: "0"}, IntVal: 0}
	call := &OperatorCall{
		Token:    lexer.Token{Literal: "["},
		Operator: "[]",
		Operands: []Expression{arr, idx},
	}
	want := "a[0]"
	if got := call.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBlockExprString(t *testing.T) {
	block := &BlockExpr{
		Token: lexer.Token{Literal: "{"},
		Statements: []Statement{
			&ExprStmt{Expression: &VarRef{Name: "x"}},
		},
	}
	got := block.String()
	want := "{\n  x;\n}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestProgramPosFallsBackWhenEmpty(t *testing.T) {
	p := &Program{}
	pos := p.Pos()
	if pos.Line != 1 || pos.Column != 1 {
		t.Errorf("empty Program.Pos() = %+v, want {1 1 0}", pos)
	}
}
