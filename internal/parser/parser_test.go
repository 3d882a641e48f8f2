package parser

import (
	"testing"

	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parser errors: %v", p.Errors())
	}
	return prog
}

func TestParseVarDecl(t *testing.T) {
	prog := parseProgram(t, `int x = 1 + 2;`)
	if len(prog.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Declarations))
	}
	decl, ok := prog.Declarations[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", prog.Declarations[0])
	}
	if decl.Name != "x" {
		t.Errorf("name = %q, want x", decl.Name)
	}
	op, ok := decl.Initializer.(*ast.OperatorCall)
	if !ok || op.Operator != "+" {
		t.Errorf("initializer = %#v, want OperatorCall(+)", decl.Initializer)
	}
}

func TestParseFunctionDef(t *testing.T) {
	prog := parseProgram(t, `int add(int a, int b) { return a + b; }`)
	fn, ok := prog.Declarations[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("expected *ast.FunctionDef, got %T", prog.Declarations[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("fn = %+v", fn)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fn.Body.Statements))
	}
}

func TestParseRecordTypeDeclAndLiteral(t *testing.T) {
	prog := parseProgram(t, `
Point { int x; int y; }
Point p = Point{x: 1, y: 2};
`)
	if len(prog.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(prog.Declarations))
	}
	rec, ok := prog.Declarations[0].(*ast.RecordTypeDecl)
	if !ok || rec.Name != "Point" || len(rec.Fields) != 2 {
		t.Fatalf("record decl = %#v", prog.Declarations[0])
	}
	v, ok := prog.Declarations[1].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected VarDecl, got %T", prog.Declarations[1])
	}
	lit, ok := v.Initializer.(*ast.RecordLiteral)
	if !ok || lit.RecordName != "Point" || len(lit.FieldOrder) != 2 {
		t.Fatalf("initializer = %#v", v.Initializer)
	}
}

func TestParseIfWhileLambda(t *testing.T) {
	prog := parseProgram(t, `
int f(int n) {
  while (n < 10) {
    n = n + 1;
  }
  return if (n == 10) { 1; } else { 0; };
}
`)
	fn := prog.Declarations[0].(*ast.FunctionDef)
	if _, ok := fn.Body.Statements[0].(*ast.WhileLoop); !ok {
		t.Fatalf("statement 0 = %T, want *ast.WhileLoop", fn.Body.Statements[0])
	}
	exprStmt, ok := fn.Body.Statements[1].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("statement 1 = %T, want *ast.ExprStmt", fn.Body.Statements[1])
	}
	if _, ok := exprStmt.Expression.(*ast.IfExpr); !ok {
		t.Fatalf("expression = %T, want *ast.IfExpr", exprStmt.Expression)
	}
}

func TestParseLambdaLiteral(t *testing.T) {
	prog := parseProgram(t, `int r = (int x) -> x + 1;`)
	decl := prog.Declarations[0].(*ast.VarDecl)
	lambda, ok := decl.Initializer.(*ast.LambdaLiteral)
	if !ok {
		t.Fatalf("initializer = %T, want *ast.LambdaLiteral", decl.Initializer)
	}
	if len(lambda.Params) != 1 || lambda.Params[0].Name != "x" {
		t.Fatalf("params = %+v", lambda.Params)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"int r = 1 + 2 * 3;", "(1 + (2 * 3))"},
		{"int r = (1 + 2) * 3;", "((1 + 2) * 3)"},
		{"bool r = a && b || c;", "((a && b) || c)"},
		{"int r = -a + b;", "((-a) + b)"},
	}

	for _, tt := range tests {
		prog := parseProgram(t, tt.input)
		decl := prog.Declarations[0].(*ast.VarDecl)
		if got := decl.Initializer.String(); got != tt.want {
			t.Errorf("%s => %s, want %s", tt.input, got, tt.want)
		}
	}
}
