package semantic

import (
	"testing"

	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/parser"
)

func analyze(t *testing.T, input string, opts ...Option) (*ast.Program, []*TypeError) {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parser errors: %v", p.Errors())
	}
	a := NewAnalyzer(opts...)
	errs := a.Analyze(prog)
	return prog, errs
}

func TestVarDeclInferredType(t *testing.T) {
	prog, errs := analyze(t, `int x = 1 + 2;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	decl := prog.Declarations[0].(*ast.VarDecl)
	if decl.ResolvedType.String() != "int" {
		t.Errorf("resolved type = %s, want int", decl.ResolvedType.String())
	}
}

func TestVarDeclTypeMismatchIsError(t *testing.T) {
	_, errs := analyze(t, `int x = 1.5;`)
	if len(errs) == 0 {
		t.Fatal("expected a type error for int x = 1.5;")
	}
}

func TestRecursiveFunctionTypeChecks(t *testing.T) {
	_, errs := analyze(t, `
int fact(int n) {
  return if (n == 0) { 1; } else { n * fact(n - 1); };
}
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestBroadcastingAcceptsSingleExtraRank(t *testing.T) {
	_, errs := analyze(t, `
int inc(int n) {
  return n + 1;
}
int[1] xs = {1, 2, 3};
int[1] ys = inc(xs);
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestBroadcastingRejectsIncompatibleExtraRanks(t *testing.T) {
	_, errs := analyze(t, `
int add(int a, int b) {
  return a + b;
}
int[1] xs = {1, 2};
int[][] ys = {{1, 2}, {3, 4}};
int[1] zs = add(xs, ys);
`)
	if len(errs) == 0 {
		t.Fatal("expected an error for incompatible extra ranks")
	}
}

func TestFieldRefAddsRecordDimension(t *testing.T) {
	prog, errs := analyze(t, `
Point { int x; int y; }
Point[1] pts = {Point{x: 1, y: 2}, Point{x: 3, y: 4}};
int[1] xs = pts.x;
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	_ = prog
}

func TestStrictRecordsRejectsUnknownField(t *testing.T) {
	_, errs := analyze(t, `
Point { int x; int y; }
Point p = Point{x: 1, y: 2, z: 3};
`, WithStrictRecords(true))
	if len(errs) == 0 {
		t.Fatal("expected a strict-records error for the extra field z")
	}
}

func TestLenientRecordsIgnoreUnknownField(t *testing.T) {
	_, errs := analyze(t, `
Point { int x; int y; }
Point p = Point{x: 1, y: 2, z: 3};
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors in lenient mode: %v", errs)
	}
}

func TestIfBranchTypeMismatchIsError(t *testing.T) {
	_, errs := analyze(t, `
int r = if (true) { 1; } else { 1.0; };
`)
	if len(errs) == 0 {
		t.Fatal("expected an error for mismatched if branches")
	}
}
