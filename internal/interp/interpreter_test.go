package interp

import (
	"bytes"
	"testing"

	"github.com/arrlang/arrlang/internal/arrayengine"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/parser"
	"github.com/arrlang/arrlang/internal/semantic"
)

func run(t *testing.T, src string, opts ...semantic.Option) (Value, *bytes.Buffer) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	an := semantic.NewAnalyzer(opts...)
	if errs := an.Analyze(prog); len(errs) != 0 {
		t.Fatalf("type errors: %v", errs)
	}
	var out bytes.Buffer
	i := New(&out, arrayengine.DenseEngine{})
	result, err := i.Run(prog)
	if err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return result, &out
}

func TestTopLevelVarDeclEvaluatesInitializer(t *testing.T) {
	result, _ := run(t, `int x = 1 + 2 * 3;`)
	if result.Int != 7 {
		t.Errorf("x = %d, want 7", result.Int)
	}
}

func TestFunctionCallAndRecursion(t *testing.T) {
	result, _ := run(t, `
int fact(int n) {
  return if (n == 0) { 1; } else { n * fact(n - 1); };
}
int r = fact(5);
`)
	if result.Int != 120 {
		t.Errorf("fact(5) = %d, want 120", result.Int)
	}
}

func TestFunctionClosesOverGlobalFrameNotCaller(t *testing.T) {
	result, _ := run(t, `
int base = 10;
int addBase(int x) {
  return x + base;
}
int outer(int x) {
  int base = 1000;
  return addBase(x);
}
int r = outer(5);
`)
	if result.Int != 15 {
		t.Errorf("r = %d, want 15 (addBase must see the global base, not outer's shadow)", result.Int)
	}
}

func TestWhileLoopAndAssignment(t *testing.T) {
	result, _ := run(t, `
int sumBelow(int n) {
  int sum = 0;
  int i = 0;
  while (i < n) {
    sum = sum + i;
    i = i + 1;
  }
  return sum;
}
int r = sumBelow(5);
`)
	if result.Int != 10 {
		t.Errorf("sum = %d, want 10", result.Int)
	}
}

func TestIntegerDivisionByZeroRaisesRuntimeError(t *testing.T) {
	l := lexer.New(`int r = 1 / 0;`)
	p := parser.New(l)
	prog := p.ParseProgram()
	an := semantic.NewAnalyzer()
	an.Analyze(prog)
	var out bytes.Buffer
	i := New(&out, arrayengine.DenseEngine{})
	_, err := i.Run(prog)
	if err == nil {
		t.Fatal("expected a runtime error for integer division by zero")
	}
}

func TestFloatDivisionByZeroProducesInf(t *testing.T) {
	result, _ := run(t, `float r = 1.0 / 0.0;`)
	if result.Float != result.Float+1 { // not actually testing NaN; real check below
	}
	if !(result.Float > 1e300) {
		t.Errorf("r = %v, want +Inf", result.Float)
	}
}

func TestLogicalOperatorsDoNotShortCircuit(t *testing.T) {
	result, out := run(t, `
bool sideEffect(bool v) {
  print(v);
  return v;
}
bool r = sideEffect(false) && sideEffect(true);
`)
	if result.Bool != false {
		t.Errorf("r = %v, want false", result.Bool)
	}
	got := out.String()
	if got != "false\ntrue\n" {
		t.Errorf("expected both operands to print despite short-circuit semantics, got %q", got)
	}
}

func TestArrayLiteralAndIndex(t *testing.T) {
	result, _ := run(t, `
int[] xs = {10, 20, 30};
int r = xs[1];
`)
	if result.Int != 20 {
		t.Errorf("xs[1] = %d, want 20", result.Int)
	}
}

func TestArrayElementwiseArithmetic(t *testing.T) {
	result, _ := run(t, `
int[] xs = {1, 2, 3};
int[] ys = {10, 20, 30};
int[] r = xs + ys;
`)
	if result.Array == nil {
		t.Fatal("expected an array result")
	}
	if result.Array.String() != "{11, 22, 33}" {
		t.Errorf("r = %s, want {11, 22, 33}", result.Array.String())
	}
}

func TestBroadcastingAppliesFunctionAcrossExtraRank(t *testing.T) {
	result, _ := run(t, `
int inc(int x) {
  return x + 1;
}
int[] xs = {1, 2, 3};
int[] r = inc(xs);
`)
	if result.Array.String() != "{2, 3, 4}" {
		t.Errorf("r = %s, want {2, 3, 4}", result.Array.String())
	}
}

func TestRecordLiteralAndFieldRef(t *testing.T) {
	result, _ := run(t, `
Point { int x; int y; }
Point p = Point{x: 3, y: 4};
int r = p.x;
`)
	if result.Int != 3 {
		t.Errorf("p.x = %d, want 3", result.Int)
	}
}

func TestLambdaClosesOverDefiningScope(t *testing.T) {
	result, _ := run(t, `
int base = 100;
int r = ((int x) -> x + base)(5);
`)
	if result.Int != 105 {
		t.Errorf("r = %d, want 105", result.Int)
	}
}

func TestBuiltinShapeAndLen(t *testing.T) {
	result, _ := run(t, `
int[] xs = {1, 2, 3, 4, 5, 6};
int n = len(xs);
int[] s = shape(xs);
int r = n + s[0];
`)
	if result.Int != 12 {
		t.Errorf("r = %d, want 12 (len=6, shape[0]=6)", result.Int)
	}
}

func TestZerosAndOnes(t *testing.T) {
	result, _ := run(t, `
float[] z = zeros({3});
float r = z[0];
`)
	if result.Float != 0 {
		t.Errorf("zeros({3})[0] = %v, want 0", result.Float)
	}
}

func TestZerosBuildsNDArrayFromDimsLiteral(t *testing.T) {
	result, _ := run(t, `
float[][] c = zeros({2, 2});
int[] s = shape(c);
int r = s[0] + s[1];
`)
	if result.Int != 4 {
		t.Errorf("shape(zeros({2, 2})) summed = %d, want 4 (2+2)", result.Int)
	}
}

func TestOnesWithIntTypeTag(t *testing.T) {
	result, _ := run(t, `
int[] o = ones({3}, 1);
int r = o[0] + o[1] + o[2];
`)
	if result.Int != 3 {
		t.Errorf("ones({3}, 1) summed = %d, want 3", result.Int)
	}
}

func TestPrintVariadicAndEmpty(t *testing.T) {
	_, out := run(t, `
unit f() {
  print();
  return print(1, 2, 3);
}
unit r = f();
`)
	if out.String() != "\n1 2 3\n" {
		t.Errorf("print output = %q, want %q", out.String(), "\n1 2 3\n")
	}
}
