package diagnostics

import (
	"os"
	"strings"
	"testing"

	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/parser"
)

func TestFormatIncludesPositionAndSourceLine(t *testing.T) {
	src := "int x = ;\n"
	l := lexer.New(src)
	p := parser.New(l)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected at least one parse error")
	}

	r := NewRenderer(src, "test.arr", os.Stdout, true)
	out := r.Format(p.Errors()[0])
	if !strings.Contains(out, "test.arr:1:") {
		t.Errorf("output missing file:line header: %q", out)
	}
	if !strings.Contains(out, "int x = ;") {
		t.Errorf("output missing source line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("output missing caret: %q", out)
	}
}

func TestNoColorProducesPlainText(t *testing.T) {
	src := "int x = ;\n"
	l := lexer.New(src)
	p := parser.New(l)
	p.ParseProgram()

	r := NewRenderer(src, "test.arr", os.Stdout, true)
	out := r.Format(p.Errors()[0])
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no ANSI escapes with noColor, got %q", out)
	}
}
