package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestRunScriptReportsParseErrors(t *testing.T) {
	runEvalExpr = "int x = ;"
	defer func() { runEvalExpr = "" }()

	if err := runScript(nil, nil); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestRunScriptExecutesPrintBuiltin(t *testing.T) {
	runEvalExpr = `
int x = 1 + 2;
unit r = print(x);
`
	defer func() { runEvalExpr = "" }()

	out := captureStdout(t, func() {
		if err := runScript(nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	if out != "3\n" {
		t.Errorf("output = %q, want %q", out, "3\n")
	}
}
