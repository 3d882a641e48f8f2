package cmd

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain lets go-snaps prune obsolete snapshots after the package's tests
// finish, the same cleanup hook the corpus wires for snapshot-based suites.
func TestMain(m *testing.M) {
	snaps.TestMain(m)
}

func TestRunScriptOutputSnapshots(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"arithmetic", `int x = (2 + 3) * 4; unit r = print(x);`},
		{"array-broadcast", `float[] a = {1.0, 2.0, 3.0}; unit r = print(a + 10.0);`},
		{"record-field", `Point { float x; float y; } Point p = Point{x: 1.0, y: 2.0}; unit r = print(p.x);`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runEvalExpr = tc.src
			defer func() { runEvalExpr = "" }()

			out := captureStdout(t, func() {
				if err := runScript(nil, nil); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			})
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_stdout", tc.name), out)
		})
	}
}
