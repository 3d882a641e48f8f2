// Command arrlang is the CLI front end for the language implemented by
// this module's internal packages: lex, parse, check, run, and repl.
package main

import (
	"os"

	"github.com/arrlang/arrlang/cmd/arrlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
