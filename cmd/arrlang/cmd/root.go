// Package cmd implements arrlang's cobra subcommand tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arrlang/arrlang/internal/arrayengine"
	"github.com/arrlang/arrlang/internal/config"
)

var (
	traceFlag   bool
	backendFlag string
	noColorFlag bool
	cfg         config.Config
	traceID     string
)

var rootCmd = &cobra.Command{
	Use:   "arrlang",
	Short: "arrlang is a small array-oriented, statically-typed expression language",
	Long: `arrlang compiles and runs programs written in a small, statically-typed,
array-oriented expression language: source text is lexed, parsed, type-checked,
and tree-walk interpreted over a pluggable dense or nested array backend.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(".arrlang.yaml")
		if err != nil {
			return fmt.Errorf("loading .arrlang.yaml: %w", err)
		}
		cfg = loaded
		if backendFlag != "" {
			cfg.Backend = backendFlag
		}
		traceID = uuid.NewString()
		if traceFlag {
			fmt.Fprintf(os.Stderr, "[trace %s] %s\n", traceID, cmd.CommandPath())
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "print a uuid-tagged execution trace to stderr")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "array backend: dense or nested (overrides .arrlang.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored diagnostic output")
}

// engineFor resolves the configured backend name to its Engine.
func engineFor(name string) arrayengine.Engine {
	if name == "nested" {
		return arrayengine.NestedEngine{}
	}
	return arrayengine.DenseEngine{}
}

// terminalWidth reports the column width print() should wrap long array
// renderings to, or 0 when stdout isn't a terminal (a pipe, a redirect, or
// a test's captured os.Stdout) and wrapping would just mangle the output.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

func readInput(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("provide a file path or -e/--eval")
}
