package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arrlang/arrlang/internal/diagnostics"
	"github.com/arrlang/arrlang/internal/interp"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/parser"
	"github.com/arrlang/arrlang/internal/semantic"
	"github.com/arrlang/arrlang/internal/types"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runRepl reads one line at a time and evaluates it against a single
// Interpreter whose global frame persists across lines, so a variable or
// function defined on one line is visible on the next. No line-editing
// library is used: none appears anywhere in the retrieved corpus, so this
// one component is built on bufio alone (see DESIGN.md).
func runRepl(_ *cobra.Command, _ []string) error {
	scanner := bufio.NewScanner(os.Stdin)
	i := interp.New(os.Stdout, engineFor(cfg.Backend))
	i.Width = terminalWidth()
	renderer := diagnostics.NewRenderer("", "<repl>", os.Stderr, noColorFlag)
	var seed map[string]types.Type

	fmt.Println("arrlang repl — one declaration per line, Ctrl-D to exit")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		l := lexer.New(line)
		p := parser.New(l)
		program := p.ParseProgram()
		if len(p.Errors()) > 0 {
			printPositioned(renderer, toPositioned(p.Errors()))
			continue
		}

		an := semantic.NewAnalyzer(semantic.WithSeedTypes(seed))
		if errs := an.Analyze(program); len(errs) > 0 {
			printPositioned(renderer, toPositionedTypeErrors(errs))
			continue
		}
		seed = an.GlobalTypes()

		result, err := i.Run(program)
		if err != nil {
			printPositioned(renderer, []diagnostics.Positioned{err.(diagnostics.Positioned)})
			continue
		}
		fmt.Println(result.String())
	}
}
