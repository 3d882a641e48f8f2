package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arrlang/arrlang/internal/diagnostics"
	"github.com/arrlang/arrlang/internal/interp"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/parser"
	"github.com/arrlang/arrlang/internal/semantic"
)

var (
	runEvalExpr   string
	runStrictFlag bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Lex, parse, type-check, and execute an arrlang program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "execute inline code instead of reading from file")
	runCmd.Flags().BoolVar(&runStrictFlag, "strict-records", false, "require record literals to name every declared field")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(runEvalExpr, args)
	if err != nil {
		return err
	}

	renderer := diagnostics.NewRenderer(input, filename, os.Stderr, noColorFlag)

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		printPositioned(renderer, toPositioned(p.Errors()))
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	var opts []semantic.Option
	if runStrictFlag {
		opts = append(opts, semantic.WithStrictRecords(true))
	}
	an := semantic.NewAnalyzer(opts...)
	if errs := an.Analyze(program); len(errs) > 0 {
		printPositioned(renderer, toPositionedTypeErrors(errs))
		return fmt.Errorf("type checking failed with %d error(s)", len(errs))
	}

	i := interp.New(os.Stdout, engineFor(cfg.Backend))
	i.Width = terminalWidth()
	if _, err := i.Run(program); err != nil {
		printPositioned(renderer, []diagnostics.Positioned{err.(diagnostics.Positioned)})
		return fmt.Errorf("execution failed")
	}
	return nil
}

func printPositioned(r *diagnostics.Renderer, errs []diagnostics.Positioned) {
	fmt.Fprint(os.Stderr, r.FormatAll(errs))
}

func toPositioned(errs []*parser.ParseError) []diagnostics.Positioned {
	out := make([]diagnostics.Positioned, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

func toPositionedTypeErrors(errs []*semantic.TypeError) []diagnostics.Positioned {
	out := make([]diagnostics.Positioned, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}
