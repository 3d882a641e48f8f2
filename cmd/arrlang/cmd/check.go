package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arrlang/arrlang/internal/diagnostics"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/parser"
	"github.com/arrlang/arrlang/internal/semantic"
)

var (
	checkEvalExpr   string
	checkStrictFlag bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Type-check an arrlang program without running it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  checkScript,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkEvalExpr, "eval", "e", "", "check inline code instead of reading from file")
	checkCmd.Flags().BoolVar(&checkStrictFlag, "strict-records", false, "require record literals to name every declared field")
}

func checkScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(checkEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	renderer := diagnostics.NewRenderer(input, filename, os.Stderr, noColorFlag)
	if len(p.Errors()) > 0 {
		printPositioned(renderer, toPositioned(p.Errors()))
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	var opts []semantic.Option
	if checkStrictFlag {
		opts = append(opts, semantic.WithStrictRecords(true))
	}
	an := semantic.NewAnalyzer(opts...)
	errs := an.Analyze(program)
	if len(errs) > 0 {
		printPositioned(renderer, toPositionedTypeErrors(errs))
		return fmt.Errorf("type checking failed with %d error(s)", len(errs))
	}

	fmt.Println("ok")
	return nil
}
