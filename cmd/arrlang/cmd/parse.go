package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arrlang/arrlang/internal/diagnostics"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/parser"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the parsed AST for an arrlang program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(parseEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		renderer := diagnostics.NewRenderer(input, filename, os.Stderr, noColorFlag)
		printPositioned(renderer, toPositioned(p.Errors()))
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	fmt.Print(program.String())
	return nil
}
