package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arrlang/arrlang/internal/lexer"
)

var lexEvalExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print the token stream for an arrlang program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, _, err := readInput(lexEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	for {
		tok := l.NextToken()
		fmt.Printf("%-12s %q @%d:%d\n", tok.Type, tok.Literal, tok.Pos.Line, tok.Pos.Column)
		if tok.Type == lexer.EOF {
			break
		}
	}
	for _, e := range l.Errors() {
		fmt.Printf("illegal token at %d:%d: %s\n", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return nil
}
