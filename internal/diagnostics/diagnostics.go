// Package diagnostics renders ParseError, TypeError, and RuntimeTypeError
// uniformly with source context and an optional ANSI caret, the way the
// teacher's internal/errors.CompilerError formats a single error kind.
package diagnostics

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/arrlang/arrlang/internal/lexer"
)

// Positioned is satisfied by every error kind arrlang's pipeline raises:
// parser.ParseError, semantic.TypeError, and interp.RuntimeTypeError.
type Positioned interface {
	error
	Pos() lexer.Position
}

// Renderer formats Positioned errors against a fixed source text and
// filename, deciding on color based on whether its output stream is a
// terminal (unless forced either way).
type Renderer struct {
	Source   string
	File     string
	useColor bool
}

// NewRenderer builds a Renderer for source/file. noColor forces plain-text
// output regardless of the output stream; otherwise color is enabled only
// when out is a TTY (via go-isatty), matching common CLI conventions.
func NewRenderer(source, file string, out *os.File, noColor bool) *Renderer {
	useColor := !noColor && isatty.IsTerminal(out.Fd())
	return &Renderer{Source: source, File: file, useColor: useColor}
}

// Format renders a single Positioned error with a source line and caret.
func (r *Renderer) Format(err Positioned) string {
	pos := err.Pos()
	var sb strings.Builder

	header := fmt.Sprintf("%s:%d:%d", r.headerFile(), pos.Line, pos.Column)
	if r.useColor {
		header = color.New(color.FgCyan).Sprint(header)
	}
	sb.WriteString(header)
	sb.WriteString(": ")

	msg := err.Error()
	if r.useColor {
		msg = color.New(color.FgRed, color.Bold).Sprint(msg)
	}
	sb.WriteString(msg)
	sb.WriteString("\n")

	if line := r.sourceLine(pos.Line); line != "" {
		sb.WriteString(fmt.Sprintf("%4d | %s\n", pos.Line, line))
		caret := strings.Repeat(" ", 7+max(pos.Column-1, 0)) + "^"
		if r.useColor {
			caret = color.New(color.FgRed, color.Bold).Sprint(caret)
		}
		sb.WriteString(caret)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatAll renders every error in errs, each followed by a blank line.
func (r *Renderer) FormatAll(errs []Positioned) string {
	var sb strings.Builder
	for _, e := range errs {
		sb.WriteString(r.Format(e))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *Renderer) headerFile() string {
	if r.File == "" {
		return "<input>"
	}
	return r.File
}

func (r *Renderer) sourceLine(n int) string {
	if r.Source == "" {
		return ""
	}
	lines := strings.Split(r.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
