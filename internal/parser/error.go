package parser

import (
	"fmt"

	"github.com/arrlang/arrlang/internal/lexer"
)

// ParseError is a single recovered syntax error. The parser collects these
// instead of failing fast, so a single pass can report every syntax
// problem in a file.
type ParseError struct {
	Message  string
	Position lexer.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Position.Line, e.Position.Column)
}

// Pos implements the diagnostics.Positioned interface.
func (e *ParseError) Pos() lexer.Position { return e.Position }
