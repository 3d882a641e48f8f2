package semantic

import (
	"fmt"

	"github.com/arrlang/arrlang/internal/lexer"
)

// TypeError is a single static type violation recovered during annotation.
// The analyzer collects these rather than aborting, the same way the
// parser collects ParseErrors.
type TypeError struct {
	Message  string
	Position lexer.Position
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Position.Line, e.Position.Column)
}

// Pos implements the diagnostics.Positioned interface.
func (e *TypeError) Pos() lexer.Position { return e.Position }
