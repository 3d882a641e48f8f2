package interp

import (
	"fmt"

	"github.com/arrlang/arrlang/internal/lexer"
)

// RuntimeTypeError is raised for a failure that only manifests at runtime
// despite the program having passed static checking: an out-of-bounds
// index, a call arity mismatch hidden behind a dynamically-built function
// value, integer division by zero, or a missing closure binding.
type RuntimeTypeError struct {
	Message  string
	Position lexer.Position
}

func (e *RuntimeTypeError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Position.Line, e.Position.Column)
}

// Pos implements the diagnostics.Positioned interface.
func (e *RuntimeTypeError) Pos() lexer.Position { return e.Position }

func throw(pos lexer.Position, format string, args ...interface{}) {
	panic(&RuntimeTypeError{Message: fmt.Sprintf(format, args...), Position: pos})
}
