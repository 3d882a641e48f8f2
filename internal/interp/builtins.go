package interp

import (
	"fmt"
	"strings"

	"github.com/arrlang/arrlang/internal/arrayengine"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/types"
)

// registerBuiltins binds the standard library into the global frame as
// native FunctionValues, wired directly to the array engine rather than
// going through the rank-polymorphic call path user functions use.
func (i *Interpreter) registerBuiltins() {
	i.defineBuiltin("print", builtinPrint)
	i.defineBuiltin("zeros", builtinFill(0))
	i.defineBuiltin("ones", builtinFill(1))
	i.defineBuiltin("shape", builtinShape)
	i.defineBuiltin("len", builtinLen)
	i.defineBuiltin("reshape", builtinReshape)
}

func (i *Interpreter) defineBuiltin(name string, fn func(i *Interpreter, args []Value, pos lexer.Position) Value) {
	i.Global.Define(name, Value{
		Type: types.NewScalar(types.Function{}),
		Fn:   &FunctionValue{Name: name, Builtin: fn},
	})
}

// builtinPrint implements arity n>=0: every argument's rendered value is
// printed space-separated, followed by a newline. print() alone prints a
// blank line.
func builtinPrint(i *Interpreter, args []Value, pos lexer.Position) Value {
	parts := make([]string, len(args))
	for k, a := range args {
		parts[k] = a.String()
	}
	fmt.Fprintln(i.Out, wrapToWidth(strings.Join(parts, " "), i.Width))
	return unitValue()
}

// wrapToWidth breaks s into width-column chunks joined by newlines, which
// keeps a long flat array rendering readable on the caller's terminal
// instead of scrolling off one unbroken line. width<=0 (no terminal, or a
// test writing to a buffer) disables wrapping entirely.
func wrapToWidth(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var b []byte
	for len(s) > width {
		b = append(b, s[:width]...)
		b = append(b, '\n')
		s = s[width:]
	}
	b = append(b, s...)
	return string(b)
}

// builtinFill backs zeros(dims) and zeros(dims, tag) (and ones's), differing
// only in the constant each fills the resulting array with. dims is read as
// an int[] of per-axis sizes, so the result's rank is len(dims) rather than
// a fixed 1; an optional second int argument tags the element base type
// (0 or absent -> float, nonzero -> int), matching
// original_source/interpreter/builtins_.py's `init_type` parameter.
func builtinFill(fill float64) func(i *Interpreter, args []Value, pos lexer.Position) Value {
	return func(i *Interpreter, args []Value, pos lexer.Position) Value {
		dims := args[0].Array
		n := dims.Shape()[0]
		shape := make([]int, n)
		total := 1
		for k := 0; k < n; k++ {
			shape[k] = int(dims.Get([]int{k}).(int64))
			total *= shape[k]
		}

		base := types.Float
		var fillVal interface{} = fill
		if len(args) == 2 && args[1].Int != 0 {
			base = types.Int
			fillVal = int64(fill)
		}

		elems := make([]interface{}, total)
		for k := range elems {
			elems[k] = fillVal
		}
		arr := i.Engine.FromElements(elems, shape)
		return Value{Type: types.NewArray(base, n), Array: arr}
	}
}

func builtinShape(i *Interpreter, args []Value, pos lexer.Position) Value {
	shape := args[0].Array.Shape()
	elems := make([]interface{}, len(shape))
	for k, d := range shape {
		elems[k] = int64(d)
	}
	arr := i.Engine.FromElements(elems, []int{len(shape)})
	return Value{Type: types.NewArray(types.Int, 1), Array: arr}
}

func builtinLen(i *Interpreter, args []Value, pos lexer.Position) Value {
	shape := args[0].Array.Shape()
	n := int64(0)
	if len(shape) > 0 {
		n = int64(shape[0])
	}
	return Value{Type: types.NewScalar(types.Int), Int: n}
}

func builtinReshape(i *Interpreter, args []Value, pos lexer.Position) Value {
	arr, dims := args[0], args[1]
	dimsShape := dims.Array.Shape()
	n := dimsShape[0]
	newShape := make([]int, n)
	for k := 0; k < n; k++ {
		newShape[k] = int(dims.Array.Get([]int{k}).(int64))
	}
	reshaped, err := arrayengine.Reshape(i.Engine, arr.Array, newShape)
	if err != nil {
		throw(pos, "%v", err)
	}
	return Value{Type: types.NewArray(arr.Type.Base, len(newShape)), Array: reshaped}
}
