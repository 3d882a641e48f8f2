package interp

import (
	"github.com/arrlang/arrlang/internal/arrayengine"
	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/types"
)

// toArray views v as a (possibly zero-dimensional) Array so scalar and
// array operands can go through the same broadcasting path.
func toArray(i *Interpreter, v Value) arrayengine.Array {
	if v.Array != nil {
		return v.Array
	}
	return i.Engine.FromElements([]interface{}{unwrapValue(v)}, []int{})
}

func arrBroadcast(i *Interpreter, a, b arrayengine.Array, combine arrayengine.Combine) (arrayengine.Array, error) {
	return arrayengine.Broadcast(i.Engine, a, b, combine)
}

// evalOperatorCall evaluates both scalar and array-typed operator
// applications. Operands are always evaluated eagerly and in order before
// dispatch — arrlang's && and || do not short-circuit, the same as every
// other binary operator.
func (i *Interpreter) evalOperatorCall(e *ast.OperatorCall, env *Environment) Value {
	if e.Operator == "[]" {
		return i.evalIndex(e, env)
	}

	operands := make([]Value, len(e.Operands))
	for k, o := range e.Operands {
		operands[k] = i.evalExpression(o, env)
	}

	if len(operands) == 1 {
		return evalUnary(e.Operator, operands[0], e.Pos())
	}

	a, b := operands[0], operands[1]
	if a.Type.Dimension > 0 || b.Type.Dimension > 0 {
		return i.evalBinaryArray(e.Operator, a, b, e.Pos())
	}
	return evalBinaryScalar(e.Operator, a, b, e.Pos())
}

func evalUnary(op string, v Value, pos lexer.Position) Value {
	switch op {
	case "-":
		if v.Type.IsPrimitiveKind(types.KindInt) {
			return Value{Type: v.Type, Int: -v.Int}
		}
		return Value{Type: v.Type, Float: -v.Float}
	case "!":
		return Value{Type: v.Type, Bool: !v.Bool}
	default:
		throw(pos, "unknown unary operator %q", op)
		return Value{}
	}
}

func evalBinaryScalar(op string, a, b Value, pos lexer.Position) Value {
	kind := a.Type.Base.(types.Primitive).Kind
	if isComparison(op) {
		return Value{Type: types.NewScalar(types.Bool), Bool: compareScalar(op, a, b, kind, pos)}
	}
	if op == "&&" {
		return Value{Type: types.NewScalar(types.Bool), Bool: a.Bool && b.Bool}
	}
	if op == "||" {
		return Value{Type: types.NewScalar(types.Bool), Bool: a.Bool || b.Bool}
	}
	switch kind {
	case types.KindInt:
		return Value{Type: a.Type, Int: arithInt(op, a.Int, b.Int, pos)}
	case types.KindFloat:
		return Value{Type: a.Type, Float: arithFloat(op, a.Float, b.Float)}
	default:
		throw(pos, "operator %q is not defined for %s", op, a.Type.String())
		return Value{}
	}
}

func isComparison(op string) bool {
	switch op {
	case "==", "!=", "<", ">", "<=", ">=":
		return true
	}
	return false
}

func compareScalar(op string, a, b Value, kind types.Kind, pos lexer.Position) bool {
	switch kind {
	case types.KindInt:
		return compareOrdered(op, a.Int, b.Int, pos)
	case types.KindFloat:
		return compareOrdered(op, a.Float, b.Float, pos)
	case types.KindChar:
		return compareOrdered(op, a.Char, b.Char, pos)
	case types.KindBool:
		switch op {
		case "==":
			return a.Bool == b.Bool
		case "!=":
			return a.Bool != b.Bool
		default:
			throw(pos, "operator %q is not defined for bool", op)
		}
	}
	return false
}

type ordered interface {
	~int64 | ~float64 | ~int32
}

func compareOrdered[T ordered](op string, a, b T, pos lexer.Position) bool {
	switch op {
	case "==":
		return a == b
	case "!=":
		return a != b
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	default:
		throw(pos, "unknown comparison operator %q", op)
		return false
	}
}

func arithInt(op string, a, b int64, pos lexer.Position) int64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		if b == 0 {
			throw(pos, "integer division by zero")
		}
		return a / b
	case "%":
		if b == 0 {
			throw(pos, "integer modulo by zero")
		}
		return a % b
	default:
		throw(pos, "unknown integer operator %q", op)
		return 0
	}
}

// arithFloat follows IEEE 754: division by zero yields +Inf/-Inf/NaN
// instead of raising an error, matching the float/int asymmetry spec.md
// requires.
func arithFloat(op string, a, b float64) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		return a / b
	default:
		return 0
	}
}

// evalBinaryArray handles the case where at least one operand is array
// typed, broadcasting the smaller-rank operand (which may itself be a bare
// scalar) up to the larger one's shape.
func (i *Interpreter) evalBinaryArray(op string, a, b Value, pos lexer.Position) Value {
	kind := elementKind(a, b)
	combine := combineFor(op, kind, pos)

	aArr, bArr := toArray(i, a), toArray(i, b)
	if isComparison(op) {
		boolCombine := func(x, y interface{}) (interface{}, error) {
			r, err := combine(x, y)
			return r, err
		}
		result, err := arrBroadcast(i, aArr, bArr, boolCombine)
		if err != nil {
			throw(pos, "%v", err)
		}
		return Value{Type: types.NewArray(types.Bool, maxDim(a, b)), Array: result}
	}

	result, err := arrBroadcast(i, aArr, bArr, combine)
	if err != nil {
		throw(pos, "%v", err)
	}
	return Value{Type: types.NewArray(a.Type.Base, maxDim(a, b)), Array: result}
}

func maxDim(a, b Value) int {
	if a.Type.Dimension > b.Type.Dimension {
		return a.Type.Dimension
	}
	return b.Type.Dimension
}

func elementKind(a, b Value) types.Kind {
	if p, ok := a.Type.Base.(types.Primitive); ok {
		return p.Kind
	}
	if p, ok := b.Type.Base.(types.Primitive); ok {
		return p.Kind
	}
	return types.KindInt
}

func combineFor(op string, kind types.Kind, pos lexer.Position) func(x, y interface{}) (interface{}, error) {
	return func(x, y interface{}) (interface{}, error) {
		switch kind {
		case types.KindInt:
			if isComparison(op) {
				return compareOrdered(op, x.(int64), y.(int64), pos), nil
			}
			return arithInt(op, x.(int64), y.(int64), pos), nil
		case types.KindFloat:
			if isComparison(op) {
				return compareOrdered(op, x.(float64), y.(float64), pos), nil
			}
			return arithFloat(op, x.(float64), y.(float64)), nil
		case types.KindBool:
			switch op {
			case "&&":
				return x.(bool) && y.(bool), nil
			case "||":
				return x.(bool) || y.(bool), nil
			case "==":
				return x.(bool) == y.(bool), nil
			case "!=":
				return x.(bool) != y.(bool), nil
			}
		}
		throw(pos, "operator %q is not defined for %s arrays", op, kind.String())
		return nil, nil
	}
}
