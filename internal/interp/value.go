package interp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arrlang/arrlang/internal/arrayengine"
	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/types"
)

// Value is the tagged runtime representation of every arrlang value. Which
// field is meaningful is determined by Type: Dimension > 0 always means
// Array is set; Dimension == 0 dispatches on Type.Base.
type Value struct {
	Type types.Type

	Int   int64
	Float float64
	Char  rune
	Bool  bool

	Array  arrayengine.Array
	Record map[string]Value
	Fn     *FunctionValue
}

// FunctionValue is a closure: either a user-defined function carrying its
// defining frame, or a native builtin.
type FunctionValue struct {
	Name      string
	Params    []ast.Param
	Body      *ast.BlockExpr
	Closure   *Environment
	Signature types.Function

	Builtin func(i *Interpreter, args []Value, pos lexer.Position) Value
}

func unitValue() Value {
	return Value{Type: types.NewScalar(types.Unit)}
}

// String renders a value the way print() and the REPL echo it.
func (v Value) String() string {
	if v.Array != nil {
		return v.Array.String()
	}
	if v.Record != nil {
		rec, ok := v.Type.AsRecord()
		var names []string
		if ok {
			names = fieldOrderOf(rec)
		} else {
			for name := range v.Record {
				names = append(names, name)
			}
			sort.Strings(names)
		}
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s: %s", name, v.Record[name].String()))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	if v.Fn != nil {
		return "<function " + v.Fn.Name + ">"
	}
	switch p, ok := v.Type.Base.(types.Primitive); {
	case ok && p.Kind == types.KindInt:
		return strconv.FormatInt(v.Int, 10)
	case ok && p.Kind == types.KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ok && p.Kind == types.KindChar:
		return string(v.Char)
	case ok && p.Kind == types.KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return "()"
	}
}

func fieldOrderOf(rec types.Record) []string {
	names := make([]string, 0, len(rec.Fields))
	for name := range rec.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unwrapValue strips a leaf (Dimension-0) Value down to the plain Go
// scalar/map representation arrayengine stores inside its Array leaves.
func unwrapValue(v Value) interface{} {
	if v.Record != nil {
		m := make(map[string]interface{}, len(v.Record))
		for name, fv := range v.Record {
			m[name] = unwrapValue(fv)
		}
		return m
	}
	if p, ok := v.Type.Base.(types.Primitive); ok {
		switch p.Kind {
		case types.KindInt:
			return v.Int
		case types.KindFloat:
			return v.Float
		case types.KindChar:
			return v.Char
		case types.KindBool:
			return v.Bool
		}
	}
	return int64(0)
}

// wrapValue reconstructs a leaf Value of type leafType from the plain Go
// representation arrayengine handed back.
func wrapValue(raw interface{}, leafType types.Type) Value {
	if rec, ok := leafType.AsRecord(); ok {
		m, _ := raw.(map[string]interface{})
		fields := make(map[string]Value, len(rec.Fields))
		for name, ft := range rec.Fields {
			fields[name] = wrapValue(m[name], ft)
		}
		return Value{Type: leafType, Record: fields}
	}
	if p, ok := leafType.Base.(types.Primitive); ok {
		switch p.Kind {
		case types.KindInt:
			n, _ := raw.(int64)
			return Value{Type: leafType, Int: n}
		case types.KindFloat:
			f, _ := raw.(float64)
			return Value{Type: leafType, Float: f}
		case types.KindChar:
			c, _ := raw.(rune)
			return Value{Type: leafType, Char: c}
		case types.KindBool:
			b, _ := raw.(bool)
			return Value{Type: leafType, Bool: b}
		}
	}
	return Value{Type: leafType}
}

// leafType returns t with Dimension 0 — the type of one element of an
// array typed t.
func leafType(t types.Type) types.Type {
	return types.Type{Base: t.Base, Dimension: 0}
}
