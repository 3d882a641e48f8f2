package interp

import (
	"github.com/arrlang/arrlang/internal/arrayengine"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/types"
)

// Call applies fn to args, transparently handling the rank-polymorphic
// broadcasting the checker already validated: when an argument's rank
// exceeds its parameter's declared rank by some Δ > 0, fn is applied once
// per element along the leading Δ axes and the results are collected back
// into a Δ-ranked array of fn's own return type.
func (i *Interpreter) Call(fn *FunctionValue, args []Value, pos lexer.Position) Value {
	if fn.Builtin != nil {
		return fn.Builtin(i, args, pos)
	}

	if len(fn.Signature.Params) != len(args) {
		throw(pos, "%s expects %d argument(s), got %d", fn.Name, len(fn.Signature.Params), len(args))
	}

	maxDelta := 0
	deltas := make([]int, len(args))
	var extraShape []int
	for k, arg := range args {
		paramDim := fn.Signature.Params[k].Dimension
		argDim := arg.Type.Dimension
		deltas[k] = argDim - paramDim
		if deltas[k] > maxDelta {
			maxDelta = deltas[k]
			extraShape = arg.Array.Shape()[:maxDelta]
		}
	}

	if maxDelta == 0 {
		return i.callDirect(fn, args)
	}

	n := 1
	for _, d := range extraShape {
		n *= d
	}

	var resultFlat []interface{}
	var trailingShape []int
	for idx := 0; idx < n; idx++ {
		lead := unravelLocal(idx, extraShape)
		subArgs := make([]Value, len(args))
		for k, arg := range args {
			if deltas[k] == 0 {
				subArgs[k] = arg
				continue
			}
			subArgs[k] = i.sliceLeading(arg, lead, pos)
		}
		result := i.callDirect(fn, subArgs)
		if result.Array != nil {
			if trailingShape == nil {
				trailingShape = result.Array.Shape()
			}
			resultFlat = append(resultFlat, arrayengine.Flatten(result.Array)...)
		} else {
			resultFlat = append(resultFlat, unwrapValue(result))
		}
	}

	resultShape := append(append([]int{}, extraShape...), trailingShape...)
	arr := i.Engine.FromElements(resultFlat, resultShape)
	return Value{Type: types.NewArray(fn.Signature.Return.Base, fn.Signature.Return.Dimension+maxDelta), Array: arr}
}

// callDirect invokes fn exactly once with args matching its declared
// parameter ranks — no broadcasting. Builtins never reach here: Call
// dispatches to them directly, since they have no declared Signature to
// broadcast against.
func (i *Interpreter) callDirect(fn *FunctionValue, args []Value) Value {
	callEnv := NewEnclosed(fn.Closure)
	for k, p := range fn.Params {
		callEnv.Define(p.Name, args[k])
	}
	return i.evalBlock(fn.Body, callEnv)
}

// sliceLeading indexes into arg along its leading len(lead) axes, dropping
// them and returning the remaining sub-array or scalar.
func (i *Interpreter) sliceLeading(arg Value, lead []int, pos lexer.Position) Value {
	cur := arg.Array
	elemType := arg.Type
	for _, idx := range lead {
		sub, err := arrayengine.Index(i.Engine, cur, idx)
		if err != nil {
			throw(pos, "%v", err)
		}
		cur = sub
		elemType = types.Type{Base: elemType.Base, Dimension: elemType.Dimension - 1}
	}
	if elemType.Dimension == 0 {
		return wrapValue(cur.Get(nil), leafType(elemType))
	}
	return Value{Type: elemType, Array: cur}
}

// unravelLocal converts a flat row-major offset into per-axis indices for
// shape, mirroring arrayengine's internal helper of the same purpose.
func unravelLocal(offset int, shape []int) []int {
	idx := make([]int, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		idx[i] = offset % shape[i]
		offset /= shape[i]
	}
	return idx
}
