// Package arrayengine implements the dense and nested-sequence array
// backends that back arrlang's array-typed runtime values. Both backends
// satisfy the same Array interface and are built, combined, and printed
// through backend-agnostic helpers in this file, so the two are guaranteed
// to behave identically by construction rather than by separately
// duplicated logic — the conformance tests only need to check that each
// backend's own Engine produces the expected shapes and values.
package arrayengine

import (
	"errors"
	"fmt"
	"strings"
)

// Array is an n-dimensional, row-major-addressable sequence of arbitrary
// Go scalar values (int64, float64, rune, bool, or nested Arrays/records
// for record-typed arrays).
type Array interface {
	Shape() []int
	Get(indices []int) interface{}
	Set(indices []int, val interface{})
	String() string
}

// Engine constructs Arrays. Both backends build and read through the same
// Array interface; only construction and storage differ.
type Engine interface {
	Name() string
	// Build returns a new Array of the given shape with every element set
	// to fill's zero value for its kind (fill is a representative element
	// used only to pick int64(0)/float64(0)/etc; it is not itself stored).
	Build(shape []int, fill interface{}) Array
	// FromElements constructs an Array from a row-major flattened element
	// list and a target shape; len(elements) must equal the shape's product.
	FromElements(elements []interface{}, shape []int) Array
}

func product(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// unravel converts a flat row-major offset into per-axis indices for shape.
func unravel(offset int, shape []int) []int {
	idx := make([]int, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		idx[i] = offset % shape[i]
		offset /= shape[i]
	}
	return idx
}

// Flatten reads every element of a in row-major order.
func Flatten(a Array) []interface{} {
	shape := a.Shape()
	n := product(shape)
	out := make([]interface{}, n)
	for i := 0; i < n; i++ {
		out[i] = a.Get(unravel(i, shape))
	}
	return out
}

// Combine is the per-element operation passed to Broadcast.
type Combine func(x, y interface{}) (interface{}, error)

// Broadcast implements spec.md's array operator broadcasting at the value
// level: the operand with fewer axes is treated as repeating across the
// other operand's leading (extra) axes, provided its own shape matches the
// other's trailing axes exactly.
func Broadcast(eng Engine, a, b Array, combine Combine) (Array, error) {
	sa, sb := a.Shape(), b.Shape()
	big, small := sa, sb
	bigArr, smallArr := a, b
	if len(sb) > len(sa) {
		big, small = sb, sa
		bigArr, smallArr = b, a
	}
	extra := len(big) - len(small)
	for i, d := range small {
		if big[extra+i] != d {
			return nil, fmt.Errorf("incompatible shapes %v and %v", sa, sb)
		}
	}

	out := eng.Build(big, int64(0))
	n := product(big)
	for i := 0; i < n; i++ {
		idx := unravel(i, big)
		bigVal := bigArr.Get(idx)
		smallVal := smallArr.Get(idx[extra:])
		var result interface{}
		var err error
		if bigArr == a {
			result, err = combine(bigVal, smallVal)
		} else {
			result, err = combine(smallVal, bigVal)
		}
		if err != nil {
			return nil, err
		}
		out.Set(idx, result)
	}
	return out, nil
}

// Index drops the leading axis of a at position i, returning the
// sub-array that axis selects (a zero-dimensional Array holding one
// element, if a was 1-D).
func Index(eng Engine, a Array, i int) (Array, error) {
	shape := a.Shape()
	if len(shape) == 0 {
		return nil, errors.New("cannot index a scalar")
	}
	if i < 0 || i >= shape[0] {
		return nil, fmt.Errorf("index %d out of bounds for axis of size %d", i, shape[0])
	}
	subShape := shape[1:]
	n := product(subShape)
	elems := make([]interface{}, n)
	for j := 0; j < n; j++ {
		elems[j] = a.Get(append([]int{i}, unravel(j, subShape)...))
	}
	return eng.FromElements(elems, subShape), nil
}

// Reshape rebuilds a with a new shape over the same row-major elements.
func Reshape(eng Engine, a Array, newShape []int) (Array, error) {
	elems := Flatten(a)
	if len(elems) != product(newShape) {
		return nil, fmt.Errorf("cannot reshape %v elements into shape %v", len(elems), newShape)
	}
	return eng.FromElements(elems, newShape), nil
}

// Render formats a in the same brace-nested textual form as an
// ArrayLiteral, so dense and nested backends produce byte-identical
// output for the same logical array.
func Render(a Array, formatScalar func(interface{}) string) string {
	shape := a.Shape()
	var sb strings.Builder
	renderRec(a, shape, nil, formatScalar, &sb)
	return sb.String()
}

func renderRec(a Array, shape []int, prefix []int, formatScalar func(interface{}) string, sb *strings.Builder) {
	if len(shape) == 0 {
		sb.WriteString(formatScalar(a.Get(prefix)))
		return
	}
	sb.WriteString("{")
	for i := 0; i < shape[0]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		renderRec(a, shape[1:], append(append([]int{}, prefix...), i), formatScalar, sb)
	}
	sb.WriteString("}")
}
