package arrayengine

import "fmt"

// DenseArray is a flat-buffer backend: all elements live in one row-major
// slice alongside the shape, the way a numeric-library array would.
type DenseArray struct {
	shape []int
	data  []interface{}
}

// DenseEngine constructs DenseArrays.
type DenseEngine struct{}

func (DenseEngine) Name() string { return "dense" }

func (DenseEngine) Build(shape []int, fill interface{}) Array {
	n := product(shape)
	data := make([]interface{}, n)
	for i := range data {
		data[i] = zeroValueLike(fill)
	}
	return &DenseArray{shape: append([]int{}, shape...), data: data}
}

func (DenseEngine) FromElements(elements []interface{}, shape []int) Array {
	data := append([]interface{}{}, elements...)
	return &DenseArray{shape: append([]int{}, shape...), data: data}
}

func zeroValueLike(fill interface{}) interface{} {
	switch fill.(type) {
	case float64:
		return float64(0)
	case int64:
		return int64(0)
	case bool:
		return false
	case rune:
		return rune(0)
	default:
		return int64(0)
	}
}

func (d *DenseArray) Shape() []int { return d.shape }

func (d *DenseArray) flatIndex(indices []int) int {
	offset := 0
	for i, idx := range indices {
		offset = offset*d.shape[i] + idx
	}
	return offset
}

func (d *DenseArray) Get(indices []int) interface{} {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("dense array: expected %d indices, got %d", len(d.shape), len(indices)))
	}
	return d.data[d.flatIndex(indices)]
}

func (d *DenseArray) Set(indices []int, val interface{}) {
	d.data[d.flatIndex(indices)] = val
}

func (d *DenseArray) String() string {
	return Render(d, defaultFormatScalar)
}

func defaultFormatScalar(v interface{}) string {
	switch x := v.(type) {
	case float64:
		return trimFloat(x)
	case int64:
		return fmt.Sprintf("%d", x)
	case bool:
		return fmt.Sprintf("%t", x)
	case rune:
		return "'" + string(x) + "'"
	default:
		return fmt.Sprintf("%v", x)
	}
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	return s
}
