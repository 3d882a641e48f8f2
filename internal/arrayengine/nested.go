package arrayengine

// NestedArray represents an array as genuinely nested Go slices, the
// fallback representation the reference interpreter's utils.build() uses
// when no native numeric backend is available.
type NestedArray struct {
	shape []int
	root  interface{} // either a scalar, or []interface{} of nested values
}

// NestedEngine constructs NestedArrays.
type NestedEngine struct{}

func (NestedEngine) Name() string { return "nested" }

func (NestedEngine) Build(shape []int, fill interface{}) Array {
	return &NestedArray{shape: append([]int{}, shape...), root: buildNested(shape, zeroValueLike(fill))}
}

func buildNested(shape []int, fill interface{}) interface{} {
	if len(shape) == 0 {
		return fill
	}
	out := make([]interface{}, shape[0])
	for i := range out {
		out[i] = buildNested(shape[1:], fill)
	}
	return out
}

func (NestedEngine) FromElements(elements []interface{}, shape []int) Array {
	root, _ := fromFlatNested(elements, shape)
	return &NestedArray{shape: append([]int{}, shape...), root: root}
}

func fromFlatNested(elements []interface{}, shape []int) (interface{}, []interface{}) {
	if len(shape) == 0 {
		return elements[0], elements[1:]
	}
	out := make([]interface{}, shape[0])
	rest := elements
	for i := range out {
		var v interface{}
		v, rest = fromFlatNested(rest, shape[1:])
		out[i] = v
	}
	return out, rest
}

func (n *NestedArray) Shape() []int { return n.shape }

func (n *NestedArray) Get(indices []int) interface{} {
	cur := n.root
	for _, idx := range indices {
		cur = cur.([]interface{})[idx]
	}
	return cur
}

func (n *NestedArray) Set(indices []int, val interface{}) {
	if len(indices) == 0 {
		n.root = val
		return
	}
	cur := n.root.([]interface{})
	for _, idx := range indices[:len(indices)-1] {
		cur = cur[idx].([]interface{})
	}
	cur[indices[len(indices)-1]] = val
}

func (n *NestedArray) String() string {
	return Render(n, defaultFormatScalar)
}
