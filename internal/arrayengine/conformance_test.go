package arrayengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var engines = []Engine{DenseEngine{}, NestedEngine{}}

func TestBuildZeroString(t *testing.T) {
	for _, eng := range engines {
		a := eng.Build([]int{2, 3}, int64(0))
		assert.Equal(t, "{{0, 0, 0}, {0, 0, 0}}", a.String(), eng.Name())
	}
}

func TestFromElementsAndGet(t *testing.T) {
	for _, eng := range engines {
		a := eng.FromElements([]interface{}{int64(1), int64(2), int64(3), int64(4)}, []int{2, 2})
		assert.Equal(t, int64(3), a.Get([]int{1, 0}), eng.Name())
		assert.Equal(t, "{{1, 2}, {3, 4}}", a.String(), eng.Name())
	}
}

func TestBroadcastAddParity(t *testing.T) {
	add := func(x, y interface{}) (interface{}, error) { return x.(int64) + y.(int64), nil }

	var renders []string
	for _, eng := range engines {
		a := eng.FromElements([]interface{}{int64(1), int64(2), int64(3)}, []int{3})
		b := eng.FromElements([]interface{}{int64(10)}, []int{1})
		_ = b
		scalar := eng.FromElements([]interface{}{int64(10), int64(10), int64(10)}, []int{3})
		result, err := Broadcast(eng, a, scalar, add)
		if err != nil {
			t.Fatalf("%s: %v", eng.Name(), err)
		}
		renders = append(renders, result.String())
	}
	assert.Equal(t, renders[0], renders[1])
	assert.Equal(t, "{11, 12, 13}", renders[0])
}

func TestIndexDropsLeadingAxis(t *testing.T) {
	for _, eng := range engines {
		a := eng.FromElements([]interface{}{int64(1), int64(2), int64(3), int64(4)}, []int{2, 2})
		row, err := Index(eng, a, 1)
		if err != nil {
			t.Fatalf("%s: %v", eng.Name(), err)
		}
		assert.Equal(t, "{3, 4}", row.String(), eng.Name())
	}
}

func TestReshape(t *testing.T) {
	for _, eng := range engines {
		a := eng.FromElements([]interface{}{int64(1), int64(2), int64(3), int64(4), int64(5), int64(6)}, []int{6})
		b, err := Reshape(eng, a, []int{2, 3})
		if err != nil {
			t.Fatalf("%s: %v", eng.Name(), err)
		}
		assert.Equal(t, "{{1, 2, 3}, {4, 5, 6}}", b.String(), eng.Name())
	}
}

func TestReshapeRejectsElementCountMismatch(t *testing.T) {
	a := DenseEngine{}.FromElements([]interface{}{int64(1), int64(2), int64(3)}, []int{3})
	_, err := Reshape(DenseEngine{}, a, []int{2, 2})
	assert.Error(t, err)
}
