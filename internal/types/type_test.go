package types

import "testing"

func TestPrimitiveEquality(t *testing.T) {
	if !NewScalar(Int).Equals(NewScalar(Int)) {
		t.Fatal("int should equal int")
	}
	if NewScalar(Int).Equals(NewScalar(Float)) {
		t.Fatal("int should not equal float")
	}
	if NewScalar(Int).Equals(NewArray(Int, 1)) {
		t.Fatal("int should not equal int[1]")
	}
}

func TestRecordNominalEquality(t *testing.T) {
	a := NewScalar(Record{Name: "Point"})
	b := NewScalar(Record{Name: "Point"})
	c := NewScalar(Record{Name: "Vector"})
	if !a.Equals(b) {
		t.Fatal("records with the same name should be equal")
	}
	if a.Equals(c) {
		t.Fatal("records with different names should not be equal")
	}
}

func TestFunctionStructuralEquality(t *testing.T) {
	f1 := NewScalar(Function{Params: []Type{NewScalar(Int), NewScalar(Float)}, Return: NewScalar(Bool)})
	f2 := NewScalar(Function{Params: []Type{NewScalar(Int), NewScalar(Float)}, Return: NewScalar(Bool)})
	f3 := NewScalar(Function{Params: []Type{NewScalar(Int)}, Return: NewScalar(Bool)})
	if !f1.Equals(f2) {
		t.Fatal("structurally identical function types should be equal")
	}
	if f1.Equals(f3) {
		t.Fatal("function types with different arity should not be equal")
	}
}

func TestStringRendering(t *testing.T) {
	cases := []struct {
		t    Type
		want string
	}{
		{NewScalar(Int), "int"},
		{NewArray(Float, 1), "float[1]"},
		{NewArray(Record{Name: "Point"}, 2), "Point[2]"},
	}
	for _, c := range cases {
		if got := c.t.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestAsFunctionAndAsRecord(t *testing.T) {
	fn := NewScalar(Function{Params: nil, Return: NewScalar(Unit)})
	if _, ok := fn.AsFunction(); !ok {
		t.Fatal("expected AsFunction to succeed on a scalar function type")
	}
	arrFn := NewArray(Function{Params: nil, Return: NewScalar(Unit)}, 1)
	if _, ok := arrFn.AsFunction(); ok {
		t.Fatal("AsFunction should fail for non-scalar dimension")
	}

	rec := NewArray(Record{Name: "Point"}, 1)
	if _, ok := rec.AsRecord(); !ok {
		t.Fatal("expected AsRecord to succeed regardless of dimension")
	}
}
