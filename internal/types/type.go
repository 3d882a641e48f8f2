// Package types is the standalone semantic type system shared by the
// annotator, checker, and interpreter. It deliberately has no dependency on
// internal/ast, so ast can import types directly and every expression node
// can carry a resolved *Type without the two-layer syntactic/semantic split
// the teacher needs to avoid an import cycle.
package types

import (
	"fmt"
	"strings"
)

// BaseType is the non-dimensional part of a Type: what kind of scalar or
// aggregate sits at the bottom of the array nesting.
type BaseType interface {
	baseType()
	String() string
	// Equals reports structural (Function/Array-ish) or nominal (Record)
	// equality against another BaseType.
	Equals(BaseType) bool
}

// Kind enumerates the primitive scalar kinds.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindChar
	KindBool
	KindUnit
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindChar:
		return "char"
	case KindBool:
		return "bool"
	case KindUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// Primitive is a scalar base type: int, float, char, bool, or unit.
type Primitive struct {
	Kind Kind
}

func (Primitive) baseType()          {}
func (p Primitive) String() string   { return p.Kind.String() }
func (p Primitive) Equals(o BaseType) bool {
	op, ok := o.(Primitive)
	return ok && op.Kind == p.Kind
}

var (
	Int   = Primitive{Kind: KindInt}
	Float = Primitive{Kind: KindFloat}
	Char  = Primitive{Kind: KindChar}
	Bool  = Primitive{Kind: KindBool}
	Unit  = Primitive{Kind: KindUnit}
)

// Record is a nominal base type identified by its declared name; two
// Records are equal only if their names match.
type Record struct {
	Name   string
	Fields map[string]Type // populated once the declaration is registered
}

func (Record) baseType() {}
func (r Record) String() string { return r.Name }
func (r Record) Equals(o BaseType) bool {
	or, ok := o.(Record)
	return ok && or.Name == r.Name
}

// Function is a structural base type: equal to another Function base type
// iff their parameter type lists and return types are all structurally
// equal, regardless of name.
type Function struct {
	Params []Type
	Return Type
}

func (Function) baseType() {}

func (f Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), f.Return.String())
}

func (f Function) Equals(o BaseType) bool {
	of, ok := o.(Function)
	if !ok || len(of.Params) != len(f.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equals(of.Params[i]) {
			return false
		}
	}
	return f.Return.Equals(of.Return)
}

// Type pairs a BaseType with its array rank (dimension). Dimension 0 means
// a scalar value of BaseType; dimension N means an N-deep nested sequence
// of BaseType scalars.
type Type struct {
	Base      BaseType
	Dimension int
}

// NewScalar builds a rank-0 Type over base.
func NewScalar(base BaseType) Type { return Type{Base: base, Dimension: 0} }

// NewArray builds a Type of the given rank over base.
func NewArray(base BaseType, dim int) Type { return Type{Base: base, Dimension: dim} }

// Equals reports whether two Types have the same base type and dimension.
func (t Type) Equals(o Type) bool {
	if t.Dimension != o.Dimension {
		return false
	}
	if t.Base == nil || o.Base == nil {
		return t.Base == o.Base
	}
	return t.Base.Equals(o.Base)
}

// IsScalar reports whether t has dimension 0.
func (t Type) IsScalar() bool { return t.Dimension == 0 }

// String renders a Type as "base" for scalars or "base[dim]" for arrays,
// e.g. "int", "float[1]", "Point[2]".
func (t Type) String() string {
	if t.Base == nil {
		return "<untyped>"
	}
	if t.Dimension == 0 {
		return t.Base.String()
	}
	return fmt.Sprintf("%s[%d]", t.Base.String(), t.Dimension)
}

// WithDimension returns a copy of t with its Dimension replaced.
func (t Type) WithDimension(dim int) Type { return Type{Base: t.Base, Dimension: dim} }

// AsFunction reports whether t is a rank-0 Function type, returning the
// Function base type if so.
func (t Type) AsFunction() (Function, bool) {
	if t.Dimension != 0 {
		return Function{}, false
	}
	f, ok := t.Base.(Function)
	return f, ok
}

// AsRecord reports whether t's base type is a Record, regardless of rank.
func (t Type) AsRecord() (Record, bool) {
	r, ok := t.Base.(Record)
	return r, ok
}

// IsPrimitiveKind reports whether t is a rank-0 Primitive of the given Kind.
func (t Type) IsPrimitiveKind(k Kind) bool {
	if t.Dimension != 0 {
		return false
	}
	p, ok := t.Base.(Primitive)
	return ok && p.Kind == k
}
