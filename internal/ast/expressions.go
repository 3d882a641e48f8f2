package ast

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/types"
)

// PrimitiveLiteral is an int, float, char, or bool literal. Exactly one of
// the value fields is meaningful, selected by Kind.
type PrimitiveLiteral struct {
	typedBase
	Token    lexer.Token
	Kind     types.Kind
	IntVal   int64
	FloatVal float64
	CharVal  rune
	BoolVal  bool
}

func (*PrimitiveLiteral) expressionNode()        {}
func (l *PrimitiveLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *PrimitiveLiteral) Pos() lexer.Position  { return l.Token.Pos }
func (l *PrimitiveLiteral) String() string {
	switch l.Kind {
	case types.KindInt:
		return strconv.FormatInt(l.IntVal, 10)
	case types.KindFloat:
		return strconv.FormatFloat(l.FloatVal, 'g', -1, 64)
	case types.KindChar:
		return "'" + string(l.CharVal) + "'"
	case types.KindBool:
		return strconv.FormatBool(l.BoolVal)
	default:
		return l.Token.Literal
	}
}

// VarRef is an identifier used in expression position.
type VarRef struct {
	typedBase
	Token lexer.Token
	Name  string
}

func (*VarRef) expressionNode()        {}
func (v *VarRef) TokenLiteral() string { return v.Token.Literal }
func (v *VarRef) Pos() lexer.Position  { return v.Token.Pos }
func (v *VarRef) String() string       { return v.Name }

// ArrayLiteral is a brace-enclosed, comma-separated sequence of elements:
// { e1, e2, ... } or {} for an empty array.
type ArrayLiteral struct {
	typedBase
	Token    lexer.Token
	Elements []Expression
}

func (*ArrayLiteral) expressionNode()        {}
func (a *ArrayLiteral) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayLiteral) Pos() lexer.Position  { return a.Token.Pos }
func (a *ArrayLiteral) String() string {
	nodes := make([]Node, len(a.Elements))
	for i, e := range a.Elements {
		nodes[i] = e
	}
	return "{" + joinStrings(nodes) + "}"
}

// RecordLiteral constructs a named record value: Point{x: 1, y: 2}.
type RecordLiteral struct {
	typedBase
	Token      lexer.Token
	RecordName string
	FieldOrder []string
	Fields     map[string]Expression
}

func (*RecordLiteral) expressionNode()        {}
func (r *RecordLiteral) TokenLiteral() string { return r.Token.Literal }
func (r *RecordLiteral) Pos() lexer.Position  { return r.Token.Pos }
func (r *RecordLiteral) String() string {
	var buf bytes.Buffer
	buf.WriteString(r.RecordName)
	buf.WriteString("{")
	for i, name := range r.FieldOrder {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %s", name, r.Fields[name].String())
	}
	buf.WriteString("}")
	return buf.String()
}

// FieldRef projects a field out of a record-valued expression: e.field.
type FieldRef struct {
	typedBase
	Token  lexer.Token
	Record Expression
	Field  string
}

func (*FieldRef) expressionNode()        {}
func (f *FieldRef) TokenLiteral() string { return f.Token.Literal }
func (f *FieldRef) Pos() lexer.Position  { return f.Token.Pos }
func (f *FieldRef) String() string       { return f.Record.String() + "." + f.Field }

// Param is a single lambda parameter: a name with its declared type.
type Param struct {
	Name string
	Type TypeExpr
}

// LambdaLiteral is an anonymous function value that closes over its
// defining environment.
type LambdaLiteral struct {
	typedBase
	Token      lexer.Token
	Params     []Param
	ReturnType TypeExpr // nil if omitted and left to inference
	Body       *BlockExpr
}

func (*LambdaLiteral) expressionNode()        {}
func (l *LambdaLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *LambdaLiteral) Pos() lexer.Position  { return l.Token.Pos }
func (l *LambdaLiteral) String() string {
	var buf bytes.Buffer
	buf.WriteString("fn(")
	for i, p := range l.Params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Name)
		if p.Type != nil {
			buf.WriteString(": ")
			buf.WriteString(p.Type.String())
		}
	}
	buf.WriteString(") ")
	buf.WriteString(l.Body.String())
	return buf.String()
}

// FunctionCall applies a callee expression (a name, lambda, or anything
// else evaluating to a function value) to a list of arguments.
type FunctionCall struct {
	typedBase
	Token    lexer.Token
	Callee   Expression
	Args     []Expression
}

func (*FunctionCall) expressionNode()        {}
func (c *FunctionCall) TokenLiteral() string { return c.Token.Literal }
func (c *FunctionCall) Pos() lexer.Position  { return c.Token.Pos }
func (c *FunctionCall) String() string {
	nodes := make([]Node, len(c.Args))
	for i, a := range c.Args {
		nodes[i] = a
	}
	return c.Callee.String() + "(" + joinStrings(nodes) + ")"
}

// OperatorCall is a unary or binary operator application, including the
// indexing operator "[]" which takes exactly two operands (array, index).
type OperatorCall struct {
	typedBase
	Token    lexer.Token
	Operator string
	Operands []Expression
}

func (*OperatorCall) expressionNode()        {}
func (o *OperatorCall) TokenLiteral() string { return o.Token.Literal }
func (o *OperatorCall) Pos() lexer.Position  { return o.Token.Pos }
func (o *OperatorCall) String() string {
	if o.Operator == "[]" && len(o.Operands) == 2 {
		return fmt.Sprintf("%s[%s]", o.Operands[0].String(), o.Operands[1].String())
	}
	if len(o.Operands) == 1 {
		return "(" + o.Operator + o.Operands[0].String() + ")"
	}
	if len(o.Operands) == 2 {
		return fmt.Sprintf("(%s %s %s)", o.Operands[0].String(), o.Operator, o.Operands[1].String())
	}
	return o.Operator
}

// IfExpr is a value-producing conditional: exactly one branch is evaluated
// based on Condition's truthiness, and its value is the expression's value.
type IfExpr struct {
	typedBase
	Token     lexer.Token
	Condition Expression
	Then      Expression
	Else      Expression
}

func (*IfExpr) expressionNode()        {}
func (i *IfExpr) TokenLiteral() string { return i.Token.Literal }
func (i *IfExpr) Pos() lexer.Position  { return i.Token.Pos }
func (i *IfExpr) String() string {
	return fmt.Sprintf("if %s { %s } else { %s }", i.Condition.String(), i.Then.String(), i.Else.String())
}

// BlockExpr is a brace-delimited sequence of statements, evaluating to the
// value of its last ExprStmt (or unit if empty or the last statement is
// not an expression statement).
type BlockExpr struct {
	typedBase
	Token      lexer.Token
	Statements []Statement
}

func (*BlockExpr) expressionNode()        {}
func (b *BlockExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BlockExpr) Pos() lexer.Position  { return b.Token.Pos }
func (b *BlockExpr) String() string {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for _, s := range b.Statements {
		buf.WriteString("  ")
		buf.WriteString(s.String())
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.String()
}
