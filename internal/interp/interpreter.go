// Package interp implements the tree-walking evaluator that executes an
// already-parsed and already-type-checked program: top-level declarations
// are registered into a single global frame (record declarations
// contribute only a schema, never a runtime binding), function and
// variable initializers run eagerly in source order, and every named
// function's call frame is rooted on the frame it was defined in rather
// than the frame it happens to be called from, so a function can always
// see the globals and sibling functions visible at its own definition site
// regardless of who calls it.
package interp

import (
	"io"

	"github.com/arrlang/arrlang/internal/arrayengine"
	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/types"
)

// Interpreter evaluates a single program against a chosen array backend.
type Interpreter struct {
	Engine arrayengine.Engine
	Global *Environment
	Out    io.Writer

	// Width, when positive, is the terminal column count print() wraps
	// long array renderings to. Zero (the default, and always the value
	// used by tests) means no wrapping.
	Width int
}

// New builds an Interpreter with print() writing to out and the builtin
// table registered in the global frame.
func New(out io.Writer, engine arrayengine.Engine) *Interpreter {
	i := &Interpreter{Engine: engine, Global: NewEnvironment(), Out: out}
	i.registerBuiltins()
	return i
}

// Run registers every declaration in program and evaluates top-level
// variable initializers in source order, returning the value of the last
// declaration: its initializer's value if it is a variable, unit if it is
// a function or record (or if the program is empty).
func (i *Interpreter) Run(program *ast.Program) (result Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rte, ok := r.(*RuntimeTypeError); ok {
				err = rte
				return
			}
			panic(r)
		}
	}()

	result = unitValue()
	for _, decl := range program.Declarations {
		result = i.evalDeclaration(decl, i.Global)
	}
	return result, nil
}

func (i *Interpreter) evalDeclaration(decl ast.Declaration, env *Environment) Value {
	switch d := decl.(type) {
	case *ast.VarDecl:
		var val Value
		if d.Initializer != nil {
			val = i.evalExpression(d.Initializer, env)
		} else {
			val = i.zeroValue(d.ResolvedType)
		}
		env.Define(d.Name, val)
		return val
	case *ast.FunctionDef:
		sig, _ := d.ResolvedType.AsFunction()
		fn := &FunctionValue{Name: d.Name, Params: d.Params, Body: d.Body, Closure: env, Signature: sig}
		env.Define(d.Name, Value{Type: d.ResolvedType, Fn: fn})
		return unitValue()
	case *ast.RecordTypeDecl:
		// Schemas live entirely in the type system; records are duck-typed
		// maps at runtime, so there is nothing further to register here.
		return unitValue()
	default:
		throw(decl.Pos(), "unknown declaration %T", decl)
		return Value{}
	}
}

func (i *Interpreter) zeroValue(t types.Type) Value {
	if t.Dimension > 0 {
		return Value{Type: t, Array: i.Engine.Build(make([]int, t.Dimension), int64(0))}
	}
	if rec, ok := t.AsRecord(); ok {
		fields := make(map[string]Value, len(rec.Fields))
		for name, ft := range rec.Fields {
			fields[name] = i.zeroValue(ft)
		}
		return Value{Type: t, Record: fields}
	}
	return wrapValue(unwrapValue(Value{Type: t}), t)
}

func (i *Interpreter) evalStatement(stmt ast.Statement, env *Environment) Value {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return i.evalExpression(s.Expression, env)
	case *ast.Assignment:
		val := i.evalExpression(s.Value, env)
		i.evalAssignment(s, val, env)
		return unitValue()
	case *ast.WhileLoop:
		for {
			cond := i.evalExpression(s.Condition, env)
			if !cond.Bool {
				break
			}
			i.evalBlock(s.Body, NewEnclosed(env))
		}
		return unitValue()
	case *ast.DeclStmt:
		return i.evalDeclaration(s.Decl, env)
	default:
		throw(stmt.Pos(), "unknown statement %T", stmt)
		return Value{}
	}
}

func (i *Interpreter) evalAssignment(a *ast.Assignment, val Value, env *Environment) {
	switch target := a.Target.(type) {
	case *ast.VarRef:
		if !env.Set(target.Name, val) {
			throw(a.Pos(), "assignment to undefined variable %q", target.Name)
		}
	case *ast.FieldRef:
		recv := i.evalExpression(target.Record, env)
		if recv.Record == nil {
			throw(a.Pos(), "cannot assign field %q on a non-record value", target.Field)
		}
		recv.Record[target.Field] = val
	default:
		throw(a.Pos(), "invalid assignment target")
	}
}

func (i *Interpreter) evalBlock(b *ast.BlockExpr, env *Environment) Value {
	result := unitValue()
	for _, stmt := range b.Statements {
		result = i.evalStatement(stmt, env)
	}
	return result
}

func (i *Interpreter) evalExpression(expr ast.Expression, env *Environment) Value {
	switch e := expr.(type) {
	case *ast.PrimitiveLiteral:
		return i.evalPrimitiveLiteral(e)
	case *ast.VarRef:
		v, ok := env.Get(e.Name)
		if !ok {
			throw(e.Pos(), "undefined variable %q", e.Name)
		}
		return v
	case *ast.ArrayLiteral:
		return i.evalArrayLiteral(e, env)
	case *ast.RecordLiteral:
		return i.evalRecordLiteral(e, env)
	case *ast.FieldRef:
		return i.evalFieldRef(e, env)
	case *ast.LambdaLiteral:
		return i.evalLambda(e, env)
	case *ast.FunctionCall:
		return i.evalFunctionCall(e, env)
	case *ast.OperatorCall:
		return i.evalOperatorCall(e, env)
	case *ast.IfExpr:
		return i.evalIf(e, env)
	case *ast.BlockExpr:
		return i.evalBlock(e, NewEnclosed(env))
	default:
		throw(expr.Pos(), "unknown expression %T", expr)
		return Value{}
	}
}

func (i *Interpreter) evalPrimitiveLiteral(e *ast.PrimitiveLiteral) Value {
	t := e.GetType()
	switch e.Kind {
	case types.KindInt:
		return Value{Type: t, Int: e.IntVal}
	case types.KindFloat:
		return Value{Type: t, Float: e.FloatVal}
	case types.KindChar:
		return Value{Type: t, Char: e.CharVal}
	case types.KindBool:
		return Value{Type: t, Bool: e.BoolVal}
	default:
		return unitValue()
	}
}

func (i *Interpreter) evalArrayLiteral(e *ast.ArrayLiteral, env *Environment) Value {
	t := e.GetType()
	if len(e.Elements) == 0 {
		return Value{Type: t, Array: i.Engine.FromElements(nil, []int{0})}
	}

	var flat []interface{}
	var shape []int
	for idx, el := range e.Elements {
		v := i.evalExpression(el, env)
		if v.Array != nil {
			if idx == 0 {
				shape = append([]int{len(e.Elements)}, v.Array.Shape()...)
			}
			flat = append(flat, arrayengine.Flatten(v.Array)...)
		} else {
			if idx == 0 {
				shape = []int{len(e.Elements)}
			}
			flat = append(flat, unwrapValue(v))
		}
	}
	return Value{Type: t, Array: i.Engine.FromElements(flat, shape)}
}

func (i *Interpreter) evalRecordLiteral(e *ast.RecordLiteral, env *Environment) Value {
	fields := make(map[string]Value, len(e.Fields))
	for name, fe := range e.Fields {
		fields[name] = i.evalExpression(fe, env)
	}
	return Value{Type: e.GetType(), Record: fields}
}

func (i *Interpreter) evalFieldRef(e *ast.FieldRef, env *Environment) Value {
	recv := i.evalExpression(e.Record, env)
	if recv.Record != nil {
		v, ok := recv.Record[e.Field]
		if !ok {
			throw(e.Pos(), "record has no field %q", e.Field)
		}
		return v
	}
	if recv.Array != nil {
		return i.projectField(recv, e.Field, e.GetType(), e.Pos())
	}
	throw(e.Pos(), "cannot project field %q from a non-record value", e.Field)
	return Value{}
}

// projectField maps field projection over every record in a record-typed
// array, producing an array of the field's own type one rank higher.
func (i *Interpreter) projectField(recv Value, field string, resultType types.Type, pos lexer.Position) Value {
	shape := recv.Array.Shape()
	elems := arrayengine.Flatten(recv.Array)
	out := make([]interface{}, len(elems))
	for idx, el := range elems {
		m, ok := el.(map[string]interface{})
		if !ok {
			throw(pos, "record has no field %q", field)
		}
		raw, ok := m[field]
		if !ok {
			throw(pos, "record has no field %q", field)
		}
		out[idx] = raw
	}
	return Value{Type: resultType, Array: i.Engine.FromElements(out, shape)}
}

func (i *Interpreter) evalLambda(e *ast.LambdaLiteral, env *Environment) Value {
	sig, _ := e.GetType().AsFunction()
	fn := &FunctionValue{Name: "<lambda>", Params: e.Params, Body: e.Body, Closure: env, Signature: sig}
	return Value{Type: e.GetType(), Fn: fn}
}

func (i *Interpreter) evalFunctionCall(e *ast.FunctionCall, env *Environment) Value {
	callee := i.evalExpression(e.Callee, env)
	if callee.Fn == nil {
		throw(e.Pos(), "attempted to call a non-function value")
	}
	args := make([]Value, len(e.Args))
	for idx, a := range e.Args {
		args[idx] = i.evalExpression(a, env)
	}
	return i.Call(callee.Fn, args, e.Pos())
}

func (i *Interpreter) evalIf(e *ast.IfExpr, env *Environment) Value {
	cond := i.evalExpression(e.Condition, env)
	if cond.Bool {
		return i.evalExpression(e.Then, env)
	}
	return i.evalExpression(e.Else, env)
}

func (i *Interpreter) evalIndex(e *ast.OperatorCall, env *Environment) Value {
	arr := i.evalExpression(e.Operands[0], env)
	idxVal := i.evalExpression(e.Operands[1], env)
	if arr.Array == nil {
		throw(e.Pos(), "cannot index a scalar value")
	}
	sub, err := arrayengine.Index(i.Engine, arr.Array, int(idxVal.Int))
	if err != nil {
		throw(e.Pos(), "%v", err)
	}
	resultType := e.GetType()
	if resultType.Dimension == 0 {
		return wrapValue(sub.Get(nil), leafType(resultType))
	}
	return Value{Type: resultType, Array: sub}
}
