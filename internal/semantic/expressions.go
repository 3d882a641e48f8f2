package semantic

import (
	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/types"
)

// annotateExpression attaches a resolved types.Type to expr, recursing
// into sub-expressions first (post-order), mirroring the reference
// annotator's single bottom-up pass.
func (a *Analyzer) annotateExpression(expr ast.Expression, env scope) {
	switch e := expr.(type) {
	case *ast.PrimitiveLiteral:
		e.SetType(types.NewScalar(types.Primitive{Kind: e.Kind}))

	case *ast.VarRef:
		t, ok := env[e.Name]
		if !ok {
			a.addError("undefined variable "+e.Name, e.Pos())
			e.SetType(types.Type{})
			return
		}
		e.SetType(t)

	case *ast.ArrayLiteral:
		a.annotateArrayLiteral(e, env)

	case *ast.RecordLiteral:
		a.annotateRecordLiteral(e, env)

	case *ast.FieldRef:
		a.annotateFieldRef(e, env)

	case *ast.LambdaLiteral:
		a.annotateLambda(e, env)

	case *ast.FunctionCall:
		a.annotateFunctionCall(e, env)

	case *ast.OperatorCall:
		a.annotateOperatorCall(e, env)

	case *ast.IfExpr:
		a.annotateIfExpr(e, env)

	case *ast.BlockExpr:
		a.annotateBlock(e, env)

	default:
		a.addError("internal: unhandled expression node", expr.Pos())
	}
}

func (a *Analyzer) annotateArrayLiteral(e *ast.ArrayLiteral, env scope) {
	if len(e.Elements) == 0 {
		e.SetType(types.NewArray(types.Unit, 1))
		return
	}
	for _, el := range e.Elements {
		a.annotateExpression(el, env)
	}
	first := e.Elements[0].GetType()
	for _, el := range e.Elements[1:] {
		if !el.GetType().Equals(first) {
			a.addError("array elements must all have the same type, got "+first.String()+" and "+el.GetType().String(), el.Pos())
		}
	}
	e.SetType(types.NewArray(first.Base, first.Dimension+1))
}

func (a *Analyzer) annotateRecordLiteral(e *ast.RecordLiteral, env scope) {
	for _, name := range e.FieldOrder {
		a.annotateExpression(e.Fields[name], env)
	}

	if a.strictRecords {
		declared, ok := env[e.RecordName]
		if !ok {
			a.addError("unknown record type "+e.RecordName, e.Pos())
		} else if rec, ok := declared.AsRecord(); ok {
			seen := make(map[string]bool, len(e.FieldOrder))
			for _, name := range e.FieldOrder {
				seen[name] = true
				if _, ok := rec.Fields[name]; !ok {
					a.addError("record literal for "+e.RecordName+" has unknown field "+name, e.Pos())
				}
			}
			for name := range rec.Fields {
				if !seen[name] {
					a.addError("record literal for "+e.RecordName+" is missing field "+name, e.Pos())
				}
			}
		}
	}

	e.SetType(types.NewScalar(types.Record{Name: e.RecordName}))
}

func (a *Analyzer) annotateFieldRef(e *ast.FieldRef, env scope) {
	a.annotateExpression(e.Record, env)
	recType := e.Record.GetType()

	rec, ok := recType.AsRecord()
	if !ok {
		a.addError("field access on a non-record expression of type "+recType.String(), e.Pos())
		e.SetType(types.Type{})
		return
	}

	declared, ok := env[rec.Name]
	if !ok {
		a.addError("unknown record type "+rec.Name, e.Pos())
		e.SetType(types.Type{})
		return
	}
	declRec, _ := declared.AsRecord()
	fieldType, ok := declRec.Fields[e.Field]
	if !ok {
		a.addError("record "+rec.Name+" has no field "+e.Field, e.Pos())
		e.SetType(types.Type{})
		return
	}

	e.SetType(types.NewArray(fieldType.Base, fieldType.Dimension+recType.Dimension))
}

func (a *Analyzer) annotateLambda(e *ast.LambdaLiteral, env scope) {
	paramTypes := make([]types.Type, len(e.Params))
	for i, p := range e.Params {
		if p.Type == nil {
			a.addError("lambda parameter "+p.Name+" needs a declared type", e.Pos())
			continue
		}
		paramTypes[i] = a.resolveTypeExpr(p.Type, env)
	}

	local := env.clone()
	for i, p := range e.Params {
		local[p.Name] = paramTypes[i]
	}
	a.annotateBlock(e.Body, local)
	bodyType := e.Body.GetType()

	returnType := bodyType
	if e.ReturnType != nil {
		declared := a.resolveTypeExpr(e.ReturnType, env)
		if !declared.Equals(bodyType) {
			a.addError("lambda declared to return "+declared.String()+" but body evaluates to "+bodyType.String(), e.Pos())
		}
		returnType = declared
	}

	e.SetType(types.NewScalar(types.Function{Params: paramTypes, Return: returnType}))
}

func (a *Analyzer) annotateFunctionCall(e *ast.FunctionCall, env scope) {
	a.annotateExpression(e.Callee, env)
	argTypes := make([]types.Type, len(e.Args))
	for i, arg := range e.Args {
		a.annotateExpression(arg, env)
		argTypes[i] = arg.GetType()
	}

	if ref, ok := e.Callee.(*ast.VarRef); ok {
		if result, handled := a.annotateBuiltinCall(ref.Name, e, argTypes); handled {
			e.SetType(result)
			return
		}
	}

	calleeType := e.Callee.GetType()
	fn, ok := calleeType.AsFunction()
	if !ok {
		a.addError("cannot call a value of type "+calleeType.String(), e.Pos())
		e.SetType(types.Type{})
		return
	}

	result, errMsg := a.checkBroadcast(fn, argTypes)
	if errMsg != "" {
		a.addError(errMsg, e.Pos())
		e.SetType(types.Type{})
		return
	}
	e.SetType(result)
}

// annotateBuiltinCall gives the standard library functions the permissive,
// element-type-agnostic signatures a fixed types.Function can't express:
// print accepts any number of values of any type, shape/len/reshape accept
// an array of any base type and rank. It reports whether name named a
// builtin at all.
func (a *Analyzer) annotateBuiltinCall(name string, e *ast.FunctionCall, argTypes []types.Type) (types.Type, bool) {
	switch name {
	case "print":
		// Arity n>=0: each argument's rendered value is printed space-separated.
		return types.NewScalar(types.Unit), true

	case "zeros", "ones":
		return a.annotateFillCall(name, e, argTypes), true

	case "shape":
		if len(argTypes) != 1 || argTypes[0].Dimension < 1 {
			a.addError("shape expects an array argument", e.Pos())
		}
		return types.NewArray(types.Int, 1), true

	case "len":
		if len(argTypes) != 1 || argTypes[0].Dimension < 1 {
			a.addError("len expects an array argument", e.Pos())
		}
		return types.NewScalar(types.Int), true

	case "reshape":
		if len(argTypes) != 2 {
			a.addError("reshape expects an array and a shape argument", e.Pos())
			return types.Type{}, true
		}
		if argTypes[0].Dimension < 1 {
			a.addError("reshape's first argument must be an array", e.Pos())
		}
		if argTypes[1].Dimension != 1 || !argTypes[1].WithDimension(0).IsPrimitiveKind(types.KindInt) {
			a.addError("reshape's second argument must be an int[1] shape list", e.Pos())
		}
		return types.NewArray(argTypes[0].Base, argTypes[0].Dimension), true

	default:
		return types.Type{}, false
	}
}

// annotateFillCall type-checks zeros/ones: arg0 is a literal dims array
// (e.g. {2, 2}), whose element count fixes the result's rank at compile
// time the same way every other array type's Dimension is a compile-time
// property; an optional arg1 int literal tags the element base type (0 or
// absent -> float, nonzero -> int), matching
// original_source/interpreter/builtins_.py's `init_type` parameter.
func (a *Analyzer) annotateFillCall(name string, e *ast.FunctionCall, argTypes []types.Type) types.Type {
	if len(e.Args) < 1 || len(e.Args) > 2 {
		a.addError(name+" expects a dims array and an optional int type tag", e.Pos())
		return types.NewArray(types.Float, 1)
	}

	dimsLit, ok := e.Args[0].(*ast.ArrayLiteral)
	if !ok {
		a.addError(name+"'s dims argument must be a literal array of int dims, e.g. "+name+"({2, 2})", e.Pos())
		return types.NewArray(types.Float, 1)
	}
	if !argTypes[0].WithDimension(0).IsPrimitiveKind(types.KindInt) || argTypes[0].Dimension != 1 {
		a.addError(name+"'s dims argument must be an int[] array", e.Pos())
	}
	rank := len(dimsLit.Elements)
	if rank == 0 {
		a.addError(name+"'s dims array must name at least one dimension", e.Pos())
		rank = 1
	}

	base := types.Float
	if len(e.Args) == 2 {
		if !argTypes[1].IsPrimitiveKind(types.KindInt) {
			a.addError(name+"'s optional second argument must be an int type tag (0=float, 1=int)", e.Pos())
		}
		if tag, ok := e.Args[1].(*ast.PrimitiveLiteral); ok && tag.Kind == types.KindInt && tag.IntVal != 0 {
			base = types.Int
		}
	}
	return types.NewArray(base, rank)
}

var comparisonOps = map[string]bool{"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true}
var logicalOps = map[string]bool{"&&": true, "||": true}
var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}

func (a *Analyzer) annotateOperatorCall(e *ast.OperatorCall, env scope) {
	for _, op := range e.Operands {
		a.annotateExpression(op, env)
	}

	if e.Operator == "[]" {
		a.annotateIndex(e)
		return
	}

	if len(e.Operands) == 1 {
		operandType := e.Operands[0].GetType()
		if e.Operator == "!" && (operandType.Base == nil || !operandType.Base.Equals(types.Bool)) {
			a.addError("operator ! requires a bool operand, got "+operandType.String(), e.Pos())
		}
		e.SetType(operandType)
		return
	}

	if len(e.Operands) != 2 {
		a.addError("operator "+e.Operator+" has an unsupported arity", e.Pos())
		e.SetType(types.Type{})
		return
	}

	left, right := e.Operands[0].GetType(), e.Operands[1].GetType()
	if left.Base == nil || right.Base == nil || !left.Base.Equals(right.Base) {
		a.addError("operands of "+e.Operator+" must share a base type, got "+left.String()+" and "+right.String(), e.Pos())
		e.SetType(types.Type{})
		return
	}

	maxDim := left.Dimension
	if right.Dimension > maxDim {
		maxDim = right.Dimension
	}

	switch {
	case arithmeticOps[e.Operator]:
		e.SetType(types.NewArray(left.Base, maxDim))
	case comparisonOps[e.Operator]:
		e.SetType(types.NewArray(types.Bool, maxDim))
	case logicalOps[e.Operator]:
		if !left.IsPrimitiveKind(types.KindBool) {
			a.addError("operands of "+e.Operator+" must be bool", e.Pos())
		}
		e.SetType(types.NewArray(types.Bool, maxDim))
	default:
		a.addError("unknown operator "+e.Operator, e.Pos())
		e.SetType(types.Type{})
	}
}

func (a *Analyzer) annotateIndex(e *ast.OperatorCall) {
	if len(e.Operands) != 2 {
		a.addError("index operator requires exactly two operands", e.Pos())
		e.SetType(types.Type{})
		return
	}
	arrType, idxType := e.Operands[0].GetType(), e.Operands[1].GetType()
	if arrType.Dimension < 1 {
		a.addError("cannot index a scalar value of type "+arrType.String(), e.Pos())
		e.SetType(types.Type{})
		return
	}
	if !idxType.IsPrimitiveKind(types.KindInt) {
		a.addError("index must be an int, got "+idxType.String(), e.Pos())
	}
	e.SetType(types.NewArray(arrType.Base, arrType.Dimension-1))
}

func (a *Analyzer) annotateIfExpr(e *ast.IfExpr, env scope) {
	a.annotateExpression(e.Condition, env)
	if !e.Condition.GetType().IsPrimitiveKind(types.KindBool) {
		a.addError("if condition must be bool, got "+e.Condition.GetType().String(), e.Condition.Pos())
	}

	a.annotateExpression(e.Then, env)
	a.annotateExpression(e.Else, env)

	thenType, elseType := e.Then.GetType(), e.Else.GetType()
	if !thenType.Equals(elseType) {
		a.addError("if branches must have the same type, got "+thenType.String()+" and "+elseType.String(), e.Pos())
	}
	e.SetType(thenType)
}

// annotateBlock type-checks a block's statements in order under a cloned
// scope; declarations made inside never escape back into env, matching the
// snapshot-copy environment-threading rule.
func (a *Analyzer) annotateBlock(block *ast.BlockExpr, env scope) {
	local := env.clone()
	lastType := types.NewScalar(types.Unit)

	for _, stmt := range block.Statements {
		switch s := stmt.(type) {
		case *ast.ExprStmt:
			a.annotateExpression(s.Expression, local)
			lastType = s.Expression.GetType()

		case *ast.Assignment:
			a.annotateAssignment(s, local)
			lastType = types.NewScalar(types.Unit)

		case *ast.WhileLoop:
			a.annotateExpression(s.Condition, local)
			if !s.Condition.GetType().IsPrimitiveKind(types.KindBool) {
				a.addError("while condition must be bool, got "+s.Condition.GetType().String(), s.Condition.Pos())
			}
			a.annotateExpression(s.Body, local)
			lastType = types.NewScalar(types.Unit)

		case *ast.DeclStmt:
			a.annotateDeclaration(s.Decl, local)
			lastType = types.NewScalar(types.Unit)
		}
	}

	block.SetType(lastType)
}

func (a *Analyzer) annotateAssignment(s *ast.Assignment, env scope) {
	a.annotateExpression(s.Value, env)
	valueType := s.Value.GetType()

	switch target := s.Target.(type) {
	case *ast.VarRef:
		t, ok := env[target.Name]
		if !ok {
			a.addError("assignment to undeclared variable "+target.Name, s.Pos())
			return
		}
		if !t.Equals(valueType) {
			a.addError("cannot assign "+valueType.String()+" to "+target.Name+" of type "+t.String(), s.Pos())
		}
		target.SetType(t)

	case *ast.FieldRef:
		a.annotateExpression(target, env)
		if !target.GetType().Equals(valueType) {
			a.addError("cannot assign "+valueType.String()+" to field of type "+target.GetType().String(), s.Pos())
		}

	default:
		a.addError("invalid assignment target", s.Pos())
	}
}
