package semantic

import (
	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/types"
)

// annotateDeclaration type-checks one declaration and binds its name into
// env, mutating env in place (the caller decides whether that mutation is
// visible to later code — at top level and inside a block it always is,
// since both pass their own live scope, never a read-only copy).
func (a *Analyzer) annotateDeclaration(decl ast.Declaration, env scope) {
	switch d := decl.(type) {
	case *ast.VarDecl:
		a.annotateVarDecl(d, env)
	case *ast.FunctionDef:
		a.annotateFunctionDef(d, env)
	case *ast.RecordTypeDecl:
		a.annotateRecordTypeDecl(d, env)
	}
}

func (a *Analyzer) annotateVarDecl(d *ast.VarDecl, env scope) {
	var declared types.Type
	hasDeclared := d.DeclaredType != nil
	if hasDeclared {
		declared = a.resolveTypeExpr(d.DeclaredType, env)
	}

	if d.Initializer != nil {
		a.annotateExpression(d.Initializer, env)
		exprType := d.Initializer.GetType()
		if hasDeclared && !declared.Equals(exprType) {
			a.addError("declared type "+declared.String()+" does not match initializer type "+exprType.String(), d.Pos())
		}
		if hasDeclared {
			d.ResolvedType = declared
		} else {
			d.ResolvedType = exprType
		}
	} else {
		d.ResolvedType = declared
	}

	env[d.Name] = d.ResolvedType
}

func (a *Analyzer) annotateFunctionDef(d *ast.FunctionDef, env scope) {
	paramTypes := make([]types.Type, len(d.Params))
	for i, p := range d.Params {
		paramTypes[i] = a.resolveTypeExpr(p.Type, env)
	}

	var declaredReturn types.Type
	hasDeclaredReturn := d.ReturnType != nil
	if hasDeclaredReturn {
		declaredReturn = a.resolveTypeExpr(d.ReturnType, env)
	}

	// Bind the function's (possibly provisional) type before annotating its
	// body, so a recursive call inside the body resolves.
	provisional := types.NewScalar(types.Function{Params: paramTypes, Return: declaredReturn})
	env[d.Name] = provisional

	local := env.clone()
	for i, p := range d.Params {
		local[p.Name] = paramTypes[i]
	}
	a.annotateBlock(d.Body, local)
	bodyType := d.Body.GetType()

	finalReturn := bodyType
	if hasDeclaredReturn {
		if !declaredReturn.Equals(bodyType) {
			a.addError("function "+d.Name+" declared to return "+declaredReturn.String()+" but body evaluates to "+bodyType.String(), d.Pos())
		}
		finalReturn = declaredReturn
	}

	fnType := types.NewScalar(types.Function{Params: paramTypes, Return: finalReturn})
	env[d.Name] = fnType
	d.ResolvedType = fnType
}

func (a *Analyzer) annotateRecordTypeDecl(d *ast.RecordTypeDecl, env scope) {
	fields := make(map[string]types.Type, len(d.Fields))
	for _, f := range d.Fields {
		fields[f.Name] = a.resolveTypeExpr(f.Type, env)
	}
	rt := types.NewScalar(types.Record{Name: d.Name, Fields: fields})
	env[d.Name] = rt
	d.ResolvedType = rt
}

// resolveTypeExpr turns a syntactic TypeExpr into a resolved semantic Type,
// looking up record names against already-registered declarations.
func (a *Analyzer) resolveTypeExpr(te ast.TypeExpr, env scope) types.Type {
	nt, ok := te.(*ast.NamedTypeExpr)
	if !ok {
		return types.Type{}
	}

	var base types.BaseType
	switch nt.Name {
	case "int":
		base = types.Int
	case "float":
		base = types.Float
	case "char":
		base = types.Char
	case "bool":
		base = types.Bool
	case "unit":
		base = types.Unit
	default:
		if declared, ok := env[nt.Name]; ok {
			if rec, ok := declared.AsRecord(); ok {
				base = rec
				break
			}
		}
		a.addError("unknown type "+nt.Name, nt.Pos())
		base = types.Record{Name: nt.Name}
	}

	return types.NewArray(base, nt.Dimension)
}
