// Package semantic implements the post-order type annotator and checker:
// it walks the parsed AST bottom-up, attaching a resolved types.Type to
// every expression and declaration, and collecting TypeErrors along the
// way instead of stopping at the first one.
package semantic

import (
	"github.com/arrlang/arrlang/internal/ast"
	"github.com/arrlang/arrlang/internal/lexer"
	"github.com/arrlang/arrlang/internal/types"
)

// scope maps names visible at a point in the program to their resolved
// type. Nested blocks work on a cloned scope that is never written back
// into its parent, matching the "fresh local environment is a snapshot
// copy" invariant: declarations made inside a block or function body are
// invisible once that block or body finishes annotating.
type scope map[string]types.Type

func (s scope) clone() scope {
	ns := make(scope, len(s))
	for k, v := range s {
		ns[k] = v
	}
	return ns
}

// Option configures an Analyzer constructed via NewAnalyzer.
type Option func(*Analyzer)

// WithStrictRecords enables the opt-in RecordLiteral field-checking mode:
// the field name set supplied by a literal must exactly match its record's
// declared schema (see SPEC_FULL.md §3/§4.2).
func WithStrictRecords(strict bool) Option {
	return func(a *Analyzer) { a.strictRecords = strict }
}

// WithSeedTypes pre-populates the global scope with previously-resolved
// bindings before annotating Program — the repl command uses this so a
// name declared on one line type-checks on the next.
func WithSeedTypes(seed map[string]types.Type) Option {
	return func(a *Analyzer) { a.seed = seed }
}

// Analyzer runs the annotation/checking pass over a Program.
type Analyzer struct {
	strictRecords bool
	seed          map[string]types.Type
	errors        []*TypeError
	lastGlobal    scope
}

// NewAnalyzer constructs an Analyzer with the given options applied.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Errors returns every TypeError recovered during Analyze.
func (a *Analyzer) Errors() []*TypeError { return a.errors }

func (a *Analyzer) addError(msg string, pos lexer.Position) {
	a.errors = append(a.errors, &TypeError{Message: msg, Position: pos})
}

// builtinSignatures seeds the global scope with the standard library's
// names and placeholder function types, so references to them resolve. Calls
// to them are not checked against these signatures: annotateFunctionCall
// routes every call of a builtin name through annotateBuiltinCall.
func builtinSignatures() scope {
	intArr := types.NewArray(types.Int, 1)
	anyArr1 := types.NewArray(types.Int, 1) // zeros/ones/reshape dims argument
	return scope{
		"print":   types.NewScalar(types.Function{Params: []types.Type{types.NewArray(types.Int, 1)}, Return: types.NewScalar(types.Unit)}),
		"zeros":   types.NewScalar(types.Function{Params: []types.Type{anyArr1}, Return: types.NewArray(types.Float, 1)}),
		"ones":    types.NewScalar(types.Function{Params: []types.Type{anyArr1}, Return: types.NewArray(types.Float, 1)}),
		"shape":   types.NewScalar(types.Function{Params: []types.Type{types.NewArray(types.Float, 1)}, Return: intArr}),
		"len":     types.NewScalar(types.Function{Params: []types.Type{types.NewArray(types.Float, 1)}, Return: types.NewScalar(types.Int)}),
		"reshape": types.NewScalar(types.Function{Params: []types.Type{types.NewArray(types.Float, 1), intArr}, Return: types.NewArray(types.Float, 1)}),
	}
}

// Analyze type-annotates every top-level declaration in program in order,
// binding each declaration's name into the shared global scope before
// moving to the next (so later declarations, and a function's own body,
// can refer to earlier ones — and, for a function, to itself).
func (a *Analyzer) Analyze(program *ast.Program) []*TypeError {
	global := builtinSignatures()
	for name, t := range a.seed {
		global[name] = t
	}
	for _, decl := range program.Declarations {
		a.annotateDeclaration(decl, global)
	}
	a.lastGlobal = global
	return a.errors
}

// GlobalTypes returns every name bound in the global scope after Analyze
// has run, builtins included — used to seed the next Analyzer in a
// multi-line session like the repl command.
func (a *Analyzer) GlobalTypes() map[string]types.Type {
	out := make(map[string]types.Type, len(a.lastGlobal))
	for name, t := range a.lastGlobal {
		out[name] = t
	}
	return out
}
