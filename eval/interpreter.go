// Package eval implements Vane's tree-walking evaluator (C3): EvalExpr and
// EvalStmt reduce the AST (package ast) to Values (package value), using an
// Environment (package environment) chain for scoping and a
// builtin.Registry for module imports and native type construction.
package eval

import (
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/builtin"
	"github.com/vanelang/vane/environment"
	"github.com/vanelang/vane/value"
)

// Interpreter owns the root environment and the builtin registry for one
// top-level evaluation. It implements value.Evaluator so constructors and
// method handlers can evaluate their own argument expressions.
type Interpreter struct {
	Root     *environment.Environment
	Registry *builtin.Registry
}

// New constructs an Interpreter with a fresh root environment, a registry
// wired to the given writers (spec.md §6's process-wide "out"/"err"
// writers), and every native type pre-bound as a first-class std_struct
// value in the root scope (so `new stack()` resolves `stack` via ordinary
// identifier lookup, per spec.md §3.3/§4.3).
func New(out, err io.Writer) *Interpreter {
	reg := builtin.NewRegistry(out, err)
	builtin.RegisterStandardModules(reg)
	builtin.RegisterStandardTypes(reg)

	root := environment.New()
	for name, st := range reg.Types() {
		root.Define(name, value.StdStructVal(st))
	}

	return &Interpreter{Root: root, Registry: reg}
}

// Run evaluates a top-level program (a sequence of statements) in the root
// environment and returns the final statement's value, unwrapping a
// top-level return_signal if one propagates all the way out.
func (it *Interpreter) Run(program []ast.Stmt) (value.Value, error) {
	var last value.Value
	for _, stmt := range program {
		v, err := it.EvalStmt(stmt, it.Root)
		if err != nil {
			return value.Nil(), err
		}
		last = v
		if last.Kind == value.KindReturn {
			return last.ReturnPayload(), nil
		}
	}
	return last, nil
}

// EvalExpr implements value.Evaluator.
func (it *Interpreter) EvalExpr(expr ast.Expr, scope value.Scope) (value.Value, error) {
	return it.evalExpr(expr, scope)
}
