package value

import (
	"io"

	"github.com/vanelang/vane/ast"
)

// Scope is the subset of environment.Environment's surface that the value
// package needs in order to describe constructors, methods, and closures
// without importing package environment (which itself depends on package
// value for the Values it binds). Package environment's *Environment
// implements this interface; package eval accepts the concrete type and
// passes it through as a Scope.
type Scope interface {
	Lookup(name string) (Value, bool)
	Define(name string, v Value)
	DefineConst(name string, v Value)
	Assign(name string, v Value) error
	Child() Scope
	// CloneScope returns a detached snapshot suitable for thread handoff
	// (spec.md §3.2/§4.8): existing bindings alias the same Cells, new
	// bindings in either copy do not leak to the other.
	CloneScope() Scope
}

// Evaluator is the subset of eval's surface that constructors and method
// handlers need in order to evaluate their own argument expressions. The
// concrete *eval.Interpreter implements this; it is threaded through
// every builtin call so native code never needs to special-case how
// expressions are reduced.
type Evaluator interface {
	EvalExpr(expr ast.Expr, scope Scope) (Value, error)
}

// ConstructorFunc builds a new Value (almost always a std_instance) from
// unevaluated constructor-call argument expressions. Handlers call
// ev.EvalExpr themselves so that argument evaluation order and scope are
// exactly what the calling convention for ordinary function calls would
// produce (spec.md §4.1 "call").
type ConstructorFunc func(ev Evaluator, args []ast.Expr, scope Scope) (Value, error)

// MethodFunc is a native method handler bound to a receiver.
type MethodFunc func(ev Evaluator, this Value, args []ast.Expr, scope Scope) (Value, error)

// NativeFunc is a native module-function handler (spec.md §3.3's Module
// kind): a `function` Value wrapping a handler instead of an AST body.
type NativeFunc func(ev Evaluator, args []ast.Expr, scope Scope) (Value, error)

// TypeRegistrar is the minimal surface package container needs from
// builtin.Registry to register its native types, kept here so container
// never has to import builtin (which itself would need to import container
// to wire them up — this interface breaks that cycle).
type TypeRegistrar interface {
	RegisterType(name string, desc *StdStruct)
	// ErrWriter exposes the process-wide "err" writer (spec.md §6) so
	// package container's handlers can follow the same diagnostic policy
	// as package builtin's (spec.md §7: "handlers write a human-readable
	// diagnostic to the err-writer") without importing package builtin.
	ErrWriter() io.Writer
}
