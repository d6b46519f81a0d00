package eval

import (
	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/environment"
	"github.com/vanelang/vane/value"
)

// evalCall implements spec.md §4.3's Call rule: `call(f, args, env)`.
func (it *Interpreter) evalCall(e ast.CallExpr, scope value.Scope) (value.Value, error) {
	callee, err := it.evalExpr(e.Callee, scope)
	if err != nil {
		return value.Nil(), err
	}
	callee = value.Deref(callee)
	return it.Call(callee, e.Args, scope)
}

// Call dispatches on callee's Kind per spec.md §4.1's `call` operation: a
// user closure evaluates each arg in scope, binds formals in a new child
// scope of the closure's captured environment, evaluates the body, and
// unwraps a return_signal if one was produced; a native function or bound
// method hands the unevaluated argument expressions straight to its
// handler, which evaluates them itself via the Evaluator interface.
func (it *Interpreter) Call(callee value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
	switch callee.Kind {
	case value.KindFunction:
		fn := callee.AsFunction()
		if fn.IsNative() {
			return fn.Native(it, args, scope)
		}
		return it.callClosure(fn, args, scope)
	case value.KindBoundMethod:
		bm := callee.AsBoundMethod()
		return bm.Fn(it, bm.Receiver, args, scope)
	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.call", "value is not callable")
	}
}

func (it *Interpreter) callClosure(fn *value.Function, args []ast.Expr, scope value.Scope) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return value.Nil(), value.NewError(value.ErrArityMismatch, "eval.call",
			"function expects different number of arguments")
	}

	argVals := make([]value.Value, len(args))
	for i, a := range args {
		v, err := it.evalExpr(a, scope)
		if err != nil {
			return value.Nil(), err
		}
		argVals[i] = v
	}

	callEnv, ok := fn.Env.(*environment.Environment)
	if !ok {
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.call", "closure has no valid captured environment")
	}
	local := environment.Init(callEnv)
	for i, name := range fn.Params {
		local.Define(name, argVals[i])
	}

	result, err := it.EvalStmt(fn.Body, local)
	if err != nil {
		return value.Nil(), err
	}
	if result.Kind == value.KindReturn {
		return result.ReturnPayload(), nil
	}
	return value.Nil(), nil
}
