package builtin

import (
	"sync"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// threadState is the native payload behind a `thread` std_instance
// (spec.md §4.8): a done flag plus the worker's eventual result, guarded by
// a mutex since join()/done() may be called from the spawning goroutine
// while the worker is still writing to it.
type threadState struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	done   bool
	result value.Value
	err    error
}

// registerThreadType registers the `thread` native type: `new thread(fn,
// args...)` clones the calling environment (value.Scope.CloneScope,
// grounded on environment.Environment.Clone), then spawns a goroutine that
// invokes fn(args...) in the clone. Arguments are evaluated once in the
// caller's scope and re-injected into the call via ast.ValueLit so the
// worker never re-evaluates expressions against a scope it wasn't written
// against.
func registerThreadType(r *Registry) {
	threadStruct := &value.StdStruct{Name: "thread"}

	threadStruct.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if len(args) < 1 {
			return value.Nil(), value.NewError(value.ErrArityMismatch, "thread.new", "expected a callable and zero or more arguments")
		}
		fnVal, err := ev.EvalExpr(args[0], scope)
		if err != nil {
			return value.Nil(), err
		}
		fnVal = value.Deref(fnVal)
		if !fnVal.IsCallable() {
			return value.Nil(), value.NewError(value.ErrTypeMismatch, "thread.new", "first argument must be a function or bound method")
		}

		callArgs := make([]ast.Expr, len(args)-1)
		for i, a := range args[1:] {
			v, err := ev.EvalExpr(a, scope)
			if err != nil {
				return value.Nil(), err
			}
			callArgs[i] = ast.ValueLit{Value: v}
		}

		cloned := scope.CloneScope()

		st := &threadState{}
		st.wg.Add(1)
		go func() {
			defer st.wg.Done()
			callExpr := ast.CallExpr{Callee: ast.ValueLit{Value: fnVal}, Args: callArgs}
			result, cerr := ev.EvalExpr(callExpr, cloned)
			st.mu.Lock()
			st.result = result
			st.err = cerr
			st.done = true
			st.mu.Unlock()
		}()

		inst := value.NewStdInstance(threadStruct)
		inst.SetInternal(st)
		return value.StdInstanceVal(inst), nil
	}

	threadStruct.Methods = map[string]value.MethodFunc{
		"join": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := r.ExpectValues(ev, args, scope, 0, "thread", "join"); err != nil {
				return value.Nil(), err
			}
			ts, err := threadPayload(this)
			if err != nil {
				return value.Nil(), err
			}
			ts.wg.Wait()
			ts.mu.Lock()
			result, cerr := ts.result, ts.err
			ts.mu.Unlock()
			if cerr != nil {
				return value.Nil(), cerr
			}
			return result, nil
		},
		"done": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := r.ExpectValues(ev, args, scope, 0, "thread", "done"); err != nil {
				return value.Nil(), err
			}
			ts, err := threadPayload(this)
			if err != nil {
				return value.Nil(), err
			}
			ts.mu.Lock()
			d := ts.done
			ts.mu.Unlock()
			return value.Bool(d), nil
		},
	}

	r.RegisterType("thread", threadStruct)
}

func threadPayload(this value.Value) (*threadState, error) {
	inst := this.AsStdInstance()
	tv, err := inst.Internal()
	if err != nil {
		return nil, err
	}
	ts, ok := tv.Payload.(*threadState)
	if !ok {
		return nil, value.NewError(value.ErrMalformedInstance, "thread", "__internal payload is not a threadState")
	}
	return ts, nil
}
