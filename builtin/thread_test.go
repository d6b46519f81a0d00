package builtin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// callEval extends testEval with ast.CallExpr support, needed because
// registerThreadType's worker goroutine evaluates a synthesized CallExpr
// against the cloned scope.
type callEval struct{ testEval }

func (e callEval) EvalExpr(expr ast.Expr, scope value.Scope) (value.Value, error) {
	if call, ok := expr.(ast.CallExpr); ok {
		fnVal, err := e.testEval.EvalExpr(call.Callee, scope)
		if err != nil {
			return value.Nil(), err
		}
		fn := fnVal.AsFunction()
		return fn.Native(e, call.Args, scope)
	}
	return e.testEval.EvalExpr(expr, scope)
}

func doubleFn() value.Value {
	return value.FunctionVal(&value.Function{
		Name: "double",
		Native: func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
			v, err := ev.EvalExpr(args[0], scope)
			if err != nil {
				return value.Nil(), err
			}
			return value.Num(v.AsNumber() * 2), nil
		},
	})
}

func failingFn() value.Value {
	return value.FunctionVal(&value.Function{
		Name: "fails",
		Native: func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
			return value.Nil(), value.NewError(value.ErrTypeMismatch, "test.fails", "always fails")
		},
	})
}

func TestThreadJoinReturnsWorkerResult(t *testing.T) {
	r := newTestRegistry()
	registerThreadType(r)
	st, ok := r.Type("thread")
	require.True(t, ok)

	inst, err := st.Constructor(callEval{}, []ast.Expr{valLit(doubleFn()), numLit(21)}, newTestScope())
	require.NoError(t, err)

	fn, _ := st.Method("join")
	result, err := fn(callEval{}, inst, nil, newTestScope())
	require.NoError(t, err)
	assert.Equal(t, float64(42), result.AsNumber())
}

func TestThreadDoneBecomesTrueAfterJoin(t *testing.T) {
	r := newTestRegistry()
	registerThreadType(r)
	st, ok := r.Type("thread")
	require.True(t, ok)

	inst, err := st.Constructor(callEval{}, []ast.Expr{valLit(doubleFn()), numLit(1)}, newTestScope())
	require.NoError(t, err)

	joinFn, _ := st.Method("join")
	_, err = joinFn(callEval{}, inst, nil, newTestScope())
	require.NoError(t, err)

	doneFn, _ := st.Method("done")
	done, err := doneFn(callEval{}, inst, nil, newTestScope())
	require.NoError(t, err)
	assert.True(t, done.AsBool())
}

func TestThreadJoinPropagatesWorkerError(t *testing.T) {
	r := newTestRegistry()
	registerThreadType(r)
	st, ok := r.Type("thread")
	require.True(t, ok)

	inst, err := st.Constructor(callEval{}, []ast.Expr{valLit(failingFn())}, newTestScope())
	require.NoError(t, err)

	joinFn, _ := st.Method("join")
	_, err = joinFn(callEval{}, inst, nil, newTestScope())
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrTypeMismatch, kind)
}

func TestThreadConstructorRejectsNonCallable(t *testing.T) {
	r := newTestRegistry()
	registerThreadType(r)
	st, ok := r.Type("thread")
	require.True(t, ok)

	_, err := st.Constructor(callEval{}, []ast.Expr{numLit(1)}, newTestScope())
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrTypeMismatch, kind)
}

func TestThreadDoneIsFalseImmediatelyForSlowWorker(t *testing.T) {
	r := newTestRegistry()
	registerThreadType(r)
	st, ok := r.Type("thread")
	require.True(t, ok)

	slow := value.FunctionVal(&value.Function{
		Name: "slow",
		Native: func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
			time.Sleep(20 * time.Millisecond)
			return value.Num(1), nil
		},
	})

	inst, err := st.Constructor(callEval{}, []ast.Expr{valLit(slow)}, newTestScope())
	require.NoError(t, err)

	doneFn, _ := st.Method("done")
	done, err := doneFn(callEval{}, inst, nil, newTestScope())
	require.NoError(t, err)
	assert.False(t, done.AsBool())

	joinFn, _ := st.Method("join")
	_, err = joinFn(callEval{}, inst, nil, newTestScope())
	require.NoError(t, err)
}
