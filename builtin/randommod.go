package builtin

import (
	"math/rand"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadRandomModule wraps math/rand; the container library's treap (C5) uses
// the same package directly for its priorities, so this module and that
// package share a source of randomness conceptually without sharing state.
func loadRandomModule(r *Registry) value.Value {
	m := newModule()

	m.Set("float", nativeFn("float", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := r.ExpectValues(ev, args, scope, 0, "random", "float"); err != nil {
			return value.Nil(), err
		}
		return value.Num(rand.Float64()), nil
	}))
	m.Set("int", nativeFn("int", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		nums, err := r.ExpectNumberArgs(ev, args, scope, 2, "random", "int")
		if err != nil {
			return value.Nil(), err
		}
		lo, hi := int(nums[0]), int(nums[1])
		if hi <= lo {
			return value.Nil(), value.NewError(value.ErrTypeMismatch, "random.int", "upper bound must exceed lower bound")
		}
		return value.Num(float64(lo + rand.Intn(hi-lo))), nil
	}))
	m.Set("seed", nativeFn("seed", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		nums, err := r.ExpectNumberArgs(ev, args, scope, 1, "random", "seed")
		if err != nil {
			return value.Nil(), err
		}
		rand.Seed(int64(nums[0]))
		return value.Nil(), nil
	}))
	m.Set("shuffle", nativeFn("shuffle", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectArrayArgs(ev, args, scope, 1, "random", "shuffle")
		if err != nil {
			return value.Nil(), err
		}
		arr := arrs[0]
		rand.Shuffle(len(arr.Elems), func(i, j int) {
			arr.Elems[i], arr.Elems[j] = arr.Elems[j], arr.Elems[i]
		})
		return value.Nil(), nil
	}))

	return value.ObjectOf(m)
}
