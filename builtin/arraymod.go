package builtin

import (
	"sort"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadArrayModule provides free-function array helpers distinct from the
// container library's array_list std-struct (spec.md §4.4/§4.5): these
// operate directly on the `array` primitive Kind.
func loadArrayModule(r *Registry) value.Value {
	m := newModule()

	m.Set("len", nativeFn("len", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectArrayArgs(ev, args, scope, 1, "array", "len")
		if err != nil {
			return value.Nil(), err
		}
		return value.Num(float64(len(arrs[0].Elems))), nil
	}))
	m.Set("push", nativeFn("push", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectValues(ev, args, scope, 2, "array", "push")
		if err != nil {
			return value.Nil(), err
		}
		if vals[0].Kind != value.KindArray {
			return value.Nil(), r.typeError("array", "push", "argument 0 must be an array")
		}
		arr := vals[0].AsArray()
		arr.Elems = append(arr.Elems, vals[1])
		return value.Nil(), nil
	}))
	m.Set("pop", nativeFn("pop", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectArrayArgs(ev, args, scope, 1, "array", "pop")
		if err != nil {
			return value.Nil(), err
		}
		arr := arrs[0]
		if len(arr.Elems) == 0 {
			return value.Nil(), value.NewError(value.ErrOutOfBounds, "array.pop", "pop on empty array")
		}
		last := arr.Elems[len(arr.Elems)-1]
		arr.Elems = arr.Elems[:len(arr.Elems)-1]
		return last, nil
	}))
	m.Set("reverse", nativeFn("reverse", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectArrayArgs(ev, args, scope, 1, "array", "reverse")
		if err != nil {
			return value.Nil(), err
		}
		src := arrs[0].Elems
		out := make([]value.Value, len(src))
		for i, v := range src {
			out[len(src)-1-i] = v
		}
		return value.ArrayFrom(out), nil
	}))
	m.Set("sort", nativeFn("sort", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectArrayArgs(ev, args, scope, 1, "array", "sort")
		if err != nil {
			return value.Nil(), err
		}
		out := make([]value.Value, len(arrs[0].Elems))
		copy(out, arrs[0].Elems)
		sort.SliceStable(out, func(i, j int) bool { return value.Less(out[i], out[j]) })
		return value.ArrayFrom(out), nil
	}))
	m.Set("concat", nativeFn("concat", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectArrayArgs(ev, args, scope, 2, "array", "concat")
		if err != nil {
			return value.Nil(), err
		}
		out := make([]value.Value, 0, len(arrs[0].Elems)+len(arrs[1].Elems))
		out = append(out, arrs[0].Elems...)
		out = append(out, arrs[1].Elems...)
		return value.ArrayFrom(out), nil
	}))
	m.Set("slice", nativeFn("slice", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectValues(ev, args, scope, 3, "array", "slice")
		if err != nil {
			return value.Nil(), err
		}
		if vals[0].Kind != value.KindArray || vals[1].Kind != value.KindNumber || vals[2].Kind != value.KindNumber {
			return value.Nil(), r.typeError("array", "slice", "expected (array, number, number)")
		}
		arr := vals[0].AsArray()
		from, to := int(vals[1].AsNumber()), int(vals[2].AsNumber())
		if from < 0 || to > len(arr.Elems) || from > to {
			return value.Nil(), value.NewError(value.ErrOutOfBounds, "array.slice", "slice bounds out of range")
		}
		out := make([]value.Value, to-from)
		copy(out, arr.Elems[from:to])
		return value.ArrayFrom(out), nil
	}))
	m.Set("contains", nativeFn("contains", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectValues(ev, args, scope, 2, "array", "contains")
		if err != nil {
			return value.Nil(), err
		}
		if vals[0].Kind != value.KindArray {
			return value.Nil(), r.typeError("array", "contains", "argument 0 must be an array")
		}
		for _, e := range vals[0].AsArray().Elems {
			if value.Equal(e, vals[1]) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	}))

	return value.ObjectOf(m)
}
