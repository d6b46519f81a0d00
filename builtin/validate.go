package builtin

import (
	"fmt"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// ExpectValues evaluates exactly n argument expressions in scope and
// returns their Values, writing a formatted diagnostic to the registry's
// err-writer and failing with arity_mismatch if the count doesn't match
// (spec.md §4.4).
func (r *Registry) ExpectValues(ev value.Evaluator, args []ast.Expr, scope value.Scope, n int, module, fn string) ([]value.Value, error) {
	if len(args) != n {
		fmt.Fprintf(r.Err, "%s.%s: expected %d argument(s), got %d\n", module, fn, n, len(args))
		return nil, value.NewError(value.ErrArityMismatch, module+"."+fn,
			fmt.Sprintf("expected %d argument(s), got %d", n, len(args)))
	}
	out := make([]value.Value, n)
	for i, a := range args {
		v, err := ev.EvalExpr(a, scope)
		if err != nil {
			return nil, err
		}
		out[i] = value.Deref(v)
	}
	return out, nil
}

// ExpectAtLeast evaluates all argument expressions, failing if fewer than n
// were given.
func (r *Registry) ExpectAtLeast(ev value.Evaluator, args []ast.Expr, scope value.Scope, n int, module, fn string) ([]value.Value, error) {
	if len(args) < n {
		fmt.Fprintf(r.Err, "%s.%s: expected at least %d argument(s), got %d\n", module, fn, n, len(args))
		return nil, value.NewError(value.ErrArityMismatch, module+"."+fn,
			fmt.Sprintf("expected at least %d argument(s), got %d", n, len(args)))
	}
	out := make([]value.Value, len(args))
	for i, a := range args {
		v, err := ev.EvalExpr(a, scope)
		if err != nil {
			return nil, err
		}
		out[i] = value.Deref(v)
	}
	return out, nil
}

func (r *Registry) typeError(module, fn, detail string) error {
	fmt.Fprintf(r.Err, "%s.%s: %s\n", module, fn, detail)
	return value.NewError(value.ErrTypeMismatch, module+"."+fn, detail)
}

// ExpectNumberArgs evaluates n arguments and requires every one to be a
// number, returning their float64s.
func (r *Registry) ExpectNumberArgs(ev value.Evaluator, args []ast.Expr, scope value.Scope, n int, module, fn string) ([]float64, error) {
	vals, err := r.ExpectValues(ev, args, scope, n, module, fn)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i, v := range vals {
		if v.Kind != value.KindNumber {
			return nil, r.typeError(module, fn, fmt.Sprintf("argument %d must be a number", i))
		}
		out[i] = v.AsNumber()
	}
	return out, nil
}

// ExpectStringArgs evaluates n arguments and requires every one to be a
// string, returning them as Go strings.
func (r *Registry) ExpectStringArgs(ev value.Evaluator, args []ast.Expr, scope value.Scope, n int, module, fn string) ([]string, error) {
	vals, err := r.ExpectValues(ev, args, scope, n, module, fn)
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i, v := range vals {
		if v.Kind != value.KindString {
			return nil, r.typeError(module, fn, fmt.Sprintf("argument %d must be a string", i))
		}
		out[i] = v.AsString()
	}
	return out, nil
}

// ExpectArrayArgs evaluates n arguments and requires every one to be an
// array, returning their *value.Array backing stores.
func (r *Registry) ExpectArrayArgs(ev value.Evaluator, args []ast.Expr, scope value.Scope, n int, module, fn string) ([]*value.Array, error) {
	vals, err := r.ExpectValues(ev, args, scope, n, module, fn)
	if err != nil {
		return nil, err
	}
	out := make([]*value.Array, n)
	for i, v := range vals {
		if v.Kind != value.KindArray {
			return nil, r.typeError(module, fn, fmt.Sprintf("argument %d must be an array", i))
		}
		out[i] = v.AsArray()
	}
	return out, nil
}

// ExpectNumberArrays evaluates n arguments and requires every one to be an
// array of numbers, returning them as [][]float64.
func (r *Registry) ExpectNumberArrays(ev value.Evaluator, args []ast.Expr, scope value.Scope, n int, module, fn string) ([][]float64, error) {
	arrs, err := r.ExpectArrayArgs(ev, args, scope, n, module, fn)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, n)
	for i, a := range arrs {
		nums := make([]float64, len(a.Elems))
		for j, e := range a.Elems {
			if e.Kind != value.KindNumber {
				return nil, r.typeError(module, fn, fmt.Sprintf("argument %d must be an array of numbers", i))
			}
			nums[j] = e.AsNumber()
		}
		out[i] = nums
	}
	return out, nil
}
