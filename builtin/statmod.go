package builtin

import (
	"math"
	"sort"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadStatModule wraps descriptive-statistics formulas over []float64 in
// one-line functions, matching spec.md §1's characterization of the shim
// modules as thin wrappers over math-library primitives — here the
// "library" is the formula itself rather than a single stdlib call, since
// Go's standard library has no stats package.
func loadStatModule(r *Registry) value.Value {
	m := newModule()

	requireNonEmpty := func(nums []float64, fn string) error {
		if len(nums) == 0 {
			return value.NewError(value.ErrOutOfBounds, "stat."+fn, "input array must not be empty")
		}
		return nil
	}

	m.Set("mean", nativeFn("mean", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectNumberArrays(ev, args, scope, 1, "stat", "mean")
		if err != nil {
			return value.Nil(), err
		}
		if merr := requireNonEmpty(arrs[0], "mean"); merr != nil {
			return value.Nil(), merr
		}
		return value.Num(mean(arrs[0])), nil
	}))
	m.Set("variance", nativeFn("variance", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectNumberArrays(ev, args, scope, 1, "stat", "variance")
		if err != nil {
			return value.Nil(), err
		}
		if verr := requireNonEmpty(arrs[0], "variance"); verr != nil {
			return value.Nil(), verr
		}
		return value.Num(variance(arrs[0])), nil
	}))
	m.Set("stddev", nativeFn("stddev", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectNumberArrays(ev, args, scope, 1, "stat", "stddev")
		if err != nil {
			return value.Nil(), err
		}
		if serr := requireNonEmpty(arrs[0], "stddev"); serr != nil {
			return value.Nil(), serr
		}
		return value.Num(math.Sqrt(variance(arrs[0]))), nil
	}))
	m.Set("median", nativeFn("median", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectNumberArrays(ev, args, scope, 1, "stat", "median")
		if err != nil {
			return value.Nil(), err
		}
		if merr := requireNonEmpty(arrs[0], "median"); merr != nil {
			return value.Nil(), merr
		}
		nums := append([]float64(nil), arrs[0]...)
		sort.Float64s(nums)
		mid := len(nums) / 2
		if len(nums)%2 == 1 {
			return value.Num(nums[mid]), nil
		}
		return value.Num((nums[mid-1] + nums[mid]) / 2), nil
	}))
	m.Set("min", nativeFn("min", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectNumberArrays(ev, args, scope, 1, "stat", "min")
		if err != nil {
			return value.Nil(), err
		}
		if merr := requireNonEmpty(arrs[0], "min"); merr != nil {
			return value.Nil(), merr
		}
		out := arrs[0][0]
		for _, v := range arrs[0][1:] {
			if v < out {
				out = v
			}
		}
		return value.Num(out), nil
	}))
	m.Set("max", nativeFn("max", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		arrs, err := r.ExpectNumberArrays(ev, args, scope, 1, "stat", "max")
		if err != nil {
			return value.Nil(), err
		}
		if merr := requireNonEmpty(arrs[0], "max"); merr != nil {
			return value.Nil(), merr
		}
		out := arrs[0][0]
		for _, v := range arrs[0][1:] {
			if v > out {
				out = v
			}
		}
		return value.Num(out), nil
	}))

	return value.ObjectOf(m)
}

func mean(nums []float64) float64 {
	var sum float64
	for _, v := range nums {
		sum += v
	}
	return sum / float64(len(nums))
}

// variance is the population variance (divides by n, not n-1): spec.md's
// statistics are descriptive summaries of a given dataset, not estimates
// of a larger population.
func variance(nums []float64) float64 {
	m := mean(nums)
	var sum float64
	for _, v := range nums {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(nums))
}
