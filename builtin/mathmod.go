package builtin

import (
	"math"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadMathModule wraps math-library primitives (spec.md §1's "individual
// pure-math ... shim modules whose bodies are one-line wrappers over ...
// math-library primitives") — there is no ecosystem replacement to reach
// for in place of the standard library's own math package.
func loadMathModule(r *Registry) value.Value {
	m := newModule()

	unary := func(name string, f func(float64) float64) {
		m.Set(name, nativeFn(name, func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
			nums, err := r.ExpectNumberArgs(ev, args, scope, 1, "math", name)
			if err != nil {
				return value.Nil(), err
			}
			return value.Num(f(nums[0])), nil
		}))
	}
	binary := func(name string, f func(a, b float64) float64) {
		m.Set(name, nativeFn(name, func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
			nums, err := r.ExpectNumberArgs(ev, args, scope, 2, "math", name)
			if err != nil {
				return value.Nil(), err
			}
			return value.Num(f(nums[0], nums[1])), nil
		}))
	}

	unary("sqrt", math.Sqrt)
	unary("cbrt", math.Cbrt)
	unary("abs", math.Abs)
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("round", math.Round)
	unary("trunc", math.Trunc)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("asin", math.Asin)
	unary("acos", math.Acos)
	unary("atan", math.Atan)
	unary("exp", math.Exp)
	unary("log", math.Log)
	unary("log2", math.Log2)
	unary("log10", math.Log10)

	binary("pow", math.Pow)
	binary("atan2", math.Atan2)
	binary("hypot", math.Hypot)
	binary("max", math.Max)
	binary("min", math.Min)
	binary("mod", math.Mod)

	m.Set("pi", value.Num(math.Pi))
	m.Set("e", value.Num(math.E))
	m.Set("inf", value.Num(math.Inf(1)))
	m.Set("nan", value.Num(math.NaN()))

	m.Set("is_nan", nativeFn("is_nan", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		nums, err := r.ExpectNumberArgs(ev, args, scope, 1, "math", "is_nan")
		if err != nil {
			return value.Nil(), err
		}
		return value.Bool(math.IsNaN(nums[0])), nil
	}))
	m.Set("is_inf", nativeFn("is_inf", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		nums, err := r.ExpectNumberArgs(ev, args, scope, 1, "math", "is_inf")
		if err != nil {
			return value.Nil(), err
		}
		return value.Bool(math.IsInf(nums[0], 0)), nil
	}))

	return value.ObjectOf(m)
}
