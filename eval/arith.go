package eval

import (
	"math"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// evalUnary implements `-x`/`!x`. All arithmetic is float64; spec.md §4.3
// gives no special integer path.
func (it *Interpreter) evalUnary(e ast.UnaryExpr, scope value.Scope) (value.Value, error) {
	x, err := it.evalExpr(e.X, scope)
	if err != nil {
		return value.Nil(), err
	}
	x = value.Deref(x)
	switch e.Op {
	case "-":
		if x.Kind != value.KindNumber {
			return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.unary", "unary - requires a number")
		}
		return value.Num(-x.AsNumber()), nil
	case "!":
		return value.Bool(!value.Truthy(x)), nil
	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.unary", "unknown unary operator "+e.Op)
	}
}

// evalBinary implements arithmetic/comparison, string concatenation (`+`
// with exactly one string operand implicitly stringifies the other), and
// array append (`+` with two array operands), per spec.md §4.3. Division by
// zero follows IEEE-754 (+inf/-inf/nan), never an error, except where
// spec.md §7 explicitly calls for division_by_zero (vector normalise,
// handled in package container, not here).
func (it *Interpreter) evalBinary(e ast.BinaryExpr, scope value.Scope) (value.Value, error) {
	l, err := it.evalExpr(e.Left, scope)
	if err != nil {
		return value.Nil(), err
	}
	r, err := it.evalExpr(e.Right, scope)
	if err != nil {
		return value.Nil(), err
	}
	l = value.Deref(l)
	r = value.Deref(r)

	switch e.Op {
	case "+":
		return evalAdd(l, r)
	case "-", "*", "/", "%", "**":
		return evalNumericOp(e.Op, l, r)
	case "==":
		return value.Bool(value.Equal(l, r)), nil
	case "!=":
		return value.Bool(!value.Equal(l, r)), nil
	case "<":
		return value.Bool(value.Less(l, r)), nil
	case "<=":
		return value.Bool(value.Less(l, r) || value.Equal(l, r)), nil
	case ">":
		return value.Bool(value.Less(r, l)), nil
	case ">=":
		return value.Bool(value.Less(r, l) || value.Equal(l, r)), nil
	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.binary", "unknown binary operator "+e.Op)
	}
}

func evalAdd(l, r value.Value) (value.Value, error) {
	switch {
	case l.Kind == value.KindNumber && r.Kind == value.KindNumber:
		return value.Num(l.AsNumber() + r.AsNumber()), nil
	case l.Kind == value.KindArray && r.Kind == value.KindArray:
		out := make([]value.Value, 0, len(l.AsArray().Elems)+len(r.AsArray().Elems))
		out = append(out, l.AsArray().Elems...)
		out = append(out, r.AsArray().Elems...)
		return value.ArrayFrom(out), nil
	case l.Kind == value.KindString || r.Kind == value.KindString:
		return value.StrS(value.ToString(l) + value.ToString(r)), nil
	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.add", "operands cannot be added")
	}
}

func evalNumericOp(op string, l, r value.Value) (value.Value, error) {
	if l.Kind != value.KindNumber || r.Kind != value.KindNumber {
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.numeric", "operator "+op+" requires numbers")
	}
	a, b := l.AsNumber(), r.AsNumber()
	switch op {
	case "-":
		return value.Num(a - b), nil
	case "*":
		return value.Num(a * b), nil
	case "/":
		return value.Num(a / b), nil // IEEE-754 inf/nan on b==0, per spec.md §4.3
	case "%":
		return value.Num(math.Mod(a, b)), nil
	case "**":
		return value.Num(math.Pow(a, b)), nil
	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.numeric", "unknown numeric operator "+op)
	}
}

// evalLogical implements short-circuit `&&`/`||`, returning the deciding
// operand rather than a coerced boolean (spec.md §4.3).
func (it *Interpreter) evalLogical(e ast.LogicalExpr, scope value.Scope) (value.Value, error) {
	l, err := it.evalExpr(e.Left, scope)
	if err != nil {
		return value.Nil(), err
	}
	switch e.Op {
	case "&&":
		if !value.Truthy(l) {
			return l, nil
		}
		return it.evalExpr(e.Right, scope)
	case "||":
		if value.Truthy(l) {
			return l, nil
		}
		return it.evalExpr(e.Right, scope)
	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.logical", "unknown logical operator "+e.Op)
	}
}
