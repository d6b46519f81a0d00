package builtin

import (
	"time"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadTimeModule wraps the standard time package; durations and instants
// are represented as plain numbers (Unix nanoseconds) since Vane has no
// dedicated time Kind (spec.md §6 lists time among the pure-wrapper
// modules).
func loadTimeModule(r *Registry) value.Value {
	m := newModule()

	m.Set("now", nativeFn("now", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := r.ExpectValues(ev, args, scope, 0, "time", "now"); err != nil {
			return value.Nil(), err
		}
		return value.Num(float64(time.Now().UnixNano())), nil
	}))
	m.Set("sleep_ms", nativeFn("sleep_ms", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		nums, err := r.ExpectNumberArgs(ev, args, scope, 1, "time", "sleep_ms")
		if err != nil {
			return value.Nil(), err
		}
		time.Sleep(time.Duration(nums[0]) * time.Millisecond)
		return value.Nil(), nil
	}))
	m.Set("format", nativeFn("format", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectValues(ev, args, scope, 2, "time", "format")
		if err != nil {
			return value.Nil(), err
		}
		if vals[0].Kind != value.KindNumber || vals[1].Kind != value.KindString {
			return value.Nil(), r.typeError("time", "format", "expected (number nanos, string layout)")
		}
		t := time.Unix(0, int64(vals[0].AsNumber())).UTC()
		return value.StrS(t.Format(vals[1].AsString())), nil
	}))
	m.Set("parse", nativeFn("parse", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 2, "time", "parse")
		if err != nil {
			return value.Nil(), err
		}
		t, perr := time.Parse(ss[1], ss[0])
		if perr != nil {
			return value.Nil(), value.WrapError(value.ErrInvalidFileFormat, "time.parse", "unparsable time", perr)
		}
		return value.Num(float64(t.UnixNano())), nil
	}))
	m.Set("unix_seconds", nativeFn("unix_seconds", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		nums, err := r.ExpectNumberArgs(ev, args, scope, 1, "time", "unix_seconds")
		if err != nil {
			return value.Nil(), err
		}
		return value.Num(nums[0] / 1e9), nil
	}))

	return value.ObjectOf(m)
}
