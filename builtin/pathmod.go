package builtin

import (
	"path/filepath"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadPathModule wraps path/filepath, the standard library's own
// OS-appropriate path manipulation, with no ecosystem library needed ahead
// of it.
func loadPathModule(r *Registry) value.Value {
	m := newModule()

	m.Set("join", nativeFn("join", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectAtLeast(ev, args, scope, 1, "path", "join")
		if err != nil {
			return value.Nil(), err
		}
		parts := make([]string, len(vals))
		for i, v := range vals {
			if v.Kind != value.KindString {
				return value.Nil(), r.typeError("path", "join", "all arguments must be strings")
			}
			parts[i] = v.AsString()
		}
		return value.StrS(filepath.Join(parts...)), nil
	}))
	m.Set("base", nativeFn("base", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "path", "base")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(filepath.Base(ss[0])), nil
	}))
	m.Set("dir", nativeFn("dir", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "path", "dir")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(filepath.Dir(ss[0])), nil
	}))
	m.Set("ext", nativeFn("ext", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "path", "ext")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(filepath.Ext(ss[0])), nil
	}))
	m.Set("abs", nativeFn("abs", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "path", "abs")
		if err != nil {
			return value.Nil(), err
		}
		abs, aerr := filepath.Abs(ss[0])
		if aerr != nil {
			return value.Nil(), value.WrapError(value.ErrIOFailure, "path.abs", "abs failed", aerr)
		}
		return value.StrS(abs), nil
	}))
	m.Set("clean", nativeFn("clean", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "path", "clean")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(filepath.Clean(ss[0])), nil
	}))

	return value.ObjectOf(m)
}
