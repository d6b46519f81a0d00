package builtin

import (
	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadSysModule exposes the Registry's private environment map (spec.md
// §6's getenv/setenv/unsetenv), kept separate from the real OS environment
// so a script can never leak secrets into or out of the host process.
func loadSysModule(r *Registry) value.Value {
	m := newModule()

	m.Set("getenv", nativeFn("getenv", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "sys", "getenv")
		if err != nil {
			return value.Nil(), err
		}
		v, ok := r.Getenv(ss[0])
		if !ok {
			return value.Nil(), nil
		}
		return value.StrS(v), nil
	}))
	m.Set("setenv", nativeFn("setenv", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 2, "sys", "setenv")
		if err != nil {
			return value.Nil(), err
		}
		r.Setenv(ss[0], ss[1])
		return value.Nil(), nil
	}))
	m.Set("unsetenv", nativeFn("unsetenv", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "sys", "unsetenv")
		if err != nil {
			return value.Nil(), err
		}
		r.Unsetenv(ss[0])
		return value.Nil(), nil
	}))

	return value.ObjectOf(m)
}
