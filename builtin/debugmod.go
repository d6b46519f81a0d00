package builtin

import (
	"fmt"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadDebugModule provides print/inspect helpers over the Registry's Out
// writer, the same writer eval.New is configured with (spec.md §6).
func loadDebugModule(r *Registry) value.Value {
	m := newModule()

	m.Set("print", nativeFn("print", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectAtLeast(ev, args, scope, 0, "debug", "print")
		if err != nil {
			return value.Nil(), err
		}
		for i, v := range vals {
			if i > 0 {
				fmt.Fprint(r.Out, " ")
			}
			fmt.Fprint(r.Out, value.ToString(v))
		}
		fmt.Fprintln(r.Out)
		return value.Nil(), nil
	}))
	m.Set("inspect", nativeFn("inspect", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectValues(ev, args, scope, 1, "debug", "inspect")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(fmt.Sprintf("%s: %s", vals[0].Kind, value.ToString(vals[0]))), nil
	}))
	m.Set("kind_of", nativeFn("kind_of", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectValues(ev, args, scope, 1, "debug", "kind_of")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(vals[0].Kind.String()), nil
	}))

	return value.ObjectOf(m)
}
