package builtin

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadStringModule wraps strings-package primitives plus locale-aware
// casing/width transforms via golang.org/x/text, the corpus's library for
// this concern (grounded on joshuapare-hivekit's go.mod).
func loadStringModule(r *Registry) value.Value {
	m := newModule()

	m.Set("upper", nativeFn("upper", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "string", "upper")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(cases.Upper(language.Und).String(ss[0])), nil
	}))
	m.Set("lower", nativeFn("lower", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "string", "lower")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(cases.Lower(language.Und).String(ss[0])), nil
	}))
	m.Set("title", nativeFn("title", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "string", "title")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(cases.Title(language.Und).String(ss[0])), nil
	}))
	m.Set("fold_width", nativeFn("fold_width", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "string", "fold_width")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(width.Fold.String(ss[0])), nil
	}))

	m.Set("trim", nativeFn("trim", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "string", "trim")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(strings.TrimSpace(ss[0])), nil
	}))
	m.Set("split", nativeFn("split", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 2, "string", "split")
		if err != nil {
			return value.Nil(), err
		}
		parts := strings.Split(ss[0], ss[1])
		elems := make([]value.Value, len(parts))
		for i, p := range parts {
			elems[i] = value.StrS(p)
		}
		return value.ArrayFrom(elems), nil
	}))
	m.Set("join", nativeFn("join", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectValues(ev, args, scope, 2, "string", "join")
		if err != nil {
			return value.Nil(), err
		}
		if vals[0].Kind != value.KindArray {
			return value.Nil(), r.typeError("string", "join", "argument 0 must be an array")
		}
		if vals[1].Kind != value.KindString {
			return value.Nil(), r.typeError("string", "join", "argument 1 must be a string")
		}
		arr := vals[0].AsArray()
		parts := make([]string, len(arr.Elems))
		for i, e := range arr.Elems {
			if e.Kind != value.KindString {
				return value.Nil(), r.typeError("string", "join", "array elements must be strings")
			}
			parts[i] = e.AsString()
		}
		return value.StrS(strings.Join(parts, vals[1].AsString())), nil
	}))
	m.Set("contains", nativeFn("contains", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 2, "string", "contains")
		if err != nil {
			return value.Nil(), err
		}
		return value.Bool(strings.Contains(ss[0], ss[1])), nil
	}))
	m.Set("starts_with", nativeFn("starts_with", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 2, "string", "starts_with")
		if err != nil {
			return value.Nil(), err
		}
		return value.Bool(strings.HasPrefix(ss[0], ss[1])), nil
	}))
	m.Set("ends_with", nativeFn("ends_with", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 2, "string", "ends_with")
		if err != nil {
			return value.Nil(), err
		}
		return value.Bool(strings.HasSuffix(ss[0], ss[1])), nil
	}))
	m.Set("replace", nativeFn("replace", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 3, "string", "replace")
		if err != nil {
			return value.Nil(), err
		}
		return value.StrS(strings.ReplaceAll(ss[0], ss[1], ss[2])), nil
	}))
	m.Set("repeat", nativeFn("repeat", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := r.ExpectValues(ev, args, scope, 2, "string", "repeat")
		if err != nil {
			return value.Nil(), err
		}
		if vals[0].Kind != value.KindString || vals[1].Kind != value.KindNumber {
			return value.Nil(), r.typeError("string", "repeat", "expected (string, number)")
		}
		return value.StrS(strings.Repeat(vals[0].AsString(), int(vals[1].AsNumber()))), nil
	}))
	m.Set("len", nativeFn("len", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "string", "len")
		if err != nil {
			return value.Nil(), err
		}
		return value.Num(float64(len([]rune(ss[0])))), nil
	}))
	m.Set("index_of", nativeFn("index_of", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 2, "string", "index_of")
		if err != nil {
			return value.Nil(), err
		}
		return value.Num(float64(strings.Index(ss[0], ss[1]))), nil
	}))

	return value.ObjectOf(m)
}
