package container

import (
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// stackState is a LIFO over a Go slice; push appends, pop/peek operate on
// the tail.
type stackState struct {
	elems []value.Value
}

func newStackType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "stack"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := expectValues(errw, ev, args, scope, 0, "stack.new"); err != nil {
			return value.Nil(), err
		}
		return wrapInstance(st, &stackState{}), nil
	}

	st.Methods = map[string]value.MethodFunc{
		"push": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "stack.push")
			if err != nil {
				return value.Nil(), err
			}
			s := payload[stackState](this)
			s.elems = append(s.elems, vals[0])
			return value.Nil(), nil
		},
		"pop": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "stack.pop"); err != nil {
				return value.Nil(), err
			}
			s := payload[stackState](this)
			if len(s.elems) == 0 {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "stack.pop", "pop on empty stack")
			}
			top := s.elems[len(s.elems)-1]
			s.elems = s.elems[:len(s.elems)-1]
			return top, nil
		},
		"peek": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "stack.peek"); err != nil {
				return value.Nil(), err
			}
			s := payload[stackState](this)
			if len(s.elems) == 0 {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "stack.peek", "peek on empty stack")
			}
			return s.elems[len(s.elems)-1], nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "stack.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(len(payload[stackState](this).elems))), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "stack.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(len(payload[stackState](this).elems) == 0), nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "stack.clear"); err != nil {
				return value.Nil(), err
			}
			payload[stackState](this).elems = nil
			return value.Nil(), nil
		},
		"items": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "stack.items"); err != nil {
				return value.Nil(), err
			}
			s := payload[stackState](this)
			out := make([]value.Value, len(s.elems))
			copy(out, s.elems)
			return value.ArrayFrom(out), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "stack.str"); err != nil {
				return value.Nil(), err
			}
			return value.StrS(itemsString("stack", payload[stackState](this).elems)), nil
		},
	}

	return st
}
