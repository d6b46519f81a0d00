package container

import (
	"container/list"
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// dequeState wraps container/list for O(1) push/pop/peek at both ends.
type dequeState struct {
	l *list.List
}

func newDequeType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "deque"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := expectValues(errw, ev, args, scope, 0, "deque.new"); err != nil {
			return value.Nil(), err
		}
		return wrapInstance(st, &dequeState{l: list.New()}), nil
	}

	st.Methods = map[string]value.MethodFunc{
		"push_head": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "deque.push_head")
			if err != nil {
				return value.Nil(), err
			}
			payload[dequeState](this).l.PushFront(vals[0])
			return value.Nil(), nil
		},
		"push_tail": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "deque.push_tail")
			if err != nil {
				return value.Nil(), err
			}
			payload[dequeState](this).l.PushBack(vals[0])
			return value.Nil(), nil
		},
		"pop_head": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "deque.pop_head"); err != nil {
				return value.Nil(), err
			}
			s := payload[dequeState](this)
			e := s.l.Front()
			if e == nil {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "deque.pop_head", "pop_head on empty deque")
			}
			s.l.Remove(e)
			return e.Value.(value.Value), nil
		},
		"pop_tail": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "deque.pop_tail"); err != nil {
				return value.Nil(), err
			}
			s := payload[dequeState](this)
			e := s.l.Back()
			if e == nil {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "deque.pop_tail", "pop_tail on empty deque")
			}
			s.l.Remove(e)
			return e.Value.(value.Value), nil
		},
		"peek_head": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "deque.peek_head"); err != nil {
				return value.Nil(), err
			}
			s := payload[dequeState](this)
			if s.l.Front() == nil {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "deque.peek_head", "peek_head on empty deque")
			}
			return s.l.Front().Value.(value.Value), nil
		},
		"peek_tail": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "deque.peek_tail"); err != nil {
				return value.Nil(), err
			}
			s := payload[dequeState](this)
			if s.l.Back() == nil {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "deque.peek_tail", "peek_tail on empty deque")
			}
			return s.l.Back().Value.(value.Value), nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "deque.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(payload[dequeState](this).l.Len())), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "deque.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(payload[dequeState](this).l.Len() == 0), nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "deque.clear"); err != nil {
				return value.Nil(), err
			}
			payload[dequeState](this).l.Init()
			return value.Nil(), nil
		},
		"items": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "deque.items"); err != nil {
				return value.Nil(), err
			}
			s := payload[dequeState](this)
			out := make([]value.Value, 0, s.l.Len())
			for e := s.l.Front(); e != nil; e = e.Next() {
				out = append(out, e.Value.(value.Value))
			}
			return value.ArrayFrom(out), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "deque.str"); err != nil {
				return value.Nil(), err
			}
			s := payload[dequeState](this)
			out := make([]value.Value, 0, s.l.Len())
			for e := s.l.Front(); e != nil; e = e.Next() {
				out = append(out, e.Value.(value.Value))
			}
			return value.StrS(itemsString("deque", out)), nil
		},
	}

	return st
}
