package container

import (
	"container/list"
	"io"
	"math"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// linkedListState wraps the standard library's doubly linked list
// (container/list), the idiomatic Go building block for this exact shape
// rather than a hand-rolled node/prev/next struct.
type linkedListState struct {
	l *list.List
}

func newLinkedListState() *linkedListState { return &linkedListState{l: list.New()} }

func (s *linkedListState) nth(i int) (*list.Element, bool) {
	if i < 0 || i >= s.l.Len() {
		return nil, false
	}
	e := s.l.Front()
	for ; i > 0; i-- {
		e = e.Next()
	}
	return e, true
}

func (s *linkedListState) items() []value.Value {
	out := make([]value.Value, 0, s.l.Len())
	for e := s.l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(value.Value))
	}
	return out
}

func newLinkedListType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "linked_list"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := expectValues(errw, ev, args, scope, 0, "linked_list.new"); err != nil {
			return value.Nil(), err
		}
		return wrapInstance(st, newLinkedListState()), nil
	}

	st.Methods = map[string]value.MethodFunc{
		"append": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "linked_list.append")
			if err != nil {
				return value.Nil(), err
			}
			payload[linkedListState](this).l.PushBack(vals[0])
			return value.Nil(), nil
		},
		"prepend": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "linked_list.prepend")
			if err != nil {
				return value.Nil(), err
			}
			payload[linkedListState](this).l.PushFront(vals[0])
			return value.Nil(), nil
		},
		"pop_head": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "linked_list.pop_head"); err != nil {
				return value.Nil(), err
			}
			s := payload[linkedListState](this)
			e := s.l.Front()
			if e == nil {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "linked_list.pop_head", "pop_head on empty linked_list")
			}
			s.l.Remove(e)
			return e.Value.(value.Value), nil
		},
		"pop_tail": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "linked_list.pop_tail"); err != nil {
				return value.Nil(), err
			}
			s := payload[linkedListState](this)
			e := s.l.Back()
			if e == nil {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "linked_list.pop_tail", "pop_tail on empty linked_list")
			}
			s.l.Remove(e)
			return e.Value.(value.Value), nil
		},
		"get": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "linked_list.get")
			if err != nil {
				return value.Nil(), err
			}
			if vals[0].Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "linked_list.get", "index must be a number")
			}
			s := payload[linkedListState](this)
			e, ok := s.nth(int(math.Floor(vals[0].AsNumber())))
			if !ok {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "linked_list.get", "index out of bounds")
			}
			return e.Value.(value.Value), nil
		},
		"remove": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "linked_list.remove")
			if err != nil {
				return value.Nil(), err
			}
			if vals[0].Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "linked_list.remove", "index must be a number")
			}
			s := payload[linkedListState](this)
			e, ok := s.nth(int(math.Floor(vals[0].AsNumber())))
			if !ok {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "linked_list.remove", "index out of bounds")
			}
			s.l.Remove(e)
			return e.Value.(value.Value), nil
		},
		"discard": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "linked_list.discard")
			if err != nil {
				return value.Nil(), err
			}
			if vals[0].Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "linked_list.discard", "index must be a number")
			}
			s := payload[linkedListState](this)
			if e, ok := s.nth(int(math.Floor(vals[0].AsNumber()))); ok {
				s.l.Remove(e)
			}
			return value.Nil(), nil
		},
		"peek_head": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "linked_list.peek_head"); err != nil {
				return value.Nil(), err
			}
			s := payload[linkedListState](this)
			if s.l.Front() == nil {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "linked_list.peek_head", "peek_head on empty linked_list")
			}
			return s.l.Front().Value.(value.Value), nil
		},
		"peek_tail": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "linked_list.peek_tail"); err != nil {
				return value.Nil(), err
			}
			s := payload[linkedListState](this)
			if s.l.Back() == nil {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "linked_list.peek_tail", "peek_tail on empty linked_list")
			}
			return s.l.Back().Value.(value.Value), nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "linked_list.clear"); err != nil {
				return value.Nil(), err
			}
			payload[linkedListState](this).l.Init()
			return value.Nil(), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "linked_list.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(payload[linkedListState](this).l.Len() == 0), nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "linked_list.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(payload[linkedListState](this).l.Len())), nil
		},
		"items": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "linked_list.items"); err != nil {
				return value.Nil(), err
			}
			return value.ArrayFrom(payload[linkedListState](this).items()), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "linked_list.str"); err != nil {
				return value.Nil(), err
			}
			return value.StrS(itemsString("linked_list", payload[linkedListState](this).items())), nil
		},
	}

	return st
}
