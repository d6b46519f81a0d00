package container

import (
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// queueState is a FIFO over a Go slice with a head index, avoiding an
// O(n) shift per dequeue; the backing array is compacted once its unused
// prefix grows past half its length.
type queueState struct {
	elems []value.Value
	head  int
}

func (s *queueState) len() int { return len(s.elems) - s.head }

func (s *queueState) enqueue(v value.Value) {
	s.elems = append(s.elems, v)
}

func (s *queueState) dequeue() (value.Value, bool) {
	if s.len() == 0 {
		return value.Nil(), false
	}
	v := s.elems[s.head]
	s.elems[s.head] = value.Nil()
	s.head++
	if s.head > len(s.elems)/2 {
		remaining := s.elems[s.head:]
		s.elems = append([]value.Value(nil), remaining...)
		s.head = 0
	}
	return v, true
}

func (s *queueState) items() []value.Value {
	out := make([]value.Value, s.len())
	copy(out, s.elems[s.head:])
	return out
}

func newQueueType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "queue"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := expectValues(errw, ev, args, scope, 0, "queue.new"); err != nil {
			return value.Nil(), err
		}
		return wrapInstance(st, &queueState{}), nil
	}

	pushFn := func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := expectValues(errw, ev, args, scope, 1, "queue.push")
		if err != nil {
			return value.Nil(), err
		}
		payload[queueState](this).enqueue(vals[0])
		return value.Nil(), nil
	}
	pollFn := func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := expectValues(errw, ev, args, scope, 0, "queue.poll"); err != nil {
			return value.Nil(), err
		}
		v, ok := payload[queueState](this).dequeue()
		if !ok {
			return value.Nil(), value.NewError(value.ErrOutOfBounds, "queue.poll", "poll on empty queue")
		}
		return v, nil
	}

	st.Methods = map[string]value.MethodFunc{
		"push":    pushFn,
		"enqueue": pushFn,
		"poll":    pollFn,
		"dequeue": pollFn,
		"peek": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "queue.peek"); err != nil {
				return value.Nil(), err
			}
			s := payload[queueState](this)
			if s.len() == 0 {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "queue.peek", "peek on empty queue")
			}
			return s.elems[s.head], nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "queue.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(payload[queueState](this).len())), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "queue.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(payload[queueState](this).len() == 0), nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "queue.clear"); err != nil {
				return value.Nil(), err
			}
			s := payload[queueState](this)
			s.elems = nil
			s.head = 0
			return value.Nil(), nil
		},
		"items": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "queue.items"); err != nil {
				return value.Nil(), err
			}
			return value.ArrayFrom(payload[queueState](this).items()), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "queue.str"); err != nil {
				return value.Nil(), err
			}
			return value.StrS(itemsString("queue", payload[queueState](this).items())), nil
		},
	}

	return st
}
