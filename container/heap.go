package container

import (
	stdheap "container/heap"
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// heapEntry pairs a Value with its insertion order, the stable secondary
// key spec.md §4.5's tie-break ("ties broken by ... allocation order for
// Huffman") calls for once primary ordering (value.Less) is equal. Shape
// and Less/Swap/Push/Pop mirror the teacher's freqHeap
// (chronos-tachyon-huffman/encoder.go) almost directly, generalized from a
// fixed min-heap over (symbol, frequency) to a min/max heap over arbitrary
// Values via value.Less.
type heapEntry struct {
	v     value.Value
	order int
}

type priorityHeap struct {
	list    []heapEntry
	maxTop  bool
	nextOrd int
}

func (h *priorityHeap) Len() int      { return len(h.list) }
func (h *priorityHeap) Swap(i, j int) { h.list[i], h.list[j] = h.list[j], h.list[i] }

func (h *priorityHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if !value.Equal(a.v, b.v) {
		if h.maxTop {
			return value.Less(b.v, a.v)
		}
		return value.Less(a.v, b.v)
	}
	return a.order < b.order
}

func (h *priorityHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapEntry))
}

func (h *priorityHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

func (h *priorityHeap) insert(v value.Value) {
	stdheap.Push(h, heapEntry{v: v, order: h.nextOrd})
	h.nextOrd++
}

func (h *priorityHeap) items() []value.Value {
	out := make([]value.Value, len(h.list))
	for i, e := range h.list {
		out[i] = e.v
	}
	return out
}

// newHeapType registers the `heap` native type (spec.md's priority_queue
// row): `new heap(max_at_top)` selects a max-heap or min-heap by value.Less.
func newHeapType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "heap"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := expectValues(errw, ev, args, scope, 1, "heap.new")
		if err != nil {
			return value.Nil(), err
		}
		if vals[0].Kind != value.KindBool {
			return value.Nil(), typeErrorf(errw, "heap.new", "max_at_top must be a boolean")
		}
		h := &priorityHeap{maxTop: vals[0].AsBool()}
		stdheap.Init(h)
		return wrapInstance(st, h), nil
	}

	st.Methods = map[string]value.MethodFunc{
		"insert": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "heap.insert")
			if err != nil {
				return value.Nil(), err
			}
			payload[priorityHeap](this).insert(vals[0])
			return value.Nil(), nil
		},
		"poll": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "heap.poll"); err != nil {
				return value.Nil(), err
			}
			h := payload[priorityHeap](this)
			if h.Len() == 0 {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "heap.poll", "poll on empty heap")
			}
			return stdheap.Pop(h).(heapEntry).v, nil
		},
		"peek": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "heap.peek"); err != nil {
				return value.Nil(), err
			}
			h := payload[priorityHeap](this)
			if h.Len() == 0 {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "heap.peek", "peek on empty heap")
			}
			return h.list[0].v, nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "heap.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(payload[priorityHeap](this).Len())), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "heap.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(payload[priorityHeap](this).Len() == 0), nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "heap.clear"); err != nil {
				return value.Nil(), err
			}
			h := payload[priorityHeap](this)
			h.list = nil
			return value.Nil(), nil
		},
		"items": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "heap.items"); err != nil {
				return value.Nil(), err
			}
			return value.ArrayFrom(payload[priorityHeap](this).items()), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "heap.str"); err != nil {
				return value.Nil(), err
			}
			return value.StrS(itemsString("heap", payload[priorityHeap](this).items())), nil
		},
	}

	return st
}
