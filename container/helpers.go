// Package container implements Vane's container library (C5): fourteen
// native std-struct types (array_list, linked_list, stack, queue, deque,
// map, set, heap, treap, adjacency_list, adjacency_matrix, graph, vector,
// matrix), each registered against a value.TypeRegistrar so package eval
// resolves `new T(...)` through ordinary identifier lookup (spec.md
// §4.5/§6). container/heap.go's priority queue is grounded directly on the
// teacher's freqHeap (chronos-tachyon-huffman/encoder.go).
package container

import (
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// RegisterAll registers every container type named in spec.md §6.
func RegisterAll(r value.TypeRegistrar) {
	errw := r.ErrWriter()
	r.RegisterType("array_list", newArrayListType(errw))
	r.RegisterType("linked_list", newLinkedListType(errw))
	r.RegisterType("stack", newStackType(errw))
	r.RegisterType("queue", newQueueType(errw))
	r.RegisterType("deque", newDequeType(errw))
	r.RegisterType("map", newHashMapType(errw))
	r.RegisterType("set", newHashSetType(errw))
	r.RegisterType("heap", newHeapType(errw))
	r.RegisterType("treap", newTreapType(errw))
	r.RegisterType("adjacency_list", newAdjacencyListType(errw))
	r.RegisterType("adjacency_matrix", newAdjacencyMatrixType(errw))
	r.RegisterType("graph", newGraphType(errw))
	r.RegisterType("vector", newVectorType(errw))
	r.RegisterType("matrix", newMatrixType(errw))
}

// expectValues evaluates exactly n argument expressions, mirroring
// builtin.Registry.ExpectValues's diagnostic policy (spec.md §7) without
// importing package builtin, which would reintroduce the cycle
// value.TypeRegistrar exists to break.
func expectValues(errw io.Writer, ev value.Evaluator, args []ast.Expr, scope value.Scope, n int, op string) ([]value.Value, error) {
	if len(args) != n {
		fmt.Fprintf(errw, "%s: expected %d argument(s), got %d\n", op, n, len(args))
		return nil, value.NewError(value.ErrArityMismatch, op, fmt.Sprintf("expected %d argument(s), got %d", n, len(args)))
	}
	out := make([]value.Value, n)
	for i, a := range args {
		v, err := ev.EvalExpr(a, scope)
		if err != nil {
			return nil, err
		}
		out[i] = value.Deref(v)
	}
	return out, nil
}

// expectAtLeast evaluates all argument expressions, failing if fewer than n
// were given.
func expectAtLeast(errw io.Writer, ev value.Evaluator, args []ast.Expr, scope value.Scope, n int, op string) ([]value.Value, error) {
	if len(args) < n {
		fmt.Fprintf(errw, "%s: expected at least %d argument(s), got %d\n", op, n, len(args))
		return nil, value.NewError(value.ErrArityMismatch, op, fmt.Sprintf("expected at least %d argument(s), got %d", n, len(args)))
	}
	out := make([]value.Value, len(args))
	for i, a := range args {
		v, err := ev.EvalExpr(a, scope)
		if err != nil {
			return nil, err
		}
		out[i] = value.Deref(v)
	}
	return out, nil
}

func typeErrorf(errw io.Writer, op, format string, a ...interface{}) error {
	detail := fmt.Sprintf(format, a...)
	fmt.Fprintf(errw, "%s: %s\n", op, detail)
	return value.NewError(value.ErrTypeMismatch, op, detail)
}

// payload extracts this instance's native state, asserting it matches the
// expected Go type. A mismatch here means a constructor stored the wrong
// payload type, an internal bug rather than a user-facing one, so it is
// checked via assert rather than surfaced as malformed_instance.
func payload[T any](this value.Value) *T {
	inst := this.AsStdInstance()
	tv, err := inst.Internal()
	assert.Assertf(err == nil, "container: %v", err)
	p, ok := tv.Payload.(*T)
	assert.Assertf(ok, "container: __internal payload has unexpected Go type")
	return p
}

// wrapInstance allocates a std_instance of st carrying payload p as its
// native state.
func wrapInstance(st *value.StdStruct, p interface{}) value.Value {
	inst := value.NewStdInstance(st)
	inst.SetInternal(p)
	return value.StdInstanceVal(inst)
}

// itemsString renders items the way value.ToString renders an array, for
// containers' `str` method (spec.md §4.5 lists `str` on every type).
func itemsString(name string, items []value.Value) string {
	return fmt.Sprintf("%s%s", name, value.ToString(value.ArrayFrom(items)))
}
