package container

import (
	"io"
	"math"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// arrayListState is a contiguous, manually grown dynamic array: capacity
// doubles whenever a push would overflow it (spec.md §4.5's "size doubles
// on growth"), the classic amortized-O(1)-append discipline rather than
// relying on append's own (unspecified) growth factor.
type arrayListState struct {
	elems []value.Value
	n     int
}

func (s *arrayListState) push(v value.Value) {
	if s.n == len(s.elems) {
		newCap := 4
		if len(s.elems) > 0 {
			newCap = len(s.elems) * 2
		}
		grown := make([]value.Value, newCap)
		copy(grown, s.elems[:s.n])
		s.elems = grown
	}
	s.elems[s.n] = v
	s.n++
}

func (s *arrayListState) items() []value.Value {
	out := make([]value.Value, s.n)
	copy(out, s.elems[:s.n])
	return out
}

func newArrayListType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "array_list"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := expectValues(errw, ev, args, scope, 0, "array_list.new"); err != nil {
			return value.Nil(), err
		}
		return wrapInstance(st, &arrayListState{}), nil
	}

	indexOf := func(s *arrayListState, op string, idx float64) (int, error) {
		i := int(math.Floor(idx))
		if i < 0 || i >= s.n {
			return 0, value.NewError(value.ErrOutOfBounds, op, "index out of bounds")
		}
		return i, nil
	}

	st.Methods = map[string]value.MethodFunc{
		"push": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "array_list.push")
			if err != nil {
				return value.Nil(), err
			}
			payload[arrayListState](this).push(vals[0])
			return value.Nil(), nil
		},
		"insert": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 2, "array_list.insert")
			if err != nil {
				return value.Nil(), err
			}
			if vals[0].Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "array_list.insert", "index must be a number")
			}
			s := payload[arrayListState](this)
			i := int(math.Floor(vals[0].AsNumber()))
			if i < 0 || i > s.n {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "array_list.insert", "index out of bounds")
			}
			s.push(vals[1]) // grow capacity if needed
			copy(s.elems[i+1:s.n], s.elems[i:s.n-1])
			s.elems[i] = vals[1]
			return value.Nil(), nil
		},
		"remove": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "array_list.remove")
			if err != nil {
				return value.Nil(), err
			}
			if vals[0].Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "array_list.remove", "index must be a number")
			}
			s := payload[arrayListState](this)
			i, ierr := indexOf(s, "array_list.remove", vals[0].AsNumber())
			if ierr != nil {
				return value.Nil(), ierr
			}
			removed := s.elems[i]
			copy(s.elems[i:s.n-1], s.elems[i+1:s.n])
			s.n--
			return removed, nil
		},
		"pop": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "array_list.pop"); err != nil {
				return value.Nil(), err
			}
			s := payload[arrayListState](this)
			if s.n == 0 {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "array_list.pop", "pop on empty array_list")
			}
			s.n--
			return s.elems[s.n], nil
		},
		"get": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "array_list.get")
			if err != nil {
				return value.Nil(), err
			}
			if vals[0].Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "array_list.get", "index must be a number")
			}
			s := payload[arrayListState](this)
			i, ierr := indexOf(s, "array_list.get", vals[0].AsNumber())
			if ierr != nil {
				return value.Nil(), ierr
			}
			return s.elems[i], nil
		},
		"set": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 2, "array_list.set")
			if err != nil {
				return value.Nil(), err
			}
			if vals[0].Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "array_list.set", "index must be a number")
			}
			s := payload[arrayListState](this)
			i, ierr := indexOf(s, "array_list.set", vals[0].AsNumber())
			if ierr != nil {
				return value.Nil(), ierr
			}
			s.elems[i] = vals[1]
			return value.Nil(), nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "array_list.clear"); err != nil {
				return value.Nil(), err
			}
			s := payload[arrayListState](this)
			s.elems = nil
			s.n = 0
			return value.Nil(), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "array_list.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(payload[arrayListState](this).n == 0), nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "array_list.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(payload[arrayListState](this).n)), nil
		},
		"items": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "array_list.items"); err != nil {
				return value.Nil(), err
			}
			return value.ArrayFrom(payload[arrayListState](this).items()), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "array_list.str"); err != nil {
				return value.Nil(), err
			}
			return value.StrS(itemsString("array_list", payload[arrayListState](this).items())), nil
		},
	}

	return st
}
