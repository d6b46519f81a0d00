package container

import (
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

type hashSetState struct {
	index map[string]int
	keys  []value.Value
}

func newHashSetState() *hashSetState {
	return &hashSetState{index: make(map[string]int)}
}

func (s *hashSetState) insert(v value.Value) error {
	k, err := mapKey(v)
	if err != nil {
		return err
	}
	if _, ok := s.index[k]; ok {
		return nil
	}
	s.index[k] = len(s.keys)
	s.keys = append(s.keys, v)
	return nil
}

// newHashSetType registers the `set` native type. Its constructor may take
// a seed array (spec.md §4.5's "ctor may take seed array"), inserting each
// of its elements.
func newHashSetType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "set"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := expectAtLeast(errw, ev, args, scope, 0, "set.new")
		if err != nil {
			return value.Nil(), err
		}
		s := newHashSetState()
		if len(vals) == 1 {
			if vals[0].Kind != value.KindArray {
				return value.Nil(), typeErrorf(errw, "set.new", "seed argument must be an array")
			}
			for _, e := range vals[0].AsArray().Elems {
				if serr := s.insert(e); serr != nil {
					return value.Nil(), serr
				}
			}
		} else if len(vals) > 1 {
			return value.Nil(), value.NewError(value.ErrArityMismatch, "set.new", "expected zero or one (seed array) argument")
		}
		return wrapInstance(st, s), nil
	}

	st.Methods = map[string]value.MethodFunc{
		"insert": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "set.insert")
			if err != nil {
				return value.Nil(), err
			}
			if ierr := payload[hashSetState](this).insert(vals[0]); ierr != nil {
				return value.Nil(), ierr
			}
			return value.Nil(), nil
		},
		"remove": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "set.remove")
			if err != nil {
				return value.Nil(), err
			}
			k, kerr := mapKey(vals[0])
			if kerr != nil {
				return value.Nil(), kerr
			}
			s := payload[hashSetState](this)
			i, ok := s.index[k]
			if !ok {
				return value.Bool(false), nil
			}
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			delete(s.index, k)
			for kk, idx := range s.index {
				if idx > i {
					s.index[kk] = idx - 1
				}
			}
			return value.Bool(true), nil
		},
		"contains": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "set.contains")
			if err != nil {
				return value.Nil(), err
			}
			k, kerr := mapKey(vals[0])
			if kerr != nil {
				return value.Nil(), kerr
			}
			_, ok := payload[hashSetState](this).index[k]
			return value.Bool(ok), nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "set.clear"); err != nil {
				return value.Nil(), err
			}
			s := payload[hashSetState](this)
			s.index = make(map[string]int)
			s.keys = nil
			return value.Nil(), nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "set.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(len(payload[hashSetState](this).keys))), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "set.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(len(payload[hashSetState](this).keys) == 0), nil
		},
		"items": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "set.items"); err != nil {
				return value.Nil(), err
			}
			s := payload[hashSetState](this)
			out := make([]value.Value, len(s.keys))
			copy(out, s.keys)
			return value.ArrayFrom(out), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "set.str"); err != nil {
				return value.Nil(), err
			}
			return value.StrS(itemsString("set", payload[hashSetState](this).keys)), nil
		},
	}

	return st
}
