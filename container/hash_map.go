package container

import (
	"fmt"
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// mapKey canonicalizes a primitive key Value into a Go-comparable string,
// restricting hash_map/hash_set keys to nil/bool/number/string (the Kinds a
// stable hash representation is unambiguous for). Arrays, objects, and
// native instances have no canonical hash in spec.md's value model, so
// they are rejected rather than hashed by (unstable) pointer identity.
func mapKey(v value.Value) (string, error) {
	v = value.Deref(v)
	switch v.Kind {
	case value.KindNil:
		return "n:", nil
	case value.KindBool:
		return fmt.Sprintf("b:%v", v.AsBool()), nil
	case value.KindNumber:
		return fmt.Sprintf("f:%v", v.AsNumber()), nil
	case value.KindString:
		return "s:" + v.AsString(), nil
	default:
		return "", value.NewError(value.ErrTypeMismatch, "map.key", "unhashable key kind "+v.Kind.String())
	}
}

// hashMapEntry preserves both the original key Value (for `items`) and its
// stored Value, in insertion order.
type hashMapEntry struct {
	key   value.Value
	value value.Value
}

type hashMapState struct {
	index   map[string]int
	entries []hashMapEntry
}

func newHashMapState() *hashMapState {
	return &hashMapState{index: make(map[string]int)}
}

func newHashMapType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "map"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := expectValues(errw, ev, args, scope, 0, "map.new"); err != nil {
			return value.Nil(), err
		}
		return wrapInstance(st, newHashMapState()), nil
	}

	st.Methods = map[string]value.MethodFunc{
		"put": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 2, "map.put")
			if err != nil {
				return value.Nil(), err
			}
			k, kerr := mapKey(vals[0])
			if kerr != nil {
				return value.Nil(), kerr
			}
			s := payload[hashMapState](this)
			if i, ok := s.index[k]; ok {
				s.entries[i].value = vals[1]
				return value.Nil(), nil
			}
			s.index[k] = len(s.entries)
			s.entries = append(s.entries, hashMapEntry{key: vals[0], value: vals[1]})
			return value.Nil(), nil
		},
		"get": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "map.get")
			if err != nil {
				return value.Nil(), err
			}
			k, kerr := mapKey(vals[0])
			if kerr != nil {
				return value.Nil(), kerr
			}
			s := payload[hashMapState](this)
			if i, ok := s.index[k]; ok {
				return s.entries[i].value, nil
			}
			return value.Nil(), nil
		},
		"remove": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "map.remove")
			if err != nil {
				return value.Nil(), err
			}
			k, kerr := mapKey(vals[0])
			if kerr != nil {
				return value.Nil(), kerr
			}
			s := payload[hashMapState](this)
			i, ok := s.index[k]
			if !ok {
				return value.Nil(), nil
			}
			removed := s.entries[i].value
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			delete(s.index, k)
			for kk, idx := range s.index {
				if idx > i {
					s.index[kk] = idx - 1
				}
			}
			return removed, nil
		},
		"contains": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "map.contains")
			if err != nil {
				return value.Nil(), err
			}
			k, kerr := mapKey(vals[0])
			if kerr != nil {
				return value.Nil(), kerr
			}
			_, ok := payload[hashMapState](this).index[k]
			return value.Bool(ok), nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "map.clear"); err != nil {
				return value.Nil(), err
			}
			s := payload[hashMapState](this)
			s.index = make(map[string]int)
			s.entries = nil
			return value.Nil(), nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "map.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(len(payload[hashMapState](this).entries))), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "map.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(len(payload[hashMapState](this).entries) == 0), nil
		},
		"items": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "map.items"); err != nil {
				return value.Nil(), err
			}
			s := payload[hashMapState](this)
			out := make([]value.Value, len(s.entries))
			for i, e := range s.entries {
				out[i] = value.MakePair(e.key, e.value)
			}
			return value.ArrayFrom(out), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "map.str"); err != nil {
				return value.Nil(), err
			}
			s := payload[hashMapState](this)
			out := make([]value.Value, len(s.entries))
			for i, e := range s.entries {
				out[i] = value.MakePair(e.key, e.value)
			}
			return value.StrS(itemsString("map", out)), nil
		},
	}

	return st
}
