package container

import (
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// graphState is an undirected graph over arbitrary Value nodes (distinct
// from adjacency_list's directed edges): add_edge implicitly creates both
// endpoints and records the edge symmetrically.
type graphState struct {
	nodeIndex map[string]int
	nodeOrder []value.Value
	edgeSet   map[string]struct{}
}

func newGraphState() *graphState {
	return &graphState{
		nodeIndex: make(map[string]int),
		edgeSet:   make(map[string]struct{}),
	}
}

func (s *graphState) ensureNode(v value.Value) (string, error) {
	k, err := mapKey(v)
	if err != nil {
		return "", err
	}
	if _, ok := s.nodeIndex[k]; !ok {
		s.nodeIndex[k] = len(s.nodeOrder)
		s.nodeOrder = append(s.nodeOrder, v)
	}
	return k, nil
}

func edgeKey(a, b string) string {
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}

func newGraphType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "graph"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := expectValues(errw, ev, args, scope, 0, "graph.new"); err != nil {
			return value.Nil(), err
		}
		return wrapInstance(st, newGraphState()), nil
	}

	st.Methods = map[string]value.MethodFunc{
		"add_edge": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 2, "graph.add_edge")
			if err != nil {
				return value.Nil(), err
			}
			s := payload[graphState](this)
			uk, uerr := s.ensureNode(vals[0])
			if uerr != nil {
				return value.Nil(), uerr
			}
			vk, verr := s.ensureNode(vals[1])
			if verr != nil {
				return value.Nil(), verr
			}
			s.edgeSet[edgeKey(uk, vk)] = struct{}{}
			return value.Nil(), nil
		},
		"has_node": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "graph.has_node")
			if err != nil {
				return value.Nil(), err
			}
			k, kerr := mapKey(vals[0])
			if kerr != nil {
				return value.Nil(), kerr
			}
			_, ok := payload[graphState](this).nodeIndex[k]
			return value.Bool(ok), nil
		},
		"has_edge": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 2, "graph.has_edge")
			if err != nil {
				return value.Nil(), err
			}
			uk, uerr := mapKey(vals[0])
			if uerr != nil {
				return value.Nil(), uerr
			}
			vk, verr := mapKey(vals[1])
			if verr != nil {
				return value.Nil(), verr
			}
			s := payload[graphState](this)
			_, ok := s.edgeSet[edgeKey(uk, vk)]
			return value.Bool(ok), nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "graph.clear"); err != nil {
				return value.Nil(), err
			}
			s := payload[graphState](this)
			s.nodeIndex = make(map[string]int)
			s.nodeOrder = nil
			s.edgeSet = make(map[string]struct{})
			return value.Nil(), nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "graph.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(len(payload[graphState](this).nodeOrder))), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "graph.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(len(payload[graphState](this).nodeOrder) == 0), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "graph.str"); err != nil {
				return value.Nil(), err
			}
			s := payload[graphState](this)
			return value.StrS(itemsString("graph", s.nodeOrder)), nil
		},
	}

	return st
}
