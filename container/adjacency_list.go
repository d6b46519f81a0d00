package container

import (
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// adjacencyListState is a directed graph keyed by mapKey, storing each
// node's out-neighbors in insertion order. Nodes with no edges yet but
// that were referenced by add_edge still appear in nodeOrder so size/items
// report them.
type adjacencyListState struct {
	nodeIndex map[string]int
	nodeOrder []value.Value
	adj       map[string][]value.Value
}

func newAdjacencyListState() *adjacencyListState {
	return &adjacencyListState{
		nodeIndex: make(map[string]int),
		adj:       make(map[string][]value.Value),
	}
}

func (s *adjacencyListState) ensureNode(v value.Value) (string, error) {
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

func newAdjacencyListType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "adjacency_list"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := expectValues(errw, ev, args, scope, 0, "adjacency_list.new"); err != nil {
			return value.Nil(), err
		}
		return wrapInstance(st, newAdjacencyListState()), nil
	}

	st.Methods = map[string]value.MethodFunc{
		"add_edge": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 2, "adjacency_list.add_edge")
			if err != nil {
				return value.Nil(), err
			}
			s := payload[adjacencyListState](this)
			uk, uerr := s.ensureNode(vals[0])
			if uerr != nil {
				return value.Nil(), uerr
			}
			if _, verr := s.ensureNode(vals[1]); verr != nil {
				return value.Nil(), verr
			}
			s.adj[uk] = append(s.adj[uk], vals[1])
			return value.Nil(), nil
		},
		"get_neighbors": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "adjacency_list.get_neighbors")
			if err != nil {
				return value.Nil(), err
			}
			s := payload[adjacencyListState](this)
			uk, kerr := mapKey(vals[0])
			if kerr != nil {
				return value.Nil(), kerr
			}
			if _, ok := s.nodeIndex[uk]; !ok {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "adjacency_list.get_neighbors", "node not present")
			}
			out := make([]value.Value, len(s.adj[uk]))
			copy(out, s.adj[uk])
			return value.ArrayFrom(out), nil
		},
		"contains": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "adjacency_list.contains")
			if err != nil {
				return value.Nil(), err
			}
			uk, kerr := mapKey(vals[0])
			if kerr != nil {
				return value.Nil(), kerr
			}
			_, ok := payload[adjacencyListState](this).nodeIndex[uk]
			return value.Bool(ok), nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "adjacency_list.clear"); err != nil {
				return value.Nil(), err
			}
			s := payload[adjacencyListState](this)
			s.nodeIndex = make(map[string]int)
			s.nodeOrder = nil
			s.adj = make(map[string][]value.Value)
			return value.Nil(), nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "adjacency_list.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(len(payload[adjacencyListState](this).nodeOrder))), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "adjacency_list.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(len(payload[adjacencyListState](this).nodeOrder) == 0), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "adjacency_list.str"); err != nil {
				return value.Nil(), err
			}
			s := payload[adjacencyListState](this)
			return value.StrS(itemsString("adjacency_list", s.nodeOrder)), nil
		},
	}

	return st
}
