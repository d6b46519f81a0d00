package container

import (
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// adjacencyMatrixState is a fixed-size directed graph over node indices
// 0..n-1, backed by a flat []bool rather than [][]bool to keep a single
// allocation per instance.
type adjacencyMatrixState struct {
	n     int
	edges []bool
}

func (s *adjacencyMatrixState) at(u, v int) int { return u*s.n + v }

func newAdjacencyMatrixType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "adjacency_matrix"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := expectValues(errw, ev, args, scope, 1, "adjacency_matrix.new")
		if err != nil {
			return value.Nil(), err
		}
		if vals[0].Kind != value.KindNumber {
			return value.Nil(), typeErrorf(errw, "adjacency_matrix.new", "node count must be a number")
		}
		n := int(vals[0].AsNumber())
		if n < 0 {
			return value.Nil(), typeErrorf(errw, "adjacency_matrix.new", "node count must be non-negative")
		}
		return wrapInstance(st, &adjacencyMatrixState{n: n, edges: make([]bool, n*n)}), nil
	}

	checkNode := func(s *adjacencyMatrixState, i int, op string) error {
		if i < 0 || i >= s.n {
			return value.NewError(value.ErrOutOfBounds, op, "node index out of range")
		}
		return nil
	}

	st.Methods = map[string]value.MethodFunc{
		"add_edge": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 2, "adjacency_matrix.add_edge")
			if err != nil {
				return value.Nil(), err
			}
			s := payload[adjacencyMatrixState](this)
			u, v := int(vals[0].AsNumber()), int(vals[1].AsNumber())
			if cerr := checkNode(s, u, "adjacency_matrix.add_edge"); cerr != nil {
				return value.Nil(), cerr
			}
			if cerr := checkNode(s, v, "adjacency_matrix.add_edge"); cerr != nil {
				return value.Nil(), cerr
			}
			s.edges[s.at(u, v)] = true
			return value.Nil(), nil
		},
		"remove_edge": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 2, "adjacency_matrix.remove_edge")
			if err != nil {
				return value.Nil(), err
			}
			s := payload[adjacencyMatrixState](this)
			u, v := int(vals[0].AsNumber()), int(vals[1].AsNumber())
			if cerr := checkNode(s, u, "adjacency_matrix.remove_edge"); cerr != nil {
				return value.Nil(), cerr
			}
			if cerr := checkNode(s, v, "adjacency_matrix.remove_edge"); cerr != nil {
				return value.Nil(), cerr
			}
			s.edges[s.at(u, v)] = false
			return value.Nil(), nil
		},
		"contains_edge": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 2, "adjacency_matrix.contains_edge")
			if err != nil {
				return value.Nil(), err
			}
			s := payload[adjacencyMatrixState](this)
			u, v := int(vals[0].AsNumber()), int(vals[1].AsNumber())
			if cerr := checkNode(s, u, "adjacency_matrix.contains_edge"); cerr != nil {
				return value.Nil(), cerr
			}
			if cerr := checkNode(s, v, "adjacency_matrix.contains_edge"); cerr != nil {
				return value.Nil(), cerr
			}
			return value.Bool(s.edges[s.at(u, v)]), nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "adjacency_matrix.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(payload[adjacencyMatrixState](this).n)), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "adjacency_matrix.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(payload[adjacencyMatrixState](this).n == 0), nil
		},
		"edges": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "adjacency_matrix.edges"); err != nil {
				return value.Nil(), err
			}
			s := payload[adjacencyMatrixState](this)
			var out []value.Value
			for u := 0; u < s.n; u++ {
				for v := 0; v < s.n; v++ {
					if s.edges[s.at(u, v)] {
						out = append(out, value.MakePair(value.Num(float64(u)), value.Num(float64(v))))
					}
				}
			}
			return value.ArrayFrom(out), nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "adjacency_matrix.clear"); err != nil {
				return value.Nil(), err
			}
			s := payload[adjacencyMatrixState](this)
			for i := range s.edges {
				s.edges[i] = false
			}
			return value.Nil(), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "adjacency_matrix.str"); err != nil {
				return value.Nil(), err
			}
			s := payload[adjacencyMatrixState](this)
			var out []value.Value
			for u := 0; u < s.n; u++ {
				for v := 0; v < s.n; v++ {
					if s.edges[s.at(u, v)] {
						out = append(out, value.MakePair(value.Num(float64(u)), value.Num(float64(v))))
					}
				}
			}
			return value.StrS(itemsString("adjacency_matrix", out)), nil
		},
	}

	return st
}
