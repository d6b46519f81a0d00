package container

import (
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// matrixState is a row-major square matrix of float64 entries, dim 2..4.
type matrixState struct {
	dim  int
	data []float64
}

func (s *matrixState) at(r, c int) int { return r*s.dim + c }

func identityData(dim int) []float64 {
	data := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		data[i*dim+i] = 1
	}
	return data
}

func newMatrixType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "matrix"}

	// Constructor accepts one of:
	//   new matrix(n)          - n x n identity matrix
	//   new matrix([[..],[..]]) - nested row arrays
	//   new matrix(row1, row2, ...) - 2..4 row arrays as separate arguments
	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := expectAtLeast(errw, ev, args, scope, 1, "matrix.new")
		if err != nil {
			return value.Nil(), err
		}

		if len(vals) == 1 && vals[0].Kind == value.KindNumber {
			dim := int(vals[0].AsNumber())
			if dim < 2 || dim > 4 {
				return value.Nil(), typeErrorf(errw, "matrix.new", "matrix dimension must be between 2 and 4")
			}
			return wrapInstance(st, &matrixState{dim: dim, data: identityData(dim)}), nil
		}

		var rows []value.Value
		if len(vals) == 1 && vals[0].Kind == value.KindArray {
			rows = vals[0].AsArray().Elems
		} else {
			rows = vals
		}

		dim := len(rows)
		if dim < 2 || dim > 4 {
			return value.Nil(), typeErrorf(errw, "matrix.new", "matrix dimension must be between 2 and 4")
		}
		data := make([]float64, dim*dim)
		for r, rowVal := range rows {
			if rowVal.Kind != value.KindArray || len(rowVal.AsArray().Elems) != dim {
				return value.Nil(), typeErrorf(errw, "matrix.new", "matrix must be square with rows matching its dimension")
			}
			for c, cell := range rowVal.AsArray().Elems {
				if cell.Kind != value.KindNumber {
					return value.Nil(), typeErrorf(errw, "matrix.new", "matrix entries must be numbers")
				}
				data[r*dim+c] = cell.AsNumber()
			}
		}
		return wrapInstance(st, &matrixState{dim: dim, data: data}), nil
	}

	otherMatrix := func(vals []value.Value, op string) (*matrixState, error) {
		if vals[0].Kind != value.KindStdInstance {
			return nil, typeErrorf(errw, op, "argument must be a matrix")
		}
		return payload[matrixState](vals[0]), nil
	}

	st.Methods = map[string]value.MethodFunc{
		"add": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "matrix.add")
			if err != nil {
				return value.Nil(), err
			}
			a := payload[matrixState](this)
			b, berr := otherMatrix(vals, "matrix.add")
			if berr != nil {
				return value.Nil(), berr
			}
			if a.dim != b.dim {
				return value.Nil(), value.NewError(value.ErrMatrixSizeMismatch, "matrix.add", "matrices must share a dimension")
			}
			out := make([]float64, len(a.data))
			for i := range a.data {
				out[i] = a.data[i] + b.data[i]
			}
			return wrapInstance(st, &matrixState{dim: a.dim, data: out}), nil
		},
		"multiply": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "matrix.multiply")
			if err != nil {
				return value.Nil(), err
			}
			a := payload[matrixState](this)
			b, berr := otherMatrix(vals, "matrix.multiply")
			if berr != nil {
				return value.Nil(), berr
			}
			if a.dim != b.dim {
				return value.Nil(), value.NewError(value.ErrMatrixSizeMismatch, "matrix.multiply", "matrices must share a dimension")
			}
			dim := a.dim
			out := make([]float64, dim*dim)
			for r := 0; r < dim; r++ {
				for c := 0; c < dim; c++ {
					var sum float64
					for k := 0; k < dim; k++ {
						sum += a.data[a.at(r, k)] * b.data[b.at(k, c)]
					}
					out[r*dim+c] = sum
				}
			}
			return wrapInstance(st, &matrixState{dim: dim, data: out}), nil
		},
		"transpose": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "matrix.transpose"); err != nil {
				return value.Nil(), err
			}
			a := payload[matrixState](this)
			dim := a.dim
			out := make([]float64, dim*dim)
			for r := 0; r < dim; r++ {
				for c := 0; c < dim; c++ {
					out[c*dim+r] = a.data[r*dim+c]
				}
			}
			return wrapInstance(st, &matrixState{dim: dim, data: out}), nil
		},
		"get": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 2, "matrix.get")
			if err != nil {
				return value.Nil(), err
			}
			a := payload[matrixState](this)
			r, c := int(vals[0].AsNumber()), int(vals[1].AsNumber())
			if r < 0 || r >= a.dim || c < 0 || c >= a.dim {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "matrix.get", "row/column index out of range")
			}
			return value.Num(a.data[a.at(r, c)]), nil
		},
		"set": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 3, "matrix.set")
			if err != nil {
				return value.Nil(), err
			}
			a := payload[matrixState](this)
			r, c := int(vals[0].AsNumber()), int(vals[1].AsNumber())
			if r < 0 || r >= a.dim || c < 0 || c >= a.dim {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "matrix.set", "row/column index out of range")
			}
			if vals[2].Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "matrix.set", "value must be a number")
			}
			a.data[a.at(r, c)] = vals[2].AsNumber()
			return value.Nil(), nil
		},
		"dim": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "matrix.dim"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(payload[matrixState](this).dim)), nil
		},
		"items": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "matrix.items"); err != nil {
				return value.Nil(), err
			}
			a := payload[matrixState](this)
			rows := make([]value.Value, a.dim)
			for r := 0; r < a.dim; r++ {
				row := make([]value.Value, a.dim)
				for c := 0; c < a.dim; c++ {
					row[c] = value.Num(a.data[a.at(r, c)])
				}
				rows[r] = value.ArrayFrom(row)
			}
			return value.ArrayFrom(rows), nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "matrix.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(payload[matrixState](this).dim)), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "matrix.str"); err != nil {
				return value.Nil(), err
			}
			a := payload[matrixState](this)
			rows := make([]value.Value, a.dim)
			for r := 0; r < a.dim; r++ {
				row := make([]value.Value, a.dim)
				for c := 0; c < a.dim; c++ {
					row[c] = value.Num(a.data[a.at(r, c)])
				}
				rows[r] = value.ArrayFrom(row)
			}
			return value.StrS(itemsString("matrix", rows)), nil
		},
	}

	return st
}
