package container

import (
	"io"
	"math"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// vectorState is a fixed-dimension (2..4) Euclidean vector of float64
// components, matching spec.md's numeric model where every number is a
// float64.
type vectorState struct {
	comps []float64
}

func newVectorType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "vector"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		vals, err := expectAtLeast(errw, ev, args, scope, 2, "vector.new")
		if err != nil {
			return value.Nil(), err
		}
		if len(vals) > 4 {
			return value.Nil(), typeErrorf(errw, "vector.new", "vector dimension must be between 2 and 4")
		}
		comps := make([]float64, len(vals))
		for i, v := range vals {
			if v.Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "vector.new", "all components must be numbers")
			}
			comps[i] = v.AsNumber()
		}
		return wrapInstance(st, &vectorState{comps: comps}), nil
	}

	sameDim := func(a, b *vectorState, op string) error {
		if len(a.comps) != len(b.comps) {
			return value.NewError(value.ErrVectorSizeMismatch, op, "vectors must share a dimension")
		}
		return nil
	}

	checkIndex := func(s *vectorState, i int, op string) error {
		if i < 0 || i >= len(s.comps) {
			return value.NewError(value.ErrOutOfBounds, op, "component index out of range")
		}
		return nil
	}

	otherVector := func(vals []value.Value, op string) (*vectorState, error) {
		if vals[0].Kind != value.KindStdInstance {
			return nil, typeErrorf(errw, op, "argument must be a vector")
		}
		return payload[vectorState](vals[0]), nil
	}

	st.Methods = map[string]value.MethodFunc{
		"add": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "vector.add")
			if err != nil {
				return value.Nil(), err
			}
			a := payload[vectorState](this)
			b, berr := otherVector(vals, "vector.add")
			if berr != nil {
				return value.Nil(), berr
			}
			if derr := sameDim(a, b, "vector.add"); derr != nil {
				return value.Nil(), derr
			}
			out := make([]float64, len(a.comps))
			for i := range a.comps {
				out[i] = a.comps[i] + b.comps[i]
			}
			return wrapInstance(st, &vectorState{comps: out}), nil
		},
		"sub": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "vector.sub")
			if err != nil {
				return value.Nil(), err
			}
			a := payload[vectorState](this)
			b, berr := otherVector(vals, "vector.sub")
			if berr != nil {
				return value.Nil(), berr
			}
			if derr := sameDim(a, b, "vector.sub"); derr != nil {
				return value.Nil(), derr
			}
			out := make([]float64, len(a.comps))
			for i := range a.comps {
				out[i] = a.comps[i] - b.comps[i]
			}
			return wrapInstance(st, &vectorState{comps: out}), nil
		},
		"dot": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "vector.dot")
			if err != nil {
				return value.Nil(), err
			}
			a := payload[vectorState](this)
			b, berr := otherVector(vals, "vector.dot")
			if berr != nil {
				return value.Nil(), berr
			}
			if derr := sameDim(a, b, "vector.dot"); derr != nil {
				return value.Nil(), derr
			}
			var sum float64
			for i := range a.comps {
				sum += a.comps[i] * b.comps[i]
			}
			return value.Num(sum), nil
		},
		"scale": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "vector.scale")
			if err != nil {
				return value.Nil(), err
			}
			if vals[0].Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "vector.scale", "scale factor must be a number")
			}
			a := payload[vectorState](this)
			f := vals[0].AsNumber()
			out := make([]float64, len(a.comps))
			for i := range a.comps {
				out[i] = a.comps[i] * f
			}
			return wrapInstance(st, &vectorState{comps: out}), nil
		},
		"norm": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "vector.norm"); err != nil {
				return value.Nil(), err
			}
			a := payload[vectorState](this)
			var sum float64
			for _, c := range a.comps {
				sum += c * c
			}
			return value.Num(math.Sqrt(sum)), nil
		},
		"normalize": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "vector.normalize"); err != nil {
				return value.Nil(), err
			}
			a := payload[vectorState](this)
			var sum float64
			for _, c := range a.comps {
				sum += c * c
			}
			n := math.Sqrt(sum)
			if n == 0 {
				return value.Nil(), value.NewError(value.ErrDivisionByZero, "vector.normalize", "cannot normalize the zero vector")
			}
			out := make([]float64, len(a.comps))
			for i, c := range a.comps {
				out[i] = c / n
			}
			return wrapInstance(st, &vectorState{comps: out}), nil
		},
		"dim": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "vector.dim"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(len(payload[vectorState](this).comps))), nil
		},
		"project": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "vector.project")
			if err != nil {
				return value.Nil(), err
			}
			a := payload[vectorState](this)
			b, berr := otherVector(vals, "vector.project")
			if berr != nil {
				return value.Nil(), berr
			}
			if derr := sameDim(a, b, "vector.project"); derr != nil {
				return value.Nil(), derr
			}
			var dot, bnormsq float64
			for i := range a.comps {
				dot += a.comps[i] * b.comps[i]
				bnormsq += b.comps[i] * b.comps[i]
			}
			if bnormsq == 0 {
				return value.Nil(), value.NewError(value.ErrDivisionByZero, "vector.project", "cannot project onto the zero vector")
			}
			scale := dot / bnormsq
			out := make([]float64, len(b.comps))
			for i, c := range b.comps {
				out[i] = c * scale
			}
			return wrapInstance(st, &vectorState{comps: out}), nil
		},
		"angle": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "vector.angle")
			if err != nil {
				return value.Nil(), err
			}
			a := payload[vectorState](this)
			b, berr := otherVector(vals, "vector.angle")
			if berr != nil {
				return value.Nil(), berr
			}
			if derr := sameDim(a, b, "vector.angle"); derr != nil {
				return value.Nil(), derr
			}
			var dot, anormsq, bnormsq float64
			for i := range a.comps {
				dot += a.comps[i] * b.comps[i]
				anormsq += a.comps[i] * a.comps[i]
				bnormsq += b.comps[i] * b.comps[i]
			}
			denom := math.Sqrt(anormsq) * math.Sqrt(bnormsq)
			if denom == 0 {
				return value.Nil(), value.NewError(value.ErrDivisionByZero, "vector.angle", "cannot compute angle with the zero vector")
			}
			cos := dot / denom
			if cos > 1 {
				cos = 1
			} else if cos < -1 {
				cos = -1
			}
			return value.Num(math.Acos(cos)), nil
		},
		"cross": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "vector.cross")
			if err != nil {
				return value.Nil(), err
			}
			a := payload[vectorState](this)
			b, berr := otherVector(vals, "vector.cross")
			if berr != nil {
				return value.Nil(), berr
			}
			if len(a.comps) != 3 || len(b.comps) != 3 {
				return value.Nil(), value.NewError(value.ErrVectorSizeMismatch, "vector.cross", "cross product requires two 3-dimensional vectors")
			}
			out := []float64{
				a.comps[1]*b.comps[2] - a.comps[2]*b.comps[1],
				a.comps[2]*b.comps[0] - a.comps[0]*b.comps[2],
				a.comps[0]*b.comps[1] - a.comps[1]*b.comps[0],
			}
			return wrapInstance(st, &vectorState{comps: out}), nil
		},
		"equals": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "vector.equals")
			if err != nil {
				return value.Nil(), err
			}
			a := payload[vectorState](this)
			b, berr := otherVector(vals, "vector.equals")
			if berr != nil {
				return value.Nil(), berr
			}
			if len(a.comps) != len(b.comps) {
				return value.Bool(false), nil
			}
			for i := range a.comps {
				if a.comps[i] != b.comps[i] {
					return value.Bool(false), nil
				}
			}
			return value.Bool(true), nil
		},
		"set": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 2, "vector.set")
			if err != nil {
				return value.Nil(), err
			}
			if vals[0].Kind != value.KindNumber || vals[1].Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "vector.set", "index and value must be numbers")
			}
			a := payload[vectorState](this)
			i := int(vals[0].AsNumber())
			if cerr := checkIndex(a, i, "vector.set"); cerr != nil {
				return value.Nil(), cerr
			}
			a.comps[i] = vals[1].AsNumber()
			return value.Nil(), nil
		},
		"get": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "vector.get")
			if err != nil {
				return value.Nil(), err
			}
			if vals[0].Kind != value.KindNumber {
				return value.Nil(), typeErrorf(errw, "vector.get", "index must be a number")
			}
			a := payload[vectorState](this)
			i := int(vals[0].AsNumber())
			if cerr := checkIndex(a, i, "vector.get"); cerr != nil {
				return value.Nil(), cerr
			}
			return value.Num(a.comps[i]), nil
		},
		"items": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "vector.items"); err != nil {
				return value.Nil(), err
			}
			a := payload[vectorState](this)
			out := make([]value.Value, len(a.comps))
			for i, c := range a.comps {
				out[i] = value.Num(c)
			}
			return value.ArrayFrom(out), nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "vector.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(len(payload[vectorState](this).comps))), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "vector.str"); err != nil {
				return value.Nil(), err
			}
			a := payload[vectorState](this)
			out := make([]value.Value, len(a.comps))
			for i, c := range a.comps {
				out[i] = value.Num(c)
			}
			return value.StrS(itemsString("vector", out)), nil
		},
	}

	return st
}
