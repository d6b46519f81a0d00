package container

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

func rowLit(vals ...float64) ast.Expr {
	elems := make([]value.Value, len(vals))
	for i, v := range vals {
		elems[i] = value.Num(v)
	}
	return valLit(value.ArrayFrom(elems))
}

func TestMatrixIdentityConstructor(t *testing.T) {
	st := newMatrixType(io.Discard)
	m := construct(t, st, numLit(3))

	items, err := call(m, st, "items")
	require.NoError(t, err)
	rows := items.AsArray().Elems
	require.Len(t, rows, 3)
	for r := 0; r < 3; r++ {
		row := rows[r].AsArray().Elems
		for c := 0; c < 3; c++ {
			want := float64(0)
			if r == c {
				want = 1
			}
			assert.Equal(t, want, row[c].AsNumber())
		}
	}
}

func TestMatrixConstructFromRows(t *testing.T) {
	st := newMatrixType(io.Discard)
	m := construct(t, st, rowLit(1, 2), rowLit(3, 4))

	got, err := call(m, st, "get", numLit(1), numLit(0))
	require.NoError(t, err)
	assert.Equal(t, float64(3), got.AsNumber())
}

func TestMatrixAddAndMultiply(t *testing.T) {
	st := newMatrixType(io.Discard)
	a := construct(t, st, rowLit(1, 2), rowLit(3, 4))
	b := construct(t, st, rowLit(5, 6), rowLit(7, 8))

	sum, err := call(a, st, "add", valLit(b))
	require.NoError(t, err)
	got, _ := call(sum, st, "get", numLit(0), numLit(0))
	assert.Equal(t, float64(6), got.AsNumber())

	product, err := call(a, st, "multiply", valLit(b))
	require.NoError(t, err)
	got, _ = call(product, st, "get", numLit(0), numLit(0))
	assert.Equal(t, float64(1*5+2*7), got.AsNumber())
	got, _ = call(product, st, "get", numLit(0), numLit(1))
	assert.Equal(t, float64(1*6+2*8), got.AsNumber())
}

func TestMatrixTranspose(t *testing.T) {
	st := newMatrixType(io.Discard)
	m := construct(t, st, rowLit(1, 2), rowLit(3, 4))
	tr, err := call(m, st, "transpose")
	require.NoError(t, err)

	got, _ := call(tr, st, "get", numLit(0), numLit(1))
	assert.Equal(t, float64(3), got.AsNumber())
}

func TestMatrixDimensionMismatchIsMatrixSizeMismatch(t *testing.T) {
	st := newMatrixType(io.Discard)
	a := construct(t, st, numLit(2))
	b := construct(t, st, numLit(3))

	_, err := call(a, st, "add", valLit(b))
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrMatrixSizeMismatch, kind)
}

func TestMatrixGetOutOfRange(t *testing.T) {
	st := newMatrixType(io.Discard)
	m := construct(t, st, numLit(2))
	_, err := call(m, st, "get", numLit(5), numLit(0))
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrOutOfBounds, kind)
}

func TestMatrixConstructorRejectsOutOfRangeDimension(t *testing.T) {
	st := newMatrixType(io.Discard)
	_, err := st.Constructor(testEval{}, []ast.Expr{numLit(10)}, newTestScope())
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrTypeMismatch, kind)
}
