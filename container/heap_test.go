package container

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

func TestHeapMinAtTopOrder(t *testing.T) {
	st := newHeapType(io.Discard)
	this := construct(t, st, boolLit(false))
	for _, n := range []float64{5, 1, 4, 2, 3} {
		call(this, st, "insert", numLit(n))
	}

	var got []float64
	for i := 0; i < 5; i++ {
		v, err := call(this, st, "poll")
		require.NoError(t, err)
		got = append(got, v.AsNumber())
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}

func TestHeapMaxAtTopOrder(t *testing.T) {
	st := newHeapType(io.Discard)
	this := construct(t, st, boolLit(true))
	for _, n := range []float64{5, 1, 4, 2, 3} {
		call(this, st, "insert", numLit(n))
	}

	v, err := call(this, st, "peek")
	require.NoError(t, err)
	assert.Equal(t, float64(5), v.AsNumber())
}

func TestHeapPollOnEmptyIsOutOfBounds(t *testing.T) {
	st := newHeapType(io.Discard)
	this := construct(t, st, boolLit(false))
	_, err := call(this, st, "poll")
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrOutOfBounds, kind)
}

func TestHeapConstructorRequiresBool(t *testing.T) {
	st := newHeapType(io.Discard)
	_, err := st.Constructor(testEval{}, []ast.Expr{numLit(1)}, newTestScope())
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrTypeMismatch, kind)
}
