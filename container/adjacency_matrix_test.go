package container

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

func TestAdjacencyMatrixAddContainsRemoveEdge(t *testing.T) {
	st := newAdjacencyMatrixType(io.Discard)
	this := construct(t, st, numLit(3))

	call(this, st, "add_edge", numLit(0), numLit(1))
	contains, err := call(this, st, "contains_edge", numLit(0), numLit(1))
	require.NoError(t, err)
	assert.True(t, contains.AsBool())

	contains, err = call(this, st, "contains_edge", numLit(1), numLit(0))
	require.NoError(t, err)
	assert.False(t, contains.AsBool(), "directed matrix should not imply the reverse edge")

	call(this, st, "remove_edge", numLit(0), numLit(1))
	contains, err = call(this, st, "contains_edge", numLit(0), numLit(1))
	require.NoError(t, err)
	assert.False(t, contains.AsBool())
}

func TestAdjacencyMatrixOutOfRangeNode(t *testing.T) {
	st := newAdjacencyMatrixType(io.Discard)
	this := construct(t, st, numLit(2))

	_, err := call(this, st, "add_edge", numLit(5), numLit(0))
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrOutOfBounds, kind)
}

func TestAdjacencyMatrixEdgesListsPairs(t *testing.T) {
	st := newAdjacencyMatrixType(io.Discard)
	this := construct(t, st, numLit(2))
	call(this, st, "add_edge", numLit(0), numLit(1))
	call(this, st, "add_edge", numLit(1), numLit(0))

	edges, err := call(this, st, "edges")
	require.NoError(t, err)
	arr := edges.AsArray()
	require.Len(t, arr.Elems, 2)
}

func TestAdjacencyMatrixConstructorRejectsNegativeSize(t *testing.T) {
	st := newAdjacencyMatrixType(io.Discard)
	_, err := st.Constructor(testEval{}, []ast.Expr{numLit(-1)}, newTestScope())
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrTypeMismatch, kind)
}
