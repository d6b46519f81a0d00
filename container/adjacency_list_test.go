package container

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/value"
)

func TestAdjacencyListAddEdgeAndNeighbors(t *testing.T) {
	st := newAdjacencyListType(io.Discard)
	this := construct(t, st)
	call(this, st, "add_edge", strLit("a"), strLit("b"))
	call(this, st, "add_edge", strLit("a"), strLit("c"))

	neighbors, err := call(this, st, "get_neighbors", strLit("a"))
	require.NoError(t, err)
	arr := neighbors.AsArray()
	require.Len(t, arr.Elems, 2)
	assert.Equal(t, "b", arr.Elems[0].AsString())
	assert.Equal(t, "c", arr.Elems[1].AsString())
}

func TestAdjacencyListEdgeAddsBothEndpointsAsNodes(t *testing.T) {
	st := newAdjacencyListType(io.Discard)
	this := construct(t, st)
	call(this, st, "add_edge", strLit("a"), strLit("b"))

	sz, _ := call(this, st, "size")
	assert.Equal(t, float64(2), sz.AsNumber())

	contains, err := call(this, st, "contains", strLit("b"))
	require.NoError(t, err)
	assert.True(t, contains.AsBool())
}

func TestAdjacencyListNeighborsOfUnknownNodeIsOutOfBounds(t *testing.T) {
	st := newAdjacencyListType(io.Discard)
	this := construct(t, st)
	_, err := call(this, st, "get_neighbors", strLit("ghost"))
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrOutOfBounds, kind)
}

func TestAdjacencyListClear(t *testing.T) {
	st := newAdjacencyListType(io.Discard)
	this := construct(t, st)
	call(this, st, "add_edge", strLit("a"), strLit("b"))
	call(this, st, "clear")
	empty, _ := call(this, st, "empty")
	assert.True(t, empty.AsBool())
}
