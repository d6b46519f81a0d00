package container

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/value"
)

func TestDequePushBothEnds(t *testing.T) {
	st := newDequeType(io.Discard)
	this := construct(t, st)
	call(this, st, "push_tail", numLit(2))
	call(this, st, "push_head", numLit(1))
	call(this, st, "push_tail", numLit(3))

	items, err := call(this, st, "items")
	require.NoError(t, err)
	arr := items.AsArray()
	require.Len(t, arr.Elems, 3)
	assert.Equal(t, []float64{1, 2, 3}, []float64{arr.Elems[0].AsNumber(), arr.Elems[1].AsNumber(), arr.Elems[2].AsNumber()})
}

func TestDequePopBothEnds(t *testing.T) {
	st := newDequeType(io.Discard)
	this := construct(t, st)
	call(this, st, "push_tail", numLit(1))
	call(this, st, "push_tail", numLit(2))
	call(this, st, "push_tail", numLit(3))

	head, err := call(this, st, "pop_head")
	require.NoError(t, err)
	assert.Equal(t, float64(1), head.AsNumber())

	tail, err := call(this, st, "pop_tail")
	require.NoError(t, err)
	assert.Equal(t, float64(3), tail.AsNumber())
}

func TestDequePeekOnEmptyIsOutOfBounds(t *testing.T) {
	st := newDequeType(io.Discard)
	this := construct(t, st)
	_, err := call(this, st, "peek_head")
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrOutOfBounds, kind)
}
