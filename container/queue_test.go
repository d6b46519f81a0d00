package container

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/value"
)

func TestQueueFIFO(t *testing.T) {
	st := newQueueType(io.Discard)
	this := construct(t, st)
	call(this, st, "enqueue", numLit(1))
	call(this, st, "enqueue", numLit(2))
	call(this, st, "enqueue", numLit(3))

	v, err := call(this, st, "dequeue")
	require.NoError(t, err)
	assert.Equal(t, float64(1), v.AsNumber())

	v, err = call(this, st, "poll")
	require.NoError(t, err)
	assert.Equal(t, float64(2), v.AsNumber())

	sz, _ := call(this, st, "size")
	assert.Equal(t, float64(1), sz.AsNumber())
}

func TestQueuePollOnEmptyIsOutOfBounds(t *testing.T) {
	st := newQueueType(io.Discard)
	this := construct(t, st)
	_, err := call(this, st, "poll")
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrOutOfBounds, kind)
}

func TestQueueCompactsAfterManyDequeues(t *testing.T) {
	st := newQueueType(io.Discard)
	this := construct(t, st)
	for i := 0; i < 10; i++ {
		call(this, st, "push", numLit(float64(i)))
	}
	for i := 0; i < 6; i++ {
		call(this, st, "poll")
	}
	items, err := call(this, st, "items")
	require.NoError(t, err)
	arr := items.AsArray()
	require.Len(t, arr.Elems, 4)
	assert.Equal(t, float64(6), arr.Elems[0].AsNumber())
	assert.Equal(t, float64(9), arr.Elems[3].AsNumber())
}
