package container

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/value"
)

func TestStackPushPopLIFO(t *testing.T) {
	st := newStackType(io.Discard)
	this := construct(t, st)
	call(this, st, "push", numLit(1))
	call(this, st, "push", numLit(2))
	call(this, st, "push", numLit(3))

	top, err := call(this, st, "peek")
	require.NoError(t, err)
	assert.Equal(t, float64(3), top.AsNumber())

	v, err := call(this, st, "pop")
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.AsNumber())

	sz, _ := call(this, st, "size")
	assert.Equal(t, float64(2), sz.AsNumber())
}

func TestStackPopOnEmptyIsOutOfBounds(t *testing.T) {
	st := newStackType(io.Discard)
	this := construct(t, st)
	_, err := call(this, st, "pop")
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrOutOfBounds, kind)
}

func TestStackClear(t *testing.T) {
	st := newStackType(io.Discard)
	this := construct(t, st)
	call(this, st, "push", numLit(1))
	call(this, st, "clear")
	empty, _ := call(this, st, "empty")
	assert.True(t, empty.AsBool())
}
