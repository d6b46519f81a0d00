package container

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

func TestHashSetInsertDedupesAndContains(t *testing.T) {
	st := newHashSetType(io.Discard)
	this := construct(t, st)
	call(this, st, "insert", numLit(1))
	call(this, st, "insert", numLit(1))
	call(this, st, "insert", numLit(2))

	sz, _ := call(this, st, "size")
	assert.Equal(t, float64(2), sz.AsNumber())

	contains, err := call(this, st, "contains", numLit(1))
	require.NoError(t, err)
	assert.True(t, contains.AsBool())
}

func TestHashSetSeedConstructor(t *testing.T) {
	st := newHashSetType(io.Discard)
	seed := value.ArrayFrom([]value.Value{value.Num(1), value.Num(2), value.Num(2)})
	this := construct(t, st, valLit(seed))

	sz, _ := call(this, st, "size")
	assert.Equal(t, float64(2), sz.AsNumber())
}

func TestHashSetSeedMustBeArray(t *testing.T) {
	st := newHashSetType(io.Discard)
	_, err := st.Constructor(testEval{}, []ast.Expr{numLit(1)}, newTestScope())
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrTypeMismatch, kind)
}

func TestHashSetRemove(t *testing.T) {
	st := newHashSetType(io.Discard)
	this := construct(t, st)
	call(this, st, "insert", numLit(1))

	removed, err := call(this, st, "remove", numLit(1))
	require.NoError(t, err)
	assert.True(t, removed.AsBool())

	removed, err = call(this, st, "remove", numLit(1))
	require.NoError(t, err)
	assert.False(t, removed.AsBool())
}
