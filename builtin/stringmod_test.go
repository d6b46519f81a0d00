package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/value"
)

func TestStringModuleCasing(t *testing.T) {
	r := newTestRegistry()
	m := loadStringModule(r)

	upper, err := callFn(m, "upper", strLit("hello"))
	require.NoError(t, err)
	assert.Equal(t, "HELLO", upper.AsString())

	lower, err := callFn(m, "lower", strLit("HELLO"))
	require.NoError(t, err)
	assert.Equal(t, "hello", lower.AsString())

	title, err := callFn(m, "title", strLit("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "Hello World", title.AsString())
}

func TestStringModuleTrimSplitJoin(t *testing.T) {
	r := newTestRegistry()
	m := loadStringModule(r)

	trimmed, err := callFn(m, "trim", strLit("  hi  "))
	require.NoError(t, err)
	assert.Equal(t, "hi", trimmed.AsString())

	split, err := callFn(m, "split", strLit("a,b,c"), strLit(","))
	require.NoError(t, err)
	arr := split.AsArray()
	require.Len(t, arr.Elems, 3)
	assert.Equal(t, "b", arr.Elems[1].AsString())

	joined, err := callFn(m, "join", valLit(value.ArrayFrom([]value.Value{value.StrS("a"), value.StrS("b")})), strLit("-"))
	require.NoError(t, err)
	assert.Equal(t, "a-b", joined.AsString())
}

func TestStringModuleJoinRejectsNonStringElement(t *testing.T) {
	r := newTestRegistry()
	m := loadStringModule(r)

	_, err := callFn(m, "join", valLit(value.ArrayFrom([]value.Value{value.Num(1)})), strLit("-"))
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrTypeMismatch, kind)
}

func TestStringModulePredicates(t *testing.T) {
	r := newTestRegistry()
	m := loadStringModule(r)

	contains, err := callFn(m, "contains", strLit("hello"), strLit("ell"))
	require.NoError(t, err)
	assert.True(t, contains.AsBool())

	starts, err := callFn(m, "starts_with", strLit("hello"), strLit("he"))
	require.NoError(t, err)
	assert.True(t, starts.AsBool())

	ends, err := callFn(m, "ends_with", strLit("hello"), strLit("lo"))
	require.NoError(t, err)
	assert.True(t, ends.AsBool())
}

func TestStringModuleReplaceRepeatLenIndexOf(t *testing.T) {
	r := newTestRegistry()
	m := loadStringModule(r)

	replaced, err := callFn(m, "replace", strLit("foo bar foo"), strLit("foo"), strLit("baz"))
	require.NoError(t, err)
	assert.Equal(t, "baz bar baz", replaced.AsString())

	repeated, err := callFn(m, "repeat", strLit("ab"), numLit(3))
	require.NoError(t, err)
	assert.Equal(t, "ababab", repeated.AsString())

	length, err := callFn(m, "len", strLit("héllo"))
	require.NoError(t, err)
	assert.Equal(t, float64(5), length.AsNumber())

	idx, err := callFn(m, "index_of", strLit("hello"), strLit("ll"))
	require.NoError(t, err)
	assert.Equal(t, float64(2), idx.AsNumber())
}
