package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/value"
)

func TestJSONModuleStringifyRoundTrip(t *testing.T) {
	r := newTestRegistry()
	m := loadJSONModule(r)

	obj := value.NewObject()
	obj.Set("name", value.StrS("vane"))
	obj.Set("count", value.Num(3))
	obj.Set("tags", value.ArrayFrom([]value.Value{value.StrS("a"), value.StrS("b")}))

	str, err := callFn(m, "stringify", valLit(value.ObjectOf(obj)))
	require.NoError(t, err)

	parsed, err := callFn(m, "parse", strLit(str.AsString()))
	require.NoError(t, err)

	out := parsed.AsObject()
	name, _ := out.Get("name")
	assert.Equal(t, "vane", name.AsString())
	count, _ := out.Get("count")
	assert.Equal(t, float64(3), count.AsNumber())
	tags, _ := out.Get("tags")
	require.Len(t, tags.AsArray().Elems, 2)
}

func TestJSONModuleParseRejectsMalformedInput(t *testing.T) {
	r := newTestRegistry()
	m := loadJSONModule(r)

	_, err := callFn(m, "parse", strLit("{not json"))
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrInvalidFileFormat, kind)
}

func TestJSONModuleStringifyPrimitives(t *testing.T) {
	r := newTestRegistry()
	m := loadJSONModule(r)

	str, err := callFn(m, "stringify", valLit(value.Nil()))
	require.NoError(t, err)
	assert.Equal(t, "null", str.AsString())

	str, err = callFn(m, "stringify", valLit(value.Bool(true)))
	require.NoError(t, err)
	assert.Equal(t, "true", str.AsString())
}
