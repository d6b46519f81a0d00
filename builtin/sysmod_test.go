package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/value"
)

func TestSysModuleGetenvMissingIsNil(t *testing.T) {
	r := newTestRegistry()
	m := loadSysModule(r)

	v, err := callFn(m, "getenv", strLit("DOES_NOT_EXIST"))
	require.NoError(t, err)
	assert.Equal(t, value.KindNil, v.Kind)
}

func TestSysModuleSetenvGetenvUnsetenv(t *testing.T) {
	r := newTestRegistry()
	m := loadSysModule(r)

	_, err := callFn(m, "setenv", strLit("KEY"), strLit("value"))
	require.NoError(t, err)

	got, err := callFn(m, "getenv", strLit("KEY"))
	require.NoError(t, err)
	assert.Equal(t, "value", got.AsString())

	_, err = callFn(m, "unsetenv", strLit("KEY"))
	require.NoError(t, err)

	got, err = callFn(m, "getenv", strLit("KEY"))
	require.NoError(t, err)
	assert.Equal(t, value.KindNil, got.Kind)
}

func TestSysModuleEnvironmentIsPrivatePerRegistry(t *testing.T) {
	a := newTestRegistry()
	b := newTestRegistry()
	ma := loadSysModule(a)
	mb := loadSysModule(b)

	_, _ = callFn(ma, "setenv", strLit("KEY"), strLit("a-value"))
	got, err := callFn(mb, "getenv", strLit("KEY"))
	require.NoError(t, err)
	assert.Equal(t, value.KindNil, got.Kind)
}
