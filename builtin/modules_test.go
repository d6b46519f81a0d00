package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/value"
)

func TestRegisterStandardModulesExposesEveryName(t *testing.T) {
	r := newTestRegistry()
	RegisterStandardModules(r)

	for _, name := range []string{"array", "csv", "debug", "fs", "json", "math", "path", "random", "string", "stat", "sys", "time"} {
		_, err := r.Import(name)
		require.NoError(t, err, "module %q should import without error", name)
	}
}

func TestRegisterStandardModulesMemoizesLoader(t *testing.T) {
	r := newTestRegistry()
	RegisterStandardModules(r)

	first, err := r.Import("math")
	require.NoError(t, err)
	second, err := r.Import("math")
	require.NoError(t, err)
	assert.Same(t, first.AsObject(), second.AsObject())
}

func TestRegisterStandardTypesExposesContainerAndNativeTypes(t *testing.T) {
	r := newTestRegistry()
	RegisterStandardTypes(r)

	for _, name := range []string{
		"array_list", "linked_list", "stack", "queue", "deque", "map", "set",
		"heap", "treap", "adjacency_list", "adjacency_matrix", "graph",
		"vector", "matrix", "sqlite", "thread",
	} {
		_, ok := r.Type(name)
		assert.True(t, ok, "type %q should be registered", name)
	}
}

func TestImportUnknownModuleIsUnboundName(t *testing.T) {
	r := newTestRegistry()
	RegisterStandardModules(r)

	_, err := r.Import("does_not_exist")
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrUnboundName, kind)
}
