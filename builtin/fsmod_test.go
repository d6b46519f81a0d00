package builtin

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/value"
)

func TestFSModuleWriteReadRoundTrip(t *testing.T) {
	r := newTestRegistry()
	m := loadFSModule(r)
	path := filepath.Join(t.TempDir(), "note.txt")

	_, err := callFn(m, "write_file", strLit(path), strLit("hello"))
	require.NoError(t, err)

	got, err := callFn(m, "read_file", strLit(path))
	require.NoError(t, err)
	assert.Equal(t, "hello", got.AsString())
}

func TestFSModuleReadMissingFileIsFileNotFound(t *testing.T) {
	r := newTestRegistry()
	m := loadFSModule(r)

	_, err := callFn(m, "read_file", strLit(filepath.Join(t.TempDir(), "ghost.txt")))
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrFileNotFound, kind)
}

func TestFSModuleMkdirAndListDir(t *testing.T) {
	r := newTestRegistry()
	m := loadFSModule(r)
	dir := filepath.Join(t.TempDir(), "sub", "nested")

	_, err := callFn(m, "mkdir", strLit(dir))
	require.NoError(t, err)

	_, err = callFn(m, "write_file", strLit(filepath.Join(dir, "a.txt")), strLit("x"))
	require.NoError(t, err)

	entries, err := callFn(m, "list_dir", strLit(dir))
	require.NoError(t, err)
	arr := entries.AsArray()
	require.Len(t, arr.Elems, 1)
	assert.Equal(t, "a.txt", arr.Elems[0].AsString())
}

func TestFSModuleRemove(t *testing.T) {
	r := newTestRegistry()
	m := loadFSModule(r)
	path := filepath.Join(t.TempDir(), "gone.txt")
	_, _ = callFn(m, "write_file", strLit(path), strLit("x"))

	_, err := callFn(m, "remove", strLit(path))
	require.NoError(t, err)

	exists, err := callFn(m, "exists", strLit(path))
	require.NoError(t, err)
	assert.False(t, exists.AsBool())
}

func TestFSModuleStat(t *testing.T) {
	r := newTestRegistry()
	m := loadFSModule(r)
	path := filepath.Join(t.TempDir(), "stat.txt")
	_, _ = callFn(m, "write_file", strLit(path), strLit("12345"))

	info, err := callFn(m, "stat", strLit(path))
	require.NoError(t, err)
	obj := info.AsObject()
	size, _ := obj.Get("size")
	assert.Equal(t, float64(5), size.AsNumber())
	isDir, _ := obj.Get("is_dir")
	assert.False(t, isDir.AsBool())
}
