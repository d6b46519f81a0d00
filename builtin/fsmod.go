package builtin

import (
	"os"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// loadFSModule wraps os's file primitives as whole-file read/write/list
// operations, matching spec.md §1's characterization of fs as a thin shim
// over host-OS primitives.
func loadFSModule(r *Registry) value.Value {
	m := newModule()

	m.Set("read_file", nativeFn("read_file", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "fs", "read_file")
		if err != nil {
			return value.Nil(), err
		}
		data, rerr := os.ReadFile(ss[0])
		if rerr != nil {
			if os.IsNotExist(rerr) {
				return value.Nil(), value.NewError(value.ErrFileNotFound, "fs.read_file", ss[0])
			}
			return value.Nil(), value.WrapError(value.ErrIOFailure, "fs.read_file", "read failed", rerr)
		}
		return value.Str(data), nil
	}))
	m.Set("write_file", nativeFn("write_file", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 2, "fs", "write_file")
		if err != nil {
			return value.Nil(), err
		}
		if werr := os.WriteFile(ss[0], []byte(ss[1]), 0o644); werr != nil {
			return value.Nil(), value.WrapError(value.ErrIOFailure, "fs.write_file", "write failed", werr)
		}
		return value.Nil(), nil
	}))
	m.Set("remove", nativeFn("remove", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "fs", "remove")
		if err != nil {
			return value.Nil(), err
		}
		if rerr := os.Remove(ss[0]); rerr != nil {
			if os.IsNotExist(rerr) {
				return value.Nil(), value.NewError(value.ErrFileNotFound, "fs.remove", ss[0])
			}
			return value.Nil(), value.WrapError(value.ErrIOFailure, "fs.remove", "remove failed", rerr)
		}
		return value.Nil(), nil
	}))
	m.Set("mkdir", nativeFn("mkdir", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "fs", "mkdir")
		if err != nil {
			return value.Nil(), err
		}
		if merr := os.MkdirAll(ss[0], 0o755); merr != nil {
			return value.Nil(), value.WrapError(value.ErrDirectoryCreationError, "fs.mkdir", "mkdir failed", merr)
		}
		return value.Nil(), nil
	}))
	m.Set("list_dir", nativeFn("list_dir", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "fs", "list_dir")
		if err != nil {
			return value.Nil(), err
		}
		entries, derr := os.ReadDir(ss[0])
		if derr != nil {
			if os.IsNotExist(derr) {
				return value.Nil(), value.NewError(value.ErrFileNotFound, "fs.list_dir", ss[0])
			}
			return value.Nil(), value.WrapError(value.ErrIOFailure, "fs.list_dir", "readdir failed", derr)
		}
		names := make([]value.Value, len(entries))
		for i, e := range entries {
			names[i] = value.StrS(e.Name())
		}
		return value.ArrayFrom(names), nil
	}))
	m.Set("stat", nativeFn("stat", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "fs", "stat")
		if err != nil {
			return value.Nil(), err
		}
		info, serr := os.Stat(ss[0])
		if serr != nil {
			if os.IsNotExist(serr) {
				return value.Nil(), value.NewError(value.ErrFileNotFound, "fs.stat", ss[0])
			}
			return value.Nil(), value.WrapError(value.ErrIOFailure, "fs.stat", "stat failed", serr)
		}
		obj := value.NewObject()
		obj.Set("name", value.StrS(info.Name()))
		obj.Set("size", value.Num(float64(info.Size())))
		obj.Set("is_dir", value.Bool(info.IsDir()))
		obj.Set("mod_time", value.Num(float64(info.ModTime().UnixNano())))
		obj.Set("mode", value.StrS(info.Mode().String()))
		return value.ObjectOf(obj), nil
	}))
	m.Set("exists", nativeFn("exists", func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		ss, err := r.ExpectStringArgs(ev, args, scope, 1, "fs", "exists")
		if err != nil {
			return value.Nil(), err
		}
		_, serr := os.Stat(ss[0])
		return value.Bool(serr == nil), nil
	}))

	return value.ObjectOf(m)
}
