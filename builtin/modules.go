package builtin

import "github.com/vanelang/vane/container"

// RegisterStandardModules registers every module named in spec.md §6's
// script-visible builtin surface: array, csv, debug, fs, json, math, path,
// random, string, stat, sys, time.
func RegisterStandardModules(r *Registry) {
	r.RegisterModule("array", loadArrayModule)
	r.RegisterModule("csv", loadCSVModule)
	r.RegisterModule("debug", loadDebugModule)
	r.RegisterModule("fs", loadFSModule)
	r.RegisterModule("json", loadJSONModule)
	r.RegisterModule("math", loadMathModule)
	r.RegisterModule("path", loadPathModule)
	r.RegisterModule("random", loadRandomModule)
	r.RegisterModule("string", loadStringModule)
	r.RegisterModule("stat", loadStatModule)
	r.RegisterModule("sys", loadSysModule)
	r.RegisterModule("time", loadTimeModule)
}

// RegisterStandardTypes registers every native type named in spec.md §6:
// the container library (package container), plus sqlite and thread, which
// live in this package because they need the Registry's writers/env map
// rather than being pure data structures.
func RegisterStandardTypes(r *Registry) {
	container.RegisterAll(r)
	registerSQLiteType(r)
	registerThreadType(r)
}
