// Package builtin implements Vane's builtin-module registry (C4): module
// namespaces loaded lazily on `import`, native std-struct types constructed
// via `new T(args)`, and the argument-validation helpers every handler in
// this package and in package container is built on.
package builtin

import (
	"io"
	"sync"

	"github.com/chronos-tachyon/assert"

	"github.com/vanelang/vane/value"
)

// ModuleLoader builds a module's namespace object on first import. It
// receives the owning Registry so a loader can reach the process-wide
// writers or other modules if it needs to.
type ModuleLoader func(r *Registry) value.Value

// Registry is the builtin-module/native-type loader described by spec.md
// §3.3/§4.4. One Registry is created per Interpreter (eval.New).
type Registry struct {
	mu sync.Mutex

	loaders map[string]ModuleLoader
	loaded  map[string]value.Value

	types map[string]*value.StdStruct

	Out io.Writer
	Err io.Writer

	// env is the private process-map the `sys` module's getenv/setenv/
	// unsetenv operate over (spec.md §6) — distinct from the real OS
	// environment.
	env   map[string]string
	envMu sync.Mutex
}

// NewRegistry returns an empty Registry wired to the given writers
// (spec.md §6's "out"/"err" writers).
func NewRegistry(out, err io.Writer) *Registry {
	return &Registry{
		loaders: make(map[string]ModuleLoader),
		loaded:  make(map[string]value.Value),
		types:   make(map[string]*value.StdStruct),
		Out:     out,
		Err:     err,
		env:     make(map[string]string),
	}
}

// RegisterModule registers a module loader under name. Registering the same
// name twice replaces the loader (last write wins), matching how the rest
// of this package's RegisterStandardModules call registers each module
// exactly once at startup.
func (r *Registry) RegisterModule(name string, loader ModuleLoader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[name] = loader
}

// RegisterType registers a native std-struct type under name.
func (r *Registry) RegisterType(name string, desc *value.StdStruct) {
	assert.Assertf(desc != nil, "RegisterType called with nil descriptor for %q", name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = desc
}

// Types returns a snapshot of all registered native types, keyed by name.
func (r *Registry) Types() map[string]*value.StdStruct {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*value.StdStruct, len(r.types))
	for k, v := range r.types {
		out[k] = v
	}
	return out
}

// ErrWriter implements value.TypeRegistrar for package container.
func (r *Registry) ErrWriter() io.Writer { return r.Err }

// Type looks up a single registered native type.
func (r *Registry) Type(name string) (*value.StdStruct, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.types[name]
	return t, ok
}

// Import triggers a module's loader on first use and memoizes the result
// in the Registry, so the loader runs once per Registry (spec.md §4.4).
// Returns unbound_name if no loader is registered under name.
func (r *Registry) Import(name string) (value.Value, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.loaded[name]; ok {
		return v, nil
	}
	loader, ok := r.loaders[name]
	if !ok {
		return value.Nil(), value.NewError(value.ErrUnboundName, "builtin.import", "no such module \""+name+"\"")
	}
	v := loader(r)
	r.loaded[name] = v
	return v, nil
}

// Getenv/Setenv/Unsetenv implement the `sys` module's private environment
// map (spec.md §6): distinct from os.Getenv/os.Setenv, so changes never
// leak to spawned OS processes.
func (r *Registry) Getenv(key string) (string, bool) {
	r.envMu.Lock()
	defer r.envMu.Unlock()
	v, ok := r.env[key]
	return v, ok
}

func (r *Registry) Setenv(key, val string) {
	r.envMu.Lock()
	defer r.envMu.Unlock()
	r.env[key] = val
}

func (r *Registry) Unsetenv(key string) {
	r.envMu.Lock()
	defer r.envMu.Unlock()
	delete(r.env, key)
}
