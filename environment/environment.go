// Package environment implements Vane's lexically-scoped binding chain
// (spec.md §3.2/§4.2): a tree of scopes, each a name→Cell map with an
// optional parent, walked by lookup/assign and extended by define.
package environment

import (
	"github.com/chronos-tachyon/assert"

	"github.com/vanelang/vane/value"
)

// Environment is one node in the scope tree. The root has a nil parent.
// Each block, function call, loop-iteration body, and conditional branch
// gets its own Environment (spec.md §4.2).
type Environment struct {
	parent   *Environment
	bindings map[string]*value.Cell
	consts   map[string]bool
	arena    *value.Arena
}

// New returns a root Environment backed by a fresh root Arena.
func New() *Environment {
	return &Environment{
		bindings: make(map[string]*value.Cell),
		consts:   make(map[string]bool),
		arena:    value.NewArena(),
	}
}

// Init returns a child Environment of parent. Every block/call/loop-body/
// branch scope is created this way (spec.md §4.2).
func Init(parent *Environment) *Environment {
	assert.Assertf(parent != nil, "Init called with nil parent; use New() for a root Environment")
	return &Environment{
		parent:   parent,
		bindings: make(map[string]*value.Cell),
		consts:   make(map[string]bool),
		arena:    parent.arena,
	}
}

// Define binds name to v in the current scope, shadowing any outer binding
// of the same name. Redefining an existing name in the *same* scope simply
// replaces its cell (e.g. re-running a loop-iteration scope's `let`).
func (e *Environment) Define(name string, v value.Value) {
	e.bindings[name] = e.arena.Alloc(v)
}

// DefineConst behaves like Define but marks name immutable in this scope;
// a later Assign to it is an immutable_reassign error.
func (e *Environment) DefineConst(name string, v value.Value) {
	e.bindings[name] = e.arena.Alloc(v)
	e.consts[name] = true
}

// Lookup walks parent-ward from e until name is found.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if c, ok := env.bindings[name]; ok {
			return c.V, true
		}
	}
	return value.Nil(), false
}

// LookupCell is like Lookup but returns the backing Cell, used by
// assignment to mutate in place and by closures/std_instance fields that
// need to alias the same cell.
func (e *Environment) LookupCell(name string) (*value.Cell, bool) {
	for env := e; env != nil; env = env.parent {
		if c, ok := env.bindings[name]; ok {
			return c, true
		}
	}
	return nil, false
}

// Assign walks to the nearest enclosing binding of name and updates it in
// place, failing with unbound_name if none exists or immutable_reassign if
// the binding was declared const.
func (e *Environment) Assign(name string, v value.Value) error {
	for env := e; env != nil; env = env.parent {
		if c, ok := env.bindings[name]; ok {
			if env.consts[name] {
				return value.NewError(value.ErrImmutableReassign, "environment.assign", "cannot reassign const binding \""+name+"\"")
			}
			c.V = v
			return nil
		}
	}
	return value.NewError(value.ErrUnboundName, "environment.assign", "unbound name \""+name+"\"")
}

// Child returns a new child scope of e. Implements value.Scope.
func (e *Environment) Child() value.Scope {
	return Init(e)
}

// Clone produces a detached snapshot of e suitable for thread handoff
// (spec.md §3.2/§4.8/§9). The binding map is copied by reference to the
// SAME Cells — mutation through a cloned binding is visible to the
// original environment and vice versa, which is exactly the hazard spec.md
// §9 calls out: the caller's own discipline (or lack of it) governs
// whether concurrent mutation through shared cells is safe. Only the
// *map itself* and the arena are distinct: new bindings defined inside the
// clone (e.g. the thread's own local variables) do not leak back to the
// original, and allocations originating in the clone use a child arena of
// the original's, so they can be attributed to the worker without being
// mistaken for root-arena (long-lived) allocations.
func (e *Environment) Clone() *Environment {
	bindings := make(map[string]*value.Cell, len(e.bindings))
	consts := make(map[string]bool, len(e.consts))
	for k, v := range e.bindings {
		bindings[k] = v // same Cell: aliased, not copied
	}
	for k, v := range e.consts {
		consts[k] = v
	}
	return &Environment{
		parent:   e.parent,
		bindings: bindings,
		consts:   consts,
		arena:    e.arena.NewChild(),
	}
}

// CloneScope implements value.Scope's CloneScope by delegating to Clone.
func (e *Environment) CloneScope() value.Scope {
	return e.Clone()
}

var _ value.Scope = (*Environment)(nil)
