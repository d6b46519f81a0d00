package value

// Cell is a mutable alias target: the native mechanism for sharing and
// in-place mutation described in spec.md §3.2/§9. A reference Value always
// points at exactly one live Cell for its lifetime; std_instance field maps
// hold Cells directly so that member-assignment writes through them.
type Cell struct {
	V Value
}

// NewCell allocates a Cell holding v.
func NewCell(v Value) *Cell {
	return &Cell{V: v}
}

// Arena is an allocation scope for Cells. Environments allocate their
// binding Cells from it: a root Environment owns a root Arena, child scopes
// share their parent's, and Environment.Clone gives the clone a child
// Arena. Go's GC does the actual reclamation; the arena here is a
// bookkeeping construct rather than a manual allocator. The huffman and
// archive codecs do not use an Arena, and loaded modules are held by the
// builtin Registry rather than by an Arena.
type Arena struct {
	parent *Arena
	cells  []*Cell
}

// NewArena returns a root arena with no parent.
func NewArena() *Arena {
	return &Arena{}
}

// NewChild returns a child arena used for allocations originating in a
// nested evaluation (spec.md §3.2's Environment.clone "installs its own
// arena for allocations originating in the child scope").
func (a *Arena) NewChild() *Arena {
	return &Arena{parent: a}
}

// Alloc creates a new Cell tracked by this arena.
func (a *Arena) Alloc(v Value) *Cell {
	c := NewCell(v)
	a.cells = append(a.cells, c)
	return c
}

// Root walks to the outermost ancestor arena.
func (a *Arena) Root() *Arena {
	for a.parent != nil {
		a = a.parent
	}
	return a
}
