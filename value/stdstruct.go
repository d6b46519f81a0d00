package value

import "github.com/vanelang/vane/ast"

// StdStruct is a first-class type descriptor for a native-backed,
// user-visible type: a constructor plus a method table (spec.md §3.3).
// StdStruct values themselves are falsy (spec.md §4.1) — they describe a
// type, not an instance.
type StdStruct struct {
	Name        string
	Constructor ConstructorFunc
	Methods     map[string]MethodFunc
}

// Method looks up a method by name.
func (s *StdStruct) Method(name string) (MethodFunc, bool) {
	m, ok := s.Methods[name]
	return m, ok
}

// StdInstance is a runtime instance of an StdStruct. Fields conventionally
// include "__internal", an entry whose Cell holds a typed_val Value carrying
// the native state (spec.md §3.1). Field Cells are shared, not copied, so
// member assignment writes through them in place.
type StdInstance struct {
	Type   *StdStruct
	Fields map[string]*Cell
}

// NewStdInstance allocates an instance with an empty field map.
func NewStdInstance(t *StdStruct) *StdInstance {
	return &StdInstance{Type: t, Fields: make(map[string]*Cell)}
}

// Internal returns the *TypedVal stored at Fields["__internal"]; a
// MissingInternalField error if the field is missing, and a
// MalformedInstance error if it is not a typed_val or if its type tag
// doesn't match the owning StdStruct's name (spec.md §3.1's invariant).
func (s *StdInstance) Internal() (*TypedVal, error) {
	cell, ok := s.Fields["__internal"]
	if !ok {
		return nil, &Error{Kind: ErrMissingInternalField, Detail: "std_instance has no __internal field"}
	}
	if cell.V.Kind != KindTyped {
		return nil, &Error{Kind: ErrMalformedInstance, Detail: "__internal field is not a typed_val"}
	}
	tv := cell.V.AsTyped()
	if tv.TypeTag != s.Type.Name {
		return nil, &Error{Kind: ErrMalformedInstance, Detail: "type_tag mismatch on __internal field"}
	}
	return tv, nil
}

// SetInternal installs payload as the native state behind this instance,
// tagged with the owning StdStruct's name.
func (s *StdInstance) SetInternal(payload interface{}) {
	s.Fields["__internal"] = NewCell(Typed(&TypedVal{TypeTag: s.Type.Name, Payload: payload}))
}

// Field looks up a user-visible field (never "__internal" by convention,
// though nothing enforces that beyond the constructors never exposing it
// through Member access in package eval).
func (s *StdInstance) Field(name string) (*Cell, bool) {
	c, ok := s.Fields[name]
	return c, ok
}

// BoundMethod is a method handler together with the receiver it was looked
// up on — the representation spec.md §9 calls "this binding on methods",
// chosen here as its own first-class Value so Call dispatch never needs a
// separate receiver-threading path.
type BoundMethod struct {
	Receiver Value
	Name     string
	Fn       MethodFunc
}

// Function is either a user-defined closure (Body/Env set, Native nil) or a
// native module-function binding (Native set, Body nil) — spec.md §3.3's
// "Module" kind wraps native handlers as `function` Values so Call
// dispatch never needs to distinguish the two at the call site.
type Function struct {
	Name   string // empty for anonymous function literals
	Params []string
	Body   ast.Stmt
	Env    Scope
	Native NativeFunc
}

// IsNative reports whether this Function wraps a native handler rather than
// an AST body.
func (f *Function) IsNative() bool { return f.Native != nil }
