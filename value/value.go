// Package value implements Vane's runtime value model: a tagged union over
// primitives, aggregates, references, opaque typed payloads, and the
// std-struct/std-instance machinery that backs native types such as the
// container library and the codec bindings.
package value

import (
	"github.com/chronos-tachyon/assert"
)

// Kind tags the variant a Value currently holds.
type Kind byte

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindPair
	KindReference
	KindTyped
	KindStdStruct
	KindStdInstance
	KindFunction
	KindBoundMethod
	KindBreak
	KindContinue
	KindReturn
)

// String returns a short debug name for the Kind. Order mirrors the
// declaration above and doubles as the tag-ordering table Less uses for
// cross-tag comparisons.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindPair:
		return "pair"
	case KindReference:
		return "reference"
	case KindTyped:
		return "typed_val"
	case KindStdStruct:
		return "std_struct"
	case KindStdInstance:
		return "std_instance"
	case KindFunction:
		return "function"
	case KindBoundMethod:
		return "bound_method"
	case KindBreak:
		return "break_signal"
	case KindContinue:
		return "continue_signal"
	case KindReturn:
		return "return_signal"
	default:
		return "unknown"
	}
}

// Value is Vane's single runtime representation. Only the fields relevant to
// Kind are meaningful; the zero Value is Nil.
type Value struct {
	Kind Kind

	boolean bool
	number  float64
	str     []byte

	arr    *Array
	obj    *Object
	pair   *Pair
	ref    *Cell
	typed  *TypedVal
	strct  *StdStruct
	inst   *StdInstance
	fn     *Function
	bound  *BoundMethod
	signal *Value // payload of a return_signal; nil for break/continue
}

// Array is the backing store for an array Value: an insertion-ordered,
// index-addressable, mutable-in-place sequence.
type Array struct {
	Elems []Value
}

// Object is the backing store for an object Value: a string-keyed mapping
// that preserves insertion order for iteration and printing.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// Get looks up key, returning (Nil, false) on miss.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Set inserts or updates key, recording insertion order on first write.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	if _, exists := o.vals[key]; !exists {
		return
	}
	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns keys in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len reports the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Pair is the backing store for a pair Value, returned by map's items and
// adjacency_matrix's edge lists.
type Pair struct {
	First  Value
	Second Value
}

// TypedVal carries opaque native data tagged with a type name. Payload is
// owned by whichever constructor created it.
type TypedVal struct {
	TypeTag string
	Payload interface{}
}

// Nil returns the nil Value.
func Nil() Value { return Value{Kind: KindNil} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{Kind: KindBool, boolean: b} }

// Num returns a number Value.
func Num(f float64) Value { return Value{Kind: KindNumber, number: f} }

// Str returns a string Value over the given bytes. The slice is not copied;
// callers that need isolation should copy before constructing.
func Str(b []byte) Value { return Value{Kind: KindString, str: b} }

// StrS is a convenience wrapper for Str([]byte(s)).
func StrS(s string) Value { return Str([]byte(s)) }

// ArrayOf wraps an *Array as a Value.
func ArrayOf(a *Array) Value {
	assert.Assertf(a != nil, "nil *Array passed to ArrayOf")
	return Value{Kind: KindArray, arr: a}
}

// NewArray returns an empty array Value.
func NewArray() Value { return ArrayOf(&Array{}) }

// ArrayFrom builds an array Value from a slice of elements.
func ArrayFrom(elems []Value) Value { return ArrayOf(&Array{Elems: elems}) }

// ObjectOf wraps an *Object as a Value.
func ObjectOf(o *Object) Value {
	assert.Assertf(o != nil, "nil *Object passed to ObjectOf")
	return Value{Kind: KindObject, obj: o}
}

// NewObjectValue returns an empty object Value.
func NewObjectValue() Value { return ObjectOf(NewObject()) }

// MakePair constructs a pair Value.
func MakePair(a, b Value) Value { return Value{Kind: KindPair, pair: &Pair{First: a, Second: b}} }

// Ref wraps a *Cell as a reference Value.
func Ref(c *Cell) Value {
	assert.Assertf(c != nil, "nil *Cell passed to Ref")
	return Value{Kind: KindReference, ref: c}
}

// Typed wraps a TypedVal as a Value.
func Typed(t *TypedVal) Value {
	assert.Assertf(t != nil, "nil *TypedVal passed to Typed")
	return Value{Kind: KindTyped, typed: t}
}

// StdStructVal wraps a *StdStruct type descriptor as a first-class Value.
func StdStructVal(s *StdStruct) Value {
	assert.Assertf(s != nil, "nil *StdStruct passed to StdStructVal")
	return Value{Kind: KindStdStruct, strct: s}
}

// StdInstanceVal wraps a *StdInstance as a Value.
func StdInstanceVal(i *StdInstance) Value {
	assert.Assertf(i != nil, "nil *StdInstance passed to StdInstanceVal")
	return Value{Kind: KindStdInstance, inst: i}
}

// FunctionVal wraps a *Function closure as a Value.
func FunctionVal(f *Function) Value {
	assert.Assertf(f != nil, "nil *Function passed to FunctionVal")
	return Value{Kind: KindFunction, fn: f}
}

// BoundMethodVal wraps a *BoundMethod as a Value.
func BoundMethodVal(b *BoundMethod) Value {
	assert.Assertf(b != nil, "nil *BoundMethod passed to BoundMethodVal")
	return Value{Kind: KindBoundMethod, bound: b}
}

// BreakSignal returns the break_signal sentinel Value.
func BreakSignal() Value { return Value{Kind: KindBreak} }

// ContinueSignal returns the continue_signal sentinel Value.
func ContinueSignal() Value { return Value{Kind: KindContinue} }

// ReturnSignal wraps v as a return_signal carrying v.
func ReturnSignal(v Value) Value {
	vv := v
	return Value{Kind: KindReturn, signal: &vv}
}

// IsSignal reports whether v is one of break/continue/return.
func (v Value) IsSignal() bool {
	return v.Kind == KindBreak || v.Kind == KindContinue || v.Kind == KindReturn
}

// ReturnPayload returns the value carried by a return_signal. Panics via
// assert if v is not a return_signal — callers must check Kind first.
func (v Value) ReturnPayload() Value {
	assert.Assertf(v.Kind == KindReturn, "ReturnPayload called on non-return Value (%s)", v.Kind)
	return *v.signal
}

// Accessors. Each panics via assert if called on the wrong Kind; callers in
// eval/builtin are expected to have already dispatched on Kind.

func (v Value) AsBool() bool {
	assert.Assertf(v.Kind == KindBool, "AsBool called on %s", v.Kind)
	return v.boolean
}

func (v Value) AsNumber() float64 {
	assert.Assertf(v.Kind == KindNumber, "AsNumber called on %s", v.Kind)
	return v.number
}

func (v Value) AsBytes() []byte {
	assert.Assertf(v.Kind == KindString, "AsBytes called on %s", v.Kind)
	return v.str
}

func (v Value) AsString() string {
	return string(v.AsBytes())
}

func (v Value) AsArray() *Array {
	assert.Assertf(v.Kind == KindArray, "AsArray called on %s", v.Kind)
	return v.arr
}

func (v Value) AsObject() *Object {
	assert.Assertf(v.Kind == KindObject, "AsObject called on %s", v.Kind)
	return v.obj
}

func (v Value) AsPair() *Pair {
	assert.Assertf(v.Kind == KindPair, "AsPair called on %s", v.Kind)
	return v.pair
}

func (v Value) AsRef() *Cell {
	assert.Assertf(v.Kind == KindReference, "AsRef called on %s", v.Kind)
	return v.ref
}

func (v Value) AsTyped() *TypedVal {
	assert.Assertf(v.Kind == KindTyped, "AsTyped called on %s", v.Kind)
	return v.typed
}

func (v Value) AsStdStruct() *StdStruct {
	assert.Assertf(v.Kind == KindStdStruct, "AsStdStruct called on %s", v.Kind)
	return v.strct
}

func (v Value) AsStdInstance() *StdInstance {
	assert.Assertf(v.Kind == KindStdInstance, "AsStdInstance called on %s", v.Kind)
	return v.inst
}

func (v Value) AsFunction() *Function {
	assert.Assertf(v.Kind == KindFunction, "AsFunction called on %s", v.Kind)
	return v.fn
}

func (v Value) AsBoundMethod() *BoundMethod {
	assert.Assertf(v.Kind == KindBoundMethod, "AsBoundMethod called on %s", v.Kind)
	return v.bound
}

// Deref transparently follows reference Values, returning v unchanged for
// any other Kind. Used by Index/Member/truthiness per spec.md §4.3.
func Deref(v Value) Value {
	for v.Kind == KindReference {
		v = v.ref.V
	}
	return v
}

// IsCallable reports whether v can appear as the callee of a Call
// expression: a function closure or a bound method.
func (v Value) IsCallable() bool {
	return v.Kind == KindFunction || v.Kind == KindBoundMethod
}
