package builtin

import "github.com/vanelang/vane/value"

// nativeFn wraps a NativeFunc as a `function` Value, spec.md §3.3's Module
// kind for a module's function entries.
func nativeFn(name string, fn value.NativeFunc) value.Value {
	return value.FunctionVal(&value.Function{Name: name, Native: fn})
}

// newModule builds an empty module namespace object, populated by the
// caller via obj.Set.
func newModule() *value.Object {
	return value.NewObject()
}
