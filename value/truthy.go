package value

// Truthy implements spec.md §4.1's truthiness table: false for nil, false,
// number==0, empty string/array, std_struct, and an std_instance whose
// `size` method returns 0 (any failure evaluating `size` is treated as
// falsy — the one place spec.md §7 permits an error to be swallowed
// silently). continue_signal is true. reference delegates to its target;
// typed_val is always true (its opaque payload is not inspected). Other
// composites are true iff non-empty.
func Truthy(v Value) bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.boolean
	case KindNumber:
		return v.number != 0
	case KindString:
		return len(v.str) != 0
	case KindArray:
		return len(v.arr.Elems) != 0
	case KindObject:
		return v.obj.Len() != 0
	case KindPair:
		return true
	case KindReference:
		return Truthy(v.ref.V)
	case KindTyped:
		return true
	case KindStdStruct:
		return false
	case KindStdInstance:
		return instanceTruthy(v.inst)
	case KindFunction, KindBoundMethod:
		return true
	case KindBreak:
		return false
	case KindContinue:
		return true
	case KindReturn:
		return Truthy(*v.signal)
	default:
		return false
	}
}

// instanceSizeHook invokes a zero-arg `size` method on a std_instance
// without needing the full Evaluator machinery (size handlers never
// evaluate argument expressions since size takes none). Package eval
// supplies it via a small adapter so Truthy stays free of an eval import.
var instanceSizeHook func(inst *StdInstance) (float64, bool)

// SetInstanceSizeHook installs the callback Truthy uses to invoke a
// std_instance's `size` method. Called once from package eval's init so the
// value package need not import eval (which imports value).
func SetInstanceSizeHook(hook func(inst *StdInstance) (float64, bool)) {
	instanceSizeHook = hook
}

func instanceTruthy(inst *StdInstance) bool {
	if instanceSizeHook == nil {
		return true
	}
	n, ok := instanceSizeHook(inst)
	if !ok {
		return false
	}
	return n != 0
}
