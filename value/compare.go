package value

import "bytes"

// Equal implements spec.md §3.1's equality rule: same-tag structural
// compare; cross-tag always false except reference (compares its target)
// and typed_val (compares by type_tag plus payload identity).
func Equal(a, b Value) bool {
	if a.Kind == KindReference {
		return Equal(a.ref.V, b)
	}
	if b.Kind == KindReference {
		return Equal(a, b.ref.V)
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber:
		return a.number == b.number
	case KindString:
		return bytes.Equal(a.str, b.str)
	case KindArray:
		return arrayEqual(a.arr, b.arr)
	case KindObject:
		return objectEqual(a.obj, b.obj)
	case KindPair:
		return Equal(a.pair.First, b.pair.First) && Equal(a.pair.Second, b.pair.Second)
	case KindTyped:
		return a.typed.TypeTag == b.typed.TypeTag && samePayload(a.typed.Payload, b.typed.Payload)
	case KindStdStruct:
		return a.strct == b.strct
	case KindStdInstance:
		return instanceEqual(a.inst, b.inst)
	case KindFunction:
		return a.fn == b.fn
	case KindBoundMethod:
		return a.bound == b.bound
	case KindBreak, KindContinue:
		return true
	case KindReturn:
		return Equal(*a.signal, *b.signal)
	default:
		return false
	}
}

func arrayEqual(a, b *Array) bool {
	if a == b {
		return true
	}
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i := range a.Elems {
		if !Equal(a.Elems[i], b.Elems[i]) {
			return false
		}
	}
	return true
}

func objectEqual(a, b *Object) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.keys {
		av := a.vals[k]
		bv, ok := b.vals[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

// samePayload compares typed_val payloads by identity when the payload is a
// pointer-shaped type, falling back to Go's == for simple comparable
// payloads. Non-comparable payloads (slices, maps) are compared by
// reference equality of a wrapping pointer, which native constructors are
// expected to provide (spec.md §3.1: "comparing their __internal payloads
// through the type's rules" — the type's own constructor decides what
// "identity" means by choosing what Payload holds).
func samePayload(a, b interface{}) bool {
	defer func() { recover() }() //nolint:errcheck
	return a == b
}

// instanceEqual compares two std_instance values by type identity plus
// their __internal payload identity, per spec.md §3.1.
func instanceEqual(a, b *StdInstance) bool {
	if a == b {
		return true
	}
	if a.Type != b.Type {
		return false
	}
	at, aerr := a.Internal()
	bt, berr := b.Internal()
	if aerr != nil || berr != nil {
		return false
	}
	return samePayload(at.Payload, bt.Payload)
}

// tagOrder fixes a stable total order across Kinds for Less's cross-tag
// fallback (spec.md §3.1: "undefined-but-consistent across mixed tags").
func tagOrder(k Kind) int { return int(k) }

// Less implements spec.md §3.1's ordering rule: numeric by value, string
// lexicographic, otherwise the fixed tag order. Reference transparently
// dereferences both sides first.
func Less(a, b Value) bool {
	a = Deref(a)
	b = Deref(b)
	if a.Kind == KindNumber && b.Kind == KindNumber {
		return a.number < b.number
	}
	if a.Kind == KindString && b.Kind == KindString {
		return bytes.Compare(a.str, b.str) < 0
	}
	if a.Kind != b.Kind {
		return tagOrder(a.Kind) < tagOrder(b.Kind)
	}
	// Same tag, neither number nor string: fall back to a stable but
	// otherwise unspecified order so sorts are deterministic.
	switch a.Kind {
	case KindBool:
		return !a.boolean && b.boolean
	case KindArray:
		return lessArrays(a.arr, b.arr)
	default:
		return false
	}
}

func lessArrays(a, b *Array) bool {
	n := len(a.Elems)
	if len(b.Elems) < n {
		n = len(b.Elems)
	}
	for i := 0; i < n; i++ {
		if Less(a.Elems[i], b.Elems[i]) {
			return true
		}
		if Less(b.Elems[i], a.Elems[i]) {
			return false
		}
	}
	return len(a.Elems) < len(b.Elems)
}
