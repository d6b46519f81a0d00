package value

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString renders v in Vane's printable form (spec.md §4.1): arrays as
// `["e1", "e2", ...]` with quoted element forms, objects as `[obj]: { k: v
// ... }` one entry per line, nil as `nil`, booleans as `true`/`false`,
// numbers as the shortest round-trip decimal. Cyclic references (an array
// or object reachable from itself) are detected by pointer identity and
// rendered as a cycle marker instead of recursing forever (spec.md §9).
func ToString(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v, newSeen(), false)
	return sb.String()
}

type seen struct {
	arrays  map[*Array]bool
	objects map[*Object]bool
}

func newSeen() *seen {
	return &seen{arrays: make(map[*Array]bool), objects: make(map[*Object]bool)}
}

// writeValue writes v's printable form to sb. quoted selects the
// element-position rendering used inside array literals, where strings are
// quoted.
func writeValue(sb *strings.Builder, v Value, s *seen, quoted bool) {
	switch v.Kind {
	case KindNil:
		sb.WriteString("nil")
	case KindBool:
		if v.boolean {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(formatNumber(v.number))
	case KindString:
		if quoted {
			sb.WriteString(strconv.Quote(string(v.str)))
		} else {
			sb.Write(v.str)
		}
	case KindArray:
		writeArray(sb, v.arr, s)
	case KindObject:
		writeObject(sb, v.obj, s)
	case KindPair:
		sb.WriteString("(")
		writeValue(sb, v.pair.First, s, true)
		sb.WriteString(", ")
		writeValue(sb, v.pair.Second, s, true)
		sb.WriteString(")")
	case KindReference:
		writeValue(sb, v.ref.V, s, quoted)
	case KindTyped:
		fmt.Fprintf(sb, "<%s>", v.typed.TypeTag)
	case KindStdStruct:
		fmt.Fprintf(sb, "<struct %s>", v.strct.Name)
	case KindStdInstance:
		fmt.Fprintf(sb, "<instance %s>", v.inst.Type.Name)
	case KindFunction:
		name := v.fn.Name
		if name == "" {
			name = "anonymous"
		}
		fmt.Fprintf(sb, "<function %s>", name)
	case KindBoundMethod:
		fmt.Fprintf(sb, "<bound method %s>", v.bound.Name)
	case KindBreak:
		sb.WriteString("<break>")
	case KindContinue:
		sb.WriteString("<continue>")
	case KindReturn:
		writeValue(sb, *v.signal, s, quoted)
	default:
		sb.WriteString("<?>")
	}
}

func writeArray(sb *strings.Builder, a *Array, s *seen) {
	if s.arrays[a] {
		sb.WriteString("[...cycle...]")
		return
	}
	s.arrays[a] = true
	defer delete(s.arrays, a)

	sb.WriteString("[")
	for i, e := range a.Elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeValue(sb, e, s, true)
	}
	sb.WriteString("]")
}

func writeObject(sb *strings.Builder, o *Object, s *seen) {
	if s.objects[o] {
		sb.WriteString("[obj]: {...cycle...}")
		return
	}
	s.objects[o] = true
	defer delete(s.objects, o)

	sb.WriteString("[obj]: {")
	for _, k := range o.keys {
		sb.WriteString("\n  ")
		fmt.Fprintf(sb, "%s: ", k)
		writeValue(sb, o.vals[k], s, true)
	}
	if len(o.keys) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString("}")
}

// formatNumber renders f as the shortest decimal string that round-trips,
// printing integral values without a trailing ".0" the way Vane's float64
// numeric model expects integer-looking scripts to read naturally.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
