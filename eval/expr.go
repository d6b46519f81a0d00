package eval

import (
	"math"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// evalExpr reduces expr to a Value in scope, per spec.md §4.3.
func (it *Interpreter) evalExpr(expr ast.Expr, scope value.Scope) (value.Value, error) {
	switch e := expr.(type) {
	case ast.NilLit:
		return value.Nil(), nil
	case ast.BoolLit:
		return value.Bool(e.Value), nil
	case ast.NumberLit:
		return value.Num(e.Value), nil
	case ast.StringLit:
		return value.Str(e.Value), nil
	case ast.Ident:
		v, ok := scope.Lookup(e.Name)
		if !ok {
			return value.Nil(), value.NewError(value.ErrUnboundName, "eval.ident", "unbound name \""+e.Name+"\"")
		}
		return v, nil
	case ast.ValueLit:
		return e.Value.(value.Value), nil
	case ast.ArrayLit:
		return it.evalArrayLit(e, scope)
	case ast.ObjectLit:
		return it.evalObjectLit(e, scope)
	case ast.IndexExpr:
		return it.evalIndex(e, scope)
	case ast.MemberExpr:
		return it.evalMember(e, scope)
	case ast.CallExpr:
		return it.evalCall(e, scope)
	case ast.NewExpr:
		return it.evalNew(e, scope)
	case ast.UnaryExpr:
		return it.evalUnary(e, scope)
	case ast.BinaryExpr:
		return it.evalBinary(e, scope)
	case ast.LogicalExpr:
		return it.evalLogical(e, scope)
	case ast.AssignExpr:
		return it.evalAssign(e, scope)
	case ast.RangeExpr:
		return it.evalRange(e, scope)
	case ast.FunctionLit:
		return value.FunctionVal(&value.Function{Params: e.Params, Body: e.Body, Env: scope}), nil
	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.expr", "unknown expression node")
	}
}

func (it *Interpreter) evalArrayLit(e ast.ArrayLit, scope value.Scope) (value.Value, error) {
	elems := make([]value.Value, 0, len(e.Elems))
	for _, x := range e.Elems {
		v, err := it.evalExpr(x, scope)
		if err != nil {
			return value.Nil(), err
		}
		elems = append(elems, v)
	}
	return value.ArrayFrom(elems), nil
}

func (it *Interpreter) evalObjectLit(e ast.ObjectLit, scope value.Scope) (value.Value, error) {
	obj := value.NewObject()
	for _, entry := range e.Entries {
		v, err := it.evalExpr(entry.Value, scope)
		if err != nil {
			return value.Nil(), err
		}
		obj.Set(entry.Key, v)
	}
	return value.ObjectOf(obj), nil
}

// evalIndex implements spec.md §4.3's Index rule across arrays (bounds-
// checked integer index), objects (string key, nil on miss), strings
// (1-byte string at index), and references (transparent deref).
func (it *Interpreter) evalIndex(e ast.IndexExpr, scope value.Scope) (value.Value, error) {
	obj, err := it.evalExpr(e.Object, scope)
	if err != nil {
		return value.Nil(), err
	}
	obj = value.Deref(obj)

	idx, err := it.evalExpr(e.Index, scope)
	if err != nil {
		return value.Nil(), err
	}
	idx = value.Deref(idx)

	switch obj.Kind {
	case value.KindArray:
		if idx.Kind != value.KindNumber {
			return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.index", "array index must be a number")
		}
		i := int(math.Floor(idx.AsNumber()))
		arr := obj.AsArray()
		if i < 0 || i >= len(arr.Elems) {
			return value.Nil(), value.NewError(value.ErrOutOfBounds, "eval.index", "array index out of bounds")
		}
		return arr.Elems[i], nil
	case value.KindObject:
		if idx.Kind != value.KindString {
			return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.index", "object index must be a string")
		}
		v, ok := obj.AsObject().Get(idx.AsString())
		if !ok {
			return value.Nil(), nil
		}
		return v, nil
	case value.KindString:
		if idx.Kind != value.KindNumber {
			return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.index", "string index must be a number")
		}
		i := int(math.Floor(idx.AsNumber()))
		bs := obj.AsBytes()
		if i < 0 || i >= len(bs) {
			return value.Nil(), value.NewError(value.ErrOutOfBounds, "eval.index", "string index out of bounds")
		}
		return value.Str([]byte{bs[i]}), nil
	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.index", "value is not indexable")
	}
}

// evalMember implements spec.md §4.3's Member rule: object key lookup, or
// for std_instance, a field Cell's value or a bound method.
func (it *Interpreter) evalMember(e ast.MemberExpr, scope value.Scope) (value.Value, error) {
	obj, err := it.evalExpr(e.Object, scope)
	if err != nil {
		return value.Nil(), err
	}
	obj = value.Deref(obj)

	switch obj.Kind {
	case value.KindObject:
		v, ok := obj.AsObject().Get(e.Name)
		if !ok {
			return value.Nil(), nil
		}
		return v, nil
	case value.KindStdInstance:
		inst := obj.AsStdInstance()
		if cell, ok := inst.Field(e.Name); ok {
			return cell.V, nil
		}
		if m, ok := inst.Type.Method(e.Name); ok {
			return value.BoundMethodVal(&value.BoundMethod{Receiver: obj, Name: e.Name, Fn: m}), nil
		}
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.member",
			"no field or method named \""+e.Name+"\" on "+inst.Type.Name)
	case value.KindStdStruct:
		st := obj.AsStdStruct()
		if m, ok := st.Method(e.Name); ok {
			// Accessing a method via the type itself (not an instance)
			// returns it unbound-receiver; callers are expected to call it
			// through an instance in practice.
			return value.BoundMethodVal(&value.BoundMethod{Receiver: obj, Name: e.Name, Fn: m}), nil
		}
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.member", "no method named \""+e.Name+"\" on type "+st.Name)
	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.member", "value has no members")
	}
}

func (it *Interpreter) evalNew(e ast.NewExpr, scope value.Scope) (value.Value, error) {
	tv, err := it.evalExpr(e.Type, scope)
	if err != nil {
		return value.Nil(), err
	}
	if tv.Kind != value.KindStdStruct {
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.new", "`new` target is not a type")
	}
	st := tv.AsStdStruct()
	if st.Constructor == nil {
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.new", "type "+st.Name+" has no constructor")
	}
	return st.Constructor(it, e.Args, scope)
}

// evalRange implements the half-open `[from, to)` range pinned by spec.md
// §9, stepping ±1 toward to.
func (it *Interpreter) evalRange(e ast.RangeExpr, scope value.Scope) (value.Value, error) {
	fromV, err := it.evalExpr(e.From, scope)
	if err != nil {
		return value.Nil(), err
	}
	toV, err := it.evalExpr(e.To, scope)
	if err != nil {
		return value.Nil(), err
	}
	if fromV.Kind != value.KindNumber || toV.Kind != value.KindNumber {
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.range", "range bounds must be numbers")
	}
	from := int64(math.Floor(fromV.AsNumber()))
	to := int64(math.Floor(toV.AsNumber()))

	var elems []value.Value
	if from <= to {
		for i := from; i < to; i++ {
			elems = append(elems, value.Num(float64(i)))
		}
	} else {
		for i := from; i > to; i-- {
			elems = append(elems, value.Num(float64(i)))
		}
	}
	return value.ArrayFrom(elems), nil
}
