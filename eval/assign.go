package eval

import (
	"math"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// evalAssign implements spec.md §4.3's Assignment rule. The RHS is
// evaluated exactly once; the LHS form dictates how the result is applied:
// identifier → Assign, index → mutate in place, member → mutate field
// through its Cell (so aliasing via reference survives the write).
func (it *Interpreter) evalAssign(e ast.AssignExpr, scope value.Scope) (value.Value, error) {
	rhs, err := it.evalExpr(e.Value, scope)
	if err != nil {
		return value.Nil(), err
	}

	switch target := e.Target.(type) {
	case ast.Ident:
		if err := scope.Assign(target.Name, rhs); err != nil {
			return value.Nil(), err
		}
		return rhs, nil

	case ast.IndexExpr:
		return rhs, it.assignIndex(target, rhs, scope)

	case ast.MemberExpr:
		return rhs, it.assignMember(target, rhs, scope)

	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.assign", "invalid assignment target")
	}
}

func (it *Interpreter) assignIndex(target ast.IndexExpr, rhs value.Value, scope value.Scope) error {
	obj, err := it.evalExpr(target.Object, scope)
	if err != nil {
		return err
	}
	obj = value.Deref(obj)

	idx, err := it.evalExpr(target.Index, scope)
	if err != nil {
		return err
	}
	idx = value.Deref(idx)

	switch obj.Kind {
	case value.KindArray:
		if idx.Kind != value.KindNumber {
			return value.NewError(value.ErrTypeMismatch, "eval.assign_index", "array index must be a number")
		}
		i := int(math.Floor(idx.AsNumber()))
		arr := obj.AsArray()
		if i < 0 || i >= len(arr.Elems) {
			return value.NewError(value.ErrOutOfBounds, "eval.assign_index", "array index out of bounds")
		}
		arr.Elems[i] = rhs
		return nil
	case value.KindObject:
		if idx.Kind != value.KindString {
			return value.NewError(value.ErrTypeMismatch, "eval.assign_index", "object index must be a string")
		}
		obj.AsObject().Set(idx.AsString(), rhs)
		return nil
	default:
		return value.NewError(value.ErrTypeMismatch, "eval.assign_index", "value is not index-assignable")
	}
}

func (it *Interpreter) assignMember(target ast.MemberExpr, rhs value.Value, scope value.Scope) error {
	obj, err := it.evalExpr(target.Object, scope)
	if err != nil {
		return err
	}
	obj = value.Deref(obj)

	switch obj.Kind {
	case value.KindObject:
		obj.AsObject().Set(target.Name, rhs)
		return nil
	case value.KindStdInstance:
		inst := obj.AsStdInstance()
		if cell, ok := inst.Field(target.Name); ok {
			cell.V = rhs
			return nil
		}
		// Writing a field that doesn't exist yet creates it, mirroring
		// object member-assignment semantics.
		inst.Fields[target.Name] = value.NewCell(rhs)
		return nil
	default:
		return value.NewError(value.ErrTypeMismatch, "eval.assign_member", "value has no assignable members")
	}
}
