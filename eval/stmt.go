package eval

import (
	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// EvalStmt evaluates stmt in scope and returns the signal Value it
// produced, if any (nil/ordinary Values flow through unchanged; break,
// continue, and return are ordinary Values per spec.md §4.3).
func (it *Interpreter) EvalStmt(stmt ast.Stmt, scope value.Scope) (value.Value, error) {
	switch s := stmt.(type) {
	case ast.BlockStmt:
		return it.evalBlock(s, scope)
	case ast.ExprStmt:
		return it.evalExpr(s.X, scope)
	case ast.LetStmt:
		v, err := it.evalExpr(s.Value, scope)
		if err != nil {
			return value.Nil(), err
		}
		scope.Define(s.Name, v)
		return value.Nil(), nil
	case ast.ConstStmt:
		v, err := it.evalExpr(s.Value, scope)
		if err != nil {
			return value.Nil(), err
		}
		scope.DefineConst(s.Name, v)
		return value.Nil(), nil
	case ast.IfStmt:
		return it.evalIf(s, scope)
	case ast.WhileStmt:
		return it.evalWhile(s, scope)
	case ast.ForeachStmt:
		return it.evalForeach(s, scope)
	case ast.BreakStmt:
		return value.BreakSignal(), nil
	case ast.ContinueStmt:
		return value.ContinueSignal(), nil
	case ast.ReturnStmt:
		if s.Value == nil {
			return value.ReturnSignal(value.Nil()), nil
		}
		v, err := it.evalExpr(s.Value, scope)
		if err != nil {
			return value.Nil(), err
		}
		return value.ReturnSignal(v), nil
	case ast.FunctionDeclStmt:
		fn := value.FunctionVal(&value.Function{Name: s.Name, Params: s.Params, Body: s.Body, Env: scope})
		scope.Define(s.Name, fn)
		return value.Nil(), nil
	case ast.ImportStmt:
		return it.evalImport(s, scope)
	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "eval.stmt", "unknown statement node")
	}
}

// evalBlock runs a new child scope over s.Stmts in order; a signal value
// short-circuits the block and propagates to the caller (spec.md §4.3).
func (it *Interpreter) evalBlock(s ast.BlockStmt, scope value.Scope) (value.Value, error) {
	child := scope.Child()
	var last value.Value
	for _, stmt := range s.Stmts {
		v, err := it.EvalStmt(stmt, child)
		if err != nil {
			return value.Nil(), err
		}
		last = v
		if last.IsSignal() {
			return last, nil
		}
	}
	return last, nil
}

func (it *Interpreter) evalIf(s ast.IfStmt, scope value.Scope) (value.Value, error) {
	cond, err := it.evalExpr(s.Cond, scope)
	if err != nil {
		return value.Nil(), err
	}
	branchScope := scope.Child()
	if value.Truthy(cond) {
		return it.EvalStmt(s.Then, branchScope)
	}
	if s.Else != nil {
		return it.EvalStmt(s.Else, branchScope)
	}
	return value.Nil(), nil
}

func (it *Interpreter) evalWhile(s ast.WhileStmt, scope value.Scope) (value.Value, error) {
	for {
		cond, err := it.evalExpr(s.Cond, scope)
		if err != nil {
			return value.Nil(), err
		}
		if !value.Truthy(cond) {
			return value.Nil(), nil
		}
		bodyScope := scope.Child()
		v, err := it.EvalStmt(s.Body, bodyScope)
		if err != nil {
			return value.Nil(), err
		}
		switch v.Kind {
		case value.KindBreak:
			return value.Nil(), nil
		case value.KindReturn:
			return v, nil
		}
		// continue_signal and ordinary values both just move to the next
		// iteration.
	}
}

// evalForeach implements spec.md §4.3's foreach over arrays, strings,
// object key-sequences, ranges (already materialized as arrays by
// evalRange), and any std_instance exposing an `items` method. Per spec.md
// §9, the container is snapshotted via a single `items()` call up front, so
// mutation mid-iteration iterates the snapshot, never the live container.
func (it *Interpreter) evalForeach(s ast.ForeachStmt, scope value.Scope) (value.Value, error) {
	iterV, err := it.evalExpr(s.Iterable, scope)
	if err != nil {
		return value.Nil(), err
	}
	iterV = value.Deref(iterV)

	items, err := it.materializeIterable(iterV)
	if err != nil {
		return value.Nil(), err
	}

	for _, item := range items {
		iterScope := scope.Child()
		iterScope.Define(s.Var, item)
		v, err := it.EvalStmt(s.Body, iterScope)
		if err != nil {
			return value.Nil(), err
		}
		switch v.Kind {
		case value.KindBreak:
			return value.Nil(), nil
		case value.KindReturn:
			return v, nil
		}
	}
	return value.Nil(), nil
}

// materializeIterable produces the fixed sequence foreach walks.
func (it *Interpreter) materializeIterable(v value.Value) ([]value.Value, error) {
	switch v.Kind {
	case value.KindArray:
		out := make([]value.Value, len(v.AsArray().Elems))
		copy(out, v.AsArray().Elems)
		return out, nil
	case value.KindString:
		bs := v.AsBytes()
		out := make([]value.Value, len(bs))
		for i, b := range bs {
			out[i] = value.Str([]byte{b})
		}
		return out, nil
	case value.KindObject:
		obj := v.AsObject()
		keys := obj.Keys()
		out := make([]value.Value, len(keys))
		for i, k := range keys {
			out[i] = value.StrS(k)
		}
		return out, nil
	case value.KindStdInstance:
		inst := v.AsStdInstance()
		m, ok := inst.Type.Method("items")
		if !ok {
			return nil, value.NewError(value.ErrTypeMismatch, "eval.foreach",
				"std_instance of type "+inst.Type.Name+" has no items method")
		}
		result, err := m(it, v, nil, it.Root)
		if err != nil {
			return nil, err
		}
		if result.Kind != value.KindArray {
			return nil, value.NewError(value.ErrTypeMismatch, "eval.foreach", "items() did not return an array")
		}
		out := make([]value.Value, len(result.AsArray().Elems))
		copy(out, result.AsArray().Elems)
		return out, nil
	default:
		return nil, value.NewError(value.ErrTypeMismatch, "eval.foreach", "value is not iterable")
	}
}

// evalImport lazily loads a builtin module and binds it in scope, per
// spec.md §4.4.
func (it *Interpreter) evalImport(s ast.ImportStmt, scope value.Scope) (value.Value, error) {
	mod, err := it.Registry.Import(s.Module)
	if err != nil {
		return value.Nil(), err
	}
	name := s.Alias
	if name == "" {
		name = s.Module
	}
	scope.Define(name, mod)
	return value.Nil(), nil
}
