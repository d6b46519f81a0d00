package eval

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

func numLit(n float64) ast.Expr { return ast.NumberLit{Value: n} }
func strLit(s string) ast.Expr  { return ast.StringLit{Value: []byte(s)} }
func ident(name string) ast.Expr { return ast.Ident{Name: name} }

func TestEvalLiteralsAndArrayObject(t *testing.T) {
	it := New(io.Discard, io.Discard)

	v, err := it.EvalExpr(ast.ArrayLit{Elems: []ast.Expr{numLit(1), strLit("x")}}, it.Root)
	require.NoError(t, err)
	arr := v.AsArray()
	require.Len(t, arr.Elems, 2)
	assert.Equal(t, float64(1), arr.Elems[0].AsNumber())

	obj, err := it.EvalExpr(ast.ObjectLit{Entries: []ast.ObjectEntry{{Key: "k", Value: numLit(9)}}}, it.Root)
	require.NoError(t, err)
	got, ok := obj.AsObject().Get("k")
	require.True(t, ok)
	assert.Equal(t, float64(9), got.AsNumber())
}

func TestEvalBinaryArithmeticAndConcat(t *testing.T) {
	it := New(io.Discard, io.Discard)

	sum, err := it.EvalExpr(ast.BinaryExpr{Op: "+", Left: numLit(2), Right: numLit(3)}, it.Root)
	require.NoError(t, err)
	assert.Equal(t, float64(5), sum.AsNumber())

	concat, err := it.EvalExpr(ast.BinaryExpr{Op: "+", Left: strLit("a"), Right: numLit(1)}, it.Root)
	require.NoError(t, err)
	assert.Equal(t, "a1", concat.AsString())

	pow, err := it.EvalExpr(ast.BinaryExpr{Op: "**", Left: numLit(2), Right: numLit(8)}, it.Root)
	require.NoError(t, err)
	assert.Equal(t, float64(256), pow.AsNumber())
}

func TestEvalBinaryRejectsMismatchedAddOperands(t *testing.T) {
	it := New(io.Discard, io.Discard)

	_, err := it.EvalExpr(ast.BinaryExpr{Op: "+", Left: numLit(1), Right: ast.BoolLit{Value: true}}, it.Root)
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrTypeMismatch, kind)
}

func TestEvalDivisionByZeroFollowsIEEE754(t *testing.T) {
	it := New(io.Discard, io.Discard)

	v, err := it.EvalExpr(ast.BinaryExpr{Op: "/", Left: numLit(1), Right: numLit(0)}, it.Root)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v.AsNumber(), 1))
}

func TestEvalLogicalShortCircuitsAndReturnsOperand(t *testing.T) {
	it := New(io.Discard, io.Discard)

	got, err := it.EvalExpr(ast.LogicalExpr{Op: "||", Left: numLit(0), Right: strLit("fallback")}, it.Root)
	require.NoError(t, err)
	assert.Equal(t, "fallback", got.AsString())

	got, err = it.EvalExpr(ast.LogicalExpr{Op: "&&", Left: ast.BoolLit{Value: false}, Right: strLit("unreached")}, it.Root)
	require.NoError(t, err)
	assert.False(t, got.AsBool())
}

func TestEvalIndexArrayOutOfBounds(t *testing.T) {
	it := New(io.Discard, io.Discard)
	scope := it.Root.Child()
	scope.Define("arr", value.ArrayFrom([]value.Value{value.Num(1)}))

	_, err := it.EvalExpr(ast.IndexExpr{Object: ident("arr"), Index: numLit(5)}, scope)
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrOutOfBounds, kind)
}

func TestEvalAssignIdentAndIndex(t *testing.T) {
	it := New(io.Discard, io.Discard)
	scope := it.Root.Child()
	scope.Define("x", value.Num(1))
	scope.Define("arr", value.ArrayFrom([]value.Value{value.Num(0), value.Num(0)}))

	_, err := it.EvalExpr(ast.AssignExpr{Target: ident("x"), Value: numLit(42)}, scope)
	require.NoError(t, err)
	v, _ := scope.Lookup("x")
	assert.Equal(t, float64(42), v.AsNumber())

	_, err = it.EvalExpr(ast.AssignExpr{
		Target: ast.IndexExpr{Object: ident("arr"), Index: numLit(1)},
		Value:  numLit(7),
	}, scope)
	require.NoError(t, err)
	arr, _ := scope.Lookup("arr")
	assert.Equal(t, float64(7), arr.AsArray().Elems[1].AsNumber())
}

func TestEvalRangeHalfOpenBothDirections(t *testing.T) {
	it := New(io.Discard, io.Discard)

	up, err := it.EvalExpr(ast.RangeExpr{From: numLit(0), To: numLit(3)}, it.Root)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, numbers(up))

	down, err := it.EvalExpr(ast.RangeExpr{From: numLit(3), To: numLit(0)}, it.Root)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 1}, numbers(down))
}

func numbers(v value.Value) []float64 {
	elems := v.AsArray().Elems
	out := make([]float64, len(elems))
	for i, e := range elems {
		out[i] = e.AsNumber()
	}
	return out
}

func TestEvalUnaryNegateAndNot(t *testing.T) {
	it := New(io.Discard, io.Discard)

	neg, err := it.EvalExpr(ast.UnaryExpr{Op: "-", X: numLit(5)}, it.Root)
	require.NoError(t, err)
	assert.Equal(t, float64(-5), neg.AsNumber())

	not, err := it.EvalExpr(ast.UnaryExpr{Op: "!", X: ast.BoolLit{Value: false}}, it.Root)
	require.NoError(t, err)
	assert.True(t, not.AsBool())
}

func TestRunProgramWithLetWhileAndReturn(t *testing.T) {
	it := New(io.Discard, io.Discard)

	// let total = 0
	// let i = 0
	// while i < 5 { total = total + i; i = i + 1 }
	// return total
	program := []ast.Stmt{
		ast.LetStmt{Name: "total", Value: numLit(0)},
		ast.LetStmt{Name: "i", Value: numLit(0)},
		ast.WhileStmt{
			Cond: ast.BinaryExpr{Op: "<", Left: ident("i"), Right: numLit(5)},
			Body: ast.BlockStmt{Stmts: []ast.Stmt{
				ast.ExprStmt{X: ast.AssignExpr{Target: ident("total"), Value: ast.BinaryExpr{Op: "+", Left: ident("total"), Right: ident("i")}}},
				ast.ExprStmt{X: ast.AssignExpr{Target: ident("i"), Value: ast.BinaryExpr{Op: "+", Left: ident("i"), Right: numLit(1)}}},
			}},
		},
		ast.ReturnStmt{Value: ident("total")},
	}

	result, err := it.Run(program)
	require.NoError(t, err)
	assert.Equal(t, float64(10), result.AsNumber())
}

func TestRunProgramFunctionDeclAndCall(t *testing.T) {
	it := New(io.Discard, io.Discard)

	program := []ast.Stmt{
		ast.FunctionDeclStmt{
			Name:   "double",
			Params: []string{"x"},
			Body: ast.BlockStmt{Stmts: []ast.Stmt{
				ast.ReturnStmt{Value: ast.BinaryExpr{Op: "*", Left: ident("x"), Right: numLit(2)}},
			}},
		},
		ast.ReturnStmt{Value: ast.CallExpr{Callee: ident("double"), Args: []ast.Expr{numLit(21)}}},
	}

	result, err := it.Run(program)
	require.NoError(t, err)
	assert.Equal(t, float64(42), result.AsNumber())
}

func TestCallClosureArityMismatch(t *testing.T) {
	it := New(io.Discard, io.Discard)
	program := []ast.Stmt{
		ast.FunctionDeclStmt{Name: "f", Params: []string{"a", "b"}, Body: ast.BlockStmt{}},
		ast.ExprStmt{X: ast.CallExpr{Callee: ident("f"), Args: []ast.Expr{numLit(1)}}},
	}

	_, err := it.Run(program)
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrArityMismatch, kind)
}

func TestForeachBreakAndContinue(t *testing.T) {
	it := New(io.Discard, io.Discard)
	scope := it.Root.Child()
	scope.Define("nums", value.ArrayFrom([]value.Value{value.Num(1), value.Num(2), value.Num(3), value.Num(4)}))
	scope.Define("sum", value.Num(0))

	// foreach n in nums { if n == 3 { break } if n == 2 { continue } sum = sum + n }
	body := ast.BlockStmt{Stmts: []ast.Stmt{
		ast.IfStmt{
			Cond: ast.BinaryExpr{Op: "==", Left: ident("n"), Right: numLit(3)},
			Then: ast.BlockStmt{Stmts: []ast.Stmt{ast.BreakStmt{}}},
		},
		ast.IfStmt{
			Cond: ast.BinaryExpr{Op: "==", Left: ident("n"), Right: numLit(2)},
			Then: ast.BlockStmt{Stmts: []ast.Stmt{ast.ContinueStmt{}}},
		},
		ast.ExprStmt{X: ast.AssignExpr{Target: ident("sum"), Value: ast.BinaryExpr{Op: "+", Left: ident("sum"), Right: ident("n")}}},
	}}

	_, err := it.EvalStmt(ast.ForeachStmt{Var: "n", Iterable: ident("nums"), Body: body}, scope)
	require.NoError(t, err)
	sum, _ := scope.Lookup("sum")
	assert.Equal(t, float64(1), sum.AsNumber())
}

func TestForeachOverStdInstanceUsesItems(t *testing.T) {
	it := New(io.Discard, io.Discard)
	scope := it.Root.Child()

	stackVal, err := it.EvalExpr(ast.NewExpr{Type: ident("stack")}, scope)
	require.NoError(t, err)
	scope.Define("s", stackVal)

	pushFn := ast.MemberExpr{Object: ident("s"), Name: "push"}
	_, err = it.EvalExpr(ast.CallExpr{Callee: pushFn, Args: []ast.Expr{numLit(1)}}, scope)
	require.NoError(t, err)
	_, err = it.EvalExpr(ast.CallExpr{Callee: pushFn, Args: []ast.Expr{numLit(2)}}, scope)
	require.NoError(t, err)

	scope.Define("seen", value.Num(0))
	body := ast.BlockStmt{Stmts: []ast.Stmt{
		ast.ExprStmt{X: ast.AssignExpr{Target: ident("seen"), Value: ast.BinaryExpr{Op: "+", Left: ident("seen"), Right: numLit(1)}}},
	}}
	_, err = it.EvalStmt(ast.ForeachStmt{Var: "item", Iterable: ident("s"), Body: body}, scope)
	require.NoError(t, err)
	seen, _ := scope.Lookup("seen")
	assert.Equal(t, float64(2), seen.AsNumber())
}

func TestEvalImportBindsModuleUnderAlias(t *testing.T) {
	it := New(io.Discard, io.Discard)
	scope := it.Root.Child()

	_, err := it.EvalStmt(ast.ImportStmt{Module: "math", Alias: "m"}, scope)
	require.NoError(t, err)

	modVal, ok := scope.Lookup("m")
	require.True(t, ok)
	pi, ok := modVal.AsObject().Get("pi")
	require.True(t, ok)
	assert.Greater(t, pi.AsNumber(), float64(3))
}

func TestEvalImportUnknownModuleFails(t *testing.T) {
	it := New(io.Discard, io.Discard)
	_, err := it.EvalStmt(ast.ImportStmt{Module: "does_not_exist"}, it.Root)
	require.Error(t, err)
}

func TestEvalNewRejectsNonTypeTarget(t *testing.T) {
	it := New(io.Discard, io.Discard)
	scope := it.Root.Child()
	scope.Define("notAType", value.Num(1))

	_, err := it.EvalExpr(ast.NewExpr{Type: ident("notAType")}, scope)
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrTypeMismatch, kind)
}

func TestDebugPrintWritesThroughRegistryOutWriter(t *testing.T) {
	var out bytes.Buffer
	it := New(&out, io.Discard)
	scope := it.Root.Child()

	_, err := it.EvalStmt(ast.ImportStmt{Module: "debug"}, scope)
	require.NoError(t, err)
	debugMod, _ := scope.Lookup("debug")
	printFn, _ := debugMod.AsObject().Get("print")
	_, err = it.Call(printFn, []ast.Expr{strLit("hi")}, scope)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out.String())
}
