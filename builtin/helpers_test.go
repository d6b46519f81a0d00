package builtin

import (
	"io"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// testScope is a minimal flat-map value.Scope for exercising module
// functions with literal arguments.
type testScope struct {
	vars map[string]value.Value
}

func newTestScope() *testScope { return &testScope{vars: map[string]value.Value{}} }

func (s *testScope) Lookup(name string) (value.Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}
func (s *testScope) Define(name string, v value.Value)      { s.vars[name] = v }
func (s *testScope) DefineConst(name string, v value.Value) { s.vars[name] = v }
func (s *testScope) Assign(name string, v value.Value) error {
	s.vars[name] = v
	return nil
}
func (s *testScope) Child() value.Scope { return newTestScope() }
func (s *testScope) CloneScope() value.Scope {
	c := newTestScope()
	for k, v := range s.vars {
		c.vars[k] = v
	}
	return c
}

var _ value.Scope = (*testScope)(nil)

// testEval reduces the literal/pre-evaluated expr forms these tests build.
type testEval struct{}

func (testEval) EvalExpr(expr ast.Expr, scope value.Scope) (value.Value, error) {
	switch e := expr.(type) {
	case ast.NilLit:
		return value.Nil(), nil
	case ast.BoolLit:
		return value.Bool(e.Value), nil
	case ast.NumberLit:
		return value.Num(e.Value), nil
	case ast.StringLit:
		return value.Str(e.Value), nil
	case ast.ValueLit:
		return e.Value.(value.Value), nil
	case ast.Ident:
		v, ok := scope.Lookup(e.Name)
		if !ok {
			return value.Nil(), value.NewError(value.ErrUnboundName, "test.ident", "unbound name \""+e.Name+"\"")
		}
		return v, nil
	default:
		return value.Nil(), value.NewError(value.ErrTypeMismatch, "test.expr", "unsupported expr in test evaluator")
	}
}

var _ value.Evaluator = testEval{}

func numLit(n float64) ast.Expr     { return ast.NumberLit{Value: n} }
func strLit(s string) ast.Expr      { return ast.StringLit{Value: []byte(s)} }
func boolLit(b bool) ast.Expr       { return ast.BoolLit{Value: b} }
func valLit(v value.Value) ast.Expr { return ast.ValueLit{Value: v} }

func newTestRegistry() *Registry {
	return NewRegistry(io.Discard, io.Discard)
}

// callFn evaluates a module namespace's function entry by name.
func callFn(m value.Value, name string, args ...ast.Expr) (value.Value, error) {
	fnVal, ok := m.AsObject().Get(name)
	if !ok {
		panic("builtin test: no such module function " + name)
	}
	fn := fnVal.AsFunction()
	return fn.Native(testEval{}, args, newTestScope())
}
