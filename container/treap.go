package container

import (
	"io"
	"math/rand"

	"github.com/vanelang/vane/ast"
	"github.com/vanelang/vane/value"
)

// treapNode is a BST-by-key, heap-by-priority node: standard treap shape,
// balanced in expectation by assigning each insertion a fresh random
// priority (math/rand) rather than by explicit rebalancing.
type treapNode struct {
	key         value.Value
	priority    int64
	left, right *treapNode
}

type treapState struct {
	root *treapNode
	n    int
}

func rotateRight(n *treapNode) *treapNode {
	l := n.left
	n.left = l.right
	l.right = n
	return l
}

func rotateLeft(n *treapNode) *treapNode {
	r := n.right
	n.right = r.left
	r.left = n
	return r
}

func treapInsert(n *treapNode, key value.Value, priority int64) (*treapNode, bool) {
	if n == nil {
		return &treapNode{key: key, priority: priority}, true
	}
	if value.Equal(key, n.key) {
		return n, false
	}
	var inserted bool
	if value.Less(key, n.key) {
		n.left, inserted = treapInsert(n.left, key, priority)
		if inserted && n.left.priority > n.priority {
			n = rotateRight(n)
		}
	} else {
		n.right, inserted = treapInsert(n.right, key, priority)
		if inserted && n.right.priority > n.priority {
			n = rotateLeft(n)
		}
	}
	return n, inserted
}

func treapContains(n *treapNode, key value.Value) bool {
	for n != nil {
		if value.Equal(key, n.key) {
			return true
		}
		if value.Less(key, n.key) {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

func treapRemove(n *treapNode, key value.Value) (*treapNode, bool) {
	if n == nil {
		return nil, false
	}
	if value.Less(key, n.key) {
		var removed bool
		n.left, removed = treapRemove(n.left, key)
		return n, removed
	}
	if value.Less(n.key, key) {
		var removed bool
		n.right, removed = treapRemove(n.right, key)
		return n, removed
	}
	// n.key == key: rotate the higher-priority child up until n is a leaf,
	// then drop it.
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}
	if n.left.priority > n.right.priority {
		n = rotateRight(n)
		n.right, _ = treapRemove(n.right, key)
	} else {
		n = rotateLeft(n)
		n.left, _ = treapRemove(n.left, key)
	}
	return n, true
}

func treapHeight(n *treapNode) int {
	if n == nil {
		return 0
	}
	l, r := treapHeight(n.left), treapHeight(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func treapPreorder(n *treapNode, out *[]value.Value) {
	if n == nil {
		return
	}
	*out = append(*out, n.key)
	treapPreorder(n.left, out)
	treapPreorder(n.right, out)
}

func newTreapType(errw io.Writer) *value.StdStruct {
	st := &value.StdStruct{Name: "treap"}

	st.Constructor = func(ev value.Evaluator, args []ast.Expr, scope value.Scope) (value.Value, error) {
		if _, err := expectValues(errw, ev, args, scope, 0, "treap.new"); err != nil {
			return value.Nil(), err
		}
		return wrapInstance(st, &treapState{}), nil
	}

	st.Methods = map[string]value.MethodFunc{
		"insert": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "treap.insert")
			if err != nil {
				return value.Nil(), err
			}
			s := payload[treapState](this)
			var inserted bool
			s.root, inserted = treapInsert(s.root, vals[0], rand.Int63())
			if inserted {
				s.n++
			}
			return value.Nil(), nil
		},
		"contains": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "treap.contains")
			if err != nil {
				return value.Nil(), err
			}
			return value.Bool(treapContains(payload[treapState](this).root, vals[0])), nil
		},
		"remove": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			vals, err := expectValues(errw, ev, args, scope, 1, "treap.remove")
			if err != nil {
				return value.Nil(), err
			}
			s := payload[treapState](this)
			var removed bool
			s.root, removed = treapRemove(s.root, vals[0])
			if removed {
				s.n--
			}
			return value.Bool(removed), nil
		},
		"size": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "treap.size"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(payload[treapState](this).n)), nil
		},
		"empty": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "treap.empty"); err != nil {
				return value.Nil(), err
			}
			return value.Bool(payload[treapState](this).n == 0), nil
		},
		"height": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "treap.height"); err != nil {
				return value.Nil(), err
			}
			return value.Num(float64(treapHeight(payload[treapState](this).root))), nil
		},
		"min": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "treap.min"); err != nil {
				return value.Nil(), err
			}
			n := payload[treapState](this).root
			if n == nil {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "treap.min", "min on empty treap")
			}
			for n.left != nil {
				n = n.left
			}
			return n.key, nil
		},
		"max": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "treap.max"); err != nil {
				return value.Nil(), err
			}
			n := payload[treapState](this).root
			if n == nil {
				return value.Nil(), value.NewError(value.ErrOutOfBounds, "treap.max", "max on empty treap")
			}
			for n.right != nil {
				n = n.right
			}
			return n.key, nil
		},
		"clear": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "treap.clear"); err != nil {
				return value.Nil(), err
			}
			s := payload[treapState](this)
			s.root = nil
			s.n = 0
			return value.Nil(), nil
		},
		"items": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "treap.items"); err != nil {
				return value.Nil(), err
			}
			var out []value.Value
			treapPreorder(payload[treapState](this).root, &out)
			return value.ArrayFrom(out), nil
		},
		"str": func(ev value.Evaluator, this value.Value, args []ast.Expr, scope value.Scope) (value.Value, error) {
			if _, err := expectValues(errw, ev, args, scope, 0, "treap.str"); err != nil {
				return value.Nil(), err
			}
			var out []value.Value
			treapPreorder(payload[treapState](this).root, &out)
			return value.StrS(itemsString("treap", out)), nil
		},
	}

	return st
}
