package huffman

import (
	"container/heap"
)

// entry is one row of a canonical entry list (spec.md §4.6.2): a byte and
// its frequency, pre-sorted by (frequency ascending, byte ascending).
type entry struct {
	symbol byte
	freq   uint32
}

// node is a Huffman tree node. Leaves carry symbol/freq; internal nodes
// carry only the summed freq of their children plus a stable creation
// order used to break ties among themselves.
type node struct {
	isLeaf      bool
	symbol      byte
	freq        uint32
	left, right *node
	order       int
}

type nodeHeap struct {
	list []*node
}

func (h *nodeHeap) Len() int      { return len(h.list) }
func (h *nodeHeap) Swap(i, j int) { h.list[i], h.list[j] = h.list[j], h.list[i] }

// Less implements the tie-break order spec.md §4.6.3 requires encoder and
// decoder to agree on exactly: frequency ascending, then leaves before
// internal nodes, then symbol byte ascending (leaves only), then a stable
// secondary key (insertion order) for internal nodes.
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	if a.isLeaf != b.isLeaf {
		return a.isLeaf
	}
	if a.isLeaf {
		return a.symbol < b.symbol
	}
	return a.order < b.order
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// buildTree constructs a Huffman tree from a canonical entry list already
// sorted by (frequency ascending, byte ascending). Returns nil for an
// empty list, a lone leaf for a single-entry list (spec.md §4.6.8), and an
// internal-rooted tree otherwise. The first node popped on each round
// becomes the left child (spec.md §4.6.3).
func buildTree(entries []entry) *node {
	if len(entries) == 0 {
		return nil
	}

	h := &nodeHeap{list: make([]*node, len(entries))}
	for i, e := range entries {
		h.list[i] = &node{isLeaf: true, symbol: e.symbol, freq: e.freq}
	}
	heap.Init(h)

	if h.Len() == 1 {
		return h.list[0]
	}

	var nextOrder int
	for h.Len() > 1 {
		left := heap.Pop(h).(*node)
		right := heap.Pop(h).(*node)
		parent := &node{
			freq:  left.freq + right.freq,
			left:  left,
			right: right,
			order: nextOrder,
		}
		nextOrder++
		heap.Push(h, parent)
	}
	return heap.Pop(h).(*node)
}

// codeTable walks root, assigning '0' on each left edge and '1' on each
// right edge (spec.md §4.6.4). A lone-leaf root (single-symbol alphabet)
// yields an empty table, since no bits are ever emitted for it.
func codeTable(root *node) map[byte]Code {
	table := make(map[byte]Code)
	if root == nil || root.isLeaf {
		return table
	}
	walkCode(root, 0, 0, table)
	return table
}

func walkCode(n *node, size byte, bits uint32, table map[byte]Code) {
	if n.isLeaf {
		table[n.symbol] = Code{Size: size, Bits: bits}
		return
	}
	walkCode(n.left, size+1, bits<<1, table)
	walkCode(n.right, size+1, (bits<<1)|1, table)
}
