// Package huffman implements the canonical byte-oriented Huffman codec
// described by spec.md §3.4/§4.6: a two-pass frequency-table encoder with
// an explicit priority-queue tree build, a bit-packed MSB-first stream,
// and a symmetric decoder including the single-symbol special case.
//
// The tree-build and tie-break rules are grounded on
// chronos-tachyon-huffman/encoder.go's freqHeap, generalized from that
// package's abstract numbered-symbol alphabet to a fixed byte alphabet,
// and on hpxro7-compressor-head/huffman/huffman.go's explicit node/left/
// right tree shape, which this package's Decompress walks directly rather
// than through a size-array canonical reconstruction.
package huffman

import (
	"fmt"
	"strconv"
)

// Code is a packed Huffman code: Size valid bits held in the low bits of
// Bits, most significant bit first.
type Code struct {
	Size byte
	Bits uint32
}

func (c Code) String() string {
	if c.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(c.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, c.Bits))
}

var _ fmt.Stringer = Code{}
