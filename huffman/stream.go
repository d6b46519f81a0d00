package huffman

import (
	"encoding/binary"
	"sort"

	"github.com/vanelang/vane/value"
)

// Magic is the 3-byte prefix identifying a compression stream (spec.md
// §4.6.6). Package archive's ArchiveMagic is the sibling constant for
// whole-archive streams.
const Magic = "ZCX"

// Compress encodes input into a compression stream per spec.md §4.6.6.
func Compress(input []byte) []byte {
	var freq [256]uint32
	for _, b := range input {
		freq[b]++
	}

	entries := make([]entry, 0, 256)
	for symbol := 0; symbol < 256; symbol++ {
		if freq[symbol] != 0 {
			entries = append(entries, entry{symbol: byte(symbol), freq: freq[symbol]})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].freq != entries[j].freq {
			return entries[i].freq < entries[j].freq
		}
		return entries[i].symbol < entries[j].symbol
	})

	root := buildTree(entries)
	table := codeTable(root)

	out := make([]byte, 0, len(input)/2+16)
	out = append(out, Magic...)

	var u16buf [2]byte
	binary.BigEndian.PutUint16(u16buf[:], uint16(len(entries)))
	out = append(out, u16buf[:]...)

	var u32buf [4]byte
	for _, e := range entries {
		out = append(out, e.symbol)
		binary.BigEndian.PutUint32(u32buf[:], e.freq)
		out = append(out, u32buf[:]...)
	}

	if len(entries) <= 1 {
		// Single-symbol or empty alphabets emit no code bits (spec.md
		// §4.6.8); the pad byte is still written as 0.
		return append(out, 0)
	}

	w := &bitWriter{}
	for _, b := range input {
		w.writeCode(table[b])
	}
	pad := w.flush()
	out = append(out, pad)
	out = append(out, w.out...)
	return out
}

// Decompress reverses Compress, restoring the original byte sequence.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < 3 || string(data[:3]) != Magic {
		return nil, value.NewError(value.ErrInvalidFileFormat, "huffman.decompress", "missing ZCX magic")
	}
	pos := 3

	if len(data) < pos+2 {
		return nil, value.NewError(value.ErrMalformedFrequencies, "huffman.decompress", "truncated entry count")
	}
	numEntries := int(binary.BigEndian.Uint16(data[pos : pos+2]))
	pos += 2

	entries := make([]entry, numEntries)
	var total uint64
	for i := 0; i < numEntries; i++ {
		if len(data) < pos+5 {
			return nil, value.NewError(value.ErrMalformedFrequencies, "huffman.decompress", "truncated entry list")
		}
		symbol := data[pos]
		freq := binary.BigEndian.Uint32(data[pos+1 : pos+5])
		entries[i] = entry{symbol: symbol, freq: freq}
		total += uint64(freq)
		pos += 5
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].freq != entries[j].freq {
			return entries[i].freq < entries[j].freq
		}
		return entries[i].symbol < entries[j].symbol
	})

	if len(data) < pos+1 {
		return nil, value.NewError(value.ErrInvalidPadding, "huffman.decompress", "missing pad byte")
	}
	padBits := data[pos]
	pos++
	if padBits >= 8 {
		return nil, value.NewError(value.ErrInvalidPadding, "huffman.decompress", "pad_bits out of range")
	}

	root := buildTree(entries)

	if root == nil {
		return []byte{}, nil
	}

	if root.isLeaf {
		out := make([]byte, total)
		for i := range out {
			out[i] = root.symbol
		}
		return out, nil
	}

	reader := newBitReader(data[pos:])
	out := make([]byte, 0, total)
	cursor := root
	for uint64(len(out)) < total {
		bit, ok := reader.readBit()
		if !ok {
			return nil, value.NewError(value.ErrMissingHuffmanCode, "huffman.decompress", "ran out of bits before decoding all symbols")
		}
		if bit == 0 {
			cursor = cursor.left
		} else {
			cursor = cursor.right
		}
		if cursor == nil {
			return nil, value.NewError(value.ErrMalformedTree, "huffman.decompress", "walked into a null child")
		}
		if cursor.isLeaf {
			out = append(out, cursor.symbol)
			cursor = root
		}
	}
	return out, nil
}
