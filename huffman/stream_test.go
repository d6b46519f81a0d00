package huffman

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/vanelang/vane/value"
)

func TestCompress_EmptyInput(t *testing.T) {
	got := Compress(nil)
	want := []byte{0x5A, 0x43, 0x58, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", want, got)
	}
}

func TestCompress_SingleSymbol(t *testing.T) {
	got := Compress([]byte("aaaaaa"))
	want := []byte{'Z', 'C', 'X', 0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x06, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", want, got)
	}
}

func TestRoundTrip(t *testing.T) {
	testData := [...]string{
		"",
		"a",
		"aaaaaa",
		"the quick brown fox jumps over the lazy dog",
		"the quick brown fox jumps over the lazy dog",
		"mississippi",
		"\x00\x01\x02\x03\xff\xfe",
	}
	for i, input := range testData {
		name := fmt.Sprintf("case(%d)", i)
		t.Run(name, func(t *testing.T) {
			compressed := Compress([]byte(input))
			got, err := Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if string(got) != input {
				t.Errorf("round-trip mismatch:\n\texpect: %q\n\tactual: %q", input, string(got))
			}
		})
	}
}

func TestCompress_Deterministic(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog")
	a := Compress(input)
	b := Compress(input)
	if !bytes.Equal(a, b) {
		t.Errorf("compressing the same input twice produced different output")
	}
}

func TestDecompress_RejectsBadMagic(t *testing.T) {
	_, err := Decompress([]byte("XYZ\x00\x00\x00"))
	if err == nil {
		t.Fatal("expected an error for bad magic, got nil")
	}
	kind, ok := value.KindOf(err)
	if !ok || kind != value.ErrInvalidFileFormat {
		t.Errorf("expected invalid_file_format, got %v", err)
	}
}

func TestDecompress_RejectsTruncatedEntryList(t *testing.T) {
	_, err := Decompress([]byte("ZCX\x00\x02a"))
	if err == nil {
		t.Fatal("expected an error for a truncated entry list, got nil")
	}
	kind, ok := value.KindOf(err)
	if !ok || kind != value.ErrMalformedFrequencies {
		t.Errorf("expected malformed_frequencies, got %v", err)
	}
}

func TestDecompress_RejectsBadPadding(t *testing.T) {
	// Two symbols to force a real code table, then corrupt the pad byte.
	compressed := Compress([]byte("ab"))
	compressed[len(compressed)-2] = 8 // overwrite the pad_bits byte with an out-of-range value
	_, err := Decompress(compressed)
	if err == nil {
		t.Fatal("expected an error for bad padding, got nil")
	}
	kind, ok := value.KindOf(err)
	if !ok || kind != value.ErrInvalidPadding {
		t.Errorf("expected invalid_padding, got %v", err)
	}
}

func TestCompress_FrequenciesSumToInputLength(t *testing.T) {
	input := []byte("mississippi river")
	compressed := Compress(input)

	numEntries := int(compressed[3])<<8 | int(compressed[4])
	var total int
	pos := 5
	for i := 0; i < numEntries; i++ {
		freq := uint32(compressed[pos+1])<<24 | uint32(compressed[pos+2])<<16 | uint32(compressed[pos+3])<<8 | uint32(compressed[pos+4])
		total += int(freq)
		pos += 5
	}
	if total != len(input) {
		t.Errorf("frequency table does not sum to input length: expect %d, actual %d", len(input), total)
	}
}
