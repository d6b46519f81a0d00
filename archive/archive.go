// Package archive implements the multi-file archive format (C7) layered
// on package huffman: each entry is a relative path, original size, and
// an embedded compression stream (spec.md §3.5/§4.7). Grounded in the
// teacher's raw-integer-manipulation idiom (no generic serialization
// library) for packing the big-endian header fields, the same choice the
// teacher makes for Code and the decoder's bit tables.
package archive

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vanelang/vane/huffman"
	"github.com/vanelang/vane/value"
)

// Magic is the 3-byte prefix identifying an archive stream.
const Magic = "ZAX"

// Archive walks root (skipping directories and symlinks) and writes an
// archive stream to w (spec.md §4.7's encode procedure).
func Archive(w io.Writer, root string) error {
	if _, err := w.Write([]byte(Magic)); err != nil {
		return value.WrapError(value.ErrIOFailure, "archive.archive", "write magic failed", err)
	}

	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return value.WrapError(value.ErrIOFailure, "archive.archive", "walk failed", err)
		}
		if info.IsDir() || info.Mode()&os.ModeSymlink != 0 {
			return nil
		}

		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			return value.WrapError(value.ErrIOFailure, "archive.archive", "relative path failed", rerr)
		}
		rel = filepath.ToSlash(rel)

		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return value.WrapError(value.ErrIOFailure, "archive.archive", "read file failed", rerr)
		}
		compressed := huffman.Compress(data)

		if werr := writeEntryHeader(w, rel, uint64(len(data)), uint64(len(compressed))); werr != nil {
			return werr
		}
		if _, werr := w.Write(compressed); werr != nil {
			return value.WrapError(value.ErrIOFailure, "archive.archive", "write entry payload failed", werr)
		}
		return nil
	})
}

func writeEntryHeader(w io.Writer, path string, originalSize, compressedSize uint64) error {
	pathBytes := []byte(path)
	if len(pathBytes) > 0xFFFF {
		return value.NewError(value.ErrInvalidFileFormat, "archive.archive", "path too long to encode in u16")
	}

	var header [2]byte
	binary.BigEndian.PutUint16(header[:], uint16(len(pathBytes)))
	if _, err := w.Write(header[:]); err != nil {
		return value.WrapError(value.ErrIOFailure, "archive.archive", "write path length failed", err)
	}
	if _, err := w.Write(pathBytes); err != nil {
		return value.WrapError(value.ErrIOFailure, "archive.archive", "write path failed", err)
	}

	var sizes [16]byte
	binary.BigEndian.PutUint64(sizes[0:8], originalSize)
	binary.BigEndian.PutUint64(sizes[8:16], compressedSize)
	if _, err := w.Write(sizes[:]); err != nil {
		return value.WrapError(value.ErrIOFailure, "archive.archive", "write sizes failed", err)
	}
	return nil
}

// Extract reads an archive stream from r and recreates its entries under
// destDir (spec.md §4.7's decode procedure).
func Extract(r io.Reader, destDir string) error {
	var magic [3]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return value.WrapError(value.ErrInvalidFileFormat, "archive.extract", "failed to read magic", err)
	}
	if string(magic[:]) != Magic {
		return value.NewError(value.ErrInvalidFileFormat, "archive.extract", "missing ZAX magic")
	}

	for {
		var pathLen [2]byte
		_, err := io.ReadFull(r, pathLen[:])
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return value.WrapError(value.ErrIOFailure, "archive.extract", "failed to read path length", err)
		}

		plen := binary.BigEndian.Uint16(pathLen[:])
		pathBytes := make([]byte, plen)
		if _, err := io.ReadFull(r, pathBytes); err != nil {
			return value.WrapError(value.ErrIOFailure, "archive.extract", "truncated path", err)
		}
		relPath := string(pathBytes)
		if strings.Contains(relPath, "..") {
			return value.NewError(value.ErrInvalidFileFormat, "archive.extract", "path escapes archive root")
		}

		var sizes [16]byte
		if _, err := io.ReadFull(r, sizes[:]); err != nil {
			return value.WrapError(value.ErrIOFailure, "archive.extract", "truncated size fields", err)
		}
		compressedSize := binary.BigEndian.Uint64(sizes[8:16])

		compressed := make([]byte, compressedSize)
		if _, err := io.ReadFull(r, compressed); err != nil {
			return value.WrapError(value.ErrIOFailure, "archive.extract", "truncated entry payload", err)
		}

		data, derr := huffman.Decompress(compressed)
		if derr != nil {
			return derr
		}

		outPath := filepath.Join(destDir, filepath.FromSlash(relPath))
		if merr := os.MkdirAll(filepath.Dir(outPath), 0o755); merr != nil {
			return value.WrapError(value.ErrDirectoryCreationError, "archive.extract", "mkdir failed", merr)
		}
		if werr := os.WriteFile(outPath, data, 0o644); werr != nil {
			return value.WrapError(value.ErrIOFailure, "archive.extract", "write file failed", werr)
		}
	}
}

// DecodeAuto inspects the stream's magic and dispatches to either
// Decompress or Extract, the magic-sniffing dispatch spec.md §4.6.7
// describes ("if magic is archive magic, delegate"). This lives here
// rather than in package huffman so huffman never depends on archive.
func DecodeAuto(data []byte, destDir string) ([]byte, error) {
	if len(data) >= 3 && string(data[:3]) == Magic {
		return nil, Extract(bytes.NewReader(data), destDir)
	}
	return huffman.Decompress(data)
}
