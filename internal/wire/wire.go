// Package wire owns the primitive little-endian readers shared by the
// record decoders.
//
// Ownership boundary:
// - exact-width integer reinterpretation
// - hex string to raw bytes for fixtures and tooling
package wire

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// I64 reinterprets exactly 8 bytes as a little-endian two's-complement
// int64. The caller slices the region; any other width is a decoding-offset
// bug and panics.
func I64(b []byte) int64 {
	if len(b) != 8 {
		panic(fmt.Sprintf("wire: i64 needs 8 bytes, got %d", len(b)))
	}
	return int64(binary.LittleEndian.Uint64(b))
}

// U64 reinterprets exactly 8 bytes as a little-endian uint64.
func U64(b []byte) uint64 {
	if len(b) != 8 {
		panic(fmt.Sprintf("wire: u64 needs 8 bytes, got %d", len(b)))
	}
	return binary.LittleEndian.Uint64(b)
}

// I32 reinterprets exactly 4 bytes as a little-endian two's-complement
// int32.
func I32(b []byte) int32 {
	if len(b) != 4 {
		panic(fmt.Sprintf("wire: i32 needs 4 bytes, got %d", len(b)))
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// MustHex converts an even-length hex string into raw bytes, two characters
// per byte, most significant nibble first. Odd length or a non-hex character
// panics. Fixture and tooling convenience, not used on the decode path.
func MustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("wire: invalid hex: %v", err))
	}
	return b
}
