// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

package snap

// Snappy block format constants: element tags, length/distance bounds, and
// encoder hash-table parameters.

// Element tags occupy the low 2 bits of the first byte of each element.
const (
	tagLiteral = 0x00
	tagCopy1   = 0x01
	tagCopy2   = 0x02
	tagCopy4   = 0x03
)

// Literal length encoding: lengths up to inlineLiteralMax are stored
// directly in the tag byte's upper 6 bits; markers 60..63 select 1..4
// trailing little-endian bytes holding length-1.
const (
	inlineLiteralMax = 60
	maxLiteralMarker = 63
)

// Copy element bounds.
const (
	minCopyLen    = 4       // matches shorter than this are emitted as literals
	maxCopy1Len   = 11      // copy1 encodes length-4 in 3 bits
	maxCopy2Len   = 64      // copy2/copy4 encode length-1 in 6 bits
	maxCopy1Dist  = 1 << 11 // copy1 distance fits 11 bits
	maxCopyDist   = 1 << 15 // encoder never references further back
	maxWindowSize = 1 << 16 // encoder processes the input in windows this large
)

// Block header: an unsigned LEB128 varint of at most maxHeaderLen bytes,
// so declared lengths are bounded by a 32-bit value.
const (
	maxHeaderLen = 5
	maxBlockLen  = 1<<32 - 1
)

// Encoder hash-table parameters. The table maps a 4-byte fingerprint to the
// most recent window position with that fingerprint; its size is scaled to
// the window between the two bounds.
const (
	minTableBits = 8
	maxTableBits = 14
	hashMul      = 0x1e35a7bd
)
