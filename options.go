// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

package snap

// CompressOptions configures compression.
type CompressOptions struct {
	// TableBits bounds the encoder hash-table size at 1<<TableBits entries.
	// Values are clamped to [8, 14]; 0 means auto-scale to the input.
	// Smaller tables trade compression ratio for less scratch memory.
	TableBits int
}

// DefaultCompressOptions returns options with an auto-scaled hash table.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures decompression.
type DecompressOptions struct {
	// MaxOutputSize limits how large a declared length Decompress will
	// allocate for (0 = no limit). Exceeding it returns
	// ErrDeclaredLengthTooLarge before any allocation happens.
	MaxOutputSize int
	// MaxInputSize limits how many bytes DecompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with no size limits.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
