// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

package snap

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrTooLarge is returned when the input is too large to encode in a
	// 32-bit block header.
	ErrTooLarge = errors.New("block exceeds maximum encodable length")
	// ErrCapacityExceeded is returned by CompressInto when the destination is
	// smaller than MaxCompressedLen of the source.
	ErrCapacityExceeded = errors.New("destination capacity exceeded")
	// ErrMalformedHeader is returned when the block-length varint is truncated
	// or longer than 5 bytes.
	ErrMalformedHeader = errors.New("malformed block header")
	// ErrDeclaredLengthTooLarge is returned when the header declares more
	// bytes than the destination can hold.
	ErrDeclaredLengthTooLarge = errors.New("declared length exceeds destination")
	// ErrInvalidReference is returned when a copy element's distance is zero
	// or points before the start of the output produced so far.
	ErrInvalidReference = errors.New("invalid copy reference")
	// ErrMalformedElement is returned when an element needs more input bytes
	// than remain in the block.
	ErrMalformedElement = errors.New("malformed element")
	// ErrLengthMismatch is returned when the decoded output size differs from
	// the length declared in the header.
	ErrLengthMismatch = errors.New("output length mismatch")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than
	// MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
