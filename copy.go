// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

package snap

// copyBackRef copies length bytes from dst[outputPos-dist:] to dst[outputPos:].
// If distance < length, source and destination overlap; copy must be byte-by-byte
// so that repeated patterns (RLE) are correct. The built-in copy does not handle
// overlapping regions where src precedes dst.
func copyBackRef(dst []byte, outputPos, dist, length int) error {
	if dist <= 0 || dist > outputPos {
		return ErrInvalidReference
	}

	if outputPos+length > len(dst) {
		return ErrLengthMismatch
	}

	mPos := outputPos - dist
	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[outputPos+i] = dst[mPos+i]
	}

	return nil
}
