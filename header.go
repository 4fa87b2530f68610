// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

package snap

import "encoding/binary"

// putHeader writes the varint block header for uncompressed length n and
// returns the number of bytes written. The caller guarantees n fits 32 bits
// and dst has at least maxHeaderLen bytes.
func putHeader(dst []byte, n int) int {
	return binary.PutUvarint(dst, uint64(n))
}

// readHeader parses the varint block header at the start of src and returns
// the declared uncompressed length and the number of header bytes consumed.
// It rejects truncated varints, varints longer than maxHeaderLen bytes, and
// declared lengths above maxBlockLen, without touching the rest of the block.
func readHeader(src []byte) (declared, n int, err error) {
	var v uint64
	var shift uint

	for i, b := range src {
		if i >= maxHeaderLen {
			return 0, 0, ErrMalformedHeader
		}

		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			if v > maxBlockLen {
				return 0, 0, ErrMalformedHeader
			}

			return int(v), i + 1, nil
		}

		shift += 7
	}

	return 0, 0, ErrMalformedHeader
}

// DecodedLen parses only the block header and returns the declared
// uncompressed length. It does not validate the elements that follow.
func DecodedLen(src []byte) (int, error) {
	declared, _, err := readHeader(src)
	if err != nil {
		return 0, err
	}

	return declared, nil
}
