// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

package snap

// MaxCompressedLen returns the worst-case compressed size for srcLen input
// bytes, or -1 if srcLen is too large to encode in a 32-bit block header.
// Use it to pre-size the destination for CompressInto.
//
// The trailing literal run expands by at most 62/60 (one tag byte plus one
// extension byte per 60 literals); the dominating interior case is a
// one-byte literal followed by a five-byte copy, so 6 input bytes can cost
// 7 output bytes. A constant covers the header and small-input slack.
func MaxCompressedLen(srcLen int) int {
	n := uint64(srcLen)
	if n > maxBlockLen {
		return -1
	}

	n = 32 + n + n/6
	if n > maxBlockLen {
		return -1
	}

	return int(n)
}

// Compress compresses src as a single Snappy block into a newly allocated
// buffer. opts may be nil.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	maxLen := MaxCompressedLen(len(src))
	if maxLen < 0 {
		return nil, ErrTooLarge
	}

	dst := make([]byte, maxLen)
	n, err := CompressInto(dst, src, opts)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// CompressInto compresses src as a single Snappy block into dst and returns
// the number of bytes written. dst must hold at least
// MaxCompressedLen(len(src)) bytes; a smaller destination returns
// ErrCapacityExceeded. opts may be nil.
func CompressInto(dst, src []byte, opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	maxLen := MaxCompressedLen(len(src))
	if maxLen < 0 {
		return 0, ErrTooLarge
	}

	if len(dst) < maxLen {
		return 0, ErrCapacityExceeded
	}

	tableBits := opts.TableBits
	if tableBits == 0 {
		tableBits = maxTableBits
	}
	tableBits = min(max(tableBits, minTableBits), maxTableBits)

	d := putHeader(dst, len(src))

	// The header covers the whole input; the windows below are an encoder
	// detail that bounds hash-table size and match distances.
	for len(src) > 0 {
		window := src
		src = nil
		if len(window) > maxWindowSize {
			window, src = window[:maxWindowSize], window[maxWindowSize:]
		}

		d += encodeWindow(dst[d:], window, tableBits)
	}

	return d, nil
}
