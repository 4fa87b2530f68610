// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

package snap

// encodeWindow greedily parses one window of the input and appends its
// elements to dst, returning the number of bytes written. The caller
// guarantees dst is large enough (sized via MaxCompressedLen) and
// len(window) <= maxWindowSize.
func encodeWindow(dst, window []byte, tableBits int) (d int) {
	// Too short to ever contain a match.
	if len(window) <= minCopyLen {
		return emitLiteral(dst, window)
	}

	// Scale the hash table to the window so short inputs stay cheap to clear.
	shift, tableSize := uint(32-minTableBits), 1<<minTableBits
	for tableSize < 1<<tableBits && tableSize < len(window) {
		shift--
		tableSize *= 2
	}

	table := acquireEncodeTable()
	defer releaseEncodeTable(table)
	clear(table[:tableSize])

	var (
		s   int // scan position
		t   int // last position with the same fingerprint as s
		lit int // start of the pending literal run

		// Probe-miss stride: after 32 positions without a match, advance two
		// at a time, then three, and so on (skip>>5 per step). Incompressible
		// data falls through quickly at a small ratio cost on mixed data.
		skip = 32
	)

	for s+3 < len(window) {
		b0, b1, b2, b3 := window[s], window[s+1], window[s+2], window[s+3]
		fp := uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16 | uint32(b3)<<24
		p := &table[(fp*hashMul)>>shift]

		// Positions are stored biased by +1 so a cleared slot reads as empty.
		// The freshest position always wins the slot: closer matches encode
		// in fewer bytes.
		t, *p = int(*p)-1, int32(s+1)

		// Empty slot, out-of-range candidate, or a fingerprint collision that
		// does not actually match: the byte joins the pending literal run.
		if t < 0 || s-t >= maxCopyDist ||
			b0 != window[t] || b1 != window[t+1] || b2 != window[t+2] || b3 != window[t+3] {
			s += skip >> 5
			skip++

			continue
		}
		skip = 32

		if lit != s {
			d += emitLiteral(dst[d:], window[lit:s])
		}

		// Extend the match as far as it goes. t may run into bytes the copy
		// itself will produce; the decoder's overlap rule makes that valid.
		s0 := s
		s, t = s+4, t+4
		for s < len(window) && window[s] == window[t] {
			s++
			t++
		}

		d += emitCopy(dst[d:], s-t, s-s0)
		lit = s
	}

	if lit != len(window) {
		d += emitLiteral(dst[d:], window[lit:])
	}

	return d
}

// emitLiteral appends a literal element for lit and returns the number of
// bytes written. lit must be non-empty.
func emitLiteral(dst, lit []byte) int {
	i, n := 0, len(lit)-1
	switch {
	case n < inlineLiteralMax:
		dst[0] = uint8(n)<<2 | tagLiteral
		i = 1
	case n < 1<<8:
		dst[0] = 60<<2 | tagLiteral
		dst[1] = uint8(n)
		i = 2
	case n < 1<<16:
		dst[0] = 61<<2 | tagLiteral
		dst[1] = uint8(n)
		dst[2] = uint8(n >> 8)
		i = 3
	case n < 1<<24:
		dst[0] = 62<<2 | tagLiteral
		dst[1] = uint8(n)
		dst[2] = uint8(n >> 8)
		dst[3] = uint8(n >> 16)
		i = 4
	default:
		dst[0] = 63<<2 | tagLiteral
		dst[1] = uint8(n)
		dst[2] = uint8(n >> 8)
		dst[3] = uint8(n >> 16)
		dst[4] = uint8(n >> 24)
		i = 5
	}

	return i + copy(dst[i:], lit)
}

// emitCopy appends copy elements for a match of the given distance and
// length and returns the number of bytes written. Long matches are split
// into copy2 runs of up to 64 bytes; a short tail with a near distance
// packs into the two-byte copy1 form.
func emitCopy(dst []byte, dist, length int) int {
	i := 0
	for length > 0 {
		x := length - minCopyLen
		if 0 <= x && x < 1<<3 && dist < maxCopy1Dist {
			dst[i+0] = uint8(dist>>8)&0x07<<5 | uint8(x)<<2 | tagCopy1
			dst[i+1] = uint8(dist)
			i += 2

			break
		}

		x = min(length, maxCopy2Len)
		dst[i+0] = uint8(x-1)<<2 | tagCopy2
		dst[i+1] = uint8(dist)
		dst[i+2] = uint8(dist >> 8)
		i += 3
		length -= x
	}

	return i
}
