// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

/*
Package snap implements the Snappy block compression format.

A block is the varint-encoded uncompressed length followed by a sequence of
literal and copy elements; there is no framing, checksum, or stream
identifier (use a framing layer on top if you need those). The output of
Compress is byte-compatible with other Snappy block implementations.

# Compress

Options may be nil (hash table auto-scaled to the input):

	out, err := snap.Compress(data, nil)
	out, err := snap.Compress(data, &snap.CompressOptions{TableBits: 12})

To reuse caller-managed output memory (no per-call output allocation),
pre-size with MaxCompressedLen:

	dst := make([]byte, snap.MaxCompressedLen(len(data)))
	n, err := snap.CompressInto(dst, data, nil)
	// compressed block is dst[:n]

# Decompress

The block header declares the decompressed size, so no expected length is
required. DecodedLen parses only the header:

	n, err := snap.DecodedLen(compressed)
	out, err := snap.Decompress(compressed, nil)

To bound the allocation against hostile headers, or to reuse caller-managed
output memory:

	out, err := snap.Decompress(compressed, &snap.DecompressOptions{MaxOutputSize: 1 << 20})
	out, err := snap.DecompressInto(compressed, dst)

From an io.Reader:

	out, err := snap.DecompressFromReader(r, nil)

Decoding is all-or-nothing: on any error no partial output is returned.
*/
package snap
