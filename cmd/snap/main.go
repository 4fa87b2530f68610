// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

// Command snap is a stdin-to-stdout filter for the Snappy block format.
//
//	snap < raw > compressed
//	snap -d < compressed > raw
//
// Input is read fully into memory and must fit the -max-size bound; the
// block format carries no framing, so the whole stream is one block.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/woozymasta/snap"
)

func main() {
	compress := flag.Bool("c", false, "compress stdin to stdout (default mode)")
	decompress := flag.Bool("d", false, "decompress stdin to stdout")
	maxSize := flag.Int("max-size", 64<<20, "maximum input or output size in bytes")
	flag.Parse()

	log := logrus.New()

	if *compress && *decompress {
		log.Fatal("-c and -d are mutually exclusive")
	}
	if *maxSize <= 0 {
		log.Fatal("-max-size must be positive")
	}

	// Read one byte past the bound so oversized input is detected rather
	// than silently truncated.
	src, err := io.ReadAll(io.LimitReader(os.Stdin, int64(*maxSize)+1))
	if err != nil {
		log.WithError(err).Fatal("reading stdin")
	}
	if len(src) > *maxSize {
		log.WithField("max-size", *maxSize).Fatal("input exceeds maximum size")
	}

	var out []byte
	if *decompress {
		out, err = decode(src, *maxSize)
	} else {
		out, err = encode(src)
	}
	if err != nil {
		log.WithError(err).Fatal("transform failed")
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.WithError(err).Fatal("writing stdout")
	}
}

func encode(src []byte) ([]byte, error) {
	maxLen := snap.MaxCompressedLen(len(src))
	if maxLen < 0 {
		return nil, snap.ErrTooLarge
	}

	dst := make([]byte, maxLen)
	n, err := snap.CompressInto(dst, src, nil)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

func decode(src []byte, maxSize int) ([]byte, error) {
	declared, err := snap.DecodedLen(src)
	if err != nil {
		return nil, err
	}
	if declared > maxSize {
		return nil, snap.ErrDeclaredLengthTooLarge
	}

	return snap.DecompressInto(src, make([]byte, declared))
}
