// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

package snap

// Decompress decodes a Snappy block from src into a newly allocated buffer.
// opts may be nil. If opts.MaxOutputSize > 0 and the header declares more
// than that, ErrDeclaredLengthTooLarge is returned before allocating.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	declared, headerLen, err := readHeader(src)
	if err != nil {
		return nil, err
	}

	if opts.MaxOutputSize > 0 && declared > opts.MaxOutputSize {
		return nil, ErrDeclaredLengthTooLarge
	}

	dst := make([]byte, declared)
	if err := decompressCore(src[headerLen:], dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecompressInto decodes a Snappy block from src into dst and returns the
// decoded prefix of dst. Returns ErrDeclaredLengthTooLarge if the header
// declares more bytes than dst can hold. On error no output is returned,
// though dst's contents are unspecified.
func DecompressInto(src, dst []byte) ([]byte, error) {
	declared, headerLen, err := readHeader(src)
	if err != nil {
		return nil, err
	}

	if declared > len(dst) {
		return nil, ErrDeclaredLengthTooLarge
	}

	if err := decompressCore(src[headerLen:], dst[:declared]); err != nil {
		return nil, err
	}

	return dst[:declared], nil
}

// decompressCore walks src as a sequence of elements, writing exactly
// len(dst) bytes into dst. src holds the block body with the header already
// stripped; len(dst) is the declared length.
func decompressCore(src, dst []byte) error {
	var inPos, outPos int

	for inPos < len(src) {
		elem, err := parseElement(src, &inPos)
		if err != nil {
			return err
		}

		switch elem.kind {
		case elemLiteral:
			if err := copyLiteralRun(src, &inPos, dst, &outPos, elem.length); err != nil {
				return err
			}

		case elemCopy:
			if err := copyBackRef(dst, outPos, elem.dist, elem.length); err != nil {
				return err
			}

			outPos += elem.length
		}
	}

	if outPos != len(dst) {
		return ErrLengthMismatch
	}

	return nil
}

// copyLiteralRun copies n raw bytes from src[*inPos:] to dst[*outPos:] and
// advances both cursors. A run that outlives the input is a malformed
// element; one that outlives the declared length is a length mismatch.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if *inPos+n > len(src) {
		return ErrMalformedElement
	}

	if *outPos+n > len(dst) {
		return ErrLengthMismatch
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}
