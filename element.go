// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

package snap

// elementKind discriminates the two wire element forms.
type elementKind int

const (
	elemLiteral elementKind = iota
	elemCopy
)

// element is one decoded wire element. For literals, length raw bytes follow
// the element header in the input. For copies, length bytes are reproduced
// from dist bytes back in the output.
type element struct {
	kind   elementKind
	length int
	dist   int
}

// parseElement decodes the element header at src[*inPos] and advances *inPos
// past it (for literals, past the header only, not the raw bytes).
func parseElement(src []byte, inPos *int) (element, error) {
	tag, err := readElementByte(src, inPos)
	if err != nil {
		return element{}, err
	}

	switch tag & 0x03 {
	case tagLiteral:
		length, err := readLiteralLength(src, inPos, int(tag>>2))
		if err != nil {
			return element{}, err
		}

		return element{kind: elemLiteral, length: length}, nil

	case tagCopy1:
		b, err := readElementByte(src, inPos)
		if err != nil {
			return element{}, err
		}

		return element{
			kind:   elemCopy,
			length: minCopyLen + int(tag>>2)&0x07,
			dist:   int(tag&0xe0)<<3 | int(b),
		}, nil

	case tagCopy2:
		dist, err := readElementLE(src, inPos, 2)
		if err != nil {
			return element{}, err
		}

		return element{kind: elemCopy, length: 1 + int(tag>>2), dist: dist}, nil

	default: // tagCopy4
		dist, err := readElementLE(src, inPos, 4)
		if err != nil {
			return element{}, err
		}

		return element{kind: elemCopy, length: 1 + int(tag>>2), dist: dist}, nil
	}
}

// readLiteralLength resolves a literal tag's 6-bit field to the run length.
// Fields up to 59 carry length-1 inline; 60..63 select 1..4 trailing
// little-endian bytes holding length-1.
func readLiteralLength(src []byte, inPos *int, field int) (int, error) {
	if field < inlineLiteralMax {
		return field + 1, nil
	}

	n, err := readElementLE(src, inPos, field-inlineLiteralMax+1)
	if err != nil {
		return 0, err
	}

	return n + 1, nil
}

// readElementByte reads one byte from src at *inPos and advances *inPos.
func readElementByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, ErrMalformedElement
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}

// readElementLE reads a width-byte little-endian unsigned integer from src
// at *inPos and advances *inPos by width. width is at most 4, so the result
// always fits a non-negative int.
func readElementLE(src []byte, inPos *int, width int) (int, error) {
	if *inPos+width > len(src) {
		return 0, ErrMalformedElement
	}

	var v uint32
	for i := 0; i < width; i++ {
		v |= uint32(src[*inPos+i]) << (8 * i)
	}
	*inPos += width

	return int(v), nil
}
