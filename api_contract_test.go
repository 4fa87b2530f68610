package snap

import (
	"bytes"
	"testing"
)

func TestAPIContract_TrailingBytesRejected(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)

	compressed, err := Compress(src, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// The block is self-delimiting through its declared length; bytes past
	// the final element can only decode as excess output or a cut element.
	payload := append(append([]byte{}, compressed...), []byte("tail")...)
	if _, err := Decompress(payload, nil); err == nil {
		t.Fatal("expected error for trailing bytes after the block")
	}
}

func TestAPIContract_DecompressIntoAliasesDestination(t *testing.T) {
	src := bytes.Repeat([]byte("alias"), 100)

	compressed, err := Compress(src, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	dst := make([]byte, len(src)+128)
	out, err := DecompressInto(compressed, dst)
	if err != nil {
		t.Fatalf("DecompressInto failed: %v", err)
	}

	if len(out) != len(src) {
		t.Fatalf("decoded length mismatch: got=%d want=%d", len(out), len(src))
	}
	if &out[0] != &dst[0] {
		t.Fatal("decoded slice must alias the caller's destination")
	}
	if !bytes.Equal(out, src) {
		t.Fatal("decoded output mismatch")
	}
}

func TestAPIContract_DecompressCanonicalStream(t *testing.T) {
	// Hand-assembled block: header 10, literal 'a', copy length 9 at
	// distance 1. Expands to ten 'a' bytes.
	compressed := []byte{0x0A, 0x00, 'a', 0x15, 0x01}
	expected := bytes.Repeat([]byte{'a'}, 10)

	out, err := Decompress(compressed, nil)
	if err != nil {
		t.Fatalf("Decompress failed for canonical stream: %v", err)
	}

	if !bytes.Equal(out, expected) {
		t.Fatalf("canonical stream mismatch: %q", out)
	}

	// The same input must also survive a fresh round trip through Compress.
	recompressed, err := Compress(expected, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	back, err := Decompress(recompressed, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(back, expected) {
		t.Fatal("re-encoded canonical payload mismatch")
	}
}

func TestAPIContract_CompressNeverRetainsInput(t *testing.T) {
	src := []byte("mutate-after-compress")

	compressed, err := Compress(src, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	for i := range src {
		src[i] = 0
	}

	out, err := Decompress(compressed, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, []byte("mutate-after-compress")) {
		t.Fatal("compressed block must not reference the caller's input buffer")
	}
}
