package snap

import (
	"bytes"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The reference implementation and this package may pick different elements
// for the same input (parsing heuristics are not normative), so the corpus
// checks wire-level compatibility in both directions rather than byte
// equality of encoder output.

func TestCompatCorpus_ReferenceDecodesOurBlocks(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			compressed, err := Compress(in.data, nil)
			require.NoError(t, err)

			out, err := snappy.Decode(nil, compressed)
			require.NoError(t, err, "reference decoder rejected our block")
			assert.True(t, bytes.Equal(in.data, out), "reference decoder produced different bytes")
		})
	}
}

func TestCompatCorpus_WeDecodeReferenceBlocks(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			compressed := snappy.Encode(nil, in.data)

			out, err := Decompress(compressed, nil)
			require.NoError(t, err, "our decoder rejected a reference block")
			assert.True(t, bytes.Equal(in.data, out), "our decoder produced different bytes")
		})
	}
}

func TestCompatCorpus_DecodedLenAgrees(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			compressed := snappy.Encode(nil, in.data)

			ours, err := DecodedLen(compressed)
			require.NoError(t, err)

			theirs, err := snappy.DecodedLen(compressed)
			require.NoError(t, err)

			assert.Equal(t, theirs, ours)
		})
	}
}
