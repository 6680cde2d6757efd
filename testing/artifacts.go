package testing

import (
	"bytes"
	"io"
	"testing"

	"github.com/dargueta/huffpack/huffman"
	"github.com/dargueta/huffpack/utilities/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// LoadPackedData takes a container produced by [compression.WriteArtifact] and
// returns a stream to access the decompressed data.
//
//   - Writes to the stream do not affect `packed`.
//   - While the stream can be written to, its size is fixed to `size`.
//     Attempting to write past the end of this buffer will trigger an error.
func LoadPackedData(t *testing.T, packed []byte, size int) io.ReadWriteSeeker {
	require.Greater(t, len(packed), 0, "packed data is empty")

	data, err := compression.DecompressToBytes(bytes.NewReader(packed))
	require.NoError(t, err)
	require.Equal(t, size, len(data), "decompressed data is wrong size")
	return bytesextra.NewReadWriteSeeker(data)
}

// RequireRoundTrip compresses data, checks that the artifact is no larger than
// the input, and decodes it with two independent cursors that must both yield
// the original bytes. The artifact is returned for further checks.
func RequireRoundTrip(
	t *testing.T, data []byte, options ...huffman.Option,
) *huffman.Artifact {
	artifact, err := huffman.Compress(data, options...)
	require.NoError(t, err, "compression failed")

	require.Equal(t, len(data), artifact.UncompressedSize(), "uncompressed size is wrong")
	require.LessOrEqual(
		t,
		artifact.CompressedSize(),
		artifact.UncompressedSize(),
		"artifact is larger than its input",
	)
	require.Equal(
		t,
		artifact.UncompressedSize()-artifact.CompressedSize(),
		artifact.BytesSaved(),
		"bytes saved is wrong",
	)

	first := drain(artifact)
	second := drain(artifact)
	require.Equal(t, data, first, "decoded data is wrong")
	assert.Equal(t, first, second, "independent cursors decoded different data")
	return artifact
}

func drain(artifact *huffman.Artifact) []byte {
	output := make([]byte, 0, artifact.UncompressedSize())
	end := artifact.End()
	for cursor := artifact.Begin(); cursor != end; cursor.Advance() {
		output = append(output, byte(cursor.Value()))
	}
	return output
}
