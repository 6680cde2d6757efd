package compression

import (
	"bytes"
	"io"

	"github.com/dargueta/huffpack/huffman"
)

// CompressStream reads the input until EOF, compresses it, and writes the
// result to the output as a container.
//
// The returned int64 gives the number of bytes written to the output stream. If
// an error occurred, the value is undefined and should not be used.
func CompressStream(
	input io.Reader, output io.Writer, options ...huffman.Option,
) (int64, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return 0, err
	}

	artifact, err := huffman.Compress(data, options...)
	if err != nil {
		return 0, err
	}
	return WriteArtifact(output, artifact)
}

// CompressToBytes is like [CompressStream] but returns the container in a new
// byte slice.
func CompressToBytes(data []byte, options ...huffman.Option) ([]byte, error) {
	buffer := bytes.Buffer{}
	_, err := CompressStream(bytes.NewReader(data), &buffer, options...)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// DecompressStream reads a container from the input and writes the original
// bytes to the output.
//
// The returned int64 gives the number of bytes written to the output (i.e. the
// decompressed size of the data). If an error occurred, the value is undefined
// and should not be used.
func DecompressStream(input io.Reader, output io.Writer) (int64, error) {
	artifact, err := ReadArtifact(input)
	if err != nil {
		return 0, err
	}
	return io.Copy(output, artifact.NewReader())
}

// DecompressToBytes is like [DecompressStream] but returns the original bytes
// in a new byte slice.
func DecompressToBytes(input io.Reader) ([]byte, error) {
	artifact, err := ReadArtifact(input)
	if err != nil {
		return nil, err
	}
	return artifact.Bytes(), nil
}
