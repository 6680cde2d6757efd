package compression

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/dargueta/huffpack"
	"github.com/dargueta/huffpack/huffman"
)

// ContainerVersion is the container format version written by [WriteArtifact].
const ContainerVersion = 1

// maxUncompressedSize caps the sizes accepted from a container header so a
// corrupted header can't trigger an enormous allocation.
const maxUncompressedSize = 1 << 40

const flagStored = 0x01

var containerMagic = [4]byte{'H', 'U', 'F', 'P'}

type containerHeader struct {
	Magic            [4]byte
	Version          uint8
	Flags            uint8
	OffsetWidth      uint8
	Reserved         uint8
	UncompressedSize uint64
	BitCount         uint64
	NodeCount        uint32
}

// HeaderSize is the size of the container header in bytes.
var HeaderSize = binary.Size(containerHeader{})

// WriteArtifact writes the artifact to the output as a container. The return
// value is the number of bytes written, only valid if no error occurred.
func WriteArtifact(output io.Writer, artifact *huffman.Artifact) (int64, error) {
	info := artifact.Header()
	header := containerHeader{
		Magic:            containerMagic,
		Version:          ContainerVersion,
		OffsetWidth:      uint8(info.OffsetWidth),
		UncompressedSize: uint64(info.UncompressedSize),
		BitCount:         uint64(info.BitCount),
		NodeCount:        uint32(info.NodeCount),
	}
	if info.Stored {
		header.Flags |= flagStored
	}

	err := binary.Write(output, binary.LittleEndian, &header)
	if err != nil {
		return 0, err
	}

	n, err := output.Write(artifact.Data())
	return int64(HeaderSize + n), err
}

// ReadArtifact reads a container written by [WriteArtifact] and rebuilds the
// artifact in it.
func ReadArtifact(input io.Reader) (*huffman.Artifact, error) {
	var header containerHeader
	err := binary.Read(input, binary.LittleEndian, &header)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, huffpack.ErrCorruptArtifact.Wrap(err).WithMessage("failed to read header")
	}

	if header.Magic != containerMagic {
		return nil, huffpack.ErrUnsupportedFormat.WithMessagef(
			"bad magic number %q", header.Magic[:])
	}
	if header.Version != ContainerVersion {
		return nil, huffpack.ErrUnsupportedFormat.WithMessagef(
			"container version %d isn't supported", header.Version)
	}
	if header.Flags&^flagStored != 0 || header.Reserved != 0 {
		return nil, huffpack.ErrUnsupportedFormat.WithMessagef(
			"unknown flags %#02x", header.Flags&^flagStored)
	}
	if header.UncompressedSize > maxUncompressedSize ||
		header.BitCount > 8*maxUncompressedSize {
		return nil, huffpack.ErrCorruptArtifact.WithMessagef(
			"sizes too large: %d bytes, %d bits", header.UncompressedSize, header.BitCount)
	}

	info := huffman.Header{
		Stored:           header.Flags&flagStored != 0,
		UncompressedSize: int(header.UncompressedSize),
		BitCount:         int(header.BitCount),
		NodeCount:        int(header.NodeCount),
		OffsetWidth:      int(header.OffsetWidth),
	}

	// Don't trust the header's sizes enough to preallocate the buffer.
	payloadSize := int64(info.PayloadSize())
	payload, err := io.ReadAll(io.LimitReader(input, payloadSize))
	if err != nil {
		return nil, err
	}
	if int64(len(payload)) < payloadSize {
		return nil, huffpack.ErrCorruptArtifact.Wrap(io.ErrUnexpectedEOF).WithMessagef(
			"payload is %d bytes, expected %d", len(payload), payloadSize)
	}

	return huffman.Open(info, payload)
}
