package huffman

import (
	"github.com/dargueta/huffpack"
)

// Header describes an artifact's payload. Together with the payload bytes it's
// all that's needed to decode the artifact again; see [Open].
type Header struct {
	// Stored is true if the payload is the original input, unmodified.
	Stored bool
	// UncompressedSize is the length of the original input.
	UncompressedSize int
	// BitCount is the number of bits in the bitstream. Always 0 in stored mode.
	BitCount int
	// NodeCount is the number of records in the decode table. Always 0 in
	// stored mode.
	NodeCount int
	// OffsetWidth is the size in bytes of a child offset in the decode table.
	// Always 0 in stored mode.
	OffsetWidth int
}

// SizeInfo returns the size of the bitstream described by the header.
func (h Header) SizeInfo() SizeInfo {
	return SizeInfo{Bits: h.BitCount}
}

// PayloadSize returns the number of payload bytes the header describes.
func (h Header) PayloadSize() int {
	if h.Stored {
		return h.UncompressedSize
	}
	return h.SizeInfo().Bytes() + RecordSize(h.OffsetWidth)*h.NodeCount
}

// Artifact is the immutable result of compressing a byte sequence. It's safe
// for concurrent use by any number of decoders.
type Artifact struct {
	header Header
	// payload is either [bitstream][decode table] or, in stored mode, a copy of
	// the input.
	payload []byte
	// tableStart is the offset of the decode table in payload.
	tableStart int
	// endIndex and endMask are where a cursor stops: one past the last stored
	// byte, or the bit after the last code.
	endIndex int
	endMask  byte
}

func (artifact *Artifact) setEnd() {
	if artifact.header.Stored {
		artifact.endIndex = artifact.header.UncompressedSize
		artifact.endMask = 0x80
		return
	}
	artifact.endIndex, artifact.endMask = artifact.header.SizeInfo().endPosition()
}

// Compress builds an artifact from data, which must not be empty.
//
// If Huffman coding wouldn't make data smaller, or data consists of a single
// repeated byte value, the artifact stores a copy of data instead.
func Compress(data []byte, options ...Option) (*Artifact, error) {
	conf := defaultConfig()
	for _, option := range options {
		option(&conf)
	}
	if err := checkOffsetWidth(conf.offsetWidth); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, huffpack.ErrInvalidInput.WithMessage("can't compress empty input")
	}

	freq := CountFrequencies(data)
	if freq.Symbols() < 2 {
		return newStoredArtifact(data), nil
	}

	tree, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}

	info, err := tree.Measure(data)
	if err != nil {
		return nil, err
	}
	encodedSize := info.Bytes() + RecordSize(conf.offsetWidth)*tree.Len()
	if encodedSize >= len(data) {
		return newStoredArtifact(data), nil
	}

	bitstream, info, err := tree.Encode(data)
	if err != nil {
		return nil, err
	}
	table, err := tree.DecodeTable(conf.offsetWidth)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(bitstream)+len(table))
	payload = append(payload, bitstream...)
	payload = append(payload, table...)

	artifact := &Artifact{
		header: Header{
			UncompressedSize: len(data),
			BitCount:         info.Bits,
			NodeCount:        tree.Len(),
			OffsetWidth:      conf.offsetWidth,
		},
		payload:    payload,
		tableStart: len(bitstream),
	}
	artifact.setEnd()
	return artifact, nil
}

func newStoredArtifact(data []byte) *Artifact {
	payload := make([]byte, len(data))
	copy(payload, data)
	artifact := &Artifact{
		header:     Header{Stored: true, UncompressedSize: len(data)},
		payload:    payload,
		tableStart: len(payload),
	}
	artifact.setEnd()
	return artifact
}

// Open reconstructs an artifact from its header and payload, e.g. after reading
// them back from storage. The payload is copied.
//
// Open checks that the header matches the payload, that the decode table is
// well formed, and that the bitstream decodes to exactly UncompressedSize
// symbols. Any mismatch is reported as [huffpack.ErrCorruptArtifact]. Unlike
// [Compress], Open accepts encoded artifacts that are larger than their
// uncompressed data.
func Open(header Header, payload []byte) (*Artifact, error) {
	if header.UncompressedSize <= 0 {
		return nil, huffpack.ErrCorruptArtifact.WithMessagef(
			"uncompressed size must be positive, got %d", header.UncompressedSize)
	}

	if header.Stored {
		if header.BitCount != 0 || header.NodeCount != 0 || header.OffsetWidth != 0 {
			return nil, huffpack.ErrCorruptArtifact.WithMessage(
				"stored artifact has a bitstream or decode table")
		}
		if len(payload) != header.UncompressedSize {
			return nil, huffpack.ErrCorruptArtifact.WithMessagef(
				"stored payload is %d bytes, expected %d", len(payload), header.UncompressedSize)
		}
		return newStoredArtifact(payload), nil
	}

	if RecordSize(header.OffsetWidth) == 0 {
		return nil, huffpack.ErrCorruptArtifact.WithMessagef(
			"unsupported offset width %d", header.OffsetWidth)
	}
	if header.NodeCount < 3 || header.BitCount < header.UncompressedSize {
		return nil, huffpack.ErrCorruptArtifact.WithMessagef(
			"%d nodes and %d bits can't encode %d bytes",
			header.NodeCount, header.BitCount, header.UncompressedSize)
	}
	if len(payload) != header.PayloadSize() {
		return nil, huffpack.ErrCorruptArtifact.WithMessagef(
			"payload is %d bytes, expected %d", len(payload), header.PayloadSize())
	}

	tableStart := header.SizeInfo().Bytes()
	if err := ValidateTable(payload[tableStart:], header.OffsetWidth); err != nil {
		return nil, err
	}

	artifact := &Artifact{
		header:     header,
		payload:    make([]byte, len(payload)),
		tableStart: tableStart,
	}
	copy(artifact.payload, payload)
	artifact.setEnd()

	if err := artifact.checkBitstream(); err != nil {
		return nil, err
	}
	return artifact, nil
}

// MustOpen is like [Open] but panics if the artifact is invalid. It's intended
// for initializing package-level variables from generated code.
func MustOpen(header Header, payload []byte) *Artifact {
	artifact, err := Open(header, payload)
	if err != nil {
		panic(err)
	}
	return artifact
}

// checkBitstream walks the whole bitstream and makes sure it holds exactly the
// expected number of symbols, ending on the last bit. Once this passes, cursors
// can decode without bounds checks failing.
func (artifact *Artifact) checkBitstream() error {
	table := artifact.Table()
	width := artifact.header.OffsetWidth
	bitsLeft := artifact.header.BitCount

	index := 0
	mask := byte(0x80)
	for symbol := 0; symbol < artifact.header.UncompressedSize; symbol++ {
		node := 0
		for {
			if bitsLeft == 0 {
				return huffpack.ErrCorruptArtifact.WithMessagef(
					"bitstream ends in the middle of symbol %d", symbol)
			}
			record := readRecord(table, width, node)
			if artifact.payload[index]&mask != 0 {
				node += record.right
			} else {
				node += record.left
			}
			bitsLeft--
			mask >>= 1
			if mask == 0 {
				mask = 0x80
				index++
			}
			if readRecord(table, width, node).left == 0 {
				break
			}
		}
	}

	if bitsLeft != 0 {
		return huffpack.ErrCorruptArtifact.WithMessagef(
			"%d bits left over after decoding %d symbols", bitsLeft, artifact.header.UncompressedSize)
	}
	return nil
}

// Header returns the header describing the artifact's payload.
func (artifact *Artifact) Header() Header {
	return artifact.header
}

// Stored reports whether the artifact holds its input unmodified.
func (artifact *Artifact) Stored() bool {
	return artifact.header.Stored
}

// Data returns the payload: the bitstream followed by the decode table, or the
// original input in stored mode. The returned slice must not be modified.
func (artifact *Artifact) Data() []byte {
	return artifact.payload
}

// Bitstream returns the packed codes. It's empty in stored mode. The returned
// slice must not be modified.
func (artifact *Artifact) Bitstream() []byte {
	if artifact.header.Stored {
		return nil
	}
	return artifact.payload[:artifact.tableStart]
}

// Table returns the decode table. It's empty in stored mode. The returned slice
// must not be modified.
func (artifact *Artifact) Table() []byte {
	return artifact.payload[artifact.tableStart:]
}

// SizeInfo returns the size of the bitstream.
func (artifact *Artifact) SizeInfo() SizeInfo {
	return artifact.header.SizeInfo()
}

// CompressedSize returns the size of the payload in bytes, including the
// decode table.
func (artifact *Artifact) CompressedSize() int {
	return len(artifact.payload)
}

// UncompressedSize returns the length of the original input.
func (artifact *Artifact) UncompressedSize() int {
	return artifact.header.UncompressedSize
}

// BytesSaved returns how many bytes smaller the payload is than the input. It's
// never negative.
func (artifact *Artifact) BytesSaved() int {
	saved := artifact.UncompressedSize() - artifact.CompressedSize()
	if saved < 0 {
		return 0
	}
	return saved
}
