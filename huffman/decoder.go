package huffman

import "io"

// Cursor is a forward-only position in an artifact's decoded output. The zero
// value is not usable; get one from [Artifact.Begin] or [Artifact.End].
//
// Cursors are plain values. Copying one gives an independent cursor, and two
// cursors compare equal (with == or [Cursor.Equal]) if they're at the same
// position of the same artifact.
type Cursor struct {
	artifact *Artifact
	// index and mask select the next bit to read from the bitstream, or in
	// stored mode index is the next byte to return.
	index int
	mask  byte
	// value is the byte most recently decoded, or -1.
	value int
}

// Begin returns a cursor at the first decoded byte.
func (artifact *Artifact) Begin() Cursor {
	cursor := Cursor{artifact: artifact, mask: 0x80, value: -1}
	cursor.Advance()
	return cursor
}

// End returns a cursor one past the last decoded byte. A cursor advanced past
// the last byte compares equal to it.
func (artifact *Artifact) End() Cursor {
	return Cursor{
		artifact: artifact,
		index:    artifact.endIndex,
		mask:     artifact.endMask,
		value:    -1,
	}
}

// Value returns the byte at the cursor's position, or -1 at the end.
func (cursor Cursor) Value() int {
	return cursor.value
}

// Equal reports whether both cursors are at the same position.
func (cursor Cursor) Equal(other Cursor) bool {
	return cursor == other
}

func (cursor *Cursor) exhausted() bool {
	return cursor.index == cursor.artifact.endIndex &&
		cursor.mask == cursor.artifact.endMask
}

// Advance moves the cursor to the next decoded byte and returns it. At the end
// of the output the cursor doesn't move and Advance returns -1.
func (cursor *Cursor) Advance() int {
	if cursor.artifact == nil || cursor.exhausted() {
		cursor.value = -1
		return cursor.value
	}

	header := &cursor.artifact.header
	payload := cursor.artifact.payload
	if header.Stored {
		cursor.value = int(payload[cursor.index])
		cursor.index++
		return cursor.value
	}

	table := cursor.artifact.Table()
	node := 0
	record := readRecord(table, header.OffsetWidth, node)
	for record.left != 0 {
		if payload[cursor.index]&cursor.mask != 0 {
			node += record.right
		} else {
			node += record.left
		}

		cursor.mask >>= 1
		if cursor.mask == 0 {
			cursor.mask = 0x80
			cursor.index++
		}
		record = readRecord(table, header.OffsetWidth, node)
	}

	cursor.value = int(record.value)
	return cursor.value
}

// Bytes decodes the whole artifact.
func (artifact *Artifact) Bytes() []byte {
	output := make([]byte, 0, artifact.header.UncompressedSize)
	end := artifact.End()
	for cursor := artifact.Begin(); !cursor.Equal(end); cursor.Advance() {
		output = append(output, byte(cursor.Value()))
	}
	return output
}

// Reader decodes an artifact as an [io.Reader]. Each Reader has its own cursor,
// so several can read the same artifact at once.
type Reader struct {
	cursor Cursor
	end    Cursor
}

// NewReader returns a reader positioned at the start of the decoded output.
func (artifact *Artifact) NewReader() *Reader {
	return &Reader{cursor: artifact.Begin(), end: artifact.End()}
}

// ReadByte implements [io.ByteReader].
func (reader *Reader) ReadByte() (byte, error) {
	if reader.cursor.Equal(reader.end) {
		return 0, io.EOF
	}
	value := reader.cursor.Value()
	reader.cursor.Advance()
	return byte(value), nil
}

// Read implements [io.Reader].
func (reader *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(p) {
		b, err := reader.ReadByte()
		if err != nil {
			break
		}
		p[n] = b
		n++
	}

	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Codes recovers the code of every symbol from the decode table, ordered by
// code. Frequencies aren't stored in the table, so they're all 0. Stored
// artifacts have no codes.
func (artifact *Artifact) Codes() []Code {
	if artifact.header.Stored {
		return nil
	}

	var codes []Code
	table := artifact.Table()
	width := artifact.header.OffsetWidth

	var walk func(node int, prefix []byte)
	walk = func(node int, prefix []byte) {
		record := readRecord(table, width, node)
		if record.left == 0 {
			codes = append(codes, Code{Symbol: record.value, Bits: string(prefix)})
			return
		}
		walk(node+record.left, append(prefix, '0'))
		walk(node+record.right, append(prefix, '1'))
	}
	walk(0, make([]byte, 0, 16))
	return codes
}
