package huffman

import (
	"encoding/binary"
	"fmt"

	"github.com/boljen/go-bitmap"
	"github.com/dargueta/huffpack"
	"github.com/hashicorp/go-multierror"
)

const (
	// OffsetWidth8 stores child offsets in one byte, giving three-byte records.
	OffsetWidth8 = 1
	// OffsetWidth16 stores child offsets in two little-endian bytes, giving
	// five-byte records.
	OffsetWidth16 = 2
)

// RecordSize returns the size in bytes of one decode table record for the given
// offset width, or 0 if the width isn't supported.
func RecordSize(offsetWidth int) int {
	switch offsetWidth {
	case OffsetWidth8, OffsetWidth16:
		return 1 + 2*offsetWidth
	default:
		return 0
	}
}

func maxOffset(offsetWidth int) int {
	return 1<<(8*uint(offsetWidth)) - 1
}

func checkOffsetWidth(offsetWidth int) error {
	if RecordSize(offsetWidth) == 0 {
		return huffpack.ErrInvalidArgument.WithMessagef(
			"offset width must be %d or %d, got %d", OffsetWidth8, OffsetWidth16, offsetWidth)
	}
	return nil
}

// DecodeTable serializes the tree into a decode table, one record per node in
// index order. It fails with [huffpack.ErrOffsetOverflow] if the distance from
// a node to one of its children doesn't fit in offsetWidth bytes.
func (tree *Tree) DecodeTable(offsetWidth int) ([]byte, error) {
	if err := checkOffsetWidth(offsetWidth); err != nil {
		return nil, err
	}

	recordSize := RecordSize(offsetWidth)
	limit := maxOffset(offsetWidth)
	table := make([]byte, recordSize*len(tree.nodes))

	for i, node := range tree.nodes {
		record := table[i*recordSize : (i+1)*recordSize]
		if node.IsLeaf() {
			record[0] = byte(node.Value)
			continue
		}

		leftOffset := node.Left - i
		rightOffset := node.Right - i
		if leftOffset > limit || rightOffset > limit {
			return nil, huffpack.ErrOffsetOverflow.WithMessagef(
				"node %d has children at offsets %d and %d, but %d-byte offsets stop at %d",
				i, leftOffset, rightOffset, offsetWidth, limit)
		}
		putOffset(record[1:], offsetWidth, leftOffset)
		putOffset(record[1+offsetWidth:], offsetWidth, rightOffset)
	}
	return table, nil
}

func putOffset(buffer []byte, offsetWidth, offset int) {
	if offsetWidth == OffsetWidth8 {
		buffer[0] = byte(offset)
	} else {
		binary.LittleEndian.PutUint16(buffer, uint16(offset))
	}
}

// tableRecord is a decoded view of one decode table record.
type tableRecord struct {
	value byte
	left  int
	right int
}

// readRecord decodes the record at the given node index.
func readRecord(table []byte, offsetWidth, index int) tableRecord {
	recordSize := 1 + 2*offsetWidth
	record := table[index*recordSize : (index+1)*recordSize]
	if offsetWidth == OffsetWidth8 {
		return tableRecord{value: record[0], left: int(record[1]), right: int(record[2])}
	}
	return tableRecord{
		value: record[0],
		left:  int(binary.LittleEndian.Uint16(record[1:])),
		right: int(binary.LittleEndian.Uint16(record[3:])),
	}
}

// ValidateTable checks that a decode table describes a full binary tree: every
// internal record points at two distinct in-range records after itself, every
// record other than the first is the child of exactly one parent, and no
// symbol appears in more than one leaf.
//
// All problems found are reported together, wrapped in
// [huffpack.ErrCorruptArtifact].
func ValidateTable(table []byte, offsetWidth int) error {
	if err := checkOffsetWidth(offsetWidth); err != nil {
		return err
	}

	recordSize := RecordSize(offsetWidth)
	if len(table) == 0 || len(table)%recordSize != 0 {
		return huffpack.ErrCorruptArtifact.WithMessagef(
			"table size %d isn't a nonzero multiple of the %d-byte record size",
			len(table), recordSize)
	}

	nodeCount := len(table) / recordSize
	if nodeCount%2 == 0 {
		return huffpack.ErrCorruptArtifact.WithMessagef(
			"a full binary tree can't have an even number of nodes (%d)", nodeCount)
	}

	var problems *multierror.Error
	referenced := bitmap.New(nodeCount)
	symbols := bitmap.New(256)

	for i := 0; i < nodeCount; i++ {
		record := readRecord(table, offsetWidth, i)
		if record.left == 0 {
			if record.right != 0 {
				problems = multierror.Append(
					problems, fmt.Errorf("leaf %d has a right offset of %d", i, record.right))
			}
			if symbols.Get(int(record.value)) {
				problems = multierror.Append(
					problems, fmt.Errorf("symbol %#02x appears in more than one leaf", record.value))
			}
			symbols.Set(int(record.value), true)
			continue
		}

		if record.value != 0 {
			problems = multierror.Append(
				problems, fmt.Errorf("internal node %d has nonzero value %#02x", i, record.value))
		}
		if record.right == 0 || record.left == record.right {
			problems = multierror.Append(
				problems,
				fmt.Errorf(
					"internal node %d has invalid offsets %d and %d", i, record.left, record.right))
			continue
		}

		for _, child := range [...]int{i + record.left, i + record.right} {
			if child >= nodeCount {
				problems = multierror.Append(
					problems,
					fmt.Errorf("node %d points past the end of the table (%d)", i, child))
				continue
			}
			if referenced.Get(child) {
				problems = multierror.Append(
					problems, fmt.Errorf("node %d has more than one parent", child))
			}
			referenced.Set(child, true)
		}
	}

	for i := 1; i < nodeCount; i++ {
		if !referenced.Get(i) {
			problems = multierror.Append(problems, fmt.Errorf("node %d has no parent", i))
		}
	}

	if err := problems.ErrorOrNil(); err != nil {
		return huffpack.ErrCorruptArtifact.Wrap(err)
	}
	return nil
}
