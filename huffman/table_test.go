package huffman_test

import (
	"bytes"
	"testing"

	"github.com/dargueta/huffpack"
	"github.com/dargueta/huffpack/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overflowingInput returns data whose tree has a node more than 255 records
// away from one of its children, but which still compresses well.
func overflowingInput() []byte {
	data := bytes.Repeat([]byte{0}, 5000)
	for value := 1; value < 256; value++ {
		data = append(data, byte(value))
	}
	return data
}

func TestDecodeTable__Golden(t *testing.T) {
	tests := []struct {
		Name     string
		Input    string
		Expected []byte
	}{
		{
			"two symbols",
			"aaab",
			[]byte{0, 2, 1, 'a', 0, 0, 'b', 0, 0},
		},
		{
			"equal frequencies",
			"aabbcc",
			[]byte{0, 2, 1, 0, 3, 2, 'c', 0, 0, 'b', 0, 0, 'a', 0, 0},
		},
		{
			"abracadabra",
			"abracadabra",
			[]byte{
				0, 2, 1, 0, 3, 2, 'a', 0, 0, 0, 3, 2, 'r', 0, 0,
				'b', 0, 0, 0, 2, 1, 'd', 0, 0, 'c', 0, 0,
			},
		},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				table, err := buildTree(t, test.Input).DecodeTable(huffman.OffsetWidth8)
				require.NoError(t, err)
				assert.Equal(t, test.Expected, table)
				assert.NoError(t, huffman.ValidateTable(table, huffman.OffsetWidth8))
			},
		)
	}
}

func TestDecodeTable__WideOffsets(t *testing.T) {
	table, err := buildTree(t, "aabbcc").DecodeTable(huffman.OffsetWidth16)
	require.NoError(t, err)

	expected := []byte{
		0, 2, 0, 1, 0,
		0, 3, 0, 2, 0,
		'c', 0, 0, 0, 0,
		'b', 0, 0, 0, 0,
		'a', 0, 0, 0, 0,
	}
	assert.Equal(t, expected, table)
	assert.NoError(t, huffman.ValidateTable(table, huffman.OffsetWidth16))
}

func TestDecodeTable__Overflow(t *testing.T) {
	tree, err := huffman.BuildTree(huffman.CountFrequencies(overflowingInput()))
	require.NoError(t, err)
	require.Equal(t, 511, tree.Len())

	_, err = tree.DecodeTable(huffman.OffsetWidth8)
	assert.ErrorIs(t, err, huffpack.ErrOffsetOverflow)

	table, err := tree.DecodeTable(huffman.OffsetWidth16)
	require.NoError(t, err)
	assert.Len(t, table, 511*huffman.RecordSize(huffman.OffsetWidth16))
	assert.NoError(t, huffman.ValidateTable(table, huffman.OffsetWidth16))
}

func TestDecodeTable__BadWidth(t *testing.T) {
	_, err := buildTree(t, "aabbcc").DecodeTable(3)
	assert.ErrorIs(t, err, huffpack.ErrInvalidArgument)
}

func TestRecordSize(t *testing.T) {
	assert.Equal(t, 3, huffman.RecordSize(huffman.OffsetWidth8))
	assert.Equal(t, 5, huffman.RecordSize(huffman.OffsetWidth16))
	assert.Equal(t, 0, huffman.RecordSize(0))
	assert.Equal(t, 0, huffman.RecordSize(4))
}

func TestValidateTable__Corrupt(t *testing.T) {
	tests := []struct {
		Name  string
		Table []byte
	}{
		{"empty", []byte{}},
		{"partial record", []byte{0, 2, 1, 'a', 0}},
		{"even node count", []byte{0, 1, 0, 'a', 0, 0}},
		{"child out of range", []byte{0, 2, 5, 'a', 0, 0, 'b', 0, 0}},
		{"duplicate symbol", []byte{0, 1, 2, 'a', 0, 0, 'a', 0, 0}},
		{"leaf with right offset", []byte{0, 1, 2, 'a', 0, 1, 'b', 0, 0}},
		{"internal node with value", []byte{9, 1, 2, 'a', 0, 0, 'b', 0, 0}},
		{"same child twice", []byte{0, 1, 1, 'a', 0, 0, 'b', 0, 0}},
		{"root is a leaf", []byte{'x', 0, 0, 'a', 0, 0, 'b', 0, 0}},
		{
			"two parents",
			[]byte{0, 1, 2, 0, 1, 2, 'a', 0, 0, 'b', 0, 0, 'c', 0, 0},
		},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				err := huffman.ValidateTable(test.Table, huffman.OffsetWidth8)
				assert.ErrorIs(t, err, huffpack.ErrCorruptArtifact)
			},
		)
	}
}

func TestValidateTable__BadWidth(t *testing.T) {
	err := huffman.ValidateTable([]byte{0, 2, 1, 'a', 0, 0, 'b', 0, 0}, 0)
	assert.ErrorIs(t, err, huffpack.ErrInvalidArgument)
}
