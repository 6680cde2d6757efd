package huffman_test

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dargueta/huffpack/huffman"
	ht "github.com/dargueta/huffpack/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAAAB(t *testing.T) *huffman.Artifact {
	artifact, err := huffman.Open(
		huffman.Header{
			UncompressedSize: 4,
			BitCount:         4,
			NodeCount:        3,
			OffsetWidth:      huffman.OffsetWidth8,
		},
		[]byte{0xe0, 0, 2, 1, 'a', 0, 0, 'b', 0, 0},
	)
	require.NoError(t, err)
	return artifact
}

func TestCursor__StepByStep(t *testing.T) {
	artifact := openAAAB(t)
	end := artifact.End()

	cursor := artifact.Begin()
	for _, expected := range "aaab" {
		require.False(t, cursor.Equal(end), "hit the end too early")
		assert.EqualValues(t, expected, cursor.Value())
		cursor.Advance()
	}

	assert.True(t, cursor.Equal(end), "cursor should be at the end")
	assert.Equal(t, end, cursor)
	assert.Equal(t, -1, cursor.Value())
}

func TestCursor__AdvancePastEnd(t *testing.T) {
	for name, artifact := range map[string]*huffman.Artifact{
		"encoded": openAAAB(t),
		"stored":  ht.RequireRoundTrip(t, []byte("aaab")),
	} {
		t.Run(
			name,
			func(t *testing.T) {
				end := artifact.End()
				cursor := artifact.Begin()
				for !cursor.Equal(end) {
					cursor.Advance()
				}

				for i := 0; i < 3; i++ {
					assert.Equal(t, -1, cursor.Advance())
					assert.True(t, cursor.Equal(end), "cursor moved past the end")
				}
			},
		)
	}
}

func TestCursor__ZeroValue(t *testing.T) {
	var cursor huffman.Cursor
	assert.Equal(t, -1, cursor.Value())
	assert.Equal(t, -1, cursor.Advance())
}

func TestCursor__CopiesAreIndependent(t *testing.T) {
	artifact, err := huffman.Compress([]byte(strings.Repeat("abracadabra", 20)))
	require.NoError(t, err)

	first := artifact.Begin()
	first.Advance()
	second := first

	assert.Equal(t, int('r'), first.Advance())
	assert.Equal(t, int('a'), first.Advance())
	assert.Equal(t, int('b'), second.Value(), "copy moved with the original")
	assert.Equal(t, int('r'), second.Advance())
	assert.Equal(t, int('a'), second.Advance())
	assert.Equal(t, first, second)
}

func TestCursor__EndPosition(t *testing.T) {
	// 10 bits of codes: the end marker sits in the second byte, after the
	// second bit.
	artifact, err := huffman.Open(
		huffman.Header{
			UncompressedSize: 6,
			BitCount:         10,
			NodeCount:        5,
			OffsetWidth:      huffman.OffsetWidth8,
		},
		[]byte{0xaf, 0x00, 0, 2, 1, 0, 3, 2, 'c', 0, 0, 'b', 0, 0, 'a', 0, 0},
	)
	require.NoError(t, err)
	assert.Equal(t, []byte("aabbcc"), artifact.Bytes())
	assert.Equal(t, 2, artifact.SizeInfo().LastBits())
}

func TestReader(t *testing.T) {
	data := ht.CreateSkewedData(10000, 50, 3)
	artifact := ht.RequireRoundTrip(t, data)

	decoded, err := io.ReadAll(artifact.NewReader())
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestReader__ReadByte(t *testing.T) {
	reader := openAAAB(t).NewReader()
	var decoded []byte
	for {
		b, err := reader.ReadByte()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		decoded = append(decoded, b)
	}
	assert.Equal(t, []byte("aaab"), decoded)

	n, err := reader.Read(make([]byte, 4))
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader__ShortReads(t *testing.T) {
	data := []byte(strings.Repeat("abracadabra", 20))
	artifact := ht.RequireRoundTrip(t, data)
	reader := artifact.NewReader()

	buffer := make([]byte, 7)
	var decoded []byte
	for {
		n, err := reader.Read(buffer)
		decoded = append(decoded, buffer[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, data, decoded)
}

func TestReader__Concurrent(t *testing.T) {
	data := ht.CreateSkewedData(20000, 100, 8)
	artifact := ht.RequireRoundTrip(t, data)

	results := make([][]byte, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = io.ReadAll(artifact.NewReader())
		}(i)
	}
	wg.Wait()

	for i, result := range results {
		assert.Equalf(t, data, result, "reader %d decoded the wrong data", i)
	}
}

func TestArtifactCodes(t *testing.T) {
	assert.Equal(
		t,
		[]huffman.Code{{Symbol: 'b', Bits: "0"}, {Symbol: 'a', Bits: "1"}},
		openAAAB(t).Codes(),
	)

	stored := ht.RequireRoundTrip(t, []byte("aaab"))
	assert.Nil(t, stored.Codes())
}

func TestArtifactCodes__MatchTree(t *testing.T) {
	data := ht.CreateSkewedData(8000, 40, 21)
	artifact := ht.RequireRoundTrip(t, data)
	tree, err := huffman.BuildTree(huffman.CountFrequencies(data))
	require.NoError(t, err)

	assert.Equal(t, codeMap(tree.Codes()), codeMap(artifact.Codes()))
}
