package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func listValues(list *nodeList) []int {
	values := make([]int, list.Len())
	for i := range values {
		values[i] = list.entries[i].Value
	}
	return values
}

func TestNewNodeList__TiesBreakByValue(t *testing.T) {
	freq := CountFrequencies([]byte("zzyyxxxw"))
	list := newNodeList(&freq)

	assert.Equal(t, []int{'w', 'y', 'z', 'x'}, listValues(list))
}

func TestNodeListInsert__BeforeEqual(t *testing.T) {
	freq := CountFrequencies([]byte("abbccdd"))
	list := newNodeList(&freq)
	list.popFront()
	list.popFront()

	// The list is now c:2, d:2; a merged node with frequency 2 goes first.
	list.insert(Node{Value: 0x100, Frequency: 2})
	assert.Equal(t, []int{0x100, 'c', 'd'}, listValues(list))
}

func TestNodeListInsert__AtEnd(t *testing.T) {
	freq := CountFrequencies([]byte("abc"))
	list := newNodeList(&freq)
	list.popFront()
	list.popFront()

	list.insert(Node{Value: 0x100, Frequency: 2})
	assert.Equal(t, []int{'c', 0x100}, listValues(list))
}
