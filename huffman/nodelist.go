package huffman

import "sort"

// noNode marks an absent parent or child index.
const noNode = -1

// firstInternalValue is the value given to the first merged node. Internal
// node values count up from here so they never collide with a byte value.
const firstInternalValue = 0x100

// Node is one entry of a flat Huffman tree.
type Node struct {
	// Value is the byte value for a leaf, or a unique identifier >= 256 for an
	// internal node.
	Value int
	// Frequency is the symbol count for a leaf, or the sum of both children's
	// frequencies for an internal node.
	Frequency uint64
	// Parent, Left and Right are indices into the tree, -1 if absent.
	Parent int
	Left   int
	Right  int
}

// IsLeaf reports whether the node represents a symbol.
func (node Node) IsLeaf() bool {
	return node.Value < firstInternalValue
}

// nodeList is the sorted working list used while building a tree. It's backed
// by a fixed-capacity slice; length tracks how many entries are live.
type nodeList struct {
	entries []Node
	length  int
}

// newNodeList creates a list with one leaf per byte value that occurs in the
// frequency table, sorted by ascending frequency. Since the leaves are created
// in order of byte value and the sort is stable, ties are broken by ascending
// byte value.
func newNodeList(freq *FrequencyTable) *nodeList {
	entries := make([]Node, 0, freq.Symbols())
	for value, count := range freq {
		if count == 0 {
			continue
		}
		entries = append(
			entries,
			Node{
				Value:     value,
				Frequency: count,
				Parent:    noNode,
				Left:      noNode,
				Right:     noNode,
			},
		)
	}

	sort.SliceStable(
		entries,
		func(i, j int) bool { return entries[i].Frequency < entries[j].Frequency },
	)
	return &nodeList{entries: entries, length: len(entries)}
}

// Len returns the number of live entries.
func (list *nodeList) Len() int {
	return list.length
}

// popFront removes and returns the lowest-frequency entry.
func (list *nodeList) popFront() Node {
	first := list.entries[0]
	copy(list.entries, list.entries[1:list.length])
	list.length--
	return first
}

// insert puts the node in front of the first entry whose frequency is greater
// than or equal to its own, or at the end if there is none.
func (list *nodeList) insert(node Node) {
	position := list.length
	for i := 0; i < list.length; i++ {
		if list.entries[i].Frequency >= node.Frequency {
			position = i
			break
		}
	}

	// Two entries are removed for every one inserted, so there's always room.
	copy(list.entries[position+1:list.length+1], list.entries[position:list.length])
	list.entries[position] = node
	list.length++
}
