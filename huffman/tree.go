package huffman

import (
	"fmt"
	"strings"

	"github.com/dargueta/huffpack"
)

// Tree is a Huffman tree stored as a flat array of nodes. The root is at index
// 0 and every node is stored at a higher index than its parent.
type Tree struct {
	nodes []Node
	// leaves maps a byte value to the index of its leaf, or -1.
	leaves [256]int
}

// Code is the bit string assigned to a symbol.
type Code struct {
	Symbol    byte
	Frequency uint64
	// Bits is the code as a string of '0' and '1' characters, root first.
	Bits string
}

// Len returns the code length in bits.
func (code Code) Len() int {
	return len(code.Bits)
}

// BuildTree builds a Huffman tree from the frequency table. The table must
// contain at least one nonzero count.
//
// If only one symbol is present, the returned tree consists of a single leaf
// whose code is empty.
func BuildTree(freq FrequencyTable) (*Tree, error) {
	list := newNodeList(&freq)
	if list.Len() == 0 {
		return nil, huffpack.ErrInvalidInput.WithMessage("no symbols to build a tree from")
	}

	tree := &Tree{nodes: make([]Node, 2*list.Len()-1)}
	if list.Len() == 1 {
		tree.nodes[0] = list.popFront()
	} else {
		tree.merge(list)
	}
	tree.linkParents()
	tree.indexLeaves()
	return tree, nil
}

// merge repeatedly combines the two lowest-frequency entries of the list until
// a single root remains. Removed entries fill the tree from the back.
func (tree *Tree) merge(list *nodeList) {
	nextFree := len(tree.nodes)
	nextValue := firstInternalValue

	for list.Len() > 1 {
		first := list.popFront()
		second := list.popFront()

		nextFree--
		tree.nodes[nextFree] = first
		nextFree--
		tree.nodes[nextFree] = second

		list.insert(
			Node{
				Value:     nextValue,
				Frequency: first.Frequency + second.Frequency,
				Parent:    noNode,
				Left:      nextFree + 1,
				Right:     nextFree,
			},
		)
		nextValue++
	}

	// nextFree is 1 here; the only slot left is the root's.
	tree.nodes[0] = list.popFront()
}

// linkParents sets the parent index of every non-root node.
func (tree *Tree) linkParents() {
	for i := range tree.nodes {
		tree.nodes[i].Parent = noNode
	}
	for i, node := range tree.nodes {
		if node.IsLeaf() {
			continue
		}
		tree.nodes[node.Left].Parent = i
		tree.nodes[node.Right].Parent = i
	}
}

func (tree *Tree) indexLeaves() {
	for i := range tree.leaves {
		tree.leaves[i] = noNode
	}
	for i, node := range tree.nodes {
		if node.IsLeaf() {
			tree.leaves[node.Value] = i
		}
	}
}

// Len returns the number of nodes in the tree.
func (tree *Tree) Len() int {
	return len(tree.nodes)
}

// Node returns the node at the given index.
func (tree *Tree) Node(index int) Node {
	return tree.nodes[index]
}

// Nodes returns a copy of the flat node array.
func (tree *Tree) Nodes() []Node {
	nodes := make([]Node, len(tree.nodes))
	copy(nodes, tree.nodes)
	return nodes
}

// Root returns the root node.
func (tree *Tree) Root() Node {
	return tree.nodes[0]
}

// Leaf returns the index of the leaf for the given symbol. The second return
// value is false if the symbol isn't in the tree.
func (tree *Tree) Leaf(symbol byte) (int, bool) {
	index := tree.leaves[symbol]
	return index, index != noNode
}

// Code returns the code assigned to the symbol.
func (tree *Tree) Code(symbol byte) (Code, bool) {
	index, ok := tree.Leaf(symbol)
	if !ok {
		return Code{}, false
	}

	// Walking up the tree yields the bits leaf-first, so build them backwards.
	bits := make([]byte, tree.depth(index))
	for i := len(bits) - 1; i >= 0; i-- {
		parent := tree.nodes[index].Parent
		if tree.nodes[parent].Right == index {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
		index = parent
	}

	return Code{
		Symbol:    symbol,
		Frequency: tree.nodes[tree.leaves[symbol]].Frequency,
		Bits:      string(bits),
	}, true
}

// Codes returns the codes of all symbols in the tree, ordered by symbol.
func (tree *Tree) Codes() []Code {
	codes := make([]Code, 0, (len(tree.nodes)+1)/2)
	for symbol := 0; symbol < len(tree.leaves); symbol++ {
		if code, ok := tree.Code(byte(symbol)); ok {
			codes = append(codes, code)
		}
	}
	return codes
}

// String renders the tree one node per line, for debugging.
func (tree *Tree) String() string {
	var builder strings.Builder
	for i, node := range tree.nodes {
		if node.IsLeaf() {
			fmt.Fprintf(
				&builder,
				"%3d: leaf %#02x freq=%d parent=%d\n",
				i, node.Value, node.Frequency, node.Parent)
		} else {
			fmt.Fprintf(
				&builder,
				"%3d: node %d freq=%d parent=%d left=%d right=%d\n",
				i, node.Value, node.Frequency, node.Parent, node.Left, node.Right)
		}
	}
	return builder.String()
}

// depth returns the number of edges between the node and the root.
func (tree *Tree) depth(index int) int {
	depth := 0
	for tree.nodes[index].Parent != noNode {
		index = tree.nodes[index].Parent
		depth++
	}
	return depth
}
