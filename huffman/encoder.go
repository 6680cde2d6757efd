package huffman

import "github.com/dargueta/huffpack"

// SizeInfo describes the size of an encoded bitstream.
type SizeInfo struct {
	// Bits is the total number of code bits.
	Bits int
}

// Bytes returns the number of bytes needed to hold the bitstream.
func (info SizeInfo) Bytes() int {
	return (info.Bits + 7) / 8
}

// LastBits returns the number of bits used in the last byte of the bitstream,
// or 0 if the last byte is completely filled.
func (info SizeInfo) LastBits() int {
	return info.Bits % 8
}

// endPosition returns the byte index and bit mask immediately following the
// last bit of the stream.
func (info SizeInfo) endPosition() (int, byte) {
	return info.Bits / 8, byte(0x80 >> uint(info.Bits%8))
}

// Measure computes the size of the bitstream the tree would produce for data.
// Every byte in data must have a leaf in the tree.
func (tree *Tree) Measure(data []byte) (SizeInfo, error) {
	var codeLengths [256]int
	for symbol, index := range tree.leaves {
		if index != noNode {
			codeLengths[symbol] = tree.depth(index)
		}
	}

	info := SizeInfo{}
	for i, b := range data {
		if tree.leaves[b] == noNode {
			return SizeInfo{}, huffpack.ErrInvalidInput.WithMessagef(
				"byte %#02x at offset %d has no code in this tree", b, i)
		}
		info.Bits += codeLengths[b]
	}
	return info, nil
}

// Encode packs the codes of every byte in data into a bitstream, most
// significant bit first.
//
// Codes are discovered leaf first by walking up the tree, so the input is
// processed from its last byte to its first and the output is filled from its
// last bit backward. Read forward, the result holds every code root first and
// in input order.
func (tree *Tree) Encode(data []byte) ([]byte, SizeInfo, error) {
	info, err := tree.Measure(data)
	if err != nil {
		return nil, SizeInfo{}, err
	}

	output := make([]byte, info.Bytes())
	position := info.Bits
	for i := len(data) - 1; i >= 0; i-- {
		index := tree.leaves[data[i]]
		for tree.nodes[index].Parent != noNode {
			parent := tree.nodes[index].Parent
			position--
			if position < 0 {
				return nil, SizeInfo{}, huffpack.ErrSizeMismatch.WithMessagef(
					"ran out of bits at input offset %d", i)
			}
			if tree.nodes[parent].Right == index {
				output[position/8] |= 0x80 >> uint(position%8)
			}
			index = parent
		}
	}

	if position != 0 {
		return nil, SizeInfo{}, huffpack.ErrSizeMismatch.WithMessagef(
			"measured %d bits but only wrote %d", info.Bits, info.Bits-position)
	}
	return output, info, nil
}
