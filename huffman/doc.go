// Package huffman compresses a fixed byte sequence with a static Huffman code
// and decodes it again one symbol at a time.
//
// Compression is a pure function of the input. [Compress] counts byte
// frequencies, builds a Huffman tree laid out as a flat array (root at index 0,
// every child stored at a higher index than its parent), packs every input
// byte's code into a bitstream and serializes the tree into a decode table.
// The result is an immutable [Artifact] whose payload is laid out as
//
//	[bitstream][decode table]
//
// The bitstream holds the codes of the input bytes in order, most significant
// bit first, with the last byte zero-padded. The decode table holds one record
// per tree node:
//
//	value        1 byte, the symbol for a leaf or 0 for an internal node
//	left offset  OffsetWidth bytes, distance in records to the left child
//	right offset OffsetWidth bytes, distance in records to the right child
//
// A record is a leaf if and only if its left offset is 0. With the default
// one-byte offsets each record is three bytes; large alphabets can produce
// offsets above 255, in which case [Compress] fails with
// [huffpack.ErrOffsetOverflow] unless [WithOffsetWidth] selects two-byte
// offsets.
//
// If Huffman coding would not make the payload smaller than the input, the
// artifact stores the input unmodified instead ("stored mode"), so the
// compressed size never exceeds the uncompressed size. Input consisting of a
// single distinct byte value is always stored.
//
// Tree construction is deterministic. Equal frequencies are ordered by
// ascending symbol value, the two lowest entries of the working list are
// merged with the first one becoming the left (0) branch, and merged nodes are
// reinserted in front of any existing entry with the same frequency. For
// example "aabbcc" always yields the codes
//
//	c: 0
//	a: 10
//	b: 11
//
// and the bitstream AF 00.
package huffman
