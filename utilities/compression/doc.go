// Package compression stores Huffman artifacts in files and streams.
//
// An artifact on its own is just a payload; decoding it also needs the header
// that says whether the payload is stored or encoded and how big each part is.
// This package writes both into a single container:
//
//	offset  size  field
//	0       4     magic, "HUFP"
//	4       1     format version, currently 1
//	5       1     flags; bit 0 set means the payload is stored uncompressed
//	6       1     decode table offset width in bytes (0 when stored)
//	7       1     reserved, must be 0
//	8       8     uncompressed size
//	16      8     number of bits in the bitstream (0 when stored)
//	24      4     number of decode table records (0 when stored)
//	28      ...   payload
//
// All integers are little-endian. For example, "aaab" repeated four times
// compresses to 16 bits of codes and a three-record table, so the container is
// 28 + 2 + 9 = 39 bytes:
//
//	48 55 46 50 01 00 01 00  10 00 00 00 00 00 00 00
//	10 00 00 00 00 00 00 00  03 00 00 00 ee ee 00 02
//	01 61 00 00 62 00 00
//
// Whole inputs are buffered in memory, since Huffman coding needs to see every
// byte before it can emit the first code.
package compression
