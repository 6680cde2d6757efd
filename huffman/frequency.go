package huffman

import "github.com/boljen/go-bitmap"

// FrequencyTable holds the number of occurrences of every byte value.
type FrequencyTable [256]uint64

// CountFrequencies counts how often each byte value occurs in data.
func CountFrequencies(data []byte) FrequencyTable {
	var table FrequencyTable
	for _, b := range data {
		table[b]++
	}
	return table
}

// Symbols returns the number of distinct byte values with a nonzero count.
func (table *FrequencyTable) Symbols() int {
	count := 0
	for _, freq := range table {
		if freq > 0 {
			count++
		}
	}
	return count
}

// Total returns the sum of all counts, i.e. the length of the counted input.
func (table *FrequencyTable) Total() uint64 {
	total := uint64(0)
	for _, freq := range table {
		total += freq
	}
	return total
}

// Present returns a 256-bit map with a bit set for every byte value that occurs
// at least once.
func (table *FrequencyTable) Present() bitmap.Bitmap {
	present := bitmap.New(len(table))
	for value, freq := range table {
		present.Set(value, freq > 0)
	}
	return present
}
